package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Analyzing %s...":                 "%s を解析中...",
		"Analysis completed successfully": "解析が正常に完了しました",
		"Analysis cancelled":              "解析がキャンセルされました",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",
		"Summary saved to %s":             "サマリーを %s に保存しました",
		"Badge saved to %s":               "バッジを %s に保存しました",

		// Intake
		"Validated %s: codec %s, %d samples, %d ms":                    "%s を検証しました: コーデック %s, %d サンプル, %d ms",
		"Video codec not recognized; container scores will be reduced": "動画コーデックを認識できません。コンテナスコアを下げます",

		// Runner
		"Starting stage %s (%d/%d)":                       "ステージ %s (%d/%d) を開始",
		"Stage %s failed: %s":                             "ステージ %s が失敗しました: %s",
		"Run %s succeeded in %s":                          "実行 %s が %s で成功しました",
		"Run %s cancelled":                                "実行 %s がキャンセルされました",
		"Sub-score %s already contributed; storing as %s": "サブスコア %s は既に登録済みです。%s として保存します",

		// Stage progress
		"Stage %s completed (%.1f%%)": "ステージ %s が完了しました (%.1f%%)",

		// Verdict
		"Verdict: PASS (confidence %.3f)": "判定: 合格 (信頼度 %.3f)",
		"Verdict: FAIL (confidence %.3f)": "判定: 不合格 (信頼度 %.3f)",

		// Errors
		"Analysis failed at stage %s: %s": "ステージ %s で解析が失敗しました: %s",
		"Failed to write summary: %s":     "サマリーの書き込みに失敗しました: %s",
		"Failed to write badge: %s":       "バッジの書き込みに失敗しました: %s",
		"Failed to read input: %s":        "入力の読み込みに失敗しました: %s",
	})
}
