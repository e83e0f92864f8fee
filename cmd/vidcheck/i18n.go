// Package main provides localization for the vidcheck CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Analyze video files for signs of synthetic generation": "動画ファイルを解析して合成生成の兆候を検出",

		// Analyze command
		"Run the staged analysis on a video file": "動画ファイルの段階的解析を実行",

		// Inspect command
		"Show the container structure of a video file": "動画ファイルのコンテナ構造を表示",

		// Flags
		"Path to a YAML configuration file":             "YAML設定ファイルのパス",
		"Write the summary report to this file":         "サマリーレポートをこのファイルに出力",
		"Write the verdict badge PNG to this file":      "判定バッジPNGをこのファイルに出力",
		"Summary format (text, markdown)":               "サマリー形式（text, markdown）",
		"Confidence threshold for a PASS verdict (0-1)": "合格判定の信頼度しきい値（0-1）",
		"Log level (debug, info, warn, error)":          "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                       "全てのログ出力を抑制",
		"Disable the interactive progress bar":          "対話的なプログレスバーを無効化",

		// Errors
		"input file argument is required": "入力ファイル引数が必要です",

		// Inspect output labels
		"File":         "ファイル",
		"Size (bytes)": "サイズ（バイト）",
		"Codec":        "コーデック",
		"Tracks":       "トラック数",
		"Duration":     "再生時間",
		"Samples":      "サンプル数",
		"Sync samples": "同期サンプル数",
		"Fragmented":   "フラグメント化",
	})
}
