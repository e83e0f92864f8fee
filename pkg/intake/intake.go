// Package intake validates input media and prepares the artifact handed
// to the pipeline. The runner performs no validation of its own; by the
// time an artifact reaches it, intake has verified the container.
package intake

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ideamans/go-l10n"

	"github.com/user/vidcheck/pkg/media"
	"github.com/user/vidcheck/pkg/ports"
)

// ErrUnsupportedMedia is returned for inputs that are not an MP4 video.
var ErrUnsupportedMedia = errors.New("unsupported media type")

// supportedExtensions are the file extensions accepted as MP4 input.
var supportedExtensions = map[string]bool{
	".mp4": true,
	".m4v": true,
	".mov": true,
}

// Intake validates video files and produces pipeline artifacts.
type Intake struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates an Intake.
func New(fs ports.FileSystem, logger ports.Logger) *Intake {
	return &Intake{fs: fs, logger: logger.WithComponent("intake")}
}

// Prepare validates the file at path and returns a ready-to-use
// artifact together with the probed container info. It fails with an
// error wrapping ErrUnsupportedMedia when the extension or container
// is not an MP4 video.
func (i *Intake) Prepare(path string) (ports.Artifact, *media.Info, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return nil, nil, fmt.Errorf("%w: extension %q", ErrUnsupportedMedia, ext)
	}

	exists, err := i.fs.Exists(path)
	if err != nil {
		return nil, nil, fmt.Errorf("stat input: %w", err)
	}
	if !exists {
		return nil, nil, fmt.Errorf("input file not found: %s", path)
	}

	size, err := i.fs.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("stat input: %w", err)
	}

	artifact := NewFileArtifact(path, size)

	info, err := media.ProbeArtifact(artifact)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnsupportedMedia, err)
	}

	i.logger.Debug(l10n.F("Validated %s: codec %s, %d samples, %d ms", artifact.Name(), info.Codec, info.SampleCount(), info.DurationMs))

	if info.Codec == media.CodecUnknown {
		i.logger.Warn(l10n.T("Video codec not recognized; container scores will be reduced"))
	}

	return artifact, info, nil
}
