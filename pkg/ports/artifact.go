package ports

import "io"

// Artifact is the input handed to a pipeline run. The runner treats it
// as opaque; only stage work units read it. The intake layer is
// responsible for validation before an Artifact reaches the runner.
type Artifact interface {
	// Name returns a human-readable identifier, typically the file name.
	Name() string

	// Size returns the artifact size in bytes.
	Size() int64

	// Open returns a fresh reader positioned at the start of the media.
	// Each caller owns the returned handle and must close it.
	Open() (io.ReadSeekCloser, error)
}
