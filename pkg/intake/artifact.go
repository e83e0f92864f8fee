package intake

import (
	"io"
	"os"
	"path/filepath"

	"github.com/user/vidcheck/pkg/ports"
)

// FileArtifact is a ports.Artifact backed by a file on disk. Open
// returns a fresh handle each time, so stages never share a read
// position.
type FileArtifact struct {
	path string
	size int64
}

// NewFileArtifact creates an artifact for the file at path.
func NewFileArtifact(path string, size int64) *FileArtifact {
	return &FileArtifact{path: path, size: size}
}

// Name returns the base name of the file.
func (a *FileArtifact) Name() string {
	return filepath.Base(a.path)
}

// Size returns the file size in bytes.
func (a *FileArtifact) Size() int64 {
	return a.size
}

// Path returns the full path of the file.
func (a *FileArtifact) Path() string {
	return a.path
}

// Open opens the file for reading.
func (a *FileArtifact) Open() (io.ReadSeekCloser, error) {
	return os.Open(a.path)
}

// Ensure FileArtifact implements ports.Artifact
var _ ports.Artifact = (*FileArtifact)(nil)
