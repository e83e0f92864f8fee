package mocks

import (
	"bytes"
	"io"

	"github.com/user/vidcheck/pkg/ports"
)

// Artifact is a mock implementation of ports.Artifact backed by an
// in-memory byte slice.
type Artifact struct {
	NameValue string
	Data      []byte

	OpenFunc func() (io.ReadSeekCloser, error)
}

// NewArtifact creates a new mock Artifact with the given name and contents.
func NewArtifact(name string, data []byte) *Artifact {
	return &Artifact{NameValue: name, Data: data}
}

func (m *Artifact) Name() string {
	return m.NameValue
}

func (m *Artifact) Size() int64 {
	return int64(len(m.Data))
}

func (m *Artifact) Open() (io.ReadSeekCloser, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc()
	}
	return nopCloser{bytes.NewReader(m.Data)}, nil
}

type nopCloser struct {
	*bytes.Reader
}

func (nopCloser) Close() error { return nil }

var _ ports.Artifact = (*Artifact)(nil)
