package mocks

import (
	"sync"

	"github.com/user/vidcheck/pkg/ports"
)

// BadgeRenderer is a mock implementation of ports.BadgeRenderer.
type BadgeRenderer struct {
	mu    sync.Mutex
	specs []ports.BadgeSpec

	RenderFunc func(spec ports.BadgeSpec) ([]byte, error)
}

func (m *BadgeRenderer) Render(spec ports.BadgeSpec) ([]byte, error) {
	m.mu.Lock()
	m.specs = append(m.specs, spec)
	m.mu.Unlock()
	if m.RenderFunc != nil {
		return m.RenderFunc(spec)
	}
	return []byte("PNG"), nil
}

// Rendered returns the specs passed to Render (for test verification).
func (m *BadgeRenderer) Rendered() []ports.BadgeSpec {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ports.BadgeSpec, len(m.specs))
	copy(out, m.specs)
	return out
}

var _ ports.BadgeRenderer = (*BadgeRenderer)(nil)
