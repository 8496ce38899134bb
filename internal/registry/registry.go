// Package registry selects a tag codec for a file among sibling formats.
package registry

import (
	"io"
	"sync"

	"github.com/simonhull/apetag/internal/types"
)

// Codec is the interface every tag format codec implements.
type Codec interface {
	// Name identifies the format, e.g. "APE".
	Name() string

	// CanHandle reports whether f carries a tag in this format.
	CanHandle(f io.ReadSeeker) bool

	// Populate maps the tag in f into tags. A file without a tag in this
	// format leaves tags unmodified.
	Populate(f io.ReadSeeker, tags *types.Tags) ([]types.Warning, error)

	// Write replaces the tag in f with one built from tags.
	Write(f types.File, tags *types.Tags) error
}

// Selector holds codecs in registration order and picks the first one
// that can handle a file.
type Selector struct {
	mu     sync.RWMutex
	codecs []Codec
}

// NewSelector creates a Selector with the given codecs.
func NewSelector(codecs ...Codec) *Selector {
	s := &Selector{}
	for _, c := range codecs {
		s.Register(c)
	}
	return s
}

// Register adds a codec. A codec with the same name replaces the earlier
// one in place.
func (s *Selector) Register(c Codec) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.codecs {
		if existing.Name() == c.Name() {
			s.codecs[i] = c
			return
		}
	}
	s.codecs = append(s.codecs, c)
}

// Get returns the codec with the given name.
// Returns nil if no codec is registered under that name.
func (s *Selector) Get(name string) Codec {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.codecs {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// Select returns the first codec whose CanHandle accepts f.
// Returns nil if none does.
func (s *Selector) Select(f io.ReadSeeker) Codec {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.codecs {
		if c.CanHandle(f) {
			return c
		}
	}
	return nil
}

// Names returns the registered codec names in order.
func (s *Selector) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.codecs))
	for i, c := range s.codecs {
		names[i] = c.Name()
	}
	return names
}
