package state

import (
	"github.com/google/uuid"
)

// newCaptureID returns a unique identifier for one capture instance so that
// several boards in one process log distinguishably.
func newCaptureID() string {
	return uuid.NewString()
}

// strokeCounter numbers strokes within one capture. Only the UI goroutine
// touches it, so it needs no synchronisation.
type strokeCounter struct {
	n uint64
}

func (c *strokeCounter) next() uint64 {
	c.n++
	return c.n
}

func (c *strokeCounter) current() uint64 { return c.n }
