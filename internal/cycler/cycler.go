// Package cycler serves image filenames in a fixed round-robin order.
//
// A Cycler owns an immutable copy of its image list and a cursor. Each call
// to Next returns the name under the cursor and then advances the cursor by
// one, wrapping at the end of the list. The order is deterministic; nothing
// here is random.
package cycler

import (
	"errors"
	"sync"

	"github.com/ssaunders/site/internal/logging"
)

// DefaultImages are the cat pictures shown on the homepage, in display order.
var DefaultImages = []string{
	"Frankie1.jpg",
	"Frankie2.jpg",
	"Gary-side.PNG",
	"Gary.jpg",
}

// ErrNoImages is returned by MustNext when the image list is empty.
var ErrNoImages = errors.New("no images available")

// Cycler hands out image names in order, wrapping around.
// It is safe for concurrent use.
type Cycler struct {
	mu     sync.Mutex
	images []string
	cursor int
	log    *logging.Logger
}

// Option configures a Cycler.
type Option func(*Cycler)

// WithLogger sets the logger used for the empty-list diagnostic.
func WithLogger(l *logging.Logger) Option {
	return func(c *Cycler) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a Cycler over a copy of images with the cursor at 0.
func New(images []string, opts ...Option) *Cycler {
	c := &Cycler{
		images: append([]string(nil), images...),
		log:    logging.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewDefault creates a Cycler over DefaultImages.
func NewDefault(opts ...Option) *Cycler {
	return New(DefaultImages, opts...)
}

// Next returns the image under the cursor and advances the cursor.
// With an empty list it logs a warning and returns ("", false); the cursor
// is left alone.
func (c *Cycler) Next() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.images) == 0 {
		c.log.Warn("no images available", "cursor", c.cursor)
		return "", false
	}

	name := c.images[c.cursor]
	c.cursor = (c.cursor + 1) % len(c.images)
	return name, true
}

// MustNext is Next with the empty-list case reported as ErrNoImages.
func (c *Cycler) MustNext() (string, error) {
	name, ok := c.Next()
	if !ok {
		return "", ErrNoImages
	}
	return name, nil
}

// Cursor returns the index of the image the next call to Next will return.
func (c *Cycler) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

// Len returns the number of images in the cycle.
func (c *Cycler) Len() int {
	return len(c.images)
}

// Images returns a copy of the image list.
func (c *Cycler) Images() []string {
	return append([]string(nil), c.images...)
}
