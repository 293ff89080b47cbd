// Package applier writes the next cat picture into a page's image element.
package applier

import (
	"github.com/ssaunders/site/internal/logging"
)

// Defaults for the homepage cat picture.
const (
	DefaultPrefix    = "../static/img/"
	DefaultElementID = "cat-image"
	DefaultAttribute = "src"
)

// Source yields image filenames. *cycler.Cycler satisfies it.
type Source interface {
	Next() (string, bool)
}

// Element is a single addressable element of a page.
type Element interface {
	SetAttribute(key, value string)
}

// Document finds elements by id.
type Document interface {
	ElementByID(id string) (Element, bool)
}

// Applier takes one name from a Source per call and assigns the resulting
// path to an element's attribute.
type Applier struct {
	src         Source
	prefix      string
	elementID   string
	attribute   string
	placeholder string
	log         *logging.Logger
}

// Option configures an Applier.
type Option func(*Applier)

// WithPrefix sets the path prefix prepended to each filename.
func WithPrefix(prefix string) Option {
	return func(a *Applier) { a.prefix = prefix }
}

// WithElementID sets the id of the element to update.
func WithElementID(id string) Option {
	return func(a *Applier) { a.elementID = id }
}

// WithPlaceholder sets a filename to show when the source has nothing to
// give. An empty placeholder means the element is left untouched.
func WithPlaceholder(name string) Option {
	return func(a *Applier) { a.placeholder = name }
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(a *Applier) {
		if l != nil {
			a.log = l
		}
	}
}

// New creates an Applier reading from src.
func New(src Source, opts ...Option) *Applier {
	a := &Applier{
		src:       src,
		prefix:    DefaultPrefix,
		elementID: DefaultElementID,
		attribute: DefaultAttribute,
		log:       logging.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Path returns the attribute value for a filename.
func (a *Applier) Path(name string) string {
	return a.prefix + name
}

// ElementID returns the id of the element the Applier writes to.
func (a *Applier) ElementID() string {
	return a.elementID
}

// Apply advances the source once and writes the resulting path into doc.
// It returns the value written and whether anything was written. When the
// source is empty and no placeholder is set, or the element is missing,
// the document is not modified.
func (a *Applier) Apply(doc Document) (string, bool) {
	value, ok := a.nextValue()
	if !ok {
		return "", false
	}

	el, found := doc.ElementByID(a.elementID)
	if !found {
		a.log.Warn("image element not found", "id", a.elementID)
		return "", false
	}

	el.SetAttribute(a.attribute, value)
	a.log.Debug("applied image", "id", a.elementID, a.attribute, value)
	return value, true
}

func (a *Applier) nextValue() (string, bool) {
	if name, ok := a.src.Next(); ok {
		return a.Path(name), true
	}
	if a.placeholder != "" {
		return a.Path(a.placeholder), true
	}
	return "", false
}
