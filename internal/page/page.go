// Package page wraps a parsed HTML document so elements can be found by id
// and have their attributes rewritten before the page is rendered.
package page

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/ssaunders/site/internal/applier"
)

// Document is a parsed HTML document. It is not safe for concurrent use.
type Document struct {
	root *html.Node
}

// Element is one element node of a Document.
type Element struct {
	node *html.Node
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseBytes parses an HTML document held in memory.
func ParseBytes(b []byte) (*Document, error) {
	return Parse(bytes.NewReader(b))
}

// Find returns the first element whose id attribute equals id.
func (d *Document) Find(id string) (*Element, bool) {
	n := findByID(d.root, id)
	if n == nil {
		return nil, false
	}
	return &Element{node: n}, true
}

// ElementByID implements applier.Document.
func (d *Document) ElementByID(id string) (applier.Element, bool) {
	el, ok := d.Find(id)
	if !ok {
		return nil, false
	}
	return el, true
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	return nil
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	return &Document{root: cloneNode(d.root)}
}

// Attribute returns the value of the named attribute.
func (e *Element) Attribute(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute sets the named attribute, adding it when absent.
func (e *Element) SetAttribute(key, value string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: value})
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.node.Data
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func cloneNode(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneNode(child))
	}
	return c
}
