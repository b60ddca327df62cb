package xmlq

import (
	"fmt"

	"github.com/antchfx/xpath"
	"github.com/beevik/etree"

	"github.com/sblinch/xmlq-go/internal/navigator"
)

// Select evaluates an XPath expression relative to the receiver and returns
// the matching elements in document order. Non-element results (attributes,
// text) are omitted. An absent receiver yields an empty result and no error;
// an invalid expression returns an error.
func (n Node) Select(expr string) ([]Node, error) {
	if n.el == nil {
		return nil, nil
	}
	return selectNodes(topElement(n.el), n.el, expr)
}

// SelectFirst evaluates an XPath expression relative to the receiver and
// returns the first matching element, or the absent Node.
func (n Node) SelectFirst(expr string) (Node, error) {
	matches, err := n.Select(expr)
	if err != nil || len(matches) == 0 {
		return Node{}, err
	}
	return matches[0], nil
}

// Select evaluates an XPath expression against the whole document; absolute
// paths such as "/dogs/dog" resolve from the document root.
func (d *Document) Select(expr string) ([]Node, error) {
	if d == nil || d.doc == nil {
		return nil, nil
	}
	top := &d.doc.Element
	return selectNodes(top, top, expr)
}

// SelectFirst evaluates an XPath expression against the whole document and
// returns the first matching element, or the absent Node.
func (d *Document) SelectFirst(expr string) (Node, error) {
	matches, err := d.Select(expr)
	if err != nil || len(matches) == 0 {
		return Node{}, err
	}
	return matches[0], nil
}

func selectNodes(root, current *etree.Element, expr string) ([]Node, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("xmlq: compile xpath %q: %w", expr, err)
	}
	iter := x.Select(navigator.New(root, current))
	var out []Node
	for iter.MoveNext() {
		nav, ok := iter.Current().(*navigator.Navigator)
		if !ok {
			continue
		}
		if el, ok := nav.CurrentElement(); ok {
			out = append(out, Node{el: el})
		}
	}
	return out, nil
}

// topElement walks parent links to the topmost element containing el, which
// for an element inside a Document is the document element itself.
func topElement(el *etree.Element) *etree.Element {
	for el.Parent() != nil {
		el = el.Parent()
	}
	return el
}
