// Package navigator adapts an etree document tree to the antchfx/xpath
// NodeNavigator interface so XPath expressions can be evaluated against it.
package navigator

import (
	"strings"

	"github.com/antchfx/xpath"
	"github.com/beevik/etree"
)

// Navigator is a cursor over an etree tree. root is the element treated as
// the XPath root node (normally the document element, whose children include
// the document's root element). attr is an index into the current element's
// attribute list, or -1 when the cursor is not on an attribute.
type Navigator struct {
	root *etree.Element
	cur  etree.Token
	attr int
}

var _ xpath.NodeNavigator = (*Navigator)(nil)

// New returns a Navigator rooted at root and positioned at current; a nil
// current positions it at the root.
func New(root *etree.Element, current etree.Token) *Navigator {
	if current == nil {
		current = root
	}
	return &Navigator{root: root, cur: current, attr: -1}
}

// CurrentElement returns the element under the cursor, if the cursor is on a
// named element rather than an attribute, character data, or the root.
func (n *Navigator) CurrentElement() (*etree.Element, bool) {
	if n.attr >= 0 {
		return nil, false
	}
	el, ok := n.cur.(*etree.Element)
	if !ok || el.Tag == "" {
		return nil, false
	}
	return el, true
}

func (n *Navigator) NodeType() xpath.NodeType {
	if n.attr >= 0 {
		return xpath.AttributeNode
	}
	switch t := n.cur.(type) {
	case *etree.Element:
		if t == n.root {
			return xpath.RootNode
		}
		return xpath.ElementNode
	case *etree.CharData:
		return xpath.TextNode
	default:
		// comments, processing instructions, directives
		return xpath.CommentNode
	}
}

func (n *Navigator) LocalName() string {
	if el, ok := n.cur.(*etree.Element); ok {
		if n.attr >= 0 {
			return el.Attr[n.attr].Key
		}
		return el.Tag
	}
	return ""
}

func (n *Navigator) Prefix() string {
	if el, ok := n.cur.(*etree.Element); ok {
		if n.attr >= 0 {
			return el.Attr[n.attr].Space
		}
		return el.Space
	}
	return ""
}

func (n *Navigator) Value() string {
	switch t := n.cur.(type) {
	case *etree.Element:
		if n.attr >= 0 {
			return t.Attr[n.attr].Value
		}
		var b strings.Builder
		textContent(t, &b)
		return b.String()
	case *etree.CharData:
		return t.Data
	case *etree.Comment:
		return t.Data
	default:
		return ""
	}
}

func textContent(el *etree.Element, b *strings.Builder) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			textContent(t, b)
		}
	}
}

func (n *Navigator) Copy() xpath.NodeNavigator {
	nn := *n
	return &nn
}

func (n *Navigator) MoveToRoot() {
	n.cur = n.root
	n.attr = -1
}

func (n *Navigator) MoveToParent() bool {
	if n.attr >= 0 {
		n.attr = -1
		return true
	}
	if el, ok := n.cur.(*etree.Element); ok && el == n.root {
		return false
	}
	p := n.cur.Parent()
	if p == nil {
		return false
	}
	n.cur = p
	return true
}

func (n *Navigator) MoveToNextAttribute() bool {
	el, ok := n.cur.(*etree.Element)
	if !ok {
		return false
	}
	if n.attr+1 >= len(el.Attr) {
		return false
	}
	n.attr++
	return true
}

func (n *Navigator) MoveToChild() bool {
	if n.attr >= 0 {
		return false
	}
	el, ok := n.cur.(*etree.Element)
	if !ok || len(el.Child) == 0 {
		return false
	}
	n.cur = el.Child[0]
	return true
}

func (n *Navigator) MoveToFirst() bool {
	if n.attr >= 0 {
		return false
	}
	p := n.cur.Parent()
	if p == nil || len(p.Child) == 0 {
		return false
	}
	n.cur = p.Child[0]
	return true
}

func (n *Navigator) MoveToNext() bool {
	return n.moveSibling(1)
}

func (n *Navigator) MoveToPrevious() bool {
	return n.moveSibling(-1)
}

func (n *Navigator) moveSibling(delta int) bool {
	if n.attr >= 0 {
		return false
	}
	p := n.cur.Parent()
	if p == nil {
		return false
	}
	i := n.cur.Index() + delta
	if i < 0 || i >= len(p.Child) {
		return false
	}
	n.cur = p.Child[i]
	return true
}

func (n *Navigator) MoveTo(other xpath.NodeNavigator) bool {
	o, ok := other.(*Navigator)
	if !ok || o.root != n.root {
		return false
	}
	*n = *o
	return true
}
