package xmlq

import (
	"strings"

	"github.com/beevik/etree"
)

// Node is a handle to a single element in a parsed XML tree. The zero Node
// is "absent": every method on it returns an empty result rather than
// failing, so lookups and accessors can be chained without intermediate nil
// checks.
type Node struct {
	el *etree.Element
}

// Wrap returns a Node over an etree element. Wrap(nil) is the absent Node.
func Wrap(el *etree.Element) Node {
	return Node{el: el}
}

// OK reports whether the Node refers to an element.
func (n Node) OK() bool {
	return n.el != nil
}

// Element returns the underlying etree element, or nil for an absent Node.
func (n Node) Element() *etree.Element {
	return n.el
}

// Name returns the element's tag name, without any namespace prefix.
func (n Node) Name() string {
	if n.el == nil {
		return ""
	}
	return n.el.Tag
}

// Parent returns the element's parent, or an absent Node for an absent Node
// or the root element.
func (n Node) Parent() Node {
	if n.el == nil {
		return Node{}
	}
	p := n.el.Parent()
	if p == nil || p.Tag == "" {
		return Node{}
	}
	return Node{el: p}
}

// Children returns the element's immediate child elements in document order.
func (n Node) Children() []Node {
	if n.el == nil {
		return nil
	}
	kids := n.el.ChildElements()
	out := make([]Node, len(kids))
	for i, el := range kids {
		out[i] = Node{el: el}
	}
	return out
}

// Text returns the element's character data, or "" for an absent Node or an
// element with no text.
func (n Node) Text() string {
	if n.el == nil {
		return ""
	}
	return n.el.Text()
}

// SetText replaces the element's character data and returns the same Node
// for chaining. A no-op on an absent Node.
func (n Node) SetText(value string) Node {
	if n.el != nil {
		n.el.SetText(value)
	}
	return n
}

// EnsureChild returns the first descendant element with the given tag name,
// creating and appending a new empty child element if none exists. A created
// child inherits the namespace prefix of the nearest prefixed ancestor,
// found by walking parent links. Returns the absent Node for an absent
// receiver.
func (n Node) EnsureChild(tag string) Node {
	if n.el == nil {
		return Node{}
	}
	if found := n.FindFirst(tag); found.OK() {
		return found
	}
	if space := n.inheritedSpace(); space != "" {
		return Node{el: n.el.CreateElement(space + ":" + tag)}
	}
	return Node{el: n.el.CreateElement(tag)}
}

// inheritedSpace returns the namespace prefix of the receiver or its nearest
// prefixed ancestor, or "".
func (n Node) inheritedSpace() string {
	for el := n.el; el != nil; el = el.Parent() {
		if el.Space != "" {
			return el.Space
		}
	}
	return ""
}

// String returns the element serialized as indented XML, without an XML
// declaration. Absent Nodes serialize to "".
func (n Node) String() string {
	if n.el == nil {
		return ""
	}
	doc := etree.NewDocument()
	doc.SetRoot(n.el.Copy())
	doc.Indent(2)
	s, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return strings.TrimRight(s, " \t\r\n")
}
