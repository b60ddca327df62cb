package xmlq

import "strings"

// Attributes is an ordered name-to-value snapshot of an element's
// attributes, detached from the element. Mutating it never writes through to
// the element.
type Attributes struct {
	order []string
	attrs map[string]string
}

// Len returns the number of attributes.
func (a Attributes) Len() int {
	return len(a.order)
}

// Get returns the value for the named attribute and whether it is present.
func (a Attributes) Get(name string) (string, bool) {
	v, ok := a.attrs[name]
	return v, ok
}

// Keys returns the attribute names in declaration order.
func (a Attributes) Keys() []string {
	keys := make([]string, len(a.order))
	copy(keys, a.order)
	return keys
}

// Unordered returns the attributes as a plain map.
func (a Attributes) Unordered() map[string]string {
	m := make(map[string]string, len(a.order))
	for k, v := range a.attrs {
		m[k] = v
	}
	return m
}

func (a *Attributes) add(name, value string) {
	if a.attrs == nil {
		a.attrs = make(map[string]string, 8)
	}
	if _, exists := a.attrs[name]; !exists {
		a.order = append(a.order, name)
	}
	a.attrs[name] = value
}

// String returns the attributes rendered as they would appear inside an
// element's opening tag.
func (a Attributes) String() string {
	b := make([]byte, 0, len(a.order)*16)
	for _, k := range a.order {
		b = append(b, ' ')
		b = append(b, k...)
		b = append(b, '=', '"')
		b = append(b, a.attrs[k]...)
		b = append(b, '"')
	}
	return string(b)
}

// Attr returns the value of the named attribute, or "" if the Node is
// absent or lacks the attribute. Names with a namespace prefix match the
// attribute's full key.
func (n Node) Attr(name string) string {
	v, _ := n.AttrOK(name)
	return v
}

// AttrOK returns the value of the named attribute and whether it is present.
func (n Node) AttrOK(name string) (string, bool) {
	if n.el == nil {
		return "", false
	}
	for _, a := range n.el.Attr {
		if a.Key == name && a.Space == "" {
			return a.Value, true
		}
		if strings.Contains(name, ":") && a.FullKey() == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr creates the named attribute or overwrites its value in place; an
// existing attribute keeps its declaration position and a new one appends.
// Returns the same Node for chaining; a no-op on an absent Node.
func (n Node) SetAttr(name, value string) Node {
	if n.el != nil {
		n.el.CreateAttr(name, value)
	}
	return n
}

// Attrs returns an ordered snapshot of the element's attributes, empty for
// an absent Node.
func (n Node) Attrs() Attributes {
	var out Attributes
	if n.el == nil {
		return out
	}
	for _, a := range n.el.Attr {
		out.add(a.FullKey(), a.Value)
	}
	return out
}
