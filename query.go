package xmlq

import (
	"strings"

	"github.com/beevik/etree"
)

// Tag name comparisons throughout are case-insensitive; attribute names are
// not (they follow the host DOM exactly).

// FindAllFunc returns every descendant element for which match holds, in
// depth-first pre-order. The receiver itself is not a candidate, and
// traversal continues beneath matching elements. An absent receiver or nil
// predicate yields an empty result.
func (n Node) FindAllFunc(match func(Node) bool) []Node {
	if n.el == nil || match == nil {
		return nil
	}
	return collectMatches(n.el, match, nil)
}

func collectMatches(el *etree.Element, match func(Node) bool, out []Node) []Node {
	for _, child := range el.ChildElements() {
		if match(Node{el: child}) {
			out = append(out, Node{el: child})
		}
		out = collectMatches(child, match, out)
	}
	return out
}

// FindAll returns every descendant element located by path. A single tag
// name matches by name; a whitespace-separated path such as "toys dog"
// is split into segments and resolved as FindAllTags(segments...).
func (n Node) FindAll(path string) []Node {
	return n.FindAllTags(strings.Fields(path)...)
}

// FindAllTags resolves a compound path of tag-name segments: the first
// segment is looked up beneath the receiver, and each later segment beneath
// every element of the previous result set, preserving order. Segments bind
// to descendants, not only immediate children, so FindAllTags("a", "c")
// matches a c nested anywhere under an a.
func (n Node) FindAllTags(tags ...string) []Node {
	if n.el == nil || len(tags) == 0 {
		return nil
	}
	matches := n.findAllNamed(tags[0])
	for _, tag := range tags[1:] {
		var next []Node
		for _, m := range matches {
			next = append(next, m.findAllNamed(tag)...)
		}
		matches = next
	}
	return matches
}

func (n Node) findAllNamed(name string) []Node {
	return n.FindAllFunc(func(c Node) bool {
		return strings.EqualFold(c.Name(), name)
	})
}

// FindFirstFunc returns the first descendant element, in pre-order, for
// which match holds. Traversal stops as soon as a match is found.
func (n Node) FindFirstFunc(match func(Node) bool) Node {
	if n.el == nil || match == nil {
		return Node{}
	}
	return firstMatch(n.el, match)
}

func firstMatch(el *etree.Element, match func(Node) bool) Node {
	for _, child := range el.ChildElements() {
		if match(Node{el: child}) {
			return Node{el: child}
		}
		if found := firstMatch(child, match); found.OK() {
			return found
		}
	}
	return Node{}
}

// FindFirst returns the first element located by path, or the absent Node.
// For a single tag name the search short-circuits on the first pre-order
// match; a multi-segment path returns the head of the FindAll result.
func (n Node) FindFirst(path string) Node {
	segments := strings.Fields(path)
	switch len(segments) {
	case 0:
		return Node{}
	case 1:
		name := segments[0]
		return n.FindFirstFunc(func(c Node) bool {
			return strings.EqualFold(c.Name(), name)
		})
	default:
		if all := n.FindAllTags(segments...); len(all) > 0 {
			return all[0]
		}
		return Node{}
	}
}

// FindNested returns the first descendant, in pre-order, whose tag name is
// the last of tags and whose ancestor-name sequence contains the earlier
// tags in root-to-leaf order as a (not necessarily contiguous) subsequence.
// FindNested("project", "propertygroup", "outputpath") finds the first
// outputpath beneath a propertygroup that is itself beneath a project, with
// arbitrary nesting between them.
func (n Node) FindNested(tags ...string) Node {
	if n.el == nil || len(tags) == 0 {
		return Node{}
	}
	target := tags[len(tags)-1]
	ancestors := tags[:len(tags)-1]
	return n.FindFirstFunc(func(c Node) bool {
		return strings.EqualFold(c.Name(), target) && c.HasAncestors(ancestors...)
	})
}

// HasAncestors reports whether the receiver's chain of ancestor tag names,
// read root to leaf, contains tags in order as a subsequence. It is false
// for an absent Node and vacuously true for an empty tag list.
func (n Node) HasAncestors(tags ...string) bool {
	if n.el == nil {
		return false
	}
	// chain is collected leaf to root, so walk it backwards
	var chain []string
	for p := n.el.Parent(); p != nil; p = p.Parent() {
		chain = append(chain, p.Tag)
	}
	i := 0
	for k := len(chain) - 1; k >= 0 && i < len(tags); k-- {
		if strings.EqualFold(chain[k], tags[i]) {
			i++
		}
	}
	return i == len(tags)
}
