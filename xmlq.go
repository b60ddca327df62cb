package xmlq

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/beevik/etree"
)

// ErrNoRoot is returned when non-empty input parses to a document with no
// root element (for example, input containing only comments).
var ErrNoRoot = errors.New("xmlq: document has no root element")

// ParseOptions specifies options for parsing an XML document
type ParseOptions struct {
	// Permissive allows input to contain common mistakes such as missing or
	// mismatched closing tags
	Permissive bool
	// PreserveCData retains CDATA sections rather than converting them to
	// ordinary character data
	PreserveCData bool
}

var DefaultParseOptions = ParseOptions{}

// Document owns a parsed XML tree and provides load/save operations for it.
// Every method tolerates a nil receiver, returning an empty result.
type Document struct {
	doc *etree.Document
}

// newReadDocument returns an empty etree document configured for parsing.
// The entity map is deliberately left empty and no charset reader is
// installed, so external entities and URIs are never resolved.
func newReadDocument(opts ParseOptions) *etree.Document {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = opts.Permissive
	doc.ReadSettings.PreserveCData = opts.PreserveCData
	return doc
}

// Parse parses an XML document from r and returns the parsed Document, or a
// non-nil error on failure. A reader yielding no content at all returns
// (nil, nil).
func Parse(r io.Reader) (*Document, error) {
	return ParseWithOptions(r, DefaultParseOptions)
}

// ParseWithOptions parses an XML document from r with the specified options.
func ParseWithOptions(r io.Reader, opts ParseOptions) (*Document, error) {
	doc := newReadDocument(opts)
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		if len(doc.Child) == 0 {
			return nil, nil
		}
		return nil, ErrNoRoot
	}
	return &Document{doc: doc}, nil
}

// ParseString parses an XML document from s. Empty (or whitespace-only)
// input is "no document": it returns (nil, nil). Malformed input returns the
// parser's error.
func ParseString(s string) (*Document, error) {
	return ParseStringWithOptions(s, DefaultParseOptions)
}

// ParseStringWithOptions parses an XML document from s with the specified
// options.
func ParseStringWithOptions(s string, opts ParseOptions) (*Document, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	doc := newReadDocument(opts)
	if err := doc.ReadFromString(s); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, ErrNoRoot
	}
	return &Document{doc: doc}, nil
}

// ParseFile reads the file at path and parses it as an XML document. An
// empty path or a missing file is "no document": it returns (nil, nil).
func ParseFile(path string) (*Document, error) {
	return ParseFileWithOptions(path, DefaultParseOptions)
}

// ParseFileWithOptions reads and parses the file at path with the specified
// options.
func ParseFileWithOptions(path string, opts ParseOptions) (*Document, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("xmlq: read %s: %w", path, err)
	}
	return ParseStringWithOptions(string(data), opts)
}

// NewDocument creates an empty Document with a single root element of the
// given name.
func NewDocument(rootTag string) *Document {
	doc := etree.NewDocument()
	doc.CreateElement(rootTag)
	return &Document{doc: doc}
}

// Root returns the document's root element, or an absent Node for a nil or
// empty document.
func (d *Document) Root() Node {
	if d == nil || d.doc == nil {
		return Node{}
	}
	return Node{el: d.doc.Root()}
}

// Tree returns the underlying etree document, or nil.
func (d *Document) Tree() *etree.Document {
	if d == nil {
		return nil
	}
	return d.doc
}

// top returns a Node over the document element itself, so that queries see
// the root element as a descendant (findAll over a document must be able to
// match the root).
func (d *Document) top() Node {
	if d == nil || d.doc == nil {
		return Node{}
	}
	return Node{el: &d.doc.Element}
}

// String serializes the document as pretty-printed XML: two-space
// indentation, an XML declaration, trailing whitespace trimmed. The
// document itself is not modified. A nil document serializes to "".
func (d *Document) String() (string, error) {
	if d == nil || d.doc == nil {
		return "", nil
	}
	cp := d.doc.Copy()
	ensureDeclaration(cp)
	cp.Indent(2)
	s, err := cp.WriteToString()
	if err != nil {
		return "", fmt.Errorf("xmlq: serialize: %w", err)
	}
	return strings.TrimRight(s, " \t\r\n"), nil
}

// WriteTo writes the serialized document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	s, err := d.String()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, s)
	return int64(n), err
}

// Save serializes the document and writes it to path, replacing any
// existing file. Saving a nil document is a no-op.
func (d *Document) Save(path string) error {
	if d == nil || d.doc == nil {
		return nil
	}
	s, err := d.String()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
		return fmt.Errorf("xmlq: save %s: %w", path, err)
	}
	return nil
}

// ensureDeclaration inserts a standard XML declaration at the top of doc
// unless one is already present.
func ensureDeclaration(doc *etree.Document) {
	for _, tok := range doc.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			return
		}
	}
	pi := doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	doc.RemoveChild(pi)
	doc.InsertChildAt(0, pi)
}

// FindAll locates elements in the document by whitespace-separated tag path;
// see Node.FindAll. The root element itself is a candidate.
func (d *Document) FindAll(path string) []Node {
	return d.top().FindAll(path)
}

// FindAllTags locates elements by discrete path segments; see
// Node.FindAllTags.
func (d *Document) FindAllTags(tags ...string) []Node {
	return d.top().FindAllTags(tags...)
}

// FindAllFunc locates elements matching an arbitrary predicate; see
// Node.FindAllFunc.
func (d *Document) FindAllFunc(match func(Node) bool) []Node {
	return d.top().FindAllFunc(match)
}

// FindFirst returns the first element matching a whitespace-separated tag
// path; see Node.FindFirst.
func (d *Document) FindFirst(path string) Node {
	return d.top().FindFirst(path)
}

// FindFirstFunc returns the first element matching a predicate; see
// Node.FindFirstFunc.
func (d *Document) FindFirstFunc(match func(Node) bool) Node {
	return d.top().FindFirstFunc(match)
}

// FindNested returns the first element satisfying an ordered ancestor-name
// sequence; see Node.FindNested.
func (d *Document) FindNested(tags ...string) Node {
	return d.top().FindNested(tags...)
}
