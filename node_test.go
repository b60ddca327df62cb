package xmlq

import (
	"strings"
	"testing"
)

func TestTextRoundTrip(t *testing.T) {
	doc := mustParse(t, `<dog><name>Lander</name></dog>`)
	name := doc.FindFirst("name")

	if got := name.Text(); got != "Lander" {
		t.Errorf("Text = %q, want %q", got, "Lander")
	}

	name.SetText("Rex")
	if got := name.Text(); got != "Rex" {
		t.Errorf("Text after SetText = %q, want %q", got, "Rex")
	}

	s, err := doc.String()
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	if !strings.Contains(s, "<name>Rex</name>") {
		t.Errorf("serialized output missing updated text:\n%s", s)
	}
	if strings.Contains(s, "Lander") {
		t.Errorf("serialized output still carries replaced text:\n%s", s)
	}
}

func TestTextOnAbsentAndEmpty(t *testing.T) {
	doc := mustParse(t, `<dog><name/></dog>`)

	if got := doc.FindFirst("name").Text(); got != "" {
		t.Errorf("empty element text = %q, want \"\"", got)
	}

	var absent Node
	if got := absent.Text(); got != "" {
		t.Errorf("absent node text = %q, want \"\"", got)
	}
	if absent.SetText("x").OK() {
		t.Errorf("SetText on absent node produced a node")
	}
}

func TestEnsureChildCreates(t *testing.T) {
	doc := mustParse(t, dogsXML)
	root := doc.Root()

	collar := root.FindFirst("dog").EnsureChild("collar")
	if !collar.OK() {
		t.Fatalf("EnsureChild created nothing")
	}
	if got := collar.Name(); got != "collar" {
		t.Errorf("created child name = %q, want %q", got, "collar")
	}
	if collar.Parent().Element() != root.FindFirst("dog").Element() {
		t.Errorf("created child attached to the wrong parent")
	}
}

func TestEnsureChildIdempotent(t *testing.T) {
	doc := mustParse(t, dogsXML)
	dog := doc.FindFirst("dog")

	first := dog.EnsureChild("collar")
	first.SetAttr("size", "12")
	second := dog.EnsureChild("collar")

	if first.Element() != second.Element() {
		t.Errorf("EnsureChild created a duplicate child")
	}
	if got := len(dog.FindAll("collar")); got != 1 {
		t.Errorf("collar count = %d, want 1", got)
	}
}

func TestEnsureChildFindsDeepDescendant(t *testing.T) {
	doc := mustParse(t, `<a><b><c/></b></a>`)
	a := doc.FindFirst("a")

	c := a.EnsureChild("c")
	if c.Parent().Name() != "b" {
		t.Errorf("EnsureChild should return the existing deep descendant, got child of %q", c.Parent().Name())
	}
	if got := len(doc.FindAll("c")); got != 1 {
		t.Errorf("c count = %d, want 1", got)
	}
}

func TestEnsureChildInheritsNamespace(t *testing.T) {
	doc := mustParse(t, `<ms:project xmlns:ms="urn:example"><ms:items/></ms:project>`)
	items := doc.FindFirst("items")

	widget := items.EnsureChild("widget")
	if !widget.OK() {
		t.Fatalf("EnsureChild created nothing")
	}
	if got := widget.Element().FullTag(); got != "ms:widget" {
		t.Errorf("created child tag = %q, want %q", got, "ms:widget")
	}
}

func TestEnsureChildOnAbsentNode(t *testing.T) {
	var absent Node
	if absent.EnsureChild("x").OK() {
		t.Errorf("EnsureChild on absent node produced a node")
	}
}

func TestNodeNavigation(t *testing.T) {
	doc := mustParse(t, nestedXML)

	root := doc.Root()
	if got := root.Name(); got != "stuff" {
		t.Errorf("root name = %q, want %q", got, "stuff")
	}
	if root.Parent().OK() {
		t.Errorf("root element should have no parent node")
	}

	kids := root.Children()
	if len(kids) != 2 || kids[0].Name() != "more" || kids[1].Name() != "other" {
		t.Errorf("children of root = %v, want [more other]", names(kids))
	}

	thing := doc.FindFirst("thing")
	if got := thing.Parent().Name(); got != "more" {
		t.Errorf("parent of first thing = %q, want %q", got, "more")
	}
}

func TestNodeString(t *testing.T) {
	doc := mustParse(t, dogsXML)

	got := doc.FindFirst("dog").String()
	if got != `<dog name="Lander"/>` {
		t.Errorf("Node.String = %q", got)
	}
	if (Node{}).String() != "" {
		t.Errorf("absent Node.String should be empty")
	}
}
