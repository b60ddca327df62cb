package xmlq

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAttrLookup(t *testing.T) {
	doc := mustParse(t, `<dog name="Lander" breed="lab"/>`)
	dog := doc.FindFirst("dog")

	if got := dog.Attr("name"); got != "Lander" {
		t.Errorf("Attr(name) = %q, want %q", got, "Lander")
	}
	if _, ok := dog.AttrOK("color"); ok {
		t.Errorf("AttrOK(color) reported a missing attribute as present")
	}
	// attribute names are case-sensitive, unlike tag names
	if _, ok := dog.AttrOK("Name"); ok {
		t.Errorf("attribute lookup should be case-sensitive")
	}

	var absent Node
	if v, ok := absent.AttrOK("name"); v != "" || ok {
		t.Errorf("AttrOK on absent node = (%q, %v), want (\"\", false)", v, ok)
	}
}

func TestSetAttrRoundTrip(t *testing.T) {
	doc := mustParse(t, `<dog name="Lander" breed="lab"/>`)
	dog := doc.FindFirst("dog")

	// overwrite an existing attribute, then create a new one, chained
	dog.SetAttr("name", "Rex").SetAttr("color", "black")

	if got := dog.Attr("name"); got != "Rex" {
		t.Errorf("updated attribute = %q, want %q", got, "Rex")
	}
	if got := dog.Attr("color"); got != "black" {
		t.Errorf("created attribute = %q, want %q", got, "black")
	}

	// existing attributes keep declaration order; new ones append
	s, err := doc.String()
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	if !strings.Contains(s, `<dog name="Rex" breed="lab" color="black"/>`) {
		t.Errorf("serialized attribute order wrong:\n%s", s)
	}
}

func TestSetAttrOnAbsentNode(t *testing.T) {
	var absent Node
	got := absent.SetAttr("name", "value")
	if got.OK() {
		t.Errorf("SetAttr on absent node produced a node")
	}
}

func TestAttrsSnapshot(t *testing.T) {
	doc := mustParse(t, `<dog name="Lander" breed="lab" color="black"/>`)
	dog := doc.FindFirst("dog")

	attrs := dog.Attrs()
	if attrs.Len() != 3 {
		t.Fatalf("Len = %d, want 3", attrs.Len())
	}
	if diff := cmp.Diff([]string{"name", "breed", "color"}, attrs.Keys()); diff != "" {
		t.Errorf("declaration order lost (-want +got):\n%s", diff)
	}
	if v, ok := attrs.Get("breed"); !ok || v != "lab" {
		t.Errorf("Get(breed) = (%q, %v), want (lab, true)", v, ok)
	}

	// the snapshot is detached: mutating it must not touch the node
	m := attrs.Unordered()
	m["name"] = "clobbered"
	keys := attrs.Keys()
	keys[0] = "clobbered"
	if got := dog.Attr("name"); got != "Lander" {
		t.Errorf("snapshot mutation leaked into the node: %q", got)
	}

	if got := (Node{}).Attrs(); got.Len() != 0 {
		t.Errorf("Attrs on absent node = %d entries, want 0", got.Len())
	}
}

func TestAttributesString(t *testing.T) {
	doc := mustParse(t, `<dog name="Lander" breed="lab"/>`)
	got := doc.FindFirst("dog").Attrs().String()
	want := ` name="Lander" breed="lab"`
	if got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
