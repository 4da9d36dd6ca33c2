package json

import (
	"bytes"
	"testing"

	"github.com/pbanos/sapling/attribute"
	"github.com/pbanos/sapling/instance"
	"github.com/pbanos/sapling/tree"
)

func grownTree(t *testing.T) (tree.Tree, *attribute.Set) {
	color := attribute.New("color", []string{"red", "green", "blue"})
	size := attribute.New("size", []string{"small", "big"})
	grade := attribute.New("grade", []string{"yes", "no"})
	attrs, err := attribute.NewSet([]*attribute.Attribute{color, size, grade}, 2)
	if err != nil {
		t.Fatal(err)
	}
	s, err := instance.NewSet(attrs, []instance.Instance{
		instance.New([]string{"red", "small", "yes"}),
		instance.New([]string{"red", "big", "no"}),
		instance.New([]string{"green", "small", "yes"}),
		instance.New([]string{"green", "big", "yes"}),
		instance.New([]string{"blue", "small", "no"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	tr, err := tree.Grow(s)
	if err != nil {
		t.Fatal(err)
	}
	return tr, attrs
}

func TestWriteReadTree(t *testing.T) {
	tr, attrs := grownTree(t)
	var buf bytes.Buffer
	err := WriteTree(&buf, tr, attrs)
	if err != nil {
		t.Fatal(err)
	}
	rebuilt, err := ReadTree(&buf, attrs)
	if err != nil {
		t.Fatal(err)
	}
	var original, decoded bytes.Buffer
	tr.Print(&original)
	rebuilt.Print(&decoded)
	if original.String() != decoded.String() {
		t.Errorf("expected rebuilt tree to print as:\n%s got:\n%s", original.String(), decoded.String())
	}
	in := instance.New([]string{"red", "big", ""})
	want, err := tr.Decide(attrs, in)
	if err != nil {
		t.Fatal(err)
	}
	got, err := rebuilt.Decide(attrs, in)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Error("expected rebuilt tree decision to be:", want, "got:", got)
	}
}

func TestEncodeDecoderRoundTrip(t *testing.T) {
	tr, attrs := grownTree(t)
	ed := NewEncodeDecoder(attrs)
	data, err := ed.Encode(tr)
	if err != nil {
		t.Fatal(err)
	}
	rebuilt, err := ed.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	var original, decoded bytes.Buffer
	tr.Print(&original)
	rebuilt.Print(&decoded)
	if original.String() != decoded.String() {
		t.Errorf("expected decoded tree to print as:\n%s got:\n%s", original.String(), decoded.String())
	}
}

func TestReadTreeClassMismatch(t *testing.T) {
	tr, attrs := grownTree(t)
	var buf bytes.Buffer
	err := WriteTree(&buf, tr, attrs)
	if err != nil {
		t.Fatal(err)
	}
	color := attribute.New("color", []string{"red", "green", "blue"})
	size := attribute.New("size", []string{"small", "big"})
	quality := attribute.New("quality", []string{"yes", "no"})
	other, err := attribute.NewSet([]*attribute.Attribute{color, size, quality}, 2)
	if err != nil {
		t.Fatal(err)
	}
	_, err = ReadTree(&buf, other)
	if err == nil {
		t.Error("expected an error reading a tree against a set with a different class attribute")
	}
}

func TestReadTreeUnknownDecision(t *testing.T) {
	_, attrs := grownTree(t)
	doc := `{"class":"grade","root":{"label":"ROOT","depth":0,"decision":"maybe"}}`
	_, err := ReadTree(bytes.NewReader([]byte(doc)), attrs)
	if err == nil {
		t.Error("expected an error for a leaf decision outside the class attribute's legal values")
	}
}

func TestReadTreeRootLabelAndDepth(t *testing.T) {
	_, attrs := grownTree(t)
	docs := []string{
		`{"class":"grade","root":{"label":"sunny","depth":0,"decision":"yes"}}`,
		`{"class":"grade","root":{"label":"ROOT","depth":3,"decision":"yes"}}`,
	}
	for _, doc := range docs {
		_, err := ReadTree(bytes.NewReader([]byte(doc)), attrs)
		if err == nil {
			t.Error("expected an error for a root node not labeled ROOT at depth 0 in:", doc)
		}
	}
}

func TestReadTreeChildDepthMismatch(t *testing.T) {
	_, attrs := grownTree(t)
	doc := `{"class":"grade","root":{"label":"ROOT","depth":0,"attribute":"size","children":{` +
		`"small":{"label":"small","depth":1,"decision":"yes"},` +
		`"big":{"label":"big","depth":2,"decision":"no"}}}}`
	_, err := ReadTree(bytes.NewReader([]byte(doc)), attrs)
	if err == nil {
		t.Error("expected an error for a child node not one level below its parent")
	}
}

func TestReadTreeNoRoot(t *testing.T) {
	_, attrs := grownTree(t)
	doc := `{"class":"grade"}`
	_, err := ReadTree(bytes.NewReader([]byte(doc)), attrs)
	if err == nil {
		t.Error("expected an error for a tree document without a root node")
	}
}
