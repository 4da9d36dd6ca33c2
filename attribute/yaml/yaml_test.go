package yaml

import "testing"

func TestReadAttributeSet(t *testing.T) {
	md := []byte(`
attributes:
  outlook: [sunny, overcast, rain]
  humidity: [high, normal]
  play: ["yes", "no"]
class: play
`)
	attrs, err := ReadAttributeSet(md)
	if err != nil {
		t.Fatal(err)
	}
	if attrs.Len() != 3 {
		t.Fatal("expected 3 attributes, got:", attrs.Len())
	}
	expectedNames := []string{"outlook", "humidity", "play"}
	for i, name := range expectedNames {
		if attrs.Attribute(i).Name() != name {
			t.Error("expected attribute", i, "to be:", name, "got:", attrs.Attribute(i).Name())
		}
	}
	if attrs.ClassIndex() != 2 {
		t.Error("expected class index to be: 2 got:", attrs.ClassIndex())
	}
	expectedValues := []string{"sunny", "overcast", "rain"}
	outlook := attrs.ByName("outlook")
	if len(outlook.Values()) != len(expectedValues) {
		t.Fatal("expected outlook to have", len(expectedValues), "values, got:", len(outlook.Values()))
	}
	for i, v := range expectedValues {
		if outlook.Values()[i] != v {
			t.Error("expected outlook value", i, "to be:", v, "got:", outlook.Values()[i])
		}
	}
}

func TestReadAttributeSetNoClass(t *testing.T) {
	md := []byte(`
attributes:
  outlook: [sunny, overcast, rain]
`)
	_, err := ReadAttributeSet(md)
	if err == nil {
		t.Error("expected an error for metadata declaring no class attribute")
	}
}

func TestReadAttributeSetUndeclaredClass(t *testing.T) {
	md := []byte(`
attributes:
  outlook: [sunny, overcast, rain]
class: play
`)
	_, err := ReadAttributeSet(md)
	if err == nil {
		t.Error("expected an error for a class attribute that is not declared")
	}
}

func TestReadAttributeSetNoAttributes(t *testing.T) {
	md := []byte(`
class: play
`)
	_, err := ReadAttributeSet(md)
	if err == nil {
		t.Error("expected an error for metadata without attribute information")
	}
}

func TestReadAttributeSetScalarValues(t *testing.T) {
	md := []byte(`
attributes:
  outlook: sunny
  play: ["yes", "no"]
class: play
`)
	_, err := ReadAttributeSet(md)
	if err == nil {
		t.Error("expected an error for an attribute declared without a value list")
	}
}
