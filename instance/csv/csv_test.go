package csv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pbanos/sapling/attribute"
)

func testAttributeSet(t *testing.T) *attribute.Set {
	color := attribute.New("color", []string{"red", "green", "blue"})
	size := attribute.New("size", []string{"small", "big"})
	grade := attribute.New("grade", []string{"yes", "no"})
	attrs, err := attribute.NewSet([]*attribute.Attribute{color, size, grade}, 2)
	if err != nil {
		t.Fatal(err)
	}
	return attrs
}

func TestReadSet(t *testing.T) {
	attrs := testAttributeSet(t)
	data := `color,size,grade
red,small,yes
blue,big,no
`
	s, err := ReadSet(strings.NewReader(data), attrs)
	if err != nil {
		t.Fatal(err)
	}
	if s.Count() != 2 {
		t.Fatal("expected 2 instances, got:", s.Count())
	}
	in := s.Instances()[1]
	if in.Value(0) != "blue" || in.Value(1) != "big" || in.Value(2) != "no" {
		t.Error("expected second instance to be [blue big no], got:", in)
	}
}

func TestReadSetReorderedColumns(t *testing.T) {
	attrs := testAttributeSet(t)
	data := `grade,color,size
yes,red,small
`
	s, err := ReadSet(strings.NewReader(data), attrs)
	if err != nil {
		t.Fatal(err)
	}
	in := s.Instances()[0]
	if in.Value(0) != "red" || in.Value(1) != "small" || in.Value(2) != "yes" {
		t.Error("expected instance values realigned to attribute order [red small yes], got:", in)
	}
}

func TestReadSetUnknownAttributeColumn(t *testing.T) {
	attrs := testAttributeSet(t)
	data := `color,weight,grade
red,light,yes
`
	_, err := ReadSet(strings.NewReader(data), attrs)
	if err == nil {
		t.Error("expected an error for a header naming an unknown attribute")
	}
}

func TestReadSetInvalidValue(t *testing.T) {
	attrs := testAttributeSet(t)
	data := `color,size,grade
red,small,yes
purple,big,no
`
	_, err := ReadSet(strings.NewReader(data), attrs)
	if err == nil {
		t.Fatal("expected an error for a value outside the attribute's legal values")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Error("expected the error to point at line 3, got:", err)
	}
}

func TestWriteSetRoundTrip(t *testing.T) {
	attrs := testAttributeSet(t)
	data := `color,size,grade
red,small,yes
green,small,yes
blue,big,no
`
	s, err := ReadSet(strings.NewReader(data), attrs)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	err = WriteSet(&buf, s)
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != data {
		t.Errorf("expected written CSV to be:\n%s got:\n%s", data, buf.String())
	}
}
