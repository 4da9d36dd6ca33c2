package instance

import (
	"testing"

	"github.com/pbanos/sapling/attribute"
)

func colorSet(t *testing.T) *Set {
	color := attribute.New("color", []string{"red", "green", "blue"})
	size := attribute.New("size", []string{"small", "big"})
	grade := attribute.New("grade", []string{"yes", "no"})
	attrs, err := attribute.NewSet([]*attribute.Attribute{color, size, grade}, 2)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSet(attrs, []Instance{
		New([]string{"red", "small", "yes"}),
		New([]string{"red", "big", "no"}),
		New([]string{"green", "small", "yes"}),
		New([]string{"blue", "big", "yes"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestInstanceString(t *testing.T) {
	in := New([]string{"red", "small", "yes"})
	if in.String() != "[red small yes]" {
		t.Error("expected instance to print as: [red small yes] got:", in.String())
	}
}

func TestNewSetLengthMismatch(t *testing.T) {
	attrs := colorSet(t).AttributeSet()
	_, err := NewSet(attrs, []Instance{New([]string{"red", "small"})})
	if err == nil {
		t.Error("expected an error for an instance without a value for every attribute")
	}
}

func TestMatchesOn(t *testing.T) {
	s := colorSet(t)
	attrs := s.AttributeSet()
	matches, err := s.MatchesOn(attrs.ByName("color"), "red")
	if err != nil {
		t.Fatal(err)
	}
	if matches.Count() != 2 {
		t.Error("expected 2 instances matching color red, got:", matches.Count())
	}
	for _, in := range matches.Instances() {
		if in.Value(0) != "red" {
			t.Error("expected matched instance color to be: red got:", in.Value(0))
		}
	}
	if matches.AttributeSet() != attrs {
		t.Error("expected the partition to share the original attribute set")
	}
	if s.Count() != 4 {
		t.Error("expected the original set to keep its 4 instances, got:", s.Count())
	}
}

func TestMatchesOnForeignAttribute(t *testing.T) {
	s := colorSet(t)
	foreign := attribute.New("weight", []string{"light", "heavy"})
	_, err := s.MatchesOn(foreign, "light")
	if err == nil {
		t.Error("expected an error partitioning on an attribute outside the set")
	}
}

func TestClassDistribution(t *testing.T) {
	s := colorSet(t)
	d, err := s.ClassDistribution()
	if err != nil {
		t.Fatal(err)
	}
	if d.TotalFrequency() != 4 {
		t.Error("expected total frequency to be: 4 got:", d.TotalFrequency())
	}
	if d.Frequency("yes") != 3 {
		t.Error("expected frequency of yes to be: 3 got:", d.Frequency("yes"))
	}
	if d.Frequency("no") != 1 {
		t.Error("expected frequency of no to be: 1 got:", d.Frequency("no"))
	}
}

func TestClassDistributionUnknownClassValue(t *testing.T) {
	attrs := colorSet(t).AttributeSet()
	s, err := NewSet(attrs, []Instance{New([]string{"red", "small", "maybe"})})
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.ClassDistribution()
	if err == nil {
		t.Error("expected an error for a class value outside the class attribute's legal values")
	}
}
