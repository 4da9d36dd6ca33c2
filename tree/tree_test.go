package tree

import (
	"bytes"
	"testing"

	"github.com/pbanos/sapling/attribute"
	"github.com/pbanos/sapling/instance"
)

func TestPrintWeather(t *testing.T) {
	s := weatherSet(t)
	tr, err := Grow(s)
	if err != nil {
		t.Fatal(err)
	}
	expected := `ROOT (depth 0) [attribute outlook]
  sunny (depth 1) [attribute humidity]
    high (depth 2) [decision no]
    normal (depth 2) [decision yes]
  overcast (depth 1) [decision yes]
  rain (depth 1) [attribute wind]
    weak (depth 2) [decision yes]
    strong (depth 2) [decision no]
`
	var buf bytes.Buffer
	tr.Print(&buf)
	if buf.String() != expected {
		t.Errorf("expected tree to print as:\n%s got:\n%s", expected, buf.String())
	}
}

func TestLeafDecideIgnoresInstance(t *testing.T) {
	s := weatherSet(t)
	l := NewLeaf("sunny", 1, "yes")
	decision, err := l.Decide(s.AttributeSet(), instance.New(nil))
	if err != nil {
		t.Fatal(err)
	}
	if decision != "yes" {
		t.Error("expected decision to be: yes got:", decision)
	}
}

func TestNewInternalMissingChild(t *testing.T) {
	wind := attribute.New("wind", []string{"weak", "strong"})
	_, err := NewInternal(RootLabel, 0, wind, map[string]Tree{
		"weak": NewLeaf("weak", 1, "yes"),
	})
	if err == nil {
		t.Error("expected an error for an internal node not covering all values of its split attribute")
	}
}

func TestNewInternalUnknownChild(t *testing.T) {
	wind := attribute.New("wind", []string{"weak", "strong"})
	_, err := NewInternal(RootLabel, 0, wind, map[string]Tree{
		"weak":  NewLeaf("weak", 1, "yes"),
		"gusty": NewLeaf("gusty", 1, "no"),
	})
	if err == nil {
		t.Error("expected an error for an internal node with a child for a value outside its split attribute")
	}
}

func TestNewInternalMislabeledChild(t *testing.T) {
	wind := attribute.New("wind", []string{"weak", "strong"})
	_, err := NewInternal(RootLabel, 0, wind, map[string]Tree{
		"weak":   NewLeaf("weak", 1, "yes"),
		"strong": NewLeaf("breezy", 1, "no"),
	})
	if err == nil {
		t.Error("expected an error for an internal node with a child not labeled with its value")
	}
}

func TestNewInternalChildDepthMismatch(t *testing.T) {
	wind := attribute.New("wind", []string{"weak", "strong"})
	_, err := NewInternal(RootLabel, 0, wind, map[string]Tree{
		"weak":   NewLeaf("weak", 1, "yes"),
		"strong": NewLeaf("strong", 3, "no"),
	})
	if err == nil {
		t.Error("expected an error for an internal node with a child not one level below it")
	}
}

func TestTestWeather(t *testing.T) {
	s := weatherSet(t)
	tr, err := Grow(s)
	if err != nil {
		t.Fatal(err)
	}
	successRate, errCount, err := Test(tr, s)
	if err != nil {
		t.Fatal(err)
	}
	if successRate != 1.0 {
		t.Error("expected success rate to be: 1.0 got:", successRate)
	}
	if errCount != 0 {
		t.Error("expected undecided instance count to be: 0 got:", errCount)
	}
}

func TestTestUndecidableInstances(t *testing.T) {
	s := weatherSet(t)
	tr, err := Grow(s)
	if err != nil {
		t.Fatal(err)
	}
	ts, err := instance.NewSet(s.AttributeSet(), []instance.Instance{
		instance.New([]string{"sunny", "hot", "high", "weak", "no"}),
		instance.New([]string{"foggy", "hot", "high", "weak", "no"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	successRate, errCount, err := Test(tr, ts)
	if err != nil {
		t.Fatal(err)
	}
	if successRate != 0.5 {
		t.Error("expected success rate to be: 0.5 got:", successRate)
	}
	if errCount != 1 {
		t.Error("expected undecided instance count to be: 1 got:", errCount)
	}
}

func TestTestNoExamples(t *testing.T) {
	s := weatherSet(t)
	tr, err := Grow(s)
	if err != nil {
		t.Fatal(err)
	}
	empty, err := instance.NewSet(s.AttributeSet(), nil)
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = Test(tr, empty)
	if err != ErrNoExamples {
		t.Error("expected error to be:", ErrNoExamples, "got:", err)
	}
}
