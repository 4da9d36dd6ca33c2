/*
Package attribute describes the domain a classifier is learned over:
named attributes with a finite set of legal discrete values, grouped
in an ordered set that designates one of them as the class attribute.
*/
package attribute

import "fmt"

/*
Attribute represents a property that can be observed on an instance,
taking exactly one value among a finite set of legal values.
*/
type Attribute struct {
	name   string
	values []string
}

/*
Set represents an ordered collection of attributes, one of which is
designated as the class attribute: the one a grown tree learns to
predict. Instance value lists align positionally with the set's
attribute order. A Set is immutable and meant to be shared by every
instance set and tree derived from it.
*/
type Set struct {
	attributes []*Attribute
	classIndex int
}

/*
New takes a name string and a slice of legal value strings and returns
an attribute with the given name and values. The declared order of the
values is kept and used whenever attribute values need to be iterated
deterministically.
*/
func New(name string, values []string) *Attribute {
	return &Attribute{name, values}
}

/*
Name returns a string with the name of the attribute
*/
func (a *Attribute) Name() string {
	return a.name
}

/*
Values returns a string slice with the legal values of the attribute,
in their declared order.
*/
func (a *Attribute) Values() []string {
	return a.values
}

/*
Valid receives a value string and returns a boolean and an error. When
the value is among the legal values of the attribute, the method
returns true and nil. Otherwise it returns false and an error
describing the reason.
*/
func (a *Attribute) Valid(value string) (bool, error) {
	for _, v := range a.values {
		if v == value {
			return true, nil
		}
	}
	return false, fmt.Errorf("attribute %s got unknown value %s", a.name, value)
}

func (a *Attribute) String() string {
	return a.name
}

/*
NewSet takes a slice of attributes and the index of the class attribute
on the slice and returns a set with them or an error if the index is
out of range or two attributes share a name.
*/
func NewSet(attributes []*Attribute, classIndex int) (*Set, error) {
	if classIndex < 0 || classIndex >= len(attributes) {
		return nil, fmt.Errorf("class attribute index %d out of range for %d attributes", classIndex, len(attributes))
	}
	seen := make(map[string]bool)
	for _, a := range attributes {
		if seen[a.Name()] {
			return nil, fmt.Errorf("duplicate attribute name %s", a.Name())
		}
		seen[a.Name()] = true
	}
	return &Set{attributes, classIndex}, nil
}

/*
Len returns the number of attributes in the set.
*/
func (s *Set) Len() int {
	return len(s.attributes)
}

/*
Attributes returns the attributes of the set in their declared order.
*/
func (s *Set) Attributes() []*Attribute {
	return s.attributes
}

/*
Attribute returns the attribute at the given position in the set.
*/
func (s *Set) Attribute(i int) *Attribute {
	return s.attributes[i]
}

/*
Index takes an attribute and returns its position in the set or an
error if no attribute with its name belongs to the set. Instance value
lists are indexed by this position.
*/
func (s *Set) Index(a *Attribute) (int, error) {
	for i, sa := range s.attributes {
		if sa.Name() == a.Name() {
			return i, nil
		}
	}
	return 0, fmt.Errorf("attribute %s does not belong to the set", a.Name())
}

/*
ByName returns the attribute in the set with the given name or nil if
there is none.
*/
func (s *Set) ByName(name string) *Attribute {
	for _, a := range s.attributes {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

/*
ClassAttribute returns the attribute the set designates as the
prediction target.
*/
func (s *Set) ClassAttribute() *Attribute {
	return s.attributes[s.classIndex]
}

/*
ClassIndex returns the position of the class attribute in the set.
*/
func (s *Set) ClassIndex() int {
	return s.classIndex
}
