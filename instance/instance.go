/*
Package instance holds the training data model: instances whose values
align positionally with an attribute.Set, immutable sets of instances
that partition into new sets by value matching, and value-frequency
distributions over an attribute.
*/
package instance

import (
	"fmt"
	"math/rand"

	"github.com/pbanos/sapling/attribute"
)

/*
Instance represents one observed example: a value for every attribute
of an attribute.Set, in the set's declared order. Instances are never
mutated after creation.
*/
type Instance struct {
	values []string
}

/*
Set pairs an attribute.Set with instances observed over it. A Set is
never mutated after creation: partitioning always produces a new Set
sharing the same attribute.Set.
*/
type Set struct {
	attributes *attribute.Set
	instances  []Instance
}

/*
New takes a slice of value strings, one per attribute, and returns an
instance with them.
*/
func New(values []string) Instance {
	return Instance{values}
}

/*
Value returns the instance's value for the attribute at the given
position of the attribute.Set the instance conforms to.
*/
func (i Instance) Value(pos int) string {
	return i.values[pos]
}

/*
Values returns the instance's value list in attribute order.
*/
func (i Instance) Values() []string {
	return i.values
}

/*
Len returns the number of values in the instance.
*/
func (i Instance) Len() int {
	return len(i.values)
}

func (i Instance) String() string {
	return fmt.Sprintf("%v", i.values)
}

/*
NewSet takes an attribute.Set and a slice of instances and returns a
Set with them or an error if some instance does not have exactly one
value per attribute.
*/
func NewSet(attributes *attribute.Set, instances []Instance) (*Set, error) {
	for n, in := range instances {
		if in.Len() != attributes.Len() {
			return nil, fmt.Errorf("instance %d has %d values for %d attributes", n, in.Len(), attributes.Len())
		}
	}
	return &Set{attributes, instances}, nil
}

/*
AttributeSet returns the attribute.Set the set's instances conform to.
*/
func (s *Set) AttributeSet() *attribute.Set {
	return s.attributes
}

/*
Instances returns the instances in the set.
*/
func (s *Set) Instances() []Instance {
	return s.instances
}

/*
Count returns the number of instances in the set.
*/
func (s *Set) Count() int {
	return len(s.instances)
}

/*
MatchesOn takes an attribute and one of its values and returns a new
Set with the instances of the receiver whose value on the attribute
equals the given value, or an error if the attribute does not belong
to the set's attribute.Set. The receiver is not modified.
*/
func (s *Set) MatchesOn(a *attribute.Attribute, value string) (*Set, error) {
	idx, err := s.attributes.Index(a)
	if err != nil {
		return nil, fmt.Errorf("partitioning on %s: %v", a.Name(), err)
	}
	var matches []Instance
	for _, in := range s.instances {
		if in.Value(idx) == value {
			matches = append(matches, in)
		}
	}
	return &Set{s.attributes, matches}, nil
}

/*
Split takes a probability as a percent integer and a random source and
returns two new Sets: one with the instances of the receiver not drawn
into the split, and one with the instances drawn into it, each with the
given probability. Both sets share the receiver's attribute.Set and
keep its instance order; the receiver is not modified.
*/
func (s *Set) Split(splitProbability int, r *rand.Rand) (*Set, *Set) {
	var kept, split []Instance
	for _, in := range s.instances {
		if (100 * r.Float32()) > float32(splitProbability) {
			kept = append(kept, in)
		} else {
			split = append(split, in)
		}
	}
	return &Set{s.attributes, kept}, &Set{s.attributes, split}
}

/*
ClassDistribution returns a Distribution over the set's class attribute
populated with the class value of every instance in the set, with its
probabilities already computed. An error is returned if some instance
carries a class value outside the class attribute's legal values.
*/
func (s *Set) ClassDistribution() (*Distribution, error) {
	d := NewDistribution(s.attributes.ClassAttribute())
	classIndex := s.attributes.ClassIndex()
	for _, in := range s.instances {
		err := d.Increment(in.Value(classIndex))
		if err != nil {
			return nil, err
		}
	}
	d.ComputeProbabilities()
	return d, nil
}
