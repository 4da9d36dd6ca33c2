package tree

import (
	"github.com/pbanos/sapling/attribute"
	"github.com/pbanos/sapling/instance"
)

/*
Grow takes an instance set and returns the decision tree induced from
it or an error. The candidate split attributes are the attributes of
the set's attribute.Set except the class attribute, in declared order.
Growing recursively chooses the candidate that minimizes the expected
remaining entropy of the class attribute, partitions the instances by
the chosen attribute's values and grows a child per value with the
chosen attribute removed from the candidates, until the instances
reaching a node share a class, no candidates remain or no instances
reach it.
It returns ErrNoExamples when the given set has no instances, and any
error found while growing aborts the whole build: no partial tree is
returned.
*/
func Grow(examples *instance.Set) (Tree, error) {
	if examples.Count() == 0 {
		return nil, ErrNoExamples
	}
	attrs := examples.AttributeSet()
	candidates := make([]*attribute.Attribute, 0, attrs.Len()-1)
	for i, a := range attrs.Attributes() {
		if i != attrs.ClassIndex() {
			candidates = append(candidates, a)
		}
	}
	return grow(examples, candidates, RootLabel, 0, examples)
}

/*
grow builds the node for the instances that reached it: a leaf
deciding the plurality class of the parent's instances when none did,
a leaf deciding the shared class when they are class-pure, a leaf
deciding their plurality class when no candidate attributes remain,
and an internal node splitting on the best candidate otherwise.
*/
func grow(examples *instance.Set, candidates []*attribute.Attribute, label string, depth int, parent *instance.Set) (Tree, error) {
	if examples.Count() == 0 {
		return newLeaf(parent, label, depth)
	}
	if classPure(examples) || len(candidates) == 0 {
		return newLeaf(examples, label, depth)
	}
	return newInternal(examples, candidates, label, depth)
}

/*
newLeaf returns a Leaf deciding the plurality class value of the given
examples.
*/
func newLeaf(examples *instance.Set, label string, depth int) (Tree, error) {
	d, err := examples.ClassDistribution()
	if err != nil {
		return nil, err
	}
	decision, err := d.Mode()
	if err != nil {
		return nil, err
	}
	return &Leaf{node{label, depth}, decision}, nil
}

/*
newInternal selects the split attribute for the given examples and
grows a child for every legal value of it, passing the examples
themselves as the parent set of each recursive call so that children
with no matching instances can fall back on their plurality class.
*/
func newInternal(examples *instance.Set, candidates []*attribute.Attribute, label string, depth int) (Tree, error) {
	split, err := splitAttribute(examples, candidates)
	if err != nil {
		return nil, err
	}
	childCandidates := make([]*attribute.Attribute, 0, len(candidates)-1)
	for _, c := range candidates {
		if c.Name() != split.Name() {
			childCandidates = append(childCandidates, c)
		}
	}
	children := make(map[string]Tree, len(split.Values()))
	for _, v := range split.Values() {
		matches, err := examples.MatchesOn(split, v)
		if err != nil {
			return nil, err
		}
		child, err := grow(matches, childCandidates, v, depth+1, examples)
		if err != nil {
			return nil, err
		}
		children[v] = child
	}
	return &Internal{node{label, depth}, split, children}, nil
}

/*
splitAttribute returns the candidate attribute with the minimum
expected remaining entropy over the class attribute of the given
examples. Ties are broken in favour of the candidate appearing first
in the slice, so selection is deterministic for a fixed input. It
returns ErrNoSplitCandidates when invoked without candidates.
*/
func splitAttribute(examples *instance.Set, candidates []*attribute.Attribute) (*attribute.Attribute, error) {
	if len(candidates) == 0 {
		return nil, ErrNoSplitCandidates
	}
	best := candidates[0]
	bestEntropy, err := expectedEntropy(examples, best)
	if err != nil {
		return nil, err
	}
	for _, c := range candidates[1:] {
		e, err := expectedEntropy(examples, c)
		if err != nil {
			return nil, err
		}
		if e < bestEntropy {
			best = c
			bestEntropy = e
		}
	}
	return best, nil
}

/*
expectedEntropy returns the entropy of the class attribute expected to
remain after splitting the given examples on the given attribute: the
class entropy of each subset of examples sharing a value on the
attribute, weighted by the fraction of examples in the subset.
*/
func expectedEntropy(examples *instance.Set, a *attribute.Attribute) (float64, error) {
	total := float64(examples.Count())
	var remainder float64
	for _, v := range a.Values() {
		matches, err := examples.MatchesOn(a, v)
		if err != nil {
			return 0.0, err
		}
		if matches.Count() == 0 {
			continue
		}
		d, err := matches.ClassDistribution()
		if err != nil {
			return 0.0, err
		}
		remainder += float64(matches.Count()) / total * d.Entropy()
	}
	return remainder, nil
}

func classPure(examples *instance.Set) bool {
	classIndex := examples.AttributeSet().ClassIndex()
	instances := examples.Instances()
	first := instances[0].Value(classIndex)
	for _, in := range instances[1:] {
		if in.Value(classIndex) != first {
			return false
		}
	}
	return true
}
