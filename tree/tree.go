/*
Package tree grows decision trees from labeled instance sets and uses
them to classify new instances. Trees are induced with the ID3
algorithm: every internal node splits its instances on the attribute
that minimizes the expected remaining entropy of the class attribute,
and recursion bottoms out in leaves that always decide one class value.
*/
package tree

import (
	"fmt"
	"io"

	"github.com/pbanos/sapling/attribute"
	"github.com/pbanos/sapling/instance"
)

/*
RootLabel is the label assigned to the root node of every tree, since
no attribute-value edge leads into it.
*/
const RootLabel = "ROOT"

// Error represents an error growing a tree or deciding with it
type Error string

const (
	/*
		ErrNoExamples is the error returned by Grow when invoked over an
		instance set with no instances: there is no parent set whose
		plurality class could stand in for the missing examples.
	*/
	ErrNoExamples = Error("cannot grow a tree from an empty instance set")
	/*
		ErrNoSplitCandidates is the error returned when a split attribute
		must be chosen and no candidate attributes are available.
	*/
	ErrNoSplitCandidates = Error("cannot choose a split attribute without candidate attributes")
	/*
		ErrUnknownValue is the error returned by the Decide method of a
		tree when the instance's value on a split attribute along its path
		is not among that attribute's legal values, so no child covers it.
	*/
	ErrUnknownValue = Error("instance value on a split attribute is not among its legal values")
)

func (e Error) Error() string {
	return string(e)
}

/*
Tree represents a grown decision tree node. Both node variants
implement it: a Leaf always answers its fixed decision, an Internal
node delegates to the child matching the instance's value on the
node's split attribute. A grown tree is read-only and may be queried
concurrently.
*/
type Tree interface {
	// Decide takes the attribute.Set instances conform to and an
	// instance and returns the class value the tree assigns to it, or
	// an error if some value along the decision path is not covered
	// by a child.
	Decide(attrs *attribute.Set, in instance.Instance) (string, error)
	// Print writes a pre-order traversal of the tree to the given
	// writer, one line per node.
	Print(w io.Writer)
	// Label returns the attribute value on the edge leading to the
	// node, or RootLabel for the root of a tree.
	Label() string
	// Depth returns the node's distance from the root of its tree.
	Depth() int
}

type node struct {
	label string
	depth int
}

/*
Leaf is the terminal Tree variant: it decides the same class value for
every instance.
*/
type Leaf struct {
	node
	decision string
}

/*
Internal is the splitting Tree variant: it holds the attribute its
instances were partitioned on and one child per legal value of that
attribute. There is no fallback child.
*/
type Internal struct {
	node
	splitAttribute *attribute.Attribute
	children       map[string]Tree
}

/*
Label returns the attribute value on the edge leading to the node, or
RootLabel for the root of a tree.
*/
func (n *node) Label() string {
	return n.label
}

/*
Depth returns the node's distance from the root of its tree.
*/
func (n *node) Depth() int {
	return n.depth
}

func (n *node) printBase(w io.Writer) {
	fmt.Fprintf(w, "%*s%s (depth %d) ", 2*n.depth, "", n.label, n.depth)
}

/*
NewLeaf takes an edge label, a depth and a class value and returns a
Leaf with them. It is meant for codecs rebuilding serialized trees;
trees learned from examples should be grown with Grow.
*/
func NewLeaf(label string, depth int, decision string) *Leaf {
	return &Leaf{node{label, depth}, decision}
}

/*
NewInternal takes an edge label, a depth, a split attribute and a map
from the attribute's values to child trees and returns an Internal
node with them, or an error if the map does not have exactly one child
per legal value of the attribute or some child is not labeled with its
value at the node's depth plus one. It is meant for codecs rebuilding
serialized trees; trees learned from examples should be grown with
Grow.
*/
func NewInternal(label string, depth int, splitAttribute *attribute.Attribute, children map[string]Tree) (*Internal, error) {
	if len(children) != len(splitAttribute.Values()) {
		return nil, fmt.Errorf("internal node splitting on %s needs %d children, got %d", splitAttribute.Name(), len(splitAttribute.Values()), len(children))
	}
	for _, v := range splitAttribute.Values() {
		child := children[v]
		if child == nil {
			return nil, fmt.Errorf("internal node splitting on %s has no child for value %s", splitAttribute.Name(), v)
		}
		if child.Label() != v {
			return nil, fmt.Errorf("internal node splitting on %s has a child labeled %s for value %s", splitAttribute.Name(), child.Label(), v)
		}
		if child.Depth() != depth+1 {
			return nil, fmt.Errorf("internal node splitting on %s at depth %d has a child for value %s at depth %d", splitAttribute.Name(), depth, v, child.Depth())
		}
	}
	return &Internal{node{label, depth}, splitAttribute, children}, nil
}

/*
Decision returns the class value the leaf decides.
*/
func (l *Leaf) Decision() string {
	return l.decision
}

/*
Decide returns the leaf's fixed decision, ignoring the instance.
*/
func (l *Leaf) Decide(attrs *attribute.Set, in instance.Instance) (string, error) {
	return l.decision, nil
}

/*
Print writes the leaf to the given writer as its base information
followed by the decision it makes.
*/
func (l *Leaf) Print(w io.Writer) {
	l.printBase(w)
	fmt.Fprintf(w, "[decision %s]\n", l.decision)
}

/*
SplitAttribute returns the attribute the node splits its instances on.
*/
func (t *Internal) SplitAttribute() *attribute.Attribute {
	return t.splitAttribute
}

/*
Child returns the subtree classifying instances whose value on the
node's split attribute equals the given value, or nil if the value is
not one of the attribute's legal values.
*/
func (t *Internal) Child(value string) Tree {
	return t.children[value]
}

/*
Decide looks up the instance's value on the node's split attribute and
delegates the decision to the child covering that value. It returns
ErrUnknownValue if no child does.
*/
func (t *Internal) Decide(attrs *attribute.Set, in instance.Instance) (string, error) {
	idx, err := attrs.Index(t.splitAttribute)
	if err != nil {
		return "", err
	}
	child, ok := t.children[in.Value(idx)]
	if !ok {
		return "", ErrUnknownValue
	}
	return child.Decide(attrs, in)
}

/*
Print writes the node's base information and split attribute to the
given writer and then prints its children, in the split attribute's
declared value order so output is reproducible.
*/
func (t *Internal) Print(w io.Writer) {
	t.printBase(w)
	fmt.Fprintf(w, "[attribute %s]\n", t.splitAttribute.Name())
	for _, v := range t.splitAttribute.Values() {
		t.children[v].Print(w)
	}
}
