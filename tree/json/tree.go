/*
Package json provides serialization of grown trees to JSON documents
and their rebuilding against an attribute.Set.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pbanos/sapling/attribute"
	"github.com/pbanos/sapling/tree"
)

type jsonTree struct {
	Class string    `json:"class"`
	Root  *jsonNode `json:"root"`
}

type jsonNode struct {
	Label     string               `json:"label"`
	Depth     int                  `json:"depth"`
	Decision  string               `json:"decision,omitempty"`
	Attribute string               `json:"attribute,omitempty"`
	Children  map[string]*jsonNode `json:"children,omitempty"`
}

/*
EncodeDecoder serializes trees as JSON documents and rebuilds them,
resolving attribute references by name against the attribute.Set it
was built with.
*/
type EncodeDecoder struct {
	attributes *attribute.Set
}

/*
WriteTree takes an io.Writer, a tree and the attribute.Set the tree
was grown over and writes the tree to the writer as a JSON object with
the following fields:
  - "class": the name of the class attribute the tree predicts
  - "root": the root node, an object with the node's label and depth
    and either its decision, for leaves, or its split attribute name
    and a children object keyed by attribute value, for internal nodes.

An error is returned if the tree holds an unknown node variant or the
writing fails.
*/
func WriteTree(w io.Writer, t tree.Tree, attrs *attribute.Set) error {
	root, err := encodeNode(t)
	if err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(&jsonTree{Class: attrs.ClassAttribute().Name(), Root: root})
}

/*
ReadTree takes an io.Reader with a JSON document as written by
WriteTree and the attribute.Set the tree was grown over and returns
the rebuilt tree or an error if the document cannot be decoded, names
an attribute or value outside the given set or declares a class
attribute other than the set's.
*/
func ReadTree(r io.Reader, attrs *attribute.Set) (tree.Tree, error) {
	jt := &jsonTree{}
	err := json.NewDecoder(r).Decode(jt)
	if err != nil {
		return nil, err
	}
	if jt.Class != attrs.ClassAttribute().Name() {
		return nil, fmt.Errorf("tree predicts %q, not the set's class attribute %q", jt.Class, attrs.ClassAttribute().Name())
	}
	return decodeRoot(jt.Root, attrs)
}

/*
NewEncodeDecoder takes an attribute.Set and returns an EncodeDecoder
that resolves attribute references against it.
*/
func NewEncodeDecoder(attrs *attribute.Set) *EncodeDecoder {
	return &EncodeDecoder{attrs}
}

/*
Encode receives a tree and returns a slice of bytes with the tree
encoded as by WriteTree or an error if the encoding could not be
performed.
*/
func (ed *EncodeDecoder) Encode(t tree.Tree) ([]byte, error) {
	root, err := encodeNode(t)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&jsonTree{Class: ed.attributes.ClassAttribute().Name(), Root: root})
}

/*
Decode receives a slice of bytes and returns the tree decoded from it
or an error if the decoding could not be performed.
*/
func (ed *EncodeDecoder) Decode(data []byte) (tree.Tree, error) {
	jt := &jsonTree{}
	err := json.Unmarshal(data, jt)
	if err != nil {
		return nil, err
	}
	if jt.Class != ed.attributes.ClassAttribute().Name() {
		return nil, fmt.Errorf("tree predicts %q, not the set's class attribute %q", jt.Class, ed.attributes.ClassAttribute().Name())
	}
	return decodeRoot(jt.Root, ed.attributes)
}

/*
decodeRoot rebuilds the tree under the given root node, requiring the
root to be labeled tree.RootLabel at depth 0 so a decoded tree holds
the same labeling and depth invariants a grown one does.
*/
func decodeRoot(root *jsonNode, attrs *attribute.Set) (tree.Tree, error) {
	if root == nil {
		return nil, fmt.Errorf("tree document has no root node")
	}
	if root.Label != tree.RootLabel {
		return nil, fmt.Errorf("tree document root is labeled %q instead of %q", root.Label, tree.RootLabel)
	}
	if root.Depth != 0 {
		return nil, fmt.Errorf("tree document root is at depth %d instead of 0", root.Depth)
	}
	return decodeNode(root, attrs)
}

func encodeNode(t tree.Tree) (*jsonNode, error) {
	switch t := t.(type) {
	case *tree.Leaf:
		return &jsonNode{Label: t.Label(), Depth: t.Depth(), Decision: t.Decision()}, nil
	case *tree.Internal:
		children := make(map[string]*jsonNode, len(t.SplitAttribute().Values()))
		for _, v := range t.SplitAttribute().Values() {
			child, err := encodeNode(t.Child(v))
			if err != nil {
				return nil, err
			}
			children[v] = child
		}
		return &jsonNode{Label: t.Label(), Depth: t.Depth(), Attribute: t.SplitAttribute().Name(), Children: children}, nil
	}
	return nil, fmt.Errorf("unknown tree node type %T", t)
}

func decodeNode(jn *jsonNode, attrs *attribute.Set) (tree.Tree, error) {
	if jn.Attribute == "" {
		ok, err := attrs.ClassAttribute().Valid(jn.Decision)
		if !ok {
			return nil, fmt.Errorf("decoding leaf %s: %v", jn.Label, err)
		}
		return tree.NewLeaf(jn.Label, jn.Depth, jn.Decision), nil
	}
	splitAttribute := attrs.ByName(jn.Attribute)
	if splitAttribute == nil {
		return nil, fmt.Errorf("decoding node %s: unknown attribute %s", jn.Label, jn.Attribute)
	}
	children := make(map[string]tree.Tree, len(jn.Children))
	for v, jc := range jn.Children {
		child, err := decodeNode(jc, attrs)
		if err != nil {
			return nil, err
		}
		children[v] = child
	}
	n, err := tree.NewInternal(jn.Label, jn.Depth, splitAttribute, children)
	if err != nil {
		return nil, fmt.Errorf("decoding node %s: %v", jn.Label, err)
	}
	return n, nil
}
