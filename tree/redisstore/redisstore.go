/*
Package redisstore provides a store of grown trees on a redis DB, so
that a tree grown by one process can be loaded by name from another.
*/
package redisstore

import (
	"context"
	"fmt"

	"github.com/pbanos/sapling/tree"
	redis "gopkg.in/redis.v5"
)

/*
TreeEncodeDecoder is an interface for objects that allow encoding
trees into slices of bytes and decoding them back to trees.
*/
type TreeEncodeDecoder interface {

	//Encode receives a tree.Tree
	//and returns a slice of bytes with the tree
	//encoded or an error if the encoding could not
	//be performed for some reason.
	Encode(tree.Tree) ([]byte, error)

	//Decode receives a slice of bytes
	//and returns a tree.Tree decoded from the
	//slice of bytes or an error if the decoding
	//could not be performed for some reason.
	Decode([]byte) (tree.Tree, error)
}

/*
Store is an interface to save, load and delete grown trees by name.

All its methods take a context that may allow cancelling the operation
if the implementation allows it.
*/
type Store interface {
	// Save takes a name and a tree and stores the tree
	// under the name, replacing any previously saved
	// tree with it. It returns an error if the tree
	// cannot be stored.
	Save(ctx context.Context, name string, t tree.Tree) error
	// Load takes a name and returns the tree saved under
	// it (or nil if there is none) or an error if the
	// store cannot be queried.
	Load(ctx context.Context, name string) (tree.Tree, error)
	// Delete takes a name and removes the tree saved
	// under it. It returns an error if the tree exists
	// but the deletion cannot be performed.
	Delete(ctx context.Context, name string) error
}

type redisStore struct {
	rc      *redis.Client
	prefix  string
	tencdec TreeEncodeDecoder
}

//New builds a Store backed by a redis DB
func New(rc *redis.Client, prefix string, tencdec TreeEncodeDecoder) Store {
	return &redisStore{rc, prefix, tencdec}
}

func (rs *redisStore) Save(ctx context.Context, name string, t tree.Tree) error {
	data, err := rs.tencdec.Encode(t)
	if err != nil {
		return fmt.Errorf("saving tree %q: encoding tree: %v", name, err)
	}
	_, err = rs.rc.Set(rs.keyFor(name), data, 0).Result()
	if err != nil {
		return fmt.Errorf("saving tree %q in redis: %v", name, err)
	}
	return nil
}

func (rs *redisStore) Load(ctx context.Context, name string) (tree.Tree, error) {
	data, err := rs.rc.Get(rs.keyFor(name)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading tree %q: %v", name, err)
	}
	t, err := rs.tencdec.Decode([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("loading tree %q: decoding %q: %v", name, data, err)
	}
	return t, nil
}

func (rs *redisStore) Delete(ctx context.Context, name string) error {
	_, err := rs.rc.Del(rs.keyFor(name)).Result()
	if err != nil {
		return fmt.Errorf("deleting tree %q from redis: %v", name, err)
	}
	return nil
}

func (rs *redisStore) keyFor(name string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, name)
}
