/*
Package mongoinstances provides reading and writing of instance sets
on a MongoDB collection, with one document per instance mapping
attribute names to their values.
*/
package mongoinstances

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/sapling/attribute"
	"github.com/pbanos/sapling/instance"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	instancesCollectionName = "instances"
)

/*
Collection wraps a MongoDB session to read and write instance sets on
its default database.
*/
type Collection struct {
	session    *mgo.Session
	attributes *attribute.Set
}

/*
Open takes a MongoDB database session and an attribute.Set and returns
a Collection that works on the default database for that session, or
an error if an attribute name cannot be used as a document field. An
index is ensured for every attribute.
*/
func Open(session *mgo.Session, attrs *attribute.Set) (*Collection, error) {
	c := &Collection{session, attrs}
	err := c.ensureIndexes()
	if err != nil {
		return nil, err
	}
	return c, nil
}

/*
ReadSet returns the instance.Set read from the collection or an error.
Every document must define a legal value for every attribute of the
collection's attribute.Set.
*/
func (c *Collection) ReadSet(ctx context.Context) (*instance.Set, error) {
	iter := c.instancesCollection().Find(nil).Iter()
	defer iter.Close()
	var doc bson.M
	instances := []instance.Instance{}
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		in, err := c.parseInstance(doc)
		if err != nil {
			return nil, fmt.Errorf("reading instance %d: %v", len(instances)+1, err)
		}
		instances = append(instances, in)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return instance.NewSet(c.attributes, instances)
}

/*
Write takes an instance.Set and inserts one document per instance on
the collection, returning the number of written instances and an
error if the insertion fails.
*/
func (c *Collection) Write(ctx context.Context, s *instance.Set) (int, error) {
	docs := make([]interface{}, 0, s.Count())
	for _, in := range s.Instances() {
		doc := make(bson.M)
		for i, a := range c.attributes.Attributes() {
			doc[a.Name()] = in.Value(i)
		}
		docs = append(docs, doc)
	}
	err := c.instancesCollection().Insert(docs...)
	if err != nil {
		return 0, err
	}
	return s.Count(), nil
}

func (c *Collection) parseInstance(doc bson.M) (instance.Instance, error) {
	values := make([]string, c.attributes.Len())
	for i, a := range c.attributes.Attributes() {
		v, ok := doc[a.Name()]
		if !ok {
			return instance.Instance{}, fmt.Errorf("document defines no value for attribute %s", a.Name())
		}
		vString := fmt.Sprintf("%v", v)
		if ok, err := a.Valid(vString); !ok {
			return instance.Instance{}, err
		}
		values[i] = vString
	}
	return instance.New(values), nil
}

func (c *Collection) ensureIndexes() error {
	for _, a := range c.attributes.Attributes() {
		aName := a.Name()
		if aName == "_id" {
			return fmt.Errorf("invalid attribute name %q: reserved collection field", "_id")
		}
		if strings.ContainsAny(aName, ".$") {
			return fmt.Errorf("invalid attribute name %q: contains reserved characters %q or %q", aName, ".", "$")
		}
		index := mgo.Index{
			Key:        []string{aName},
			Background: true,
			Sparse:     true,
		}
		err := c.instancesCollection().EnsureIndex(index)
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Collection) instancesCollection() *mgo.Collection {
	return c.session.DB("").C(instancesCollectionName)
}
