/*
Package yaml provides methods to parse attribute.Set specifications,
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	"github.com/pbanos/sapling/attribute"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadAttributeSet takes a slice of bytes with an attribute specification
in YML and returns the attribute.Set parsed from it or an error.
The YML is expected to be an object with an attributes property and a
class property. The value for attributes should be an object with a
property per attribute listing its legal values; the attributes keep
the order they are declared in. The value for class should be the name
of one of the declared attributes, the one trees will predict.
*/
func ReadAttributeSet(md []byte) (*attribute.Set, error) {
	metadata := struct {
		Attributes yaml.MapSlice
		Class      string
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml attributes: %v", err)
	}
	if metadata.Attributes == nil {
		return nil, fmt.Errorf("metadata file has no attribute information")
	}
	if metadata.Class == "" {
		return nil, fmt.Errorf("metadata file declares no class attribute")
	}
	attributes := []*attribute.Attribute{}
	classIndex := -1
	for _, item := range metadata.Attributes {
		name := fmt.Sprintf("%v", item.Key)
		values, ok := item.Value.([]interface{})
		if !ok {
			return nil, fmt.Errorf("invalid declaration of type %T for attribute %s", item.Value, name)
		}
		stringVs := []string{}
		for _, v := range values {
			stringVs = append(stringVs, fmt.Sprintf("%v", v))
		}
		if name == metadata.Class {
			classIndex = len(attributes)
		}
		attributes = append(attributes, attribute.New(name, stringVs))
	}
	if classIndex < 0 {
		return nil, fmt.Errorf("class attribute %q is not declared", metadata.Class)
	}
	return attribute.NewSet(attributes, classIndex)
}

/*
ReadAttributeSetFromFile takes a filepath string, reads its contents
and uses ReadAttributeSet to parse it and return the attribute.Set or
an error. If the file indicated by the filepath cannot be opened for
reading an error will be returned.
*/
func ReadAttributeSetFromFile(filepath string) (*attribute.Set, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading attributes yml file %s: %v", filepath, err)
	}
	attrs, err := ReadAttributeSet(md)
	if err != nil {
		err = fmt.Errorf("parsing attributes yml file %s: %v", filepath, err)
	}
	return attrs, err
}
