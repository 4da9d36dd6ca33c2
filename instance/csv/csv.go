/*
Package csv provides reading and writing of instance sets as CSV
streams whose header row names the attributes of an attribute.Set.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/sapling/attribute"
	"github.com/pbanos/sapling/instance"
)

/*
ReadSet takes an io.Reader for a CSV stream and an attribute.Set and
returns the instance.Set parsed from the reader or an error.

The header or first row of the CSV content is expected to consist of
the names of all the attributes in the given set, in any order. The
rest of the rows should consist of legal values for the attribute of
their column; rows are realigned to the set's attribute order.
*/
func ReadSet(reader io.Reader, attrs *attribute.Set) (*instance.Set, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	columns, err := parseAttributeColumns(header, attrs)
	if err != nil {
		return nil, err
	}
	instances := []instance.Instance{}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		in, err := parseInstanceFromCSVRow(row, columns, attrs)
		if err != nil {
			return nil, fmt.Errorf("parsing line %d: %v", l, err)
		}
		instances = append(instances, in)
	}
	return instance.NewSet(attrs, instances)
}

/*
ReadSetFromFilePath takes a filepath string and an attribute.Set,
opens the file the filepath points to (or os.Stdin when it is empty)
and uses ReadSet to parse an instance.Set from it. It will return an
error if the given filepath cannot be opened for reading or its
contents cannot be parsed.
*/
func ReadSetFromFilePath(filepath string, attrs *attribute.Set) (*instance.Set, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading instance set: %v", err)
		}
	}
	defer f.Close()
	s, err := ReadSet(f, attrs)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return s, err
}

/*
WriteSet takes an io.Writer and an instance.Set and dumps the set to
the writer in CSV format, with a header row naming the set's
attributes in order. It returns an error if something went wrong when
writing to the writer.
*/
func WriteSet(writer io.Writer, s *instance.Set) error {
	w := csv.NewWriter(writer)
	attrs := s.AttributeSet()
	record := make([]string, attrs.Len())
	for i, a := range attrs.Attributes() {
		record[i] = a.Name()
	}
	err := w.Write(record)
	if err != nil {
		return fmt.Errorf("writing CSV header: %v", err)
	}
	for n, in := range s.Instances() {
		err = w.Write(in.Values())
		if err != nil {
			return fmt.Errorf("writing CSV row for instance %d: %v", n+1, err)
		}
	}
	w.Flush()
	return w.Error()
}

/*
parseAttributeColumns maps every CSV column to the position of its
attribute in the attribute.Set, requiring exactly one column per
attribute.
*/
func parseAttributeColumns(header []string, attrs *attribute.Set) ([]int, error) {
	if len(header) != attrs.Len() {
		return nil, fmt.Errorf("parsing header: %d columns for %d attributes", len(header), attrs.Len())
	}
	columns := make([]int, len(header))
	seen := make(map[string]bool)
	for i, name := range header {
		a := attrs.ByName(name)
		if a == nil {
			return nil, fmt.Errorf("parsing header: reference to unknown attribute %s", name)
		}
		if seen[name] {
			return nil, fmt.Errorf("parsing header: attribute %s appears twice", name)
		}
		seen[name] = true
		columns[i], _ = attrs.Index(a)
	}
	return columns, nil
}

func parseInstanceFromCSVRow(row []string, columns []int, attrs *attribute.Set) (instance.Instance, error) {
	if len(row) != len(columns) {
		return instance.Instance{}, fmt.Errorf("%d values for %d attributes", len(row), len(columns))
	}
	values := make([]string, attrs.Len())
	for i, v := range row {
		a := attrs.Attribute(columns[i])
		if ok, err := a.Valid(v); !ok {
			return instance.Instance{}, err
		}
		values[columns[i]] = v
	}
	return instance.New(values), nil
}
