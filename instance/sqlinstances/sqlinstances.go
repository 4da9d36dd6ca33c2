/*
Package sqlinstances provides reading of instance sets from SQL
databases through adapters for specific SQL dialects. The instances
are expected on a table with one text column per attribute of the
attribute.Set, named after it.
*/
package sqlinstances

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/sapling/attribute"
	"github.com/pbanos/sapling/instance"
)

/*
Adapter is an interface for the features of a SQL database that depend
on its specific dialect.

Its DB method returns the open database handle.

Its ColumnName method takes an attribute name and returns the quoted
column identifier for it or an error if the name cannot be used as a
column on the adapter's database.
*/
type Adapter interface {
	DB() *sql.DB
	ColumnName(attributeName string) (string, error)
}

/*
ReadSet takes a context, an Adapter, a table name and an
attribute.Set and returns the instance.Set read from the table on the
adapter's database or an error. Every row must hold a legal value for
the attribute of each of its columns.
*/
func ReadSet(ctx context.Context, adapter Adapter, table string, attrs *attribute.Set) (*instance.Set, error) {
	columns := make([]string, attrs.Len())
	for i, a := range attrs.Attributes() {
		c, err := adapter.ColumnName(a.Name())
		if err != nil {
			return nil, fmt.Errorf("reading instances from %s: %v", table, err)
		}
		columns[i] = c
	}
	tableName, err := adapter.ColumnName(table)
	if err != nil {
		return nil, fmt.Errorf("reading instances: %v", err)
	}
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), tableName)
	rows, err := adapter.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying instances from %s: %v", table, err)
	}
	defer rows.Close()
	instances := []instance.Instance{}
	for rows.Next() {
		values := make([]string, attrs.Len())
		pointers := make([]interface{}, attrs.Len())
		for i := range values {
			pointers[i] = &values[i]
		}
		err = rows.Scan(pointers...)
		if err != nil {
			return nil, fmt.Errorf("scanning instance %d from %s: %v", len(instances)+1, table, err)
		}
		for i, v := range values {
			if ok, err := attrs.Attribute(i).Valid(v); !ok {
				return nil, fmt.Errorf("scanning instance %d from %s: %v", len(instances)+1, table, err)
			}
		}
		instances = append(instances, instance.New(values))
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("reading instances from %s: %v", table, err)
	}
	return instance.NewSet(attrs, instances)
}
