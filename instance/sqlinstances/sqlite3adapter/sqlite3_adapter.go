/*
Package sqlite3adapter provides an implementation of the Adapter
interface in the sqlinstances package that works over an SQLite3
database file.
*/
package sqlite3adapter

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/sapling/instance/sqlinstances"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a filepath to an SQLite3 database file and a limit to the
number of open connections (0 meaning no limit) and returns an Adapter
that works on the database or an error if it fails to open it.
*/
func New(filepath string, maxConns int) (sqlinstances.Adapter, error) {
	db, err := sql.Open("sqlite3", filepath)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) ColumnName(attributeName string) (string, error) {
	if strings.ContainsAny(attributeName, `"`) {
		return "", fmt.Errorf(`attribute name '%s' contains invalid character '"'`, attributeName)
	}
	return fmt.Sprintf("%q", attributeName), nil
}
