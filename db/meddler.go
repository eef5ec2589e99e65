package db

import (
	"errors"
	"fmt"

	"github.com/0xPolygon/flowclient/flow"
	sqlite "github.com/mattn/go-sqlite3"
	"github.com/russross/meddler"
)

// init registers tags to be used to read/write from SQL DBs using meddler
func init() {
	meddler.Default = meddler.SQLite
	meddler.Register("identifier", IdentifierMeddler{})
	meddler.Register("address", AddressMeddler{})
}

func SQLiteErr(err error) (*sqlite.Error, bool) {
	sqliteErr := &sqlite.Error{}
	if ok := errors.As(err, sqliteErr); ok {
		return sqliteErr, true
	}
	if driverErr, ok := meddler.DriverErr(err); ok {
		return sqliteErr, errors.As(driverErr, sqliteErr)
	}
	return sqliteErr, false
}

// IdentifierMeddler encodes or decodes the field value to or from a hex string
type IdentifierMeddler struct{}

// PreRead is called before a Scan operation for fields that have the IdentifierMeddler
func (b IdentifierMeddler) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	// give a pointer to a byte buffer to grab the raw data
	return new(string), nil
}

// PostRead is called after a Scan operation for fields that have the IdentifierMeddler
func (b IdentifierMeddler) PostRead(fieldPtr, scanTarget interface{}) error {
	ptr, ok := scanTarget.(*string)
	if !ok {
		return errors.New("scanTarget is not *string")
	}
	if ptr == nil {
		return fmt.Errorf("IdentifierMeddler.PostRead: nil pointer")
	}
	field, ok := fieldPtr.(*flow.Identifier)
	if !ok {
		return errors.New("fieldPtr is not flow.Identifier")
	}
	id, err := flow.HexToID(*ptr)
	if err != nil {
		return err
	}
	*field = id
	return nil
}

// PreWrite is called before an Insert or Update operation for fields that have the IdentifierMeddler
func (b IdentifierMeddler) PreWrite(fieldPtr interface{}) (saveValue interface{}, err error) {
	field, ok := fieldPtr.(flow.Identifier)
	if !ok {
		return nil, errors.New("fieldPtr is not flow.Identifier")
	}
	return field.String(), nil
}

// AddressMeddler encodes or decodes the field value to or from a hex string
type AddressMeddler struct{}

// PreRead is called before a Scan operation for fields that have the AddressMeddler
func (b AddressMeddler) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	// give a pointer to a byte buffer to grab the raw data
	return new(string), nil
}

// PostRead is called after a Scan operation for fields that have the AddressMeddler
func (b AddressMeddler) PostRead(fieldPtr, scanTarget interface{}) error {
	ptr, ok := scanTarget.(*string)
	if !ok {
		return errors.New("scanTarget is not *string")
	}
	if ptr == nil {
		return errors.New("AddressMeddler.PostRead: nil pointer")
	}
	field, ok := fieldPtr.(*flow.Address)
	if !ok {
		return errors.New("fieldPtr is not flow.Address")
	}
	addr, err := flow.HexToAddress(*ptr)
	if err != nil {
		return err
	}
	*field = addr
	return nil
}

// PreWrite is called before an Insert or Update operation for fields that have the AddressMeddler
func (b AddressMeddler) PreWrite(fieldPtr interface{}) (saveValue interface{}, err error) {
	field, ok := fieldPtr.(flow.Address)
	if !ok {
		return nil, errors.New("fieldPtr is not flow.Address")
	}
	return field.String(), nil
}
