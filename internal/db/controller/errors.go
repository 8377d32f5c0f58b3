// Package controller holds what the table specific controllers share.
package controller

import (
	"errors"
	"fmt"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// StoreError reports a failed store call. Its message carries driver detail
// and must only be logged, never shown to a client.
type StoreError struct {
	Op    string // count, select, insert
	Table string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s on %s: %v", e.Op, e.Table, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Wrap returns err as *StoreError, nil stays nil.
func Wrap(op, table string, err error) error {
	if err == nil {
		return nil
	}

	return &StoreError{Op: op, Table: table, Err: err}
}

// IsStoreError reports whether err is or wraps a *StoreError.
func IsStoreError(err error) bool {
	var storeErr *StoreError

	return errors.As(err, &storeErr)
}
