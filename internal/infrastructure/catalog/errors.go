package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog API operations.
var (
	ErrNotFound         = errors.New("catalog: not found")
	ErrRateLimited      = errors.New("catalog: rate limited by server")
	ErrServer           = errors.New("catalog: server error")
	ErrUnexpectedStatus = errors.New("catalog: unexpected status")
)

// Error wraps an underlying error with operation context.
type Error struct {
	Op  string // "getBook", "search"
	Key string // normalized id or encoded query
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("catalog %s [%s]: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrapError(op, key string, err error) error {
	return &Error{Op: op, Key: key, Err: err}
}
