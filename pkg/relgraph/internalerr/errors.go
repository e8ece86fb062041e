package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrLookupFailed  = errors.New("external lookup failed")
	ErrNoMatch       = errors.New("no matching entity")
	ErrPersistence   = errors.New("persistence failure")
)
