package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicate     = errors.New("duplicate entry")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrResourceLoad  = errors.New("resource load failed")
	ErrMalformedDoc  = errors.New("malformed document")
)
