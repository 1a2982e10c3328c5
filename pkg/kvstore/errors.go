package kvstore

import "errors"

var (
	ErrNoStore           = errors.New("no storage driver configured")
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
	ErrMissingAddress    = errors.New("storage address is required")
)
