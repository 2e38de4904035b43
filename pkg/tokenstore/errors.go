package tokenstore

import "errors"

var (
	// ErrNotFound indicates no value is stored under the requested key
	ErrNotFound = errors.New("tokenstore.not_found")

	// ErrEmptyKey indicates an empty key was passed
	ErrEmptyKey = errors.New("tokenstore.empty_key")

	// ErrUnknownDriver indicates the configured driver is not supported
	ErrUnknownDriver = errors.New("tokenstore.unknown_driver")

	// ErrCorruptFile indicates the backing file could not be decoded
	ErrCorruptFile = errors.New("tokenstore.corrupt_file")
)
