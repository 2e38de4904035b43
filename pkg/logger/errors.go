package logger

import "errors"

var (
	// ErrInvalidLevel is returned for an unknown level name.
	ErrInvalidLevel = errors.New("logger.invalid_level")

	// ErrInvalidFormat is returned for a format other than json or text.
	ErrInvalidFormat = errors.New("logger.invalid_format")
)
