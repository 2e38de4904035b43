package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("config.parse_failed")

	// ErrNilPointer is returned when a nil pointer is passed to Load
	ErrNilPointer = errors.New("config.nil_pointer")

	// ErrEnvFile is returned when a .env file passed to LoadEnv cannot be read
	ErrEnvFile = errors.New("config.env_file")
)
