package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into the provided struct.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")

	// ErrNilPointer is returned when a nil pointer is passed to Load.
	ErrNilPointer = errors.New("config: nil pointer provided to loader")
)
