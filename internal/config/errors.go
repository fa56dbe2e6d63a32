package config

import "errors"

// Validation errors returned by StructuredConfig.validate. Matched by the
// startup path with errors.Is to decide which configuration source is at
// fault.
var (
	// ErrInvalidStorageConfigs is returned when no database DSN was provided
	// by any configuration source.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database DSN is required")

	// ErrInvalidAppConfigs is returned when the token signing key or issuer
	// is missing.
	ErrInvalidAppConfigs = errors.New("invalid app configs: token sign key and issuer are required")
)
