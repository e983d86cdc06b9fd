package config

import "errors"

// Validation errors returned by validate when required configuration groups
// are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an empty or unusable uploads directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a port outside 1..65535.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidUploadConfigs indicates a malformed whitelist entry or a
	// negative field size limit.
	ErrInvalidUploadConfigs = errors.New("invalid upload configuration")
	// ErrInvalidAdapterConfigs indicates a missing server URL or timeout in
	// the client configuration.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)

// Argument errors returned while parsing the command line.
var (
	// ErrInvalidPortArgument is returned when the positional port argument is
	// not a number in 1..65535.
	ErrInvalidPortArgument = errors.New("invalid port argument")
	// ErrTooManyArguments is returned when more than one positional argument
	// is given to the server.
	ErrTooManyArguments = errors.New("too many positional arguments")
)

const maxPort = 65535
