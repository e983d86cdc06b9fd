package client

import "errors"

var (
	ErrNoAdapter        = errors.New("server adapter is required")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingArguments = errors.New("missing arguments")
	ErrInvalidField     = errors.New("invalid form field")
)
