package adapter

import "errors"

var (
	ErrInvalidServerURL    = errors.New("invalid server url")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrInternalServerError = errors.New("internal server error")
	ErrUploadFailed        = errors.New("upload failed")
	ErrNotADirectory       = errors.New("not a directory")
	ErrNoFilesToPush       = errors.New("no files to push")
)
