package service

import "errors"

var (
	ErrNoRequestBody = errors.New("upload request has no body")
)
