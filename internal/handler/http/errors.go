// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"

	"github.com/MKhiriev/go-upnode/internal/app"
)

func notFoundMessage(pathname string) string {
	return fmt.Sprintf(app.MsgNotFound, pathname)
}

func methodNotAllowedMessage(method string) string {
	return fmt.Sprintf(app.MsgMethodNotAllowed, method)
}
