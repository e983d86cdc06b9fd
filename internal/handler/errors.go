// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errServicesAreMissing is returned by NewHandlers when the file or upload
// service is not provided. The routes cannot be served without them, so this
// is treated as a fatal misconfiguration at startup.
var errServicesAreMissing = errors.New("file and upload services are required")
