// Package utils provides small, dependency-free helpers shared by the
// transport and service layers: request path resolution, mime type
// classification, HTTP response writing and identifier generation.
package utils
