// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"os"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container of the file
// exchange server. It is built once at startup and handed to every component
// by value or pointer; nothing reads process state afterwards.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the location of the upload root.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listening address of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Upload holds rules applied to incoming multipart uploads.
	Upload Upload `envPrefix:"UPLOAD_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string reported in startup logs.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the storage backends.
type Storage struct {
	// Files holds the file-system settings of the upload root.
	Files Files `envPrefix:"FILES_"`
}

// Files holds file-system settings for served and uploaded files.
type Files struct {
	// UploadsDir is the directory every served and written file is confined
	// to. Relative values are resolved against the working directory.
	// Env: STORAGE_FILES_UPLOADS_DIR
	UploadsDir string `env:"UPLOADS_DIR"`
}

// Server holds network settings for the inbound transport layer.
type Server struct {
	// Host is the interface the server binds to (e.g. "localhost").
	// Env: SERVER_HOST
	Host string `env:"HOST"`

	// Port is the TCP port the server listens on.
	// Env: SERVER_PORT
	Port int `env:"PORT"`

	// ReadHeaderTimeout bounds the time allowed to read request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`
}

// Address returns the listening address in host:port form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// URL returns the base URL printed at startup.
func (s Server) URL() string {
	return "http://" + s.Address() + "/"
}

// Upload holds the rules of the upload pipeline.
type Upload struct {
	// MimeTypeWhitelist lists the accepted mime types. Empty accepts all.
	// Env: UPLOAD_MIME_TYPE_WHITELIST (comma separated)
	MimeTypeWhitelist []string `env:"MIME_TYPE_WHITELIST" envSeparator:","`

	// MaxFieldsSize bounds the combined size of all non-file form values of
	// one request, in bytes.
	// Env: UPLOAD_MAX_FIELDS_SIZE
	MaxFieldsSize int64 `env:"MAX_FIELDS_SIZE"`
}

const (
	defaultUploadsDir        = "uploads"
	defaultHost              = "localhost"
	defaultPort              = 8080
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxFieldsSize     = 2 << 20
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Files: Files{UploadsDir: defaultUploadsDir},
		},
		Server: Server{
			Host:              defaultHost,
			Port:              defaultPort,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		Upload: Upload{
			MaxFieldsSize: defaultMaxFieldsSize,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from the process arguments, environment, optional JSON file and defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return getStructuredConfig(os.Args[1:])
}

func getStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
