package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty", addr: NetAddress{}, expected: ""},
		{name: "host and port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "port only", addr: NetAddress{Port: 9000}, expected: ":9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests parsing of host:port values.
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ip", input: "127.0.0.1:3000", want: NetAddress{Host: "127.0.0.1", Port: 3000}},
		{name: "empty host", input: ":3000", want: NetAddress{Port: 3000}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non numeric port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "port too large", input: "localhost:70000", wantErr: true},
		{name: "bad host", input: "example:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, cfg *StructuredConfig)
		wantErr error
	}{
		{
			name: "no args",
			args: nil,
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
		{
			name: "all flags",
			args: []string{"-a", "127.0.0.1:9090", "-f", "/tmp/up", "-w", "image/png, image/gif", "-max-fields-size", "10", "-c", "cfg.json"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, "/tmp/up", cfg.Storage.Files.UploadsDir)
				assert.Equal(t, []string{"image/png", "image/gif"}, cfg.Upload.MimeTypeWhitelist)
				assert.Equal(t, int64(10), cfg.Upload.MaxFieldsSize)
				assert.Equal(t, "cfg.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "other.json"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "other.json", cfg.JSONFilePath)
			},
		},
		{
			name: "positional port",
			args: []string{"3000"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, 3000, cfg.Server.Port)
			},
		},
		{
			name: "positional port overrides -a port",
			args: []string{"-a", "localhost:9090", "3000"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost", cfg.Server.Host)
				assert.Equal(t, 3000, cfg.Server.Port)
			},
		},
		{name: "invalid port", args: []string{"abc"}, wantErr: ErrInvalidPortArgument},
		{name: "port out of range", args: []string{"65536"}, wantErr: ErrInvalidPortArgument},
		{name: "too many args", args: []string{"3000", "4000"}, wantErr: ErrTooManyArguments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-unknown"})
	assert.Error(t, err)
}
