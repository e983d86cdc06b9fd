package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"dario.cat/mergo"
)

const (
	defaultClientServerURL      = "http://localhost:8080"
	defaultClientRequestTimeout = 30 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the file exchange server.
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`
	// RequestTimeout is the timeout for a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains the server URL and request timeout.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
	// Args are the positional arguments left after flag parsing: the
	// command name followed by its operands.
	Args []string
}

// GetClientConfig builds and validates the client configuration from the
// process arguments, environment and defaults, in that priority order.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	flagsCfg, err := parseClientFlags(args)
	if err != nil {
		return nil, err
	}

	envCfg := &ClientConfig{}
	if err = parseEnv(envCfg); err != nil {
		return nil, err
	}

	defaults := &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      defaultClientServerURL,
			RequestTimeout: defaultClientRequestTimeout,
		},
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{flagsCfg, envCfg, defaults} {
		if err = mergo.Merge(cfg, src); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return cfg, cfg.validate()
}

// parseClientFlags parses the client flags from args.
//
// Flags:
//
//	-s server base URL
//	-timeout request timeout (e.g., "30s", "1m")
func parseClientFlags(args []string) (*ClientConfig, error) {
	var serverURL string
	var timeout time.Duration

	fs := flag.NewFlagSet("upnode-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&serverURL, "s", "", "Server base URL")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidAdapterConfigs, err)
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      serverURL,
			RequestTimeout: timeout,
		},
		Args: fs.Args(),
	}, nil
}
