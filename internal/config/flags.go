package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-f uploads directory
//	-w comma separated mime type whitelist
//	-max-fields-size maximum combined size of the non-file form values in bytes
//	-c/-config json file path with configs
//
// A single optional positional argument overrides the listening port.
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var uploadsDir string
	var whitelist string
	var maxFieldsSize int64
	var jsonConfigPath string

	fs := flag.NewFlagSet("upnode", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&uploadsDir, "f", "", "Uploads directory")
	fs.StringVar(&whitelist, "w", "", "Comma separated mime type whitelist")
	fs.Int64Var(&maxFieldsSize, "max-fields-size", 0, "Maximum combined size of the form field values in bytes")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	port := serverAddress.Port
	switch fs.NArg() {
	case 0:
	case 1:
		p, err := strconv.Atoi(fs.Arg(0))
		if err != nil || p < 1 || p > maxPort {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPortArgument, fs.Arg(0))
		}
		port = p
	default:
		return nil, fmt.Errorf("%w: %v", ErrTooManyArguments, fs.Args())
	}

	return &StructuredConfig{
		Storage: Storage{
			Files: Files{UploadsDir: uploadsDir},
		},
		Server: Server{
			Host: serverAddress.Host,
			Port: port,
		},
		Upload: Upload{
			MimeTypeWhitelist: splitList(whitelist),
			MaxFieldsSize:     maxFieldsSize,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost", and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > maxPort {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}

	return list
}
