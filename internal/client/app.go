package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/MKhiriev/go-upnode/internal/adapter"
	"github.com/MKhiriev/go-upnode/internal/app"
	"github.com/MKhiriev/go-upnode/internal/logger"
)

const usage = `usage:
  client [-s url] [-timeout d] push [-F name=value]... <remote-path> <file>...
  client [-s url] [-timeout d] pull <remote-path> [out]
  client [-s url] [-timeout d] ls <remote-dir>`

type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, ErrNoAdapter
	}

	return &App{adapter: serverAdapter, out: out, logger: logger}, nil
}

// Usage returns the command synopsis.
func Usage() string {
	return usage
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: command expected\n%s", ErrMissingArguments, usage)
	}

	command, operands := args[0], args[1:]
	switch command {
	case "push":
		return a.push(ctx, operands)
	case "pull":
		return a.pull(ctx, operands)
	case "ls":
		return a.list(ctx, operands)
	default:
		return fmt.Errorf("%w: %q\n%s", ErrUnknownCommand, command, usage)
	}
}

// formFields collects repeated -F name=value flags.
type formFields map[string]string

func (f formFields) String() string {
	pairs := make([]string, 0, len(f))
	for name, value := range f {
		pairs = append(pairs, name+"="+value)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func (f formFields) Set(raw string) error {
	name, value, ok := strings.Cut(raw, "=")
	if !ok || name == "" {
		return fmt.Errorf("%w: %q, expected name=value", ErrInvalidField, raw)
	}
	f[name] = value
	return nil
}

func (a *App) push(ctx context.Context, operands []string) error {
	fields := formFields{}
	fs := flag.NewFlagSet("push", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(fields, "F", "Form field sent with the files (name=value)")

	if err := fs.Parse(operands); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidField, err)
	}

	operands = fs.Args()
	if len(operands) < 2 {
		return fmt.Errorf("%w: push [-F name=value]... <remote-path> <file>...", ErrMissingArguments)
	}

	var formValues map[string]string
	if len(fields) > 0 {
		formValues = fields
	}

	result, err := a.adapter.Push(ctx, operands[0], formValues, operands[1:]...)
	if err != nil && !result.Errors {
		return err
	}

	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	if encodeErr := encoder.Encode(result); encodeErr != nil {
		return encodeErr
	}

	return err
}

func (a *App) pull(ctx context.Context, operands []string) error {
	if len(operands) < 1 {
		return fmt.Errorf("%w: pull <remote-path> [out]", ErrMissingArguments)
	}

	served, err := a.adapter.Pull(ctx, operands[0])
	if err != nil {
		return err
	}

	destination := path.Base(served.Pathname)
	if len(operands) > 1 {
		destination = operands[1]
	}

	if err = os.WriteFile(destination, served.Content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", destination, err)
	}

	a.logger.Debug().Str("remote_path", served.Pathname).Str("mime_type", served.MimeType).Msg("file pulled")
	_, err = fmt.Fprintf(a.out, app.MsgSaved+"\n", len(served.Content), destination)
	return err
}

func (a *App) list(ctx context.Context, operands []string) error {
	if len(operands) < 1 {
		return fmt.Errorf("%w: ls <remote-dir>", ErrMissingArguments)
	}

	entries, err := a.adapter.List(ctx, operands[0])
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if _, err = fmt.Fprintln(a.out, entry); err != nil {
			return err
		}
	}
	return nil
}
