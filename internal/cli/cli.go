// Package cli holds the plumbing shared by the pmxfile commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mmdformats/pmxfile/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger sets the global logger to a console logger on stderr, leaving
// stdout free for command output.
func InitLogger(app string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}

// Files holds the input and output of a command.
type Files struct {
	Input  io.Reader
	Output io.Writer

	in  *os.File
	out *os.File
}

// Open opens the INPUT and OUTPUT positional arguments. If INPUT is "-" or
// unspecified, then stdin is used. If OUTPUT is "-" or unspecified, then
// stdout is used.
func Open(args []string) (f *Files, err error) {
	f = &Files{Input: os.Stdin, Output: os.Stdout}
	if len(args) >= 1 && args[0] != "-" {
		if f.in, err = os.Open(args[0]); err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		f.Input = f.in
	}
	if len(args) >= 2 && args[1] != "-" {
		if f.out, err = os.Create(args[1]); err != nil {
			f.Close()
			return nil, fmt.Errorf("create output: %w", err)
		}
		f.Output = f.out
	}
	return f, nil
}

// Close closes the files opened by Open. The output file is synced before it
// is closed.
func (f *Files) Close() error {
	var errs errors.Errors
	if f.in != nil {
		if err := f.in.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close input: %w", err))
		}
	}
	if f.out != nil {
		if err := f.out.Sync(); err != nil {
			errs = append(errs, fmt.Errorf("sync output: %w", err))
		}
		if err := f.out.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close output: %w", err))
		}
	}
	return errs.Return()
}

// Warnings returns each warning within warn.
func Warnings(warn error) []error {
	switch warn := warn.(type) {
	case nil:
		return nil
	case errors.Errors:
		return []error(warn)
	default:
		return []error{warn}
	}
}

// LogWarnings logs each warning within warn.
func LogWarnings(logger zerolog.Logger, op string, warn error) {
	for _, w := range Warnings(warn) {
		logger.Warn().Str("op", op).Err(w).Msg("warning")
	}
}
