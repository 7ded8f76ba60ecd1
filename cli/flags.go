package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// ExitError carries the process exit code for a failed run.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Flags holds the parsed command-line options.
type Flags struct {
	// ConfigPath overrides the config file location.
	ConfigPath string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// Quiet suppresses the banner and the prompt, for scripted input.
	Quiet bool
}

// Parse processes command-line arguments. It reports true when the program
// should exit cleanly without running, as after -help.
func Parse(args []string, output io.Writer) (*Flags, bool, error) {
	fs := flag.NewFlagSet("socialnet", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
socialnet - an in-memory social graph shell.

Usage:
  socialnet [options] < commands.txt

Options:
`)
		fs.PrintDefaults()
	}

	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to a YAML config file. Defaults to $SOCIALNET_CONFIG.")
	fs.StringVar(&f.LogLevel, "log-level", "", "Override the log level: debug, info, warn or error.")
	fs.BoolVar(&f.Quiet, "quiet", false, "Do not print the banner or the prompt.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}

	f.LogLevel = strings.ToLower(f.LogLevel)
	switch f.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return f, false, nil
}
