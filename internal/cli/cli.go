package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/postfmt/internal/app"
	"github.com/vk/postfmt/internal/boilerplate"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("postfmt", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
postfmt - post-formatting pass for the generated gglm header.

Drops generator directive lines, spaces out function bodies and constants,
and wraps the file in the gglm boilerplate. The file is rewritten in place.

Usage:
  postfmt [options] PATH

Arguments:
  PATH
    Path to the formatted header to rewrite.

Options:
`)
		flagSet.PrintDefaults()
	}

	namingFlag := flagSet.String("naming", boilerplate.DefaultVariant, "Boilerplate naming variant. Built-in: 'upper' (v2_MAP) or 'lower' (v2_map).")
	nFlag := flagSet.String("n", "", "Boilerplate naming variant (shorthand).")
	boilerplateFlag := flagSet.String("boilerplate", "", "Path to an .hcl file or directory replacing the built-in boilerplate variants.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "missing required argument: PATH"}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected exactly one PATH, got %d: %s", flagSet.NArg(), strings.Join(flagSet.Args(), " "))}
	}
	path := flagSet.Arg(0)
	slog.Debug("Input path determined.", "path", path)

	naming := *namingFlag
	if *nFlag != "" {
		naming = *nFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Path:            path,
		Naming:          naming,
		BoilerplatePath: *boilerplateFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
