package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vogtb/gridcalc/gridtext"
)

// ExitError is a command-line usage problem. Code is the process exit
// status gridcalc should end with (2 for bad flags or arguments) and
// Message is printed to stderr as-is.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Config holds everything the command needs to run one evaluation.
type Config struct {
	GridPath    string // "" or "-" reads stdin
	OutputPath  string // "" writes stdout
	Encoding    string
	CycleCheck  bool
	LogLevel    string
	LogFormat   string
	ShowVersion bool
}

// ReadsStdin reports whether the grid comes from standard input.
func (c *Config) ReadsStdin() bool {
	return c.GridPath == "" || c.GridPath == "-"
}

// Parse reads gridcalc's flags and optional GRID_PATH from args. Help
// output goes to output and returns true with a nil Config;
// any invalid flag, log setting or encoding name is an *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gridcalc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridcalc - evaluate a grid of numbers, references and formulas.

Usage:
  gridcalc [options] [GRID_PATH]

Arguments:
  GRID_PATH
    Path to a grid file. Each line is a row, cells are separated by commas.
    Reads standard input when omitted or "-".

Options:
`)
		flagSet.PrintDefaults()
	}

	outFlag := flagSet.String("output", "", "Write the result grid to this file instead of stdout.")
	oFlag := flagSet.String("o", "", "Write the result grid to this file (shorthand).")
	encodingFlag := flagSet.String("encoding", "utf-8", "Input encoding. Options: "+strings.Join(gridtext.Encodings(), ", ")+".")
	cycleFlag := flagSet.Bool("cycle-check", false, "Fail on circular references instead of recursing without bound.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	versionFlag := flagSet.Bool("version", false, "Print the version and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "expected at most one GRID_PATH"}
	}

	config := &Config{
		GridPath:    flagSet.Arg(0),
		Encoding:    strings.ToLower(*encodingFlag),
		CycleCheck:  *cycleFlag,
		LogFormat:   strings.ToLower(*logFormatFlag),
		LogLevel:    strings.ToLower(*logLevelFlag),
		ShowVersion: *versionFlag,
	}
	if *outFlag != "" {
		config.OutputPath = *outFlag
	} else {
		config.OutputPath = *oFlag
	}

	if config.LogFormat != "text" && config.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	switch config.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if _, err := gridtext.NewReader(strings.NewReader(""), config.Encoding); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid encoding: must be one of %s", strings.Join(gridtext.Encodings(), ", "))}
	}
	slog.Debug("CLI parameter validation complete.")

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// Usage prints the help text for the command to output.
func Usage(output io.Writer) {
	_, _, _ = Parse([]string{"-h"}, output)
}
