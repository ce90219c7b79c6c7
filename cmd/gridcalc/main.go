package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/vogtb/gridcalc"
	"github.com/vogtb/gridcalc/gridtext"
	"github.com/vogtb/gridcalc/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process exit, so tests can drive it
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	config, shouldExit, err := cli.Parse(args, stderr)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(stderr, exitErr.Message)
			return exitErr.Code
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	if shouldExit {
		return 0
	}
	if config.ShowVersion {
		fmt.Fprintf(stdout, "gridcalc %s\n", version)
		return 0
	}

	logger := cli.NewLogger(config.LogLevel, config.LogFormat, stderr)

	if config.ReadsStdin() && isTerminal(stdin) {
		cli.Usage(stderr)
		return 2
	}

	if err := evaluate(config, stdin, stdout, logger); err != nil {
		logger.Error("Evaluation failed.", "path", config.GridPath, "error", err)
		return 1
	}
	return 0
}

// evaluate reads the grid named by config, evaluates it and writes the
// results
func evaluate(config *cli.Config, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	in := stdin
	if !config.ReadsStdin() {
		f, err := os.Open(config.GridPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	decoded, err := gridtext.NewReader(in, config.Encoding)
	if err != nil {
		return err
	}
	rows, err := gridtext.Read(decoded)
	if err != nil {
		return err
	}
	logger.Debug("Grid loaded.", "path", config.GridPath, "rows", len(rows))

	opts := []gridcalc.Option{gridcalc.WithLogger(logger)}
	if config.CycleCheck {
		opts = append(opts, gridcalc.WithCycleDetection())
	}
	result, err := gridcalc.Evaluate(rows, opts...)
	if err != nil {
		return err
	}

	if config.OutputPath == "" {
		return gridtext.Write(stdout, result)
	}

	f, err := os.Create(config.OutputPath)
	if err != nil {
		return err
	}
	if err := gridtext.Write(f, result); err != nil {
		f.Close()
		return err
	}
	logger.Debug("Result written.", "output", config.OutputPath)
	return f.Close()
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
