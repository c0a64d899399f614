package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
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

// Config is the run configuration given in the command line.
type Config struct {
	FFPath       string //force field definition, empty for the built-in MARTINI 2.1.
	SigmaEpsilon bool
	HeatmapPath  string
	LogLevel     slog.Level
	Program      string
	Atomistic    string   //atomistic force field to merge, if any.
	Extra        []string //files copied verbatim before the solvents.
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("martinigen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
martinigen - writes the MARTINI coarse-grained force field in Gromacs format.

Usage:
  martinigen [options] [ATOMISTIC_FF [FILE...]]

Arguments:
  ATOMISTIC_FF
    Gromacs force field file whose atomtypes, nonbond_params and pairtypes
    sections are merged with the coarse-grained ones.
  FILE
    Files copied verbatim to the output, before the solvent definitions.
  Files ending in .gz or .zst are decompressed.

Options:
`)
		flagSet.PrintDefaults()
	}

	ffFlag := flagSet.String("ff", "", "YAML force field definition. The built-in MARTINI 2.1 is used if empty.")
	sigepFlag := flagSet.Bool("sigma-epsilon", false, "Write sigma/epsilon (combination rule 2) instead of c6/c12.")
	heatmapFlag := flagSet.String("heatmap", "", "Also save a heat map of the c6 coefficients to this file (png, svg, pdf).")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	nameFlag := flagSet.String("name", "martinigen", "Program name credited in the output header.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	var level slog.Level
	switch strings.ToLower(*logLevelFlag) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config := &Config{
		FFPath:       *ffFlag,
		SigmaEpsilon: *sigepFlag,
		HeatmapPath:  *heatmapFlag,
		LogLevel:     level,
		Program:      *nameFlag,
	}
	if flagSet.NArg() > 0 {
		config.Atomistic = flagSet.Arg(0)
		config.Extra = flagSet.Args()[1:]
	}
	if config.SigmaEpsilon && config.Atomistic != "" {
		return nil, false, &ExitError{Code: 2, Message: "-sigma-epsilon can't be used when merging an atomistic force field"}
	}
	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
