package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	martini "github.com/rmera/gomartini"
	"github.com/rmera/gomartini/ffplot"
	"github.com/rmera/gomartini/internal/cli"
	"github.com/rmera/gomartini/top"
)

// main is the entrypoint for martinigen.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadFF(path string) (*martini.FF, error) {
	var D *martini.Definition
	var err error
	if path == "" {
		D, err = martini.Default()
	} else {
		D, err = martini.DefinitionFromFile(path)
	}
	if err != nil {
		return nil, err
	}
	return D.Build()
}

// run writes the force field to outW. Usage and flag errors also go to outW.
func run(outW io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevel,
	})))

	ff, err := loadFF(config.FFPath)
	if err != nil {
		return err
	}
	slog.Info("Force field assembled", "name", ff.Name, "version", ff.Version, "types", ff.Types.Len(), "codes", ff.Codes.Len())
	if config.HeatmapPath != "" {
		if err := ffplot.Heatmap(ff, config.HeatmapPath); err != nil {
			return err
		}
	}
	E := &top.Emitter{FF: ff, Program: config.Program, SigmaEpsilon: config.SigmaEpsilon}
	if config.Atomistic != "" {
		E.Atomistic, err = top.AtomisticFromFile(config.Atomistic)
		if err != nil {
			return err
		}
	}
	for _, v := range config.Extra {
		L, err := top.LinesFromFile(v)
		if err != nil {
			return err
		}
		E.Extra = append(E.Extra, L)
	}
	return E.Write(outW)
}
