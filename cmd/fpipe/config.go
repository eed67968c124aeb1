package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"

	"github.com/charmingruby/curry/validated"
)

const (
	defaultLogLevel = "info"
	defaultMode     = modeWords
)

// config defines the command line options. Options left unset fall back to
// the values of the pipeline file, then to the defaults.
type config struct {
	ConfigFile string   `short:"C" long:"configfile" description:"Path to a YAML pipeline file"`
	DebugLevel string   `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical, off}"`
	Mode       string   `short:"m" long:"mode" description:"How positional values are parsed {words, numbers}"`
	Stages     []string `short:"s" long:"stage" description:"Stage to run, in order; may be repeated"`
}

// fileConfig is the on-disk shape of a pipeline file.
type fileConfig struct {
	Mode       string   `yaml:"mode"`
	DebugLevel string   `yaml:"debuglevel"`
	Stages     []string `yaml:"stages"`
}

// runConfig is a validated configuration ready to run.
type runConfig struct {
	mode       string
	stageNames []string
	stages     []any
	level      btclog.Level
	values     []string
}

// loadConfig parses args, merges in the pipeline file if one is given and
// validates the result. Every validation problem is reported at once.
func loadConfig(args []string) (*runConfig, error) {
	var cfg config
	values, err := flags.NewParser(&cfg, flags.Default).ParseArgs(args)
	if err != nil {
		return nil, err
	}

	if cfg.ConfigFile != "" {
		file, err := readPipelineFile(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg.merge(file)
	}

	if cfg.Mode == "" {
		cfg.Mode = defaultMode
	}
	if cfg.DebugLevel == "" {
		cfg.DebugLevel = defaultLogLevel
	}

	checked := validated.Zip(
		validated.Zip(validateLevel(cfg.DebugLevel), validateMode(cfg.Mode)),
		validateStages(cfg.Mode, cfg.Stages),
	)
	valid, err := validated.ToResult(checked).Unwrap()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration (%d problem(s)):\n%w",
			len(checked.Errors()), err)
	}

	return &runConfig{
		mode:       cfg.Mode,
		stageNames: cfg.Stages,
		stages:     valid.Second,
		level:      valid.First.First,
		values:     values,
	}, nil
}

// merge fills options not given on the command line from file.
func (c *config) merge(file *fileConfig) {
	if c.Mode == "" {
		c.Mode = file.Mode
	}
	if c.DebugLevel == "" {
		c.DebugLevel = file.DebugLevel
	}
	if len(c.Stages) == 0 {
		c.Stages = file.Stages
	}
}

func readPipelineFile(path string) (*fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pipeline file: %w", err)
	}

	var file fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing pipeline file %s: %w", path, err)
	}
	return &file, nil
}

func validateLevel(s string) validated.Validated[error, btclog.Level] {
	level, ok := btclog.LevelFromString(s)
	if !ok {
		return validated.Invalid[error, btclog.Level](
			fmt.Errorf("unknown debug level %q", s),
		)
	}
	return validated.Valid[error](level)
}

func validateMode(mode string) validated.Validated[error, string] {
	if stagesFor(mode) == nil {
		return validated.Invalid[error, string](fmt.Errorf(
			"unknown mode %q (known: %s, %s)", mode, modeWords, modeNumbers,
		))
	}
	return validated.Valid[error](mode)
}

func validateStages(mode string, names []string) validated.Validated[error, []any] {
	if len(names) == 0 {
		return validated.Invalid[error, []any](
			fmt.Errorf("no stages given; use --stage or a pipeline file"),
		)
	}
	if stagesFor(mode) == nil {
		// Reported by validateMode.
		return validated.Valid[error, []any](nil)
	}
	return validated.Traverse(names, resolveStage(mode))
}
