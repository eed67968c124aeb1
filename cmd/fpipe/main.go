// Command fpipe runs a pipeline of named stages over its positional
// arguments and prints the result.
//
//	fpipe --stage nonempty --stage upper --stage join hello "" world
//	fpipe -m numbers -s double -s sum -- 1 2 -3
//
// Stages are resolved per mode and composed with fp.PipeAny, so a stage that
// cannot consume the previous stage's output is reported as a composition
// mismatch when the pipeline runs.
package main

import (
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/charmingruby/curry/fp"
	"github.com/charmingruby/curry/result"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		// go-flags already printed its own errors and the help text.
		if e, ok := err.(*flags.Error); ok {
			if e.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		}

		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads the configuration from args, executes the pipeline and writes
// the result to out.
func run(args []string, out io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	setLogLevels(cfg.level)

	pipeline, err := fp.PipeAny.Compose(cfg.stages...)
	if err != nil {
		return err
	}

	log.Debugf("Running %d stage(s) %v over %d %s value(s)",
		pipeline.Len(), cfg.stageNames, len(cfg.values), cfg.mode)

	input := result.FromTuple(parseInput(cfg.mode, cfg.values))
	res := result.FlatMap(input, func(in any) result.Result[any] {
		return result.MapErr(pipeline.Result(in), func(err error) error {
			return fmt.Errorf("pipeline %v: %w", cfg.stageNames, err)
		})
	})
	value, err := res.Unwrap()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, value)
	return err
}
