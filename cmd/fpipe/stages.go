package main

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/charmingruby/curry/fp"
	"github.com/charmingruby/curry/option"
	"github.com/charmingruby/curry/stats"
	"github.com/charmingruby/curry/strutil"
	"github.com/charmingruby/curry/validated"
)

const (
	modeWords   = "words"
	modeNumbers = "numbers"
)

var errEmptySample = errors.New("empty sample")

// stageFactory builds a pipeline stage: a fp.Callable or a func accepted by
// fp.PipeAny.
type stageFactory func() any

var wordStages = map[string]stageFactory{
	"reverse":   func() any { return fp.MapWith(strutil.Reverse) },
	"lower":     func() any { return fp.MapWith(strutil.ToLower) },
	"upper":     func() any { return fp.MapWith(strutil.ToUpper) },
	"invert":    func() any { return fp.MapWith(strutil.InvertCase) },
	"randomize": func() any { return fp.MapWith(strutil.RandomizeCase) },
	"nonempty": func() any {
		return fp.FilterWith(func(s string) bool { return s != "" })
	},
	"join": func() any {
		return fp.ReduceFrom(func(acc, s string) string {
			if acc == "" {
				return s
			}
			return acc + " " + s
		}, "")
	},
	"longest": func() any {
		byLen := func(a, b string) int { return cmp.Compare(len(a), len(b)) }
		return func(words []string) (string, error) {
			return stats.MaxElement(words, byLen).
				ToResult(func() error { return errEmptySample }).
				Unwrap()
		}
	},
}

var numberStages = map[string]stageFactory{
	"double": func() any {
		return fp.MapWith(func(x float64) float64 { return fp.Add(x, x) })
	},
	"inc":    func() any { return fp.MapWith(fp.AddTo(1.0).Call1) },
	"negate": func() any { return fp.MapWith(fp.SubtractFrom(0.0).Call1) },
	"dec": func() any {
		return fp.MapWith(func(x float64) float64 { return fp.Subtract(x, 1) })
	},
	"positive": func() any {
		return fp.FilterWith(func(x float64) bool { return x > 0 })
	},
	"even": func() any {
		return fp.FilterWith(func(x float64) bool { return math.Mod(x, 2) == 0 })
	},
	"sum": func() any { return fp.ReduceFrom(fp.Add[float64], 0.0) },
	"mean": func() any {
		return func(xs []float64) (float64, error) {
			return stats.Average(xs, fp.Identity[float64]).
				ToResult(func() error { return errEmptySample }).
				Unwrap()
		}
	},
	"max":    func() any { return extremum(stats.MaxElement[float64]) },
	"min":    func() any { return extremum(stats.MinElement[float64]) },
	"median": func() any { return extremum(stats.MedianElement[float64]) },
}

func extremum(
	pick func([]float64, stats.Comparator[float64]) option.Option[float64],
) any {

	return func(xs []float64) (float64, error) {
		return pick(xs, cmp.Compare[float64]).
			ToResult(func() error { return errEmptySample }).
			Unwrap()
	}
}

func stagesFor(mode string) map[string]stageFactory {
	switch mode {
	case modeWords:
		return wordStages
	case modeNumbers:
		return numberStages
	default:
		return nil
	}
}

// stageNames lists the stages known in mode, sorted.
func stageNames(mode string) []string {
	names := make([]string, 0, len(stagesFor(mode)))
	for name := range stagesFor(mode) {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func resolveStage(mode string) func(string) validated.Validated[error, any] {
	return func(name string) validated.Validated[error, any] {
		factory, ok := stagesFor(mode)[name]
		if !ok {
			return validated.Invalid[error, any](fmt.Errorf(
				"unknown %s stage %q (known: %s)", mode, name,
				strings.Join(stageNames(mode), ", "),
			))
		}
		return validated.Valid[error](factory())
	}
}

// parseInput converts the positional values for mode, reporting every value
// that fails to parse.
func parseInput(mode string, values []string) (any, error) {
	switch mode {
	case modeWords:
		return slices.Clone(values), nil

	case modeNumbers:
		parsed := validated.Traverse(values,
			func(s string) validated.Validated[error, float64] {
				x, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return validated.Invalid[error, float64](
						fmt.Errorf("invalid number %q", s),
					)
				}
				return validated.Valid[error](x)
			},
		)
		return validated.ToResult(parsed).Unwrap()

	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}
