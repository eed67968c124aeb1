package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	flags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/curry/fp"
)

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := run(args, &out)
	return out.String(), err
}

func writePipelineFile(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "words",
			args: []string{
				"-s", "nonempty", "-s", "upper", "-s", "join",
				"hello", "", "world",
			},
			want: "HELLO WORLD\n",
		},
		{
			name: "reverse each word",
			args: []string{"--stage", "reverse", "abc", "héllo"},
			want: "[cba olléh]\n",
		},
		{
			name: "longest word",
			args: []string{"-s", "longest", "go", "curry", "pipe"},
			want: "curry\n",
		},
		{
			name: "numbers",
			args: []string{
				"-m", "numbers", "-s", "double", "-s", "sum",
				"--", "1", "2", "3",
			},
			want: "12\n",
		},
		{
			name: "negative values after double dash",
			args: []string{
				"-m", "numbers", "-s", "positive", "-s", "negate",
				"--", "-1", "2", "-3", "4",
			},
			want: "[-2 -4]\n",
		},
		{
			name: "lower median",
			args: []string{"-m", "numbers", "-s", "median", "4", "1", "3", "2"},
			want: "2\n",
		},
		{
			name: "mean",
			args: []string{"-m", "numbers", "-s", "inc", "-s", "mean", "1", "2", "3"},
			want: "3\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := runArgs(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRunRandomizeKeepsLetters(t *testing.T) {
	got, err := runArgs(t, "-s", "randomize", "-s", "lower", "-s", "join",
		"Curried", "PIPE")
	require.NoError(t, err)
	require.Equal(t, "curried pipe\n", got)
}

func TestRunCompositionMismatch(t *testing.T) {
	// sum produces a single number which double cannot map over.
	_, err := runArgs(t, "-m", "numbers", "-s", "sum", "-s", "double", "1", "2")
	require.ErrorIs(t, err, fp.ErrCompositionMismatch)

	var mismatch *fp.CompositionMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, 1, mismatch.Stage)
	require.Contains(t, err.Error(), "pipeline [sum double]")
}

func TestRunEmptySample(t *testing.T) {
	_, err := runArgs(t, "-m", "numbers", "-s", "mean")
	require.ErrorIs(t, err, errEmptySample)

	var stageErr *fp.StageError
	require.ErrorAs(t, err, &stageErr)
	require.Equal(t, 0, stageErr.Stage)
}

func TestRunReportsEveryBadNumber(t *testing.T) {
	_, err := runArgs(t, "-m", "numbers", "-s", "sum", "1", "x", "2", "y")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"x"`)
	require.Contains(t, err.Error(), `"y"`)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig([]string{"-s", "upper", "a", "b"})
	require.NoError(t, err)

	require.Equal(t, modeWords, cfg.mode)
	require.Equal(t, []string{"upper"}, cfg.stageNames)
	require.Len(t, cfg.stages, 1)
	require.Equal(t, []string{"a", "b"}, cfg.values)
	require.Equal(t, "INF", cfg.level.String())
}

func TestLoadConfigAccumulatesErrors(t *testing.T) {
	_, err := loadConfig([]string{
		"-m", "numbers", "-d", "loud",
		"-s", "shout", "-s", "sum", "-s", "wat",
	})
	require.Error(t, err)

	msg := err.Error()
	require.Contains(t, msg, "(3 problem(s))")
	require.Contains(t, msg, `unknown debug level "loud"`)
	require.Contains(t, msg, `unknown numbers stage "shout"`)
	require.Contains(t, msg, `unknown numbers stage "wat"`)
	require.NotContains(t, msg, `"sum"`)
}

func TestLoadConfigUnknownMode(t *testing.T) {
	_, err := loadConfig([]string{"-m", "bytes", "-s", "upper"})
	require.ErrorContains(t, err, `unknown mode "bytes"`)
	require.NotContains(t, err.Error(), "stage")
}

func TestLoadConfigNoStages(t *testing.T) {
	_, err := loadConfig([]string{"a"})
	require.ErrorContains(t, err, "no stages given")
}

func TestLoadConfigBadFlag(t *testing.T) {
	_, err := loadConfig([]string{"--nope"})

	var flagErr *flags.Error
	require.True(t, errors.As(err, &flagErr))
	require.Equal(t, flags.ErrUnknownFlag, flagErr.Type)
}

func TestPipelineFile(t *testing.T) {
	path := writePipelineFile(t, strings.Join([]string{
		"mode: numbers",
		"debuglevel: warn",
		"stages:",
		"  - inc",
		"  - max",
	}, "\n"))

	got, err := runArgs(t, "-C", path, "1", "5")
	require.NoError(t, err)
	require.Equal(t, "6\n", got)

	// Stages given on the command line replace those of the file.
	got, err = runArgs(t, "-C", path, "-s", "min", "1", "5")
	require.NoError(t, err)
	require.Equal(t, "1\n", got)

	cfg, err := loadConfig([]string{"--configfile", path, "-d", "debug"})
	require.NoError(t, err)
	require.Equal(t, "DBG", cfg.level.String())
}

func TestPipelineFileRejectsUnknownFields(t *testing.T) {
	path := writePipelineFile(t, "mode: numbers\nstagez: [inc]\n")

	_, err := loadConfig([]string{"-C", path})
	require.ErrorContains(t, err, "parsing pipeline file")
}

func TestPipelineFileMissing(t *testing.T) {
	_, err := loadConfig([]string{"-C", filepath.Join(t.TempDir(), "nope.yaml")})
	require.ErrorIs(t, err, os.ErrNotExist)
}
