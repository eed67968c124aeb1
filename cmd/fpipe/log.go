package main

import (
	"os"

	"github.com/btcsuite/btclog"

	"github.com/charmingruby/curry/fp"
)

// Loggers per subsystem. A single backend logger writing to stderr is created
// and all subsystem loggers created from it share it, so stdout only ever
// carries the pipeline result.
var (
	backendLog = btclog.NewBackend(os.Stderr)

	fpipLog = backendLog.Logger("FPIP")
	fpopLog = backendLog.Logger(fp.Subsystem)

	subsystemLoggers = map[string]btclog.Logger{
		"FPIP":       fpipLog,
		fp.Subsystem: fpopLog,
	}
)

var log = fpipLog

func init() {
	fp.UseLogger(fpopLog)
}

// setLogLevels sets the logging level for all of the subsystem loggers.
func setLogLevels(level btclog.Level) {
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
}
