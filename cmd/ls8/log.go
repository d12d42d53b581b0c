package main

import (
	goio "io"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	LOG_MAX_SIZE    = 10 // Megabytes per log file before rotation.
	LOG_MAX_BACKUPS = 3  // Rotated log files kept.
)

// openLogger creates the application logger.
// Logs go to stderr, or to a rotated log file if log-file is set.
func (a *app) openLogger(stderr goio.Writer) {
	level := hclog.Warn
	if a.config.GetBool("verbose") {
		level = hclog.Trace
	}

	output := stderr
	if file := a.config.GetString("log-file"); len(file) != 0 {
		rotate := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    LOG_MAX_SIZE,
			MaxBackups: LOG_MAX_BACKUPS,
		}
		a.logFile = rotate
		output = rotate
	}

	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "ls8",
		Output: output,
		Level:  level,
	})
}
