// Package log wraps the standard logger with level prefixes and optional
// rotation to a file.
//
// Output defaults to stderr with date, time and caller, which keeps stdout
// free for the tool server's JSON-RPC stream. Debug lines are dropped unless
// enabled through Setup.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures Setup.
type Options struct {
	// File, when set, receives all output through a size-rotated writer
	// instead of stderr.
	File string
	// Debug enables Debugf output.
	Debug bool
	// Output overrides the destination. It takes precedence over File.
	Output io.Writer
}

var debug atomic.Bool

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}

// Setup applies opts to the process-wide logger. It returns a close
// function for the rotating file, which is a no-op when no file is used.
func Setup(opts Options) func() error {
	debug.Store(opts.Debug)

	switch {
	case opts.Output != nil:
		log.SetOutput(opts.Output)
	case opts.File != "":
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		log.SetOutput(lj)
		return lj.Close
	default:
		log.SetOutput(os.Stderr)
	}
	return func() error { return nil }
}

// DebugEnabled reports whether Debugf lines are written.
func DebugEnabled() bool {
	return debug.Load()
}

// Infof logs with an [INFO] prefix.
func Infof(format string, v ...interface{}) {
	log.Output(2, "[INFO] "+fmt.Sprintf(format, v...))
}

// Warnf logs with a [WARN] prefix.
func Warnf(format string, v ...interface{}) {
	log.Output(2, "[WARN] "+fmt.Sprintf(format, v...))
}

// Errorf logs with an [ERROR] prefix.
func Errorf(format string, v ...interface{}) {
	log.Output(2, "[ERROR] "+fmt.Sprintf(format, v...))
}

// Debugf logs with a [DEBUG] prefix when debug output is enabled.
func Debugf(format string, v ...interface{}) {
	if !debug.Load() {
		return
	}
	log.Output(2, "[DEBUG] "+fmt.Sprintf(format, v...))
}
