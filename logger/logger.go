// Package logger is a thin leveled wrapper around zerolog. The library is
// quiet in normal operation; logging exists for rare operational events such
// as the seed source falling back from OS entropy, and for applications
// embedding these packages that want one shared structured logger.
package logger

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	SetConsoleWriter()
}

// Log returns the underlying zerolog logger for callers that need the full
// builder API.
func Log() *zerolog.Logger {
	return &log
}

// SetWriter replaces the log output.
func SetWriter(w io.Writer) {
	log = zerolog.New(w).With().Timestamp().Logger()
}

// SetLogger replaces the logger wholesale, for embedding applications that
// already configured zerolog their own way.
func SetLogger(logger zerolog.Logger) {
	log = logger
}

// SetLevel sets the global level by name. Unknown names leave the level
// unchanged.
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "quiet", "silent", "off":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}
}

func doLog(event *zerolog.Event, args []interface{}) {
	event.Timestamp()
	if len(args) == 0 {
		event.Msg("")
		return
	}

	// First arg is the message; remaining args are alternating key/value
	// pairs appended as structured fields.
	msg, _ := args[0].(string)
	args = args[1:]
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		switch v := args[i+1].(type) {
		case string:
			event.Str(key, v)
		case int:
			event.Int(key, v)
		case int64:
			event.Int64(key, v)
		case uint64:
			event.Uint64(key, v)
		case float64:
			event.Float64(key, v)
		case bool:
			event.Bool(key, v)
		case time.Duration:
			event.Dur(key, v)
		case error:
			event.AnErr(key, v)
		default:
			event.Interface(key, v)
		}
	}
	event.Msg(msg)
}

// Trace logs a message at level Trace.
func Trace(args ...interface{}) {
	doLog(log.Trace(), args)
}

// Debug logs a message at level Debug.
func Debug(args ...interface{}) {
	doLog(log.Debug(), args)
}

// Info logs a message at level Info.
func Info(args ...interface{}) {
	doLog(log.Info(), args)
}

// Warn logs a message at level Warn.
func Warn(args ...interface{}) {
	doLog(log.Warn(), args)
}

// WarnErr logs err and a message at level Warn.
func WarnErr(err error, args ...interface{}) {
	doLog(log.Warn().Err(err), args)
}

// Error logs err and a message at level Error.
func Error(err error, args ...interface{}) {
	doLog(log.Error().Err(err), args)
}
