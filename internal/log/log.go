// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

var traceEnabled bool

// InitLogger sets up Apex with a custom handler and a log level from the
// EC2TUI_LOG env variable. A session log file can be requested via the
// EC2TUI_LOG_FILE env variable or the optional fileSpec argument (the env
// variable wins); a path is used verbatim, "1"/"true" pick a timestamped
// name in the CWD. With a file in play, output goes there instead of
// stderr so the TUI screen stays clean. The caller passes the log.file
// config value as fileSpec; this package cannot read config itself.
func InitLogger(fileSpec ...string) {
	envLevel := strings.ToLower(os.Getenv("EC2TUI_LOG"))
	if envLevel == "" {
		envLevel = "error"
	}
	traceEnabled = envLevel == "trace"
	var apexLevel log.Level
	switch envLevel {
	case "trace":
		apexLevel = log.DebugLevel // Show debug and above for trace
	case "debug":
		apexLevel = log.DebugLevel
	case "info":
		apexLevel = log.InfoLevel
	case "warn":
		apexLevel = log.WarnLevel
	case "error":
		apexLevel = log.ErrorLevel
	case "fatal":
		apexLevel = log.FatalLevel
	default:
		apexLevel = log.ErrorLevel
	}
	spec := os.Getenv("EC2TUI_LOG_FILE")
	if spec == "" && len(fileSpec) == 1 {
		spec = fileSpec[0]
	}
	log.SetHandler(&CustomHandler{Writer: openLogDest(spec)})
	log.SetLevel(apexLevel)
}

// logPath resolves a file spec to a path. Empty means no file.
func logPath(spec string) string {
	if spec == "" {
		return ""
	}
	if spec == "1" || strings.EqualFold(spec, "true") {
		return fmt.Sprintf("ec2tui_%s.log", time.Now().Format("20060102_150405"))
	}
	return spec
}

// openLogDest resolves the log destination. Falls back to stderr when no
// file is requested or the file cannot be created.
func openLogDest(spec string) io.Writer {
	path := logPath(spec)
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file open failed, using stderr: %v\n", err)
		return os.Stderr
	}
	return f
}

// CustomHandler formats log messages and writes to the configured writer.
type CustomHandler struct {
	Writer io.Writer
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := e.Message
	level := "?"
	if strings.HasPrefix(message, "TRACE: ") {
		level = "T"
		message = message[7:]
	} else {
		switch e.Level {
		case log.DebugLevel:
			level = "D"
		case log.InfoLevel:
			level = "I"
		case log.WarnLevel:
			level = "W"
		case log.ErrorLevel:
			level = "E"
		case log.FatalLevel:
			level = "F"
		}
	}
	w := h.Writer
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "%s %s %s\n", timestamp, level, message)
	return nil
}

// Tracef logs at Trace level (below Debug).
func Tracef(format string, args ...interface{}) {
	if traceEnabled {
		log.Debug("TRACE: " + fmt.Sprintf(format, args...))
	}
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Infof logs at Info level.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// Debug logs at Debug level.
func Debug(msg string) {
	log.Debug(msg)
}

// Warnf logs at Warn level.
func Warnf(format string, args ...interface{}) {
	log.Warn(fmt.Sprintf(format, args...))
}

// WithError returns an entry with error.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}
