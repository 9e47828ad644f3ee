package util

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogSelection | LogMovement | LogInput | LogSystem | LogConfig

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}).With().Timestamp().Logger()

type LogLevel int

const (
	LogLevelError LogLevel = iota + 1
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

func (l LogLevel) zerolog() zerolog.Level {
	switch l {
	case LogLevelError:
		return zerolog.ErrorLevel
	case LogLevelWarning:
		return zerolog.WarnLevel
	case LogLevelDebug:
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

func ParseLogLevel(name string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error":
		return LogLevelError, nil
	case "warn", "warning":
		return LogLevelWarning, nil
	case "", "info":
		return LogLevelInfo, nil
	case "debug":
		return LogLevelDebug, nil
	}
	return LogLevelInfo, errors.Errorf("unknown log level %q", name)
}

type LogCategory int

const (
	LogSelection LogCategory = 1 << iota
	LogMovement
	LogInput
	LogSystem
	LogConfig
)

func (c LogCategory) String() string {
	switch c {
	case LogSelection:
		return "selection"
	case LogMovement:
		return "movement"
	case LogInput:
		return "input"
	case LogSystem:
		return "system"
	case LogConfig:
		return "config"
	}
	return "unknown"
}

func SetLogLevel(lvl LogLevel) {
	GLOBAL_LOG_LEVEL = lvl
}

func SetLogCategories(categories LogCategory) {
	GLOBAL_LOG_CATEGORIES = categories
}

// SetLogOutput replaces the console sink with one writing JSON lines to w.
func SetLogOutput(w io.Writer) {
	logger = zerolog.New(w).With().Timestamp().Logger()
}

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	logger.WithLevel(lvl.zerolog()).Str("category", cat.String()).Msg(txt)
}

func LogSelectionInfo(txt string) {
	log(LogSelection, LogLevelInfo, txt)
}

func LogSelectionDebug(txt string) {
	log(LogSelection, LogLevelDebug, txt)
}

func LogSelectionWarning(txt string) {
	log(LogSelection, LogLevelWarning, txt)
}

func LogMovementInfo(txt string) {
	log(LogMovement, LogLevelInfo, txt)
}

func LogMovementDebug(txt string) {
	log(LogMovement, LogLevelDebug, txt)
}

func LogInputDebug(txt string) {
	log(LogInput, LogLevelDebug, txt)
}

func LogSystemInfo(txt string) {
	log(LogSystem, LogLevelInfo, txt)
}

func LogSystemDebug(txt string) {
	log(LogSystem, LogLevelDebug, txt)
}

func LogSystemError(txt string) {
	log(LogSystem, LogLevelError, txt)
}

func LogConfigInfo(txt string) {
	log(LogConfig, LogLevelInfo, txt)
}

func LogConfigError(txt string) {
	log(LogConfig, LogLevelError, txt)
}
