package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// A Level is a logging priority. Higher levels are more important.
type Level int8

// Logging levels (matching zap core internals).
const (
	DebugLevel Level = -1
	InfoLevel  Level = 0
	WarnLevel  Level = 1
	ErrorLevel Level = 2
	PanicLevel Level = 4
	FatalLevel Level = 5
)

// ParseLevel parses a level name such as "debug" or "Info".
func ParseLevel(l string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warning", "warn":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "panic":
		return PanicLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("log level %q is not supported", l)
	}
}

func (l Level) String() string {
	return zapcore.Level(l).String()
}

// ZapLevel converts the level into a zapcore.Level.
func (l Level) ZapLevel() zapcore.Level {
	return zapcore.Level(l)
}

// Logger wraps a zap logger and keeps the atomic level around so that
// named child loggers can be tuned independently.
type Logger struct {
	*zap.Logger
	level   zap.AtomicLevel
	encoder zapcore.Encoder
	sink    zapcore.WriteSyncer
	name    string
}

// Config describes how the root logger is built.
type Config struct {
	// Environment is either "dev" (console, debug) or anything else (json, info).
	Environment string
	Level       Level
	// File, when set, receives a copy of every line, rotated by size.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// New builds a root logger from cfg.
func New(cfg Config) *Logger {
	var (
		encoder zapcore.Encoder
		level   = zap.NewAtomicLevelAt(cfg.Level.ZapLevel())
	)

	switch cfg.Environment {
	case "dev":
		encoder = zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			CallerKey:      "C",
			EncodeCaller:   zapcore.ShortCallerEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			LevelKey:       "L",
			LineEnding:     "\n",
			MessageKey:     "M",
			NameKey:        "N",
			TimeKey:        "T",
		})
	default:
		encoder = zapcore.NewJSONEncoder(zapcore.EncoderConfig{
			CallerKey:      "caller",
			EncodeCaller:   zapcore.ShortCallerEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeName:     zapcore.FullNameEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			LevelKey:       "level",
			LineEnding:     "\n",
			MessageKey:     "message",
			NameKey:        "logger",
			StacktraceKey:  "stacktrace",
			TimeKey:        "@timestamp",
		})
	}

	sink := zapcore.AddSync(os.Stdout)
	if cfg.File != "" {
		sink = zapcore.NewMultiWriteSyncer(sink, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}))
	}

	return &Logger{
		Logger:  zap.New(zapcore.NewCore(encoder, sink, level), zap.AddCaller()),
		level:   level,
		encoder: encoder,
		sink:    sink,
	}
}

// NewDevLogger returns a console logger at debug level.
func NewDevLogger() *Logger {
	return New(Config{Environment: "dev", Level: DebugLevel})
}

// NewProdLogger returns a json logger at info level.
func NewProdLogger() *Logger {
	return New(Config{Environment: "prod", Level: InfoLevel})
}

// NewTestLogger returns a logger which discards everything.
func NewTestLogger() *Logger {
	return &Logger{
		Logger: zap.NewNop(),
		level:  zap.NewAtomicLevelAt(zapcore.Level(InfoLevel)),
	}
}

// Named returns a child logger named parent.name. The child starts at the
// parent's level and can be tuned with SetLevel without affecting the parent.
// Fields added to the parent with With are not carried over.
func (log *Logger) Named(name string) *Logger {
	newName := name
	if log.name != "" {
		newName = fmt.Sprintf("%s.%s", log.name, name)
	}
	level := zap.NewAtomicLevelAt(log.level.Level())
	if log.encoder == nil {
		return &Logger{Logger: log.Logger.Named(name), level: level, name: newName}
	}
	core := zapcore.NewCore(log.encoder.Clone(), log.sink, level)
	return &Logger{
		Logger:  zap.New(core, zap.AddCaller()).Named(newName),
		level:   level,
		encoder: log.encoder,
		sink:    log.sink,
		name:    newName,
	}
}

// With returns a child logger carrying fields on every entry.
func (log *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{
		Logger:  log.Logger.With(fields...),
		level:   log.level,
		encoder: log.encoder,
		sink:    log.sink,
		name:    log.name,
	}
}

func (log *Logger) GetLevel() Level {
	return Level(log.level.Level())
}

func (log *Logger) GetName() string {
	return log.name
}

func (log *Logger) SetLevel(level Level) {
	if log.level.Level() == level.ZapLevel() {
		return
	}
	log.level.SetLevel(level.ZapLevel())
}

// AtExit flushes the logs before exiting the process. This is meant to be
// used with defer when initializing your logger.
func (log *Logger) AtExit() {
	if log.Logger != nil {
		_ = log.Logger.Sync()
	}
}

// Field is a structured logging field.
type Field = zap.Field

func String(key, val string) zap.Field {
	return zap.String(key, val)
}

func Strings(key string, val []string) zap.Field {
	return zap.Strings(key, val)
}

func Int(key string, val int) zap.Field {
	return zap.Int(key, val)
}

func Int64(key string, val int64) zap.Field {
	return zap.Int64(key, val)
}

func Float64(key string, val float64) zap.Field {
	return zap.Float64(key, val)
}

func Bool(key string, val bool) zap.Field {
	return zap.Bool(key, val)
}

func Duration(key string, val time.Duration) zap.Field {
	return zap.Duration(key, val)
}

func Error(err error) zap.Field {
	return zap.Error(err)
}

// Any is a last resort, prefer the typed helpers.
func Any(key string, val interface{}) zap.Field {
	return zap.Any(key, val)
}
