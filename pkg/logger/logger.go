// Package logger holds the process-wide zerolog logger.
//
// Call Init once from main; components that are not handed a logger through
// their constructor may fetch it with Get or Component.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures Init.
type Options struct {
	// Level is one of trace, debug, info, warn or error. Anything else means info.
	Level string
	// Pretty renders console output for humans. Files always receive JSON.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
	// File, when set, receives a copy of every entry and is rotated by size.
	File string
	// Service is attached to every entry as "service" when non-empty.
	Service string
}

// Rotation limits of the file sink.
const (
	fileMaxSizeMB  = 10
	fileMaxBackups = 5
	fileMaxAgeDays = 30
)

var (
	mu       sync.Mutex
	once     sync.Once
	root     zerolog.Logger
	hasRoot  bool
	rotation *lumberjack.Logger
)

// Init builds the root logger on its first call and returns it on every call.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		lvl := parseLevel(opts.Level)
		zerolog.SetGlobalLevel(lvl)

		ctx := zerolog.New(sink(opts)).Level(lvl).With().Timestamp().Caller()
		if opts.Service != "" {
			ctx = ctx.Str("service", opts.Service)
		}

		mu.Lock()
		root, hasRoot = ctx.Logger(), true
		mu.Unlock()
	})
	return Get()
}

// sink combines the console writer with the optional rotating file.
func sink(opts Options) io.Writer {
	console := opts.Output
	if console == nil {
		console = os.Stdout
	}
	if opts.Pretty {
		console = zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339}
	}
	if opts.File == "" {
		return console
	}

	rotation = &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    fileMaxSizeMB,
		MaxBackups: fileMaxBackups,
		MaxAge:     fileMaxAgeDays,
		Compress:   true,
	}
	return zerolog.MultiLevelWriter(console, rotation)
}

// Get returns the root logger. It panics before Init.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !hasRoot {
		panic("logger: Get() called before Init()")
	}
	return root
}

// Component returns the root logger tagged with component=name.
func Component(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}

// Close flushes and closes the rotating file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if rotation == nil {
		return nil
	}
	return rotation.Close()
}

// Reset forgets the root logger so a test can Init again.
func Reset() {
	_ = Close()
	mu.Lock()
	defer mu.Unlock()
	once = sync.Once{}
	root, hasRoot, rotation = zerolog.Logger{}, false, nil
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
