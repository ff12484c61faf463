package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var DefaultOptions = Options{}

type Options struct {
	// Production switches to JSON output at info level.
	Production bool
	// Output defaults to stdout.
	Output io.Writer
}

var mu sync.RWMutex

func safe(opts ...Options) Options {
	if len(opts) == 0 {
		return DefaultOptions
	}
	return opts[0]
}

// Init configures the global logger used by the helpers below.
func Init(opts ...Options) {
	o := safe(opts...)
	out := o.Output
	if out == nil {
		out = os.Stdout
	}

	mu.Lock()
	defer mu.Unlock()
	if o.Production {
		log.Logger = zerolog.New(out).With().Timestamp().Logger().Level(zerolog.InfoLevel)
		return
	}
	console := zerolog.ConsoleWriter{Out: out}
	log.Logger = zerolog.New(console).With().Timestamp().Caller().Logger().Level(zerolog.DebugLevel)
}

// WithFields returns a context carrying a child logger with the given fields.
func WithFields(ctx context.Context, fields map[string]interface{}) context.Context {
	mu.RLock()
	l := log.Logger.With().Fields(fields).Logger()
	mu.RUnlock()
	return l.WithContext(ctx)
}

// FromContext extracts the logger stored in ctx, falling back to the global logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
			return l
		}
	}
	mu.RLock()
	defer mu.RUnlock()
	l := log.Logger
	return &l
}

func Debug(ctx context.Context) *zerolog.Event {
	return FromContext(ctx).Debug()
}

func Info(ctx context.Context) *zerolog.Event {
	return FromContext(ctx).Info()
}

func Warn(ctx context.Context) *zerolog.Event {
	return FromContext(ctx).Warn()
}

func Error(ctx context.Context) *zerolog.Event {
	return FromContext(ctx).Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
