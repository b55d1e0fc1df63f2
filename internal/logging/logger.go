package logging

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Config struct {
	Service     string
	Level       string
	LogstashTCP string
}

// Logger is the process-wide zerolog logger plus the sinks it owns.
type Logger struct {
	zerolog.Logger
	logstash *LogstashWriter
}

// New builds a JSON logger writing to stdout and, when configured, mirrored to
// a Logstash TCP input. An unknown level falls back to info.
func New(cfg Config) (*Logger, error) {
	return newWithOutput(cfg, os.Stdout)
}

func newWithOutput(cfg Config, out io.Writer) (*Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var logstash *LogstashWriter
	writer := out
	if addr := strings.TrimSpace(cfg.LogstashTCP); addr != "" {
		logstash, err = NewLogstashWriter(addr)
		if err != nil {
			return nil, err
		}
		writer = zerolog.MultiLevelWriter(out, logstash)
	}

	service := cfg.Service
	if service == "" {
		service = "explore-india-api"
	}

	zl := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", service).
		Logger()

	return &Logger{Logger: zl, logstash: logstash}, nil
}

func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// WithContext stores the logger on ctx for zerolog.Ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger stored on ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

func (l *Logger) Close() error {
	if l.logstash == nil {
		return nil
	}
	return l.logstash.Close()
}
