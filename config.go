package logger

import (
	"path/filepath"

	"github.com/pkg/errors"
)

// Config is the declarative form of a logger assembly: a level token plus
// the set of destinations to tee together. It mirrors the shape used for
// JSON/YAML application configuration.
type Config struct {
	Level          string `json:"Level" validate:"required,oneof=debug info warn error"`
	ConsoleLogging bool   `json:"ConsoleLogging"`
	LevelPrefix    bool   `json:"LevelPrefix"`
	WithTimestamp  bool   `json:"WithTimestamp"`

	FileLogging       bool   `json:"FileLogging"`
	RelLogFileDir     string `json:"RelLogFileDir" validate:"required_if=FileLogging true"`
	LogFileName       string `json:"LogFileName"`
	LogFileMaxSizeMB  int    `json:"LogFileMaxSizeMB" validate:"gte=0"`
	LogFileMaxBackups int    `json:"LogFileMaxBackups" validate:"gte=0"`
	LogFileMaxAgeDays int    `json:"LogFileMaxAgeDays" validate:"gte=0"`
}

// FromConfig validates cfg and assembles a LogContext over the configured
// sinks. With both console and file logging disabled it falls back to the
// console. Multiple destinations are combined with a tee.
func FromConfig(cfg *Config) (*LogContext, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(err, "setting logging level")
	}

	var writerOpts []WriterOption
	if cfg.LevelPrefix {
		writerOpts = append(writerOpts, WithLevelPrefix())
	}
	if cfg.WithTimestamp {
		writerOpts = append(writerOpts, WithTimestamp())
	}

	var sinks []Sink
	if cfg.ConsoleLogging || !cfg.FileLogging {
		sinks = append(sinks, NewConsoleSink(writerOpts...))
	}
	if cfg.FileLogging {
		name := cfg.LogFileName
		if name == "" {
			name = "app"
		}
		fs, err := NewRotatingFileSink(FileConfig{
			Filename:   filepath.Join(cfg.RelLogFileDir, name+".log"),
			MaxSizeMB:  cfg.LogFileMaxSizeMB,
			MaxBackups: cfg.LogFileMaxBackups,
			MaxAgeDays: cfg.LogFileMaxAgeDays,
		}, writerOpts...)
		if err != nil {
			return nil, errors.Wrap(err, "creating file sink")
		}
		sinks = append(sinks, fs)
	}

	sink := sinks[0]
	if len(sinks) > 1 {
		sink = NewTeeSink(sinks...)
	}

	return New(WithMinLevel(level), WithSink(sink)), nil
}
