package logger

import (
	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig configures a rotating-file sink.
type FileConfig struct {
	// Filename is the log file path. Required.
	Filename string
	// MaxSizeMB is the size a file may reach before rotation, in megabytes.
	MaxSizeMB int
	// MaxBackups is the number of rotated files to keep.
	MaxBackups int
	// MaxAgeDays is the number of days to retain rotated files.
	MaxAgeDays int
}

// FileSink writes all levels to a single rotating log file.
type FileSink struct {
	*WriterSink
	lj *lumberjack.Logger
}

// NewRotatingFileSink builds a sink over a size/age-rotated file. Rotation
// is handled by lumberjack; writes are synchronous, so Flush only matters
// when buffering is enabled.
func NewRotatingFileSink(cfg FileConfig, opts ...WriterOption) (*FileSink, error) {
	if cfg.Filename == "" {
		return nil, errors.New("rotating file sink requires a filename")
	}
	lj := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	return &FileSink{
		WriterSink: NewWriterSink(lj, lj, opts...),
		lj:         lj,
	}, nil
}

// Rotate forces an immediate file rotation.
func (s *FileSink) Rotate() error {
	if err := s.Flush(); err != nil {
		return err
	}
	return s.lj.Rotate()
}

// Close flushes pending output and closes the current log file.
func (s *FileSink) Close() error {
	if err := s.Flush(); err != nil {
		return err
	}
	return s.lj.Close()
}
