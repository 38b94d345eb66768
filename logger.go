package schemacodec

import (
	"log/slog"
)

// Logger is the interface that schemacodec uses for structured logging.
//
// The interface is small enough to wrap log/slog, zap or zerolog. It uses
// variadic key-value pairs for structured attributes, following the same
// convention as log/slog:
//
//	logger.Debug("dereferenced", "ref", "#/$defs/foo", "cached", true)
//
// The core packages only ever log at debug level. Hosts that want to see
// reference resolution or traversal decisions pass a logger through the
// WithLogger option of the package they construct:
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
//	v, err := visitor.New(root, visitor.WithLogger(schemacodec.NewSlogAdapter(slog.New(handler))))
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)

	// With derives a Logger that attaches attrs to every record.
	With(attrs ...any) Logger
}

// NopLogger drops every record. Visitors, readers and stores fall back to it
// when constructed without WithLogger.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any) {}
func (NopLogger) Warn(string, ...any) {}
func (NopLogger) Error(string, ...any) {}
func (n NopLogger) With(...any) Logger { return n }

var _ Logger = NopLogger{}

// SlogAdapter forwards Logger calls to a *slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger, substituting slog.Default() for nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) {
	s.logger.Debug(msg, attrs...)
}

func (s *SlogAdapter) Info(msg string, attrs ...any) {
	s.logger.Info(msg, attrs...)
}

func (s *SlogAdapter) Warn(msg string, attrs ...any) {
	s.logger.Warn(msg, attrs...)
}

func (s *SlogAdapter) Error(msg string, attrs ...any) {
	s.logger.Error(msg, attrs...)
}

func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)

// OrNop returns l, or NopLogger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
