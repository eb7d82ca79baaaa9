package logging

import (
	"fmt"
	"io"
)

const (
	BackendSlog   = "slog"
	BackendZap    = "zap"
	BackendZapDev = "zap-dev"
)

// New builds the Logger selected by backend. Slog output goes to w as JSON;
// zap writes to stderr through its own sinks.
func New(backend, level string, w io.Writer) (Logger, error) {
	switch backend {
	case "", BackendSlog:
		return NewSlogJSON(w, level), nil
	case BackendZap, BackendZapDev:
		z, err := newZap(level, backend == BackendZapDev)
		if err != nil {
			return nil, fmt.Errorf("zap init: %w", err)
		}
		return NewZapLogger(z), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}
