package ecs

// Logger is the sink for the handful of operationally interesting events
// the core emits (family recomputation, deferred-mutation draining). Its method shapes match zap's SugaredLogger so a caller can
// wire *zap.SugaredLogger in directly without an adapter. The core never
// writes to stdout/stderr itself.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Warnf(string, ...any)  {}
