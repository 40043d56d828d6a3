package tuple

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger is used to trace stack serialization depth. No-op by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger sets the stack tracing logger. Not safe to call while
// stacks are being built or parsed.
func SetLogger(l *zap.Logger) {
	logger = l
}
