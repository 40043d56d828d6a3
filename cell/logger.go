package cell

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the logger slices report prefix mismatches to.
// Defaults to zap.NewNop.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger sets the logger for slice diagnostics. It is read without
// locking, so set it once at startup.
func SetLogger(l *zap.Logger) {
	logger = l
}
