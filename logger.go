package tvmcells

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the logger used by the in-memory provider. It traces
// internal messages and unknown get-method calls at debug level and
// discards everything until SetLogger is called.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger replaces the provider logger. Set it before creating a
// MemoryProvider; Internal and Get read it without locking.
func SetLogger(l *zap.Logger) {
	logger = l
}
