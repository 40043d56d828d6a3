package boc

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the logger that records bag-of-cells sizes after each
// Serialize and Parse. Nothing is logged until SetLogger installs one.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs l for bag-of-cells tracing. Call it before the
// first Serialize or Parse.
func SetLogger(l *zap.Logger) {
	logger = l
}
