package tact

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the logger shared by contract wrappers. It sees every
// send and get call plus op codes that no receiver claimed, and is a
// no-op until configured.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger routes contract call tracing to l. The contract packages
// log through tact, so one call here covers all of them. Call it before
// any contract is used.
func SetLogger(l *zap.Logger) {
	logger = l
}
