package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// Get returns the process-wide logger, building it on first use.
// Development mode gets human-readable console output; everything else
// gets production JSON on stdout.
func Get(env string) *zap.Logger {
	once.Do(func() {
		var cfg zap.Config
		if env == "development" {
			cfg = zap.NewDevelopmentConfig()
		} else {
			cfg = zap.NewProductionConfig()
		}
		cfg.OutputPaths = []string{"stdout"}
		logger, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		instance = logger
	})
	return instance
}
