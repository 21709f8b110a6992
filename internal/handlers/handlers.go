package handlers

import (
	"go.uber.org/zap"

	"github.com/shashiranjanraj/kashvi-golang/internal/config"
	"github.com/shashiranjanraj/kashvi-golang/internal/store"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Store  *store.Store
	Config *config.Config
	Log    *zap.Logger
}
