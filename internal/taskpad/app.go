// Package taskpad wires the application services together.
package taskpad

import (
	"github.com/calvales/taskpad/internal/core/config"
	"github.com/calvales/taskpad/internal/core/notify"
	"github.com/calvales/taskpad/internal/store"
)

// App bundles the constructed services for command handlers. It is built
// once at startup and passed by reference; there is no ambient global store.
type App struct {
	Store  *store.Store
	Bus    *notify.Bus
	Chime  notify.Chime
	Config *config.Config
}

// NewApp creates the application container.
func NewApp(s *store.Store, bus *notify.Bus, chime notify.Chime, cfg *config.Config) *App {
	return &App{
		Store:  s,
		Bus:    bus,
		Chime:  chime,
		Config: cfg,
	}
}
