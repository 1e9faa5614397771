package main

import (
	"codeberg.org/simpleapi/server/internal/config"
	"codeberg.org/simpleapi/server/internal/logger"
	"codeberg.org/simpleapi/server/internal/metadata"
	"codeberg.org/simpleapi/server/notes"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	logger.Setup(cfg.LogLevel)

	if cfg.AutoReload {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	noteRepo := notes.NewRepository()
	noteService := notes.NewService(noteRepo)

	router := gin.New()

	server := &Server{
		config:      cfg,
		noteRepo:    noteRepo,
		noteService: noteService,
		router:      router,
	}

	RegisterRoutes(router, server)

	if cfg.LogLevel == "DEBUG" {
		logger.Debug("running service",
			"service", metadata.ServiceName(),
			"version", metadata.Version(),
			"host", cfg.Host,
			"port", cfg.Port,
		)
	} else {
		logger.Info("service configured",
			"service", metadata.ServiceName(),
			"version", metadata.Version(),
		)
	}

	return server, nil
}
