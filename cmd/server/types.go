package main

import (
	"codeberg.org/simpleapi/server/internal/config"
	"codeberg.org/simpleapi/server/notes"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config      *config.Config
	noteRepo    *notes.Repository
	noteService *notes.Service
	router      *gin.Engine
}
