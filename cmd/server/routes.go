package main

import (
	"net/http"

	"codeberg.org/simpleapi/server/api/rest/health"
	"codeberg.org/simpleapi/server/api/rest/notes"
	_ "codeberg.org/simpleapi/server/docs"
	"codeberg.org/simpleapi/server/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(cors.New(corsConfig()))
	router.Use(middleware.BodySizeLimit(server.config.MaxContentLength))

	router.HandleMethodNotAllowed = true

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error":   "Method not allowed",
			"details": "The method is not allowed for the requested URL.",
		})
	})

	router.GET("/", health.IndexHandler)
	router.GET("/health", health.Handler)
	router.GET("/apispec.json", apispecHandler)

	v1 := router.Group("/api/v1")

	{
		notes.RegisterRoutes(v1, server.noteService)
	}
}

// CORS is intentionally permissive, mirroring the public API surface
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization"}

	return cfg
}

// serves the generated OpenAPI document
func apispecHandler(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
