// Package server exposes the HTTP API: the analyze endpoint, taxonomy
// autocomplete, health and metrics.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"toxiscan/internal/common/logger"
	"toxiscan/internal/models"
	"toxiscan/internal/taxonomy"
)

const autocompleteLimit = 10

// Analyzer is the single orchestration entry point the server depends on.
type Analyzer interface {
	Analyze(ctx context.Context, raw string) (*models.Report, error)
}

type Server struct {
	analyzer Analyzer
	index    *taxonomy.Index
	logger   logger.Logger
}

func New(analyzer Analyzer, index *taxonomy.Index, log logger.Logger) *Server {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Server{analyzer: analyzer, index: index, logger: log}
}

// SetupRouter wires the routes. Pass "production" to silence gin's debug
// output.
func (s *Server) SetupRouter(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())

	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/analyze/:query", s.handleAnalyze)
		api.GET("/autocomplete", s.handleAutocomplete)
	}

	return router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "ok",
		"taxonomy_entries": s.index.Len(),
	})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	query := c.Param("query")

	report, err := s.analyzer.Analyze(c.Request.Context(), query)
	if err != nil {
		s.logger.WithError(err).Error("analyze failed", map[string]interface{}{"query": query})
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// handleAutocomplete returns a bare JSON array of matching strings, not a
// wrapper object.
func (s *Server) handleAutocomplete(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusOK, []string{})
		return
	}
	c.JSON(http.StatusOK, s.index.Search(q, autocompleteLimit))
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)

		start := time.Now()
		c.Next()

		s.logger.Info("request handled", map[string]interface{}{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		})
	}
}
