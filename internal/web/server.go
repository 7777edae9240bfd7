// Package web serves the single-user form UI: upload a workbook or paste
// numbers, review the extracted table, and download the processed file.
package web

import (
	"context"
	"net/http"

	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/internal/config"
	"github.com/labstack/echo/v4"
	echoMid "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	e     *echo.Echo
	cfg   config.Config
	store *sessionStore
}

func NewServer(cfg config.Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMid.Recover(), echoMid.Logger())

	s := &Server{e: e, cfg: cfg, store: newSessionStore()}

	e.GET("/", s.handleIndex)
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	api := e.Group("/api")
	api.POST("/upload", s.handleUpload)
	api.POST("/manual", s.handleManual)
	api.POST("/table/:session/extract", s.handleReextract)
	api.POST("/table/:session/completed", s.handleCompleted)
	api.POST("/table/:session/rows", s.handleAddRow)
	api.DELETE("/table/:session/rows/:phone", s.handleRemoveRow)
	api.GET("/table/:session/export", s.handleExport)

	return s
}

func (s *Server) Start(addr string) error { return s.e.Start(addr) }

func (s *Server) Shutdown(ctx context.Context) error { return s.e.Shutdown(ctx) }

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler { return s.e }
