// Package server exposes the state store to the desktop shell over a local
// HTTP API.
package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"taskbound/internal/engine"
	"taskbound/internal/telemetry"
	"taskbound/static"
)

type Server struct {
	store *engine.Store
	clock engine.Clock
}

// New builds the echo instance with all routes and middleware wired.
func New(store *engine.Store, clock engine.Clock) *echo.Echo {
	s := &Server{store: store, clock: clock}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(accessLog())

	e.GET("/healthz", s.healthz)
	e.GET("/api/state", s.getState)
	e.GET("/api/stats", s.getStats)
	e.POST("/api/tasks", s.addTask)
	e.PATCH("/api/tasks/:id", s.updateTask)
	e.DELETE("/api/tasks/:id", s.deleteTask)
	e.POST("/api/tasks/:id/add-time", s.addTime)
	e.POST("/api/tasks/:id/pause", s.pauseTask)
	e.POST("/api/tasks/:id/resume", s.resumeTask)
	e.POST("/api/tasks/complete", s.completeActive)
	e.POST("/api/tasks/reorder", s.reorderTasks)
	e.POST("/api/tasks/import", s.importTasks)
	e.PUT("/api/preferences", s.setPreferences)

	e.GET("/", echo.WrapHandler(http.FileServer(http.FS(static.EmbeddedFS()))))

	return e
}

func accessLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			log.WithFields(log.Fields{
				"method":      c.Request().Method,
				"path":        c.Request().URL.Path,
				"status":      c.Response().Status,
				"duration_ms": time.Since(start).Milliseconds(),
				"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
			}).Debug("http_request")
			return err
		}
	}
}

func (s *Server) healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"ok":      true,
		"service": "taskbound",
		"time":    s.clock.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) getState(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.State())
}

func (s *Server) getStats(c echo.Context) error {
	return c.JSON(http.StatusOK, telemetry.BuildReport(s.store.State()))
}

type taskRequest struct {
	Title               string `json:"title"`
	TimeAssignedSeconds *int   `json:"timeAssignedSeconds,omitempty"`
}

func (s *Server) addTask(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid body")
	}
	// Input validation belongs to this boundary; the reducer trusts it.
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.String(http.StatusBadRequest, "title is required")
	}
	if req.TimeAssignedSeconds != nil && *req.TimeAssignedSeconds < 0 {
		return c.String(http.StatusBadRequest, "time must not be negative")
	}
	st := s.store.Dispatch(engine.AddTask(req.Title, req.TimeAssignedSeconds, s.clock.Now()))
	return c.JSON(http.StatusCreated, st)
}

func (s *Server) updateTask(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid body")
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.String(http.StatusBadRequest, "title is required")
	}
	if req.TimeAssignedSeconds != nil && *req.TimeAssignedSeconds < 0 {
		return c.String(http.StatusBadRequest, "time must not be negative")
	}
	st := s.store.Dispatch(engine.UpdateTask(c.Param("id"), req.Title, req.TimeAssignedSeconds, s.clock.Now()))
	return c.JSON(http.StatusOK, st)
}

func (s *Server) deleteTask(c echo.Context) error {
	st := s.store.Dispatch(engine.DeleteTask(c.Param("id"), s.clock.Now()))
	return c.JSON(http.StatusOK, st)
}

type addTimeRequest struct {
	Seconds int `json:"seconds"`
}

func (s *Server) addTime(c echo.Context) error {
	var req addTimeRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid body")
	}
	if req.Seconds <= 0 {
		return c.String(http.StatusBadRequest, "seconds must be positive")
	}
	st := s.store.Dispatch(engine.AddTime(c.Param("id"), req.Seconds, s.clock.Now()))
	return c.JSON(http.StatusOK, st)
}

func (s *Server) pauseTask(c echo.Context) error {
	st := s.store.Dispatch(engine.PauseTask(c.Param("id"), s.clock.Now()))
	return c.JSON(http.StatusOK, st)
}

func (s *Server) resumeTask(c echo.Context) error {
	st := s.store.Dispatch(engine.ResumeTask(c.Param("id"), s.clock.Now()))
	return c.JSON(http.StatusOK, st)
}

func (s *Server) completeActive(c echo.Context) error {
	st := s.store.Dispatch(engine.ManualComplete(s.clock.Now()))
	return c.JSON(http.StatusOK, st)
}

type reorderRequest struct {
	IDs []string `json:"ids"`
}

func (s *Server) reorderTasks(c echo.Context) error {
	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid body")
	}
	st := s.store.Dispatch(engine.ReorderTasks(req.IDs, s.clock.Now()))
	return c.JSON(http.StatusOK, st)
}

type importRequest struct {
	Text string `json:"text"`
}

func (s *Server) importTasks(c echo.Context) error {
	var req importRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid body")
	}
	lines := ParseTaskList(req.Text)
	if len(lines) == 0 {
		return c.String(http.StatusBadRequest, "no tasks found")
	}
	now := s.clock.Now()
	var st = s.store.State()
	for _, line := range lines {
		st = s.store.Dispatch(engine.AddTask(line.Title, line.Seconds, now))
	}
	return c.JSON(http.StatusCreated, st)
}

type preferencesRequest struct {
	AlwaysOnTop bool `json:"alwaysOnTop"`
}

func (s *Server) setPreferences(c echo.Context) error {
	var req preferencesRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid body")
	}
	st := s.store.Dispatch(engine.SetAlwaysOnTop(req.AlwaysOnTop, s.clock.Now()))
	return c.JSON(http.StatusOK, st)
}
