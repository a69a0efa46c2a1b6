// Package server exposes the projection engine over HTTP.
package server

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"finplan/internal/engine"
	"finplan/internal/scenario"
)

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Server routes projection requests to the engine.
type Server struct {
	logger *log.Logger
}

// New creates a Server.
func New(logger *log.Logger) *Server {
	return &Server{logger: logger}
}

// Handler is the fasthttp entry point.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthz":
		s.handleHealth(ctx)
	case "/v1/projections":
		s.handleProjection(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("application/json")
	ctx.SetBodyString(`{"status":"ok"}`)
}

func (s *Server) handleProjection(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "use POST")
		return
	}

	cfg, err := scenario.Parse(ctx.PostBody())
	if err != nil {
		var cfgErr *scenario.ConfigError
		if errors.As(err, &cfgErr) {
			writeError(ctx, fasthttp.StatusUnprocessableEntity, cfgErr.Error())
			return
		}
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := engine.Project(cfg)
	if err != nil {
		var cfgErr *scenario.ConfigError
		if errors.As(err, &cfgErr) {
			writeError(ctx, fasthttp.StatusUnprocessableEntity, cfgErr.Error())
			return
		}
		s.logger.Error("projection failed", "scenario", cfg.Name, "err", err)
		writeError(ctx, fasthttp.StatusInternalServerError, "projection failed")
		return
	}

	s.logger.Info("projection served",
		"scenario", cfg.Name,
		"run_id", result.RunID,
		"horizon", cfg.HorizonYears,
		"duration_ms", result.DurationMs,
	)

	body, err := json.Marshal(result)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "encoding response")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

// ListenAndServe runs the server until it fails.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("listening", "addr", addr)
	if err := fasthttp.ListenAndServe(addr, s.Handler); err != nil {
		return fmt.Errorf("serving on %s: %w", addr, err)
	}
	return nil
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	body, _ := json.Marshal(errorResponse{Status: status, Message: message})
	ctx.SetBody(body)
}
