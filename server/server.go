// Package server exposes the search core over HTTP for browser-based
// visualization clients. It is a thin boundary adapter: maps arrive as the
// canonical JSON document, engines are selected through the registry, and
// responses carry the step-event/result contract unchanged.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/A-D-Alamdari/single-agent-pathfinding/grid"
	"github.com/A-D-Alamdari/single-agent-pathfinding/gridio"
	"github.com/A-D-Alamdari/single-agent-pathfinding/registry"
	"github.com/A-D-Alamdari/single-agent-pathfinding/search"
)

// defaultTraceCap bounds the step trace of one solve request; beyond it the
// run is cancelled and the response marked truncated.
const defaultTraceCap = 10000

// Server wires the registry into an HTTP API.
type Server struct {
	reg *registry.Registry
	log *slog.Logger
}

// New returns a Server backed by the given registry.
// A nil logger falls back to slog.Default().
func New(reg *registry.Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{reg: reg, log: logger}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), corsMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/algorithms", s.listAlgorithms)
	api.POST("/solve", s.solve)

	return r
}

// listAlgorithms reports the registered engine keys in registration order.
func (s *Server) listAlgorithms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"algorithms": s.reg.Names()})
}

// solveRequest is the body of POST /api/solve. Map uses the canonical JSON
// map document. Connectivity accepts 4 or 8 (0 defaults to 4). When Steps is
// set the response carries the full event trace, capped by MaxSteps.
type solveRequest struct {
	Map          json.RawMessage `json:"map"`
	Algorithm    string          `json:"algorithm"`
	Connectivity int             `json:"connectivity"`
	Steps        bool            `json:"steps"`
	MaxSteps     int             `json:"max_steps"`
}

type solveResponse struct {
	RunID     string             `json:"run_id"`
	Algorithm string             `json:"algorithm"`
	Result    *search.Result     `json:"result"`
	Trace     []search.StepEvent `json:"trace,omitempty"`
	Truncated bool               `json:"truncated,omitempty"`
}

func (s *Server) solve(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})

		return
	}
	if len(req.Map) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing map"})

		return
	}

	world, err := gridio.DecodeJSON(bytes.NewReader(req.Map))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	conn, ok := connectivityOf(req.Connectivity)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "connectivity must be 4 or 8"})

		return
	}

	engine, err := s.reg.New(req.Algorithm, search.WithConnectivity(conn))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	start, goal, err := search.WorldEndpoints(world)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	resp := solveResponse{RunID: uuid.NewString(), Algorithm: engine.Name()}

	if !req.Steps {
		result, runErr := engine.Run(world, start, goal)
		if runErr != nil {
			s.replyRunError(c, runErr)

			return
		}
		resp.Result = result
		c.JSON(http.StatusOK, resp)

		return
	}

	stepper, err := engine.Steps(world, start, goal)
	if err != nil {
		s.replyRunError(c, err)

		return
	}
	limit := req.MaxSteps
	if limit <= 0 || limit > defaultTraceCap {
		limit = defaultTraceCap
	}
	for {
		ev, more := stepper.Next()
		if !more {
			break
		}
		resp.Trace = append(resp.Trace, ev)
		if len(resp.Trace) >= limit && !ev.Status.Terminal() {
			stepper.Cancel()
			resp.Truncated = true

			break
		}
	}
	resp.Result = stepper.Result()
	c.JSON(http.StatusOK, resp)
}

// replyRunError maps engine invocation failures to status codes.
func (s *Server) replyRunError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, search.ErrInvalidEndpoint),
		errors.Is(err, search.ErrEndpointUnset),
		errors.Is(err, search.ErrOptionViolation),
		errors.Is(err, grid.ErrMapValidation):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func connectivityOf(v int) (grid.Connectivity, bool) {
	switch v {
	case 0, 4:
		return grid.Conn4, true
	case 8:
		return grid.Conn8, true
	default:
		return grid.Conn4, false
	}
}

// requestLogger logs one line per request with latency and status.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startedAt := time.Now()
		c.Next()
		s.log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", float64(time.Since(startedAt))/float64(time.Millisecond),
		)
	}
}

// corsMiddleware allows browser visualization clients from any origin.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)

			return
		}

		c.Next()
	}
}
