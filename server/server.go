package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/samplemaps"
)

// Option configures a Server.
type Option func(*Options)

// Options holds server limits.
type Options struct {
	// MaxExpansions bounds the work of one search (0 = unlimited).
	MaxExpansions int
	// Timeout bounds the wall time of one search (0 = none).
	Timeout time.Duration
}

// DefaultOptions returns a 100k expansion budget and a 10s timeout.
func DefaultOptions() Options {
	return Options{MaxExpansions: 100_000, Timeout: 10 * time.Second}
}

// WithMaxExpansions sets the per-search expansion budget.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// WithTimeout sets the per-search wall time limit.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// Server holds the handlers' shared dependencies.
type Server struct {
	log      *zap.Logger
	opts     Options
	upgrader websocket.Upgrader
}

// New returns a Server logging to logger (zap.NewNop() if nil).
func New(logger *zap.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Server{
		log:  logger,
		opts: o,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	v1.POST("/path", s.handlePath)
	v1.GET("/path/stream", s.handleStream)
	v1.GET("/maps", s.handleMaps)
	v1.GET("/maps/:name", s.handleMap)

	return r
}

// requestLogger logs one line per request after it has been served.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(began)),
		)
	}
}

func (s *Server) handlePath(c *gin.Context) {
	var req PathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("server: decode request: %w", err))
		return
	}

	gg, start, goal, err := resolve(req)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := s.searchContext(c.Request.Context())
	defer cancel()

	res, err := astar.FindPath(gg, start, goal, s.searchOptions(ctx, req)...)
	if err != nil {
		s.fail(c, statusOf(err), err)
		return
	}
	s.log.Debug("search done",
		zap.Stringer("start", start),
		zap.Stringer("goal", goal),
		zap.Bool("found", res.Found),
		zap.Int("expanded", len(res.Expanded)),
	)
	c.JSON(http.StatusOK, newPathResponse(res))
}

func (s *Server) handleMaps(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"maps": samplemaps.Names()})
}

func (s *Server) handleMap(c *gin.Context) {
	m, err := samplemaps.Get(c.Param("name"))
	if err != nil {
		s.fail(c, http.StatusNotFound, err)
		return
	}
	c.JSON(http.StatusOK, MapResponse{Name: m.Name, Description: m.Description, Rows: m.Rows})
}

// handleStream upgrades to a websocket and replays the search live. The map
// is resolved before the upgrade so that a bad request still gets a plain
// HTTP error.
func (s *Server) handleStream(c *gin.Context) {
	req := PathRequest{Map: c.Query("map")}
	if v := c.Query("cornerCutting"); v != "" {
		on := v == "true" || v == "1"
		req.CornerCutting = &on
	}
	gg, start, goal, err := resolve(req)
	if err != nil {
		s.fail(c, statusOf(err), err)
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	ctx, cancel := s.searchContext(c.Request.Context())
	defer cancel()

	send := func(ev Event) error {
		return conn.WriteJSON(ev)
	}
	opts := append(s.searchOptions(ctx, req),
		astar.WithOnExpand(func(cell gridgraph.Cell) error {
			return send(Event{Type: EventExpand, Cell: &cell})
		}),
		astar.WithOnBacktrack(func(cell gridgraph.Cell) error {
			return send(Event{Type: EventBacktrack, Cell: &cell})
		}),
	)

	res, err := astar.FindPath(gg, start, goal, opts...)
	if err != nil {
		s.log.Warn("stream search aborted", zap.String("map", req.Map), zap.Error(err))
		_ = send(Event{Type: EventError, Error: err.Error()})
	} else {
		out := newPathResponse(res)
		if err = send(Event{Type: EventResult, Result: &out}); err != nil {
			s.log.Warn("stream write failed", zap.Error(err))
			return
		}
	}

	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (s *Server) searchContext(parent context.Context) (context.Context, context.CancelFunc) {
	if s.opts.Timeout > 0 {
		return context.WithTimeout(parent, s.opts.Timeout)
	}
	return context.WithCancel(parent)
}

func (s *Server) searchOptions(ctx context.Context, req PathRequest) []astar.Option {
	opts := []astar.Option{
		astar.WithContext(ctx),
		astar.WithMaxExpansions(s.opts.MaxExpansions),
	}
	if req.CornerCutting != nil {
		opts = append(opts, astar.WithCornerCutting(*req.CornerCutting))
	}
	return opts
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	s.log.Info("request rejected", zap.Int("status", status), zap.Error(err))
	c.AbortWithStatusJSON(status, errorResponse{Error: err.Error()})
}

// resolve turns a request into a grid plus endpoints.
func resolve(req PathRequest) (*gridgraph.Grid, gridgraph.Cell, gridgraph.Cell, error) {
	var zero gridgraph.Cell

	rows := req.Rows
	if len(rows) == 0 {
		if req.Map == "" {
			return nil, zero, zero, ErrNoGrid
		}
		m, err := samplemaps.Get(req.Map)
		if err != nil {
			return nil, zero, zero, err
		}
		rows = m.Rows
	}

	gopts := gridgraph.DefaultGridOptions()
	if req.Conn4 {
		gopts.Conn = gridgraph.Conn4
	}
	gg, mk, err := gridgraph.ParseGrid(rows, gopts)
	if err != nil {
		return nil, zero, zero, err
	}

	start, goal := mk.Start, mk.Goal
	switch {
	case req.Start != nil:
		start = *req.Start
	case !mk.HasStart:
		return nil, zero, zero, ErrNoStart
	}
	switch {
	case req.Goal != nil:
		goal = *req.Goal
	case !mk.HasGoal:
		return nil, zero, zero, ErrNoGoal
	}

	return gg, start, goal, nil
}

// statusOf maps an error to an HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, samplemaps.ErrUnknownMap):
		return http.StatusNotFound
	case errors.Is(err, ErrNoGrid),
		errors.Is(err, ErrNoStart),
		errors.Is(err, ErrNoGoal),
		errors.Is(err, gridgraph.ErrEmptyGrid),
		errors.Is(err, gridgraph.ErrNonRectangular),
		errors.Is(err, gridgraph.ErrBadMapRune),
		errors.Is(err, gridgraph.ErrDuplicateMarker),
		errors.Is(err, astar.ErrStartOutOfBounds),
		errors.Is(err, astar.ErrGoalOutOfBounds),
		errors.Is(err, astar.ErrStartBlocked),
		errors.Is(err, astar.ErrGoalBlocked):
		return http.StatusBadRequest
	case errors.Is(err, astar.ErrExpansionLimit),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
