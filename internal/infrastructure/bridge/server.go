// Package bridge exposes the space state to out-of-process observers: a JSON
// query and mutation API, a WebSocket update stream, host event intake, and
// Prometheus metrics.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bnema/spacesync/internal/application/state"
	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/bnema/spacesync/internal/logging"
)

// SpaceService is the subset of the state manager the bridge drives.
type SpaceService interface {
	GetAllSpaces() []entity.Space
	GetClosedSpaces() []entity.Space
	GetSpaceByID(id entity.SpaceID) (entity.Space, bool)
	RenameSpace(ctx context.Context, in state.RenameInput) (entity.Space, error)
	CloseSpace(ctx context.Context, windowID entity.WindowID) (entity.Space, error)
	DeleteSpace(ctx context.Context, id entity.SpaceID) error
	RestoreSpace(ctx context.Context, closedID entity.SpaceID, expectedType entity.WindowType) (entity.RestoreSnapshot, error)
	RefreshSpaceTabs(ctx context.Context, windowID entity.WindowID) (entity.Space, error)
	SynchronizeWindowsAndSpaces(ctx context.Context) (state.SyncReport, error)
}

// RestoreLister reports outstanding restore intents.
type RestoreLister interface {
	Pending() []entity.RestoreSnapshot
}

// HostIntake receives window events forwarded from the real browser.
type HostIntake interface {
	Attach(ctx context.Context, window entity.Window) (entity.Window, error)
	CloseWindow(ctx context.Context, id entity.WindowID) error
	Replace(ctx context.Context, windows []entity.Window) ([]entity.Window, error)
}

// Subscriber hands out buffered update streams.
type Subscriber interface {
	SubscribeChan(buffer int) (<-chan entity.QueuedStateUpdate, func())
}

// Config tunes the HTTP listener and the WebSocket stream.
type Config struct {
	Addr           string
	StreamBuffer   int
	WriteWait      time.Duration
	PongWait       time.Duration
	ShutdownWait   time.Duration
	EnableMetrics  bool
	AllowedOrigins []string
}

// DefaultConfig listens on localhost only.
func DefaultConfig() Config {
	return Config{
		Addr:          "127.0.0.1:7411",
		StreamBuffer:  64,
		WriteWait:     10 * time.Second,
		PongWait:      60 * time.Second,
		ShutdownWait:  5 * time.Second,
		EnableMetrics: true,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.StreamBuffer <= 0 {
		c.StreamBuffer = d.StreamBuffer
	}
	if c.WriteWait <= 0 {
		c.WriteWait = d.WriteWait
	}
	if c.PongWait <= 0 {
		c.PongWait = d.PongWait
	}
	if c.ShutdownWait <= 0 {
		c.ShutdownWait = d.ShutdownWait
	}
	return c
}

// Server wires the routes to the state manager.
type Server struct {
	cfg      Config
	spaces   SpaceService
	restores RestoreLister
	host     HostIntake
	updates  Subscriber
	engine   *gin.Engine
	baseCtx  context.Context

	stopOnce sync.Once
	stop     chan struct{}
}

// NewServer builds the router. ctx carries the logger used by handlers.
func NewServer(ctx context.Context, cfg Config, spaces SpaceService, restores RestoreLister, host HostIntake, updates Subscriber) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:      cfg.withDefaults(),
		spaces:   spaces,
		restores: restores,
		host:     host,
		updates:  updates,
		engine:   gin.New(),
		baseCtx:  logging.WithComponent(ctx, "bridge"),
		stop:     make(chan struct{}),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.engine
	r.Use(gin.Recovery(), s.contextMiddleware(), metricsMiddleware())

	r.GET("/healthz", s.health)
	if s.cfg.EnableMetrics {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	r.GET("/ws", s.stream)

	api := r.Group("/api")
	api.GET("/spaces", s.listSpaces)
	api.GET("/spaces/:id", s.getSpace)
	api.PUT("/spaces/:id/name", s.renameSpace)
	api.POST("/spaces/:id/close", s.closeSpace)
	api.POST("/spaces/:id/restore", s.restoreSpace)
	api.DELETE("/spaces/:id", s.deleteSpace)
	api.GET("/restores", s.listRestores)
	api.POST("/sync", s.sync)

	host := api.Group("/host")
	host.PUT("/windows", s.windowsReplaced)
	host.POST("/windows", s.windowCreated)
	host.PUT("/windows/:id/tabs", s.windowTabs)
	host.DELETE("/windows/:id", s.windowRemoved)
}

// Handler returns the router for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	log := logging.FromContext(s.baseCtx)

	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}

	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return s.baseCtx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Msg("bridge listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	// Hijacked stream connections are not tracked by Shutdown.
	s.closeStreams()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownWait)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown bridge: %w", err)
	}
	log.Info().Msg("bridge stopped")
	return nil
}

func (s *Server) closeStreams() {
	s.stopOnce.Do(func() { close(s.stop) })
}
