package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"romancalc/internal/domain"
	"romancalc/internal/logger"
)

//go:embed static
var staticFiles embed.FS

// Options configures the server.
type Options struct {
	Addr            string
	CookieSecret    string  // hex; empty draws a random key
	RateLimit       float64 // requests per second per client; 0 disables
	RateBurst       int
	ShutdownTimeout time.Duration
	// TrustedProxies lists proxy IPs or CIDRs whose X-Forwarded-For is
	// believed. Empty means the client is always the socket peer.
	TrustedProxies []string
	// Gatherer backs /metrics; nil means prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// Server is the HTTP front-end over a CalculatorService.
type Server struct {
	opts   Options
	engine *gin.Engine
	log    *logger.Logger
}

// NewServer builds the router. log may be nil.
func NewServer(opts Options, calc domain.CalculatorService, log *logger.Logger) (*Server, error) {
	if log == nil {
		log = logger.Discard()
	}
	log = log.WithComponent("web")
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	signer, err := newCookieSigner(opts.CookieSecret)
	if err != nil {
		return nil, err
	}
	page, err := fs.ReadFile(staticFiles, "static/index.html")
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	engine.Use(gin.Recovery(), requestLogger(log))
	if opts.RateLimit > 0 {
		engine.Use(newRateLimiter(opts.RateLimit, opts.RateBurst).middleware())
	}

	h := &handlers{calc: calc, log: log}
	setupRoutes(engine, h, signer, page, opts.Gatherer)

	return &Server{opts: opts, engine: engine, log: log}, nil
}

func setupRoutes(router *gin.Engine, h *handlers, signer *cookieSigner, page []byte, g prometheus.Gatherer) {
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(g, promhttp.HandlerOpts{})))
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})

	v1 := router.Group("/v1")
	{
		session := v1.Group("", sessionMiddleware(signer))
		session.GET("/state", h.state)
		session.POST("/press", h.press)
		session.DELETE("/session", h.deleteSession)

		convert := v1.Group("/convert")
		convert.POST("/to-roman", h.toRoman)
		convert.POST("/to-int", h.toInt)
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	s.log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
