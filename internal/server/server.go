package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

// Defaults for zero Config fields.
const (
	DefaultAddr         = ":8080"
	DefaultMaxBodyBytes = 1 << 20
	DefaultTimeout      = 60 * time.Second
	shutdownTimeout     = 10 * time.Second
)

// Config holds server settings and the render defaults applied to every request.
type Config struct {
	Addr         string
	MaxBodyBytes int64
	Timeout      time.Duration // per-request render budget, including waiting for a converter

	Locale    string // used when neither ?lang= nor the CV sets a language
	Logo      string // logo for CVs without logoPath
	Draft     bool   // watermark renders unless ?draft= says otherwise
	ImageDir  string // photos and logos are read only from here; empty disables disk images
	Page      *cv2pdf.PageSettings
	Watermark *cv2pdf.Watermark
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
}

// Server is the HTTP render host.
type Server struct {
	cfg    Config
	src    Source
	logger *slog.Logger
	engine *gin.Engine
}

// New builds a Server. A nil logger uses slog.Default().
func New(cfg Config, src Source, logger *slog.Logger) *Server {
	cfg.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{cfg: cfg, src: src, logger: logger}
	s.engine = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(requestID(), requestLogger(s.logger), metricsMiddleware(), recovery())

	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	{
		v1.POST("/render", s.handleRender)
	}

	return router
}

// Handler returns the routed http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then waits up to shutdownTimeout
// for in-flight requests to finish.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("listening", slog.String("addr", s.cfg.Addr))
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving on %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
