package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"levelkeeper/internal/domain"
	"levelkeeper/internal/services/progression"
)

const shutdownTimeout = 5 * time.Second

// Reader is the part of the progression service the API needs.
type Reader interface {
	domain.ProgressionReader
	Dirty() bool
}

// Server is the read-only progression HTTP API.
type Server struct {
	echo   *echo.Echo
	reader Reader
	logger *zap.Logger
}

// New builds a Server over reader, exposing gatherer on /metrics.
func New(reader Reader, gatherer prometheus.Gatherer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{echo: e, reader: reader, logger: logger}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				s.logger.Warn("http request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			s.logger.Debug("http request", fields...)
			return nil
		},
	}))

	e.GET("/health", s.health)
	e.GET("/members", s.listMembers)
	e.GET("/members/:id", s.getMember)
	e.GET("/levels/:level/threshold", s.threshold)
	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.echo }

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http api listening", zap.String("addr", addr))
		errCh <- s.echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type memberResponse struct {
	ID         string `json:"id"`
	Level      int    `json:"level"`
	Experience int    `json:"experience"`
	Currency   int    `json:"currency"`
	// NextThreshold is the experience needed to leave the current level.
	NextThreshold int `json:"next_threshold"`
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"dirty":  s.reader.Dirty(),
	})
}

func (s *Server) listMembers(c echo.Context) error {
	return c.JSON(http.StatusOK, s.reader.Snapshot())
}

func (s *Server) getMember(c echo.Context) error {
	id := c.Param("id")
	m, ok := s.reader.Lookup(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, domain.ErrNotFound.Error())
	}
	return c.JSON(http.StatusOK, memberResponse{
		ID:            id,
		Level:         m.Level,
		Experience:    m.Experience,
		Currency:      m.Currency,
		NextThreshold: progression.Threshold(m.Level),
	})
}

func (s *Server) threshold(c echo.Context) error {
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil || level < progression.MinLevel || level > progression.MaxLevel {
		return echo.NewHTTPError(http.StatusBadRequest, "level must be an integer between 1 and 50")
	}
	return c.JSON(http.StatusOK, map[string]int{
		"level":     level,
		"threshold": progression.Threshold(level),
	})
}
