package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger проверка доступности зависимости для /healthz
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer webhook Telegram и /healthz
type HTTPServer struct {
	server *http.Server
	logger *zap.Logger
}

// NewHTTPServer webhook может быть nil в режиме long polling
func NewHTTPServer(addr, webhookPath string, webhook http.Handler, db Pinger, env string, logger *zap.Logger) *HTTPServer {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	return &HTTPServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(webhookPath, webhook, db, logger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// NewRouter маршруты HTTP сервера
func NewRouter(webhookPath string, webhook http.Handler, db Pinger, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	r.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			logger.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if webhook != nil {
		r.POST(webhookPath, gin.WrapH(webhook))
	}
	return r
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// Start слушает в фоне; ошибка listen приходит в канал
func (s *HTTPServer) Start() <-chan error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", s.server.Addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	return errCh
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
