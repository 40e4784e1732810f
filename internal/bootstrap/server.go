package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/macmobile/carwash/api"
	"github.com/macmobile/carwash/config"
	"github.com/macmobile/carwash/internal/middleware"
	"github.com/macmobile/carwash/internal/ratelimit"
	"go.uber.org/zap"
)

type Handlers struct {
	Bookings    *api.BookingHandler
	Catalog     *api.CatalogHandler
	Diagnostics *api.DiagnosticsHandler
}

// Limiters holds the per-client budgets. Booking is the only budget on the
// submission endpoints; Hourly and Daily cover the pages and the rest of the API.
type Limiters struct {
	Booking ratelimit.Limiter
	Hourly  ratelimit.Limiter
	Daily   ratelimit.Limiter
}

// Run serves HTTP until ctx is cancelled or the server fails.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger, h Handlers, l Limiters) error {
	router, err := NewRouter(cfg, log, h, l)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		log.Info("HTTP server stopped")
		return nil
	}
}

func NewRouter(cfg *config.Config, log *zap.Logger, h Handlers, l Limiters) (*gin.Engine, error) {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Recovery(log),
	)
	if len(cfg.HTTP.AllowedOrigins) > 0 {
		router.Use(cors.New(corsConfig(cfg.HTTP.AllowedOrigins)))
	}

	if cfg.HTTP.StaticDir != "" {
		router.Static("/static", cfg.HTTP.StaticDir)
	}
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	pages := router.Group("",
		middleware.RateLimit(l.Hourly, "hourly", log),
		middleware.RateLimit(l.Daily, "daily", log),
	)
	h.Catalog.Register(pages)
	h.Diagnostics.Register(pages)
	h.Bookings.Register(router.Group("/api", middleware.RateLimit(l.Booking, "booking", log)))

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
