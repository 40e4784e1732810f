package main

import (
	"context"
	"html/template"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/macmobile/carwash/api"
	"github.com/macmobile/carwash/config"
	"github.com/macmobile/carwash/internal/bootstrap"
	"github.com/macmobile/carwash/internal/catalog"
	"github.com/macmobile/carwash/internal/email"
	"github.com/macmobile/carwash/internal/logger"
	"github.com/macmobile/carwash/internal/ratelimit"
	"github.com/macmobile/carwash/internal/repository"
	"github.com/macmobile/carwash/internal/service/booking"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(cfg.Environment, cfg.Logger.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	business := cfg.Business.Info()
	services := catalog.Default()

	bookingRepo := repository.NewBookingRepository(cfg.Storage.LogFile, cfg.Storage.BackupFile, business.Name)
	if err := bookingRepo.Init(ctx); err != nil {
		// requests still succeed without the file, they report file_saved=false
		zlog.Warn("bookings log unavailable", zap.String("path", cfg.Storage.LogFile), zap.Error(err))
	}

	dispatcher := email.NewDispatcher(email.NewSender(cfg.Mail), business, zlog)
	bookingService := booking.NewBookingService(
		services,
		bookingRepo,
		dispatcher,
		zlog,
		booking.WithIDPrefix(cfg.Booking.IDPrefix),
	)

	limiters, closeLimiters := newLimiters(ctx, cfg, zlog)
	defer closeLimiters()

	var page *template.Template
	if cfg.HTTP.TemplatesGlob != "" {
		page, err = template.ParseGlob(cfg.HTTP.TemplatesGlob)
		if err != nil {
			zlog.Warn("templates not loaded, serving fallback page", zap.String("glob", cfg.HTTP.TemplatesGlob), zap.Error(err))
			page = nil
		}
	}

	handlers := bootstrap.Handlers{
		Bookings:    api.NewBookingHandler(bookingService, zlog, cfg.HTTP.Debug),
		Catalog:     api.NewCatalogHandler(services, business, page, zlog),
		Diagnostics: api.NewDiagnosticsHandler(bookingRepo, dispatcher, zlog),
	}

	mailUser := cfg.Mail.Username
	if !cfg.Mail.Configured() {
		mailUser = "Not configured"
	}
	zlog.Info("starting "+business.Name+" booking server",
		zap.String("environment", cfg.Environment),
		zap.String("mail_username", mailUser),
		zap.String("business_email", business.Email),
		zap.Int("services_loaded", services.Len()),
		zap.String("bookings_log", cfg.Storage.LogFile),
		zap.String("bookings_backup", cfg.Storage.BackupFile),
		zap.Strings("routes", []string{
			"GET /", "GET /api/services", "POST /api/contact", "POST /api/bookings",
			"GET /test-email", "GET /admin/bookings", "GET /health",
		}),
	)

	if err := bootstrap.Run(ctx, cfg, zlog, handlers, limiters); err != nil {
		zlog.Fatal("server error", zap.Error(err))
	}
}

// newLimiters prefers redis so limits hold across instances and falls back
// to in-process buckets when redis is absent or unreachable.
func newLimiters(ctx context.Context, cfg *config.Config, log *zap.Logger) (bootstrap.Limiters, func()) {
	memory := bootstrap.Limiters{
		Booking: ratelimit.NewMemoryLimiter(cfg.RateLimit.BookingPerMinute, time.Minute),
		Hourly:  ratelimit.NewMemoryLimiter(cfg.RateLimit.DefaultPerHour, time.Hour),
		Daily:   ratelimit.NewMemoryLimiter(cfg.RateLimit.DefaultPerDay, 24*time.Hour),
	}
	if cfg.Redis.Addr == "" {
		return memory, func() {}
	}

	client := ratelimit.NewRedisClient(cfg.Redis)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("redis unreachable, using in-memory rate limits", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		_ = client.Close()
		return memory, func() {}
	}

	return bootstrap.Limiters{
			Booking: ratelimit.NewRedisLimiter(client, "booking", cfg.RateLimit.BookingPerMinute, time.Minute),
			Hourly:  ratelimit.NewRedisLimiter(client, "hourly", cfg.RateLimit.DefaultPerHour, time.Hour),
			Daily:   ratelimit.NewRedisLimiter(client, "daily", cfg.RateLimit.DefaultPerDay, 24*time.Hour),
		}, func() {
			_ = client.Close()
		}
}
