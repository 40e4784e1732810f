package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/macmobile/carwash/internal/domain"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string          `yaml:"environment" validate:"required,oneof=development production test"`
	HTTP        HTTPConfig      `yaml:"http"`
	Logger      LoggerConfig    `yaml:"logger"`
	Business    BusinessConfig  `yaml:"business"`
	Mail        MailConfig      `yaml:"mail"`
	Storage     StorageConfig   `yaml:"storage"`
	Booking     BookingConfig   `yaml:"booking"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
	Redis       RedisConfig     `yaml:"redis"`
}

type HTTPConfig struct {
	Address         string        `yaml:"address"          validate:"required"`
	Debug           bool          `yaml:"debug"`
	TemplatesGlob   string        `yaml:"templates_glob"`
	StaticDir       string        `yaml:"static_dir"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	TrustedProxies  []string      `yaml:"trusted_proxies"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required,oneof=debug info warn error"`
}

type BusinessConfig struct {
	Name       string `yaml:"name"       validate:"required"`
	Phone      string `yaml:"phone"      validate:"required"`
	Email      string `yaml:"email"      validate:"required,email"`
	Location   string `yaml:"location"`
	Experience string `yaml:"experience"`
	Customers  string `yaml:"customers"`
	Rating     string `yaml:"rating"`
	Coverage   string `yaml:"coverage"`
	Hours      string `yaml:"hours"`
}

func (b BusinessConfig) Info() domain.BusinessInfo {
	return domain.BusinessInfo{
		Name:       b.Name,
		Phone:      b.Phone,
		Email:      b.Email,
		Location:   b.Location,
		Experience: b.Experience,
		Customers:  b.Customers,
		Rating:     b.Rating,
		Coverage:   b.Coverage,
		Hours:      b.Hours,
	}
}

type MailConfig struct {
	Server   string `yaml:"server"   validate:"required"`
	Port     int    `yaml:"port"     validate:"min=1,max=65535"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Sender   string `yaml:"sender"`
	UseSSL   bool   `yaml:"use_ssl"`
}

// Configured reports whether credentials are present.
func (m MailConfig) Configured() bool {
	return m.Username != "" && m.Password != ""
}

type StorageConfig struct {
	LogFile    string `yaml:"log_file"    validate:"required"`
	BackupFile string `yaml:"backup_file" validate:"required"`
}

type BookingConfig struct {
	IDPrefix string `yaml:"id_prefix" validate:"required"`
}

type RateLimitConfig struct {
	BookingPerMinute int `yaml:"booking_per_minute" validate:"min=1"`
	DefaultPerHour   int `yaml:"default_per_hour"   validate:"min=1"`
	DefaultPerDay    int `yaml:"default_per_day"    validate:"min=1"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Default returns the configuration used when no file overrides a value.
func Default() Config {
	return Config{
		Environment: "development",
		HTTP: HTTPConfig{
			Address:         ":5000",
			TemplatesGlob:   "web/templates/*",
			StaticDir:       "web/static",
			ShutdownTimeout: 5 * time.Second,
		},
		Logger: LoggerConfig{Level: "info"},
		Business: BusinessConfig{
			Name:       "MAC Mobile Car Wash",
			Phone:      "+971 5011 34356",
			Email:      "info@macmobilecarwash.com",
			Location:   "Dubai, UAE",
			Experience: "10+ Years",
			Customers:  "15,000+",
			Rating:     "4.9/5",
			Coverage:   "All UAE Emirates",
			Hours:      "7 days a week, 8 AM - 8 PM",
		},
		Mail: MailConfig{
			Server: "smtp.gmail.com",
			Port:   587,
		},
		Storage: StorageConfig{
			LogFile:    "bookings.txt",
			BackupFile: "bookings.json",
		},
		Booking:   BookingConfig{IDPrefix: "MAC"},
		RateLimit: RateLimitConfig{BookingPerMinute: 10, DefaultPerHour: 50, DefaultPerDay: 200},
	}
}

// LoadConfig reads the YAML file at path on top of Default, then applies
// environment overrides (a .env file in the working directory is honoured).
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if cfg.Mail.Sender == "" {
		cfg.Mail.Sender = cfg.Mail.Username
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str("ENVIRONMENT", &cfg.Environment)
	str("HTTP_ADDRESS", &cfg.HTTP.Address)
	str("LOG_LEVEL", &cfg.Logger.Level)
	str("BUSINESS_EMAIL", &cfg.Business.Email)
	str("MAIL_SERVER", &cfg.Mail.Server)
	str("MAIL_USERNAME", &cfg.Mail.Username)
	str("MAIL_PASSWORD", &cfg.Mail.Password)
	str("MAIL_DEFAULT_SENDER", &cfg.Mail.Sender)
	str("REDIS_ADDR", &cfg.Redis.Addr)
	str("REDIS_PASSWORD", &cfg.Redis.Password)

	if v, ok := lookup("MAIL_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MAIL_PORT: %w", err)
		}
		cfg.Mail.Port = port
	}
	return nil
}
