package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Email providers understood by the mailer package
const (
	ProviderResend = "resend"
	ProviderSES    = "ses"
	ProviderSMTP   = "smtp"
)

// Config holds application configuration
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Email     EmailConfig
	Inquiry   InquiryConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name    string `validate:"required"`
	Version string
	Debug   bool
	Port    string `validate:"required,numeric"`
	Host    string
	BaseURL string `validate:"required,url"`
}

// DatabaseConfig holds the optional city catalog database configuration.
// An empty URL keeps the catalog on the compiled-in table.
type DatabaseConfig struct {
	URL string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// EmailConfig holds transactional email configuration
type EmailConfig struct {
	Provider     string `validate:"oneof=resend ses smtp"`
	ResendAPIKey string
	SESRegion    string
	SMTPHost     string
	SMTPPort     int `validate:"min=1,max=65535"`
	SMTPUsername string
	SMTPPassword string
	FromEmail    string `validate:"required,email"`
	FromName     string
}

// InquiryConfig holds inquiry notification settings
type InquiryConfig struct {
	From            string
	BusinessInbox   string `validate:"required,email"`
	FallbackContact string `validate:"required,email"`
	SubjectPrefix   string `validate:"required"`
	SuccessDisplay  time.Duration
}

// RateLimitConfig bounds inquiry submissions per client IP
type RateLimitConfig struct {
	InquiriesPerMinute int `validate:"min=1"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=json console"`
}

var globalConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "Carly Gage Photography"),
			Version: getEnv("APP_VERSION", "1.0.0"),
			Debug:   getEnvAsBool("DEBUG", false),
			Port:    getEnv("PORT", "8000"),
			Host:    getEnv("HOST", "0.0.0.0"),
			BaseURL: strings.TrimRight(getEnv("SITE_BASE_URL", "https://carlygage.com"), "/"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("ALLOWED_HOSTS", []string{"*"}),
			AllowedMethods: []string{"GET", "POST", "OPTIONS", "HEAD"},
			AllowedHeaders: []string{"Content-Type", "Accept", "X-Request-ID"},
			MaxAge:         86400,
		},
		Email: EmailConfig{
			Provider:     strings.ToLower(getEnv("EMAIL_PROVIDER", ProviderResend)),
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			SESRegion:    getEnv("AWS_REGION", ""),
			SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
			SMTPUsername: getEnv("SMTP_USERNAME", ""),
			SMTPPassword: getEnv("SMTP_PASSWORD", ""),
			FromEmail:    getEnv("EMAIL_FROM", "hello@carlygage.com"),
			FromName:     getEnv("EMAIL_FROM_NAME", "Carly Gage Photography"),
		},
		Inquiry: InquiryConfig{
			BusinessInbox:   getEnv("INQUIRY_INBOX", "carlygagephotography@gmail.com"),
			FallbackContact: getEnv("INQUIRY_FALLBACK_CONTACT", "carlygagephotography@gmail.com"),
			SubjectPrefix:   getEnv("INQUIRY_SUBJECT_PREFIX", "New Family Session Inquiry"),
			SuccessDisplay:  getEnvAsDuration("INQUIRY_SUCCESS_DISPLAY", 3*time.Second),
		},
		RateLimit: RateLimitConfig{
			InquiriesPerMinute: getEnvAsInt("INQUIRY_RATE_LIMIT", 5),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
	}

	config.Inquiry.From = config.Email.FromAddress()

	// Validate configuration
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	globalConfig = config
	return config, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}
	return nil
}

// Get returns the global configuration
func Get() *Config {
	if globalConfig == nil {
		// Load default config if not loaded
		config, _ := Load()
		return config
	}
	return globalConfig
}

// EmailCredentialPresent reports whether the selected provider has the
// credential it needs. A missing credential is not a load error: the inquiry
// service degrades to a fallback message instead.
func (c *EmailConfig) EmailCredentialPresent() bool {
	switch c.Provider {
	case ProviderResend:
		return c.ResendAPIKey != ""
	case ProviderSES:
		return c.SESRegion != ""
	case ProviderSMTP:
		return c.SMTPHost != "" && c.SMTPUsername != "" && c.SMTPPassword != ""
	default:
		return false
	}
}

// FromAddress returns the sender identity in "Name <address>" form
func (c *EmailConfig) FromAddress() string {
	if c.FromName == "" {
		return c.FromEmail
	}
	return fmt.Sprintf("%s <%s>", c.FromName, c.FromEmail)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// IsPostgres checks if the database URL is for PostgreSQL
func (c *DatabaseConfig) IsPostgres() bool {
	return strings.HasPrefix(c.URL, "postgres://") || strings.HasPrefix(c.URL, "postgresql://")
}

// Enabled reports whether a catalog database is configured
func (c *DatabaseConfig) Enabled() bool {
	return c.URL != ""
}

// GetSQLitePath extracts SQLite database path from URL
func (c *DatabaseConfig) GetSQLitePath() string {
	return strings.TrimPrefix(c.URL, "sqlite:///")
}
