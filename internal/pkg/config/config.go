package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timeouts, limits, currency)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Booking BookingConfig
	Payment PaymentConfig
	Mail    MailConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Africa/Lagos"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"Africa/Lagos"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// BookingConfig holds the wizard limits and pricing constants.
type BookingConfig struct {
	MaxBedrooms     int32         `envconfig:"BOOKING_MAX_BEDROOMS" default:"8"`
	MaxBathrooms    int32         `envconfig:"BOOKING_MAX_BATHROOMS" default:"6"`
	ServiceFeeMinor int64         `envconfig:"BOOKING_SERVICE_FEE_MINOR" default:"0"`
	SessionTTL      time.Duration `envconfig:"BOOKING_SESSION_TTL" default:"72h"`
	TimeZone        string        `envconfig:"BOOKING_TIMEZONE" default:"Africa/Lagos"`
}

type PaymentConfig struct {
	PaystackSecretKey string        `envconfig:"PAYSTACK_SECRET_KEY" required:"true"`
	PaystackBaseURL   string        `envconfig:"PAYSTACK_BASE_URL" default:"https://api.paystack.co"`
	Currency          string        `envconfig:"PAYMENT_CURRENCY" default:"NGN"`
	Timeout           time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"15s"`
	// When true, a failed verification moves the draft to PENDING instead of
	// leaving it at READY_FOR_PAYMENT.
	PendingOnFailure bool `envconfig:"PAYMENT_PENDING_ON_FAILURE" default:"false"`
}

type MailConfig struct {
	ResendAPIKey  string        `envconfig:"RESEND_API_KEY" required:"true"`
	ResendBaseURL string        `envconfig:"RESEND_BASE_URL" default:"https://api.resend.com"`
	FromAddress   string        `envconfig:"MAIL_FROM" default:"Shalean Bookings <bookings@shalean.com>"`
	AdminAddress  string        `envconfig:"MAIL_ADMIN" default:"admin@shalean.com"`
	Timeout       time.Duration `envconfig:"MAIL_TIMEOUT" default:"15s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-unit-tests",
			Duration: time.Hour,
		},
		Booking: BookingConfig{
			MaxBedrooms:     8,
			MaxBathrooms:    6,
			ServiceFeeMinor: 0,
			SessionTTL:      time.Hour,
		},
		Payment: PaymentConfig{
			PaystackSecretKey: "sk_test_xxx",
			PaystackBaseURL:   "https://api.paystack.co",
			Currency:          "NGN",
			Timeout:           5 * time.Second,
		},
		Mail: MailConfig{
			ResendAPIKey: "re_test_xxx",
			FromAddress:  "Shalean Bookings <bookings@shalean.test>",
			AdminAddress: "admin@shalean.test",
			Timeout:      5 * time.Second,
		},
	}
}
