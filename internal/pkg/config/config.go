package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Razorpay RazorpayConfig
	Offer    OfferConfig
	Refund   RefundConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

type ServerConfig struct {
	Port    string `envconfig:"PORT" required:"true"`
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:3000"`
	// Drain window for in-flight requests on SIGTERM
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	// Apply embedded migrations on startup
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"true"`
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
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

// Session tokens are issued by the external auth provider; this service only validates them.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`

	// Checked only when set
	Issuer   string        `envconfig:"JWT_ISSUER"`
	Audience string        `envconfig:"JWT_AUDIENCE"`
	Leeway   time.Duration `envconfig:"JWT_LEEWAY" default:"30s"`
}

type RazorpayConfig struct {
	KeyID     string `envconfig:"RAZORPAY_KEY_ID" required:"true"`
	KeySecret string `envconfig:"RAZORPAY_KEY_SECRET" required:"true"`
	// Left optional so a missing secret surfaces as a 500 on the webhook instead of a boot failure.
	WebhookSecret string        `envconfig:"RAZORPAY_WEBHOOK_SECRET"`
	BaseURL       string        `envconfig:"RAZORPAY_BASE_URL" default:"https://api.razorpay.com"`
	Timeout       time.Duration `envconfig:"RAZORPAY_TIMEOUT" default:"10s"`
	RateLimit     float64       `envconfig:"RAZORPAY_RATE_LIMIT" default:"5"`
	RateBurst     int           `envconfig:"RAZORPAY_RATE_BURST" default:"10"`
	Currency      string        `envconfig:"RAZORPAY_CURRENCY" default:"INR"`
	DashboardURL  string        `envconfig:"RAZORPAY_DASHBOARD_URL" default:"https://dashboard.razorpay.com"`
}

type OfferConfig struct {
	Window        time.Duration `envconfig:"OFFER_WINDOW" default:"10m"`
	SweepInterval time.Duration `envconfig:"OFFER_SWEEP_INTERVAL" default:"30s"`
	// Late captures inside the grace period still settle before the sweep reclaims the offer.
	ExpiryGrace time.Duration `envconfig:"OFFER_EXPIRY_GRACE" default:"2m"`
	SweepBatch  int           `envconfig:"OFFER_SWEEP_BATCH" default:"500"`
}

type RefundConfig struct {
	Concurrency int           `envconfig:"REFUND_CONCURRENCY" default:"8"`
	Timeout     time.Duration `envconfig:"REFUND_TIMEOUT" default:"15s"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type KafkaConfig struct {
	Enabled        bool          `envconfig:"KAFKA_ENABLED" default:"false"`
	Brokers        []string      `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	RetryMax       int           `envconfig:"KAFKA_RETRY_MAX" default:"3"`
	RequiredAcks   int           `envconfig:"KAFKA_REQUIRED_ACKS" default:"-1"`
	OutboxInterval time.Duration `envconfig:"OUTBOX_INTERVAL" default:"5s"`
	OutboxBatch    int           `envconfig:"OUTBOX_BATCH" default:"100"`
	OutboxMaxTries int           `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// BuildMigrateURL returns the DSN in the scheme the golang-migrate pgx/v5 driver registers.
func (c *DBConfig) BuildMigrateURL() string {
	return fmt.Sprintf(
		"pgx5://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
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
			Port:            "8889", // Test port
			BaseURL:         "http://localhost:3000",
			ShutdownTimeout: 2 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:   "test-jwt-secret",
			Duration: "1h",
			Leeway:   5 * time.Second,
		},
		Razorpay: RazorpayConfig{
			KeyID:         "rzp_test_key",
			KeySecret:     "rzp_test_secret",
			WebhookSecret: "whsec_test",
			BaseURL:       "http://localhost:18080",
			Timeout:       2 * time.Second,
			RateLimit:     100,
			RateBurst:     100,
			Currency:      "INR",
			DashboardURL:  "https://dashboard.razorpay.com",
		},
		Offer: OfferConfig{
			Window:        10 * time.Minute,
			SweepInterval: time.Second,
			ExpiryGrace:   0,
			SweepBatch:    100,
		},
		Refund: RefundConfig{
			Concurrency: 4,
			Timeout:     2 * time.Second,
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Kafka: KafkaConfig{
			Enabled:        false,
			OutboxInterval: time.Second,
			OutboxBatch:    50,
			OutboxMaxTries: 3,
		},
	}
}
