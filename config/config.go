package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     string
	LogLevel string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBDSN      string
	DBSlowSQL  time.Duration
	DBMigrate  bool

	RedisAddr     string
	RedisUser     string
	RedisPassword string
	RedisDB       int

	JWTSecret string

	StripeSecretKey string
	PaymentCurrency string

	HotelTimezone string

	RabbitMQURL        string
	BookingEventsQueue string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	CacheTTL            time.Duration
	CORSOrigins         []string
	OccupancyReportCron string
}

// LoadEnv reads .env when present. A missing file is not an error.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Load builds the configuration from the environment.
func Load() Config {
	return Config{
		Env:      envStr("ENV", "dev"),
		Port:     envStr("PORT", "8083"),
		LogLevel: envStr("LOG_LEVEL", "info"),

		DBDriver:   envStr("DB_DRIVER", "postgres"),
		DBHost:     envStr("DB_HOST", "localhost"),
		DBPort:     envStr("DB_PORT", "5432"),
		DBUser:     envStr("DB_USER", "postgres"),
		DBPassword: envStr("DB_PASSWORD", ""),
		DBName:     envStr("DB_NAME", "hotel_booking"),
		DBSSLMode:  envStr("DB_SSLMODE", "disable"),
		DBDSN:      envStr("DB_DSN", ""),
		DBSlowSQL:  envDur("DB_SLOW_THRESHOLD", 200*time.Millisecond),
		DBMigrate:  envBool("DB_AUTO_MIGRATE", true),

		RedisAddr:     envStr("REDIS_ADDR", ""),
		RedisUser:     envStr("REDIS_USER", ""),
		RedisPassword: envStr("REDIS_PASSWORD", ""),
		RedisDB:       envInt("REDIS_DB", 0),

		JWTSecret: envStr("JWT_SECRET", ""),

		StripeSecretKey: envStr("STRIPE_SECRET_KEY", ""),
		PaymentCurrency: envStr("PAYMENT_CURRENCY", "usd"),

		HotelTimezone: envStr("HOTEL_TIMEZONE", "UTC"),

		RabbitMQURL:        envStr("RABBITMQ_URL", ""),
		BookingEventsQueue: envStr("BOOKING_EVENTS_QUEUE", "booking.events"),

		CloudinaryCloudName: envStr("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    envStr("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: envStr("CLOUDINARY_API_SECRET", ""),

		CacheTTL:            envDur("CACHE_TTL", 10*time.Minute),
		CORSOrigins:         envList("CORS_ORIGINS"),
		OccupancyReportCron: envStr("OCCUPANCY_REPORT_CRON", "0 0 * * *"),
	}
}

// IsProduction reports whether ENV is prod.
func (c Config) IsProduction() bool {
	return c.Env == "prod"
}

// Location resolves HotelTimezone, falling back to UTC.
func (c Config) Location() (*time.Location, error) {
	if c.HotelTimezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.HotelTimezone)
}

func envStr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func envDur(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func envList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
