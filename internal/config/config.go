package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string

	DBDriver   string
	MySQLDSN   string
	SQLitePath string
	ResetDB    bool

	RedisAddr string
	RedisDB   int
	RedisPass string

	SessionStore    string
	SessionLifetime time.Duration
	CookieSecure    bool

	JWTSecret string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailSender   string

	LogLevel         string
	VisitorReportTTL time.Duration
	SwaggerHost      string

	SeedAdminName     string
	SeedAdminPassword string
}

// Load builds Config from environment with sensible defaults. A .env file in the
// working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		DBDriver:          strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		MySQLDSN:          getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/hugely?charset=utf8mb4&parseTime=True&loc=Local"),
		SQLitePath:        getEnv("SQLITE_PATH", "hugely.db"),
		ResetDB:           getEnvBool("RESET_DB", false),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		SessionStore:      strings.ToLower(getEnv("SESSION_STORE", "memory")),
		SessionLifetime:   getEnvDuration("SESSION_LIFETIME", 24*time.Hour),
		CookieSecure:      getEnvBool("COOKIE_SECURE", false),
		JWTSecret:         getEnv("JWT_SECRET", "change-me"),
		SMTPHost:          getEnv("SMTP_HOST", "smtp.qq.com"),
		SMTPPort:          getEnvInt("SMTP_PORT", 465),
		SMTPUser:          os.Getenv("SMTP_USER"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		MailSender:        getEnv("MAIL_SENDER", "noreply@hugely.local"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		VisitorReportTTL:  getEnvDuration("VISITOR_REPORT_TTL", 30*time.Second),
		SwaggerHost:       os.Getenv("SWAGGER_HOST"),
		SeedAdminName:     getEnv("SEED_ADMIN_NAME", "admin"),
		SeedAdminPassword: os.Getenv("SEED_ADMIN_PASSWORD"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
