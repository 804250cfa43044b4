package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string
	MySQLDSN        string
	DBTLSSkipVerify bool
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	JWTSecret       string
	UploadDir       string
	PublicDir       string
	AdminUsername   string
	AdminPassword   string
}

// Load builds Config from environment with sensible defaults.
// JWT_SECRET has no default: tokens signed with a known fallback secret are
// forgeable, so startup fails when it is unset.
func Load() *Config {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		MySQLDSN:        getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/motohub?charset=utf8mb4&parseTime=True&loc=Local"),
		DBTLSSkipVerify: getEnvBool("DB_TLS_SKIP_VERIFY", false),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       secret,
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
		PublicDir:       getEnv("PUBLIC_DIR", "./public"),
		AdminUsername:   getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", "changeme123"),
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
