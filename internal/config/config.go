package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisURL string

	ServerPort string

	JWTSecret string

	AccessTokenMaxAge  int
	RefreshTokenMaxAge int

	// PageSize is the number of posts per feed page. It is threaded
	// into the feed service explicitly rather than read as a global.
	PageSize int

	// PageCacheTTL is the lifetime in seconds of the whole-response
	// cache on the all-posts feed. There is no invalidation hook;
	// staleness is bounded purely by this value.
	PageCacheTTL int
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found or error loading it, relying on environment variables")
	}

	accessTokenMaxAge := intEnv("ACCESS_TOKEN_MAX_AGE", 900)
	refreshTokenMaxAge := intEnv("REFRESH_TOKEN_MAX_AGE", 2592000)
	pageSize := intEnv("PAGE_SIZE", 10)
	pageCacheTTL := intEnv("PAGE_CACHE_TTL", 20)

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	sslMode := os.Getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  sslMode,

		RedisURL: os.Getenv("REDIS_URL"),

		ServerPort: serverPort,

		JWTSecret: os.Getenv("JWT_SECRET"),

		AccessTokenMaxAge:  accessTokenMaxAge,
		RefreshTokenMaxAge: refreshTokenMaxAge,

		PageSize:     pageSize,
		PageCacheTTL: pageCacheTTL,
	}, nil
}

func intEnv(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
