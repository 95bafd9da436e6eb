package config

import (
	"os"            // For environment variables
	"path/filepath" // For the default sqlite file location
	"strconv"       // For string to int conversion
	"time"          // For cache TTL

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort     string        // Application port
	DatabaseURL string        // Database connection URL
	DBUser      string        // MySQL user, used when DatabaseURL is empty
	DBPassword  string        // MySQL password
	DBHost      string        // MySQL host
	DBPort      string        // MySQL port
	DBName      string        // MySQL database name
	RedisAddr   string        // Redis server address, empty disables the cache
	RedisPass   string        // Redis password
	RedisDB     int           // Redis database number
	CacheTTL    time.Duration // Lifetime of cached list responses
	LogLevel    string        // Logrus level name
	IsProd      bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	ttl, err := strconv.Atoi(os.Getenv("CACHE_TTL_SECONDS"))
	if err != nil || ttl <= 0 {
		ttl = 60 // Default cache TTL in seconds
	}
	return &Config{
		AppPort:     getEnv("PORT", "3000"),           // Application port
		DatabaseURL: os.Getenv("DATABASE_URL"),        // Database connection URL
		DBUser:      os.Getenv("DB_USER"),             // Database user
		DBPassword:  os.Getenv("DB_PASSWORD"),         // Database password
		DBHost:      os.Getenv("DB_HOST"),             // Database host
		DBPort:      getEnv("DB_PORT", "3306"),        // Database port
		DBName:      os.Getenv("DB_NAME"),             // Database name
		RedisAddr:   os.Getenv("REDIS_ADDR"),          // Redis server address
		RedisPass:   os.Getenv("REDIS_PASS"),          // Redis password
		RedisDB:     redisDB,                          // Redis database number
		CacheTTL:    time.Duration(ttl) * time.Second, // Cache TTL
		LogLevel:    getEnv("LOG_LEVEL", "info"),      // Log level
		IsProd:      os.Getenv("IS_PROD") == "true",   // Is production environment
	}
}

// DSN resolves the database URL. An explicit DATABASE_URL wins, then the
// MySQL parts, and finally a sqlite file in the temp directory.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DBHost != "" {
		return "mysql://" + c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
	}
	return "sqlite://" + filepath.Join(os.TempDir(), "test.db")
}

// getEnv returns the variable value or fallback when unset or empty
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
