package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL       string
	Port              string
	GeminiAPIKey      string
	GenModel          string
	FallbackAPIKey    string
	FallbackBaseURL   string
	FallbackModel     string
	AwsAccessKey      string
	AwsSecretKey      string
	AwsRegion         string
	ArchiveBucket     string
	JWTSecret         string
	DefaultCountry    string
	RequestTimeoutSec int
	AllowedOrigins    []string
}

// LoadConfig loads the environment variables and return config
func LoadConfig() *Config {

	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		Port:              getEnv("PORT", "8080"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GenModel:          getEnv("GEN_MODEL", "gemini-1.5-flash"),
		FallbackAPIKey:    getEnv("FALLBACK_API_KEY", ""),
		FallbackBaseURL:   getEnv("FALLBACK_BASE_URL", "https://api.groq.com/openai/v1"),
		FallbackModel:     getEnv("FALLBACK_MODEL", "llama-3.3-70b-versatile"),
		AwsAccessKey:      getEnv("AWS_ACCESS_KEY", ""),
		AwsSecretKey:      getEnv("AWS_SECRET_KEY", ""),
		AwsRegion:         getEnv("AWS_REGION", "ap-south-1"),
		ArchiveBucket:     getEnv("ARCHIVE_BUCKET", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		DefaultCountry:    getEnv("DEFAULT_COUNTRY_CODE", "+91"),
		RequestTimeoutSec: getEnvInt("REQUEST_TIMEOUT_SEC", 60),
		AllowedOrigins:    []string{getEnv("WEB_ORIGIN", "http://localhost:5173")},
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	if cfg.GeminiAPIKey == "" && cfg.FallbackAPIKey == "" {
		log.Fatal("no LLM provider configured: set GEMINI_API_KEY or FALLBACK_API_KEY")
	}

	return cfg
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("WARN: %s=%q not an int, using default %d", key, v, def)
		return def
	}
	return n
}
