package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	OpenAIKey          string
	CatalogPath        string
	DatabaseURL        string
	RedisURL           string
	Port               string
	MetricsPort        string
	CatalogCacheTTLMin int
}

func Load() *Config {
	// Carga .env de la raiz del proyecto
	_ = godotenv.Load("../../.env")
	// Si no lo encuentra, intenta en el directorio actual
	_ = godotenv.Load()
	return &Config{
		OpenAIKey:          os.Getenv("OPENAI_API_KEY"),
		CatalogPath:        getEnv("CATALOG_PATH", "leaflink_catalogo.csv"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisURL:           os.Getenv("REDIS_URL"),
		Port:               getEnv("PORT", "8080"),
		MetricsPort:        getEnv("METRICS_PORT", "9090"),
		CatalogCacheTTLMin: getEnvInt("CATALOG_CACHE_TTL_MIN", 30),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}
