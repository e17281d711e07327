package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port               string
	Env                string
	PostgresConnStr    string
	MongoURI           string
	JWTSecret          string
	JWTExpirationHours int
	ZhipuAPIKey        string
	ZhipuBaseURL       string
	ZhipuModel         string
}

func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		PostgresConnStr:    getEnv("POSTGRES_CONN_STR", ""),
		MongoURI:           getEnv("MONGO_URI", ""),
		JWTSecret:          getEnv("JWT_SECRET", "supersecretjwtkey"),
		JWTExpirationHours: getEnvInt("JWT_EXPIRATION_HOURS", 72),
		ZhipuAPIKey:        getEnv("ZHIPU_API_KEY", ""),
		ZhipuBaseURL:       getEnv("ZHIPU_BASE_URL", "https://open.bigmodel.cn/api/paas/v4"),
		ZhipuModel:         getEnv("ZHIPU_MODEL", "glm-4v"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
