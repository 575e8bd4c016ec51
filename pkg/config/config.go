package config

import "os"

type Config struct {
	Port         string
	Env          string
	PostgresURL  string
	UploadDir    string
	PostsPerPage int
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		PostgresURL:  getEnv("POSTGRES_CONN_STR", ""),
		UploadDir:    getEnv("UPLOAD_DIR", "./static/uploads"),
		PostsPerPage: 9,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
