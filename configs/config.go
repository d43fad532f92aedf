package configs

import (
	"fmt"
	"os"
)

// Config holds environment-driven settings shared by every front-end.
// Defaults target a local development Postgres.
type Config struct {
	APIAddr     string
	GraphQLAddr string
	MCPAddr     string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	SQLDir   string
	LogLevel string
}

func Load() *Config {
	return &Config{
		APIAddr:     getEnv("API_APP_PORT", ":8000"),
		GraphQLAddr: getEnv("GRAPHQL_APP_PORT", ":8001"),
		MCPAddr:     getEnv("MCP_APP_PORT", "127.0.0.1:9000"),

		DBHost: getEnv("DB_HOST", "localhost"),
		DBPort: getEnv("DB_PORT", "5432"),
		DBUser: getEnv("DB_USER", "postgres"),
		DBPass: getEnv("DB_PASSWORD", ""),
		DBName: getEnv("DB_NAME", "DemoApiTest"),

		SQLDir:   getEnv("SQL_DIR", "SQL"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName,
	)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
