package config

import (
	"os"
	"strconv"
)

// Config holds the process-wide settings. It is loaded once at startup
// and never mutated afterwards.
type Config struct {
	Port          string
	MongoURL      string
	MongoDatabase string
	JWTSecret     string
	EmailID       string
	EmailPassword string
	SMTPHost      string
	SMTPPort      int
	AppURL        string
}

/*
* Read all settings from the environment
* Fall back to development defaults where a value is missing
 */
func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT_NUMBER", "3000"),
		MongoURL:      getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "prescryber"),
		JWTSecret:     os.Getenv("JWT_SECRET_KEY"),
		EmailID:       os.Getenv("EMAIL_ID"),
		EmailPassword: os.Getenv("EMAIL_PASSWORD"),
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      465,
		AppURL:        getEnv("APP_URL", "http://localhost:8080"),
	}
	if port, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		cfg.SMTPPort = port
	}
	return cfg
}

// PasswordResetLink is the frontend page a reset token gets appended to.
func (c Config) PasswordResetLink() string {
	return c.AppURL + "/password/reset"
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
