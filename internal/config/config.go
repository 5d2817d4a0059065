package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	MongoURI     string
	DatabaseName string
	JWTSecret    string
	Origin       string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	NotifyEmail  string
	Timeout      time.Duration
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		if os.IsNotExist(err) {
			// .env file not found, proceed with environment values
		} else {
			panic("Error loading .env file")
		}
	}
	return Config{
		Port:         getEnv("PORT", "4000"),
		MongoURI:     getEnv("MONGODB_URI", ""),
		DatabaseName: getEnv("DATABASE_NAME", "biblioteca"),
		JWTSecret:    getEnv("JWT_SECRET", "SUPER_SECRET_KEY"),
		Origin:       getEnv("ORIGIN", "*"),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		NotifyEmail:  getEnv("NOTIFY_EMAIL", ""),
		Timeout:      10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
