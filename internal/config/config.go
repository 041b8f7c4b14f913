package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	WhatsApp WhatsAppConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type WhatsAppConfig struct {
	// StoreDSN is the sqlite DSN for the whatsmeow device store. Session
	// credentials live here; deleting the file forces a fresh QR pairing.
	StoreDSN string
	// QRSize is the pixel size of the rendered QR PNG.
	QRSize int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3001"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3001"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "namedeck.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		},
		WhatsApp: WhatsAppConfig{
			StoreDSN: getEnv("WA_STORE_DSN", "file:namedeck-store.db?_pragma=foreign_keys(1)"),
			QRSize:   getEnvAsInt("WA_QR_SIZE", 256),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
