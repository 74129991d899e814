package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Telegram TelegramConfig
	Building BuildingConfig
	Kakao    KakaoConfig
	GenAI    GenAIConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
}

type TelegramConfig struct {
	BotToken string
	ChatID   string
}

type BuildingConfig struct {
	ServiceKey string
}

type KakaoConfig struct {
	RESTKey string
}

type GenAIConfig struct {
	BaseURL string
	APIKey  string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "pxtown-dev-secret"),
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
		},
		Building: BuildingConfig{
			ServiceKey: getEnv("BUILDING_API_KEY", ""),
		},
		Kakao: KakaoConfig{
			RESTKey: getEnv("KAKAO_REST_KEY", ""),
		},
		GenAI: GenAIConfig{
			BaseURL: getEnv("GENAI_API_URL", ""),
			APIKey:  getEnv("GENAI_API_KEY", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
