package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	TelegramToken string `mapstructure:"TELEGRAM_BOT_TOKEN"`

	// Пароль доступа: открытым текстом или bcrypt-хэшем, хэш имеет приоритет
	NotesPassword     string `mapstructure:"NOTES_PASSWORD"`
	NotesPasswordHash string `mapstructure:"NOTES_PASSWORD_HASH"`

	StorageBackend string `mapstructure:"STORAGE_BACKEND"` // webdav | s3
	NotesRoot      string `mapstructure:"WEBDAV_ROOT"`     // корень дерева заметок в хранилище

	WebDavURL      string `mapstructure:"WEBDAV_URL"`
	WebDavUsername string `mapstructure:"WEBDAV_USERNAME"`
	WebDavPassword string `mapstructure:"WEBDAV_PASSWORD"`

	S3Endpoint        string `mapstructure:"S3_ENDPOINT"`
	S3Region          string `mapstructure:"S3_REGION"`
	S3BucketName      string `mapstructure:"S3_BUCKET_NAME"`
	S3AccessKeyID     string `mapstructure:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `mapstructure:"S3_SECRET_ACCESS_KEY"`

	OpenAIAPIKey    string `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL   string `mapstructure:"OPENAI_BASE_URL"`
	TranscribeModel string `mapstructure:"TRANSCRIBE_MODEL"`

	UsersFile  string `mapstructure:"USERS_FILE"`
	ServerPort string `mapstructure:"SERVER_PORT"`
	LogFile    string `mapstructure:"LOG_FILE"`
}

func Load() (*Config, error) {
	viper.AddConfigPath("./")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("STORAGE_BACKEND", "webdav")
	viper.SetDefault("WEBDAV_ROOT", "/notes")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("TRANSCRIBE_MODEL", "gpt-4o-mini-transcribe")
	viper.SetDefault("USERS_FILE", "allowed_users.json")
	viper.SetDefault("SERVER_PORT", "8080")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	if cfg.NotesPassword == "" && cfg.NotesPasswordHash == "" {
		return nil, fmt.Errorf("NOTES_PASSWORD or NOTES_PASSWORD_HASH is required")
	}

	switch cfg.StorageBackend {
	case "webdav":
		if cfg.WebDavURL == "" {
			return nil, fmt.Errorf("WEBDAV_URL is required")
		}
		if cfg.WebDavUsername == "" {
			return nil, fmt.Errorf("WEBDAV_USERNAME is required")
		}
		if cfg.WebDavPassword == "" {
			return nil, fmt.Errorf("WEBDAV_PASSWORD is required")
		}
	case "s3":
		if cfg.S3BucketName == "" {
			return nil, fmt.Errorf("S3_BUCKET_NAME is required")
		}
		if cfg.S3AccessKeyID == "" {
			return nil, fmt.Errorf("S3_ACCESS_KEY_ID is required")
		}
		if cfg.S3SecretAccessKey == "" {
			return nil, fmt.Errorf("S3_SECRET_ACCESS_KEY is required")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND: %s", cfg.StorageBackend)
	}

	return &cfg, nil
}
