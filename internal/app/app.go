package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"vkazarin/zametki_bot/internal/config"
	"vkazarin/zametki_bot/internal/handler"
	"vkazarin/zametki_bot/internal/pkg/auth"
	"vkazarin/zametki_bot/internal/pkg/speech"
	"vkazarin/zametki_bot/internal/pkg/storage"
	"vkazarin/zametki_bot/internal/pkg/tg"
	"vkazarin/zametki_bot/internal/repository"
	"vkazarin/zametki_bot/internal/service"
)

// Run собирает зависимости и запускает бота со служебным сервером.
// Блокируется до отмены контекста.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	store, err := newStorage(cfg)
	if err != nil {
		return err
	}

	users, err := repository.NewFileAllowList(cfg.UsersFile)
	if err != nil {
		return fmt.Errorf("список пользователей: %w", err)
	}

	var recognizer service.SpeechRecognizer
	if cfg.OpenAIAPIKey != "" {
		recognizer = speech.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.TranscribeModel)
	} else {
		log.Warn("OPENAI_API_KEY не задан, распознавание аудио будет недоступно")
	}

	api, err := tg.NewAPI(cfg.TelegramToken)
	if err != nil {
		return fmt.Errorf("telegram: %w", err)
	}

	fetcher := service.NewAttachmentFetcher(tg.NewFileDownloader(api), log)
	transcriber := service.NewTranscriber(recognizer, log)
	noteStore := service.NewNoteStore(store, cfg.NotesRoot, log)
	pipeline := service.NewPipeline(fetcher, transcriber, noteStore, log)

	bot := tg.NewBot(api, pipeline, users, auth.NewChecker(cfg.NotesPassword, cfg.NotesPasswordHash), log)

	server := NewServer(handler.NewStatusHandler(store))
	go func() {
		if err := server.Run(cfg.ServerPort, log); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("служебный сервер остановился", zap.Error(err))
		}
	}()

	bot.Run(ctx)
	return nil
}

func newStorage(cfg *config.Config) (service.StorageClient, error) {
	switch cfg.StorageBackend {
	case "s3":
		return storage.NewS3Storage(cfg.S3Endpoint, cfg.S3Region, cfg.S3BucketName, cfg.S3AccessKeyID, cfg.S3SecretAccessKey), nil
	case "webdav":
		return storage.NewWebDavStorage(cfg.WebDavURL, cfg.WebDavUsername, cfg.WebDavPassword), nil
	default:
		return nil, fmt.Errorf("неизвестный STORAGE_BACKEND: %s", cfg.StorageBackend)
	}
}
