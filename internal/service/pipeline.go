package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vkazarin/zametki_bot/internal/model"
)

var (
	// ErrFetch — не удалось получить вложение; запись в хранилище не начиналась.
	ErrFetch = errors.New("не удалось получить вложение")
	// ErrStorage — ошибка удалённого хранилища; уже загруженные файлы остаются.
	ErrStorage = errors.New("ошибка удалённого хранилища")
)

type pipeline struct {
	fetcher     AttachmentFetcher
	transcriber Transcriber
	store       NoteStore
	log         *zap.Logger
}

func NewPipeline(fetcher AttachmentFetcher, transcriber Transcriber, store NoteStore, log *zap.Logger) Pipeline {
	return &pipeline{
		fetcher:     fetcher,
		transcriber: transcriber,
		store:       store,
		log:         log,
	}
}

// Run обрабатывает одно входящее сообщение: скачивает вложения,
// распознаёт аудио, собирает markdown и сохраняет всё в хранилище.
// Сообщения независимы, несколько Run могут идти параллельно.
func (p *pipeline) Run(ctx context.Context, msg *model.IncomingMessage) (string, error) {
	runID := uuid.New().String()
	log := p.log.With(zap.String("run_id", runID), zap.Int64("user_id", msg.UserID))

	scratch := filepath.Join(os.TempDir(), "tgmsg_"+runID)
	if err := os.MkdirAll(scratch, 0o700); err != nil {
		return "", fmt.Errorf("временная папка: %w", err)
	}
	// Временная папка убирается на любом исходе, включая ошибки.
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			log.Warn("не удалось убрать временную папку", zap.String("dir", scratch), zap.Error(err))
		}
	}()

	files, audio, err := p.fetcher.Fetch(ctx, scratch, msg)
	if err != nil {
		log.Error("ошибка получения вложений", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrFetch, err)
	}

	var transcript string
	if audio != nil {
		if text, ok := p.transcriber.Recognize(ctx, audio.LocalPath); ok {
			transcript = text
		}
	}

	note := ComposeNote(msg.Text, files, transcript)

	path, err := p.store.Persist(ctx, msg.UserID, note)
	if err != nil {
		log.Error("ошибка сохранения заметки", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return path, nil
}
