package service

import (
	"context"

	"vkazarin/zametki_bot/internal/model"
)

// Внешние участники конвейера. Транспорт чата, удалённое хранилище и
// распознавание речи живут в internal/pkg — конвейер видит только эти
// контракты.

// BlobDownloader скачивает файл транспорта по его идентификатору.
type BlobDownloader interface {
	DownloadFile(ctx context.Context, fileID, destPath string) error
}

// StorageClient — три примитива удалённого хранилища, которыми
// пользуется конвейер, плюс проверка доступности для /health.
type StorageClient interface {
	Exists(ctx context.Context, remotePath string) (bool, error)
	CreateDirectory(ctx context.Context, remotePath string) error
	Upload(ctx context.Context, remotePath, localPath string) error
	HealthCheck(ctx context.Context) error
}

// SpeechRecognizer — бэкенд распознавания речи.
type SpeechRecognizer interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Компоненты конвейера.

type AttachmentFetcher interface {
	// Fetch скачивает вложения сообщения в scratchDir и возвращает файлы
	// в порядке обработки плюс кандидата на распознавание аудио.
	Fetch(ctx context.Context, scratchDir string, msg *model.IncomingMessage) ([]model.FetchedFile, *model.FetchedFile, error)
}

type Transcriber interface {
	// Recognize возвращает распознанный текст. ok=false — текста нет:
	// бэкенд не настроен, вернул ошибку или пустой результат.
	Recognize(ctx context.Context, audioPath string) (text string, ok bool)
}

type NoteStore interface {
	// Persist сохраняет заметку и её файлы в хранилище и возвращает
	// удалённый путь заметки.
	Persist(ctx context.Context, userID int64, note *model.Note) (string, error)
}

type Pipeline interface {
	// Run обрабатывает одно входящее сообщение целиком.
	Run(ctx context.Context, msg *model.IncomingMessage) (string, error)
}
