package service

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"vkazarin/zametki_bot/internal/model"
)

type attachmentFetcher struct {
	downloader BlobDownloader
	log        *zap.Logger
}

func NewAttachmentFetcher(downloader BlobDownloader, log *zap.Logger) AttachmentFetcher {
	return &attachmentFetcher{downloader: downloader, log: log}
}

// Fetch обходит вложения в фиксированном порядке (model.FetchOrder) и
// скачивает каждое в scratchDir. Ошибка скачивания любого вложения
// валит весь вызов: частичная заметка не собирается.
func (f *attachmentFetcher) Fetch(ctx context.Context, scratchDir string, msg *model.IncomingMessage) ([]model.FetchedFile, *model.FetchedFile, error) {
	var files []model.FetchedFile
	var audio *model.FetchedFile

	for _, kind := range model.FetchOrder {
		att := msg.AttachmentOf(kind)
		if att == nil {
			continue
		}

		file, err := f.fetchOne(ctx, scratchDir, att)
		if err != nil {
			return nil, nil, err
		}
		files = append(files, file)

		if kind == model.AttachmentAudio || kind == model.AttachmentVoice {
			candidate := file
			audio = &candidate
		}
	}

	return files, audio, nil
}

func (f *attachmentFetcher) fetchOne(ctx context.Context, dir string, att *model.Attachment) (model.FetchedFile, error) {
	var name, label string

	switch att.Kind {
	case model.AttachmentPhoto:
		name = att.FileID + ".jpg"
	case model.AttachmentDocument:
		name = att.FileID + filepath.Ext(att.FileName)
		label = att.FileName
		if label == "" {
			label = name
		}
	case model.AttachmentVideo:
		name = att.FileID + ".mp4"
		label = "Видео"
	case model.AttachmentAudio:
		ext := filepath.Ext(att.FileName)
		if ext == "" {
			ext = ".mp3"
		}
		name = att.FileID + ext
		label = "Аудио"
	case model.AttachmentVoice:
		name = att.FileID + ".ogg"
		label = "Voice"
	default:
		return model.FetchedFile{}, fmt.Errorf("неизвестный тип вложения: %s", att.Kind)
	}

	local := filepath.Join(dir, name)
	if err := f.downloader.DownloadFile(ctx, att.FileID, local); err != nil {
		return model.FetchedFile{}, fmt.Errorf("скачивание %s %s: %w", att.Kind, att.FileID, err)
	}

	f.log.Debug("вложение скачано",
		zap.String("kind", string(att.Kind)),
		zap.String("file_id", att.FileID),
		zap.String("local", local))

	return model.FetchedFile{
		LocalPath: local,
		Name:      name,
		Label:     label,
		Kind:      att.Kind,
	}, nil
}
