package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"go.uber.org/zap"

	"vkazarin/zametki_bot/internal/model"
)

type fakeDownloader struct {
	failID string
	calls  []string
}

func (d *fakeDownloader) DownloadFile(ctx context.Context, fileID, destPath string) error {
	if fileID == d.failID {
		return errors.New("network down")
	}
	d.calls = append(d.calls, fileID)
	return os.WriteFile(destPath, []byte("blob:"+fileID), 0o644)
}

func TestFetchNaming(t *testing.T) {
	dl := &fakeDownloader{}
	f := NewAttachmentFetcher(dl, zap.NewNop())

	msg := &model.IncomingMessage{
		UserID: 1,
		Attachments: []model.Attachment{
			{Kind: model.AttachmentVideo, FileID: "vid9"},
			{Kind: model.AttachmentPhoto, FileID: "ph1"},
			{Kind: model.AttachmentDocument, FileID: "doc7", FileName: "отчёт.pdf"},
		},
	}

	files, audio, err := f.Fetch(context.Background(), t.TempDir(), msg)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if audio != nil {
		t.Errorf("audio = %v, want nil", audio)
	}
	if len(files) != 3 {
		t.Fatalf("files = %d, want 3", len(files))
	}

	// порядок фиксированный: фото, документ, видео — независимо от
	// порядка вложений в сообщении
	if files[0].Name != "ph1.jpg" || files[0].Kind != model.AttachmentPhoto {
		t.Errorf("files[0] = %+v", files[0])
	}
	if files[1].Name != "doc7.pdf" || files[1].Label != "отчёт.pdf" {
		t.Errorf("files[1] = %+v", files[1])
	}
	if files[2].Name != "vid9.mp4" || files[2].Label != "Видео" {
		t.Errorf("files[2] = %+v", files[2])
	}

	for _, file := range files {
		if _, err := os.Stat(file.LocalPath); err != nil {
			t.Errorf("файл %s не скачан: %v", file.Name, err)
		}
	}
}

func TestFetchDocumentWithoutName(t *testing.T) {
	f := NewAttachmentFetcher(&fakeDownloader{}, zap.NewNop())

	msg := &model.IncomingMessage{
		Attachments: []model.Attachment{
			{Kind: model.AttachmentDocument, FileID: "doc1"},
		},
	}

	files, _, err := f.Fetch(context.Background(), t.TempDir(), msg)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if files[0].Name != "doc1" {
		t.Errorf("Name = %q, want %q", files[0].Name, "doc1")
	}
	// без объявленного имени подписью становится локальное имя
	if files[0].Label != "doc1" {
		t.Errorf("Label = %q, want %q", files[0].Label, "doc1")
	}
}

func TestFetchAudioDefaultExtension(t *testing.T) {
	f := NewAttachmentFetcher(&fakeDownloader{}, zap.NewNop())

	msg := &model.IncomingMessage{
		Attachments: []model.Attachment{
			{Kind: model.AttachmentAudio, FileID: "aud1"},
		},
	}

	files, audio, err := f.Fetch(context.Background(), t.TempDir(), msg)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if files[0].Name != "aud1.mp3" {
		t.Errorf("Name = %q, want %q", files[0].Name, "aud1.mp3")
	}
	if audio == nil || audio.Name != "aud1.mp3" {
		t.Errorf("audio = %+v, want aud1.mp3", audio)
	}
}

func TestFetchVoiceWinsAudioCandidate(t *testing.T) {
	f := NewAttachmentFetcher(&fakeDownloader{}, zap.NewNop())

	msg := &model.IncomingMessage{
		Attachments: []model.Attachment{
			{Kind: model.AttachmentAudio, FileID: "aud1", FileName: "song.mp3"},
			{Kind: model.AttachmentVoice, FileID: "vc1"},
		},
	}

	files, audio, err := f.Fetch(context.Background(), t.TempDir(), msg)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %d, want 2", len(files))
	}
	// voice обрабатывается последним и перезаписывает кандидата
	if audio == nil || audio.Name != "vc1.ogg" {
		t.Errorf("audio = %+v, want vc1.ogg", audio)
	}
	if files[1].Label != "Voice" {
		t.Errorf("Label = %q, want Voice", files[1].Label)
	}
}

func TestFetchFailureAbortsAll(t *testing.T) {
	f := NewAttachmentFetcher(&fakeDownloader{failID: "doc7"}, zap.NewNop())

	msg := &model.IncomingMessage{
		Attachments: []model.Attachment{
			{Kind: model.AttachmentPhoto, FileID: "ph1"},
			{Kind: model.AttachmentDocument, FileID: "doc7"},
		},
	}

	files, audio, err := f.Fetch(context.Background(), t.TempDir(), msg)
	if err == nil {
		t.Fatal("Fetch должен вернуть ошибку")
	}
	if files != nil || audio != nil {
		t.Errorf("при ошибке не должно быть частичного результата: %v, %v", files, audio)
	}
}
