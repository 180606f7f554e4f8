package tg

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"vkazarin/zametki_bot/internal/model"
)

func TestConvertTextMessage(t *testing.T) {
	msg := &tgbotapi.Message{
		From: &tgbotapi.User{ID: 42, UserName: "bor"},
		Chat: &tgbotapi.Chat{ID: 42},
		Text: "Hello",
	}

	got := convertMessage(msg)

	if got.UserID != 42 || got.Username != "bor" {
		t.Errorf("got = %+v", got)
	}
	if got.Text != "Hello" {
		t.Errorf("Text = %q", got.Text)
	}
	if len(got.Attachments) != 0 {
		t.Errorf("Attachments = %v", got.Attachments)
	}
}

func TestConvertPhotoPicksLargest(t *testing.T) {
	msg := &tgbotapi.Message{
		From: &tgbotapi.User{ID: 1},
		Chat: &tgbotapi.Chat{ID: 1},
		Photo: []tgbotapi.PhotoSize{
			{FileID: "small", Width: 90},
			{FileID: "large", Width: 1280},
		},
		Caption: "подпись",
	}

	got := convertMessage(msg)

	// текста нет — берётся подпись к медиа
	if got.Text != "подпись" {
		t.Errorf("Text = %q", got.Text)
	}
	att := got.AttachmentOf(model.AttachmentPhoto)
	if att == nil || att.FileID != "large" {
		t.Errorf("attachment = %+v, want large", att)
	}
}

func TestConvertAllVariants(t *testing.T) {
	msg := &tgbotapi.Message{
		From:     &tgbotapi.User{ID: 1},
		Chat:     &tgbotapi.Chat{ID: 1},
		Photo:    []tgbotapi.PhotoSize{{FileID: "ph1"}},
		Document: &tgbotapi.Document{FileID: "doc7", FileName: "отчёт.pdf"},
		Video:    &tgbotapi.Video{FileID: "vid9"},
		Audio:    &tgbotapi.Audio{FileID: "aud1", FileName: "song.mp3"},
		Voice:    &tgbotapi.Voice{FileID: "vc1"},
	}

	got := convertMessage(msg)

	if len(got.Attachments) != 5 {
		t.Fatalf("Attachments = %d, want 5", len(got.Attachments))
	}
	doc := got.AttachmentOf(model.AttachmentDocument)
	if doc == nil || doc.FileName != "отчёт.pdf" {
		t.Errorf("document = %+v", doc)
	}
	voice := got.AttachmentOf(model.AttachmentVoice)
	if voice == nil || voice.FileID != "vc1" {
		t.Errorf("voice = %+v", voice)
	}
}
