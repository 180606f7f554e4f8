package service

import (
	"strings"
	"testing"

	"vkazarin/zametki_bot/internal/model"
)

func TestComposeEmptyMessage(t *testing.T) {
	note := ComposeNote("", nil, "")

	if note.Markdown != "_(пустое сообщение)_" {
		t.Errorf("Markdown = %q, want placeholder", note.Markdown)
	}
	if len(note.Files) != 0 {
		t.Errorf("Files = %d, want 0", len(note.Files))
	}
}

func TestComposeTextOnly(t *testing.T) {
	note := ComposeNote("Hello", nil, "")

	// без вложений и аудио тело — ровно исходный текст
	if note.Markdown != "Hello" {
		t.Errorf("Markdown = %q, want %q", note.Markdown, "Hello")
	}
	if len(note.Files) != 0 {
		t.Errorf("Files = %d, want 0", len(note.Files))
	}
}

func TestComposeSinglePhoto(t *testing.T) {
	files := []model.FetchedFile{
		{Name: "ph1.jpg", Kind: model.AttachmentPhoto},
	}

	note := ComposeNote("", files, "")

	want := "![](/data/ph1.jpg)\n\n\n---\n"
	if note.Markdown != want {
		t.Errorf("Markdown = %q, want %q", note.Markdown, want)
	}
	if len(note.Files) != 1 {
		t.Errorf("Files = %d, want 1", len(note.Files))
	}
}

func TestComposeVoiceWithTranscript(t *testing.T) {
	files := []model.FetchedFile{
		{Name: "v1.ogg", Label: "Voice", Kind: model.AttachmentVoice},
	}

	note := ComposeNote("к покупкам", files, "buy milk")

	want := "[Voice](/data/v1.ogg)\n\n\n---\n\n\n**Распознанное аудио:**\n\n\n\nbuy milk\n\n\n---\n\n\nк покупкам"
	if note.Markdown != want {
		t.Errorf("Markdown = %q, want %q", note.Markdown, want)
	}

	// порядок секций: ссылка, распознанный текст, исходный текст
	linkAt := strings.Index(note.Markdown, "[Voice]")
	audioAt := strings.Index(note.Markdown, "**Распознанное аудио:**")
	textAt := strings.Index(note.Markdown, "к покупкам")
	if !(linkAt < audioAt && audioAt < textAt) {
		t.Errorf("неверный порядок секций: link=%d audio=%d text=%d", linkAt, audioAt, textAt)
	}
}

func TestComposeAudioWithoutTranscript(t *testing.T) {
	files := []model.FetchedFile{
		{Name: "a1.mp3", Label: "Аудио", Kind: model.AttachmentAudio},
	}

	note := ComposeNote("подпись", files, "")

	if strings.Contains(note.Markdown, "Распознанное аудио") {
		t.Errorf("секция распознанного аудио не должна появляться: %q", note.Markdown)
	}
	if !strings.Contains(note.Markdown, "[Аудио](/data/a1.mp3)") {
		t.Errorf("нет ссылки на аудио: %q", note.Markdown)
	}
	if !strings.Contains(note.Markdown, "подпись") {
		t.Errorf("нет исходного текста: %q", note.Markdown)
	}
}

func TestComposeDocumentLink(t *testing.T) {
	files := []model.FetchedFile{
		{Name: "doc7.pdf", Label: "отчёт.pdf", Kind: model.AttachmentDocument},
	}

	note := ComposeNote("", files, "")

	if !strings.Contains(note.Markdown, "[отчёт.pdf](/data/doc7.pdf)") {
		t.Errorf("нет ссылки на документ: %q", note.Markdown)
	}
}
