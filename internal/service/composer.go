package service

import (
	"fmt"
	"strings"

	"vkazarin/zametki_bot/internal/model"
)

const emptyNotePlaceholder = "_(пустое сообщение)_"

const sectionSeparator = "\n---\n"

// ComposeNote собирает markdown заметки: сначала ссылки на скачанные
// файлы в порядке обработки, затем распознанный текст (если есть),
// затем исходный текст сообщения. Пустые секции опускаются; полностью
// пустая заметка получает тело-заглушку. Цели ссылок — /data/<имя>,
// путь относительно будущей заметки, не файловой системы.
func ComposeNote(text string, files []model.FetchedFile, transcript string) *model.Note {
	var links []string
	for _, f := range files {
		if f.Kind == model.AttachmentPhoto {
			links = append(links, fmt.Sprintf("![](/data/%s)", f.Name))
		} else {
			links = append(links, fmt.Sprintf("[%s](/data/%s)", f.Label, f.Name))
		}
	}

	var parts []string
	if len(links) > 0 {
		parts = append(parts, strings.Join(links, "\n"), sectionSeparator)
	}
	if transcript != "" {
		parts = append(parts, "**Распознанное аудио:**\n\n", transcript, sectionSeparator)
	}
	if text != "" {
		parts = append(parts, text)
	}

	body := strings.Join(parts, "\n\n")
	if strings.TrimSpace(body) == "" {
		body = emptyNotePlaceholder
	}

	return &model.Note{Markdown: body, Files: files}
}
