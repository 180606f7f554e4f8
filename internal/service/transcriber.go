package service

import (
	"context"

	"go.uber.org/zap"
)

// transcriber оборачивает бэкенд распознавания речи. Любой сбой
// распознавания не валит сохранение заметки: заметка выйдет со ссылкой
// на аудио, но без текста. Причина сбоя остаётся в логах.
type transcriber struct {
	recognizer SpeechRecognizer // nil — бэкенд не настроен
	log        *zap.Logger
}

func NewTranscriber(recognizer SpeechRecognizer, log *zap.Logger) Transcriber {
	return &transcriber{recognizer: recognizer, log: log}
}

func (t *transcriber) Recognize(ctx context.Context, audioPath string) (string, bool) {
	if t.recognizer == nil {
		t.log.Warn("бэкенд распознавания не настроен — аудио останется без текста")
		return "", false
	}

	text, err := t.recognizer.Transcribe(ctx, audioPath)
	if err != nil {
		t.log.Error("ошибка при распознавании аудио", zap.String("path", audioPath), zap.Error(err))
		return "", false
	}
	if text == "" {
		// отличие от сбоя вызова видно только здесь, в логе
		t.log.Warn("модель вернула пустой текст", zap.String("path", audioPath))
		return "", false
	}

	return text, true
}
