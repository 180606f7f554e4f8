package tg

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"vkazarin/zametki_bot/internal/model"
)

// convertMessage переводит сообщение Telegram во внутреннюю модель:
// текст или подпись к медиа плюс вложения, не более одного каждого типа.
func convertMessage(msg *tgbotapi.Message) *model.IncomingMessage {
	out := &model.IncomingMessage{
		UserID:   msg.From.ID,
		Username: msg.From.UserName,
		Text:     msg.Text,
	}
	if out.Text == "" {
		out.Text = msg.Caption
	}

	if len(msg.Photo) > 0 {
		// Telegram отдаёт фото набором размеров, последний — самый крупный
		photo := msg.Photo[len(msg.Photo)-1]
		out.Attachments = append(out.Attachments, model.Attachment{
			Kind:   model.AttachmentPhoto,
			FileID: photo.FileID,
		})
	}
	if msg.Document != nil {
		out.Attachments = append(out.Attachments, model.Attachment{
			Kind:     model.AttachmentDocument,
			FileID:   msg.Document.FileID,
			FileName: msg.Document.FileName,
		})
	}
	if msg.Video != nil {
		out.Attachments = append(out.Attachments, model.Attachment{
			Kind:   model.AttachmentVideo,
			FileID: msg.Video.FileID,
		})
	}
	if msg.Audio != nil {
		out.Attachments = append(out.Attachments, model.Attachment{
			Kind:     model.AttachmentAudio,
			FileID:   msg.Audio.FileID,
			FileName: msg.Audio.FileName,
		})
	}
	if msg.Voice != nil {
		out.Attachments = append(out.Attachments, model.Attachment{
			Kind:   model.AttachmentVoice,
			FileID: msg.Voice.FileID,
		})
	}

	return out
}
