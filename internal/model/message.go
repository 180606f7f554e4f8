package model

// AttachmentKind — тип вложения входящего сообщения.
type AttachmentKind string

const (
	AttachmentPhoto    AttachmentKind = "photo"
	AttachmentDocument AttachmentKind = "document"
	AttachmentVideo    AttachmentKind = "video"
	AttachmentAudio    AttachmentKind = "audio"
	AttachmentVoice    AttachmentKind = "voice"
)

// FetchOrder — фиксированный порядок обработки вложений. Voice идёт
// после Audio, поэтому при наличии обоих кандидатом на распознавание
// остаётся именно voice (last-write-wins).
var FetchOrder = []AttachmentKind{
	AttachmentPhoto,
	AttachmentDocument,
	AttachmentVideo,
	AttachmentAudio,
	AttachmentVoice,
}

// Attachment — вложение сообщения: непрозрачный идентификатор файла у
// транспорта плюс объявленное имя файла, если транспорт его знает.
type Attachment struct {
	Kind     AttachmentKind
	FileID   string
	FileName string // есть только у document и audio, может быть пустым
}

// IncomingMessage — входящее сообщение, уже отвязанное от транспорта.
// Сообщение несёт не более одного вложения каждого типа.
type IncomingMessage struct {
	UserID      int64
	Username    string
	Text        string // текст сообщения или подпись к медиа
	Attachments []Attachment
}

// AttachmentOf возвращает вложение указанного типа или nil.
func (m *IncomingMessage) AttachmentOf(kind AttachmentKind) *Attachment {
	for i := range m.Attachments {
		if m.Attachments[i].Kind == kind {
			return &m.Attachments[i]
		}
	}
	return nil
}
