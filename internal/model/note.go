package model

// FetchedFile — скачанный во временную папку файл вложения.
// Name используется и как имя файла в хранилище, и как цель ссылки
// в markdown; Label — подпись ссылки (у фото пустая, фото вставляется
// картинкой).
type FetchedFile struct {
	LocalPath string
	Name      string
	Label     string
	Kind      AttachmentKind
}

// Note — собранная заметка: тело в markdown и файлы, на которые оно
// ссылается, в порядке скачивания. Каждая ссылка в теле соответствует
// ровно одному файлу из списка.
type Note struct {
	Markdown string
	Files    []FetchedFile
}
