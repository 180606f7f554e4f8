package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"vkazarin/zametki_bot/internal/model"
)

// noteStore раскладывает заметки в хранилище по дате:
//
//	<root>/<ГГГГ-ММ-ДД>/note_<ЧЧММСС>.md
//	<root>/<ГГГГ-ММ-ДД>/data/<имя файла>
//
// Дата — по UTC, время в имени заметки — локальное. Две заметки в одну
// секунду получают одно имя, вторая молча перезаписывает первую.
type noteStore struct {
	storage StorageClient
	root    string
	log     *zap.Logger
	now     func() time.Time
}

func NewNoteStore(storage StorageClient, root string, log *zap.Logger) NoteStore {
	return &noteStore{
		storage: storage,
		root:    strings.TrimRight(root, "/"),
		log:     log,
		now:     time.Now,
	}
}

func (s *noteStore) Persist(ctx context.Context, userID int64, note *model.Note) (string, error) {
	now := s.now()
	dateFolder := s.root + "/" + now.UTC().Format("2006-01-02")
	dataFolder := dateFolder + "/data"

	if err := s.ensureFolder(ctx, dateFolder); err != nil {
		return "", err
	}
	if err := s.ensureFolder(ctx, dataFolder); err != nil {
		return "", err
	}

	// Сначала файлы, потом сама заметка: читатель, уже увидевший
	// заметку, не должен напороться на битые ссылки.
	for _, f := range note.Files {
		remote := dataFolder + "/" + f.Name
		if err := s.storage.Upload(ctx, remote, f.LocalPath); err != nil {
			return "", fmt.Errorf("загрузка %s: %w", remote, err)
		}
	}

	noteName := fmt.Sprintf("note_%s.md", now.Format("150405"))
	remoteNotePath := dateFolder + "/" + noteName

	tmpDir, err := os.MkdirTemp("", "tgmsg_")
	if err != nil {
		return "", fmt.Errorf("временный файл заметки: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	localNote := filepath.Join(tmpDir, noteName)
	if err := os.WriteFile(localNote, []byte(note.Markdown), 0o644); err != nil {
		return "", fmt.Errorf("запись заметки на диск: %w", err)
	}

	if err := s.storage.Upload(ctx, remoteNotePath, localNote); err != nil {
		return "", fmt.Errorf("загрузка заметки %s: %w", remoteNotePath, err)
	}

	s.log.Info("заметка сохранена",
		zap.Int64("user_id", userID),
		zap.String("path", remoteNotePath),
		zap.Int("files", len(note.Files)))

	return remoteNotePath, nil
}

// ensureFolder идемпотентно создаёт папку. Проверка и создание не
// атомарны: если создание упало, а повторная проверка папку видит —
// её успел создать кто-то параллельный, это не ошибка.
func (s *noteStore) ensureFolder(ctx context.Context, path string) error {
	exists, err := s.storage.Exists(ctx, path)
	if err != nil {
		return fmt.Errorf("проверка папки %s: %w", path, err)
	}
	if exists {
		return nil
	}

	if err := s.storage.CreateDirectory(ctx, path); err != nil {
		if again, err2 := s.storage.Exists(ctx, path); err2 == nil && again {
			return nil
		}
		return fmt.Errorf("создание папки %s: %w", path, err)
	}

	return nil
}
