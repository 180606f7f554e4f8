package storage

import (
	"context"
	"os"

	"github.com/studio-b12/gowebdav"
)

// WebDavStorage — хранилище заметок поверх WebDAV. Клиент gowebdav не
// принимает контекст, поэтому ctx здесь не используется; таймауты
// решает сам клиент.
type WebDavStorage struct {
	client *gowebdav.Client
}

func NewWebDavStorage(url, username, password string) *WebDavStorage {
	return &WebDavStorage{client: gowebdav.NewClient(url, username, password)}
}

func (s *WebDavStorage) Exists(ctx context.Context, remotePath string) (bool, error) {
	if _, err := s.client.Stat(remotePath); err != nil {
		if gowebdav.IsErrNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *WebDavStorage) CreateDirectory(ctx context.Context, remotePath string) error {
	return s.client.Mkdir(remotePath, 0o755)
}

// Upload загружает локальный файл по пути remotePath, перезаписывая
// существующий.
func (s *WebDavStorage) Upload(ctx context.Context, remotePath, localPath string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer file.Close()

	return s.client.WriteStream(remotePath, file, 0o644)
}

func (s *WebDavStorage) HealthCheck(ctx context.Context) error {
	return s.client.Connect()
}
