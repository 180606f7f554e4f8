package tg

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// FileDownloader скачивает файлы Telegram по file_id.
type FileDownloader struct {
	api        *tgbotapi.BotAPI
	httpClient *http.Client
}

func NewFileDownloader(api *tgbotapi.BotAPI) *FileDownloader {
	return &FileDownloader{
		api:        api,
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
}

func (d *FileDownloader) DownloadFile(ctx context.Context, fileID, destPath string) error {
	file, err := d.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return fmt.Errorf("get file %s: %w", fileID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(d.api.Token), nil)
	if err != nil {
		return err
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("скачивание файла %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("скачивание файла %s: HTTP %d", fileID, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("запись файла %s: %w", destPath, err)
	}

	return nil
}
