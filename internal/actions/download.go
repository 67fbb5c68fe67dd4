package actions

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/muurk/clipbridge/internal/logging"
)

// Download file properties.
const (
	DownloadFileName = "clipboard-content.txt"
	DownloadMIMEType = "text/plain"
)

// Downloader is the Download action.
type Downloader struct {
	Dir string
}

// NewDownloader creates a Downloader writing into dir.
func NewDownloader(dir string) *Downloader {
	return &Downloader{Dir: dir}
}

// Path returns where Save writes the file.
func (d *Downloader) Path() string {
	return filepath.Join(d.Dir, DownloadFileName)
}

// Save writes text, byte for byte, to clipboard-content.txt and returns its
// path. The content is staged in a temporary file that is released before
// Save returns, whether it was renamed into place or not.
func (d *Downloader) Save(text string) (string, error) {
	if text == "" {
		return "", emptyError("download")
	}

	path := d.Path()
	err := d.write(path, text)
	logging.LogBestEffort("download", err,
		zap.String("path", path),
		zap.String("mime", DownloadMIMEType),
		zap.Int("bytes", len(text)),
	)
	if err != nil {
		return "", platformError("download", "could not save "+DownloadFileName, err)
	}

	logging.Info("Document downloaded", zap.String("path", path))
	return path, nil
}

func (d *Downloader) write(path, text string) (err error) {
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create download directory: %w", err)
	}

	tmp, err := os.CreateTemp(d.Dir, "."+DownloadFileName+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set file permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move file into place: %w", err)
	}
	return nil
}
