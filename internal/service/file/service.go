package file

import (
	"context"
	"errors"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/worktrack/timeclock-backend-go/internal/pkg/storage"
)

var ErrUnsupportedFileType = errors.New("Unsupported file type")

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".doc":  true,
	".docx": true,
}

// Service stores uploaded sick documents under random filenames.
type Service struct {
	storage storage.FileStorage
}

func NewFileService(fs storage.FileStorage) *Service {
	return &Service{storage: fs}
}

func (s *Service) SaveSickDocument(ctx context.Context, filename string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedFileType
	}

	return s.storage.Save(ctx, uuid.NewString()+ext, content)
}

// DeleteSickDocument removes a document previously stored by
// SaveSickDocument, identified by the URL Save returned.
func (s *Service) DeleteSickDocument(ctx context.Context, url string) error {
	return s.storage.Delete(ctx, path.Base(url))
}
