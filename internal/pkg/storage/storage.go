package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where uploaded files land.
type FileStorage interface {
	// Save writes the content and returns the publicly reachable URL.
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
	// Delete removes a previously saved file. Missing files are not an error.
	Delete(ctx context.Context, filename string) error
}
