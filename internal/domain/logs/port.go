package logs

import (
	"context"
	"io"
)

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, l *LogFile) error
	Get(ctx context.Context, id LogID) (*LogFile, error)
	List(ctx context.Context, limit int) ([]*LogFile, error)
	UpdateStatus(ctx context.Context, id LogID, status Status) error

	// Search matches stored content snippets against a plain query.
	Search(ctx context.Context, query string, limit int) ([]*LogFile, error)
}

// FileStore port (interface untuk penyimpanan file upload)
type FileStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}
