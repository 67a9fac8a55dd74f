package mysql

import (
	"context"
	"database/sql"
	"time"

	domain "github.com/prav-arch/telelog/internal/domain/logs"
)

type LogRepository struct {
	db *sql.DB
}

func NewLogRepository(db *sql.DB) *LogRepository {
	return &LogRepository{db: db}
}

// Save insert/update LogFile record
func (r *LogRepository) Save(ctx context.Context, l *domain.LogFile) error {
	const q = `
INSERT INTO telecom_logs
(id, filename, size, type, status, storage_url, snippet, uploaded_at)
VALUES (?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
 status=VALUES(status),
 storage_url=VALUES(storage_url), snippet=VALUES(snippet);
`
	filename := stringOrDash(l.Filename)
	status := stringOrDash(string(l.Status))
	uploaded := l.UploadedAt
	if uploaded.IsZero() {
		uploaded = time.Now()
	}

	_, err := r.db.ExecContext(ctx, q,
		l.ID, filename, l.Size, l.Kind, status,
		l.StorageURL, l.Snippet, uploaded,
	)
	return err
}

// Get by ID
func (r *LogRepository) Get(ctx context.Context, id domain.LogID) (*domain.LogFile, error) {
	const q = `
SELECT id, filename, size, type, status, storage_url, snippet, uploaded_at
FROM telecom_logs
WHERE id=? LIMIT 1;
`
	row := r.db.QueryRowContext(ctx, q, id)

	var l domain.LogFile
	if err := row.Scan(
		&l.ID, &l.Filename, &l.Size, &l.Kind, &l.Status,
		&l.StorageURL, &l.Snippet, &l.UploadedAt,
	); err != nil {
		return nil, err
	}
	return &l, nil
}

// List newest uploads first
func (r *LogRepository) List(ctx context.Context, limit int) ([]*domain.LogFile, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT id, filename, size, type, status, storage_url, snippet, uploaded_at
FROM telecom_logs
ORDER BY uploaded_at DESC LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLogRows(rows)
}

// UpdateStatus moves a log through its processing lifecycle
func (r *LogRepository) UpdateStatus(ctx context.Context, id domain.LogID, status domain.Status) error {
	const q = `UPDATE telecom_logs SET status=? WHERE id=?;`
	_, err := r.db.ExecContext(ctx, q, status, id)
	return err
}

// Search matches stored snippets and filenames against a plain query
func (r *LogRepository) Search(ctx context.Context, query string, limit int) ([]*domain.LogFile, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT id, filename, size, type, status, storage_url, snippet, uploaded_at
FROM telecom_logs
WHERE snippet LIKE CONCAT('%', ?, '%') OR filename LIKE CONCAT('%', ?, '%')
ORDER BY uploaded_at DESC LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, q, query, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLogRows(rows)
}

func scanLogRows(rows *sql.Rows) ([]*domain.LogFile, error) {
	var out []*domain.LogFile
	for rows.Next() {
		var l domain.LogFile
		if err := rows.Scan(
			&l.ID, &l.Filename, &l.Size, &l.Kind, &l.Status,
			&l.StorageURL, &l.Snippet, &l.UploadedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
