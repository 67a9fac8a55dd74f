package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	domain "github.com/prav-arch/telelog/internal/domain/analysis"
)

type ActivityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository { return &ActivityRepository{db: db} }

func (r *ActivityRepository) Save(ctx context.Context, a *domain.Activity) error {
	const q = `
INSERT INTO activities
  (type, description, actor, created_at)
VALUES (?,?,?,?)
`
	typ := dashIfEmpty(a.Type)
	actor := dashIfEmpty(a.Actor)
	msg := a.Description
	if strings.TrimSpace(msg) == "" {
		msg = "-"
	}
	created := a.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := r.db.ExecContext(ctx, q, typ, msg, actor, created)
	return err
}

func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]*domain.Activity, error) {
	if limit <= 0 {
		limit = 10
	}
	const q = `
SELECT id, type, description, actor, created_at
FROM activities
ORDER BY created_at DESC, id DESC
LIMIT ?;`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Activity
	for rows.Next() {
		var a domain.Activity
		var created time.Time
		if err := rows.Scan(&a.ID, &a.Type, &a.Description, &a.Actor, &created); err != nil {
			return nil, err
		}
		a.CreatedAt = created
		out = append(out, &a)
	}
	return out, rows.Err()
}

func dashIfEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
