package database

import (
	"context"
	"database/sql"
	"fmt"
)

// ContentRepository only reads the content_calendar table; the content
// agents own the writes.
type ContentRepository struct {
	DB *sql.DB
}

func NewContentRepository(db *sql.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) CountByStatusSince(ctx context.Context, sinceHours int) (map[string]int, error) {
	query := `
		SELECT status, COUNT(*)
		FROM content_calendar
		WHERE created_at >= NOW() - make_interval(hours => $1)
		GROUP BY status
	`

	rows, err := r.DB.QueryContext(ctx, query, sinceHours)
	if err != nil {
		return nil, fmt.Errorf("count content by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan content count: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}
