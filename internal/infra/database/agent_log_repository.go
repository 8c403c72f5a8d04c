package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/novaclaw/agency-api/internal/entity"
)

type AgentLogRepository struct {
	DB *sql.DB
}

func NewAgentLogRepository(db *sql.DB) *AgentLogRepository {
	return &AgentLogRepository{DB: db}
}

// Append writes one audit record. The table is insert-only.
func (r *AgentLogRepository) Append(ctx context.Context, entry *entity.AgentLogEntry) error {
	input, err := json.Marshal(entry.Input)
	if err != nil {
		return fmt.Errorf("encode log input: %w", err)
	}
	output, err := json.Marshal(entry.Output)
	if err != nil {
		return fmt.Errorf("encode log output: %w", err)
	}

	query := `
		INSERT INTO agent_logs (id, agent_type, action, status, input, output, error, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.DB.ExecContext(ctx, query,
		entry.ID,
		entry.AgentType,
		entry.Action,
		entry.Status,
		input,
		output,
		nullString(entry.Error),
		entry.DurationMs,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append agent log: %w", err)
	}

	return nil
}

func (r *AgentLogRepository) FindRecent(ctx context.Context, limit int) ([]entity.AgentLogEntry, error) {
	query := `
		SELECT id, agent_type, action, status, input, output, COALESCE(error, ''), duration_ms, created_at
		FROM agent_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list agent logs: %w", err)
	}
	defer rows.Close()

	var entries []entity.AgentLogEntry
	for rows.Next() {
		var entry entity.AgentLogEntry
		var input, output []byte

		if err := rows.Scan(
			&entry.ID,
			&entry.AgentType,
			&entry.Action,
			&entry.Status,
			&input,
			&output,
			&entry.Error,
			&entry.DurationMs,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan agent log: %w", err)
		}

		if len(input) > 0 {
			if err := json.Unmarshal(input, &entry.Input); err != nil {
				return nil, fmt.Errorf("decode agent log input: %w", err)
			}
		}
		if len(output) > 0 {
			if err := json.Unmarshal(output, &entry.Output); err != nil {
				return nil, fmt.Errorf("decode agent log output: %w", err)
			}
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
