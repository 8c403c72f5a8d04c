package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/novaclaw/agency-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	query := `
		SELECT id, email, name, company, source, status, metadata, created_at, updated_at
		FROM leads
		WHERE email = $1
	`

	var lead entity.Lead
	var company sql.NullString
	var metadata []byte

	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&lead.ID,
		&lead.Email,
		&lead.Name,
		&company,
		&lead.Source,
		&lead.Status,
		&metadata,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find lead by email: %w", err)
	}

	lead.Company = company.String
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &lead.Metadata); err != nil {
			return nil, fmt.Errorf("decode lead metadata: %w", err)
		}
	}

	return &lead, nil
}

func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	metadata, err := json.Marshal(lead.Metadata)
	if err != nil {
		return fmt.Errorf("encode lead metadata: %w", err)
	}

	query := `
		INSERT INTO leads (id, email, name, company, source, status, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Email,
		lead.Name,
		nullString(lead.Company),
		lead.Source,
		lead.Status,
		metadata,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}

	return nil
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	metadata, err := json.Marshal(lead.Metadata)
	if err != nil {
		return fmt.Errorf("encode lead metadata: %w", err)
	}

	query := `
		UPDATE leads
		SET name = $2, company = $3, metadata = $4, updated_at = $5
		WHERE id = $1
	`

	_, err = r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		nullString(lead.Company),
		metadata,
		lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}

	return nil
}

func (r *LeadRepository) FindRecentUnconverted(ctx context.Context, limit int) ([]entity.Lead, error) {
	query := `
		SELECT id, email, name, company, source, status, metadata, created_at, updated_at
		FROM leads
		WHERE status <> $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.DB.QueryContext(ctx, query, entity.LeadStatusConverted, limit)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		var lead entity.Lead
		var company sql.NullString
		var metadata []byte

		if err := rows.Scan(
			&lead.ID,
			&lead.Email,
			&lead.Name,
			&company,
			&lead.Source,
			&lead.Status,
			&metadata,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}

		lead.Company = company.String
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &lead.Metadata); err != nil {
				return nil, fmt.Errorf("decode lead metadata: %w", err)
			}
		}

		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
