package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrLeadNotFound = errors.New("lead not found")

// Lead status values. Only "new" is written by this service; the rest
// are set by downstream sales tooling.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusConverted = "converted"
)

type Lead struct {
	ID        string         `json:"id"`
	Email     string         `json:"email"`
	Name      string         `json:"name"`
	Company   string         `json:"company,omitempty"`
	Source    string         `json:"source"`
	Status    string         `json:"status"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Factory
func NewLead(email, name, company, source string, metadata map[string]any) *Lead {
	if strings.TrimSpace(source) == "" {
		source = "website"
	}

	meta := make(map[string]any, len(metadata)+1)
	for k, v := range metadata {
		meta[k] = v
	}

	now := time.Now()
	return &Lead{
		ID:        uuid.New().String(),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Name:      strings.TrimSpace(name),
		Company:   strings.TrimSpace(company),
		Source:    source,
		Status:    LeadStatusNew,
		Metadata:  meta,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// StampSignup records when the lead first signed up. Set once on first
// insert; repeat visits must never touch it.
func (l *Lead) StampSignup() {
	if l.Metadata == nil {
		l.Metadata = make(map[string]any)
	}
	l.Metadata["signup_ts"] = time.Now().UTC().Format(time.RFC3339)
}

// MergeVisit folds a repeat submission into the existing record: new metadata
// wins key by key, revisit_count goes up, updated_at is refreshed. Never
// creates a second row for the same email.
func (l *Lead) MergeVisit(metadata map[string]any) {
	if l.Metadata == nil {
		l.Metadata = make(map[string]any)
	}
	for k, v := range metadata {
		l.Metadata[k] = v
	}

	l.Metadata["revisit_count"] = revisitCount(l.Metadata) + 1
	l.Metadata["last_visit_at"] = time.Now().UTC().Format(time.RFC3339)
	l.UpdatedAt = time.Now()
}

// revisitCount reads the counter back out of the metadata bag. After a
// JSON round-trip through the store the number comes back as float64.
func revisitCount(meta map[string]any) int {
	switch n := meta["revisit_count"].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

type LeadRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*Lead, error)
	Insert(ctx context.Context, lead *Lead) error
	Update(ctx context.Context, lead *Lead) error
	FindRecentUnconverted(ctx context.Context, limit int) ([]Lead, error)
}
