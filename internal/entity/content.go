package entity

import "context"

// Content pipeline states, written by the content tooling and only read here
// for the status dashboard.
const (
	ContentStatusDraft     = "draft"
	ContentStatusScheduled = "scheduled"
	ContentStatusPublished = "published"
	ContentStatusFailed    = "failed"
)

type ContentRepositoryInterface interface {
	// CountByStatusSince returns row counts per status for items created in
	// the given window.
	CountByStatusSince(ctx context.Context, sinceHours int) (map[string]int, error)
}
