package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Agent types that show up in the audit trail. The lead processor is the
// only one this service writes; the content agents log through their own
// tooling into the same table.
const (
	AgentLeadProcessor = "lead_processor"
	AgentScraper       = "scraper"
	AgentGenerator     = "generator"
	AgentCritic        = "critic"
	AgentDistributor   = "distributor"
)

const (
	LogStatusRunning = "running"
	LogStatusSuccess = "success"
	LogStatusFailed  = "failed"
)

// AgentLogEntry is one append-only audit record per side-effect attempt.
// Entries are never updated or deleted.
type AgentLogEntry struct {
	ID         string         `json:"id"`
	AgentType  string         `json:"agent_type"`
	Action     string         `json:"action"`
	Status     string         `json:"status"`
	Input      map[string]any `json:"input"`
	Output     map[string]any `json:"output"`
	Error      string         `json:"error,omitempty"`
	DurationMs int64          `json:"duration_ms,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

func NewAgentLogEntry(agentType, action, status string, input, output map[string]any) *AgentLogEntry {
	return &AgentLogEntry{
		ID:        uuid.New().String(),
		AgentType: agentType,
		Action:    action,
		Status:    status,
		Input:     input,
		Output:    output,
		CreatedAt: time.Now(),
	}
}

type AgentLogRepositoryInterface interface {
	Append(ctx context.Context, entry *AgentLogEntry) error
	FindRecent(ctx context.Context, limit int) ([]AgentLogEntry, error)
}
