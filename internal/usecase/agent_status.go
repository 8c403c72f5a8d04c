package usecase

import (
	"context"
	"time"

	"github.com/novaclaw/agency-api/internal/entity"
)

const (
	statusLogWindow    = 10 // entries considered per health snapshot
	contentWindowHours = 24
)

var statusAgentTypes = []string{
	entity.AgentLeadProcessor,
	entity.AgentScraper,
	entity.AgentGenerator,
	entity.AgentCritic,
	entity.AgentDistributor,
}

type AgentHealth struct {
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	LastRun     *time.Time `json:"lastRun"`
	SuccessRate float64    `json:"successRate"`
}

type ContentStats struct {
	Published int `json:"published"`
	Scheduled int `json:"scheduled"`
	Draft     int `json:"draft"`
	Failed    int `json:"failed"`
}

type AgentStatusOutput struct {
	Agents     []AgentHealth          `json:"agents"`
	Content    ContentStats           `json:"content"`
	RecentLogs []entity.AgentLogEntry `json:"recentLogs"`
}

// AgentStatusUseCase derives pipeline health from the append-only audit log
// plus the 24h content pipeline counts. Read-only.
type AgentStatusUseCase struct {
	Logs    entity.AgentLogRepositoryInterface
	Content entity.ContentRepositoryInterface
}

func NewAgentStatusUseCase(logs entity.AgentLogRepositoryInterface, content entity.ContentRepositoryInterface) *AgentStatusUseCase {
	return &AgentStatusUseCase{Logs: logs, Content: content}
}

func (uc *AgentStatusUseCase) Execute(ctx context.Context) (*AgentStatusOutput, error) {
	if uc.Logs == nil {
		return nil, &TechnicalError{
			Code:    "STORE_NOT_CONFIGURED",
			Message: "agent log store not configured",
		}
	}

	logs, err := uc.Logs.FindRecent(ctx, statusLogWindow)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to read agent logs: " + err.Error(),
		}
	}

	out := &AgentStatusOutput{
		Agents:     agentHealth(logs),
		RecentLogs: recentSlice(logs, 5),
	}

	if uc.Content != nil {
		counts, err := uc.Content.CountByStatusSince(ctx, contentWindowHours)
		if err != nil {
			return nil, &TechnicalError{
				Code:    "DATABASE_ERROR",
				Message: "failed to read content stats: " + err.Error(),
			}
		}
		out.Content = ContentStats{
			Published: counts[entity.ContentStatusPublished],
			Scheduled: counts[entity.ContentStatusScheduled],
			Draft:     counts[entity.ContentStatusDraft],
			Failed:    counts[entity.ContentStatusFailed],
		}
	}

	return out, nil
}

func agentHealth(logs []entity.AgentLogEntry) []AgentHealth {
	health := make([]AgentHealth, 0, len(statusAgentTypes))

	for _, agentType := range statusAgentTypes {
		var agentLogs []entity.AgentLogEntry
		for _, l := range logs {
			if l.AgentType == agentType {
				agentLogs = append(agentLogs, l)
			}
		}

		h := AgentHealth{Type: agentType, Status: "idle"}
		if len(agentLogs) > 0 {
			// FindRecent returns newest first.
			last := agentLogs[0]
			h.Status = last.Status
			h.LastRun = &last.CreatedAt

			succeeded := 0
			for _, l := range agentLogs {
				if l.Status == entity.LogStatusSuccess {
					succeeded++
				}
			}
			h.SuccessRate = float64(succeeded) / float64(len(agentLogs)) * 100
		}

		health = append(health, h)
	}

	return health
}

func recentSlice(logs []entity.AgentLogEntry, n int) []entity.AgentLogEntry {
	if len(logs) > n {
		return logs[:n]
	}
	return logs
}
