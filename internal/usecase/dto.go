package usecase

import "github.com/novaclaw/agency-api/internal/entity"

type CaptureLeadInput struct {
	Email    string         `json:"email"`
	Name     string         `json:"name"`
	Company  string         `json:"company,omitempty"`
	Source   string         `json:"source,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type CaptureLeadOutput struct {
	Lead     *entity.Lead
	Revisit  bool
	Stored   bool
	Notified bool
	Message  string
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatInput struct {
	Messages []ChatMessage `json:"messages"`
}

type ChatUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Chat outcomes, used for metrics only.
const (
	ChatOutcomeCompleted = "completed"
	ChatOutcomeOffline   = "offline"
	ChatOutcomeFallback  = "fallback"
)

type ChatOutput struct {
	Message string     `json:"message"`
	Usage   *ChatUsage `json:"usage,omitempty"`
	Outcome string     `json:"-"`
}
