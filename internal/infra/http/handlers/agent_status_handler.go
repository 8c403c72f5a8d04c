package handlers

import (
	"net/http"

	"github.com/novaclaw/agency-api/internal/usecase"
)

type AgentStatusHandler struct {
	StatusUC *usecase.AgentStatusUseCase
}

func NewAgentStatusHandler(uc *usecase.AgentStatusUseCase) *AgentStatusHandler {
	return &AgentStatusHandler{StatusUC: uc}
}

// Handle serves GET /agent-status: read-only pipeline health for the site.
func (h *AgentStatusHandler) Handle(w http.ResponseWriter, r *http.Request) {
	output, err := h.StatusUC.Execute(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to fetch agent status")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    output,
	})
}
