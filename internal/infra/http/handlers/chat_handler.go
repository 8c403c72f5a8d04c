package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/novaclaw/agency-api/internal/infra/http/middleware"
	"github.com/novaclaw/agency-api/internal/usecase"
)

type ChatHandler struct {
	ChatUC *usecase.ChatUseCase
}

func NewChatHandler(uc *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{ChatUC: uc}
}

// Handle serves POST /chat. Provider trouble never surfaces as a non-2xx:
// the widget degrades to an apology instead of breaking.
func (h *ChatHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.ChatInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if validationErrors := usecase.ValidateChatInput(input); len(validationErrors) > 0 {
		writeValidationErrors(w, validationErrors)
		return
	}

	output := h.ChatUC.Execute(r.Context(), input)

	middleware.RecordChatRequest(output.Outcome)
	if output.Outcome == usecase.ChatOutcomeFallback {
		middleware.RecordIntegrationError("anthropic")
	}

	writeJSON(w, http.StatusOK, output)
}
