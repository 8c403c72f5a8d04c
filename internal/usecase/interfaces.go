package usecase

import (
	"context"

	"github.com/novaclaw/agency-api/internal/entity"
	"github.com/novaclaw/agency-api/internal/infra/integration/anthropic"
	"github.com/novaclaw/agency-api/internal/infra/queue"
)

type NotifierService interface {
	NotifyNewLead(lead *entity.Lead, revisit bool) error
}

type ChatCompleterInterface interface {
	CreateMessage(ctx context.Context, input anthropic.CreateMessageInput) (*anthropic.MessageOutput, error)
}

type LeadEventProducerInterface interface {
	PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error
}
