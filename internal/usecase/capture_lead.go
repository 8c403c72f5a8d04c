package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/novaclaw/agency-api/internal/entity"
	"github.com/novaclaw/agency-api/internal/infra/queue"
)

const (
	MsgLeadCaptured = "Lead captured successfully"
	MsgWelcomeBack  = "Welcome back! We already have your details."
)

// CaptureLeadUseCase runs the intake pipeline: persist, then notify, then
// audit-log, then publish. Only validation can fail the request; every
// collaborator is best-effort.
type CaptureLeadUseCase struct {
	Leads    entity.LeadRepositoryInterface
	Logs     entity.AgentLogRepositoryInterface
	Notifier NotifierService
	Events   LeadEventProducerInterface
}

func NewCaptureLeadUseCase(
	leads entity.LeadRepositoryInterface,
	logs entity.AgentLogRepositoryInterface,
	notifier NotifierService,
	events LeadEventProducerInterface,
) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{
		Leads:    leads,
		Logs:     logs,
		Notifier: notifier,
		Events:   events,
	}
}

func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*CaptureLeadOutput, error) {
	if validationErrors := ValidateCaptureLeadInput(input); len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: errMsg,
		}
	}

	lead := entity.NewLead(input.Email, input.Name, input.Company, input.Source, input.Metadata)

	out := &CaptureLeadOutput{
		Lead:    lead,
		Message: MsgLeadCaptured,
	}

	// 1. Persist (insert or merge). A broken store never fails the request.
	if uc.Leads == nil {
		log.Println("⚠️ Lead store not configured - lead accepted but not persisted")
	} else {
		uc.persist(ctx, lead, out)
	}

	// 2. Notify the operator. Fire-and-forget.
	if uc.Notifier != nil {
		if err := uc.Notifier.NotifyNewLead(out.Lead, out.Revisit); err != nil {
			log.Printf("⚠️ Lead notification failed for %s: %v", lead.Email, err)
		} else {
			out.Notified = true
		}
	}

	// 3. Audit log. Also fire-and-forget.
	if uc.Logs != nil {
		uc.appendAuditLog(ctx, out)
	}

	// 4. Lead event for downstream sales tooling, when a broker is wired.
	if uc.Events != nil {
		uc.publishEvent(ctx, out)
	}

	return out, nil
}

func (uc *CaptureLeadUseCase) persist(ctx context.Context, lead *entity.Lead, out *CaptureLeadOutput) {
	existing, err := uc.Leads.FindByEmail(ctx, lead.Email)
	switch {
	case err == nil:
		// Repeat visitor: merge into the existing row, never insert a second one.
		existing.MergeVisit(lead.Metadata)
		if lead.Name != "" {
			existing.Name = lead.Name
		}
		if lead.Company != "" {
			existing.Company = lead.Company
		}

		out.Lead = existing
		out.Revisit = true
		out.Message = MsgWelcomeBack

		if err := uc.Leads.Update(ctx, existing); err != nil {
			log.Printf("⚠️ Lead update failed for %s: %v", lead.Email, err)
			return
		}
		out.Stored = true

	case errors.Is(err, entity.ErrLeadNotFound):
		// First visit: the signup stamp belongs to this branch only.
		lead.StampSignup()

		// The lookup-then-insert pair is not atomic; two concurrent first
		// submissions can race. The unique index on email turns the loser
		// into an insert error absorbed right here.
		if err := uc.Leads.Insert(ctx, lead); err != nil {
			log.Printf("⚠️ Lead insert failed for %s: %v", lead.Email, err)
			return
		}
		out.Stored = true

	default:
		log.Printf("⚠️ Lead store unreachable, skipping persistence for %s: %v", lead.Email, err)
	}
}

func (uc *CaptureLeadUseCase) appendAuditLog(ctx context.Context, out *CaptureLeadOutput) {
	action := "new_lead_captured"
	if out.Revisit {
		action = "lead_revisited"
	}

	status := entity.LogStatusSuccess
	if !out.Stored {
		status = entity.LogStatusFailed
	}

	entry := entity.NewAgentLogEntry(
		entity.AgentLeadProcessor,
		action,
		status,
		map[string]any{"email": out.Lead.Email, "source": out.Lead.Source},
		map[string]any{"saved": out.Stored, "notified": out.Notified},
	)

	if err := uc.Logs.Append(ctx, entry); err != nil {
		log.Printf("⚠️ Agent log append failed: %v", err)
	}
}

func (uc *CaptureLeadUseCase) publishEvent(ctx context.Context, out *CaptureLeadOutput) {
	event := queue.EventLeadCaptured
	if out.Revisit {
		event = queue.EventLeadRevisited
	}

	payload := queue.LeadEventPayload{
		Event:      event,
		LeadID:     out.Lead.ID,
		Email:      out.Lead.Email,
		Name:       out.Lead.Name,
		Company:    out.Lead.Company,
		Source:     out.Lead.Source,
		CapturedAt: time.Now(),
	}

	if err := uc.Events.PublishLeadEvent(ctx, payload); err != nil {
		log.Printf("⚠️ Lead event publish failed: %v", err)
	}
}
