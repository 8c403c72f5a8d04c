package mail

import (
	"fmt"
	"strings"
	"time"

	"github.com/novaclaw/agency-api/internal/entity"
	"github.com/novaclaw/agency-api/internal/infra/integration/resend"
)

// LeadNotifier sends the operator-facing "new lead" email through Resend.
type LeadNotifier struct {
	client *resend.Client
	to     string
}

func NewLeadNotifier(client *resend.Client, to string) *LeadNotifier {
	return &LeadNotifier{
		client: client,
		to:     to,
	}
}

func (n *LeadNotifier) NotifyNewLead(lead *entity.Lead, revisit bool) error {
	if n.to == "" {
		return fmt.Errorf("notification recipient not configured")
	}

	_, err := n.client.SendEmail(resend.SendEmailInput{
		To:      []string{n.to},
		Subject: leadSubject(lead, revisit),
		Text:    formatLeadEmail(lead, revisit),
	})
	if err != nil {
		return fmt.Errorf("send lead notification: %w", err)
	}

	return nil
}

func leadSubject(lead *entity.Lead, revisit bool) string {
	company := lead.Company
	if company == "" {
		company = "Particulier"
	}
	if revisit {
		return fmt.Sprintf("🔁 Terugkerende Lead: %s - %s", lead.Name, company)
	}
	return fmt.Sprintf("🚀 Nieuwe Lead: %s - %s", lead.Name, company)
}

// formatLeadEmail builds the plain-text body the operator reads. Content is
// Dutch, same as the rest of the outward-facing NovaClaw copy.
func formatLeadEmail(lead *entity.Lead, revisit bool) string {
	meta := lead.Metadata
	if meta == nil {
		meta = map[string]any{}
	}

	headline := "Nieuwe lead via NovaClaw website!"
	if revisit {
		headline = "Terugkerende lead via NovaClaw website!"
	}

	consent := "❌ Nee"
	if ok, _ := meta["gdpr_consent"].(bool); ok {
		consent = "✅ Ja"
	}

	lines := []string{
		headline,
		"",
		"📋 CONTACT GEGEVENS",
		"━━━━━━━━━━━━━━━━━━━",
		"Naam: " + lead.Name,
		"Email: " + lead.Email,
		"Bedrijf: " + orNiet(lead.Company),
		"",
		"📊 BUSINESS INFO",
		"━━━━━━━━━━━━━━━━━━━",
		"Type bedrijf: " + orNiet(metaString(meta, "business_type")),
		"Doel: " + orNiet(metaString(meta, "business_goal")),
		"Budget: " + orNiet(metaString(meta, "budget")),
		"",
		"⏰ DETAILS",
		"━━━━━━━━━━━━━━━━━━━",
		"Bron: " + lead.Source,
		"Tijdstip: " + time.Now().Format("02-01-2006 15:04"),
		"GDPR Consent: " + consent,
		"",
		"---",
		"Bekijk alle leads in je dashboard.",
	}

	return strings.Join(lines, "\n")
}

func metaString(meta map[string]any, key string) string {
	s, _ := meta[key].(string)
	return s
}

func orNiet(s string) string {
	if s == "" {
		return "Niet opgegeven"
	}
	return s
}
