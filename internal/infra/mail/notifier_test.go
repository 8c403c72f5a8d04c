package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/novaclaw/agency-api/internal/entity"
)

func TestFormatLeadEmail(t *testing.T) {
	lead := &entity.Lead{
		Name:    "Ann",
		Email:   "ann@example.com",
		Company: "Acme BV",
		Source:  "website",
		Metadata: map[string]any{
			"business_type": "ecommerce",
			"business_goal": "meer leads",
			"budget":        "1k-5k",
			"gdpr_consent":  true,
		},
	}

	body := formatLeadEmail(lead, false)

	assert.Contains(t, body, "Nieuwe lead via NovaClaw website!")
	assert.Contains(t, body, "Naam: Ann")
	assert.Contains(t, body, "Bedrijf: Acme BV")
	assert.Contains(t, body, "Type bedrijf: ecommerce")
	assert.Contains(t, body, "Budget: 1k-5k")
	assert.Contains(t, body, "GDPR Consent: ✅ Ja")
}

func TestFormatLeadEmailMissingFields(t *testing.T) {
	lead := &entity.Lead{
		Name:   "Ann",
		Email:  "ann@example.com",
		Source: "website",
	}

	body := formatLeadEmail(lead, false)

	assert.Contains(t, body, "Bedrijf: Niet opgegeven")
	assert.Contains(t, body, "Type bedrijf: Niet opgegeven")
	assert.Contains(t, body, "GDPR Consent: ❌ Nee")
}

func TestFormatLeadEmailRevisit(t *testing.T) {
	lead := &entity.Lead{Name: "Ann", Email: "ann@example.com", Source: "website"}

	body := formatLeadEmail(lead, true)

	assert.Contains(t, body, "Terugkerende lead")
}

func TestLeadSubject(t *testing.T) {
	lead := &entity.Lead{Name: "Ann"}

	assert.Equal(t, "🚀 Nieuwe Lead: Ann - Particulier", leadSubject(lead, false))

	lead.Company = "Acme BV"
	assert.Equal(t, "🔁 Terugkerende Lead: Ann - Acme BV", leadSubject(lead, true))
}
