package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLeadDefaults(t *testing.T) {
	lead := NewLead("Ann@Example.com ", " Ann ", "", "", nil)

	assert.Equal(t, "ann@example.com", lead.Email)
	assert.Equal(t, "Ann", lead.Name)
	assert.Equal(t, "website", lead.Source)
	assert.Equal(t, LeadStatusNew, lead.Status)
	assert.NotEmpty(t, lead.ID)
	assert.NotContains(t, lead.Metadata, "signup_ts")
}

func TestStampSignup(t *testing.T) {
	lead := NewLead("ann@example.com", "Ann", "", "", nil)

	lead.StampSignup()

	assert.Contains(t, lead.Metadata, "signup_ts")
}

func TestMergeVisitIncrementsRevisitCount(t *testing.T) {
	lead := NewLead("ann@example.com", "Ann", "", "website", map[string]any{
		"business_type": "ecommerce",
	})

	lead.MergeVisit(map[string]any{"budget": "1k-5k"})

	assert.Equal(t, 1, lead.Metadata["revisit_count"])
	assert.Equal(t, "ecommerce", lead.Metadata["business_type"])
	assert.Equal(t, "1k-5k", lead.Metadata["budget"])
	assert.Contains(t, lead.Metadata, "last_visit_at")
}

func TestMergeVisitReadsCountAfterJSONRoundTrip(t *testing.T) {
	// JSONB numbers decode as float64
	lead := &Lead{
		Email:    "ann@example.com",
		Metadata: map[string]any{"revisit_count": float64(3)},
	}

	lead.MergeVisit(nil)

	assert.Equal(t, 4, lead.Metadata["revisit_count"])
}

func TestMergeVisitNewMetadataWins(t *testing.T) {
	lead := NewLead("ann@example.com", "Ann", "", "website", map[string]any{
		"budget": "1k-5k",
	})

	lead.MergeVisit(map[string]any{"budget": "5k-10k"})

	assert.Equal(t, "5k-10k", lead.Metadata["budget"])
}
