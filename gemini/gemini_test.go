package gemini

import (
	"context"
	"testing"
	"time"

	"github.com/pet-paradise/backend/models"
)

// Without credentials every helper must return the fixed disabled-state
// message instead of failing.
func TestDisabledState(t *testing.T) {
	if Enabled() {
		t.Skip("GEMINI_API_KEY configured; disabled-state behavior not testable")
	}

	pet := &models.Pet{
		Name:      "Buddy",
		Species:   models.SpeciesDog,
		Breed:     "Golden Retriever",
		BirthDate: time.Now().AddDate(-5, 0, 0),
		Gender:    "Male",
	}
	ctx := context.Background()

	if got := CarePlan(ctx, pet); got != DisabledMessage {
		t.Errorf("CarePlan: expected disabled message, got %q", got)
	}
	if got := SymptomTriage(ctx, pet, "sneezing"); got != DisabledMessage {
		t.Errorf("SymptomTriage: expected disabled message, got %q", got)
	}
	resp := ResourceInfo(ctx, "how often should I bathe my dog")
	if resp.Text != DisabledMessage {
		t.Errorf("ResourceInfo: expected disabled message, got %q", resp.Text)
	}
	if len(resp.Sources) != 0 {
		t.Errorf("ResourceInfo: expected no sources when disabled, got %v", resp.Sources)
	}
}
