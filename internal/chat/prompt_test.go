package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/dataset"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/models"
)

func fp(v float64) *float64 { return &v }

func promptData() *dataset.Data {
	return dataset.New([]models.SuburbRecord{
		{SuburbKey: "auburn-2144", Postcode: "2144", Name: "Auburn",
			Rent1Bed: fp(420), Rent2Bed: fp(520), RentOverall: fp(530), TotalBonds: 3120},
		{SuburbKey: "bondi-2026", Postcode: "2026", Name: "Bondi",
			Rent2Bed: fp(1050), RentOverall: fp(1050), TotalBonds: 2310},
	}, nil, nil)
}

func TestBuildSystemPromptWithoutContext(t *testing.T) {
	prompt := BuildSystemPrompt(promptData(), nil)

	assert.Contains(t, prompt, "RentSmart")
	assert.Contains(t, prompt, "REFERENCE DATA")
	assert.Contains(t, prompt, "Auburn (2144)")
	assert.NotContains(t, prompt, "THIS USER")
}

func TestBuildSystemPromptPersonalized(t *testing.T) {
	prompt := BuildSystemPrompt(promptData(), &UserContext{
		Income:    1200,
		Bedrooms:  2,
		Workplace: "Sydney",
	})

	assert.Contains(t, prompt, "THIS USER")
	assert.Contains(t, prompt, "Weekly income: $1200")
	assert.Contains(t, prompt, "Works near Sydney")
	// Auburn's 2-bed at $520 on $1200/wk is affordable; Bondi's $1050 is not
	assert.Contains(t, prompt, "Most affordable suburbs for this user")
	assert.Contains(t, prompt, "Auburn (2144): $520/wk per person, 43.3% of income")
}

func TestBuildSystemPromptNoFit(t *testing.T) {
	prompt := BuildSystemPrompt(promptData(), &UserContext{Income: 300, Bedrooms: 2})
	assert.Contains(t, prompt, "No suburb in the dataset fits this income")
}
