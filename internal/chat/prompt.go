package chat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/afford"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/dataset"
)

// UserContext is the optional search context a caller attaches to a chat
// request so the advisor can personalize its answers.
type UserContext struct {
	Income       float64 `json:"income"`
	Bedrooms     int     `json:"bedrooms"`
	Workplace    string  `json:"workplace"`
	Sharing      int     `json:"sharing"`
	ShareBedroom bool    `json:"shareBedroom"`
}

const preamble = `You are RentSmart, a Sydney rental market advisor. You help people find
suburbs they can afford. Base every figure you quote on the reference data
below; say so when the data has no answer. Rents are weekly Australian
dollars. Keep answers short and practical.`

// BuildSystemPrompt assembles the fixed preamble, the dataset digest, and an
// optional personalized block for the caller's income and household shape.
func BuildSystemPrompt(data *dataset.Data, userCtx *UserContext) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n\n=== REFERENCE DATA ===\n")
	b.WriteString(data.Digest())

	if userCtx != nil && userCtx.Income > 0 {
		b.WriteString("\n=== THIS USER ===\n")
		fmt.Fprintf(&b, "Weekly income: $%.0f.", userCtx.Income)
		if userCtx.Bedrooms > 0 {
			fmt.Fprintf(&b, " Wants %d bedroom(s).", userCtx.Bedrooms)
		}
		if userCtx.Sharing > 1 {
			fmt.Fprintf(&b, " Sharing with a group of %d.", userCtx.Sharing)
			if userCtx.ShareBedroom {
				b.WriteString(" The pair shares one bedroom.")
			}
		}
		if userCtx.Workplace != "" {
			fmt.Fprintf(&b, " Works near %s.", userCtx.Workplace)
		}
		b.WriteString("\n")
		b.WriteString(shortlist(data, userCtx))
	}

	return b.String()
}

// shortlist computes the user's most affordable suburbs with the same rent
// resolution the recommendation engine uses.
func shortlist(data *dataset.Data, userCtx *UserContext) string {
	sharing := userCtx.Sharing
	if sharing < 1 {
		sharing = 1
	}

	type entry struct {
		name   string
		rent   float64
		stress float64
	}
	var entries []entry
	for i := range data.Suburbs {
		s := &data.Suburbs[i]
		rent := afford.ResolveSharedRent(s, userCtx.Bedrooms, sharing, userCtx.ShareBedroom)
		if rent == nil {
			continue
		}
		stress := afford.RentStress(userCtx.Income, rent.PerPersonRent)
		if stress > 100 {
			continue
		}
		entries = append(entries, entry{name: fmt.Sprintf("%s (%s)", s.Name, s.Postcode), rent: rent.PerPersonRent, stress: stress})
	}
	if len(entries) == 0 {
		return "No suburb in the dataset fits this income.\n"
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].stress < entries[j].stress })
	if len(entries) > 8 {
		entries = entries[:8]
	}

	var b strings.Builder
	b.WriteString("Most affordable suburbs for this user:\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s: $%.0f/wk per person, %.1f%% of income (%s)\n",
			e.name, e.rent, e.stress, afford.Rating(e.stress))
	}
	return b.String()
}
