package summary_test

import (
	"homefinder/pkg/domain"
	"homefinder/pkg/summary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	req := domain.HouseholdRequirement{
		FamilySize:   3,
		Budget:       7_500_000,
		City:         "Kolkata",
		Locality:     "Newtown",
		PropertyType: domain.PropertyTypeFlat,
	}
	results := []domain.SearchResultItem{
		{Title: "2 BHK in Newtown", Snippet: "From ₹45 L", Link: "https://example.com/a"},
	}

	prompt, err := summary.BuildPrompt(results, req)
	require.NoError(t, err)
	require.Contains(t, prompt, "1.\tBudget: 7500000")
	require.Contains(t, prompt, "2.\tLocality: Newtown")
	require.Contains(t, prompt, "3.\tCity: Kolkata")
	require.Contains(t, prompt,
		`4.	Search Results: [{"title":"2 BHK in Newtown","snippet":"From ₹45 L","link":"https://example.com/a"}]`)
	require.Contains(t, prompt, "suggest nearby localities")
}

func TestBuildPrompt_NilResults(t *testing.T) {
	prompt, err := summary.BuildPrompt(nil, domain.HouseholdRequirement{Budget: 1_000_000})
	require.NoError(t, err)
	require.Contains(t, prompt, "Search Results: []")
}
