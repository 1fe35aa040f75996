package summary

import (
	"encoding/json"
	"fmt"
	"homefinder/pkg/domain"
	"strconv"
)

// SystemRole is sent as the system message of every request.
const SystemRole = "You are a knowledgeable real estate assistant in India"

const promptTemplate = `Based on the search results provided, analyze whether I can find properties within my desired budget in the specified locality and city. Include the following factors in your analysis:
	1.	Budget: %s
	2.	Locality: %s
	3.	City: %s
	4.	Search Results: %s

Provide a detailed response indicating if properties matching the budget are available. If available, mention the average price range and key features of those properties. If not, suggest nearby localities within the city that fit the user's budget.`

// BuildPrompt renders the analysis prompt. Results are embedded as a JSON
// array of {title, snippet, link} objects.
func BuildPrompt(results []domain.SearchResultItem, req domain.HouseholdRequirement) (string, error) {
	if results == nil {
		results = []domain.SearchResultItem{}
	}
	b, err := json.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("could not encode search results: %w", err)
	}

	return fmt.Sprintf(promptTemplate,
		strconv.FormatInt(req.Budget, 10), req.Locality, req.City, string(b)), nil
}
