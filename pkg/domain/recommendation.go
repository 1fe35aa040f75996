package domain

// SearchResultItem is one web search hit.
type SearchResultItem struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// Outcome tells how a pipeline run ended when it did not fail.
type Outcome string

const (
	// OutcomeRecommendation means the search returned hits and a summary was produced.
	OutcomeRecommendation Outcome = "RECOMMENDATION"
	// OutcomeNoResults means the search returned nothing and no summary was requested.
	OutcomeNoResults Outcome = "NO_RESULTS"
)

// NoResultsHint is shown to the user when the search came back empty.
const NoResultsHint = "No search results found. Try refining your preferences."

// Recommendation is the result of one pipeline run.
type Recommendation struct {
	Outcome   Outcome            `json:"outcome"`
	Footprint DerivedFootprint   `json:"footprint"`
	Query     string             `json:"query"`
	Results   []SearchResultItem `json:"results"`
	// Summary is the language model's answer, empty unless Outcome is
	// OutcomeRecommendation.
	Summary string `json:"summary,omitempty"`
	// Hint is set when Outcome is OutcomeNoResults.
	Hint string `json:"hint,omitempty"`
}
