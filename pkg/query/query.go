// Package query renders the natural-language web search query for a derived
// footprint.
package query

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatArea renders an area in its shortest round-trip form with at least
// one decimal place, e.g. 1275 -> "1275.0" and 1282.5 -> "1282.5".
func FormatArea(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}

	return s
}

// Build returns the search query for the given property type, location and
// super built-up area. Free text is inserted as is.
func Build(propertyType, locality, city string, superBuiltUpArea float64) string {
	return fmt.Sprintf(
		"What is the price range of affordable %ss in %s, %s with a super built-up area of approximately %s sq ft.",
		strings.ToLower(propertyType), locality, city, FormatArea(superBuiltUpArea))
}
