package domain

// DerivedFootprint is the floor area computed from a submission.
type DerivedFootprint struct {
	TotalBedroomArea  float64 `json:"totalBedroomArea"`
	TotalBathroomArea float64 `json:"totalBathroomArea"`
	// TotalCarpetArea is the sum of all usable interior areas.
	TotalCarpetArea float64 `json:"totalCarpetArea"`
	// SuperBuiltUpArea is TotalCarpetArea scaled by Multiplier to account for
	// walls and a share of common areas.
	SuperBuiltUpArea float64 `json:"superBuiltUpArea"`
	Multiplier       float64 `json:"multiplier"`
}
