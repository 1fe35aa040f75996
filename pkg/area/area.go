// Package area derives carpet and super built-up areas from room sizes.
package area

import "homefinder/pkg/domain"

// DefaultSuperBuiltUpMultiplier converts carpet area into super built-up area.
// It approximates wall thickness plus the apartment's share of common areas.
const DefaultSuperBuiltUpMultiplier = 1.50

// Sum adds up sizes. An empty list sums to zero.
func Sum(sizes []float64) float64 {
	var total float64
	for _, s := range sizes {
		total += s
	}

	return total
}

// Compute returns the footprint for the given rooms and breakdown. A
// non-positive multiplier is replaced by DefaultSuperBuiltUpMultiplier.
func Compute(rooms domain.RoomSizeList, breakdown domain.AreaBreakdown, multiplier float64) domain.DerivedFootprint {
	if multiplier <= 0 {
		multiplier = DefaultSuperBuiltUpMultiplier
	}

	bedrooms := Sum(rooms.BedroomSizes)
	bathrooms := Sum(rooms.BathroomSizes)
	carpet := bedrooms + bathrooms + breakdown.KitchenSize + breakdown.LivingArea + breakdown.OtherAreas

	return domain.DerivedFootprint{
		TotalBedroomArea:  bedrooms,
		TotalBathroomArea: bathrooms,
		TotalCarpetArea:   carpet,
		SuperBuiltUpArea:  carpet * multiplier,
		Multiplier:        multiplier,
	}
}
