package area_test

import (
	"homefinder/pkg/area"
	"homefinder/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		rooms      domain.RoomSizeList
		breakdown  domain.AreaBreakdown
		multiplier float64
		want       domain.DerivedFootprint
	}{
		{
			name: "two bedrooms one bathroom",
			rooms: domain.RoomSizeList{
				BedroomSizes:  []float64{120, 150},
				BathroomSizes: []float64{80},
			},
			breakdown:  domain.AreaBreakdown{KitchenSize: 150, LivingArea: 300, OtherAreas: 50},
			multiplier: area.DefaultSuperBuiltUpMultiplier,
			want: domain.DerivedFootprint{
				TotalBedroomArea:  270,
				TotalBathroomArea: 80,
				TotalCarpetArea:   850,
				SuperBuiltUpArea:  1275,
				Multiplier:        1.5,
			},
		},
		{
			name: "fractional sizes are kept",
			rooms: domain.RoomSizeList{
				BedroomSizes:  []float64{100.5},
				BathroomSizes: []float64{50},
			},
			breakdown:  domain.AreaBreakdown{KitchenSize: 100, LivingArea: 100, OtherAreas: 4.5},
			multiplier: 1.5,
			want: domain.DerivedFootprint{
				TotalBedroomArea:  100.5,
				TotalBathroomArea: 50,
				TotalCarpetArea:   355,
				SuperBuiltUpArea:  532.5,
				Multiplier:        1.5,
			},
		},
		{
			name:       "empty lists",
			breakdown:  domain.AreaBreakdown{KitchenSize: 100, LivingArea: 200},
			multiplier: 1.25,
			want: domain.DerivedFootprint{
				TotalCarpetArea:  300,
				SuperBuiltUpArea: 375,
				Multiplier:       1.25,
			},
		},
		{
			name:       "non-positive multiplier falls back to default",
			breakdown:  domain.AreaBreakdown{KitchenSize: 100},
			multiplier: 0,
			want: domain.DerivedFootprint{
				TotalCarpetArea:  100,
				SuperBuiltUpArea: 150,
				Multiplier:       area.DefaultSuperBuiltUpMultiplier,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := area.Compute(tt.rooms, tt.breakdown, tt.multiplier)
			require.InDelta(t, tt.want.TotalBedroomArea, got.TotalBedroomArea, 1e-9)
			require.InDelta(t, tt.want.TotalBathroomArea, got.TotalBathroomArea, 1e-9)
			require.InDelta(t, tt.want.TotalCarpetArea, got.TotalCarpetArea, 1e-9)
			require.InDelta(t, tt.want.SuperBuiltUpArea, got.SuperBuiltUpArea, 1e-9)
			require.InDelta(t, tt.want.Multiplier, got.Multiplier, 1e-9)
		})
	}
}

func TestCompute_Linear(t *testing.T) {
	rooms := domain.RoomSizeList{BedroomSizes: []float64{120, 150}, BathroomSizes: []float64{80}}
	breakdown := domain.AreaBreakdown{KitchenSize: 150, LivingArea: 300, OtherAreas: 50}
	base := area.Compute(rooms, breakdown, 1.5)

	// growing any input by d grows carpet by d and super built-up by 1.5*d
	const d = 10.0
	grown := []struct {
		name      string
		rooms     domain.RoomSizeList
		breakdown domain.AreaBreakdown
	}{
		{
			name:      "bedroom",
			rooms:     domain.RoomSizeList{BedroomSizes: []float64{120 + d, 150}, BathroomSizes: []float64{80}},
			breakdown: breakdown,
		},
		{
			name:      "bathroom",
			rooms:     domain.RoomSizeList{BedroomSizes: []float64{120, 150}, BathroomSizes: []float64{80 + d}},
			breakdown: breakdown,
		},
		{
			name:      "kitchen",
			rooms:     rooms,
			breakdown: domain.AreaBreakdown{KitchenSize: 150 + d, LivingArea: 300, OtherAreas: 50},
		},
		{
			name:      "living",
			rooms:     rooms,
			breakdown: domain.AreaBreakdown{KitchenSize: 150, LivingArea: 300 + d, OtherAreas: 50},
		},
		{
			name:      "other",
			rooms:     rooms,
			breakdown: domain.AreaBreakdown{KitchenSize: 150, LivingArea: 300, OtherAreas: 50 + d},
		},
	}

	for _, tt := range grown {
		t.Run(tt.name, func(t *testing.T) {
			got := area.Compute(tt.rooms, tt.breakdown, 1.5)
			require.InDelta(t, base.TotalCarpetArea+d, got.TotalCarpetArea, 1e-9)
			require.InDelta(t, base.SuperBuiltUpArea+1.5*d, got.SuperBuiltUpArea, 1e-9)
		})
	}
}

func TestCompute_Deterministic(t *testing.T) {
	rooms := domain.RoomSizeList{BedroomSizes: []float64{110, 140, 200}, BathroomSizes: []float64{60, 70}}
	breakdown := domain.AreaBreakdown{KitchenSize: 120, LivingArea: 250, OtherAreas: 0}

	first := area.Compute(rooms, breakdown, 1.5)
	for range 10 {
		require.Equal(t, first, area.Compute(rooms, breakdown, 1.5))
	}
	require.GreaterOrEqual(t, first.SuperBuiltUpArea, first.TotalCarpetArea)
}
