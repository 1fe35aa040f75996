// Package collector turns raw form, API or CLI input into a validated
// domain.Submission.
package collector

import (
	"errors"
	"fmt"
	"homefinder/internal/config"
	"homefinder/pkg/domain"
	"homefinder/pkg/serrors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Bounds limits what a submission may contain. Room counts are bounded by
// MaxRooms; every size is bounded inclusively by its Min/Max pair.
type Bounds struct {
	MinFamilySize int
	MinBudget     int64
	// BudgetStep is advertised to the form only; it is not enforced.
	BudgetStep int64
	MaxRooms   int

	MinBedroom, MaxBedroom   float64
	MinBathroom, MaxBathroom float64
	MinKitchen, MaxKitchen   float64
	MinLiving, MaxLiving     float64
	MinOther, MaxOther       float64
}

// DefaultBounds returns the stock bounds of the requirement form.
func DefaultBounds() Bounds {
	return Bounds{
		MinFamilySize: 1,
		MinBudget:     1_000_000,
		BudgetStep:    50_000,
		MaxRooms:      10,
		MinBedroom:    100, MaxBedroom: 250,
		MinBathroom: 50, MaxBathroom: 150,
		MinKitchen: 100, MaxKitchen: 250,
		MinLiving: 100, MaxLiving: 450,
		MinOther: 0, MaxOther: 500,
	}
}

// NewBounds reads Bounds from the application config.
func NewBounds(cfg *config.Config) Bounds {
	b := cfg.Bounds

	return Bounds{
		MinFamilySize: b.MinFamilySize,
		MinBudget:     b.MinBudget,
		BudgetStep:    b.BudgetStep,
		MaxRooms:      b.MaxRooms,
		MinBedroom:    b.MinBedroom, MaxBedroom: b.MaxBedroom,
		MinBathroom: b.MinBathroom, MaxBathroom: b.MaxBathroom,
		MinKitchen: b.MinKitchen, MaxKitchen: b.MaxKitchen,
		MinLiving: b.MinLiving, MaxLiving: b.MaxLiving,
		MinOther: b.MinOther, MaxOther: b.MaxOther,
	}
}

// Input is the raw, unvalidated requirement form. Struct tags cover presence;
// numeric ranges come from Bounds.
type Input struct {
	FamilySize    int       `json:"familySize"`
	Budget        int64     `json:"budget"`
	City          string    `json:"city"          validate:"required"`
	Locality      string    `json:"locality"      validate:"required"`
	PropertyType  string    `json:"propertyType"  validate:"required"`
	BedroomSizes  []float64 `json:"bedroomSizes"  validate:"min=1"`
	BathroomSizes []float64 `json:"bathroomSizes" validate:"min=1"`
	KitchenSize   float64   `json:"kitchenSize"`
	LivingArea    float64   `json:"livingArea"`
	OtherAreas    float64   `json:"otherAreas"`
}

// Collector validates Input against Bounds. It is safe for concurrent use.
type Collector struct {
	bounds   Bounds
	validate *validator.Validate
}

// New constructs a Collector enforcing bounds.
func New(bounds Bounds) *Collector {
	return &Collector{
		bounds:   bounds,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Bounds returns the bounds the collector enforces.
func (c *Collector) Bounds() Bounds { return c.bounds }

// Collect validates in and returns an immutable submission. Every violation is
// reported in a single serrors.ErrBadRequest error.
func (c *Collector) Collect(in Input) (domain.Submission, error) {
	in.City = strings.TrimSpace(in.City)
	in.Locality = strings.TrimSpace(in.Locality)
	in.PropertyType = strings.TrimSpace(in.PropertyType)

	var problems []string
	if err := c.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return domain.Submission{}, serrors.Wrap(serrors.ErrInternal, err, "could not validate input")
		}
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}
	problems = append(problems, c.checkBounds(in)...)

	propertyType, err := domain.ParsePropertyType(in.PropertyType)
	if err != nil && in.PropertyType != "" {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return domain.Submission{}, serrors.With(serrors.ErrBadRequest, "invalid requirements: %s",
			strings.Join(problems, "; "))
	}

	return domain.Submission{
		Requirement: domain.HouseholdRequirement{
			FamilySize:   in.FamilySize,
			Budget:       in.Budget,
			City:         in.City,
			Locality:     in.Locality,
			PropertyType: propertyType,
		},
		Rooms: domain.RoomSizeList{
			BedroomSizes:  append([]float64(nil), in.BedroomSizes...),
			BathroomSizes: append([]float64(nil), in.BathroomSizes...),
		},
		Breakdown: domain.AreaBreakdown{
			KitchenSize: in.KitchenSize,
			LivingArea:  in.LivingArea,
			OtherAreas:  in.OtherAreas,
		},
	}, nil
}

func (c *Collector) checkBounds(in Input) []string {
	b := c.bounds
	var problems []string

	if in.FamilySize < b.MinFamilySize {
		problems = append(problems, fmt.Sprintf("family size must be at least %d", b.MinFamilySize))
	}
	if in.Budget < b.MinBudget {
		problems = append(problems, fmt.Sprintf("budget must be at least %d", b.MinBudget))
	}
	if b.MaxRooms > 0 && len(in.BedroomSizes) > b.MaxRooms {
		problems = append(problems, fmt.Sprintf("at most %d bedrooms are supported", b.MaxRooms))
	}
	if b.MaxRooms > 0 && len(in.BathroomSizes) > b.MaxRooms {
		problems = append(problems, fmt.Sprintf("at most %d bathrooms are supported", b.MaxRooms))
	}
	for i, s := range in.BedroomSizes {
		if !within(s, b.MinBedroom, b.MaxBedroom) {
			problems = append(problems, outOfRange(fmt.Sprintf("bedroom %d", i+1), b.MinBedroom, b.MaxBedroom))
		}
	}
	for i, s := range in.BathroomSizes {
		if !within(s, b.MinBathroom, b.MaxBathroom) {
			problems = append(problems, outOfRange(fmt.Sprintf("bathroom %d", i+1), b.MinBathroom, b.MaxBathroom))
		}
	}
	if !within(in.KitchenSize, b.MinKitchen, b.MaxKitchen) {
		problems = append(problems, outOfRange("kitchen", b.MinKitchen, b.MaxKitchen))
	}
	if !within(in.LivingArea, b.MinLiving, b.MaxLiving) {
		problems = append(problems, outOfRange("living area", b.MinLiving, b.MaxLiving))
	}
	if !within(in.OtherAreas, b.MinOther, b.MaxOther) {
		problems = append(problems, outOfRange("other areas", b.MinOther, b.MaxOther))
	}

	return problems
}

func within(v, lo, hi float64) bool { return v >= lo && v <= hi }

func outOfRange(name string, lo, hi float64) string {
	return fmt.Sprintf("%s must be between %g and %g sq ft", name, lo, hi)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " needs at least " + fe.Param() + " entry"
	default:
		return fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
}
