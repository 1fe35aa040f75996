package webhandler

import (
	"fmt"
	"homefinder/internal/collector"
	"homefinder/pkg/serrors"
	"net/url"
	"strconv"
	"strings"
)

// Form holds raw form values so they can be rendered back unchanged.
type Form struct {
	FamilySize    string
	Budget        string
	City          string
	Locality      string
	PropertyType  string
	BedroomSizes  []string
	BathroomSizes []string
	KitchenSize   string
	LivingArea    string
	OtherAreas    string
}

// DefaultForm returns a form prefilled with the lower bounds and the given
// room counts, clamped to [1, b.MaxRooms].
func DefaultForm(b collector.Bounds, bedrooms, bathrooms int) Form {
	bedrooms = clamp(bedrooms, 1, b.MaxRooms)
	bathrooms = clamp(bathrooms, 1, b.MaxRooms)

	return Form{
		FamilySize:    strconv.Itoa(b.MinFamilySize),
		Budget:        strconv.FormatInt(b.MinBudget, 10),
		PropertyType:  "Flat",
		BedroomSizes:  repeat(formatFloat(b.MinBedroom), bedrooms),
		BathroomSizes: repeat(formatFloat(b.MinBathroom), bathrooms),
		KitchenSize:   formatFloat(b.MinKitchen),
		LivingArea:    formatFloat(b.MinLiving),
		OtherAreas:    formatFloat(b.MinOther),
	}
}

// ParseForm reads a submitted form. Bedroom and bathroom sizes are repeated
// fields, one per room.
func ParseForm(v url.Values) Form {
	return Form{
		FamilySize:    strings.TrimSpace(v.Get("familySize")),
		Budget:        strings.TrimSpace(v.Get("budget")),
		City:          v.Get("city"),
		Locality:      v.Get("locality"),
		PropertyType:  v.Get("propertyType"),
		BedroomSizes:  v["bedroomSize"],
		BathroomSizes: v["bathroomSize"],
		KitchenSize:   strings.TrimSpace(v.Get("kitchenSize")),
		LivingArea:    strings.TrimSpace(v.Get("livingArea")),
		OtherAreas:    strings.TrimSpace(v.Get("otherAreas")),
	}
}

// Input converts the form into collector input. Unparsable numbers are
// reported together as one serrors.ErrBadRequest error.
func (f Form) Input() (collector.Input, error) {
	p := &numberParser{}
	in := collector.Input{
		FamilySize:    p.intField("family size", f.FamilySize),
		Budget:        p.int64Field("budget", f.Budget),
		City:          f.City,
		Locality:      f.Locality,
		PropertyType:  f.PropertyType,
		BedroomSizes:  p.floatList("bedroom", f.BedroomSizes),
		BathroomSizes: p.floatList("bathroom", f.BathroomSizes),
		KitchenSize:   p.floatField("kitchen", f.KitchenSize),
		LivingArea:    p.floatField("living area", f.LivingArea),
		OtherAreas:    p.floatField("other areas", f.OtherAreas),
	}
	if len(p.problems) > 0 {
		return collector.Input{}, serrors.With(serrors.ErrBadRequest, "invalid requirements: %s",
			strings.Join(p.problems, "; "))
	}

	return in, nil
}

type numberParser struct {
	problems []string
}

func (p *numberParser) fail(name, raw string) {
	p.problems = append(p.problems, fmt.Sprintf("%s must be a number, got %q", name, raw))
}

func (p *numberParser) intField(name, raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		p.fail(name, raw)
	}

	return v
}

func (p *numberParser) int64Field(name, raw string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		p.fail(name, raw)
	}

	return v
}

func (p *numberParser) floatField(name, raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		p.fail(name, raw)
	}

	return v
}

func (p *numberParser) floatList(name string, raws []string) []float64 {
	out := make([]float64, 0, len(raws))
	for i, raw := range raws {
		out = append(out, p.floatField(fmt.Sprintf("%s %d", name, i+1), raw))
	}

	return out
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}

	return max(lo, min(v, hi))
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}

	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
