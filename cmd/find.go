package main

import (
	"encoding/json"
	"homefinder/internal/collector"
	"homefinder/pkg/ui"

	"github.com/spf13/cobra"
)

// requirementFlags binds the requirement form to command line flags.
type requirementFlags struct {
	in    collector.Input
	color string
}

func (f *requirementFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.in.FamilySize, "family-size", 1, "Number of family members")
	fs.Int64Var(&f.in.Budget, "budget", 1_000_000, "Budget in rupees")
	fs.StringVar(&f.in.City, "city", "", "City, e.g. Kolkata")
	fs.StringVar(&f.in.Locality, "locality", "", "Preferred locality, e.g. Newtown")
	fs.StringVar(&f.in.PropertyType, "property-type", "Flat", "Flat, Apartment, House, Villa or Other")
	fs.Float64SliceVar(&f.in.BedroomSizes, "bedroom-size", nil, "Bedroom size in sq ft, repeat once per bedroom")
	fs.Float64SliceVar(&f.in.BathroomSizes, "bathroom-size", nil, "Bathroom size in sq ft, repeat once per bathroom")
	fs.Float64Var(&f.in.KitchenSize, "kitchen", 100, "Kitchen size in sq ft")
	fs.Float64Var(&f.in.LivingArea, "living", 100, "Living area in sq ft")
	fs.Float64Var(&f.in.OtherAreas, "other", 0, "Other areas in sq ft")
	fs.StringVar(&f.color, "color", string(ui.ColorAuto), "Color output: auto, always or never")
}

func (f *requirementFlags) ui(cmd *cobra.Command) *ui.UI {
	return ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), ui.NormalizeColorMode(f.color))
}

func findCommand(a *app) *cobra.Command {
	var (
		flags  requirementFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Searches for matching properties and summarizes them",
		Example: `  homefinder find --city Kolkata --locality Newtown --budget 7500000 \
    --bedroom-size 120 --bedroom-size 150 --bathroom-size 80 \
    --kitchen 150 --living 300 --other 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := flags.ui(cmd)

			sub, err := newCollector(a.cfg).Collect(flags.in)
			if err != nil {
				out.Error(err)

				return err //nolint: wrapcheck
			}

			f, err := newFinder(a.cfg, nil)
			if err != nil {
				out.Error(err)

				return err
			}

			rec, err := f.Find(cmd.Context(), sub)
			if err != nil {
				out.Error(err)

				return err //nolint: wrapcheck
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return enc.Encode(rec) //nolint: wrapcheck
			}
			out.Recommendation(rec)

			return nil
		},
	}
	flags.bind(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full result as JSON")

	return cmd
}
