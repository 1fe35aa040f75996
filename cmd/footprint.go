package main

import (
	"homefinder/internal/finder"

	"github.com/spf13/cobra"
)

func footprintCommand(a *app) *cobra.Command {
	var flags requirementFlags

	cmd := &cobra.Command{
		Use:   "footprint",
		Short: "Prints the derived carpet and super built-up areas and the search query",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := flags.ui(cmd)

			sub, err := newCollector(a.cfg).Collect(flags.in)
			if err != nil {
				out.Error(err)

				return err //nolint: wrapcheck
			}

			// no provider is called, so no credentials are needed
			fp, q := finder.New(nil, nil, nil, finder.NewOptions(a.cfg)).Footprint(sub)
			out.Footprint(fp, q)

			return nil
		},
	}
	flags.bind(cmd)

	return cmd
}
