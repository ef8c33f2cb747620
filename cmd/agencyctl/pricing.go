package main

import (
	"fmt"

	"github.com/spf13/cobra"

	planrepo "nexusai-site/internal/repository/plan"
	pricingsvc "nexusai-site/internal/service/pricing"
)

func newPricingCmd(opts *rootOptions) *cobra.Command {
	var billing string
	cmd := &cobra.Command{
		Use:   "pricing",
		Short: "Show plan prices for a billing period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			period, err := pricingsvc.ParsePeriod(billing)
			if err != nil {
				return err
			}
			catalog, err := opts.load()
			if err != nil {
				return err
			}
			svc := pricingsvc.New(planrepo.NewStatic(catalog.Plans, catalog.AddOns))
			quotes, err := svc.Quotes(cmd.Context(), period)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, quotes)
			}
			for _, q := range quotes {
				name := bold(q.Name)
				if q.Recommended {
					name += " " + green("(recommended)")
				}
				fmt.Fprintf(out, "  %s  %s/%s\n", name, cyan(q.Label), period)
				if period == "yearly" && q.SavingsPercent > 0 {
					fmt.Fprintf(out, "      %s\n", faint(fmt.Sprintf("saves %d%% vs monthly", q.SavingsPercent)))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&billing, "billing", "monthly", "billing period: monthly or yearly")
	return cmd
}
