package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"nexusai-site/internal/content"
)

type rootOptions struct {
	asJSON  bool
	catalog *content.Catalog
}

// load parses the embedded content once per invocation.
func (o *rootOptions) load() (*content.Catalog, error) {
	if o.catalog != nil {
		return o.catalog, nil
	}
	catalog, err := content.Load()
	if err != nil {
		return nil, err
	}
	o.catalog = catalog
	return catalog, nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "agencyctl",
		Short:        "Query the agency site's content from the terminal",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print results as JSON")

	root.AddCommand(
		newBlogCmd(opts),
		newPortfolioCmd(opts),
		newCareersCmd(opts),
		newPricingCmd(opts),
		newLeadsCmd(opts),
	)
	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
