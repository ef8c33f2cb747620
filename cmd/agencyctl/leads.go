package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"nexusai-site/internal/config"
	"nexusai-site/internal/db"
	"nexusai-site/internal/importer"
	"nexusai-site/internal/migrate"
	leadrepo "nexusai-site/internal/repository/lead"
)

func connectStore(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	if !cfg.StoreEnabled() {
		return nil, errors.New("DB_DSN is not set")
	}
	pool, err := db.Connect(ctx, cfg.DBConnString, nil)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	return pool, nil
}

func newLeadsCmd(opts *rootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "List recent contact form submissions (requires DB_DSN)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := connectStore(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			subs, err := leadrepo.NewPostgres(pool, nil).ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, subs)
			}
			if len(subs) == 0 {
				printEmpty(out)
				return nil
			}
			for _, s := range subs {
				fmt.Fprintf(out, "  %s  %s <%s>\n", faint(s.ReceivedAt.Format("2006-01-02 15:04")), bold(s.Name), s.Email)
				fmt.Fprintf(out, "      %s %s\n", faint("Subject:"), s.Subject)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of submissions to show")
	cmd.AddCommand(newLeadsImportCmd())
	return cmd
}

func newLeadsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import submissions from a CSV export (name,email,subject,message[,id,phone,company,service,received_at])",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			pool, err := connectStore(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := migrate.Apply(cmd.Context(), pool); err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}

			res, err := importer.NewCSVImporter(f, leadrepo.NewPostgres(pool, nil), nil).Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d imported, %d already present\n", green("done:"), res.Imported, res.Skipped)
			return nil
		},
	}
}
