package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"nexusai-site/internal/domain"
	casestudyrepo "nexusai-site/internal/repository/casestudy"
	jobrepo "nexusai-site/internal/repository/job"
	postrepo "nexusai-site/internal/repository/post"
	blogsvc "nexusai-site/internal/service/blog"
	careerssvc "nexusai-site/internal/service/careers"
	portfoliosvc "nexusai-site/internal/service/portfolio"
)

func addFilterFlags(cmd *cobra.Command, state *domain.FilterState) {
	cmd.Flags().StringVar(&state.Category, "category", "", "exact category (\"All\" disables)")
	cmd.Flags().StringVar(&state.Tag, "tag", "", "exact tag")
	cmd.Flags().StringVarP(&state.Query, "query", "q", "", "case-insensitive text search")
}

func newBlogCmd(opts *rootOptions) *cobra.Command {
	var state domain.FilterState
	cmd := &cobra.Command{
		Use:   "blog",
		Short: "List blog posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := opts.load()
			if err != nil {
				return err
			}
			posts, err := blogsvc.New(postrepo.NewStatic(catalog.Posts)).List(cmd.Context(), state)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, posts)
			}
			if len(posts) == 0 {
				printEmpty(out)
				return nil
			}
			for _, p := range posts {
				printItem(out, p.Date.Format("2006-01-02"), p.Title, p.Category, p.Tags)
			}
			return nil
		},
	}
	addFilterFlags(cmd, &state)
	return cmd
}

func newPortfolioCmd(opts *rootOptions) *cobra.Command {
	var state domain.FilterState
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "List case studies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := opts.load()
			if err != nil {
				return err
			}
			svc := portfoliosvc.New(casestudyrepo.NewStatic(catalog.CaseStudies, catalog.CaseStudyCategories))
			cases, err := svc.List(cmd.Context(), state)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, cases)
			}
			if len(cases) == 0 {
				printEmpty(out)
				return nil
			}
			for _, c := range cases {
				printItem(out, "#"+strconv.Itoa(c.ID), c.Title, c.Category, c.Technologies)
				fmt.Fprintf(out, "      %s %s\n", faint("Client:"), c.Client)
			}
			return nil
		},
	}
	addFilterFlags(cmd, &state)
	return cmd
}

func newCareersCmd(opts *rootOptions) *cobra.Command {
	var state domain.FilterState
	cmd := &cobra.Command{
		Use:   "careers",
		Short: "List open positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := opts.load()
			if err != nil {
				return err
			}
			jobs, err := careerssvc.New(jobrepo.NewStatic(catalog.Jobs)).List(cmd.Context(), state)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, jobs)
			}
			if len(jobs) == 0 {
				printEmpty(out)
				return nil
			}
			for _, j := range jobs {
				printItem(out, j.ID, j.Title, j.Department, j.Tags)
				fmt.Fprintf(out, "      %s %s, %s\n", faint("Where:"), j.Location, j.Type)
			}
			return nil
		},
	}
	addFilterFlags(cmd, &state)
	return cmd
}
