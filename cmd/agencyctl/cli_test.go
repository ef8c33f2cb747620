package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexusai-site/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBlogCommand_FiltersByCategory(t *testing.T) {
	out, err := run(t, "blog", "--category", "Trends")
	require.NoError(t, err)
	assert.Contains(t, out, "Top AI Automation Trends")
	assert.NotContains(t, out, "[Strategy]")
}

func TestBlogCommand_JSON(t *testing.T) {
	out, err := run(t, "blog", "--tag", "Machine Learning", "--query", "healthcare", "--json")
	require.NoError(t, err)
	var posts []domain.Post
	require.NoError(t, json.Unmarshal([]byte(out), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "case-study-healthcare-predictive-analytics", posts[0].Slug)
}

func TestPortfolioCommand_NoMatches(t *testing.T) {
	out, err := run(t, "portfolio", "--query", "zzz-not-there")
	require.NoError(t, err)
	assert.Contains(t, out, "No matching entries.")
}

func TestCareersCommand(t *testing.T) {
	out, err := run(t, "careers", "--category", "Engineering")
	require.NoError(t, err)
	assert.Contains(t, out, "ai-engineer")
	assert.NotContains(t, out, "data-scientist")
}

func TestPricingCommand(t *testing.T) {
	out, err := run(t, "pricing", "--billing", "yearly")
	require.NoError(t, err)
	assert.Contains(t, out, "$24,990/yearly")
	assert.Contains(t, out, "(recommended)")

	_, err = run(t, "pricing", "--billing", "weekly")
	assert.Error(t, err)
}

func TestLeadsCommand_RequiresDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")
	_, err := run(t, "leads")
	assert.ErrorContains(t, err, "DB_DSN")
}

func TestLeadsImport_RequiresFile(t *testing.T) {
	_, err := run(t, "leads", "import", "/nonexistent/leads.csv")
	assert.Error(t, err)
}
