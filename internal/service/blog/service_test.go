package blog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexusai-site/internal/content"
	"nexusai-site/internal/domain"
	postrepo "nexusai-site/internal/repository/post"
)

func newService(t *testing.T) *Service {
	t.Helper()
	catalog, err := content.Load()
	require.NoError(t, err)
	return New(postrepo.NewStatic(catalog.Posts))
}

func slugs(posts []domain.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug)
	}
	return out
}

func TestList_Unfiltered(t *testing.T) {
	svc := newService(t)
	posts, err := svc.List(context.Background(), domain.FilterState{})
	require.NoError(t, err)
	assert.Len(t, posts, 5)
	assert.Equal(t, "ai-automation-trends-2025", posts[0].Slug)
}

func TestList_CategoryTrends(t *testing.T) {
	svc := newService(t)
	posts, err := svc.List(context.Background(), domain.FilterState{Category: "Trends"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ai-automation-trends-2025"}, slugs(posts))
}

func TestList_QueryMatchesEveryPost(t *testing.T) {
	svc := newService(t)
	posts, err := svc.List(context.Background(), domain.FilterState{Category: "All", Query: "AI"})
	require.NoError(t, err)
	assert.Len(t, posts, 5)
}

func TestList_TagAndQuery(t *testing.T) {
	svc := newService(t)
	posts, err := svc.List(context.Background(), domain.FilterState{Tag: "Machine Learning", Query: "healthcare"})
	require.NoError(t, err)
	assert.Equal(t, []string{"case-study-healthcare-predictive-analytics"}, slugs(posts))
}

func TestList_UnknownCategoryIsEmpty(t *testing.T) {
	svc := newService(t)
	posts, err := svc.List(context.Background(), domain.FilterState{Category: "trends"})
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestGet(t *testing.T) {
	svc := newService(t)
	post, err := svc.Get(context.Background(), "roi-ai-automation-projects")
	require.NoError(t, err)
	assert.Equal(t, "Strategy", post.Category)
	assert.NotEmpty(t, post.HTML)

	_, err = svc.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRecent(t *testing.T) {
	svc := newService(t)
	posts, err := svc.Recent(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ai-automation-trends-2025",
		"case-study-healthcare-predictive-analytics",
		"ethical-ai-implementation-guidelines",
	}, slugs(posts))

	all, err := svc.Recent(context.Background(), 50)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestRelated(t *testing.T) {
	svc := newService(t)
	posts, err := svc.Related(context.Background(), "ai-automation-trends-2025", 2)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(posts), 2)
	assert.NotContains(t, slugs(posts), "ai-automation-trends-2025")

	_, err = svc.Related(context.Background(), "missing", 2)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCategoriesStartWithAll(t *testing.T) {
	svc := newService(t)
	cats, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Trends", "Case Study", "Best Practices", "Strategy", "Implementation"}, cats)
}

func TestTagsAreDistinct(t *testing.T) {
	svc := newService(t)
	tags, err := svc.Tags(context.Background())
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, tag := range tags {
		assert.False(t, seen[tag], "duplicate tag %q", tag)
		seen[tag] = true
	}
	assert.True(t, seen["Machine Learning"])
}
