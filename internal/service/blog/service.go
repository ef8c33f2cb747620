package blog

import (
	"context"
	"slices"

	"nexusai-site/internal/domain"
	"nexusai-site/internal/filter"
	postrepo "nexusai-site/internal/repository/post"
)

type Service struct {
	repo postrepo.Repository
}

func New(repo postrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns the posts matching state in authoring order.
func (s *Service) List(ctx context.Context, state domain.FilterState) ([]domain.Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(posts, state), nil
}

func (s *Service) Get(ctx context.Context, slug string) (*domain.Post, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Recent returns up to n posts, newest first.
func (s *Service) Recent(ctx context.Context, n int) ([]domain.Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(posts, func(a, b domain.Post) int {
		return b.Date.Compare(a.Date)
	})
	if n < 0 {
		n = 0
	}
	if n < len(posts) {
		posts = posts[:n]
	}
	return posts, nil
}

// Related returns up to n posts sharing the most tags or category with slug.
func (s *Service) Related(ctx context.Context, slug string, n int) ([]domain.Post, error) {
	if _, err := s.repo.GetBySlug(ctx, slug); err != nil {
		return nil, err
	}
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Related(posts, slug, n), nil
}

// Categories returns the selectable categories, led by the "All" sentinel.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{domain.AllCategories}, filter.Categories(posts)...), nil
}

func (s *Service) Tags(ctx context.Context) ([]string, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Tags(posts), nil
}
