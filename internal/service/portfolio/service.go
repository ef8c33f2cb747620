package portfolio

import (
	"context"

	"nexusai-site/internal/domain"
	"nexusai-site/internal/filter"
	casestudyrepo "nexusai-site/internal/repository/casestudy"
)

type Service struct {
	repo casestudyrepo.Repository
}

func New(repo casestudyrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, state domain.FilterState) ([]domain.CaseStudy, error) {
	cases, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(cases, state), nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.CaseStudy, error) {
	return s.repo.GetByID(ctx, id)
}

// Categories lists the selectable portfolio categories, "all" first.
func (s *Service) Categories(ctx context.Context) ([]domain.CaseStudyCategory, error) {
	return s.repo.Categories(ctx)
}
