package careers

import (
	"context"

	"nexusai-site/internal/domain"
	"nexusai-site/internal/filter"
	jobrepo "nexusai-site/internal/repository/job"
)

type Service struct {
	repo jobrepo.Repository
}

func New(repo jobrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List filters open positions. The category filter matches the department.
func (s *Service) List(ctx context.Context, state domain.FilterState) ([]domain.JobListing, error) {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(jobs, state), nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.JobListing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Departments(ctx context.Context) ([]string, error) {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Categories(jobs), nil
}
