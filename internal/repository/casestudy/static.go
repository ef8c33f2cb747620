package casestudy

import (
	"context"
	"slices"

	"nexusai-site/internal/domain"
)

type staticRepo struct {
	cases      []domain.CaseStudy
	categories []domain.CaseStudyCategory
}

func NewStatic(cases []domain.CaseStudy, categories []domain.CaseStudyCategory) Repository {
	return &staticRepo{cases: cloneCases(cases), categories: slices.Clone(categories)}
}

func (r *staticRepo) List(_ context.Context) ([]domain.CaseStudy, error) {
	return cloneCases(r.cases), nil
}

func (r *staticRepo) GetByID(_ context.Context, id int) (*domain.CaseStudy, error) {
	for _, c := range r.cases {
		if c.ID == id {
			out := cloneCase(c)
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *staticRepo) Categories(_ context.Context) ([]domain.CaseStudyCategory, error) {
	return slices.Clone(r.categories), nil
}

func cloneCase(c domain.CaseStudy) domain.CaseStudy {
	c.Results = slices.Clone(c.Results)
	c.Technologies = slices.Clone(c.Technologies)
	return c
}

func cloneCases(cases []domain.CaseStudy) []domain.CaseStudy {
	out := make([]domain.CaseStudy, 0, len(cases))
	for _, c := range cases {
		out = append(out, cloneCase(c))
	}
	return out
}
