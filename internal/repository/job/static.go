package job

import (
	"context"
	"slices"

	"nexusai-site/internal/domain"
)

type staticRepo struct {
	jobs []domain.JobListing
}

func NewStatic(jobs []domain.JobListing) Repository {
	return &staticRepo{jobs: cloneJobs(jobs)}
}

func (r *staticRepo) List(_ context.Context) ([]domain.JobListing, error) {
	return cloneJobs(r.jobs), nil
}

func (r *staticRepo) GetByID(_ context.Context, id string) (*domain.JobListing, error) {
	for _, j := range r.jobs {
		if j.ID == id {
			out := cloneJob(j)
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func cloneJob(j domain.JobListing) domain.JobListing {
	j.Responsibilities = slices.Clone(j.Responsibilities)
	j.Requirements = slices.Clone(j.Requirements)
	j.Tags = slices.Clone(j.Tags)
	return j
}

func cloneJobs(jobs []domain.JobListing) []domain.JobListing {
	out := make([]domain.JobListing, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, cloneJob(j))
	}
	return out
}
