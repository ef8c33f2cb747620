package job

import (
	"context"

	"nexusai-site/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.JobListing, error)
	GetByID(ctx context.Context, id string) (*domain.JobListing, error)
}
