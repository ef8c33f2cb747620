package casestudy

import (
	"context"

	"nexusai-site/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.CaseStudy, error)
	GetByID(ctx context.Context, id int) (*domain.CaseStudy, error)
	Categories(ctx context.Context) ([]domain.CaseStudyCategory, error)
}
