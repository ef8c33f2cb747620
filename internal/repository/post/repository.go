package post

import (
	"context"

	"nexusai-site/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Post, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
}
