package lead

import (
	"context"

	"nexusai-site/internal/domain"
)

// Repository stores accepted contact form submissions.
type Repository interface {
	Create(ctx context.Context, s domain.ContactSubmission) error
	ListRecent(ctx context.Context, limit int) ([]domain.ContactSubmission, error)
}
