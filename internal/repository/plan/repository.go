package plan

import (
	"context"

	"nexusai-site/internal/domain"
)

type Repository interface {
	ListPlans(ctx context.Context) ([]domain.PricingPlan, error)
	ListAddOns(ctx context.Context) ([]domain.AddOnService, error)
}
