package plan

import (
	"context"
	"slices"

	"nexusai-site/internal/domain"
)

type staticRepo struct {
	plans  []domain.PricingPlan
	addOns []domain.AddOnService
}

func NewStatic(plans []domain.PricingPlan, addOns []domain.AddOnService) Repository {
	return &staticRepo{plans: clonePlans(plans), addOns: slices.Clone(addOns)}
}

func (r *staticRepo) ListPlans(_ context.Context) ([]domain.PricingPlan, error) {
	return clonePlans(r.plans), nil
}

func (r *staticRepo) ListAddOns(_ context.Context) ([]domain.AddOnService, error) {
	return slices.Clone(r.addOns), nil
}

func clonePlans(plans []domain.PricingPlan) []domain.PricingPlan {
	out := make([]domain.PricingPlan, 0, len(plans))
	for _, p := range plans {
		p.Features = slices.Clone(p.Features)
		out = append(out, p)
	}
	return out
}
