package pricing

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"nexusai-site/internal/domain"
	planrepo "nexusai-site/internal/repository/plan"
)

// Quote is a plan priced for a single billing period.
type Quote struct {
	domain.PricingPlan
	Billing        domain.BillingPeriod `json:"billing"`
	Amount         int64                `json:"amount"`
	Label          string               `json:"label"`
	SavingsPercent int                  `json:"savingsPercent"`
}

type Service struct {
	repo    planrepo.Repository
	printer *message.Printer
}

func New(repo planrepo.Repository) *Service {
	return &Service{repo: repo, printer: message.NewPrinter(language.English)}
}

// ParsePeriod maps a query value onto a billing period. Empty means monthly.
func ParsePeriod(raw string) (domain.BillingPeriod, error) {
	switch domain.BillingPeriod(raw) {
	case "", domain.BillingMonthly:
		return domain.BillingMonthly, nil
	case domain.BillingYearly:
		return domain.BillingYearly, nil
	default:
		return "", fmt.Errorf("billing period %q: %w", raw, domain.ErrInvalidInput)
	}
}

// Quotes prices every plan for period in catalog order.
func (s *Service) Quotes(ctx context.Context, period domain.BillingPeriod) ([]Quote, error) {
	if period != domain.BillingMonthly && period != domain.BillingYearly {
		return nil, fmt.Errorf("billing period %q: %w", period, domain.ErrInvalidInput)
	}
	plans, err := s.repo.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Quote, 0, len(plans))
	for _, p := range plans {
		amount := p.Price.Monthly
		if period == domain.BillingYearly {
			amount = p.Price.Yearly
		}
		out = append(out, Quote{
			PricingPlan:    p,
			Billing:        period,
			Amount:         amount,
			Label:          s.FormatPrice(amount),
			SavingsPercent: YearlySavings(p.Price),
		})
	}
	return out, nil
}

func (s *Service) AddOns(ctx context.Context) ([]domain.AddOnService, error) {
	return s.repo.ListAddOns(ctx)
}

// FormatPrice renders whole dollars with thousands separators, e.g. "$2,499".
func (s *Service) FormatPrice(dollars int64) string {
	return s.printer.Sprintf("$%d", dollars)
}

// YearlySavings is the whole percentage saved by paying yearly instead of twelve monthly payments.
func YearlySavings(p domain.PlanPrice) int {
	full := p.Monthly * 12
	if full <= 0 || p.Yearly >= full {
		return 0
	}
	return int((full - p.Yearly) * 100 / full)
}
