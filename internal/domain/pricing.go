package domain

// BillingPeriod selects which plan price applies.
type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
)

// PlanPrice holds whole-dollar prices per billing period.
type PlanPrice struct {
	Monthly int64 `json:"monthly" yaml:"monthly"`
	Yearly  int64 `json:"yearly" yaml:"yearly"`
}

type PlanFeature struct {
	Text     string `json:"text" yaml:"text"`
	Included bool   `json:"included" yaml:"included"`
	Tooltip  string `json:"tooltip,omitempty" yaml:"tooltip"`
}

type PricingPlan struct {
	ID             string        `json:"id" yaml:"id"`
	Name           string        `json:"name" yaml:"name"`
	Description    string        `json:"description" yaml:"description"`
	Price          PlanPrice     `json:"price" yaml:"price"`
	Features       []PlanFeature `json:"features" yaml:"features"`
	PopularFeature string        `json:"popularFeature,omitempty" yaml:"popularFeature"`
	Recommended    bool          `json:"recommended" yaml:"recommended"`
	CTAText        string        `json:"ctaText" yaml:"ctaText"`
}

// AddOnService is an extra engagement priced outside the plans.
type AddOnService struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Price       string `json:"price" yaml:"price"`
}
