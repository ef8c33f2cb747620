// Package content loads the site's static content compiled into the binary.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"nexusai-site/internal/domain"
)

//go:embed data
var dataFS embed.FS

// ErrInvalidContent marks content files that fail to parse or validate.
var ErrInvalidContent = errors.New("invalid content")

// Catalog is the full, immutable set of site content.
type Catalog struct {
	Posts               []domain.Post
	CaseStudies         []domain.CaseStudy
	CaseStudyCategories []domain.CaseStudyCategory
	Jobs                []domain.JobListing
	Plans               []domain.PricingPlan
	AddOns              []domain.AddOnService
}

// Load parses the embedded content.
func Load() (*Catalog, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// LoadFS parses content laid out as blog/*.md, portfolio.yaml, careers.yaml and pricing.yaml.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	var cat Catalog
	var err error

	if cat.Posts, err = loadPosts(fsys, "blog"); err != nil {
		return nil, fmt.Errorf("load blog: %w", err)
	}
	if cat.CaseStudies, cat.CaseStudyCategories, err = loadPortfolio(fsys, "portfolio.yaml"); err != nil {
		return nil, fmt.Errorf("load portfolio: %w", err)
	}
	if cat.Jobs, err = loadCareers(fsys, "careers.yaml"); err != nil {
		return nil, fmt.Errorf("load careers: %w", err)
	}
	if cat.Plans, cat.AddOns, err = loadPricing(fsys, "pricing.yaml"); err != nil {
		return nil, fmt.Errorf("load pricing: %w", err)
	}
	return &cat, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidContent, fmt.Sprintf(format, args...))
}
