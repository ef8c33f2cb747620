package content

import (
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"nexusai-site/internal/domain"
)

type portfolioFile struct {
	Categories []domain.CaseStudyCategory `yaml:"categories"`
	Cases      []domain.CaseStudy         `yaml:"cases"`
}

type careersFile struct {
	Jobs []domain.JobListing `yaml:"jobs"`
}

type pricingFile struct {
	Plans  []domain.PricingPlan  `yaml:"plans"`
	AddOns []domain.AddOnService `yaml:"addOns"`
}

func decodeYAML(fsys fs.FS, name string, v any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return invalid("%s: %v", name, err)
	}
	return nil
}

func loadPortfolio(fsys fs.FS, name string) ([]domain.CaseStudy, []domain.CaseStudyCategory, error) {
	var f portfolioFile
	if err := decodeYAML(fsys, name, &f); err != nil {
		return nil, nil, err
	}
	seen := make(map[int]struct{}, len(f.Cases))
	for _, c := range f.Cases {
		if _, ok := seen[c.ID]; ok {
			return nil, nil, invalid("%s: duplicate case study id %d", name, c.ID)
		}
		seen[c.ID] = struct{}{}
		if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.Category) == "" {
			return nil, nil, invalid("%s: case study %d needs title and category", name, c.ID)
		}
	}
	if len(f.Categories) == 0 || f.Categories[0].ID != domain.AllCaseStudies {
		f.Categories = append([]domain.CaseStudyCategory{{ID: domain.AllCaseStudies, Label: "All Projects"}}, f.Categories...)
	}
	return f.Cases, f.Categories, nil
}

func loadCareers(fsys fs.FS, name string) ([]domain.JobListing, error) {
	var f careersFile
	if err := decodeYAML(fsys, name, &f); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(f.Jobs))
	for _, j := range f.Jobs {
		if j.ID == "" || strings.TrimSpace(j.Title) == "" {
			return nil, invalid("%s: job listing needs id and title", name)
		}
		if _, ok := seen[j.ID]; ok {
			return nil, invalid("%s: duplicate job id %q", name, j.ID)
		}
		seen[j.ID] = struct{}{}
	}
	return f.Jobs, nil
}

func loadPricing(fsys fs.FS, name string) ([]domain.PricingPlan, []domain.AddOnService, error) {
	var f pricingFile
	if err := decodeYAML(fsys, name, &f); err != nil {
		return nil, nil, err
	}
	seen := make(map[string]struct{}, len(f.Plans))
	for _, p := range f.Plans {
		if _, ok := seen[p.ID]; ok || p.ID == "" {
			return nil, nil, invalid("%s: plan id %q missing or duplicated", name, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return f.Plans, f.AddOns, nil
}
