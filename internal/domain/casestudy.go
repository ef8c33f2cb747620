package domain

import "strconv"

// AllCaseStudies is the portfolio category id that lists every case study.
const AllCaseStudies = "all"

type Testimonial struct {
	Quote  string `json:"quote" yaml:"quote"`
	Author string `json:"author" yaml:"author"`
	Title  string `json:"title" yaml:"title"`
}

// CaseStudy is a portfolio entry. Technologies double as its tags.
type CaseStudy struct {
	ID           int         `json:"id" yaml:"id"`
	Title        string      `json:"title" yaml:"title"`
	Category     string      `json:"category" yaml:"category"`
	Client       string      `json:"client" yaml:"client"`
	Industry     string      `json:"industry" yaml:"industry"`
	Duration     string      `json:"duration" yaml:"duration"`
	Image        string      `json:"image,omitempty" yaml:"image"`
	Challenge    string      `json:"challenge" yaml:"challenge"`
	Solution     string      `json:"solution" yaml:"solution"`
	Results      []string    `json:"results" yaml:"results"`
	Technologies []string    `json:"technologies" yaml:"technologies"`
	Testimonial  Testimonial `json:"testimonial" yaml:"testimonial"`
}

func (c CaseStudy) ContentItem() ContentItem {
	return ContentItem{
		ID:       strconv.Itoa(c.ID),
		Category: c.Category,
		Tags:     c.Technologies,
		Title:    c.Title,
		Excerpt:  c.Challenge,
	}
}

// CaseStudyCategory is a selectable portfolio category.
type CaseStudyCategory struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}
