package domain

// JobListing is an open position on the careers page. Department is its category.
type JobListing struct {
	ID               string   `json:"id" yaml:"id"`
	Title            string   `json:"title" yaml:"title"`
	Department       string   `json:"department" yaml:"department"`
	Location         string   `json:"location" yaml:"location"`
	Type             string   `json:"type" yaml:"type"`
	Experience       string   `json:"experience" yaml:"experience"`
	PostedDate       string   `json:"postedDate" yaml:"postedDate"`
	Salary           string   `json:"salary,omitempty" yaml:"salary"`
	Description      string   `json:"description" yaml:"description"`
	Responsibilities []string `json:"responsibilities" yaml:"responsibilities"`
	Requirements     []string `json:"requirements" yaml:"requirements"`
	Tags             []string `json:"tags" yaml:"tags"`
}

func (j JobListing) ContentItem() ContentItem {
	return ContentItem{ID: j.ID, Category: j.Department, Tags: j.Tags, Title: j.Title, Excerpt: j.Description}
}
