package domain

import "strings"

// AllCategories is the category value that disables category filtering.
const AllCategories = "All"

// ContentItem is the filterable projection shared by posts, case studies and job listings.
type ContentItem struct {
	ID       string
	Category string
	Tags     []string
	Title    string
	Excerpt  string
}

// FilterState is the per-request selection narrowing a content collection.
// Zero value means no filtering.
type FilterState struct {
	Category string `form:"category" json:"category,omitempty"`
	Tag      string `form:"tag" json:"tag,omitempty"`
	Query    string `form:"q" json:"query,omitempty"`
}

// IsAllCategories reports whether the category selection is unset or the "All" sentinel.
func (s FilterState) IsAllCategories() bool {
	return s.Category == "" || strings.EqualFold(s.Category, AllCategories)
}

// IsZero reports whether no filter is active.
func (s FilterState) IsZero() bool {
	return s.IsAllCategories() && s.Tag == "" && s.Query == ""
}
