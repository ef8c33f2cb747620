package domain

import "time"

// Author is the byline attached to a blog post.
type Author struct {
	Name   string `json:"name" yaml:"name"`
	Avatar string `json:"avatar,omitempty" yaml:"avatar"`
	Title  string `json:"title,omitempty" yaml:"title"`
}

// Post is a blog article. Slug is its stable identifier.
type Post struct {
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	Excerpt    string    `json:"excerpt"`
	CoverImage string    `json:"coverImage,omitempty"`
	Date       time.Time `json:"date"`
	Author     Author    `json:"author"`
	Category   string    `json:"category"`
	Tags       []string  `json:"tags"`
	ReadTime   string    `json:"readTime,omitempty"`
	Markdown   string    `json:"-"`
	HTML       string    `json:"contentHtml,omitempty"`
}

func (p Post) ContentItem() ContentItem {
	return ContentItem{ID: p.Slug, Category: p.Category, Tags: p.Tags, Title: p.Title, Excerpt: p.Excerpt}
}
