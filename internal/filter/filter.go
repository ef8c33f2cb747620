// Package filter narrows content collections by category, tag and free-text query.
package filter

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"nexusai-site/internal/domain"
)

// Item is any record that can be projected onto a domain.ContentItem.
type Item interface {
	ContentItem() domain.ContentItem
}

type predicate func(domain.ContentItem) bool

// Apply returns the items passing every active filter in state, in input order.
// An unset state returns all items.
func Apply[T Item](items []T, state domain.FilterState) []T {
	if state.IsZero() {
		return append(make([]T, 0, len(items)), items...)
	}
	preds := predicates(state)
	out := make([]T, 0, len(items))
	for _, item := range items {
		ci := item.ContentItem()
		if matchAll(ci, preds) {
			out = append(out, item)
		}
	}
	return out
}

func predicates(state domain.FilterState) []predicate {
	var preds []predicate
	if !state.IsAllCategories() {
		category := state.Category
		preds = append(preds, func(ci domain.ContentItem) bool {
			return ci.Category == category
		})
	}
	if state.Tag != "" {
		tag := state.Tag
		preds = append(preds, func(ci domain.ContentItem) bool {
			return slices.Contains(ci.Tags, tag)
		})
	}
	if state.Query != "" {
		lower := cases.Lower(language.Und)
		query := lower.String(state.Query)
		preds = append(preds, func(ci domain.ContentItem) bool {
			if strings.Contains(lower.String(ci.Title), query) || strings.Contains(lower.String(ci.Excerpt), query) {
				return true
			}
			for _, tag := range ci.Tags {
				if strings.Contains(lower.String(tag), query) {
					return true
				}
			}
			return false
		})
	}
	return preds
}

func matchAll(ci domain.ContentItem, preds []predicate) bool {
	for _, p := range preds {
		if !p(ci) {
			return false
		}
	}
	return true
}

// Categories lists distinct categories in first-seen order.
func Categories[T Item](items []T) []string {
	seen := make(map[string]struct{}, len(items))
	out := []string{}
	for _, item := range items {
		c := item.ContentItem().Category
		if _, ok := seen[c]; ok || c == "" {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Tags lists distinct tags in first-seen order.
func Tags[T Item](items []T) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, item := range items {
		for _, tag := range item.ContentItem().Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}

// Related ranks the items other than id by how many tags and categories they share
// with it. Ties keep input order. An unknown id yields an empty slice.
func Related[T Item](items []T, id string, n int) []T {
	idx := slices.IndexFunc(items, func(item T) bool { return item.ContentItem().ID == id })
	if idx < 0 || n <= 0 {
		return []T{}
	}
	current := items[idx].ContentItem()
	terms := append(slices.Clone(current.Tags), current.Category)

	type scored struct {
		item  T
		score int
	}
	candidates := make([]scored, 0, len(items)-1)
	for i, item := range items {
		if i == idx {
			continue
		}
		ci := item.ContentItem()
		score := 0
		for _, term := range append(slices.Clone(ci.Tags), ci.Category) {
			if slices.Contains(terms, term) {
				score++
			}
		}
		candidates = append(candidates, scored{item: item, score: score})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	out := make([]T, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.item)
	}
	return out
}
