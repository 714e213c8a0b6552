// Package engine derives the visible, ordered prompt list from the store
// and the current view state. Everything here is a pure function of its
// inputs; no hidden state, no mutation of the input slices.
package engine

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/promptdeck/promptdeck/internal/models"
	"github.com/promptdeck/promptdeck/internal/textnorm"
)

// Visible returns the prompts matching the view state, ordered by its sort
// mode. A prompt is visible iff it matches the text filter AND the tag
// filter; the tag filter itself is an OR across the selected tags.
func Visible(prompts []models.Prompt, state models.ViewState) []models.Prompt {
	q := textnorm.Normalize(state.Query)

	out := make([]models.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if matchesText(p, q) && matchesTags(p, state.SelectedTags) {
			out = append(out, p)
		}
	}
	sortPrompts(out, state.Sort)
	return out
}

// FuzzyVisible is the fuzzy-matching variant: the tag filter is unchanged,
// but text matching and result order are delegated to fuzzy ranking over
// title, body and tags. An empty query behaves exactly like Visible.
func FuzzyVisible(prompts []models.Prompt, state models.ViewState) []models.Prompt {
	if state.Query == "" {
		return Visible(prompts, state)
	}

	candidates := make([]models.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if matchesTags(p, state.SelectedTags) {
			candidates = append(candidates, p)
		}
	}

	searchStrings := make([]string, len(candidates))
	for i, p := range candidates {
		searchStrings[i] = p.Title + " " + strings.Join(p.Tags, " ") + " " + p.Body
	}

	matches := fuzzy.Find(state.Query, searchStrings)
	out := make([]models.Prompt, 0, len(matches))
	for _, m := range matches {
		out = append(out, candidates[m.Index])
	}
	return out
}

// AllTags returns every distinct tag across the store in ascending
// locale-aware order, for rendering facet controls.
func AllTags(prompts []models.Prompt) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, p := range prompts {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	col := collate.New(language.English)
	col.SortStrings(tags)
	return tags
}

// matchesText reports whether the normalized query is empty or a substring
// of the prompt's normalized title, body or any tag.
func matchesText(p models.Prompt, normalizedQuery string) bool {
	if normalizedQuery == "" {
		return true
	}
	if strings.Contains(textnorm.Normalize(p.Title), normalizedQuery) {
		return true
	}
	if strings.Contains(textnorm.Normalize(p.Body), normalizedQuery) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(textnorm.Normalize(t), normalizedQuery) {
			return true
		}
	}
	return false
}

// matchesTags reports whether no tags are selected or the prompt carries at
// least one of them (exact, case-sensitive comparison).
func matchesTags(p models.Prompt, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, tag := range selected {
		if p.HasTag(tag) {
			return true
		}
	}
	return false
}

func sortPrompts(prompts []models.Prompt, mode models.SortMode) {
	switch mode {
	case models.SortRecency:
		// AddedIndex is unique per prompt, so ties are impossible.
		sort.SliceStable(prompts, func(i, j int) bool {
			return prompts[i].AddedIndex > prompts[j].AddedIndex
		})
	default:
		// Collators are not safe for shared use, so build one per sort.
		col := collate.New(language.English)
		sort.SliceStable(prompts, func(i, j int) bool {
			return col.CompareString(prompts[i].Title, prompts[j].Title) < 0
		})
	}
}
