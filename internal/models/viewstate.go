package models

// SortMode selects the ordering of the visible prompt list.
type SortMode string

const (
	SortTitle   SortMode = "title"
	SortRecency SortMode = "recency"
)

// ParseSortMode maps a raw sort parameter to a SortMode. Anything other
// than the exact string "recency" falls back to the default title order,
// including empty and unrecognized values.
func ParseSortMode(s string) SortMode {
	if s == string(SortRecency) {
		return SortRecency
	}
	return SortTitle
}

// ViewState is the session-local filter/sort/selection configuration.
// There is a single mutable instance per session, owned by the top-level
// controller; query functions take it by value.
type ViewState struct {
	Query        string
	Sort         SortMode
	SelectedTags []string
}

// NewViewState returns the default view: empty query, title sort, no tags.
func NewViewState() ViewState {
	return ViewState{Sort: SortTitle}
}

// ToggleTag applies a set symmetric difference: selecting an already
// selected tag removes it, selecting a new one appends it. Selection order
// is preserved so published URLs stay deterministic.
func (v *ViewState) ToggleTag(tag string) {
	for i, t := range v.SelectedTags {
		if t == tag {
			v.SelectedTags = append(v.SelectedTags[:i], v.SelectedTags[i+1:]...)
			return
		}
	}
	v.SelectedTags = append(v.SelectedTags, tag)
}

// HasTag reports whether the tag is currently selected.
func (v ViewState) HasTag(tag string) bool {
	for _, t := range v.SelectedTags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsZero reports whether every field is at its default.
func (v ViewState) IsZero() bool {
	return v.Query == "" && (v.Sort == "" || v.Sort == SortTitle) && len(v.SelectedTags) == 0
}
