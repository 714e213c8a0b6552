package models

import (
	"reflect"
	"testing"
)

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		in   string
		want SortMode
	}{
		{"title", SortTitle},
		{"recency", SortRecency},
		{"", SortTitle},
		{"Recency", SortTitle},
		{"newest", SortTitle},
		{"garbage", SortTitle},
	}
	for _, tt := range tests {
		if got := ParseSortMode(tt.in); got != tt.want {
			t.Errorf("ParseSortMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToggleTag(t *testing.T) {
	v := NewViewState()

	v.ToggleTag("qa")
	v.ToggleTag("engineering")
	if !reflect.DeepEqual(v.SelectedTags, []string{"qa", "engineering"}) {
		t.Fatalf("after two toggles got %v", v.SelectedTags)
	}

	// Toggling an already selected tag removes it.
	v.ToggleTag("qa")
	if !reflect.DeepEqual(v.SelectedTags, []string{"engineering"}) {
		t.Fatalf("after removing qa got %v", v.SelectedTags)
	}

	// Toggling it back appends at the end, preserving order.
	v.ToggleTag("qa")
	if !reflect.DeepEqual(v.SelectedTags, []string{"engineering", "qa"}) {
		t.Fatalf("after re-adding qa got %v", v.SelectedTags)
	}
}

func TestViewStateHasTag(t *testing.T) {
	v := ViewState{SelectedTags: []string{"docs"}}
	if !v.HasTag("docs") {
		t.Error("expected docs to be selected")
	}
	if v.HasTag("Docs") {
		t.Error("tag selection must be case-sensitive")
	}
}

func TestViewStateIsZero(t *testing.T) {
	if !NewViewState().IsZero() {
		t.Error("default state should be zero")
	}
	if (ViewState{}).IsZero() == false {
		t.Error("empty sort counts as the title default")
	}
	if (ViewState{Query: "x"}).IsZero() {
		t.Error("query should make state non-zero")
	}
	if (ViewState{Sort: SortRecency}).IsZero() {
		t.Error("recency sort should make state non-zero")
	}
	if (ViewState{SelectedTags: []string{"a"}}).IsZero() {
		t.Error("selected tags should make state non-zero")
	}
}
