package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/promptdeck/promptdeck/internal/catalog"
	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/models"
)

func testModel(opts Options) *Model {
	cat := catalog.New([]models.Prompt{
		{ID: "zeta", Title: "Zeta", Tags: []string{"x"}, Body: "zeta body"},
		{ID: "alpha", Title: "Alpha", Tags: []string{"y"}, Body: "alpha body"},
	})
	if opts.Theme == "" {
		opts.Theme = config.ThemeDark
	}
	return NewModel(cat, &config.Config{}, opts)
}

func press(m *Model, keys ...string) *Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(*Model)
	}
	return m
}

func TestInitialVisibleOrder(t *testing.T) {
	m := testModel(Options{})
	if len(m.visible) != 2 {
		t.Fatalf("expected 2 visible prompts, got %d", len(m.visible))
	}
	if m.visible[0].Title != "Alpha" || m.visible[1].Title != "Zeta" {
		t.Errorf("expected title order, got %s then %s", m.visible[0].Title, m.visible[1].Title)
	}
}

func TestSortToggleKey(t *testing.T) {
	m := testModel(Options{})
	m = press(m, "s")
	if m.state.Sort != models.SortRecency {
		t.Fatalf("sort after toggle = %q", m.state.Sort)
	}
	if m.visible[0].Title != "Alpha" {
		t.Errorf("recency should put the later prompt first, got %s", m.visible[0].Title)
	}
	m = press(m, "s")
	if m.state.Sort != models.SortTitle {
		t.Errorf("second toggle should return to title, got %q", m.state.Sort)
	}
}

func TestSearchKeyCapturesInput(t *testing.T) {
	m := testModel(Options{})
	m = press(m, "/")
	if !m.searchInput.Focused() {
		t.Fatal("search input should be focused after /")
	}

	// While focused, letters (including bound keys) type into the query.
	m = press(m, "z", "e", "t")
	if m.state.Query != "zet" {
		t.Fatalf("query = %q", m.state.Query)
	}
	if len(m.visible) != 1 || m.visible[0].Title != "Zeta" {
		t.Errorf("visible after typing = %+v", m.visible)
	}

	m = press(m, "enter")
	if m.searchInput.Focused() {
		t.Error("enter should blur the search input")
	}
	if m.state.Query != "zet" {
		t.Errorf("blur must not clear the query, got %q", m.state.Query)
	}
}

func TestTabMovesSelection(t *testing.T) {
	m := testModel(Options{})
	m = press(m, "tab")
	if m.cursor != 1 {
		t.Fatalf("tab should move selection down, cursor = %d", m.cursor)
	}
	m = press(m, "tab")
	if m.cursor != 1 {
		t.Errorf("cursor should stop at the last row, got %d", m.cursor)
	}
}

func TestTagBarToggle(t *testing.T) {
	m := testModel(Options{})
	m = press(m, "f", " ")
	if !equalStrings(m.state.SelectedTags, []string{"x"}) {
		t.Fatalf("space should select the first tag, got %v", m.state.SelectedTags)
	}
	if len(m.visible) != 1 || m.visible[0].ID != "zeta" {
		t.Errorf("visible after tag select = %+v", m.visible)
	}

	m = press(m, " ")
	if len(m.state.SelectedTags) != 0 {
		t.Errorf("second space should deselect, got %v", m.state.SelectedTags)
	}
	if len(m.visible) != 2 {
		t.Errorf("all prompts should be visible again, got %d", len(m.visible))
	}
}

func equalStrings(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestOpenAndCloseDetail(t *testing.T) {
	m := testModel(Options{})
	m = press(m, "enter")
	if m.mode != viewDetail {
		t.Fatal("enter should open the detail view")
	}
	if m.selected.Title != "Alpha" {
		t.Errorf("selected = %+v", m.selected)
	}
	m = press(m, "esc")
	if m.mode != viewList {
		t.Error("esc should return to the list")
	}
}

func TestDeepLinkOpensDetail(t *testing.T) {
	m := testModel(Options{DeepLinkID: "zeta"})
	if m.mode != viewDetail || m.selected.ID != "zeta" {
		t.Errorf("deep link should open zeta, mode=%v selected=%+v", m.mode, m.selected)
	}
}

func TestDeepLinkUnknownIDIsNoOp(t *testing.T) {
	m := testModel(Options{DeepLinkID: "missing"})
	if m.mode != viewList {
		t.Error("unknown deep link id should leave the list view")
	}
}

func TestInitialStateFromOptions(t *testing.T) {
	state := models.ViewState{Query: "zeta", Sort: models.SortRecency, SelectedTags: []string{"x"}}
	m := testModel(Options{State: state})
	if len(m.visible) != 1 || m.visible[0].ID != "zeta" {
		t.Errorf("visible = %+v", m.visible)
	}
	if m.searchInput.Value() != "zeta" {
		t.Errorf("search input should show the initial query, got %q", m.searchInput.Value())
	}
}

func TestCursorClampsOnFilter(t *testing.T) {
	m := testModel(Options{})
	m = press(m, "j")
	if m.cursor != 1 {
		t.Fatalf("cursor = %d", m.cursor)
	}
	m = press(m, "/")
	m = press(m, "a", "l", "p", "h", "a")
	if m.cursor != 0 {
		t.Errorf("cursor should clamp to the shrunken list, got %d", m.cursor)
	}
}

func TestViewListRenders(t *testing.T) {
	m := testModel(Options{})
	out := m.View()
	if !strings.Contains(out, "Alpha") || !strings.Contains(out, "Zeta") {
		t.Errorf("view missing prompt titles:\n%s", out)
	}
	if !strings.Contains(out, "2/2 prompts") {
		t.Errorf("view missing counts:\n%s", out)
	}
}
