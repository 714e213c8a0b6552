// Package ui is the interactive TUI. The Model owns the single mutable
// ViewState for the session; every key event maps to one state transition
// followed by re-deriving the visible list, so the filtering logic itself
// stays in engine and remains testable without a terminal.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/promptdeck/promptdeck/internal/catalog"
	"github.com/promptdeck/promptdeck/internal/clipboard"
	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/engine"
	"github.com/promptdeck/promptdeck/internal/models"
	"github.com/promptdeck/promptdeck/internal/urlstate"
)

const exportFilename = "promptdeck-export.json"

type viewMode int

const (
	viewList viewMode = iota
	viewDetail
)

type clearStatusMsg struct{}

// Model is the TUI application state.
type Model struct {
	catalog *catalog.Catalog
	cfg     *config.Config
	theme   config.Theme
	styles  Styles

	// Derived view
	state   models.ViewState
	visible []models.Prompt
	allTags []string

	mode       viewMode
	cursor     int
	selected   models.Prompt
	tagBarOpen bool
	tagCursor  int

	searchInput textinput.Model
	viewport    viewport.Model
	help        help.Model
	keys        KeyMap

	shareBase string
	statusMsg string
	statusErr bool

	width  int
	height int
}

// KeyMap defines all key bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Back   key.Binding
	Quit   key.Binding
	Help   key.Binding
	Search key.Binding
	Sort   key.Binding
	TagBar key.Binding
	Toggle key.Binding
	Copy   key.Binding
	Share  key.Binding
	Export key.Binding
	Theme  key.Binding
}

// ShortHelp returns keybindings for the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Sort, k.TagBar, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Back},
		{k.Search, k.Sort, k.TagBar, k.Toggle},
		{k.Copy, k.Share, k.Export, k.Theme},
		{k.Help, k.Quit},
	}
}

var defaultKeys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j", "tab"),
		key.WithHelp("↓/j", "move down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous tag"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next tag"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "toggle sort"),
	),
	TagBar: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "tag filters"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("Space", "toggle tag"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy body"),
	),
	Share: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy share link"),
	),
	Export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export catalog"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle theme"),
	),
}

// Options configure the initial TUI view.
type Options struct {
	// Initial view state, typically parsed from a shared URL.
	State models.ViewState
	// DeepLinkID names a prompt to expand at startup; unknown ids are a
	// silent no-op.
	DeepLinkID string
	// ShareBase is the address share links point at.
	ShareBase string
	// Theme overrides the persisted preference for this session.
	Theme config.Theme
}

// NewModel creates the TUI model over an already-loaded catalog.
func NewModel(cat *catalog.Catalog, cfg *config.Config, opts Options) *Model {
	theme := opts.Theme
	if theme == "" {
		theme = cfg.ResolveTheme()
	}

	ti := textinput.New()
	ti.Placeholder = "type to search"
	ti.Prompt = "/ "
	ti.CharLimit = 200
	ti.SetValue(opts.State.Query)

	shareBase := opts.ShareBase
	if shareBase == "" {
		shareBase = "http://localhost:8080"
	}

	m := &Model{
		catalog:     cat,
		cfg:         cfg,
		theme:       theme,
		styles:      NewStyles(theme),
		state:       opts.State,
		allTags:     engine.AllTags(cat.Prompts()),
		searchInput: ti,
		viewport:    viewport.New(80, 20),
		help:        help.New(),
		keys:        defaultKeys,
		shareBase:   shareBase,
		width:       80,
		height:      24,
	}
	if m.state.Sort == "" {
		m.state.Sort = models.SortTitle
	}
	m.refresh()

	if opts.DeepLinkID != "" {
		if p, ok := cat.Get(opts.DeepLinkID); ok {
			m.focusPrompt(p)
			m.openDetail(p)
		}
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchInput.Width = max(10, msg.Width-8)
		m.viewport.Width = msg.Width
		m.viewport.Height = max(3, msg.Height-6)
		m.help.Width = msg.Width
		return m, nil

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == viewDetail {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes a key press to the state transition for the current
// focus: search input, detail view, or the list.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the search field is focused every printable key belongs to it,
	// including '/'.
	if m.searchInput.Focused() {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "enter":
			m.searchInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			m.state.Query = m.searchInput.Value()
			m.refresh()
			return m, cmd
		}
	}

	if m.mode == viewDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = viewList
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyBody(m.selected)
	case key.Matches(msg, m.keys.Share):
		return m, m.copyShareLink(m.selected)
	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleTheme()
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Sort):
		if m.state.Sort == models.SortTitle {
			m.state.Sort = models.SortRecency
		} else {
			m.state.Sort = models.SortTitle
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.TagBar):
		m.tagBarOpen = !m.tagBarOpen
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if m.tagBarOpen && m.tagCursor > 0 {
			m.tagCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.tagBarOpen && m.tagCursor < len(m.allTags)-1 {
			m.tagCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		m.toggleTagUnderCursor()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.tagBarOpen {
			m.toggleTagUnderCursor()
			return m, nil
		}
		if p, ok := m.current(); ok {
			m.openDetail(p)
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if p, ok := m.current(); ok {
			return m, m.copyBody(p)
		}
		return m, nil

	case key.Matches(msg, m.keys.Share):
		if p, ok := m.current(); ok {
			return m, m.copyShareLink(p)
		}
		return m, nil

	case key.Matches(msg, m.keys.Export):
		if err := m.catalog.ExportFile(exportFilename); err != nil {
			return m, m.setError(fmt.Sprintf("Export failed: %v", err))
		}
		return m, m.setStatus(fmt.Sprintf("Exported %d prompts to %s", m.catalog.Len(), exportFilename))

	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleTheme()
	}
	return m, nil
}

// refresh re-derives the visible list from the catalog and view state.
func (m *Model) refresh() {
	m.visible = engine.Visible(m.catalog.Prompts(), m.state)
	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
}

func (m *Model) current() (models.Prompt, bool) {
	if len(m.visible) == 0 || m.cursor >= len(m.visible) {
		return models.Prompt{}, false
	}
	return m.visible[m.cursor], true
}

// focusPrompt moves the list cursor to a prompt, if it is visible.
func (m *Model) focusPrompt(p models.Prompt) {
	for i, v := range m.visible {
		if v.AddedIndex == p.AddedIndex {
			m.cursor = i
			return
		}
	}
}

func (m *Model) toggleTagUnderCursor() {
	if !m.tagBarOpen || len(m.allTags) == 0 {
		return
	}
	m.state.ToggleTag(m.allTags[m.tagCursor])
	m.refresh()
}

// openDetail expands one prompt, rendering its body as markdown.
func (m *Model) openDetail(p models.Prompt) {
	m.selected = p
	m.mode = viewDetail

	body := p.Body
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle(m.theme)),
		glamour.WithWordWrap(min(max(m.width-4, 40), 100)),
	)
	if err == nil {
		if rendered, rerr := r.Render(p.Body); rerr == nil && strings.TrimSpace(rendered) != "" {
			body = rendered
		}
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render("id: " + p.ID))
	if len(p.Tags) > 0 {
		b.WriteString(m.styles.Dim.Render("  tags: " + strings.Join(p.Tags, ", ")))
	}
	b.WriteString("\n\n")
	b.WriteString(body)

	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}

func (m *Model) copyBody(p models.Prompt) tea.Cmd {
	if err := clipboard.Copy(p.Body); err != nil {
		return m.setError(fmt.Sprintf("Copy failed: %v", err))
	}
	return m.setStatus("Copied to clipboard")
}

func (m *Model) copyShareLink(p models.Prompt) tea.Cmd {
	link := urlstate.ShareLink(m.shareBase, m.state, p.ID)
	if err := clipboard.Copy(link); err != nil {
		return m.setError(fmt.Sprintf("Copy failed: %v", err))
	}
	return m.setStatus("Share link copied")
}

// toggleTheme flips the theme and persists the preference. Save failures
// only surface as a status note.
func (m *Model) toggleTheme() tea.Cmd {
	if m.theme == config.ThemeDark {
		m.theme = config.ThemeLight
	} else {
		m.theme = config.ThemeDark
	}
	m.styles = NewStyles(m.theme)
	if m.mode == viewDetail {
		m.openDetail(m.selected)
	}

	m.cfg.Theme = m.theme
	if err := m.cfg.Save(); err != nil {
		return m.setError(fmt.Sprintf("Theme set to %s (not saved: %v)", m.theme, err))
	}
	return m.setStatus(fmt.Sprintf("Theme: %s", m.theme))
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.statusMsg = s
	m.statusErr = false
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) setError(s string) tea.Cmd {
	m.statusMsg = s
	m.statusErr = true
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == viewDetail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m *Model) viewDetail() string {
	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString(m.styles.Dim.Render("Esc back • c copy • y share • t theme • q quit"))
	return b.String()
}

func (m *Model) viewList() string {
	var b strings.Builder

	title := fmt.Sprintf("promptdeck — %d/%d prompts • sort: %s", len(m.visible), m.catalog.Len(), m.state.Sort)
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")

	b.WriteString(m.styles.Search.Render(m.searchInput.View()))
	b.WriteString("\n")

	if m.tagBarOpen {
		b.WriteString(m.tagBar())
		b.WriteString("\n")
	} else if len(m.state.SelectedTags) > 0 {
		chips := make([]string, len(m.state.SelectedTags))
		for i, t := range m.state.SelectedTags {
			chips[i] = m.styles.TagChip(t, true)
		}
		b.WriteString(m.styles.Dim.Render("filters: ") + strings.Join(chips, " "))
		b.WriteString("\n")
	}

	b.WriteString(m.listRows())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// tagBar renders the facet chips with the hue derived from each tag.
func (m *Model) tagBar() string {
	if len(m.allTags) == 0 {
		return m.styles.Dim.Render("no tags in catalog")
	}
	chips := make([]string, len(m.allTags))
	for i, tag := range m.allTags {
		chip := m.styles.TagChip(tag, m.state.HasTag(tag))
		if i == m.tagCursor {
			chip = "[" + chip + "]"
		}
		chips[i] = chip
	}
	return strings.Join(chips, " ")
}

func (m *Model) listRows() string {
	if len(m.visible) == 0 {
		return m.styles.Muted.Render("  no prompts match the current view")
	}

	maxRows := max(3, m.height-8)
	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}
	end := min(start+maxRows, len(m.visible))

	var rows []string
	for i := start; i < end; i++ {
		p := m.visible[i]
		line := fmt.Sprintf("%s  %s", p.Title, m.styles.Dim.Render(p.ID))
		if len(p.Tags) > 0 {
			line += m.styles.Muted.Render("  (" + strings.Join(p.Tags, ", ") + ")")
		}
		if i == m.cursor {
			rows = append(rows, m.styles.Selected.Render("▶ "+p.Title)+"  "+m.styles.Dim.Render(p.ID))
		} else {
			rows = append(rows, "  "+line)
		}
	}
	return strings.Join(rows, "\n")
}

func (m *Model) statusLine() string {
	if m.statusMsg == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.Error.Render(m.statusMsg) + "\n"
	}
	return m.styles.Status.Render(m.statusMsg) + "\n"
}
