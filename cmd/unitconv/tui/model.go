// Package tui implements the interactive conversion form. It is strictly a
// consumer of the convert package: all arithmetic happens in the engine, the
// form only collects inputs and renders the result.
package tui

import (
	"unitconv/cmd/unitconv/ui"
	"unitconv/internal/config"
	"unitconv/internal/convert"
	"unitconv/internal/history"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

// focusArea identifies which form control receives input.
type focusArea int

const (
	focusValue focusArea = iota
	focusFrom
	focusTo
)

// overlay identifies a full-screen panel drawn over the form.
type overlay int

const (
	overlayNone overlay = iota
	overlayAbout
	overlayHistory
)

// Messages delivered to Update.
type (
	// configReloadedMsg carries a freshly loaded config from the watcher.
	configReloadedMsg struct{ cfg *config.Config }

	// historyLoadedMsg carries entries for the history overlay.
	historyLoadedMsg struct {
		entries []history.Entry
		err     error
	}

	// historySavedMsg reports the outcome of recording a conversion.
	historySavedMsg struct{ err error }
)

// unitItem adapts a unit name to the bubbles list interface.
type unitItem string

func (i unitItem) Title() string       { return string(i) }
func (i unitItem) Description() string { return "" }
func (i unitItem) FilterValue() string { return string(i) }

// Model is the Bubble Tea model for the conversion form.
type Model struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *history.Store // nil when history is disabled

	styles   ui.Styles
	renderer *glamour.TermRenderer

	input    textinput.Model
	fromList list.Model
	toList   list.Model
	histView table.Model

	categories  []convert.Category
	categoryIdx int
	focus       focusArea
	overlay     overlay

	// Live conversion state, recomputed on every change.
	result   float64
	resultOK bool
	convErr  string

	status string
	width  int
	height int
	ready  bool

	// reloads receives configs pushed by the config watcher.
	reloads chan *config.Config
}

// New builds the form model. store may be nil to disable history.
func New(cfg *config.Config, logger *zap.Logger, store *history.Store) Model {
	styles := ui.NewStyles(ui.ThemeByName(cfg.Display.Theme))

	input := textinput.New()
	input.Placeholder = "0.0"
	input.Prompt = "> "
	input.CharLimit = 32
	input.Focus()

	m := Model{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		styles:     styles,
		input:      input,
		categories: convert.Categories(),
		reloads:    make(chan *config.Config, 1),
	}

	m.categoryIdx = m.categoryIndex(convert.Category(cfg.Display.DefaultCategory))
	m.rebuildUnitLists()
	m.histView = newHistoryTable(styles)
	m.recompute()
	return m
}

// ConfigReloads returns the channel the config watcher should push fresh
// configs into. Sends must be non-blocking; the model drains one at a time.
func (m Model) ConfigReloads() chan<- *config.Config {
	return m.reloads
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForReload(m.reloads))
}

// waitForReload blocks on the reload channel and re-arms after each message.
func waitForReload(ch chan *config.Config) tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

func (m Model) categoryIndex(c convert.Category) int {
	for i, cat := range m.categories {
		if cat == c {
			return i
		}
	}
	return 0
}

func (m Model) category() convert.Category {
	return m.categories[m.categoryIdx]
}

// rebuildUnitLists repopulates both unit lists for the current category.
// From defaults to the first unit, To to the second so the form opens on a
// meaningful conversion instead of an identity.
func (m *Model) rebuildUnitLists() {
	units := convert.Units(m.category())
	items := make([]list.Item, len(units))
	for i, u := range units {
		items[i] = unitItem(u)
	}

	m.fromList = newUnitList("From", items, m.styles)
	m.toList = newUnitList("To", items, m.styles)
	if len(items) > 1 {
		m.toList.Select(1)
	}
	m.resizeLists()
}

func newUnitList(title string, items []list.Item, styles ui.Styles) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = styles.Selected
	delegate.Styles.NormalTitle = styles.Body

	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = styles.Label
	return l
}

func newHistoryTable(styles ui.Styles) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "When", Width: 19},
			{Title: "Category", Width: 11},
			{Title: "Conversion", Width: 44},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.Foreground(styles.Theme.Primary).Bold(true)
	ts.Selected = styles.Selected
	t.SetStyles(ts)
	return t
}

func (m *Model) resizeLists() {
	if m.width == 0 {
		return
	}
	listWidth := (m.width - 10) / 2
	if listWidth < 16 {
		listWidth = 16
	}
	listHeight := len(convert.Units(m.category())) + 2
	m.fromList.SetSize(listWidth, listHeight)
	m.toList.SetSize(listWidth, listHeight)
}

// selectedUnit returns the highlighted unit of a list.
func selectedUnit(l list.Model) string {
	if item, ok := l.SelectedItem().(unitItem); ok {
		return string(item)
	}
	return ""
}

// FromUnit returns the currently selected source unit.
func (m Model) FromUnit() string { return selectedUnit(m.fromList) }

// ToUnit returns the currently selected target unit.
func (m Model) ToUnit() string { return selectedUnit(m.toList) }

// Category returns the currently selected category.
func (m Model) Category() convert.Category { return m.category() }
