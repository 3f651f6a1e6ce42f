package tui

import (
	"fmt"
	"strconv"
	"strings"

	"unitconv/cmd/unitconv/ui"
	"unitconv/internal/config"
	"unitconv/internal/convert"
	"unitconv/internal/history"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeLists()
		m.input.Width = 30
		// Rebuild the renderer at the new width so the About overlay wraps.
		m.renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(min(m.width-4, 76)),
		)
		return m, nil

	case configReloadedMsg:
		m.applyConfig(msg.cfg)
		return m, waitForReload(m.reloads)

	case historyLoadedMsg:
		if msg.err != nil {
			m.status = "history unavailable: " + msg.err.Error()
			return m, nil
		}
		m.histView.SetRows(historyRows(msg.entries, m.cfg.Display.Precision))
		return m, nil

	case historySavedMsg:
		if msg.err != nil {
			m.status = "could not save: " + msg.err.Error()
		} else {
			m.status = "saved to history"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits, whatever is focused.
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Overlays capture everything until dismissed.
	if m.overlay != overlayNone {
		return m.handleOverlayKey(msg)
	}

	switch msg.Type {
	case tea.KeyTab:
		m.cycleFocus(1)
		return m, nil
	case tea.KeyShiftTab:
		m.cycleFocus(-1)
		return m, nil
	case tea.KeyEnter:
		return m, m.saveCmd()
	}

	switch msg.String() {
	case "[":
		m.switchCategory(-1)
		return m, nil
	case "]":
		m.switchCategory(1)
		return m, nil
	}

	// The value field absorbs printable keys, so letter shortcuts are only
	// active while a unit list is focused. The footer reflects this.
	if m.focus != focusValue {
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "s":
			m.swapUnits()
			return m, nil
		case "a":
			m.overlay = overlayAbout
			return m, nil
		case "h":
			m.overlay = overlayHistory
			m.status = ""
			return m, m.loadHistoryCmd()
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusValue:
		m.input, cmd = m.input.Update(msg)
	case focusFrom:
		m.fromList, cmd = m.fromList.Update(msg)
	case focusTo:
		m.toList, cmd = m.toList.Update(msg)
	}
	m.recompute()
	return m, cmd
}

func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "a", "h":
		m.overlay = overlayNone
		return m, nil
	}
	if m.overlay == overlayHistory {
		var cmd tea.Cmd
		m.histView, cmd = m.histView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) cycleFocus(dir int) {
	m.focus = focusArea((int(m.focus) + dir + 3) % 3)
	if m.focus == focusValue {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) switchCategory(dir int) {
	m.categoryIdx = (m.categoryIdx + dir + len(m.categories)) % len(m.categories)
	m.rebuildUnitLists()
	m.status = ""
	m.recompute()
}

func (m *Model) swapUnits() {
	from := m.fromList.Index()
	to := m.toList.Index()
	m.fromList.Select(to)
	m.toList.Select(from)
	m.recompute()
}

// applyConfig is called on watcher reloads. Precision and theme take effect
// immediately; storage settings need a restart and are left alone.
func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg.Display = cfg.Display
	m.styles = ui.NewStyles(ui.ThemeByName(cfg.Display.Theme))
	m.histView = newHistoryTable(m.styles)
	m.rebuildUnitLists()
	m.recompute()
	m.status = "config reloaded"
	m.logger.Debug("applied reloaded config",
		zap.Int("precision", cfg.Display.Precision),
		zap.String("theme", cfg.Display.Theme))
}

// inputValue parses the value field. An empty field reads as 0, matching the
// original form's default.
func (m Model) inputValue() (float64, error) {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// recompute re-runs the conversion for the current form state. Engine errors
// are rendered, never fatal.
func (m *Model) recompute() {
	m.resultOK = false
	m.convErr = ""

	value, err := m.inputValue()
	if err != nil {
		m.convErr = fmt.Sprintf("%q is not a number", m.input.Value())
		return
	}

	result, err := convert.Convert(value, m.FromUnit(), m.ToUnit(), m.category())
	if err != nil {
		m.convErr = err.Error()
		return
	}
	m.result = result
	m.resultOK = true
}

// saveCmd records the current conversion, enforcing the configured cap.
func (m Model) saveCmd() tea.Cmd {
	if m.store == nil || !m.resultOK {
		return nil
	}
	value, _ := m.inputValue()
	category := string(m.category())
	from, to := m.FromUnit(), m.ToUnit()
	result := m.result
	max := m.cfg.History.MaxEntries
	store := m.store

	return func() tea.Msg {
		if _, err := store.Record(category, from, to, value, result); err != nil {
			return historySavedMsg{err: err}
		}
		return historySavedMsg{err: store.Prune(max)}
	}
}

func (m Model) loadHistoryCmd() tea.Cmd {
	if m.store == nil {
		return func() tea.Msg {
			return historyLoadedMsg{err: fmt.Errorf("history is disabled")}
		}
	}
	store := m.store
	return func() tea.Msg {
		entries, err := store.Recent(50)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func historyRows(entries []history.Entry, precision int) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			e.Category,
			fmt.Sprintf("%s %s = %s %s",
				strconv.FormatFloat(e.Input, 'f', precision, 64), e.FromUnit,
				strconv.FormatFloat(e.Result, 'f', precision, 64), e.ToUnit),
		})
	}
	return rows
}
