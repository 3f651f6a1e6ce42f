package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// aboutMarkdown is the content of the About overlay, carried over from the
// original converter's info panel.
const aboutMarkdown = `# Unit Converter

Convert between different units of measurement.

Supported categories:

- **Length** — Meter, Kilometer, Centimeter, Millimeter, Mile, Yard, Foot, Inch
- **Weight** — Kilogram, Gram, Milligram, Pound, Ounce
- **Temperature** — Celsius, Fahrenheit, Kelvin

Values are rounded to the configured precision (4 decimal places by
default) for display. Conversions you save with Enter appear in the
history panel.
`

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	switch m.overlay {
	case overlayAbout:
		return m.renderAbout()
	case overlayHistory:
		return m.renderHistory()
	}

	sections := []string{
		m.styles.Header.Render("Unit Converter"),
		m.renderCategoryTabs(),
		m.renderValueField(),
		m.renderUnitLists(),
		m.renderResult(),
		m.renderFooter(),
	}
	return m.styles.Content.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderCategoryTabs() string {
	tabs := make([]string, 0, len(m.categories))
	for i, c := range m.categories {
		label := " " + string(c) + " "
		if i == m.categoryIdx {
			tabs = append(tabs, m.styles.Selected.Render("["+label+"]"))
		} else {
			tabs = append(tabs, m.styles.Muted.Render(" "+label+" "))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

func (m Model) renderValueField() string {
	label := m.styles.Label.Render("Value")
	field := m.input.View()
	if m.focus == focusValue {
		field = m.styles.Focused.Render(field)
	} else {
		field = m.styles.Blurred.Render(field)
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, field)
}

func (m Model) renderUnitLists() string {
	from := m.fromList.View()
	to := m.toList.View()
	if m.focus == focusFrom {
		from = m.styles.Focused.Render(from)
	} else {
		from = m.styles.Blurred.Render(from)
	}
	if m.focus == focusTo {
		to = m.styles.Focused.Render(to)
	} else {
		to = m.styles.Blurred.Render(to)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, from, "  ", to)
}

func (m Model) renderResult() string {
	if m.convErr != "" {
		return m.styles.Error.Render("Error in conversion: " + m.convErr)
	}
	if !m.resultOK {
		return ""
	}
	value, _ := m.inputValue()
	p := m.cfg.Display.Precision
	line := fmt.Sprintf("%s %s  =  %s %s",
		strconv.FormatFloat(value, 'f', p, 64), m.FromUnit(),
		strconv.FormatFloat(m.result, 'f', p, 64), m.ToUnit())
	return m.styles.Result.Render(line)
}

func (m Model) renderFooter() string {
	help := "tab focus · [/] category · ↑/↓ unit · enter save"
	if m.focus != focusValue {
		help += " · s swap · a about · h history · q quit"
	} else {
		help += " · ctrl+c quit"
	}
	footer := m.styles.Footer.Render(help)
	if m.status != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, m.styles.Muted.Render(m.status), footer)
	}
	return footer
}

func (m Model) renderAbout() string {
	body := m.safeRenderMarkdown(aboutMarkdown)
	hint := m.styles.Footer.Render("esc close")
	return m.styles.Content.Render(lipgloss.JoinVertical(lipgloss.Left, body, hint))
}

func (m Model) renderHistory() string {
	title := m.styles.Title.Render("Recent conversions")
	body := m.histView.View()
	if len(m.histView.Rows()) == 0 {
		note := "no conversions recorded yet"
		if m.status != "" {
			note = m.status
		}
		body = m.styles.Muted.Render(note)
	}
	hint := m.styles.Footer.Render("↑/↓ scroll · esc close")
	return m.styles.Content.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.styles.RenderDivider(40),
		body,
		hint,
	))
}

// safeRenderMarkdown renders markdown with panic recovery; glamour can
// panic on odd terminal widths.
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		rendered, err := m.renderer.Render(content)
		if err == nil {
			return rendered
		}
	}
	// Fall back to plain text with markdown markers stripped crudely.
	return strings.ReplaceAll(content, "**", "")
}
