package ui

import (
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/study-input/internal/theme"
)

const (
	defaultWidth  = 64
	minPlanHeight = 3
	maxPlanHeight = 15
	planTitle     = "Study plan"
	quitHint      = "esc quit"
)

// View implements tea.Model.
func (m *Model) View() string {
	width := m.viewWidth()
	sections := []string{m.form.View()}
	if m.errMsg != "" {
		sections = append(sections, "", theme.Render(styles.Error, truncateText("Error: "+m.errMsg, width)))
	}
	if m.planText != "" {
		sections = append(sections,
			"",
			theme.Render(styles.PlanTitle, planTitle),
			theme.Render(styles.PlanBody, m.planView.View()),
		)
	}
	if m.showFooter {
		sections = append(sections, "", theme.Render(styles.Footer, truncateText(m.footerText(), width)))
	}
	return strings.Join(sections, "\n")
}

func (m *Model) footerText() string {
	help := m.form.HelpView()
	if m.form.PickerOpen() {
		return help
	}
	if help == "" {
		return quitHint
	}
	return help + " • " + quitHint
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

// syncPlanView sizes the plan viewport to what is left below the form.
func (m *Model) syncPlanView() {
	m.planView.Width = m.viewWidth()
	height := maxPlanHeight
	if m.height > 0 {
		height = m.height / 3
	}
	if height < minPlanHeight {
		height = minPlanHeight
	}
	if height > maxPlanHeight {
		height = maxPlanHeight
	}
	m.planView.Height = height
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
