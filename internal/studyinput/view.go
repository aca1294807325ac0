package studyinput

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/study-input/internal/format/table"
	"github.com/atomicstack/study-input/internal/theme"
)

const (
	goalLabel       = "What's your learning objective?"
	attachLabel     = "Upload supplementary materials (optional)"
	attachButton    = "📎 Attach Files"
	filesTitle      = "Selected files:"
	submitLabel     = "✦ Create My Plan"
	busyLabel       = "Generating Plan..."
	pickerHint      = "enter: mark  tab: done  esc: cancel"
	fileBullet      = "• "
	filesPanelInset = 4
)

// viewInput is everything the form's appearance depends on.
type viewInput struct {
	width        int
	focus        Focus
	loading      bool
	goalView     string
	files        []FileHandle
	state        SubmitState
	spinnerFrame string

	pickerOpen bool
	pickerView string
	pickerDir  string
	marked     []string
}

func render(in viewInput) string {
	width := in.width
	if width <= 0 {
		width = defaultWidth
	}
	sections := []string{
		theme.Render(styles.Label, fit(goalLabel, width)),
		renderGoal(in, width),
		"",
		theme.Render(styles.SubLabel, fit(attachLabel, width)),
		renderAttachTrigger(in),
	}
	if in.pickerOpen {
		sections = append(sections, renderPicker(in, width))
	}
	if len(in.files) > 0 {
		sections = append(sections, renderFiles(in.files, width))
	}
	sections = append(sections, "", renderSubmit(in, width))
	return strings.Join(sections, "\n")
}

func renderGoal(in viewInput, width int) string {
	style := styles.GoalFrame
	if in.focus == FocusGoal && !in.loading && !in.pickerOpen {
		style = styles.GoalFrameFocus
	}
	if style == nil {
		return in.goalView
	}
	return style.Width(width - goalFrameOverhead).Render(in.goalView)
}

func renderAttachTrigger(in viewInput) string {
	style := styles.Attach
	switch {
	case in.loading:
		style = styles.AttachDisabled
	case in.focus == FocusAttach || in.pickerOpen:
		style = styles.AttachFocus
	}
	return theme.Render(style, attachButton)
}

func renderPicker(in viewInput, width int) string {
	lines := []string{
		theme.Render(styles.Hint, fit(in.pickerDir, width)),
		strings.TrimRight(in.pickerView, "\n"),
	}
	if len(in.marked) > 0 {
		summary := fmt.Sprintf("Marked (%d): %s", len(in.marked), strings.Join(in.marked, ", "))
		lines = append(lines, theme.Render(styles.FileMarked, fit(summary, width)))
	}
	lines = append(lines, theme.Render(styles.Hint, fit(pickerHint, width)))
	return strings.Join(lines, "\n")
}

// renderFiles lists one bullet per selected file with its size aligned in a
// second column.
func renderFiles(files []FileHandle, width int) string {
	sizes := make([]string, len(files))
	sizeWidth := 0
	for i, f := range files {
		sizes[i] = f.SizeLabel()
		if w := lipgloss.Width(sizes[i]); w > sizeWidth {
			sizeWidth = w
		}
	}
	nameWidth := width - filesPanelInset - lipgloss.Width(fileBullet) - sizeWidth - 2
	if nameWidth < 4 {
		nameWidth = 4
	}
	rows := make([][]string, len(files))
	for i, f := range files {
		name := truncate.StringWithTail(f.Name, uint(nameWidth), "…")
		rows[i] = []string{
			theme.Render(styles.FileName, fileBullet+name),
			theme.Render(styles.FileSize, sizes[i]),
		}
	}
	lines := []string{theme.Render(styles.FilesTitle, filesTitle)}
	lines = append(lines, table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})...)
	body := strings.Join(lines, "\n")
	if styles.FilesPanel == nil {
		return body
	}
	return styles.FilesPanel.Width(width - 2).Render(body)
}

func renderSubmit(in viewInput, width int) string {
	label := submitLabel
	style := styles.Submit
	switch in.state {
	case Busy:
		label = strings.TrimSpace(in.spinnerFrame + " " + busyLabel)
		style = styles.SubmitBusy
	case IdleInvalid:
		style = styles.SubmitDisabled
	default:
		if in.focus == FocusSubmit {
			style = styles.SubmitFocus
		}
	}
	if style == nil {
		return label
	}
	return style.Width(width).Align(lipgloss.Center).Render(label)
}

func fit(s string, width int) string {
	return truncate.StringWithTail(s, uint(width), "…")
}
