package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Label          *lipgloss.Style
	SubLabel       *lipgloss.Style
	Hint           *lipgloss.Style
	GoalFrame      *lipgloss.Style
	GoalFrameFocus *lipgloss.Style
	Attach         *lipgloss.Style
	AttachFocus    *lipgloss.Style
	AttachDisabled *lipgloss.Style
	FilesPanel     *lipgloss.Style
	FilesTitle     *lipgloss.Style
	FileName       *lipgloss.Style
	FileSize       *lipgloss.Style
	FileMarked     *lipgloss.Style
	Submit         *lipgloss.Style
	SubmitFocus    *lipgloss.Style
	SubmitDisabled *lipgloss.Style
	SubmitBusy     *lipgloss.Style
	Spinner        *lipgloss.Style
	Error          *lipgloss.Style
	PlanTitle      *lipgloss.Style
	PlanBody       *lipgloss.Style
	Footer         *lipgloss.Style
}

var defaultStyles = Styles{
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
	),
	SubLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Hint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	GoalFrame: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
	),
	GoalFrameFocus: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")),
	),
	Attach: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")).Padding(0, 2),
	),
	AttachFocus: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("63")).Padding(0, 2).Bold(true),
	),
	AttachDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Background(lipgloss.Color("236")).Padding(0, 2),
	),
	FilesPanel: ptr(
		lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
	),
	FilesTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	FileName: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	FileSize: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	FileMarked: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
	),
	Submit: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("61")).Padding(0, 3).Bold(true),
	),
	SubmitFocus: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("63")).Padding(0, 3).Bold(true).Underline(true),
	),
	SubmitDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Background(lipgloss.Color("239")).Padding(0, 3),
	),
	SubmitBusy: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("239")).Padding(0, 3),
	),
	Spinner: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	PlanTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	PlanBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Render applies style when present and returns text untouched otherwise.
func Render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
