package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the browser
type Styles struct {
	Header      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Sidebar     lipgloss.Style
	NavActive   lipgloss.Style
	NavItem     lipgloss.Style
	Section     lipgloss.Style
	Focused     lipgloss.Style
	Label       lipgloss.Style
	Cursor      lipgloss.Style
	Muted       lipgloss.Style
	Error       lipgloss.Style
	Panel       lipgloss.Style
	Footer      lipgloss.Style
}

const (
	primary = lipgloss.Color("#1e3a5f")
	muted   = lipgloss.Color("#6b7280")
	danger  = lipgloss.Color("#b91c1c")
	border  = lipgloss.Color("#d1d5db")
)

// DefaultStyles returns the default palette
func DefaultStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(primary).Underline(true).Padding(0, 2),
		TabInactive: lipgloss.NewStyle().Foreground(muted).Padding(0, 2),
		Sidebar:     lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(border).PaddingRight(1).MarginRight(1),
		NavActive:   lipgloss.NewStyle().Bold(true).Foreground(primary),
		NavItem:     lipgloss.NewStyle().Foreground(muted),
		Section:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		Focused:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primary).Padding(0, 1),
		Label:       lipgloss.NewStyle().Bold(true),
		Cursor:      lipgloss.NewStyle().Foreground(primary).Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(muted),
		Error:       lipgloss.NewStyle().Foreground(danger),
		Panel:       lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(primary).Padding(0, 1).MarginTop(1),
		Footer:      lipgloss.NewStyle().Foreground(muted).MarginTop(1),
	}
}
