package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dms/internal/domain"
	"dms/internal/flow"
	"dms/internal/navigation"
)

// View renders the screen
func (m Model) View() string {
	header := m.styles.Header.Render("Document Management")
	body := m.renderTab()
	if m.sidebarOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), body)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.renderTabs(),
		body,
		m.renderHelp(),
		m.styles.Footer.Render(navigation.Footer),
	)
}

func (m Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for _, t := range m.tabs {
		if t.Active {
			parts = append(parts, m.styles.TabActive.Render(t.Label))
		} else {
			parts = append(parts, m.styles.TabInactive.Render(t.Label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderSidebar() string {
	var sb strings.Builder
	for _, item := range m.nav {
		if item.Active {
			sb.WriteString(m.styles.NavActive.Render("▸ " + item.Label))
		} else {
			sb.WriteString(m.styles.NavItem.Render("  " + item.Label))
		}
		sb.WriteString("\n")
	}
	return m.styles.Sidebar.Render(strings.TrimSuffix(sb.String(), "\n"))
}

func (m Model) renderTab() string {
	if m.activeTab() != navigation.TabDocuments {
		for _, t := range m.tabs {
			if t.Active {
				return m.styles.Section.Render(t.Label + "\n\n" + m.styles.Muted.Render("This section is under development."))
			}
		}
	}

	typesBox := m.styles.Section
	designsBox := m.styles.Section
	if m.focus == focusTypes {
		typesBox = m.styles.Focused
	} else {
		designsBox = m.styles.Focused
	}

	lists := lipgloss.JoinHorizontal(lipgloss.Top,
		typesBox.Render(m.renderTypes()),
		designsBox.Render(m.renderDesigns()),
	)

	if !m.flow.VersionPanelOpen() {
		return lists
	}
	return lipgloss.JoinVertical(lipgloss.Left, lists, m.styles.Panel.Render(m.renderVersions()))
}

func (m Model) renderTypes() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Label.Render("Document Type"))
	sb.WriteString("\n")

	state := m.flow.Types.State()
	if state.Status == flow.Loading {
		sb.WriteString(m.spinner.View() + " Loading types...")
		return sb.String()
	}

	for i, t := range state.Data {
		line := "  " + typeLabel(t)
		if t.Value == m.flow.SelectedType() && !t.IsUnselected() {
			line += " ✓"
		}
		if i == m.typeCursor {
			line = m.styles.Cursor.Render("> " + strings.TrimPrefix(line, "  "))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if state.Err != nil {
		sb.WriteString(m.styles.Error.Render(state.Err.Error()))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (m Model) renderDesigns() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Label.Render("Document Designs"))
	sb.WriteString("\n")

	state := m.flow.Designs.State()
	switch state.Status {
	case flow.Idle:
		sb.WriteString(m.styles.Muted.Render("Select a document type to list its designs."))
	case flow.Loading:
		sb.WriteString(m.spinner.View() + " Loading designs...")
	case flow.Failed:
		sb.WriteString(m.styles.Error.Render("Failed to load designs: " + state.Err.Error()))
	case flow.Loaded:
		if len(state.Data) == 0 {
			sb.WriteString(m.styles.Muted.Render("No designs found for this document type."))
		} else {
			sb.WriteString(m.designs.View())
		}
	}
	return sb.String()
}

func (m Model) renderVersions() string {
	var sb strings.Builder
	design, _ := m.flow.SelectedDesign()
	sb.WriteString(m.styles.Label.Render("Versions of " + design.Name))
	sb.WriteString(m.styles.Muted.Render("  (esc to close)"))
	sb.WriteString("\n")

	state := m.flow.Versions.State()
	switch state.Status {
	case flow.Loading:
		sb.WriteString(m.spinner.View() + " Loading versions...")
	case flow.Failed:
		msg := state.Err.Error()
		if errors.Is(state.Err, domain.ErrMissingDesignID) {
			msg = "This design has no identifier to look up versions with."
		}
		sb.WriteString(m.styles.Error.Render(msg))
	case flow.Loaded:
		if len(state.Data) == 0 {
			sb.WriteString(m.styles.Muted.Render("No versions found."))
		} else {
			sb.WriteString(m.versions.View())
		}
	}
	return sb.String()
}

func (m Model) renderHelp() string {
	parts := make([]string, 0, len(m.keys.help()))
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Muted.Render(strings.Join(parts, " • "))
}
