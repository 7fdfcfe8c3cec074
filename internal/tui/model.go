// Package tui is the terminal rendition of the document design browser.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"dms/internal/domain/models"
	"dms/internal/flow"
	"dms/internal/navigation"
)

type focusArea int

const (
	focusTypes focusArea = iota
	focusDesigns
)

// resultMsg carries a finished fetch back into the update loop
type resultMsg flow.Result

// Model is the bubbletea model of the browser
type Model struct {
	ctx     context.Context
	fetcher flow.Fetcher
	flow    *flow.Flow

	tabs        []navigation.Tab
	nav         []navigation.Item
	sidebarOpen bool

	focus      focusArea
	typeCursor int
	designs    table.Model
	versions   table.Model
	spinner    spinner.Model

	keys   keyMap
	styles Styles
	width  int
	height int
}

// New creates the model. ctx bounds every fetch the model starts.
func New(ctx context.Context, fetcher flow.Fetcher, portalBaseURL string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	designs := table.New(
		table.WithColumns(designColumns()),
		table.WithHeight(8),
	)
	versions := table.New(
		table.WithColumns(versionColumns()),
		table.WithHeight(6),
	)

	return Model{
		ctx:         ctx,
		fetcher:     fetcher,
		flow:        flow.New(),
		tabs:        navigation.Tabs(navigation.TabDocuments),
		nav:         navigation.Items(portalBaseURL),
		sidebarOpen: true,
		designs:     designs,
		versions:    versions,
		spinner:     sp,
		keys:        defaultKeyMap(),
		styles:      DefaultStyles(),
	}
}

// Init starts the type list fetch
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch(m.flow.LoadTypes()))
}

func (m Model) fetch(req *flow.Request) tea.Cmd {
	if req == nil {
		return nil
	}
	ctx, fetcher := m.ctx, m.fetcher
	return func() tea.Msg {
		return resultMsg(req.Do(ctx, fetcher))
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case resultMsg:
		if m.flow.Apply(flow.Result(msg)) {
			m.syncTables()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab(-1)
		return m, nil
	case key.Matches(msg, m.keys.Sidebar):
		m.sidebarOpen = !m.sidebarOpen
		return m, nil
	}

	if m.activeTab() != navigation.TabDocuments {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Dismiss):
		m.flow.DismissVersions()
		m.syncTables()
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		return m, m.fetch(m.flow.LoadTypes())
	case key.Matches(msg, m.keys.Focus):
		m.toggleFocus()
		return m, nil
	}

	if m.focus == focusDesigns {
		if key.Matches(msg, m.keys.Select) {
			return m, m.selectDesign()
		}
		var cmd tea.Cmd
		m.designs, cmd = m.designs.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.typeCursor > 0 {
			m.typeCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.typeCursor < len(m.flow.Types.State().Data)-1 {
			m.typeCursor++
		}
	case key.Matches(msg, m.keys.Select):
		return m, m.selectType()
	}
	return m, nil
}

func (m *Model) selectType() tea.Cmd {
	types := m.flow.Types.State().Data
	if m.typeCursor < 0 || m.typeCursor >= len(types) {
		return nil
	}
	cmd := m.fetch(m.flow.SelectType(types[m.typeCursor].Value))
	m.syncTables()
	if cmd != nil {
		m.setFocus(focusDesigns)
	}
	return cmd
}

func (m *Model) selectDesign() tea.Cmd {
	designs := m.flow.Designs.State().Data
	i := m.designs.Cursor()
	if i < 0 || i >= len(designs) {
		return nil
	}
	cmd := m.fetch(m.flow.SelectDesign(designs[i]))
	m.syncTables()
	return cmd
}

func (m *Model) toggleFocus() {
	if m.focus == focusTypes {
		m.setFocus(focusDesigns)
		return
	}
	m.setFocus(focusTypes)
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	if f == focusDesigns {
		m.designs.Focus()
	} else {
		m.designs.Blur()
	}
}

func (m *Model) switchTab(delta int) {
	active := 0
	for i, t := range m.tabs {
		if t.Active {
			active = i
		}
	}
	next := (active + delta + len(m.tabs)) % len(m.tabs)
	m.tabs = navigation.Tabs(m.tabs[next].ID)
}

func (m Model) activeTab() string {
	for _, t := range m.tabs {
		if t.Active {
			return t.ID
		}
	}
	return navigation.TabDocuments
}

// syncTables copies lane data into the table widgets
func (m *Model) syncTables() {
	designs := m.flow.Designs.State().Data
	rows := make([]table.Row, 0, len(designs))
	for _, d := range designs {
		rows = append(rows, table.Row{d.Name, d.Description, d.Status, d.Version, d.CreatedDate})
	}
	m.designs.SetRows(rows)
	if m.designs.Cursor() >= len(rows) {
		m.designs.SetCursor(0)
	}

	versions := m.flow.Versions.State().Data
	vrows := make([]table.Row, 0, len(versions))
	for _, v := range versions {
		vrows = append(vrows, table.Row{
			string(v.Index),
			string(v.Version),
			string(v.EffectiveDate),
			string(v.StatusText),
			string(v.EnvironmentName),
		})
	}
	m.versions.SetRows(vrows)
	m.versions.SetCursor(0)
}

func designColumns() []table.Column {
	return []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Description", Width: 32},
		{Title: "Status", Width: 10},
		{Title: "Version", Width: 8},
		{Title: "Created", Width: 12},
	}
}

func versionColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Version", Width: 10},
		{Title: "Effective", Width: 12},
		{Title: "Status", Width: 12},
		{Title: "Environment", Width: 16},
	}
}

func typeLabel(t models.DocumentType) string {
	if t.Label != "" {
		return t.Label
	}
	return t.Value
}
