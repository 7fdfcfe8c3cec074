package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dms/internal/domain/models"
	"dms/internal/flow"
	"dms/internal/navigation"
)

type fakeFetcher struct {
	calls []string
}

func (f *fakeFetcher) DocumentTypes(ctx context.Context) (*models.DocumentTypesResponse, error) {
	f.calls = append(f.calls, "types")
	return &models.DocumentTypesResponse{Types: []models.DocumentType{
		{Value: "0", Label: "--Select--"},
		{Value: "1", Label: "Anchor"},
		{Value: "2", Label: "MasterList"},
	}}, nil
}

func (f *fakeFetcher) Designs(ctx context.Context, docType string) (*models.DesignListResponse, error) {
	f.calls = append(f.calls, "designs:"+docType)
	return &models.DesignListResponse{Data: []models.DocumentDesignData{
		{ID: "master_1", Name: "Primary Master List", Status: "Active", Version: "1.5.2"},
		{ID: "master_2", Name: "Secondary Master List", Status: "Active", Version: "1.3.1"},
	}}, nil
}

func (f *fakeFetcher) Versions(ctx context.Context, design models.DocumentDesignData) ([]models.DocumentDesignVersion, error) {
	id, _ := design.ResolveID()
	f.calls = append(f.calls, "versions:"+id)
	return []models.DocumentDesignVersion{{Index: "1", Version: "1.0", StatusText: "Active", EnvironmentName: "DEV"}}, nil
}

// send delivers msg and runs any fetch it triggers to completion
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	for cmd != nil {
		res, ok := cmd().(resultMsg)
		if !ok {
			return m
		}
		next, cmd = m.Update(res)
		m = next.(Model)
	}
	return m
}

func keyMsg(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func loaded(t *testing.T, fetcher *fakeFetcher) Model {
	t.Helper()
	m := New(context.Background(), fetcher, "https://portal.test")
	msg := m.fetch(m.flow.LoadTypes())()
	return send(t, m, msg)
}

func TestModel_TypeDesignVersionFlow(t *testing.T) {
	fetcher := &fakeFetcher{}
	m := loaded(t, fetcher)
	require.Equal(t, flow.Loaded, m.flow.Types.State().Status)
	assert.Contains(t, m.View(), "MasterList")

	m = send(t, m, keyMsg(tea.KeyDown))
	m = send(t, m, keyMsg(tea.KeyDown))
	assert.Equal(t, 2, m.typeCursor)

	m = send(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, "2", m.flow.SelectedType())
	assert.Equal(t, flow.Loaded, m.flow.Designs.State().Status)
	assert.Equal(t, focusDesigns, m.focus)
	assert.Contains(t, m.View(), "Primary Master List")

	m = send(t, m, keyMsg(tea.KeyEnter))
	require.True(t, m.flow.VersionPanelOpen())
	assert.Equal(t, flow.Loaded, m.flow.Versions.State().Status)
	assert.Contains(t, m.View(), "Versions of Primary Master List")

	m = send(t, m, keyMsg(tea.KeyEsc))
	assert.False(t, m.flow.VersionPanelOpen())
	assert.Equal(t, flow.Loaded, m.flow.Designs.State().Status)
	assert.NotContains(t, m.View(), "Versions of")

	assert.Equal(t, []string{"types", "designs:2", "versions:master_1"}, fetcher.calls)
}

func TestModel_UnselectedTypeFetchesNothing(t *testing.T) {
	fetcher := &fakeFetcher{}
	m := loaded(t, fetcher)

	m = send(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, flow.Idle, m.flow.Designs.State().Status)
	assert.Equal(t, focusTypes, m.focus)
	assert.Equal(t, []string{"types"}, fetcher.calls)
	assert.Contains(t, m.View(), "Select a document type")
}

func TestModel_StaleResultIgnored(t *testing.T) {
	fetcher := &fakeFetcher{}
	m := loaded(t, fetcher)

	stale := m.fetch(m.flow.SelectType("1"))
	m.flow.SelectType("0")

	m = send(t, m, stale())
	assert.Equal(t, flow.Idle, m.flow.Designs.State().Status)
}

func TestModel_Tabs(t *testing.T) {
	m := loaded(t, &fakeFetcher{})

	m = send(t, m, keyMsg(tea.KeyRight))
	assert.Equal(t, navigation.TabFolder, m.activeTab())
	assert.Contains(t, m.View(), "under development")

	m = send(t, m, keyMsg(tea.KeyLeft))
	m = send(t, m, keyMsg(tea.KeyLeft))
	assert.Equal(t, navigation.TabDesignSync, m.activeTab())

	m = send(t, m, keyMsg(tea.KeyRight))
	assert.Equal(t, navigation.TabDocuments, m.activeTab())
}

func TestModel_Sidebar(t *testing.T) {
	m := loaded(t, &fakeFetcher{})
	assert.Contains(t, m.View(), "Rules Manager")

	m = send(t, m, runes("s"))
	assert.False(t, m.sidebarOpen)
	assert.NotContains(t, m.View(), "Rules Manager")
}

func TestModel_Quit(t *testing.T) {
	m := loaded(t, &fakeFetcher{})
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
