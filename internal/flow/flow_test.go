package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dms/internal/domain"
	"dms/internal/domain/models"
)

// fakeFetcher answers canned lists and counts calls
type fakeFetcher struct {
	types    *models.DocumentTypesResponse
	designs  map[string]*models.DesignListResponse
	versions []models.DocumentDesignVersion
	err      error
	calls    []string
}

func (f *fakeFetcher) DocumentTypes(ctx context.Context) (*models.DocumentTypesResponse, error) {
	f.calls = append(f.calls, "types")
	return f.types, f.err
}

func (f *fakeFetcher) Designs(ctx context.Context, docType string) (*models.DesignListResponse, error) {
	f.calls = append(f.calls, "designs:"+docType)
	if f.err != nil {
		return nil, f.err
	}
	return f.designs[docType], nil
}

func (f *fakeFetcher) Versions(ctx context.Context, design models.DocumentDesignData) ([]models.DocumentDesignVersion, error) {
	id, _ := design.ResolveID()
	f.calls = append(f.calls, "versions:"+id)
	return f.versions, f.err
}

func TestLane(t *testing.T) {
	var lane Lane[[]string]
	assert.Equal(t, Idle, lane.State().Status)

	first := lane.Begin()
	second := lane.Begin()
	assert.Equal(t, Loading, lane.State().Status)

	// Stale response is discarded
	assert.False(t, lane.Resolve(first, []string{"old"}, nil))
	assert.Equal(t, Loading, lane.State().Status)

	assert.True(t, lane.Resolve(second, []string{"new"}, nil))
	assert.Equal(t, Loaded, lane.State().Status)
	assert.Equal(t, []string{"new"}, lane.State().Data)

	// Already resolved
	assert.False(t, lane.Resolve(second, []string{"again"}, nil))

	third := lane.Begin()
	lane.Reset()
	assert.False(t, lane.Resolve(third, nil, errors.New("late")))
	assert.Equal(t, Idle, lane.State().Status)
}

func TestLane_FailedKeepsData(t *testing.T) {
	var lane Lane[[]string]
	seq := lane.Begin()
	require.True(t, lane.Resolve(seq, []string{"fallback"}, errors.New("down")))

	state := lane.State()
	assert.Equal(t, Failed, state.Status)
	assert.Equal(t, []string{"fallback"}, state.Data)
	assert.EqualError(t, state.Err, "down")
	assert.Equal(t, "failed", state.Status.String())
}

func TestFlow_SelectionSequence(t *testing.T) {
	fetcher := &fakeFetcher{
		types: &models.DocumentTypesResponse{Types: []models.DocumentType{{Value: "0", Label: "--Select--"}, {Value: "2", Label: "MasterList"}}},
		designs: map[string]*models.DesignListResponse{
			"2": {Data: []models.DocumentDesignData{{ID: "master_1", Name: "Primary Master List"}}},
		},
		versions: []models.DocumentDesignVersion{{Index: "0", Version: "1.0"}},
	}
	ctx := context.Background()
	f := New()
	assert.Equal(t, "0", f.SelectedType())

	req := f.LoadTypes()
	require.True(t, f.Apply(req.Do(ctx, fetcher)))
	assert.Equal(t, Loaded, f.Types.State().Status)
	assert.Len(t, f.Types.State().Data, 2)

	req = f.SelectType("2")
	require.NotNil(t, req)
	assert.Equal(t, Loading, f.Designs.State().Status)
	require.True(t, f.Apply(req.Do(ctx, fetcher)))
	designs := f.Designs.State().Data
	require.Len(t, designs, 1)

	req = f.SelectDesign(designs[0])
	require.NotNil(t, req)
	assert.True(t, f.VersionPanelOpen())
	require.True(t, f.Apply(req.Do(ctx, fetcher)))
	assert.Equal(t, Loaded, f.Versions.State().Status)
	assert.Len(t, f.Versions.State().Data, 1)

	f.DismissVersions()
	assert.False(t, f.VersionPanelOpen())
	assert.Equal(t, Idle, f.Versions.State().Status)
	assert.Equal(t, Loaded, f.Designs.State().Status)
	assert.Equal(t, "2", f.SelectedType())

	assert.Equal(t, []string{"types", "designs:2", "versions:master_1"}, fetcher.calls)
}

func TestFlow_UnselectedTypeFetchesNothing(t *testing.T) {
	f := New()
	f.Designs.Begin()
	f.SelectDesign(models.DocumentDesignData{ID: "x"})

	assert.Nil(t, f.SelectType("0"))
	assert.Equal(t, Idle, f.Designs.State().Status)
	assert.False(t, f.VersionPanelOpen())
	assert.Equal(t, Idle, f.Versions.State().Status)
	assert.Equal(t, "0", f.SelectedType())
}

func TestFlow_StaleDesignsDiscarded(t *testing.T) {
	fetcher := &fakeFetcher{designs: map[string]*models.DesignListResponse{
		"1": {Data: []models.DocumentDesignData{{ID: "anchor_1"}}},
		"2": {Data: []models.DocumentDesignData{{ID: "master_1"}}},
	}}
	ctx := context.Background()
	f := New()

	slow := f.SelectType("1")
	fast := f.SelectType("2")

	require.True(t, f.Apply(fast.Do(ctx, fetcher)))
	assert.False(t, f.Apply(slow.Do(ctx, fetcher)))

	designs := f.Designs.State().Data
	require.Len(t, designs, 1)
	assert.Equal(t, "master_1", designs[0].ID)
}

func TestFlow_StaleDesignsAfterReset(t *testing.T) {
	fetcher := &fakeFetcher{designs: map[string]*models.DesignListResponse{
		"1": {Data: []models.DocumentDesignData{{ID: "anchor_1"}}},
	}}
	f := New()

	req := f.SelectType("1")
	f.SelectType("0")
	assert.False(t, f.Apply(req.Do(context.Background(), fetcher)))
	assert.Equal(t, Idle, f.Designs.State().Status)
}

func TestFlow_StaleVersionsAfterDismiss(t *testing.T) {
	fetcher := &fakeFetcher{versions: []models.DocumentDesignVersion{{Version: "1"}}}
	f := New()

	req := f.SelectDesign(models.DocumentDesignData{FormDesignID: "9"})
	f.DismissVersions()
	assert.False(t, f.Apply(req.Do(context.Background(), fetcher)))
	assert.Equal(t, Idle, f.Versions.State().Status)
}

func TestFlow_MissingDesignID(t *testing.T) {
	f := New()

	req := f.SelectDesign(models.DocumentDesignData{Name: "nameless"})
	assert.Nil(t, req)
	assert.True(t, f.VersionPanelOpen())

	state := f.Versions.State()
	assert.Equal(t, Failed, state.Status)
	assert.ErrorIs(t, state.Err, domain.ErrMissingDesignID)
}

func TestFlow_RemoteError(t *testing.T) {
	fetcher := &fakeFetcher{types: &models.DocumentTypesResponse{
		Types: []models.DocumentType{{Value: "0", Label: "--Select--"}, {Value: "error", Label: "⚠️ API Connection Failed"}},
		Error: "Network error connecting to external FormDesign API.",
	}}
	f := New()

	require.True(t, f.Apply(f.LoadTypes().Do(context.Background(), fetcher)))
	state := f.Types.State()
	assert.Equal(t, Failed, state.Status)
	assert.Len(t, state.Data, 2)
	assert.True(t, IsRemoteError(state.Err))
	assert.EqualError(t, state.Err, "Network error connecting to external FormDesign API.")
}

func TestFlow_TransportError(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	f := New()

	req := f.SelectType("2")
	require.True(t, f.Apply(req.Do(context.Background(), fetcher)))
	state := f.Designs.State()
	assert.Equal(t, Failed, state.Status)
	assert.False(t, IsRemoteError(state.Err))
	assert.Empty(t, state.Data)
}
