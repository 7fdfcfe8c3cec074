package flow

import (
	"context"
	"errors"

	"dms/internal/domain"
	"dms/internal/domain/models"
)

// LaneID names a lane
type LaneID int

const (
	LaneTypes LaneID = iota
	LaneDesigns
	LaneVersions
)

func (id LaneID) String() string {
	switch id {
	case LaneTypes:
		return "types"
	case LaneDesigns:
		return "designs"
	case LaneVersions:
		return "versions"
	default:
		return "unknown"
	}
}

// Fetcher loads the three lists. *client.Client implements it.
type Fetcher interface {
	DocumentTypes(ctx context.Context) (*models.DocumentTypesResponse, error)
	Designs(ctx context.Context, docType string) (*models.DesignListResponse, error)
	Versions(ctx context.Context, design models.DocumentDesignData) ([]models.DocumentDesignVersion, error)
}

// Request is a fetch the caller has to perform, then hand back to Apply
type Request struct {
	Lane   LaneID
	Seq    uint64
	typeID string
	design models.DocumentDesignData
}

// Do performs the fetch. It never touches the Flow, so it may run on any
// goroutine.
func (r *Request) Do(ctx context.Context, f Fetcher) Result {
	res := Result{Lane: r.Lane, Seq: r.Seq}

	switch r.Lane {
	case LaneTypes:
		resp, err := f.DocumentTypes(ctx)
		res.Err = err
		if resp != nil {
			res.Types = resp.Types
			if resp.Error != "" {
				res.Err = &RemoteError{Message: resp.Error}
			}
		}
	case LaneDesigns:
		resp, err := f.Designs(ctx, r.typeID)
		res.Err = err
		if resp != nil {
			res.Designs = resp.Data
			if resp.Error != "" {
				res.Err = &RemoteError{Message: resp.Error}
			}
		}
	case LaneVersions:
		res.Versions, res.Err = f.Versions(ctx, r.design)
	}

	return res
}

// Result is the outcome of a Request
type Result struct {
	Lane     LaneID
	Seq      uint64
	Types    []models.DocumentType
	Designs  []models.DocumentDesignData
	Versions []models.DocumentDesignVersion
	Err      error
}

// RemoteError is an error message the server answered inside a successful
// response, next to fallback data
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

// Flow is the type → design → versions selection
type Flow struct {
	Types    Lane[[]models.DocumentType]
	Designs  Lane[[]models.DocumentDesignData]
	Versions Lane[[]models.DocumentDesignVersion]

	selectedType   string
	selectedDesign *models.DocumentDesignData
}

// New returns a flow with nothing selected
func New() *Flow {
	return &Flow{selectedType: models.UnselectedTypeValue}
}

// SelectedType returns the selected type value ("0" when none)
func (f *Flow) SelectedType() string {
	return f.selectedType
}

// SelectedDesign returns the design whose versions are shown, if any
func (f *Flow) SelectedDesign() (models.DocumentDesignData, bool) {
	if f.selectedDesign == nil {
		return models.DocumentDesignData{}, false
	}
	return *f.selectedDesign, true
}

// VersionPanelOpen reports whether the version panel is shown
func (f *Flow) VersionPanelOpen() bool {
	return f.selectedDesign != nil
}

// LoadTypes starts (or restarts) the type list fetch
func (f *Flow) LoadTypes() *Request {
	return &Request{Lane: LaneTypes, Seq: f.Types.Begin()}
}

// SelectType clears the selected design and its versions, then starts the
// design fetch for the type. The unselected type resets the design list and
// returns no request.
func (f *Flow) SelectType(value string) *Request {
	f.DismissVersions()

	if models.IsUnselectedType(value) {
		f.selectedType = models.UnselectedTypeValue
		f.Designs.Reset()
		return nil
	}

	f.selectedType = value
	return &Request{Lane: LaneDesigns, Seq: f.Designs.Begin(), typeID: value}
}

// SelectDesign opens the version panel for a design and starts the version
// fetch. A design without any id-like field fails the lane immediately with
// domain.ErrMissingDesignID and returns no request.
func (f *Flow) SelectDesign(design models.DocumentDesignData) *Request {
	d := design
	f.selectedDesign = &d

	seq := f.Versions.Begin()
	if _, ok := design.ResolveID(); !ok {
		f.Versions.Resolve(seq, nil, domain.ErrMissingDesignID)
		return nil
	}
	return &Request{Lane: LaneVersions, Seq: seq, design: design}
}

// DismissVersions closes the version panel, clearing the selected design
// and its versions. The type and design list are untouched.
func (f *Flow) DismissVersions() {
	f.selectedDesign = nil
	f.Versions.Reset()
}

// Apply hands a Result back to its lane. It reports false for stale
// results, which leave the state untouched.
func (f *Flow) Apply(res Result) bool {
	switch res.Lane {
	case LaneTypes:
		return f.Types.Resolve(res.Seq, res.Types, res.Err)
	case LaneDesigns:
		return f.Designs.Resolve(res.Seq, res.Designs, res.Err)
	case LaneVersions:
		return f.Versions.Resolve(res.Seq, res.Versions, res.Err)
	default:
		return false
	}
}

// IsRemoteError reports whether err is an error answered next to fallback data
func IsRemoteError(err error) bool {
	var remote *RemoteError
	return errors.As(err, &remote)
}
