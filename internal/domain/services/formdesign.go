package services

import (
	"context"
	"encoding/json"

	"dms/internal/domain/models"
)

// CatalogService serves the canned (mock) type and design lists
type CatalogService interface {
	// ListDocumentTypes returns the mock type list, unselected option first
	ListDocumentTypes(ctx context.Context) ([]models.DocumentType, error)

	// ListDocumentDesigns returns the mock designs for a type.
	// Unknown and unselected types yield an empty, non-nil slice.
	ListDocumentDesigns(ctx context.Context, docType string) ([]models.DocumentDesignData, error)
}

// FormDesignService forwards requests to the external FormDesign API
type FormDesignService interface {
	// ListDocumentTypes never fails: on upstream errors it returns the
	// fallback list and the error message to show
	ListDocumentTypes(ctx context.Context) *models.DocumentTypesResponse

	// ListDesignsByType never fails: on upstream errors it returns an empty
	// list and the error message to show
	ListDesignsByType(ctx context.Context, docTypeID string) *models.DesignListResponse

	// ListDesignVersions returns the upstream version array verbatim
	ListDesignVersions(ctx context.Context, formDesignID string) (json.RawMessage, error)
}
