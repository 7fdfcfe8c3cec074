package handler

import (
	"log/slog"
	"net/http"

	"dms/internal/domain/models"
	"dms/internal/domain/services"
	"dms/internal/httputil"
)

// CatalogHandler serves the mock type and design lists
type CatalogHandler struct {
	catalog services.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog services.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// ListDocumentTypes returns the mock document types
// GET /api/document-types
func (h *CatalogHandler) ListDocumentTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.catalog.ListDocumentTypes(r.Context())
	if err != nil {
		h.logger.Error("error fetching document types", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "Failed to fetch document types")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, models.DocumentTypesResponse{Types: types})
}

// ListDocumentDesigns returns the mock designs for a type
// GET /api/document-designs/{type}
func (h *CatalogHandler) ListDocumentDesigns(w http.ResponseWriter, r *http.Request) {
	docType := r.PathValue("type")
	if models.IsUnselectedType(docType) {
		docType = models.UnselectedTypeValue
	}

	designs, err := h.catalog.ListDocumentDesigns(r.Context(), docType)
	if err != nil {
		h.logger.Error("error fetching document designs",
			"document_type", docType,
			"error", err,
		)
		httputil.RespondError(w, http.StatusInternalServerError, "Failed to fetch document designs")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, models.DocumentDesignResponse{
		DocumentType: docType,
		Data:         designs,
	})
}
