package handler

import (
	"log/slog"
	"net/http"

	"dms/internal/domain/models"
	"dms/internal/domain/services"
	"dms/internal/httputil"
)

// FormDesignHandler serves the routes proxied to the external FormDesign API
type FormDesignHandler struct {
	service services.FormDesignService
	logger  *slog.Logger
}

// NewFormDesignHandler creates a new proxy handler
func NewFormDesignHandler(service services.FormDesignService, logger *slog.Logger) *FormDesignHandler {
	return &FormDesignHandler{
		service: service,
		logger:  logger,
	}
}

// ListDocumentTypes proxies the type list. Upstream failures still answer
// 200 with an error message and the fallback list.
// GET /api/form-design/document-types
func (h *FormDesignHandler) ListDocumentTypes(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.service.ListDocumentTypes(r.Context()))
}

// ListDesignsByType proxies the design list for a type. Upstream failures
// still answer 200 with an error message and an empty list.
// GET /api/form-design/designs-by-type/{docTypeId}
func (h *FormDesignHandler) ListDesignsByType(w http.ResponseWriter, r *http.Request) {
	docTypeID := r.PathValue("docTypeId")
	httputil.RespondJSON(w, http.StatusOK, h.service.ListDesignsByType(r.Context(), docTypeID))
}

// ListDesignVersions proxies the version list of one design
// GET /api/form-design/design-versions/{formDesignId}
func (h *FormDesignHandler) ListDesignVersions(w http.ResponseWriter, r *http.Request) {
	formDesignID := r.PathValue("formDesignId")

	versions, err := h.service.ListDesignVersions(r.Context(), formDesignID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, models.VersionListResponse{Data: versions})
}
