package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"syscall"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"dms/internal/config"
	"dms/internal/domain"
	"dms/internal/domain/models"
	"dms/internal/domain/services"
	"dms/internal/formdesign"
	"dms/internal/metrics"
)

// formDesignService implements the FormDesignService interface
type formDesignService struct {
	client  formdesign.Client
	adapter *formdesign.Adapter
	apiHost string // scheme://host of the API, used in error messages
	logger  *slog.Logger
}

// NewFormDesignService creates the proxy service. baseURL is only used to
// name the API in user-facing error messages.
func NewFormDesignService(
	client formdesign.Client,
	adapter *formdesign.Adapter,
	baseURL string,
	logger *slog.Logger,
) services.FormDesignService {
	apiHost := baseURL
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		apiHost = u.Scheme + "://" + u.Host
	}

	return &formDesignService{
		client:  client,
		adapter: adapter,
		apiHost: apiHost,
		logger:  logger,
	}
}

// ListDocumentTypes proxies the type list, answering the fallback list on failure
func (s *formDesignService) ListDocumentTypes(ctx context.Context) *models.DocumentTypesResponse {
	s.logger.Debug("proxying request to external FormDesign API",
		"endpoint", formdesign.EndpointDocumentTypes,
	)

	body, err := s.client.DocumentTypes(ctx)
	var types []models.DocumentType
	if err == nil {
		types, err = formdesign.NormalizeDocumentTypes(body, s.adapter.DocumentTypes)
	}
	if err != nil {
		s.logger.Error("error proxying to external FormDesign API",
			"endpoint", formdesign.EndpointDocumentTypes,
			"error", err,
		)
		metrics.ObserveFallback(formdesign.EndpointDocumentTypes)
		return &models.DocumentTypesResponse{
			Types: formdesign.FallbackTypes(),
			Error: s.failureMessage(err, "Failed to fetch document design types from external API"),
		}
	}

	types = formdesign.EnsureUnselected(types)
	s.logger.Debug("document types normalized", "count", len(types))
	return &models.DocumentTypesResponse{Types: types}
}

// ListDesignsByType proxies the design list for one document type
func (s *formDesignService) ListDesignsByType(ctx context.Context, docTypeID string) *models.DesignListResponse {
	docTypeID = strings.TrimSpace(docTypeID)
	if models.IsUnselectedType(docTypeID) {
		return &models.DesignListResponse{Data: []models.DocumentDesignData{}}
	}
	if err := validation.Validate(docTypeID, validation.Length(1, config.MaxTypeIDLength)); err != nil {
		return &models.DesignListResponse{
			Data:  []models.DocumentDesignData{},
			Error: "docTypeId " + err.Error(),
		}
	}

	body, err := s.client.DesignsByType(ctx, docTypeID)
	var designs []models.DocumentDesignData
	if err == nil {
		designs, err = formdesign.NormalizeDesigns(body, s.adapter.Designs)
	}
	if err != nil {
		s.logger.Error("error proxying to external FormDesign API",
			"endpoint", formdesign.EndpointDesignsByType,
			"doc_type_id", docTypeID,
			"error", err,
		)
		metrics.ObserveFallback(formdesign.EndpointDesignsByType)
		return &models.DesignListResponse{
			Data:  []models.DocumentDesignData{},
			Error: s.failureMessage(err, "Failed to fetch form designs from external API"),
		}
	}

	s.logger.Debug("designs normalized",
		"doc_type_id", docTypeID,
		"count", len(designs),
	)
	return &models.DesignListResponse{Data: designs}
}

// ListDesignVersions proxies the version list. The upstream array is
// returned as-is; unlike the other lists no wrapper or field mapping is
// applied.
func (s *formDesignService) ListDesignVersions(ctx context.Context, formDesignID string) (json.RawMessage, error) {
	formDesignID = strings.TrimSpace(formDesignID)
	if err := validation.Validate(formDesignID,
		validation.Required,
		validation.Length(1, config.MaxDesignIDLength),
	); err != nil {
		return nil, &domain.ValidationError{Message: "formDesignId " + err.Error()}
	}

	body, err := s.client.DesignVersions(ctx, formDesignID)
	if err != nil {
		s.logger.Error("error proxying to external FormDesign API",
			"endpoint", formdesign.EndpointDesignVersions,
			"form_design_id", formDesignID,
			"error", err,
		)
		return nil, fmt.Errorf("fetch design versions: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("fetch design versions: %w: body is not valid JSON", domain.ErrUnrecognizedShape)
	}

	return json.RawMessage(body), nil
}

// failureMessage turns a proxy failure into the message shown to the user
func (s *formDesignService) failureMessage(err error, generic string) string {
	var upstreamErr *domain.UpstreamError
	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Sprintf("External FormDesign API is not accessible. Please ensure the API server at %s is running.", s.apiHost)
	case formdesign.IsTransportError(err):
		return "Network error connecting to external FormDesign API."
	case errors.As(err, &upstreamErr):
		return fmt.Sprintf("%s (%s)", generic, upstreamErr.Error())
	default:
		return generic
	}
}
