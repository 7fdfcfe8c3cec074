package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dms/internal/domain/models"
	"dms/internal/domain/services"
	"dms/internal/mockdata"
)

// catalogService implements the CatalogService interface over the mock dataset
type catalogService struct {
	data         *mockdata.Dataset
	typesDelay   time.Duration
	designsDelay time.Duration
	logger       *slog.Logger
}

// NewCatalogService creates a mock catalog that waits the given delays
// before answering, to emulate network latency
func NewCatalogService(
	data *mockdata.Dataset,
	typesDelay time.Duration,
	designsDelay time.Duration,
	logger *slog.Logger,
) services.CatalogService {
	return &catalogService{
		data:         data,
		typesDelay:   typesDelay,
		designsDelay: designsDelay,
		logger:       logger,
	}
}

// ListDocumentTypes returns the mock type list
func (s *catalogService) ListDocumentTypes(ctx context.Context) ([]models.DocumentType, error) {
	if err := simulateLatency(ctx, s.typesDelay); err != nil {
		return nil, err
	}
	return s.data.DocumentTypes(), nil
}

// ListDocumentDesigns returns the mock designs for a type
func (s *catalogService) ListDocumentDesigns(ctx context.Context, docType string) ([]models.DocumentDesignData, error) {
	// Unselected answers immediately, without the simulated delay
	if models.IsUnselectedType(docType) {
		return []models.DocumentDesignData{}, nil
	}

	if err := simulateLatency(ctx, s.designsDelay); err != nil {
		return nil, err
	}

	designs := s.data.DocumentDesigns(docType)
	s.logger.Debug("mock designs listed",
		"document_type", docType,
		"count", len(designs),
	)
	return designs, nil
}

// simulateLatency waits for d or until ctx is done
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("simulated latency interrupted: %w", ctx.Err())
	}
}
