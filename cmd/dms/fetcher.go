package main

import (
	"context"
	"log/slog"
	"time"

	"dms/internal/domain/models"
	"dms/internal/flow"
)

// loggingFetcher logs every fetch the browser performs
type loggingFetcher struct {
	next   flow.Fetcher
	logger *slog.Logger
}

func (f *loggingFetcher) DocumentTypes(ctx context.Context) (*models.DocumentTypesResponse, error) {
	start := time.Now()
	resp, err := f.next.DocumentTypes(ctx)
	f.log("document types", start, err)
	return resp, err
}

func (f *loggingFetcher) Designs(ctx context.Context, docType string) (*models.DesignListResponse, error) {
	start := time.Now()
	resp, err := f.next.Designs(ctx, docType)
	f.log("designs", start, err, "type", docType)
	return resp, err
}

func (f *loggingFetcher) Versions(ctx context.Context, design models.DocumentDesignData) ([]models.DocumentDesignVersion, error) {
	start := time.Now()
	resp, err := f.next.Versions(ctx, design)
	id, _ := design.ResolveID()
	f.log("design versions", start, err, "design_id", id)
	return resp, err
}

func (f *loggingFetcher) log(what string, start time.Time, err error, attrs ...any) {
	attrs = append(attrs, "duration_ms", time.Since(start).Milliseconds())
	if err != nil {
		f.logger.Warn("fetch failed: "+what, append(attrs, "error", err)...)
		return
	}
	f.logger.Debug("fetched "+what, attrs...)
}
