package handler

import (
	"errors"
	"net/http"

	"dms/internal/domain"
	"dms/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	var upstreamErr *domain.UpstreamError
	var httpErr domain.HTTPError

	switch {
	case errors.As(err, &httpErr):
		httputil.RespondError(w, httpErr.StatusCode(), err.Error())
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &upstreamErr):
		// The version list has no fallback data; surface the upstream failure as a 500
		httputil.RespondErrorWithExtras(w, http.StatusInternalServerError, upstreamErr.Error(), map[string]interface{}{
			"upstreamStatus": upstreamErr.Status,
		})
	case errors.Is(err, domain.ErrUpstream), errors.Is(err, domain.ErrUnrecognizedShape):
		httputil.RespondError(w, http.StatusInternalServerError, err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
