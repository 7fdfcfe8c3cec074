package middleware

import (
	"log/slog"
	"net/http"

	"dms/internal/httputil"
)

// UnknownRoute answers requests under /api/ that match no route with a
// problem document instead of the plain text ServeMux default
func UnknownRoute(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Info("unknown api route",
			"path", r.URL.Path,
			"method", r.Method,
			"request_id", httputil.GetRequestID(r),
		)
		httputil.RespondError(w, http.StatusNotFound, "no such route: "+r.Method+" "+r.URL.Path)
	}
}
