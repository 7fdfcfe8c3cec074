package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"dms/internal/httputil"
)

// Recovery turns a handler panic into a 500 problem response. The log entry
// carries the request id so it can be matched with the access log line.
// http.ErrAbortHandler is re-raised so the server aborts the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				logger.Error("handler panicked",
					"request_id", httputil.GetRequestID(r),
					"method", r.Method,
					"path", r.URL.Path,
					"route", r.Pattern,
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
