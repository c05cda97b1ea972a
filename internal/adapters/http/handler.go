package http

import (
	"errors"
	"net/http"
	httpErrors "sobasite/internal/platform/http"
	"sobasite/internal/platform/logger"

	"sobasite/internal/adapters/http/response"
)

type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler adapts an error-returning JSON handler. Status errors are
// written with their details; anything else is logged and hidden behind a 500.
func ErrorHandler(next HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := next(w, r)
		if err == nil {
			return
		}

		contextLogger := logger.FromContext(r.Context())

		var httpErr *httpErrors.Error
		if errors.As(err, &httpErr) {
			if httpErr.StatusCode >= http.StatusInternalServerError {
				contextLogger.Error("Request failed",
					logger.String("method", r.Method),
					logger.String("path", r.URL.Path),
					logger.Int("status", httpErr.StatusCode),
					logger.Error(err))
			}
			response.RespondErrorDetails(w, httpErr.StatusCode, httpErr, httpErr.Details)
			return
		}

		contextLogger.Error("Unexpected server error",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.String("remote_addr", r.RemoteAddr),
			logger.Error(err))
		response.RespondError(w, http.StatusInternalServerError, errors.New("internal server error"))
	}
}
