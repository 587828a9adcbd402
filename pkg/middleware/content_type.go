package middleware

import (
	"fmt"
	"mime"
	"net/http"
	"slices"
	"strings"

	apperrors "phonechecker/pkg/errors"
	"phonechecker/pkg/logger"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv"
)

// ContentTypeValidation rejects bodies whose media type is not one of
// allowed. With no allowed types, JSON is required.
func ContentTypeValidation(log *logger.Logger, allowed ...string) func(http.Handler) http.Handler {
	if len(allowed) == 0 {
		allowed = []string{ContentTypeJSON}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if requiresContentType(r.Method) {
				contentType := MediaType(r.Header.Get("Content-Type"))

				if !slices.Contains(allowed, contentType) {
					rejectInvalidContentType(w, log, r, contentType, allowed)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func requiresContentType(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}

// MediaType returns the lower-cased media type of a Content-Type header
// without its parameters.
func MediaType(header string) string {
	if header == "" {
		return ""
	}
	if mediaType, _, err := mime.ParseMediaType(header); err == nil {
		return mediaType
	}
	parts := strings.Split(header, ";")
	return strings.ToLower(strings.TrimSpace(parts[0]))
}

func rejectInvalidContentType(w http.ResponseWriter, log *logger.Logger, r *http.Request, contentType string, allowed []string) {
	log.Warn("Invalid Content-Type header",
		"request_id", RequestID(r.Context()),
		"content_type", contentType,
		"path", r.URL.Path,
		"method", r.Method,
	)

	writeAppError(w, apperrors.New(
		apperrors.CodeBadRequest,
		fmt.Sprintf("Content-Type must be one of: %s", strings.Join(allowed, ", ")),
		http.StatusUnsupportedMediaType,
	))
}
