package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "phonechecker/pkg/errors"
)

// DecodeJSON decodes a single JSON object from the request body into dst.
// Unknown fields are rejected.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if appErr := bodyError(err); appErr != nil {
			return appErr
		}
		return apperrors.InvalidInput(fmt.Sprintf("invalid JSON body: %v", err))
	}
	if dec.More() {
		return apperrors.InvalidInput("request body must contain a single JSON object")
	}
	return nil
}

// ReadBody reads the whole request body. An empty body is rejected.
func ReadBody(r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		if appErr := bodyError(err); appErr != nil {
			return nil, appErr
		}
		return nil, apperrors.InvalidInput(fmt.Sprintf("failed to read request body: %v", err))
	}
	if len(data) == 0 {
		return nil, apperrors.InvalidInput("request body cannot be empty")
	}
	return data, nil
}

func bodyError(err error) *apperrors.AppError {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return apperrors.New(
			apperrors.CodeBadRequest,
			fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit),
			http.StatusRequestEntityTooLarge,
		)
	}
	if errors.Is(err, io.EOF) {
		return apperrors.InvalidInput("request body cannot be empty")
	}
	return nil
}

func QueryParam(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}
