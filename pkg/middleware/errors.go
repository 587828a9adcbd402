package middleware

import (
	"net/http"

	apperrors "phonechecker/pkg/errors"
)

func writeAppError(w http.ResponseWriter, appErr *apperrors.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.HTTPStatus)
	_, _ = w.Write(appErr.ToJSON())
}

func tooLarge() *apperrors.AppError {
	return apperrors.New(apperrors.CodeBadRequest, "Request body too large", http.StatusRequestEntityTooLarge)
}
