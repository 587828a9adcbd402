package errors

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeValidation, "validation failed", http.StatusUnprocessableEntity)

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.Message != "validation failed" {
		t.Errorf("expected message 'validation failed', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, err.HTTPStatus)
	}
}

func TestWrap(t *testing.T) {
	originalErr := errors.New("file vanished")
	wrapped := Wrap(originalErr, CodeInternal, "internal error", http.StatusInternalServerError)

	if wrapped.Err != originalErr {
		t.Errorf("expected wrapped error to contain original error")
	}
	if wrapped.Code != CodeInternal {
		t.Errorf("expected code %s, got %s", CodeInternal, wrapped.Code)
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeNoDataLoaded,
				Message: "no data",
			},
			expected: "NO_DATA_LOADED: no data",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeImport,
				Message: "import failed",
				Err:     errors.New("bare quote in field"),
			},
			expected: "IMPORT_ERROR: import failed (caused by: bare quote in field)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appErr.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := ImportFailed("contacts.csv", originalErr)

	if !errors.Is(appErr, originalErr) {
		t.Errorf("errors.Is should reach the original error")
	}
}

func TestAppError_WithDetails(t *testing.T) {
	err := Validation("validation failed", nil).WithDetails(map[string]any{
		"field": "path",
	})

	if err.Details["field"] != "path" {
		t.Errorf("expected field 'path', got %v", err.Details["field"])
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{name: "not found", err: NotFound("Directory"), wantCode: CodeNotFound, wantStatus: http.StatusNotFound},
		{name: "validation", err: Validation("bad", nil), wantCode: CodeValidation, wantStatus: http.StatusUnprocessableEntity},
		{name: "invalid input", err: InvalidInput("bad"), wantCode: CodeInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", err: Internal("boom", cause), wantCode: CodeInternal, wantStatus: http.StatusInternalServerError},
		{name: "timeout", err: Timeout("slow"), wantCode: CodeTimeout, wantStatus: http.StatusGatewayTimeout},
		{name: "too many requests", err: TooManyRequests("slow down"), wantCode: CodeTooManyRequests, wantStatus: http.StatusTooManyRequests},
		{name: "encoding", err: EncodingFailed("a.csv", cause), wantCode: CodeEncoding, wantStatus: http.StatusUnprocessableEntity},
		{name: "empty file", err: EmptyFile("a.csv", cause), wantCode: CodeEmptyFile, wantStatus: http.StatusUnprocessableEntity},
		{name: "import", err: ImportFailed("a.csv", cause), wantCode: CodeImport, wantStatus: http.StatusUnprocessableEntity},
		{name: "path not allowed", err: PathNotAllowed("../a.csv", cause), wantCode: CodeInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "no data loaded", err: NoDataLoaded(nil), wantCode: CodeNoDataLoaded, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, tt.err.Code)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, tt.err.StatusCode())
			}
		})
	}
}

func TestEncodingFailed_MentionsSource(t *testing.T) {
	err := EncodingFailed("contacts.csv", nil)
	if !strings.Contains(err.Message, "contacts.csv") {
		t.Errorf("expected message to mention the source, got %s", err.Message)
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(NoDataLoaded(nil)) {
		t.Errorf("IsAppError() should return true for AppError")
	}
	if IsAppError(errors.New("regular error")) {
		t.Errorf("IsAppError() should return false for regular error")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NoDataLoaded(nil)
	regularErr := errors.New("regular error")

	if AsAppError(appErr) != appErr {
		t.Errorf("AsAppError() should return same AppError")
	}

	result := AsAppError(regularErr)
	if result.Code != CodeInternal {
		t.Errorf("AsAppError() should wrap regular error as internal error")
	}
	if result.Err != regularErr {
		t.Errorf("AsAppError() should wrap the original error")
	}
}

func TestAppError_ToJSON(t *testing.T) {
	jsonStr := string(NoDataLoaded(nil).ToJSON())

	if !strings.Contains(jsonStr, CodeNoDataLoaded) {
		t.Errorf("ToJSON() should contain error code, got %s", jsonStr)
	}
	if !strings.Contains(jsonStr, "No data loaded") {
		t.Errorf("ToJSON() should contain error message, got %s", jsonStr)
	}
}
