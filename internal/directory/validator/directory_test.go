package validator

import (
	"errors"
	"strings"
	"testing"

	"phonechecker/pkg/logger"
	"phonechecker/pkg/model"
)

func TestValidateLoadRequest(t *testing.T) {
	v := NewDirectoryValidator(logger.Discard())

	tests := []struct {
		name      string
		req       *model.LoadRequest
		wantError bool
	}{
		{name: "valid path", req: &model.LoadRequest{Path: "/data/contacts.csv"}},
		{name: "empty path", req: &model.LoadRequest{}, wantError: true},
		{name: "path too long", req: &model.LoadRequest{Path: strings.Repeat("a", 4097)}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateLoadRequest(tt.req)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateLoadRequest() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidateSchemas(t *testing.T) {
	v := NewDirectoryValidator(logger.Discard())

	withEN := func(mutate func(*model.Schema)) []model.Schema {
		s := model.SchemaEN()
		mutate(&s)
		return []model.Schema{s}
	}

	tests := []struct {
		name      string
		schemas   []model.Schema
		wantError string
	}{
		{
			name:    "built-in schemas",
			schemas: model.DefaultSchemas(),
		},
		{
			name:      "no schema",
			schemas:   nil,
			wantError: "schemas",
		},
		{
			name:      "three info columns",
			schemas:   withEN(func(s *model.Schema) { s.InfoColumns = s.InfoColumns[:3] }),
			wantError: "schemas[0].InfoColumns",
		},
		{
			name:      "missing reference column",
			schemas:   withEN(func(s *model.Schema) { s.ReferenceColumn = "" }),
			wantError: "schemas[0].ReferenceColumn",
		},
		{
			name:      "header containing the delimiter",
			schemas:   withEN(func(s *model.Schema) { s.PhoneColumns = []string{"Phone;1"} }),
			wantError: "schemas[0].PhoneColumns[0]",
		},
		{
			name:      "untrimmed header",
			schemas:   withEN(func(s *model.Schema) { s.ReferenceColumn = " Ref" }),
			wantError: "schemas[0].ReferenceColumn",
		},
		{
			name:      "duplicate phone columns",
			schemas:   withEN(func(s *model.Schema) { s.PhoneColumns = []string{"Phone", "Phone"} }),
			wantError: "schemas[0].PhoneColumns",
		},
		{
			name:      "reference is also a phone column",
			schemas:   withEN(func(s *model.Schema) { s.ReferenceColumn = "Phone 1" }),
			wantError: "schemas[0].reference_column",
		},
		{
			name:      "duplicate variant",
			schemas:   []model.Schema{model.SchemaEN(), model.SchemaEN()},
			wantError: "schemas[1].variant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSchemas(tt.schemas)
			if tt.wantError == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %v", err)
			}
			if verrs[0].Field != tt.wantError {
				t.Errorf("field = %q, want %q (%v)", verrs[0].Field, tt.wantError, verrs)
			}
		})
	}
}
