package validator

import (
	"errors"
	"fmt"
	"strings"

	"phonechecker/pkg/logger"
	"phonechecker/pkg/model"

	"github.com/go-playground/validator/v10"
)

// Delimiter of the CRM export; header names must not contain it.
const csvDelimiter = ";"

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type DirectoryValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewDirectoryValidator(log *logger.Logger) *DirectoryValidator {
	v := validator.New()

	if err := v.RegisterValidation("header", validateHeader); err != nil {
		log.Fatal("Failed to register 'header' validator",
			"error", err,
		)
	}

	log.Debug("Directory validator initialized successfully")

	return &DirectoryValidator{
		validate: v,
		logger:   log,
	}
}

func validateHeader(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	return strings.TrimSpace(name) == name && !strings.Contains(name, csvDelimiter)
}

func (v *DirectoryValidator) ValidateLoadRequest(req *model.LoadRequest) error {
	return v.validateStruct(req)
}

// ValidateSchemas checks every schema and that variants are distinct.
// The first schema is the fallback used when no other variant is detected.
func (v *DirectoryValidator) ValidateSchemas(schemas []model.Schema) error {
	if len(schemas) == 0 {
		return ValidationErrors{{Field: "schemas", Message: "at least one schema is required"}}
	}

	var errs ValidationErrors
	variants := make(map[string]int, len(schemas))
	for i := range schemas {
		s := &schemas[i]
		if err := v.validateStruct(s); err != nil {
			var fieldErrs ValidationErrors
			if !errors.As(err, &fieldErrs) {
				return err
			}
			for _, fe := range fieldErrs {
				fe.Field = fmt.Sprintf("schemas[%d].%s", i, fe.Field)
				errs = append(errs, fe)
			}
			continue
		}
		if prev, ok := variants[s.Variant]; ok {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("schemas[%d].variant", i),
				Message: fmt.Sprintf("variant %q already defined by schemas[%d]", s.Variant, prev),
			})
			continue
		}
		variants[s.Variant] = i

		if err := validateSchemaRules(s); err != nil {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("schemas[%d].reference_column", i),
				Message: err.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateSchemaRules(s *model.Schema) error {
	for _, col := range s.PhoneColumns {
		if col == s.ReferenceColumn {
			return fmt.Errorf("column %q cannot be both a phone and the reference column", col)
		}
	}
	return nil
}

func (v *DirectoryValidator) validateStruct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *DirectoryValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message(err),
		})
	}

	return validationErrors
}

func message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", err.Param())
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", err.Param())
	case "len":
		return fmt.Sprintf("must contain exactly %s item(s)", err.Param())
	case "unique":
		return "must not contain duplicates"
	case "alphanum":
		return "must be alphanumeric"
	case "header":
		return "must be a trimmed column name without ';'"
	default:
		return fmt.Sprintf("failed on '%s' validation", err.Tag())
	}
}
