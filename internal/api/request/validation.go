package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ernestofreyreg/law-api/internal/model"
)

var validate = validator.New()

func init() {
	// Report violations under the wire field name, not the Go name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("matter_status", func(fl validator.FieldLevel) bool {
		return model.ValidMatterStatus(fl.Field().String())
	})
}

// FieldViolation is one failed rule, reported per field.
type FieldViolation struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

// ValidationError aggregates every failed rule for a request. All rules
// are evaluated; the list is not cut short at the first failure.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return "validation error: " + strings.Join(msgs, "; ")
}

// Decode parses a JSON request body into v and runs its declarative
// validation rules. Rule failures come back as a *ValidationError.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validate.Struct(v); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			verr := &ValidationError{}
			for _, fe := range errs {
				verr.Violations = append(verr.Violations, FieldViolation{
					Message: violationMessage(fe),
					Field:   fe.Field(),
				})
			}
			return verr
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// RequireUUID validates a path parameter as a UUID. The label names the
// resource in the violation message ("customer ID", "matter ID").
func RequireUUID(value, field, label string) error {
	if _, err := uuid.Parse(value); err != nil {
		return &ValidationError{Violations: []FieldViolation{{
			Message: "Invalid " + label,
			Field:   field,
		}}}
	}
	return nil
}

func violationMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Please provide a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, fe.Param())
	case "matter_status":
		return fmt.Sprintf("%s must be one of: %s, %s, %s", label,
			model.MatterStatusOpen, model.MatterStatusClosed, model.MatterStatusPending)
	default:
		return label + " is invalid"
	}
}

// fieldLabel turns a camelCase wire name into a sentence-case label:
// "phoneNumber" becomes "Phone number".
func fieldLabel(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
