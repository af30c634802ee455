package errors

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// ValidationError lists the problems found per field of a config or input
// struct. It travels as the "validation_errors" meta of an InvalidArgument.
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

// Error lists fields in name order so the message is stable
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(v.Fields))
	for _, field := range slices.Sorted(maps.Keys(v.Fields)) {
		parts = append(parts, field+": "+strings.Join(v.Fields[field], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidationBuilder accumulates field errors. Build returns nil when there
// are none.
//
//	if err := errors.NewValidationBuilder().RequiredField("Store").Build(); err != nil {
//		return errors.Wrap(err, "invalid config")
//	}
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder creates an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field records message against field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf is Field with a formatted message
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Field(field, "is invalid: "+reason)
}

// Build returns an InvalidArgument error carrying every recorded field, or
// nil when nothing was recorded
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}
	verr := &ValidationError{Fields: vb.fields}
	return InvalidArgument(verr.Error()).WithMeta("validation_errors", verr.Fields)
}

// ValidateRequired flags a blank string field
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidatePositiveDuration flags a zero or negative duration
func ValidatePositiveDuration(field string, value time.Duration, vb *ValidationBuilder) {
	if value <= 0 {
		vb.Fieldf(field, "must be positive, got %s", value)
	}
}

// ValidateEnum flags a value outside allowed
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	if !slices.Contains(allowed, value) {
		vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
	}
}
