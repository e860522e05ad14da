package hierarchy

import (
	"errors"
	"sort"
	"strings"

	"company_crud/internal/store"
)

// Entity kind names, as they appear in error messages.
const (
	KindCompany    = "Company"
	KindDepartment = "Department"
	KindTeam       = "Team"
	KindProject    = "Project"
	KindManager    = "Manager"
)

// NotFoundError reports that an entity or a referenced parent is absent.
type NotFoundError struct {
	Kind string
}

func (e *NotFoundError) Error() string { return e.Kind + " not found" }

// FieldError is one failed constraint on a request field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

// Error joins the field messages as "field: message, field: message",
// ordered by field name.
func (e *ValidationError) Error() string {
	fields := make([]FieldError, len(e.Fields))
	copy(fields, e.Fields)
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, ", ")
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// notFound converts store.ErrNotFound into a NotFoundError for kind and
// passes any other error through.
func notFound(err error, kind string) error {
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Kind: kind}
	}
	return err
}
