package hierarchy

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	msgNameBlank    = "Name cannot be blank"
	msgEmailBlank   = "Email cannot be blank"
	msgEmailInvalid = "Email should be valid"
)

var validate = validator.New()

type fieldErrors []FieldError

func (fe *fieldErrors) requireName(field, name string) {
	if strings.TrimSpace(name) == "" {
		*fe = append(*fe, FieldError{Field: field, Message: msgNameBlank})
	}
}

func (fe *fieldErrors) requireEmail(field, email string) {
	if strings.TrimSpace(email) == "" {
		*fe = append(*fe, FieldError{Field: field, Message: msgEmailBlank})
		return
	}
	fe.checkEmail(field, email)
}

func (fe *fieldErrors) checkEmail(field, email string) {
	if err := validate.Var(email, "email"); err != nil {
		*fe = append(*fe, FieldError{Field: field, Message: msgEmailInvalid})
	}
}

func (fe fieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return &ValidationError{Fields: fe}
}

func ValidateCompany(in CompanyDTO) error {
	var fe fieldErrors
	fe.requireName("name", in.Name)
	return fe.err()
}

func ValidateDepartment(in DepartmentDTO) error {
	var fe fieldErrors
	fe.requireName("name", in.Name)
	return fe.err()
}

func ValidateTeam(in TeamDTO) error {
	var fe fieldErrors
	fe.requireName("name", in.Name)
	return fe.err()
}

// ValidateProject also checks an embedded manager, reporting its fields
// as "manager.name" and "manager.email".
func ValidateProject(in ProjectDTO) error {
	var fe fieldErrors
	fe.requireName("name", in.Name)
	if in.Manager != nil {
		fe.requireName("manager.name", in.Manager.Name)
		fe.requireEmail("manager.email", in.Manager.Email)
	}
	return fe.err()
}

func ValidateManager(in ManagerDTO) error {
	var fe fieldErrors
	fe.requireName("name", in.Name)
	fe.requireEmail("email", in.Email)
	return fe.err()
}

// ValidateManagerUpdate only checks fields that are present: a blank email
// leaves the stored one untouched, a non-blank one must be well formed.
func ValidateManagerUpdate(in ManagerDTO) error {
	var fe fieldErrors
	if strings.TrimSpace(in.Email) != "" {
		fe.checkEmail("email", in.Email)
	}
	return fe.err()
}
