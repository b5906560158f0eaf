// Package contact validates and records contact form submissions.
package contact

import (
	"errors"
	"net/mail"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Status tracks follow-up on a submission.
type Status string

const (
	StatusNew      Status = "new"
	StatusRead     Status = "read"
	StatusAnswered Status = "answered"
)

var (
	ErrNotFound          = errors.New("contact: submission not found")
	ErrInvalidSubmission = errors.New("contact: invalid submission")
)

// Form is the data entered on the contact page.
type Form struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,max=254,email,maildomain"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,phone"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message" validate:"required,max=5000"`
}

// Submission is a stored contact request.
type Submission struct {
	ID string `json:"id"`
	Form
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// FieldErrors maps form field names to a message for the visitor.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + fe[k]
	}
	return strings.Join(parts, "; ")
}

// Unwrap lets callers match validation failures with errors.Is.
func (fe FieldErrors) Unwrap() error { return ErrInvalidSubmission }

// Normalize trims surrounding whitespace from every field.
func (f Form) Normalize() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate checks a normalized form. subjects lists the allowed subjects;
// an empty subject is always accepted. It returns FieldErrors or nil.
func (f Form) Validate(subjects []string) error {
	errs := FieldErrors{}
	var verrs validator.ValidationErrors
	if err := validate.Struct(f); errors.As(err, &verrs) {
		for _, fe := range verrs {
			if _, dup := errs[fe.Field()]; !dup {
				errs[fe.Field()] = fieldMessage(fe.Field(), fe.Tag())
			}
		}
	} else if err != nil {
		return err
	}
	if f.Subject != "" && !slices.Contains(subjects, f.Subject) {
		errs["subject"] = "Please choose a subject from the list."
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		return name
	})
	if err := v.RegisterValidation("maildomain", func(fl validator.FieldLevel) bool {
		return hasMailDomain(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return validPhone(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

var fieldMessages = map[string]map[string]string{
	"name": {
		"required": "Please enter your name.",
		"max":      "Name is too long.",
	},
	"email": {
		"required": "Please enter your email address.",
		"max":      "Email address is too long.",
	},
	"phone": {
		"phone": "Please enter a valid phone number.",
	},
	"message": {
		"required": "Please enter a message.",
		"max":      "Message is too long.",
	},
}

func fieldMessage(field, tag string) string {
	if msg, ok := fieldMessages[field][tag]; ok {
		return msg
	}
	if field == "email" {
		return "Please enter a valid email address."
	}
	return "Please check this field."
}

// hasMailDomain accepts a bare address whose domain has a dotted name.
func hasMailDomain(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	_, domain, _ := strings.Cut(addr.Address, "@")
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// validPhone allows digits with common separators, 7 to 15 digits in all.
func validPhone(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case strings.ContainsRune("+-() .", r):
		default:
			return false
		}
	}
	return digits >= 7 && digits <= 15
}
