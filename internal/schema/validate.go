package schema

import (
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"resumeforge/pkg/models"
)

// emailPattern is deliberately loose: one @ with something on both sides and
// a dotted domain. Strict RFC parsing rejects real addresses.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var documentValidator = newValidator()

// newValidator builds a validator with the resume-specific rules registered
func newValidator() *validator.Validate {
	v := validator.New()

	// Report json tag names so error paths match the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	RegisterResumeValidators(v)
	return v
}

// RegisterResumeValidators registers all resume-related custom validators
func RegisterResumeValidators(v *validator.Validate) {
	v.RegisterValidation("absolute_url", ValidateAbsoluteURL)
	v.RegisterStructValidation(validateBasicsStruct, models.Basics{})
	v.RegisterStructValidation(validateExperienceStruct, models.Experience{})
}

// ValidateAbsoluteURL ensures the value parses as an absolute URL. Empty
// strings are accepted through the omitempty tag, not here.
func ValidateAbsoluteURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	return err == nil && u.IsAbs() && u.Host != ""
}

// validateBasicsStruct checks contact fields whose rules live on nested
// composite values
func validateBasicsStruct(sl validator.StructLevel) {
	basics := sl.Current().Interface().(models.Basics)

	if basics.Email.Value != "" && !emailPattern.MatchString(basics.Email.Value) {
		sl.ReportError(basics.Email, "email", "Email", "email", "")
	}
}

// validateExperienceStruct enforces the end-date rule: an end date is
// required unless the entry is marked as current
func validateExperienceStruct(sl validator.StructLevel) {
	exp := sl.Current().Interface().(models.Experience)

	if !exp.CurrentlyWorking && strings.TrimSpace(exp.EndDate) == "" {
		sl.ReportError(exp.EndDate, "end_date", "EndDate", "required_without_current", "")
	}
}

// FieldError is one path-qualified validation failure,
// e.g. "basics.email: Invalid email"
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationResult is the full error list of one validation pass
type ValidationResult struct {
	Errors []FieldError
}

// Valid reports whether the pass found no violations
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Strings renders every error as "path: message"
func (r ValidationResult) Strings() []string {
	out := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		out[i] = e.Error()
	}
	return out
}

func (r ValidationResult) Error() string {
	return strings.Join(r.Strings(), "; ")
}

// ValidateDocument validates a whole document against the full schema. Used
// at import boundaries: the document must conform entirely or be rejected.
func ValidateDocument(doc *models.ResumeDocument) ValidationResult {
	return collect(documentValidator.Struct(doc))
}

// ValidateEnvelope validates a self-export envelope: the document plus the
// presentation settings
func ValidateEnvelope(env *models.ResumeEnvelope) ValidationResult {
	result := collect(documentValidator.Struct(&env.Document))
	settings := collect(documentValidator.Struct(&env.Settings))
	result.Errors = append(result.Errors, settings.Errors...)
	return result
}

// ValidateSection validates a single section item at data-entry time.
// Advisory: the editing surface shows the errors without blocking further
// typing; only submit is gated on an empty result.
func ValidateSection(item interface{}) ValidationResult {
	return collect(documentValidator.Struct(item))
}

// collect converts validator errors into path-qualified field errors
func collect(err error) ValidationResult {
	if err == nil {
		return ValidationResult{}
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationResult{Errors: []FieldError{{Path: "document", Message: err.Error()}}}
	}

	result := ValidationResult{Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		result.Errors = append(result.Errors, FieldError{
			Path:    trimNamespace(fe.Namespace()),
			Message: messageForTag(fe.Tag()),
		})
	}
	return result
}

// trimNamespace strips the leading struct type segment, leaving the json-tag
// path: "ResumeDocument.basics.name" -> "basics.name"
func trimNamespace(ns string) string {
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

// messageForTag maps a validator tag to the user-facing message
func messageForTag(tag string) string {
	switch tag {
	case "required", "min":
		return "Required"
	case "email":
		return "Invalid email"
	case "absolute_url":
		return "Invalid URL"
	case "oneof":
		return "Invalid value"
	case "required_without_current":
		return "End date is required unless currently working"
	default:
		return "Invalid value"
	}
}
