package validator

import (
	"fmt"
	"lifehub/models"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
	Value   string `json:"value,omitempty"`
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	weekdays        = map[string]bool{"mon": true, "tue": true, "wed": true, "thu": true, "fri": true, "sat": true, "sun": true}
	priorities      = map[string]bool{"low": true, "medium": true, "high": true}
)

// New creates a new validator instance
func New() *Validator {
	v := validator.New()

	// Register custom tag name function to use JSON tags
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validators
	v.RegisterValidation("widgettype", validateWidgetType)
	v.RegisterValidation("priority", validatePriority)
	v.RegisterValidation("weekday", validateWeekday)
	v.RegisterValidation("username", validateUsername)
	v.RegisterValidation("filename", validateFilename)
	v.RegisterValidation("theme", validateTheme)
	v.RegisterStructValidation(validatePreferences, models.UpdatePreferencesRequest{})

	return &Validator{validate: v}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Convert validation errors to our custom format
	var validationErrs ValidationErrors
	for _, fe := range fieldErrs {
		validationErrs = append(validationErrs, ValidationError{
			Field:   fe.Field(),
			Message: msgForTag(fe),
			Tag:     fe.Tag(),
			Value:   fmt.Sprintf("%v", fe.Value()),
		})
	}

	return validationErrs
}

// msgForTag returns a human-readable error message for a validation tag
func msgForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "widgettype":
		return fmt.Sprintf("%s must be one of: tasks, calendar, budget, habits, journal, quickTools, contacts, documents, community", field)
	case "priority":
		return fmt.Sprintf("%s must be one of: low, medium, high", field)
	case "weekday":
		return fmt.Sprintf("%s must be a weekday abbreviation (mon..sun)", field)
	case "username":
		return fmt.Sprintf("%s may only contain letters, numbers, and -_.", field)
	case "filename":
		return fmt.Sprintf("%s must be a plain file name", field)
	case "theme":
		return fmt.Sprintf("%s must be either 'light' or 'dark'", field)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// Custom validators

func validateWidgetType(fl validator.FieldLevel) bool {
	return models.WidgetType(fl.Field().String()).Valid()
}

func validatePriority(fl validator.FieldLevel) bool {
	return priorities[fl.Field().String()]
}

func validateWeekday(fl validator.FieldLevel) bool {
	return weekdays[fl.Field().String()]
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

// validateFilename rejects path separators, traversal and control characters
func validateFilename(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" || name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return false
	}
	return !strings.ContainsAny(name, "/\\\x00\r\n")
}

func validateTheme(fl validator.FieldLevel) bool {
	theme := fl.Field().String()
	return theme == "light" || theme == "dark"
}

// validatePreferences checks the well-known keys of the otherwise free-form preferences object
func validatePreferences(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.UpdatePreferencesRequest)

	if theme, ok := req.Preferences["theme"]; ok {
		s, isString := theme.(string)
		if !isString || (s != "light" && s != "dark") {
			sl.ReportError(theme, "theme", "Theme", "theme", "")
		}
	}
}
