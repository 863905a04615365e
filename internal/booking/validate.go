package booking

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"amritha-heritage/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so errors line up with SetField.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// ValidationError lists the invalid fields of a form with one message each.
// It matches model.ErrInvalidForm under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + e.Fields[name]
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return model.ErrInvalidForm
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = msg
	}
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Validate checks every field of the table form.
func (f TableForm) Validate() error {
	verr := &ValidationError{}
	if err := structErrors(f, verr); err != nil {
		return err
	}
	return verr.orNil()
}

// Validate checks every field of the room form, including that the stay
// ends strictly after it starts.
func (f RoomForm) Validate() error {
	verr := &ValidationError{}
	if err := structErrors(f, verr); err != nil {
		return err
	}

	checkIn, inErr := time.Parse(DateLayout, f.CheckIn)
	checkOut, outErr := time.Parse(DateLayout, f.CheckOut)
	if inErr == nil && outErr == nil && !checkOut.After(checkIn) {
		verr.add(FieldCheckOut, "must be after check-in")
	}
	return verr.orNil()
}

// Validate checks every field of the contact form.
func (f ContactForm) Validate() error {
	verr := &ValidationError{}
	if err := structErrors(f, verr); err != nil {
		return err
	}
	return verr.orNil()
}

// structErrors runs the tag rules of form and records failures on verr.
// Anything other than field failures is returned as is.
func structErrors(form any, verr *ValidationError) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate form: %w", err)
	}
	for _, fe := range fieldErrs {
		verr.add(fe.Field(), message(fe))
	}
	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "datetime":
		switch fe.Param() {
		case DateLayout:
			return "must be a date formatted YYYY-MM-DD"
		case TimeLayout:
			return "must be a time formatted HH:MM"
		}
		return "has an invalid format"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}
