// Package validation wraps go-playground/validator with the rules shared by every entity:
// JSON field names in messages, date rules driven by an injectable clock and
// support for nullable.Field values.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/footballdb/go/internal/apperr"
	"github.com/mcdev12/footballdb/go/internal/nullable"
)

// Validator validates request structs and reports the first failure as an apperr validation error
type Validator struct {
	validate *validator.Validate
	clock    clockwork.Clock
}

// New creates a Validator. The clock decides what "future" and "past" mean.
func New(clock clockwork.Clock) *Validator {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		clock:    clock,
	}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.validate.RegisterCustomTypeFunc(nullableValue,
		nullable.Field[string]{},
		nullable.Field[int32]{},
		nullable.Field[int64]{},
		nullable.Field[time.Time]{},
	)

	// registration only fails on empty tags or nil funcs
	_ = v.validate.RegisterValidation("notfuture", v.notFuture)
	_ = v.validate.RegisterValidation("notpast", v.notPast)
	_ = v.validate.RegisterValidation("digits", digits)

	return v
}

// Clock returns the clock used by date rules
func (v *Validator) Clock() clockwork.Clock {
	return v.clock
}

// Struct validates s and returns nil or an *apperr.Error naming the first offending field
func (v *Validator) Struct(entity string, s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperr.Validation(entity, "", fmt.Sprintf("invalid %s payload", strings.ToLower(entity)))
	}

	fe := verrs[0]
	return apperr.Validation(entity, fe.Field(), message(entity, fe))
}

// nullableValue exposes the held value to validator; unset and null fields become nil so omitempty skips them
func nullableValue(field reflect.Value) any {
	switch f := field.Interface().(type) {
	case nullable.Field[string]:
		if v, ok := f.Get(); ok {
			return v
		}
	case nullable.Field[int32]:
		if v, ok := f.Get(); ok {
			return v
		}
	case nullable.Field[int64]:
		if v, ok := f.Get(); ok {
			return v
		}
	case nullable.Field[time.Time]:
		if v, ok := f.Get(); ok {
			return v
		}
	}
	return nil
}

func (v *Validator) notFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !t.After(v.clock.Now())
}

func (v *Validator) notPast(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !t.Before(v.clock.Now())
}

func digits(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// message renders an English sentence such as "Team name must be at least 3 characters."
func message(entity string, fe validator.FieldError) string {
	label := entity + " " + strings.ReplaceAll(fe.Field(), "_", " ")
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return label + " cannot be empty."
	case "min":
		if isString && fe.Param() == "1" {
			return label + " cannot be empty."
		}
		if isString {
			return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("%s cannot exceed %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s cannot be greater than %s.", label, fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return label + " must be a positive integer."
		}
		return fmt.Sprintf("%s must be greater than %s.", label, fe.Param())
	case "gte":
		if fe.Param() == "0" {
			return label + " cannot be negative."
		}
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s cannot be greater than %s.", label, fe.Param())
	case "notfuture":
		return label + " cannot be in the future."
	case "notpast":
		return label + " cannot be in the past."
	case "digits":
		return label + " must contain only digits."
	default:
		return label + " is invalid."
	}
}
