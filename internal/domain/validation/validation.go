package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	domainerrors "crusaiders.backend/internal/domain/errors"
)

// Validator checks insertable payloads against their declared rules and
// reports every field failure together, keyed by JSON field name.
type Validator struct {
	v *validator.Validate
}

// New creates a validator that reports fields by their json tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Struct validates s and returns nil or a *domainerrors.ValidationError
// listing all field failures.
func (va *Validator) Struct(s interface{}) error {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]domainerrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domainerrors.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return domainerrors.Validation(fields...)
}

// Email reports whether email is a syntactically valid address.
func (va *Validator) Email(email string) bool {
	return va.v.Var(email, "required,email") == nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "email":
		return "Invalid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	case "eq":
		if fe.Field() == "acceptedTerms" {
			return "You must accept the terms and conditions"
		}
		return fmt.Sprintf("%s must equal %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
