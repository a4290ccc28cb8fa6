package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/alimikegami/point-of-sales/ecommerce-service/pkg/errs"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(err)
		}
	})

	return validate
}

// Struct validates s against its `validate` tags. Rule violations come back
// as *errs.ValidationError with namespaced json field names, e.g. "sizes[1].quantity".
func Struct(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	validationErr := &errs.ValidationError{}
	for _, fe := range fieldErrs {
		validationErr.Fields = append(validationErr.Fields, errs.FieldError{
			Field: fieldPath(fe.Namespace()),
			Tag:   fe.Tag(),
		})
	}

	return validationErr
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}
