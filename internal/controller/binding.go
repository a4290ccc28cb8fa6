package controller

import (
	"errors"
	"fmt"

	"github.com/alimikegami/point-of-sales/ecommerce-service/pkg/errs"
	"github.com/labstack/echo/v4"
)

// bindError turns an echo binding failure into a client error. Query
// parameters that fail to parse are reported as field errors.
func bindError(err error) error {
	var bindingErr *echo.BindingError
	if errors.As(err, &bindingErr) && bindingErr.Field != "" {
		return errs.NewValidationError(bindingErr.Field, "number")
	}

	return fmt.Errorf("%w: malformed request body", errs.ErrClient)
}
