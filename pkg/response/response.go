package response

import (
	"errors"
	"net/http"

	"github.com/alimikegami/point-of-sales/ecommerce-service/pkg/errs"
	"github.com/labstack/echo/v4"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

func WriteSuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func WriteCreatedResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func WriteMessageResponse(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// WriteErrorResponse maps err to its status code. Field details of a
// validation error are placed in "errors" unless errors is given explicitly.
func WriteErrorResponse(c echo.Context, err error, errors interface{}) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{}
	resp.Status = "error"
	resp.Message = err.Error()
	resp.Errors = errors

	if resp.Errors == nil {
		if fields := validationFields(err); fields != nil {
			resp.Errors = fields
		}
	}

	// driver messages stay in the logs
	if statusCode == errs.ErrStatusServiceUnavailable {
		resp.Message = errs.ErrStorage.Error()
	} else if statusCode == errs.ErrStatusInternalServer {
		resp.Message = errs.ErrInternalServer.Error()
	}

	return c.JSON(statusCode, resp)
}

func validationFields(err error) []errs.FieldError {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Fields
	}

	return nil
}
