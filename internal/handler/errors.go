package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/carelog/clinic-api/pkg/apperror"
)

// ErrorResponse is the error body returned at the request boundary.
type ErrorResponse struct {
	Status  string                `json:"status"`
	Message string                `json:"message"`
	Fields  []apperror.FieldError `json:"fields,omitempty"`
}

// WriteError converts any service error into a user-facing response.
// Unauthenticated errors redirect to the login page; everything else is
// rendered as JSON with the taxonomy's status code.
func WriteError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.Internal(err)
	}

	if appErr.Code == apperror.CodeUnauthenticated {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}

	c.Error(err)
	c.JSON(appErr.StatusCode(), ErrorResponse{
		Status:  "error",
		Message: appErr.Message,
		Fields:  appErr.Fields,
	})
}

// BindError turns a gin binding failure into a field-level validation
// error so form errors look the same whether binding or the service
// caught them.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]apperror.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, apperror.FieldError{
				Field:   fe.Field(),
				Message: fe.Error(),
			})
		}
		WriteError(c, apperror.Validation(fields...))
		return
	}

	c.JSON(http.StatusBadRequest, NewErrorResponse(err.Error()))
}
