// internal/handlers/helpers.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/boriwala/catalog-backend/internal/services"
	"github.com/boriwala/catalog-backend/internal/utils"
)

// respondServiceError maps service errors onto the response envelope. Unknown
// errors become a generic 500 with the detail kept server-side.
func respondServiceError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c)
	case errors.As(err, &validationErrs):
		utils.BadRequestResponse(c, utils.ValidationMessage(err))
	case services.IsInvalidInput(err):
		utils.BadRequestResponse(c, err.Error())
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("request handler failed")
		utils.InternalErrorResponse(c)
	}
}

// parseIDParam reads a :id path parameter as a UUID, answering 400 itself on
// failure.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body, answering 400 itself on failure.
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return false
	}
	return true
}
