// Package controllers holds the Gin handlers for the REST surface. Every
// controller is constructed with the store handles it needs; no handler
// reaches for package-level state.
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/karigarstudio/karigar-studio-api/stores"
)

const dateLayout = "2006-01-02"

// parseDate accepts the plain calendar dates the dashboard submits, falling
// back to RFC 3339 for API clients that send full timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// validationDetails turns a binding error into per-field messages when the
// failure came from the validator, or the raw message otherwise.
func validationDetails(err error) interface{} {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = fe.Tag()
		}
		return details
	}
	return err.Error()
}

// respondValidationError reports a failed request binding. Nothing has been
// written to any store at this point.
func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Invalid request data",
			"details": validationDetails(err),
		},
	})
}

// respondStoreError maps store failures onto the response envelope:
// absence is 404, a rejected status value is 400, anything else is the
// catch-all 500 with the failure's own message.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, stores.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Not found",
			},
		})
	case errors.Is(err, stores.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_STATUS",
				"message": err.Error(),
			},
		})
	default:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": err.Error(),
			},
		})
	}
}
