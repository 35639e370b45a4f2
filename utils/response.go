// File: /utils/response.go
package utils

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pulsenet-api/services"
)

func SendError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// RespondError maps service-layer errors onto HTTP statuses. Store
// failures are logged server-side and never leaked to the client.
func RespondError(c *gin.Context, err error) {
	var validation *services.ValidationError
	if errors.As(err, &validation) {
		SendError(c, http.StatusBadRequest, validation.Reason)
		return
	}

	if errors.Is(err, services.ErrNotFound) {
		SendError(c, http.StatusNotFound, "Not found")
		return
	}

	if errors.Is(err, services.ErrForbidden) {
		SendError(c, http.StatusForbidden, "Forbidden")
		return
	}

	log.Printf("Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	SendError(c, http.StatusInternalServerError, "Internal server error")
}

// ParsePagination reads offset/limit query parameters. Non-numeric
// values are a client error; out-of-range values are clamped later by
// the services.
func ParsePagination(c *gin.Context) (offset, limit int, ok bool) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		SendError(c, http.StatusBadRequest, "Invalid offset parameter")
		return 0, 0, false
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(services.DefaultPageLimit)))
	if err != nil {
		SendError(c, http.StatusBadRequest, "Invalid limit parameter")
		return 0, 0, false
	}

	return offset, limit, true
}
