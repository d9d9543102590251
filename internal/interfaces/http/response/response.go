package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "crusaiders.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Validation failures become a structured
// 400 with the full field error list; anything that is not an AppError is
// treated as an internal fault and its cause hidden from the caller.
func Error(c *gin.Context, err error) {
	var verr *domainerrors.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid data",
			"errors":  verr.Fields,
		})
		return
	}

	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
	}
	c.JSON(appErr.Status, gin.H{"message": appErr.Message})
}
