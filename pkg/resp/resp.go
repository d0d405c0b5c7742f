package resp

import (
	"errors"
	"net/http"

	"chopnow/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Error maps service errors onto status codes so every controller
// answers with the same shape.
func Error(c *gin.Context, err error) {
	var ce *apperr.CreationError
	switch {
	case errors.Is(err, apperr.ErrInvalidQuantity),
		errors.Is(err, apperr.ErrCartEmpty):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, apperr.ErrUnauthenticated),
		errors.Is(err, apperr.ErrInvalidCredential):
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, apperr.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, apperr.ErrNotFound),
		errors.Is(err, apperr.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, apperr.ErrEmailTaken),
		errors.Is(err, apperr.ErrInvalidTransition),
		errors.Is(err, apperr.ErrItemsUnavailable):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
	case errors.As(err, &ce):
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
