package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The storefront clients consume bare JSON bodies: a profile object, an
// address array, or {"message": ...}. Keep the wire shapes exactly that thin
// instead of wrapping them in an envelope.

// JSON writes payload as-is with the given status.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Message writes {"message": msg}.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// ValidationFailed writes a 400 with the message plus field details when present.
func ValidationFailed(c *gin.Context, msg string, details map[string]string) {
	if len(details) == 0 {
		Message(c, http.StatusBadRequest, msg)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": msg, "details": details})
}

// ServerError hides internals behind the generic message.
func ServerError(c *gin.Context) {
	Message(c, http.StatusInternalServerError, "Server error")
}
