package response

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/pvpit/gatepass-api/pkg/errors"
)

// The wire contract is flat: success responses are the raw payload (objects
// or bare arrays) and every failure carries an "error" key. The frontend
// predates this service and depends on that shape.

// JSON sends a success payload as-is.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, payload)
}

// Error converts any error to its mapped status and an {"error": ...} body.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}

// ErrorWithDetails additionally exposes the underlying error chain. Only the
// PRN status endpoint uses this, mirroring its historical verbose failures.
func ErrorWithDetails(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	body := gin.H{"error": appErr.Message}
	if appErr.Err != nil {
		body["details"] = appErr.Err.Error()
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, body)
}
