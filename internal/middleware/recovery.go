package middleware

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/biztime/internal/dto"
	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into the standard 500 error envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		GetLoggerFromContext(c).Error("Recovered from panic", "panic", fmt.Sprint(recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse(http.StatusInternalServerError, "internal server error"))
	})
}
