package middleware

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strata-labs/strata-backend/internal/projects/domain"
)

// RecoveryMiddleware converts any panic into the uniform error response
// shape instead of gin's empty 500.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[error] operation=recover panic=%v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, domain.Response{
			Success: false,
			Error:   "Internal server error",
			Message: fmt.Sprint(recovered),
		})
	})
}
