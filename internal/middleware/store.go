package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StoreUnavailableMessage is returned while the entity store is unreachable.
const StoreUnavailableMessage = "Database is temporarily unavailable. Please try again later."

// StoreChecker reports the last known store connectivity.
type StoreChecker interface {
	IsAvailable() bool
}

// RequireStore fails requests fast with 503 while the store is down. It reads
// the connectivity flag only and never probes the store itself.
func RequireStore(store StoreChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.IsAvailable() {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"message": StoreUnavailableMessage,
			})
			return
		}
		c.Next()
	}
}
