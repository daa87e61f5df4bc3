package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CrashedRouter answers every request with a 500 describing why startup
// failed, so a broken deployment reports itself instead of going silent.
func CrashedRouter(cause error) http.Handler {
	r := gin.New()
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "CRASHED",
			"error":  "Backend crashed during startup import",
			"debug_info": gin.H{
				"message": cause.Error(),
			},
		})
	})
	return r
}
