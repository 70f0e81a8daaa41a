package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns the liveness status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
