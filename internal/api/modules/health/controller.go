package health

import (
	"github.com/gin-gonic/gin"

	"github.com/todaypickup/gateway/pkg/api"
)

// Return status of the gateway
func getStatus(c *gin.Context) {
	res := api.NewSuccessResponse("OK", gin.H{
		"service": "todaypickup-gateway",
		"status":  "healthy",
	})
	c.JSON(res.AsGinResponse())
}
