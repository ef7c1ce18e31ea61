package agency

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the routes for the agency module
func RegisterRoutes(g *gin.RouterGroup, svc *Service) {
	ctl := &Controller{svc: svc}

	group := g.Group("/agency")

	group.POST("/auth", ctl.CheckAuth)                            // Validate an agency token
	group.POST("/auth/token", ctl.CreateToken)                    // Issue a new agency token
	group.PUT("/delivery", ctl.UpdateDelivery)                    // Record an assignment update
	group.PUT("/delivery/flex", ctl.TransferFlex)                 // Hand one delivery to Flex
	group.PUT("/delivery/list/flex", ctl.TransferFlexList)        // Hand multiple deliveries to Flex
	group.POST("/delivery/list/:deliveryDt", ctl.FindDeliveryList) // Deliveries for a date
	group.PUT("/delivery/state", ctl.UpdateDeliveryState)         // Update a delivery's state
	group.POST("/delivery/:invoiceNumberList", ctl.FindDeliveries) // Deliveries by invoice numbers
	group.POST("/postal/save", ctl.SavePostalCodes)               // Register deliverable areas
}
