package mall

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the routes for the mall module
func RegisterRoutes(g *gin.RouterGroup, svc *Service) {
	ctl := &Controller{svc: svc}

	group := g.Group("/mall")

	group.POST("/cancelDelivery", ctl.CancelDelivery)                     // Cancel a registered delivery
	group.GET("/delivery/:invoiceNumber", ctl.FindByInvoice)              // Single delivery lookup
	group.GET("/deliveryList/:invoiceNumberList", ctl.FindByInvoiceList)  // Bulk delivery lookup
	group.POST("/deliveryListRegister", ctl.RegisterDeliveryList)         // Bulk delivery registration
	group.POST("/deliveryRegister", ctl.RegisterDelivery)                 // Single delivery registration
	group.GET("/possibleDelivery", ctl.PossibleDelivery)                  // Deliverability check
	group.POST("/returnDelivery", ctl.ReturnDelivery)                     // Request a return
	group.POST("/returnListRegister", ctl.RegisterReturnList)             // Bulk return registration
	group.POST("/returnRegister", ctl.RegisterReturn)                     // Single return registration
}
