package mall

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/todaypickup/gateway/pkg/api"
	"github.com/todaypickup/gateway/pkg/todaypickup"
)

// Controller exposes the mall endpoints over HTTP. Each handler binds
// and validates input, then invokes the service exactly once and
// relays the upstream result.
type Controller struct {
	svc *Service
}

// CancelDelivery handles POST requests to cancel a registered delivery
func (ct *Controller) CancelDelivery(c *gin.Context) {
	// Parse request body
	var ref todaypickup.InvoiceRef
	if err := c.ShouldBindJSON(&ref); err != nil {
		c.JSON(api.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err.Error()).AsGinResponse())
		return
	}

	result, err := ct.svc.CancelDelivery(c.Request.Context(), c.GetHeader("Authorization"), ref)
	if err != nil {
		c.JSON(api.FromError(err).AsGinResponse())
		return
	}

	c.JSON(api.NewSuccessResponse("Delivery cancelled", result.Payload()).AsGinResponse())
}

// FindByInvoice handles GET requests to look up a single delivery
func (ct *Controller) FindByInvoice(c *gin.Context) {
	invoiceNumber := c.Param("invoiceNumber")

	result, err := ct.svc.FindByInvoice(c.Request.Context(), c.GetHeader("Authorization"), invoiceNumber)
	if err != nil {
		c.JSON(api.FromError(err).AsGinResponse())
		return
	}

	c.JSON(api.NewSuccessResponse("Delivery retrieved", result.Payload()).AsGinResponse())
}

// FindByInvoiceList handles GET requests to look up multiple deliveries
func (ct *Controller) FindByInvoiceList(c *gin.Context) {
	invoiceNumberList := c.Param("invoiceNumberList")

	result, err := ct.svc.FindByInvoiceList(c.Request.Context(), c.GetHeader("Authorization"), invoiceNumberList)
	if err != nil {
		c.JSON(api.FromError(err).AsGinResponse())
		return
	}

	c.JSON(api.NewSuccessResponse("Deliveries retrieved", result.Payload()).AsGinResponse())
}

// RegisterDeliveryList handles POST requests to register multiple deliveries
func (ct *Controller) RegisterDeliveryList(c *gin.Context) {
	// Parse request body
	var reg todaypickup.DeliveryRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(api.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err.Error()).AsGinResponse())
		return
	}

	result, err := ct.svc.RegisterDeliveryList(c.Request.Context(), c.GetHeader("Authorization"), reg)
	if err != nil {
		c.JSON(api.FromError(err).AsGinResponse())
		return
	}

	c.JSON(api.NewSuccessResponse("Deliveries registered", result.Payload()).AsGinResponse())
}

// RegisterDelivery handles POST requests to register a single delivery
func (ct *Controller) RegisterDelivery(c *gin.Context) {
	// Parse request body
	var goods todaypickup.DeliveryGoods
	if err := c.ShouldBindJSON(&goods); err != nil {
		c.JSON(api.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err.Error()).AsGinResponse())
		return
	}

	result, err := ct.svc.RegisterDelivery(c.Request.Context(), c.GetHeader("Authorization"), goods)
	if err != nil {
		c.JSON(api.FromError(err).AsGinResponse())
		return
	}

	c.JSON(api.NewSuccessResponse("Delivery registered", result.Payload()).AsGinResponse())
}

// PossibleDelivery handles GET requests to check deliverability
func (ct *Controller) PossibleDelivery(c *gin.Context) {
	// Parse query parameters
	var query todaypickup.PossibleDeliveryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(api.NewErrorResponse(http.StatusBadRequest, "Could not parse query parameters", err.Error()).AsGinResponse())
		return
	}

	result, err := ct.svc.PossibleDelivery(c.Request.Context(), c.GetHeader("Authorization"), query)
	if err != nil {
		c.JSON(api.FromError(err).AsGinResponse())
		return
	}

	c.JSON(api.NewSuccessResponse("Deliverability checked", result.Payload()).AsGinResponse())
}

// ReturnDelivery handles POST requests to request a return
func (ct *Controller) ReturnDelivery(c *gin.Context) {
	// Parse request body
	var ref todaypickup.InvoiceRef
	if err := c.ShouldBindJSON(&ref); err != nil {
		c.JSON(api.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err.Error()).AsGinResponse())
		return
	}

	result, err := ct.svc.ReturnDelivery(c.Request.Context(), c.GetHeader("Authorization"), ref)
	if err != nil {
		c.JSON(api.FromError(err).AsGinResponse())
		return
	}

	c.JSON(api.NewSuccessResponse("Return requested", result.Payload()).AsGinResponse())
}

// RegisterReturnList handles POST requests to register multiple return pickups
func (ct *Controller) RegisterReturnList(c *gin.Context) {
	// Parse request body
	var reg todaypickup.ReturnRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(api.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err.Error()).AsGinResponse())
		return
	}

	result, err := ct.svc.RegisterReturnList(c.Request.Context(), c.GetHeader("Authorization"), reg)
	if err != nil {
		c.JSON(api.FromError(err).AsGinResponse())
		return
	}

	c.JSON(api.NewSuccessResponse("Returns registered", result.Payload()).AsGinResponse())
}

// RegisterReturn handles POST requests to register a single return pickup
func (ct *Controller) RegisterReturn(c *gin.Context) {
	// Parse request body
	var goods todaypickup.Goods
	if err := c.ShouldBindJSON(&goods); err != nil {
		c.JSON(api.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err.Error()).AsGinResponse())
		return
	}

	result, err := ct.svc.RegisterReturn(c.Request.Context(), c.GetHeader("Authorization"), goods)
	if err != nil {
		c.JSON(api.FromError(err).AsGinResponse())
		return
	}

	c.JSON(api.NewSuccessResponse("Return registered", result.Payload()).AsGinResponse())
}
