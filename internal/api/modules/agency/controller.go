package agency

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/todaypickup/gateway/pkg/api"
	"github.com/todaypickup/gateway/pkg/todaypickup"
)

// Controller exposes the agency endpoints over HTTP. Each handler
// binds and validates input, then invokes the service exactly once and
// relays the upstream result.
type Controller struct {
	svc *Service
}

// authFromHeaders extracts the upstream auth pair from the inbound request
func authFromHeaders(c *gin.Context) todaypickup.AuthContext {
	return todaypickup.AuthContext{
		Token:    c.GetHeader("Authorization"),
		AgencyID: c.GetHeader("agencyId"),
	}
}

// CheckAuth handles POST requests to validate an agency token
func (ct *Controller) CheckAuth(c *gin.Context) {
	result, err := ct.svc.CheckAuth(c.Request.Context(), authFromHeaders(c))
	if err != nil {
		c.JSON(api.FromError(err).AsGinResponse())
		return
	}

	c.JSON(api.NewSuccessResponse("Auth check completed", result.Payload()).AsGinResponse())
}

// CreateToken handles POST requests to issue a new agency token
func (ct *Controller) CreateToken(c *gin.Context) {
	// Parse request body
	var creds todaypickup.AgencyCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(api.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err.Error()).AsGinResponse())
		return
	}

	result, err := ct.svc.CreateToken(c.Request.Context(), authFromHeaders(c), creds)
	if err != nil {
		c.JSON(api.FromError(err).AsGinResponse())
		return
	}

	c.JSON(api.NewSuccessResponse("Token created", result.Payload()).AsGinResponse())
}

// UpdateDelivery handles PUT requests to record an assignment update
func (ct *Controller) UpdateDelivery(c *gin.Context) {
	// Parse request body
	var update todaypickup.DeliveryAssignment
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(api.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err.Error()).AsGinResponse())
		return
	}

	result, err := ct.svc.UpdateDelivery(c.Request.Context(), authFromHeaders(c), update)
	if err != nil {
		c.JSON(api.FromError(err).AsGinResponse())
		return
	}

	c.JSON(api.NewSuccessResponse("Delivery updated", result.Payload()).AsGinResponse())
}

// TransferFlex handles PUT requests to hand a delivery over to Flex
func (ct *Controller) TransferFlex(c *gin.Context) {
	// Parse request body
	var ref todaypickup.InvoiceRef
	if err := c.ShouldBindJSON(&ref); err != nil {
		c.JSON(api.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err.Error()).AsGinResponse())
		return
	}

	result, err := ct.svc.TransferFlex(c.Request.Context(), authFromHeaders(c), ref)
	if err != nil {
		c.JSON(api.FromError(err).AsGinResponse())
		return
	}

	c.JSON(api.NewSuccessResponse("Delivery transferred to Flex", result.Payload()).AsGinResponse())
}

// TransferFlexList handles PUT requests to hand multiple deliveries over to Flex
func (ct *Controller) TransferFlexList(c *gin.Context) {
	// Parse request body
	var list todaypickup.FlexTransferList
	if err := c.ShouldBindJSON(&list); err != nil {
		c.JSON(api.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err.Error()).AsGinResponse())
		return
	}

	result, err := ct.svc.TransferFlexList(c.Request.Context(), authFromHeaders(c), list)
	if err != nil {
		c.JSON(api.FromError(err).AsGinResponse())
		return
	}

	c.JSON(api.NewSuccessResponse("Deliveries transferred to Flex", result.Payload()).AsGinResponse())
}

// FindDeliveryList handles POST requests to fetch deliveries for a date
func (ct *Controller) FindDeliveryList(c *gin.Context) {
	deliveryDt := c.Param("deliveryDt")

	result, err := ct.svc.FindDeliveryList(c.Request.Context(), authFromHeaders(c), deliveryDt)
	if err != nil {
		c.JSON(api.FromError(err).AsGinResponse())
		return
	}

	c.JSON(api.NewSuccessResponse("Deliveries retrieved", result.Payload()).AsGinResponse())
}

// UpdateDeliveryState handles PUT requests to change a delivery's state
func (ct *Controller) UpdateDeliveryState(c *gin.Context) {
	// Parse request body
	var update todaypickup.DeliveryStateUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(api.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err.Error()).AsGinResponse())
		return
	}

	result, err := ct.svc.UpdateDeliveryState(c.Request.Context(), authFromHeaders(c), update)
	if err != nil {
		c.JSON(api.FromError(err).AsGinResponse())
		return
	}

	c.JSON(api.NewSuccessResponse("Delivery state updated", result.Payload()).AsGinResponse())
}

// FindDeliveries handles POST requests to look up deliveries by invoice numbers
func (ct *Controller) FindDeliveries(c *gin.Context) {
	invoiceNumberList := c.Param("invoiceNumberList")

	result, err := ct.svc.FindDeliveries(c.Request.Context(), authFromHeaders(c), invoiceNumberList)
	if err != nil {
		c.JSON(api.FromError(err).AsGinResponse())
		return
	}

	c.JSON(api.NewSuccessResponse("Deliveries retrieved", result.Payload()).AsGinResponse())
}

// SavePostalCodes handles POST requests to register deliverable areas
func (ct *Controller) SavePostalCodes(c *gin.Context) {
	// Parse request body
	var list todaypickup.PostalCodeList
	if err := c.ShouldBindJSON(&list); err != nil {
		c.JSON(api.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err.Error()).AsGinResponse())
		return
	}

	result, err := ct.svc.SavePostalCodes(c.Request.Context(), authFromHeaders(c), list)
	if err != nil {
		c.JSON(api.FromError(err).AsGinResponse())
		return
	}

	c.JSON(api.NewSuccessResponse("Postal codes saved", result.Payload()).AsGinResponse())
}
