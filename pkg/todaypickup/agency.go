package todaypickup

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Agency Open API call sites. Every operation sends the Authorization
// and agencyId headers from the caller's AuthContext.

// CheckAuth validates an agency's token against the upstream.
func (c *Client) CheckAuth(ctx context.Context, auth AuthContext) (*Result, error) {
	return c.Forward(ctx, Call{
		Method:  http.MethodPost,
		Path:    "/api/agency/auth",
		Headers: auth.Headers(),
	})
}

// CreateToken issues a new auth token for an agency.
func (c *Client) CreateToken(ctx context.Context, auth AuthContext, creds AgencyCredentials) (*Result, error) {
	return c.Forward(ctx, Call{
		Method:  http.MethodPost,
		Path:    "/api/agency/auth/token",
		Headers: auth.Headers(),
		Body:    creds,
	})
}

// UpdateDelivery records an assignment update for a delivery.
func (c *Client) UpdateDelivery(ctx context.Context, auth AuthContext, update DeliveryAssignment) (*Result, error) {
	return c.Forward(ctx, Call{
		Method:  http.MethodPut,
		Path:    "/api/agency/delivery",
		Headers: auth.Headers(),
		Body:    update,
	})
}

// TransferFlex hands a single delivery over to Flex.
func (c *Client) TransferFlex(ctx context.Context, auth AuthContext, ref InvoiceRef) (*Result, error) {
	return c.Forward(ctx, Call{
		Method:  http.MethodPut,
		Path:    "/api/agency/delivery/flex",
		Headers: auth.Headers(),
		Body:    ref,
	})
}

// TransferFlexList hands multiple deliveries over to Flex.
func (c *Client) TransferFlexList(ctx context.Context, auth AuthContext, list FlexTransferList) (*Result, error) {
	return c.Forward(ctx, Call{
		Method:  http.MethodPut,
		Path:    "/api/agency/delivery/list/flex",
		Headers: auth.Headers(),
		Body:    list,
	})
}

// FindDeliveryList fetches the deliveries scheduled for a date (YYYY-MM-DD).
func (c *Client) FindDeliveryList(ctx context.Context, auth AuthContext, deliveryDt string) (*Result, error) {
	return c.Forward(ctx, Call{
		Method:  http.MethodPost,
		Path:    fmt.Sprintf("/api/agency/delivery/list/%s", url.PathEscape(deliveryDt)),
		Headers: auth.Headers(),
	})
}

// UpdateDeliveryState changes the state of a delivery in flight.
func (c *Client) UpdateDeliveryState(ctx context.Context, auth AuthContext, update DeliveryStateUpdate) (*Result, error) {
	return c.Forward(ctx, Call{
		Method:  http.MethodPut,
		Path:    "/api/agency/delivery/state",
		Headers: auth.Headers(),
		Body:    update,
	})
}

// FindDeliveries looks up deliveries by a comma-separated list of
// invoice numbers.
func (c *Client) FindDeliveries(ctx context.Context, auth AuthContext, invoiceNumberList string) (*Result, error) {
	return c.Forward(ctx, Call{
		Method:  http.MethodPost,
		Path:    fmt.Sprintf("/api/agency/delivery/%s", url.PathEscape(invoiceNumberList)),
		Headers: auth.Headers(),
	})
}

// SavePostalCodes registers the postal areas an agency can serve.
func (c *Client) SavePostalCodes(ctx context.Context, auth AuthContext, list PostalCodeList) (*Result, error) {
	return c.Forward(ctx, Call{
		Method:  http.MethodPost,
		Path:    "/api/agency/postal/save",
		Headers: auth.Headers(),
		Body:    list,
	})
}
