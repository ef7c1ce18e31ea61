package todaypickup

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Mall Open API call sites. Mall operations authenticate with the
// Authorization header alone.

func authHeader(token string) map[string]string {
	return map[string]string{"Authorization": token}
}

// CancelDelivery cancels a previously registered delivery.
func (c *Client) CancelDelivery(ctx context.Context, token string, ref InvoiceRef) (*Result, error) {
	return c.Forward(ctx, Call{
		Method:  http.MethodPost,
		Path:    "/api/mall/cancelDelivery",
		Headers: authHeader(token),
		Body:    ref,
	})
}

// FindByInvoice looks up a single delivery by invoice number.
func (c *Client) FindByInvoice(ctx context.Context, token, invoiceNumber string) (*Result, error) {
	return c.Forward(ctx, Call{
		Method:  http.MethodGet,
		Path:    fmt.Sprintf("/api/mall/delivery/%s", url.PathEscape(invoiceNumber)),
		Headers: authHeader(token),
	})
}

// FindByInvoiceList looks up deliveries by a comma-separated list of
// invoice numbers.
func (c *Client) FindByInvoiceList(ctx context.Context, token, invoiceNumberList string) (*Result, error) {
	return c.Forward(ctx, Call{
		Method:  http.MethodGet,
		Path:    fmt.Sprintf("/api/mall/deliveryList/%s", url.PathEscape(invoiceNumberList)),
		Headers: authHeader(token),
	})
}

// RegisterDeliveryList registers multiple deliveries in one request.
func (c *Client) RegisterDeliveryList(ctx context.Context, token string, reg DeliveryRegistration) (*Result, error) {
	return c.Forward(ctx, Call{
		Method:  http.MethodPost,
		Path:    "/api/mall/deliveryListRegister",
		Headers: authHeader(token),
		Body:    reg,
	})
}

// RegisterDelivery registers a single delivery.
func (c *Client) RegisterDelivery(ctx context.Context, token string, goods DeliveryGoods) (*Result, error) {
	return c.Forward(ctx, Call{
		Method:  http.MethodPost,
		Path:    "/api/mall/deliveryRegister",
		Headers: authHeader(token),
		Body:    goods,
	})
}

// PossibleDelivery checks whether an address is deliverable.
func (c *Client) PossibleDelivery(ctx context.Context, token string, query PossibleDeliveryQuery) (*Result, error) {
	params := map[string]string{"address": query.Address}
	if query.PostalCode != "" {
		params["postalCode"] = query.PostalCode
	}
	if query.DawnDelivery != "" {
		params["dawnDelivery"] = query.DawnDelivery
	}

	return c.Forward(ctx, Call{
		Method:  http.MethodGet,
		Path:    "/api/mall/possibleDelivery",
		Query:   params,
		Headers: authHeader(token),
	})
}

// ReturnDelivery requests a return for a delivered item.
func (c *Client) ReturnDelivery(ctx context.Context, token string, ref InvoiceRef) (*Result, error) {
	return c.Forward(ctx, Call{
		Method:  http.MethodPost,
		Path:    "/api/mall/returnDelivery",
		Headers: authHeader(token),
		Body:    ref,
	})
}

// RegisterReturnList registers multiple return pickups in one request.
func (c *Client) RegisterReturnList(ctx context.Context, token string, reg ReturnRegistration) (*Result, error) {
	return c.Forward(ctx, Call{
		Method:  http.MethodPost,
		Path:    "/api/mall/returnListRegister",
		Headers: authHeader(token),
		Body:    reg,
	})
}

// RegisterReturn registers a single return pickup.
func (c *Client) RegisterReturn(ctx context.Context, token string, goods Goods) (*Result, error) {
	return c.Forward(ctx, Call{
		Method:  http.MethodPost,
		Path:    "/api/mall/returnRegister",
		Headers: authHeader(token),
		Body:    goods,
	})
}
