package mall

import (
	"context"
	"fmt"
	"strings"

	"github.com/todaypickup/gateway/pkg/api"
	"github.com/todaypickup/gateway/pkg/todaypickup"
)

// Service owns the mall-side business validation and delegates each
// operation to the upstream client exactly once.
type Service struct {
	client *todaypickup.Client
}

func NewService(client *todaypickup.Client) *Service {
	return &Service{client: client}
}

func validateToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("%w: Authorization header is required", api.ErrInvalidInput)
	}
	return nil
}

func (s *Service) CancelDelivery(ctx context.Context, token string, ref todaypickup.InvoiceRef) (*todaypickup.Result, error) {
	if err := validateToken(token); err != nil {
		return nil, err
	}
	return s.client.CancelDelivery(ctx, token, ref)
}

func (s *Service) FindByInvoice(ctx context.Context, token, invoiceNumber string) (*todaypickup.Result, error) {
	if err := validateToken(token); err != nil {
		return nil, err
	}
	if strings.TrimSpace(invoiceNumber) == "" {
		return nil, fmt.Errorf("%w: invoice number must not be empty", api.ErrInvalidInput)
	}
	return s.client.FindByInvoice(ctx, token, invoiceNumber)
}

func (s *Service) FindByInvoiceList(ctx context.Context, token, invoiceNumberList string) (*todaypickup.Result, error) {
	if err := validateToken(token); err != nil {
		return nil, err
	}
	if strings.TrimSpace(invoiceNumberList) == "" {
		return nil, fmt.Errorf("%w: invoice number list must not be empty", api.ErrInvalidInput)
	}
	return s.client.FindByInvoiceList(ctx, token, invoiceNumberList)
}

func (s *Service) RegisterDeliveryList(ctx context.Context, token string, reg todaypickup.DeliveryRegistration) (*todaypickup.Result, error) {
	if err := validateToken(token); err != nil {
		return nil, err
	}
	return s.client.RegisterDeliveryList(ctx, token, reg)
}

func (s *Service) RegisterDelivery(ctx context.Context, token string, goods todaypickup.DeliveryGoods) (*todaypickup.Result, error) {
	if err := validateToken(token); err != nil {
		return nil, err
	}
	return s.client.RegisterDelivery(ctx, token, goods)
}

func (s *Service) PossibleDelivery(ctx context.Context, token string, query todaypickup.PossibleDeliveryQuery) (*todaypickup.Result, error) {
	if err := validateToken(token); err != nil {
		return nil, err
	}
	if strings.TrimSpace(query.Address) == "" {
		return nil, fmt.Errorf("%w: address must not be empty", api.ErrInvalidInput)
	}
	return s.client.PossibleDelivery(ctx, token, query)
}

func (s *Service) ReturnDelivery(ctx context.Context, token string, ref todaypickup.InvoiceRef) (*todaypickup.Result, error) {
	if err := validateToken(token); err != nil {
		return nil, err
	}
	return s.client.ReturnDelivery(ctx, token, ref)
}

func (s *Service) RegisterReturnList(ctx context.Context, token string, reg todaypickup.ReturnRegistration) (*todaypickup.Result, error) {
	if err := validateToken(token); err != nil {
		return nil, err
	}
	return s.client.RegisterReturnList(ctx, token, reg)
}

func (s *Service) RegisterReturn(ctx context.Context, token string, goods todaypickup.Goods) (*todaypickup.Result, error) {
	if err := validateToken(token); err != nil {
		return nil, err
	}
	return s.client.RegisterReturn(ctx, token, goods)
}
