package agency

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/todaypickup/gateway/pkg/api"
	"github.com/todaypickup/gateway/pkg/todaypickup"
)

// Service owns the agency-side business validation and delegates each
// operation to the upstream client exactly once.
type Service struct {
	client *todaypickup.Client
}

func NewService(client *todaypickup.Client) *Service {
	return &Service{client: client}
}

// validateAuth rejects requests missing either auth header before any
// outbound call is made. The upstream owns the actual auth decision.
func (s *Service) validateAuth(auth todaypickup.AuthContext) error {
	if strings.TrimSpace(auth.Token) == "" {
		return fmt.Errorf("%w: Authorization header is required", api.ErrInvalidInput)
	}
	if strings.TrimSpace(auth.AgencyID) == "" {
		return fmt.Errorf("%w: agencyId header is required", api.ErrInvalidInput)
	}
	return nil
}

func (s *Service) CheckAuth(ctx context.Context, auth todaypickup.AuthContext) (*todaypickup.Result, error) {
	if err := s.validateAuth(auth); err != nil {
		return nil, err
	}
	return s.client.CheckAuth(ctx, auth)
}

func (s *Service) CreateToken(ctx context.Context, auth todaypickup.AuthContext, creds todaypickup.AgencyCredentials) (*todaypickup.Result, error) {
	if err := s.validateAuth(auth); err != nil {
		return nil, err
	}
	return s.client.CreateToken(ctx, auth, creds)
}

func (s *Service) UpdateDelivery(ctx context.Context, auth todaypickup.AuthContext, update todaypickup.DeliveryAssignment) (*todaypickup.Result, error) {
	if err := s.validateAuth(auth); err != nil {
		return nil, err
	}
	return s.client.UpdateDelivery(ctx, auth, update)
}

func (s *Service) TransferFlex(ctx context.Context, auth todaypickup.AuthContext, ref todaypickup.InvoiceRef) (*todaypickup.Result, error) {
	if err := s.validateAuth(auth); err != nil {
		return nil, err
	}
	return s.client.TransferFlex(ctx, auth, ref)
}

func (s *Service) TransferFlexList(ctx context.Context, auth todaypickup.AuthContext, list todaypickup.FlexTransferList) (*todaypickup.Result, error) {
	if err := s.validateAuth(auth); err != nil {
		return nil, err
	}
	return s.client.TransferFlexList(ctx, auth, list)
}

// FindDeliveryList fetches deliveries for a date. The date travels as a
// path segment, so it is validated here rather than by body binding.
func (s *Service) FindDeliveryList(ctx context.Context, auth todaypickup.AuthContext, deliveryDt string) (*todaypickup.Result, error) {
	if err := s.validateAuth(auth); err != nil {
		return nil, err
	}
	if _, err := time.Parse("2006-01-02", deliveryDt); err != nil {
		return nil, fmt.Errorf("%w: deliveryDt must be in YYYY-MM-DD format", api.ErrInvalidInput)
	}
	return s.client.FindDeliveryList(ctx, auth, deliveryDt)
}

func (s *Service) UpdateDeliveryState(ctx context.Context, auth todaypickup.AuthContext, update todaypickup.DeliveryStateUpdate) (*todaypickup.Result, error) {
	if err := s.validateAuth(auth); err != nil {
		return nil, err
	}
	return s.client.UpdateDeliveryState(ctx, auth, update)
}

func (s *Service) FindDeliveries(ctx context.Context, auth todaypickup.AuthContext, invoiceNumberList string) (*todaypickup.Result, error) {
	if err := s.validateAuth(auth); err != nil {
		return nil, err
	}
	if strings.TrimSpace(invoiceNumberList) == "" {
		return nil, fmt.Errorf("%w: invoice number list must not be empty", api.ErrInvalidInput)
	}
	return s.client.FindDeliveries(ctx, auth, invoiceNumberList)
}

func (s *Service) SavePostalCodes(ctx context.Context, auth todaypickup.AuthContext, list todaypickup.PostalCodeList) (*todaypickup.Result, error) {
	if err := s.validateAuth(auth); err != nil {
		return nil, err
	}
	return s.client.SavePostalCodes(ctx, auth, list)
}
