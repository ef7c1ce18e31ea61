package todaypickup

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	auth   string
	agency string
	body   []byte
}

func newRecordingServer(t *testing.T) (*httptest.Server, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.EscapedPath()
		rec.auth = r.Header.Get("Authorization")
		rec.agency = r.Header.Get("agencyId")
		rec.body, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(srv.Close)

	return srv, rec
}

func TestAgencyCallSites(t *testing.T) {
	auth := AuthContext{AgencyID: "A1", Token: "tok"}

	tests := []struct {
		name       string
		invoke     func(*Client) (*Result, error)
		wantMethod string
		wantPath   string
		wantBody   map[string]any
	}{
		{
			name: "CheckAuth",
			invoke: func(c *Client) (*Result, error) {
				return c.CheckAuth(context.Background(), auth)
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/agency/auth",
		},
		{
			name: "CreateToken",
			invoke: func(c *Client) (*Result, error) {
				return c.CreateToken(context.Background(), auth, AgencyCredentials{
					AccessKey: "key", Nonce: "n1", Timestamp: "1700000000",
				})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/agency/auth/token",
			wantBody:   map[string]any{"accessKey": "key", "nonce": "n1", "timestamp": "1700000000"},
		},
		{
			name: "UpdateDelivery",
			invoke: func(c *Client) (*Result, error) {
				return c.UpdateDelivery(context.Background(), auth, DeliveryAssignment{
					ExtOrderID: "EXT1", InvoiceNumber: "INV1", Status: "ASSIGNED",
				})
			},
			wantMethod: http.MethodPut,
			wantPath:   "/api/agency/delivery",
			wantBody:   map[string]any{"extOrderId": "EXT1", "invoiceNumber": "INV1", "status": "ASSIGNED"},
		},
		{
			name: "TransferFlex",
			invoke: func(c *Client) (*Result, error) {
				return c.TransferFlex(context.Background(), auth, InvoiceRef{InvoiceNumber: "INV1"})
			},
			wantMethod: http.MethodPut,
			wantPath:   "/api/agency/delivery/flex",
			wantBody:   map[string]any{"invoiceNumber": "INV1"},
		},
		{
			name: "TransferFlexList",
			invoke: func(c *Client) (*Result, error) {
				return c.TransferFlexList(context.Background(), auth, FlexTransferList{
					InvoiceNumberList: []string{"INV1", "INV2"},
				})
			},
			wantMethod: http.MethodPut,
			wantPath:   "/api/agency/delivery/list/flex",
			wantBody:   map[string]any{"invoiceNumberList": []any{"INV1", "INV2"}},
		},
		{
			name: "FindDeliveryList",
			invoke: func(c *Client) (*Result, error) {
				return c.FindDeliveryList(context.Background(), auth, "2026-08-24")
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/agency/delivery/list/2026-08-24",
		},
		{
			name: "UpdateDeliveryState",
			invoke: func(c *Client) (*Result, error) {
				return c.UpdateDeliveryState(context.Background(), auth, DeliveryStateUpdate{
					InvoiceNumber: "INV1", Status: "DELIVERED",
				})
			},
			wantMethod: http.MethodPut,
			wantPath:   "/api/agency/delivery/state",
			wantBody:   map[string]any{"invoiceNumber": "INV1", "status": "DELIVERED"},
		},
		{
			name: "FindDeliveries",
			invoke: func(c *Client) (*Result, error) {
				return c.FindDeliveries(context.Background(), auth, "INV1,INV2")
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/agency/delivery/INV1%2CINV2",
		},
		{
			name: "SavePostalCodes",
			invoke: func(c *Client) (*Result, error) {
				return c.SavePostalCodes(context.Background(), auth, PostalCodeList{
					DawnDelivery: "N",
					PostNumberSaveList: []PostalCode{{
						PostNumber: "03045", Sido: "서울", Gugun: "종로구", PossibleArea: "Y",
					}},
				})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/agency/postal/save",
			wantBody: map[string]any{
				"dawnDelivery": "N",
				"postNumberSaveList": []any{map[string]any{
					"postNumber": "03045", "sido": "서울", "gugun": "종로구", "possibleArea": "Y",
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, rec := newRecordingServer(t)
			client := NewClient(srv.URL, time.Second, zerolog.Nop())

			result, err := tt.invoke(client)
			require.NoError(t, err)
			require.NotNil(t, result)

			assert.Equal(t, tt.wantMethod, rec.method)
			assert.Equal(t, tt.wantPath, rec.path)
			assert.Equal(t, "tok", rec.auth)
			assert.Equal(t, "A1", rec.agency)

			if tt.wantBody != nil {
				var sent map[string]any
				require.NoError(t, json.Unmarshal(rec.body, &sent))
				assert.Equal(t, tt.wantBody, sent)
			} else {
				assert.Empty(t, rec.body)
			}
		})
	}
}

func TestAuthContextHeaders(t *testing.T) {
	auth := AuthContext{AgencyID: "A1", Token: "tok"}
	assert.Equal(t, map[string]string{"Authorization": "tok", "agencyId": "A1"}, auth.Headers())

	assert.True(t, auth.Valid())
	assert.False(t, AuthContext{AgencyID: "A1"}.Valid())
	assert.False(t, AuthContext{Token: "tok"}.Valid())
}
