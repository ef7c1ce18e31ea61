package todaypickup

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string, timeout time.Duration) *Client {
	return NewClient(baseURL, timeout, zerolog.Nop())
}

func TestForward_RequestComposition(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotQuery  string
		gotAuth   string
		gotAgency string
		gotBody   []byte
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("address")
		gotAuth = r.Header.Get("Authorization")
		gotAgency = r.Header.Get("agencyId")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, time.Second)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			_, err := client.Forward(context.Background(), Call{
				Method: method,
				Path:   "/api/test",
				Query:  map[string]string{"address": "1 Main St"},
				Headers: map[string]string{
					"Authorization": "Bearer t",
					"agencyId":      "A1",
				},
			})
			require.NoError(t, err)

			assert.Equal(t, method, gotMethod)
			assert.Equal(t, "/api/test", gotPath)
			assert.Equal(t, "1 Main St", gotQuery)
			assert.Equal(t, "Bearer t", gotAuth)
			assert.Equal(t, "A1", gotAgency)
		})
	}

	t.Run("body is forwarded verbatim", func(t *testing.T) {
		_, err := client.Forward(context.Background(), Call{
			Method: http.MethodPut,
			Path:   "/api/agency/delivery/state",
			Body: map[string]string{
				"invoiceNumber": "INV1",
				"status":        "DELIVERED",
			},
		})
		require.NoError(t, err)

		var sent map[string]string
		require.NoError(t, json.Unmarshal(gotBody, &sent))
		assert.Equal(t, map[string]string{"invoiceNumber": "INV1", "status": "DELIVERED"}, sent)
	})

	t.Run("unsupported method is rejected", func(t *testing.T) {
		_, err := client.Forward(context.Background(), Call{Method: http.MethodPatch, Path: "/api/test"})
		require.Error(t, err)

		var statusErr *StatusError
		var unavailErr *UnavailableError
		assert.False(t, errors.As(err, &statusErr))
		assert.False(t, errors.As(err, &unavailErr))
	})
}

func TestForward_SuccessResponses(t *testing.T) {
	t.Run("json body is parsed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status": "in_transit"}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, time.Second)
		result, err := client.Forward(context.Background(), Call{
			Method:  http.MethodGet,
			Path:    "/api/mall/delivery/INV123",
			Headers: map[string]string{"Authorization": "Bearer t"},
		})
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, result.StatusCode)
		assert.Equal(t, map[string]any{"status": "in_transit"}, result.Data)
		assert.Empty(t, result.Text)
		assert.Equal(t, map[string]any{"status": "in_transit"}, result.Payload())
	})

	t.Run("non-json body falls back to raw text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("PONG"))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, time.Second)
		result, err := client.Forward(context.Background(), Call{Method: http.MethodPost, Path: "/api/agency/auth"})
		require.NoError(t, err)

		assert.Nil(t, result.Data)
		assert.Equal(t, "PONG", result.Text)
		assert.Equal(t, "PONG", result.Payload())
	})

	t.Run("empty body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, time.Second)
		result, err := client.Forward(context.Background(), Call{Method: http.MethodDelete, Path: "/x"})
		require.NoError(t, err)

		assert.Equal(t, http.StatusNoContent, result.StatusCode)
		assert.Nil(t, result.Data)
		assert.Empty(t, result.Text)
	})
}

func TestForward_StatusErrors(t *testing.T) {
	t.Run("json error payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "invalid token"}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, time.Second)
		result, err := client.Forward(context.Background(), Call{
			Method:  http.MethodPost,
			Path:    "/api/agency/auth",
			Headers: map[string]string{"Authorization": "x", "agencyId": "A1"},
		})
		require.Error(t, err)
		assert.Nil(t, result)

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
		assert.Equal(t, map[string]any{"error": "invalid token"}, statusErr.Body)
	})

	t.Run("plain text error payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("something broke"))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, time.Second)
		_, err := client.Forward(context.Background(), Call{Method: http.MethodGet, Path: "/x"})

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
		assert.Nil(t, statusErr.Body)
		assert.Equal(t, "something broke", statusErr.Payload())
	})

	t.Run("empty error body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, time.Second)
		_, err := client.Forward(context.Background(), Call{Method: http.MethodGet, Path: "/x"})

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	})
}

func TestForward_TransportFailures(t *testing.T) {
	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // nothing is listening anymore

		client := newTestClient(srv.URL, time.Second)
		result, err := client.Forward(context.Background(), Call{Method: http.MethodGet, Path: "/x"})
		require.Error(t, err)
		assert.Nil(t, result)

		var unavailErr *UnavailableError
		require.ErrorAs(t, err, &unavailErr)
		assert.Error(t, errors.Unwrap(unavailErr))
	})

	t.Run("timeout is bounded", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(500 * time.Millisecond)
		}))
		defer srv.Close()

		client := newTestClient(srv.URL, 50*time.Millisecond)

		start := time.Now()
		_, err := client.Forward(context.Background(), Call{
			Method: http.MethodGet,
			Path:   "/api/mall/possibleDelivery",
			Query:  map[string]string{"address": "1 Main St"},
		})
		elapsed := time.Since(start)

		var unavailErr *UnavailableError
		require.ErrorAs(t, err, &unavailErr)
		assert.Less(t, elapsed, 400*time.Millisecond)
	})
}

func TestForward_NoCaching(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, time.Second)
	call := Call{Method: http.MethodGet, Path: "/api/mall/delivery/INV123"}

	_, err := client.Forward(context.Background(), call)
	require.NoError(t, err)
	_, err = client.Forward(context.Background(), call)
	require.NoError(t, err)

	assert.Equal(t, 2, hits)
}

func TestForward_DefaultHeaders(t *testing.T) {
	var gotContentType, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, time.Second)

	t.Run("defaults applied", func(t *testing.T) {
		_, err := client.Forward(context.Background(), Call{Method: http.MethodPost, Path: "/x", Body: map[string]string{}})
		require.NoError(t, err)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, "application/json", gotAccept)
	})

	t.Run("call headers override defaults", func(t *testing.T) {
		_, err := client.Forward(context.Background(), Call{
			Method:  http.MethodPost,
			Path:    "/x",
			Headers: map[string]string{"Accept": "text/plain"},
		})
		require.NoError(t, err)
		assert.Equal(t, "text/plain", gotAccept)
	})
}
