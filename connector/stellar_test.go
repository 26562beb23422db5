package connector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-checkout-tui/session"
)

const fundedAccount = "GC64BIJXPVUVN4OTJAF5Q4HCPFEWOEEBKKG57BQL76U3PVMYYEF3RLHW"

func horizonStub(t *testing.T, status int, body string) *Stellar {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewStellar(srv.URL)
}

func TestStellarConnectFundedAccount(t *testing.T) {
	s := horizonStub(t, http.StatusOK,
		`{"id": "`+fundedAccount+`", "account_id": "`+fundedAccount+`", "sequence": "123"}`)

	h, err := s.Connect(context.Background(), session.NetworkStellar, fundedAccount)
	require.NoError(t, err)
	assert.NotEmpty(t, h.ID)
	assert.Equal(t, session.NetworkStellar, h.Network)
	assert.Equal(t, fundedAccount, h.Address)
}

func TestStellarConnectUnknownAccount(t *testing.T) {
	s := horizonStub(t, http.StatusNotFound,
		`{"type": "https://stellar.org/horizon-errors/not_found", "title": "Resource Missing", "status": 404}`)

	_, err := s.Connect(context.Background(), session.NetworkStellar, fundedAccount)
	assert.ErrorIs(t, err, ErrRejected)
}

func TestStellarConnectHorizonDown(t *testing.T) {
	s := horizonStub(t, http.StatusServiceUnavailable,
		`{"type": "about:blank", "title": "Service Unavailable", "status": 503}`)

	_, err := s.Connect(context.Background(), session.NetworkStellar, fundedAccount)
	assert.ErrorIs(t, err, ErrUnavailable)
}
