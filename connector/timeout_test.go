package connector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-checkout-tui/session"
)

func TestWithTimeoutPassesThroughSuccess(t *testing.T) {
	inner := Func(func(ctx context.Context, network session.Network, address string) (*Handle, error) {
		return &Handle{ID: "ok", Network: network, Address: address}, nil
	})

	h, err := WithTimeout(inner, time.Second).Connect(context.Background(), session.NetworkUSDC, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, "ok", h.ID)
}

func TestWithTimeoutMapsDeadline(t *testing.T) {
	inner := Func(func(ctx context.Context, network session.Network, address string) (*Handle, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	_, err := WithTimeout(inner, 10*time.Millisecond).Connect(context.Background(), session.NetworkStellar, "GABC")
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestWithTimeoutKeepsConnectorTimeout(t *testing.T) {
	// a connector that already reports ErrTimeout is not double-wrapped
	inner := Func(func(ctx context.Context, network session.Network, address string) (*Handle, error) {
		<-ctx.Done()
		return nil, ErrTimeout
	})

	_, err := WithTimeout(inner, 10*time.Millisecond).Connect(context.Background(), session.NetworkStellar, "GABC")
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, ErrTimeout, err)
}

func TestWithTimeoutKeepsNonDeadlineErrors(t *testing.T) {
	inner := Func(func(ctx context.Context, network session.Network, address string) (*Handle, error) {
		return nil, ErrRejected
	})

	_, err := WithTimeout(inner, time.Second).Connect(context.Background(), session.NetworkStellar, "GABC")
	assert.ErrorIs(t, err, ErrRejected)
	assert.NotErrorIs(t, err, ErrTimeout)
}
