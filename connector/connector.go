// Package connector provides the wallet-connection capability consumed by
// the payment session. Implementations perform a single handshake per
// Connect call; cancellation and supersession are the session's concern.
package connector

import (
	"context"
	"errors"

	"payment-checkout-tui/session"
)

// Sentinel errors the session surfaces to the payer. Implementations wrap
// these with %w so callers can match with errors.Is.
var (
	// ErrRejected means the destination address was refused by the
	// network (bad shape, unknown account, no contract).
	ErrRejected = errors.New("connector: address rejected")

	// ErrUnavailable means the backing network endpoint could not be
	// reached or answered with a server failure.
	ErrUnavailable = errors.New("connector: network unavailable")

	// ErrTimeout means the handshake exceeded the configured deadline.
	ErrTimeout = errors.New("connector: handshake timed out")
)

// Handle identifies an established wallet connection.
type Handle struct {
	ID      string
	Network session.Network
	Address string
}

// Connector performs a wallet handshake against one settlement network.
type Connector interface {
	Connect(ctx context.Context, network session.Network, address string) (*Handle, error)
}

// Func adapts a function to the Connector interface.
type Func func(ctx context.Context, network session.Network, address string) (*Handle, error)

func (f Func) Connect(ctx context.Context, network session.Network, address string) (*Handle, error) {
	return f(ctx, network, address)
}
