package connector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-checkout-tui/session"
)

// WithTimeout bounds every handshake made through the wrapped connector.
// A connector that never resolves would otherwise leave the session's
// attempt pending forever.
func WithTimeout(c Connector, d time.Duration) Connector {
	return Func(func(ctx context.Context, network session.Network, address string) (*Handle, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		h, err := c.Connect(ctx, network, address)
		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, ErrTimeout) {
			return nil, fmt.Errorf("%w: after %s", ErrTimeout, d)
		}
		return h, err
	})
}
