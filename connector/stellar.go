package connector

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/strkey"

	"payment-checkout-tui/session"
)

// Stellar performs the handshake against a Horizon instance: the
// destination must be a well-formed ed25519 public key and must resolve to
// a funded account.
type Stellar struct {
	Horizon horizonclient.ClientInterface
}

// NewStellar builds a connector for the given Horizon URL. An empty URL
// selects the public testnet instance.
func NewStellar(horizonURL string) *Stellar {
	if horizonURL == "" {
		return &Stellar{Horizon: horizonclient.DefaultTestNetClient}
	}
	return &Stellar{Horizon: &horizonclient.Client{HorizonURL: horizonURL}}
}

func (s *Stellar) Connect(ctx context.Context, network session.Network, address string) (*Handle, error) {
	if network != session.NetworkStellar {
		return nil, fmt.Errorf("%w: stellar connector got network %q", ErrRejected, network)
	}
	if !strkey.IsValidEd25519PublicKey(address) {
		return nil, fmt.Errorf("%w: %q is not a stellar public key", ErrRejected, address)
	}

	_, err := s.Horizon.AccountDetail(horizonclient.AccountRequest{AccountID: address})
	if err != nil {
		var hErr *horizonclient.Error
		if errors.As(err, &hErr) {
			if hErr.Problem.Status == 404 {
				return nil, fmt.Errorf("%w: account %s not found on the network", ErrRejected, address)
			}
			return nil, fmt.Errorf("%w: horizon: %s", ErrUnavailable, hErr.Problem.Title)
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &Handle{
		ID:      uuid.NewString(),
		Network: network,
		Address: address,
	}, nil
}
