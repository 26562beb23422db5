package connector

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/google/uuid"

	"payment-checkout-tui/session"
)

// USDCMainnetToken is the USDC contract on Ethereum mainnet.
const USDCMainnetToken = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"

// balanceOf(address) methodID = keccak256("balanceOf(address)")[:4]
var balanceOfSelector = []byte{0x70, 0xa0, 0x82, 0x31}

// USDC performs the handshake against an Ethereum JSON-RPC endpoint: the
// destination must be a well-formed hex address, the endpoint must be
// reachable, and the USDC contract must answer a balanceOf probe for it.
type USDC struct {
	RPCURL string
	Token  common.Address

	dialTimeout time.Duration
}

// NewUSDC builds a connector for the given RPC URL. An empty token selects
// the mainnet USDC contract.
func NewUSDC(rpcURL, token string) *USDC {
	if token == "" {
		token = USDCMainnetToken
	}
	return &USDC{
		RPCURL:      rpcURL,
		Token:       common.HexToAddress(token),
		dialTimeout: 8 * time.Second,
	}
}

func (u *USDC) Connect(ctx context.Context, network session.Network, address string) (*Handle, error) {
	if network != session.NetworkUSDC {
		return nil, fmt.Errorf("%w: usdc connector got network %q", ErrRejected, network)
	}
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %q is not a hex address", ErrRejected, address)
	}

	dialCtx, cancel := context.WithTimeout(ctx, u.dialTimeout)
	defer cancel()

	client, err := ethclient.DialContext(dialCtx, u.RPCURL)
	if err != nil {
		return nil, wrapCtx(ctx, fmt.Errorf("dial %s: %v", u.RPCURL, err))
	}
	defer client.Close()

	if _, err := u.balanceOf(ctx, client, common.HexToAddress(address)); err != nil {
		return nil, wrapCtx(ctx, err)
	}

	return &Handle{
		ID:      uuid.NewString(),
		Network: network,
		Address: address,
	}, nil
}

func (u *USDC) balanceOf(ctx context.Context, client *ethclient.Client, owner common.Address) (*big.Int, error) {
	// calldata = selector + 32-byte left-padded address
	data := append(append([]byte(nil), balanceOfSelector...), common.LeftPadBytes(owner.Bytes(), 32)...)
	msg := ethereum.CallMsg{To: &u.Token, Data: data}
	out, err := client.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return big.NewInt(0), nil
	}
	return new(big.Int).SetBytes(out), nil
}

func wrapCtx(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
