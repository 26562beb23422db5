package helpers

import (
	"net/url"

	"github.com/shopspring/decimal"

	"payment-checkout-tui/session"
)

// PaymentURI builds the URI a payer's wallet app understands for the given
// destination: SEP-0007 for Stellar, EIP-681 for USDC. The URI is what the
// modal renders as a QR code.
func PaymentURI(network session.Network, address string, amount decimal.Decimal, denomination string) string {
	switch network {
	case session.NetworkStellar:
		return stellarPayURI(address, amount, denomination)
	case session.NetworkUSDC:
		return eip681URI(address)
	default:
		return ""
	}
}

// stellarPayURI renders a SEP-0007 pay operation:
// web+stellar:pay?destination=G...&amount=150&asset_code=USD
func stellarPayURI(address string, amount decimal.Decimal, denomination string) string {
	q := url.Values{}
	q.Set("destination", address)
	if amount.IsPositive() {
		q.Set("amount", amount.String())
	}
	if denomination != "" && denomination != "XLM" {
		q.Set("asset_code", denomination)
	}
	return "web+stellar:pay?" + q.Encode()
}

// eip681URI renders the minimal EIP-681 form wallets accept for a plain
// destination. Token amount negotiation happens in the wallet.
func eip681URI(address string) string {
	return "ethereum:" + address
}
