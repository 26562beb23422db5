package session

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Network identifies a settlement rail the payer can choose.
type Network string

const (
	NetworkStellar Network = "stellar"
	NetworkUSDC    Network = "usdc"
)

// Networks lists the supported rails in display order.
func Networks() []Network {
	return []Network{NetworkStellar, NetworkUSDC}
}

// PaymentRequest is a merchant-configured request, immutable once built by
// Parse. Loading new input replaces it wholesale.
type PaymentRequest struct {
	Amount       decimal.Decimal
	Denomination string
	BusinessName string
	Description  string

	// addresses holds the ordered candidate addresses per network.
	// Empty lists are valid and render as "not yet configured".
	addresses map[Network][]string
}

// rawRequest is the wire shape accepted by Parse. Unrecognized fields are
// ignored by encoding/json. Amount arrives as a raw token so both JSON
// numbers and numeric strings are accepted.
type rawRequest struct {
	Amount        json.RawMessage `json:"amount"`
	Denomination  string          `json:"denomination"`
	Currency      string          `json:"currency"`
	BusinessName  string          `json:"businessName"`
	Description   string          `json:"description"`
	XLMAddresses  []string        `json:"xlmAddresses"`
	USDCAddresses []string        `json:"usdcAddresses"`
}

type normalizedRequest struct {
	Denomination string `validate:"required"`
	AmountText   string `validate:"required"`
}

var validate = validator.New()

// Parse builds a PaymentRequest from a raw JSON record, or rejects it.
// Required: amount (positive finite decimal) and denomination (aliased
// "currency"). Optional display fields default to empty strings; absent
// address lists default to empty sequences. Blank address entries are kept
// so the UI can show unconfigured slots; dropping them would renumber the
// remaining entries.
func Parse(data []byte) (*PaymentRequest, error) {
	var raw rawRequest
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, ErrMalformedInput
	}

	denom := raw.Denomination
	if denom == "" {
		denom = raw.Currency
	}

	norm := normalizedRequest{
		Denomination: denom,
		AmountText:   amountText(raw.Amount),
	}
	if err := validate.Struct(norm); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return nil, NewFieldError(fieldName(errs[0].Field()))
		}
		return nil, ErrMalformedInput
	}

	amount, err := decimal.NewFromString(norm.AmountText)
	if err != nil || !amount.IsPositive() {
		return nil, NewFieldError("amount")
	}

	req := &PaymentRequest{
		Amount:       amount,
		Denomination: denom,
		BusinessName: raw.BusinessName,
		Description:  raw.Description,
		addresses: map[Network][]string{
			NetworkStellar: append([]string(nil), raw.XLMAddresses...),
			NetworkUSDC:    append([]string(nil), raw.USDCAddresses...),
		},
	}
	return req, nil
}

// amountText extracts the textual amount from a raw JSON token, stripping
// quotes when the merchant supplied a string.
func amountText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func fieldName(structField string) string {
	switch structField {
	case "AmountText":
		return "amount"
	case "Denomination":
		return "denomination"
	default:
		return structField
	}
}

// AddressCount reports how many candidate addresses a network carries.
func (r *PaymentRequest) AddressCount(n Network) int {
	return len(r.addresses[n])
}
