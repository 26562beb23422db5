package session

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidRequest(t *testing.T) {
	data := []byte(`{
		"amount": 150,
		"denomination": "USD",
		"businessName": "Acme Coffee",
		"description": "Large oat latte",
		"xlmAddresses": ["GABC", "GDEF"],
		"usdcAddresses": ["0x1111111111111111111111111111111111111111"]
	}`)

	req, err := Parse(data)
	require.NoError(t, err)
	assert.True(t, req.Amount.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "USD", req.Denomination)
	assert.Equal(t, "Acme Coffee", req.BusinessName)
	assert.Equal(t, "Large oat latte", req.Description)
	assert.Equal(t, 2, req.AddressCount(NetworkStellar))
	assert.Equal(t, 1, req.AddressCount(NetworkUSDC))
}

func TestParseOptionalFieldsDefault(t *testing.T) {
	req, err := Parse([]byte(`{"amount": "9.99", "denomination": "EUR"}`))
	require.NoError(t, err)
	assert.Empty(t, req.BusinessName)
	assert.Empty(t, req.Description)
	assert.Zero(t, req.AddressCount(NetworkStellar))
	assert.Zero(t, req.AddressCount(NetworkUSDC))
}

func TestParseAmountAsString(t *testing.T) {
	req, err := Parse([]byte(`{"amount": "42.5", "denomination": "USD"}`))
	require.NoError(t, err)
	assert.True(t, req.Amount.Equal(decimal.RequireFromString("42.5")))
}

func TestParseCurrencyAlias(t *testing.T) {
	req, err := Parse([]byte(`{"amount": 1, "currency": "GBP"}`))
	require.NoError(t, err)
	assert.Equal(t, "GBP", req.Denomination)
}

func TestParseMissingAmount(t *testing.T) {
	_, err := Parse([]byte(`{"denomination": "USD"}`))
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "amount", fieldErr.Field)
}

func TestParseNonPositiveAmount(t *testing.T) {
	for _, amount := range []string{"0", "-3", `"0"`, `"-0.01"`} {
		_, err := Parse([]byte(`{"amount": ` + amount + `, "denomination": "USD"}`))
		var fieldErr *FieldError
		require.ErrorAs(t, err, &fieldErr, "amount %s should be rejected", amount)
		assert.Equal(t, "amount", fieldErr.Field)
	}
}

func TestParseUnparsableAmount(t *testing.T) {
	_, err := Parse([]byte(`{"amount": "lots", "denomination": "USD"}`))
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "amount", fieldErr.Field)
}

func TestParseMissingDenomination(t *testing.T) {
	_, err := Parse([]byte(`{"amount": 5}`))
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "denomination", fieldErr.Field)
}

func TestParseMalformedInput(t *testing.T) {
	_, err := Parse([]byte(`{not json`))
	assert.True(t, errors.Is(err, ErrMalformedInput))
}

func TestParseKeepsBlankAddressSlots(t *testing.T) {
	// Blank entries stay in place so slot numbering is stable for the
	// operator still configuring the request.
	req, err := Parse([]byte(`{"amount": 1, "denomination": "USD", "xlmAddresses": ["", "GABC", ""]}`))
	require.NoError(t, err)

	entries := NewAddressBook(req).Entries(NetworkStellar)
	require.Len(t, entries, 3)
	assert.Equal(t, "", entries[0].Address)
	assert.Equal(t, "GABC", entries[1].Address)
	assert.Equal(t, 1, entries[1].Index)
}

func TestParseIgnoresUnknownFields(t *testing.T) {
	req, err := Parse([]byte(`{"amount": 1, "denomination": "USD", "feePercentage": 250, "requester": "GXYZ"}`))
	require.NoError(t, err)
	assert.Equal(t, "USD", req.Denomination)
}
