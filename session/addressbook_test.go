package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressBookEntries(t *testing.T) {
	req, err := Parse([]byte(`{"amount": 1, "denomination": "USD", "xlmAddresses": ["GA", "GB"]}`))
	require.NoError(t, err)
	book := NewAddressBook(req)

	entries := book.Entries(NetworkStellar)
	require.Len(t, entries, 2)
	assert.Equal(t, AddressEntry{Network: NetworkStellar, Index: 0, Address: "GA"}, entries[0])
	assert.Equal(t, AddressEntry{Network: NetworkStellar, Index: 1, Address: "GB"}, entries[1])

	// empty list is a valid result, not an error
	assert.Empty(t, book.Entries(NetworkUSDC))
}

func TestAddressBookEntryAt(t *testing.T) {
	req, err := Parse([]byte(`{"amount": 1, "denomination": "USD", "usdcAddresses": ["0xabc"]}`))
	require.NoError(t, err)
	book := NewAddressBook(req)

	entry, err := book.EntryAt(NetworkUSDC, 0)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", entry.Address)

	_, err = book.EntryAt(NetworkUSDC, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = book.EntryAt(NetworkUSDC, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = book.EntryAt(NetworkStellar, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestAddressBookNilRequest(t *testing.T) {
	book := NewAddressBook(nil)
	assert.Empty(t, book.Entries(NetworkStellar))

	_, err := book.EntryAt(NetworkStellar, 0)
	assert.ErrorIs(t, err, ErrNoRequest)
}
