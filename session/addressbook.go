package session

// AddressEntry is one candidate destination address, numbered within its
// network. (Network, Index) uniquely identifies it within a request.
type AddressEntry struct {
	Network Network
	Index   int
	Address string
}

// AddressBook exposes the ordered candidate addresses of a request.
type AddressBook struct {
	req *PaymentRequest
}

// NewAddressBook wraps a request. A nil request yields an empty book.
func NewAddressBook(req *PaymentRequest) AddressBook {
	return AddressBook{req: req}
}

// Entries returns the ordered entries for a network. An empty slice is a
// valid result, not an error.
func (b AddressBook) Entries(n Network) []AddressEntry {
	if b.req == nil {
		return nil
	}
	addrs := b.req.addresses[n]
	entries := make([]AddressEntry, 0, len(addrs))
	for i, a := range addrs {
		entries = append(entries, AddressEntry{Network: n, Index: i, Address: a})
	}
	return entries
}

// EntryAt returns the entry at index for a network, or ErrOutOfRange.
// Callers iterating Entries never hit the error path.
func (b AddressBook) EntryAt(n Network, index int) (AddressEntry, error) {
	if b.req == nil {
		return AddressEntry{}, ErrNoRequest
	}
	addrs := b.req.addresses[n]
	if index < 0 || index >= len(addrs) {
		return AddressEntry{}, ErrOutOfRange
	}
	return AddressEntry{Network: n, Index: index, Address: addrs[index]}, nil
}
