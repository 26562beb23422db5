package main

import (
	"payment-checkout-tui/connector"
	"payment-checkout-tui/session"
)

// -------------------- TEA MESSAGES --------------------
// All custom message types for The Elm Architecture

// requestLoadedMsg carries the raw payment-request blob read from disk
type requestLoadedMsg struct {
	path string
	data []byte
	err  error
}

// copyResultMsg indicates the clipboard write finished. gen ties it to
// the request that was loaded when the copy was dispatched.
type copyResultMsg struct {
	gen   uint64
	entry session.AddressEntry
	err   error
}

// copyExpiredMsg fires when a copy indicator's timer elapses. seq ties it
// to the feedback entry it was scheduled for.
type copyExpiredMsg struct {
	seq uint64
}

// connectResultMsg carries the outcome of a wallet handshake. seq ties it
// to the attempt it was started for.
type connectResultMsg struct {
	seq    uint64
	handle *connector.Handle
	err    error
}

// logInitMsg signals that log viewport should be initialized
type logInitMsg struct{}
