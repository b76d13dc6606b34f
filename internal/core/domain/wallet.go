package domain

import (
	"github.com/shopspring/decimal"
)

// WalletStatus represents the lifecycle state of the simulated wallet connection.
type WalletStatus string

const (
	WalletStatusDisconnected WalletStatus = "DISCONNECTED"
	WalletStatusConnecting   WalletStatus = "CONNECTING"
	WalletStatusConnected    WalletStatus = "CONNECTED"
)

// WalletState is the simulated wallet connection.
// Address and balance are only present while the status is CONNECTED; the
// fields are unexported so the only way to build a connected wallet is
// ConnectedWallet.
type WalletState struct {
	status   WalletStatus
	address  string
	balance  decimal.Decimal
	currency string
}

// DisconnectedWallet returns the initial wallet state.
func DisconnectedWallet() WalletState {
	return WalletState{status: WalletStatusDisconnected}
}

// ConnectingWallet returns the in-flight connection state.
func ConnectingWallet() WalletState {
	return WalletState{status: WalletStatusConnecting}
}

// ConnectedWallet returns a connected wallet holding address and balance.
func ConnectedWallet(address string, balance decimal.Decimal, currency string) WalletState {
	return WalletState{
		status:   WalletStatusConnected,
		address:  address,
		balance:  balance,
		currency: currency,
	}
}

// Status returns the connection status. The zero value reports DISCONNECTED.
func (w WalletState) Status() WalletStatus {
	if w.status == "" {
		return WalletStatusDisconnected
	}
	return w.status
}

// IsConnected returns true once the connection has completed.
func (w WalletState) IsConnected() bool {
	return w.status == WalletStatusConnected
}

// Address returns the wallet address and whether it is present.
func (w WalletState) Address() (string, bool) {
	return w.address, w.IsConnected()
}

// Balance returns the wallet balance, its unit, and whether it is present.
func (w WalletState) Balance() (decimal.Decimal, string, bool) {
	return w.balance, w.currency, w.IsConnected()
}

// DisplayAddress returns the truncated address, or "" when not connected.
func (w WalletState) DisplayAddress() string {
	if !w.IsConnected() {
		return ""
	}
	return TruncateAddress(w.address)
}

// TruncateAddress shortens a hex address for display: 0x742d...8f1a.
// Addresses too short to shorten are returned unchanged.
func TruncateAddress(address string) string {
	const head, tail = 6, 4
	if len(address) <= head+tail+3 {
		return address
	}
	return address[:head] + "..." + address[len(address)-tail:]
}
