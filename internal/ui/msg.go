package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gagliardetto/solana-go"
	"github.com/rovshanmuradov/solcrusher/internal/balance"
	"github.com/rovshanmuradov/solcrusher/internal/blockchain/solbc"
	"github.com/rovshanmuradov/solcrusher/internal/token"
)

// Tea message types for UI communication

// RouterMsg represents navigation between screens
type RouterMsg struct {
	To Route
}

// BalanceMsg carries a balance poller publication
type BalanceMsg struct {
	Update balance.Update
}

// ClusterStatusMsg carries the result of one probe round
type ClusterStatusMsg struct {
	Statuses map[string]solbc.Status
}

// AirdropResultMsg reports an airdrop request outcome
type AirdropResultMsg struct {
	Cluster   string
	Lamports  uint64
	Signature solana.Signature
	Err       error
}

// WalletChangedMsg is emitted after connect or disconnect
type WalletChangedMsg struct{}

// StatusMsg is a one-line notice for the status area
type StatusMsg struct {
	Text    string
	IsError bool
}

// Requests emitted by components. The application model owns the side effects.

// ConnectRequestMsg asks to connect the given base58 address
type ConnectRequestMsg struct {
	Address string
}

// DisconnectRequestMsg asks to drop the wallet session
type DisconnectRequestMsg struct{}

// AirdropRequestMsg asks for a devnet airdrop to the connected wallet
type AirdropRequestMsg struct{}

// ClusterSwitchMsg asks to move the cluster selection by Step (+1 / -1)
type ClusterSwitchMsg struct {
	Step int
}

// RefreshRequestMsg asks for an immediate balance read and probe round
type RefreshRequestMsg struct{}

// TokenSearchMsg carries the token picked from the header search
type TokenSearchMsg struct {
	Token token.Token
}

// OpenConnectMsg asks to show the connect dialog
type OpenConnectMsg struct{}

// Emit wraps a message into a command
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// Listen returns a tea.Cmd that waits for the next message on ch.
// The command must be re-issued after every delivery.
func Listen(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// Route represents different screens in the application
type Route int

const (
	RouteLanding Route = iota
	RouteDashboard
	RouteAccount
)

// String returns the string representation of the route
func (r Route) String() string {
	switch r {
	case RouteLanding:
		return "landing"
	case RouteDashboard:
		return "dashboard"
	case RouteAccount:
		return "account"
	default:
		return "unknown"
	}
}
