package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keyboard shortcuts for the application
type KeyMap struct {
	// Global navigation
	Quit key.Binding
	Back key.Binding

	// Navigation
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding

	// Header
	Menu        key.Binding
	Search      key.Binding
	NextNetwork key.Binding
	PrevNetwork key.Binding
	Airdrop     key.Binding
	Connect     key.Binding
	Disconnect  key.Binding
	AccountMenu key.Binding
	Refresh     key.Binding

	// Screens
	Dashboard  key.Binding
	Account    key.Binding
	ToggleLogs key.Binding

	// Swap widget
	PickSell   key.Binding
	PickBuy    key.Binding
	Flip       key.Binding
	NextTab    key.Binding
	ToggleMode key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Global navigation
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),

		// Header
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		NextNetwork: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next network"),
		),
		PrevNetwork: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "prev network"),
		),
		Airdrop: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "airdrop"),
		),
		Connect: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "connect"),
		),
		Disconnect: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "disconnect"),
		),
		AccountMenu: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "balance menu"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "f5"),
			key.WithHelp("r", "refresh"),
		),

		// Screens
		Dashboard: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "dashboard"),
		),
		Account: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "account"),
		),
		ToggleLogs: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "logs"),
		),

		// Swap widget
		PickSell: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sell token"),
		),
		PickBuy: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "buy token"),
		),
		Flip: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "swap sides"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "order type"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "ultra/manual"),
		),
	}
}

// ShortHelp returns key help text for the current context
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

// ContextualHelp returns help text based on the current route
func (k KeyMap) ContextualHelp(route Route) []key.Binding {
	switch route {
	case RouteLanding:
		return []key.Binding{k.Connect, k.Dashboard, k.Quit}
	case RouteDashboard:
		return []key.Binding{
			k.PickSell, k.PickBuy, k.Flip, k.NextTab, k.ToggleMode,
			k.Search, k.NextNetwork, k.Airdrop, k.AccountMenu, k.Menu,
			k.Connect, k.Refresh, k.ToggleLogs, k.Back, k.Quit,
		}
	case RouteAccount:
		return []key.Binding{k.Refresh, k.Airdrop, k.Disconnect, k.Back, k.Quit}
	default:
		return k.ShortHelp()
	}
}
