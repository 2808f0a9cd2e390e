package component

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/solcrusher/internal/ui"
	"github.com/rovshanmuradov/solcrusher/internal/ui/style"
	"github.com/rovshanmuradov/solcrusher/internal/wallet"
)

// MarketingHeader is the landing page header. It reads only the wallet session.
type MarketingHeader struct {
	session *wallet.Session
	keys    ui.KeyMap
	palette style.Palette
	width   int
}

// NewMarketingHeader creates the landing header
func NewMarketingHeader(session *wallet.Session) *MarketingHeader {
	return &MarketingHeader{
		session: session,
		keys:    ui.DefaultKeyMap(),
		palette: style.DefaultPalette(),
	}
}

// SetWidth sets the component width
func (m *MarketingHeader) SetWidth(width int) {
	m.width = width
}

// Links returns the visible navigation labels in render order
func (m *MarketingHeader) Links() []string {
	if m.session.Connected() {
		return []string{"Dashboard", "Disconnect"}
	}
	return []string{"Connect Wallet"}
}

// Update handles key input
func (m *MarketingHeader) Update(msg tea.Msg) (*MarketingHeader, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	connected := m.session.Connected()
	switch {
	case key.Matches(keyMsg, m.keys.Dashboard) && connected:
		return m, ui.Emit(ui.RouterMsg{To: ui.RouteDashboard})
	case key.Matches(keyMsg, m.keys.Connect) && !connected:
		return m, ui.Emit(ui.OpenConnectMsg{})
	case key.Matches(keyMsg, m.keys.Disconnect) && connected:
		return m, ui.Emit(ui.DisconnectRequestMsg{})
	}
	return m, nil
}

// View renders the header
func (m *MarketingHeader) View() string {
	title := lipgloss.NewStyle().Foreground(m.palette.Primary).Bold(true).Render("SolCrusher")
	hint := lipgloss.NewStyle().Foreground(m.palette.TextMuted)
	link := lipgloss.NewStyle().Foreground(m.palette.Text)

	parts := []string{title}
	if m.session.Connected() {
		parts = append(parts,
			"   ", hint.Render("[g] ")+link.Render("Dashboard"),
			"   ", hint.Render("[d] ")+link.Render(wallet.Ellipsify(m.session.String(), 4)))
	} else {
		parts = append(parts,
			"   ", hint.Render("[w] ")+lipgloss.NewStyle().Foreground(m.palette.Secondary).Bold(true).Render("Connect Wallet"))
	}

	container := lipgloss.NewStyle().Padding(0, 1)
	if m.width > 0 {
		container = container.Width(m.width)
	}
	return container.Render(lipgloss.JoinHorizontal(lipgloss.Center, parts...))
}
