package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/solcrusher/internal/ui"
	"github.com/rovshanmuradov/solcrusher/internal/ui/component"
	"github.com/rovshanmuradov/solcrusher/internal/ui/router"
	"github.com/rovshanmuradov/solcrusher/internal/ui/style"
	"github.com/rovshanmuradov/solcrusher/internal/wallet"
)

// AccountScreen shows the connected wallet on the active cluster
type AccountScreen struct {
	env     Env
	width   int
	height  int
	keyMap  ui.KeyMap
	helpBar *component.HelpBar
	palette style.Palette
}

// NewAccountScreen creates the account screen
func NewAccountScreen(env Env) *AccountScreen {
	return &AccountScreen{
		env:     env,
		keyMap:  ui.DefaultKeyMap(),
		helpBar: component.NewHelpBar(ui.RouteAccount),
		palette: style.DefaultPalette(),
	}
}

// Init initializes the account screen
func (s *AccountScreen) Init() tea.Cmd {
	return nil
}

// Update handles screen updates
func (s *AccountScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	connected := s.env.Session.Connected()
	switch {
	case key.Matches(keyMsg, s.keyMap.Refresh):
		return s, ui.Emit(ui.RefreshRequestMsg{})
	case key.Matches(keyMsg, s.keyMap.Airdrop) && connected && s.env.Clusters.Active().IsDevelopment():
		return s, ui.Emit(ui.AirdropRequestMsg{})
	case key.Matches(keyMsg, s.keyMap.Disconnect) && connected:
		return s, ui.Emit(ui.DisconnectRequestMsg{})
	case key.Matches(keyMsg, s.keyMap.Connect) && !connected:
		return s, ui.Emit(ui.OpenConnectMsg{})
	}
	return s, nil
}

// Rows returns the label/value pairs the screen shows
func (s *AccountScreen) Rows() [][2]string {
	active := s.env.Clusters.Active()
	shared := s.env.Shared

	network := "checking"
	if st, ok := shared.Statuses[active.Name]; ok {
		if st.Connected {
			network = fmt.Sprintf("online, %dms", st.Latency.Milliseconds())
		} else {
			network = "offline"
		}
	}

	rows := [][2]string{
		{"Cluster", active.Name},
		{"Endpoint", active.Endpoint},
		{"Network", network},
	}

	address, ok := s.env.Session.Address()
	if !ok {
		return append(rows, [2]string{"Wallet", "not connected"})
	}

	rows = append(rows,
		[2]string{"Wallet", address.String()},
		[2]string{"Short", wallet.Ellipsify(address.String(), 4)},
		[2]string{"Balance", shared.Balance.Value.Display()},
	)
	if !shared.Balance.At.IsZero() && shared.Balance.Seq > 0 {
		rows = append(rows, [2]string{"Updated", shared.Balance.At.Format("15:04:05")})
	}
	if shared.Balance.Err != nil {
		rows = append(rows, [2]string{"Last error", shared.Balance.Err.Error()})
	}
	verified := "no"
	if s.env.Session.Verified() {
		verified = "yes"
	}
	rows = append(rows, [2]string{"Verified", verified})
	if shared.AirdropPending {
		rows = append(rows, [2]string{"Airdrop", "in progress"})
	}
	return rows
}

// View renders the account screen
func (s *AccountScreen) View() string {
	label := lipgloss.NewStyle().Foreground(s.palette.TextMuted).Width(12)
	value := lipgloss.NewStyle().Foreground(s.palette.Text)

	lines := []string{
		lipgloss.NewStyle().Foreground(s.palette.Primary).Bold(true).Render("Account"),
		"",
	}
	for _, row := range s.Rows() {
		lines = append(lines, label.Render(row[0])+value.Render(row[1]))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.palette.Primary).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, card, s.helpBar.View(s.env.Shared.Status))
}

// SetSize sets the screen dimensions
func (s *AccountScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.helpBar.SetWidth(width)
}
