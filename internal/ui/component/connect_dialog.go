package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gagliardetto/solana-go"
	"github.com/rovshanmuradov/solcrusher/internal/ui"
	"github.com/rovshanmuradov/solcrusher/internal/ui/state"
	"github.com/rovshanmuradov/solcrusher/internal/ui/style"
)

// ConnectDialog asks for a base58 wallet address. Only the public address is
// ever entered; no key material passes through it.
type ConnectDialog struct {
	open    state.Toggle
	input   textinput.Model
	err     string
	palette style.Palette
}

// NewConnectDialog creates a closed connect dialog
func NewConnectDialog() *ConnectDialog {
	input := textinput.New()
	input.Placeholder = "Wallet address (base58)"
	input.CharLimit = 64
	input.Width = 48

	return &ConnectDialog{
		input:   input,
		palette: style.DefaultPalette(),
	}
}

// Open shows the dialog with an empty field
func (c *ConnectDialog) Open() tea.Cmd {
	c.open.Open()
	c.err = ""
	c.input.Reset()
	return c.input.Focus()
}

// Close hides the dialog
func (c *ConnectDialog) Close() {
	c.open.Close()
	c.input.Blur()
}

// IsOpen reports whether the dialog is shown
func (c *ConnectDialog) IsOpen() bool {
	return c.open.IsOpen()
}

// Error returns the validation message of the last submit
func (c *ConnectDialog) Error() string {
	return c.err
}

// Update handles key input while open
func (c *ConnectDialog) Update(msg tea.Msg) (*ConnectDialog, tea.Cmd) {
	if !c.IsOpen() {
		return c, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			c.Close()
			return c, nil
		case tea.KeyEnter:
			address := strings.TrimSpace(c.input.Value())
			if _, err := solana.PublicKeyFromBase58(address); err != nil {
				c.err = "Not a valid Solana address"
				return c, nil
			}
			c.Close()
			return c, ui.Emit(ui.ConnectRequestMsg{Address: address})
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	c.err = ""
	return c, cmd
}

// View renders the dialog, or nothing when closed
func (c *ConnectDialog) View() string {
	if !c.IsOpen() {
		return ""
	}

	muted := lipgloss.NewStyle().Foreground(c.palette.TextMuted)
	lines := []string{
		lipgloss.NewStyle().Foreground(c.palette.Primary).Bold(true).Render("Connect Wallet"),
		"",
		c.input.View(),
	}
	if c.err != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(c.palette.Error).Render(c.err))
	}
	lines = append(lines, "", muted.Render("enter connect • esc cancel"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.palette.Secondary).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}
