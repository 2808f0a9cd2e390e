package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/solcrusher/internal/swap"
	"github.com/rovshanmuradov/solcrusher/internal/token"
	"github.com/rovshanmuradov/solcrusher/internal/ui/style"
	"github.com/rovshanmuradov/solcrusher/internal/wallet"
)

// TokenChosenMsg is emitted when a token is picked in the dialog
type TokenChosenMsg struct {
	Side  swap.Side
	Token token.Token
}

// TokenDialogClosedMsg is emitted when the dialog is dismissed without a pick
type TokenDialogClosedMsg struct {
	Side swap.Side
}

// TokenDialog lists the reference tokens for one side of the pair,
// filtered by a search field.
type TokenDialog struct {
	side    swap.Side
	tokens  token.List
	filter  textinput.Model
	results []token.Token
	cursor  int
	palette style.Palette
	width   int
}

// NewTokenDialog creates a dialog over tokens
func NewTokenDialog(tokens token.List) *TokenDialog {
	filter := textinput.New()
	filter.Placeholder = "Search by name, symbol or mint"
	filter.Prompt = "⌕ "
	filter.CharLimit = 64
	filter.Width = 36

	return &TokenDialog{
		tokens:  tokens,
		filter:  filter,
		results: tokens.All(),
		palette: style.DefaultPalette(),
	}
}

// Reset prepares the dialog for side with the cursor on current
func (d *TokenDialog) Reset(side swap.Side, current token.Token) tea.Cmd {
	d.side = side
	d.filter.Reset()
	d.results = d.tokens.All()
	d.cursor = 0
	for i, t := range d.results {
		if t.Equals(current) {
			d.cursor = i
			break
		}
	}
	return d.filter.Focus()
}

// Side returns the side the dialog picks for
func (d *TokenDialog) Side() swap.Side {
	return d.side
}

// Results returns the tokens currently listed
func (d *TokenDialog) Results() []token.Token {
	return d.results
}

// Cursor returns the highlighted row
func (d *TokenDialog) Cursor() int {
	return d.cursor
}

// SetWidth sets the component width
func (d *TokenDialog) SetWidth(width int) {
	d.width = width
}

// Update handles key input
func (d *TokenDialog) Update(msg tea.Msg) (*TokenDialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		d.filter, cmd = d.filter.Update(msg)
		return d, cmd
	}

	switch keyMsg.Type {
	case tea.KeyEsc:
		d.filter.Blur()
		side := d.side
		return d, func() tea.Msg { return TokenDialogClosedMsg{Side: side} }
	case tea.KeyUp:
		if d.cursor > 0 {
			d.cursor--
		}
		return d, nil
	case tea.KeyDown:
		if d.cursor < len(d.results)-1 {
			d.cursor++
		}
		return d, nil
	case tea.KeyEnter:
		if len(d.results) == 0 {
			return d, nil
		}
		d.filter.Blur()
		chosen := TokenChosenMsg{Side: d.side, Token: d.results[d.cursor]}
		return d, func() tea.Msg { return chosen }
	}

	var cmd tea.Cmd
	d.filter, cmd = d.filter.Update(keyMsg)
	d.results = d.tokens.Search(strings.TrimSpace(d.filter.Value()))
	if d.cursor >= len(d.results) {
		d.cursor = 0
	}
	return d, cmd
}

// View renders the dialog
func (d *TokenDialog) View() string {
	muted := lipgloss.NewStyle().Foreground(d.palette.TextMuted)
	title := lipgloss.NewStyle().Foreground(d.palette.Primary).Bold(true).
		Render("Select a token · " + d.side.String())

	lines := []string{title, d.filter.View(), ""}
	if len(d.results) == 0 {
		lines = append(lines, muted.Render("No tokens found"))
	}
	for i, t := range d.results {
		row := fmt.Sprintf("%s %-6s %-14s %s", t.Badge(), t.Symbol, t.Name,
			muted.Render(wallet.Ellipsify(t.Mint.String(), 4)))
		if i == d.cursor {
			row = lipgloss.NewStyle().Foreground(d.palette.Primary).Bold(true).Render("▸ " + row)
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}
	lines = append(lines, "", muted.Render("enter select • esc close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(d.palette.Primary).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}
