package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/solcrusher/internal/swap"
	"github.com/rovshanmuradov/solcrusher/internal/token"
	"github.com/rovshanmuradov/solcrusher/internal/ui"
	"github.com/rovshanmuradov/solcrusher/internal/ui/style"
	"go.uber.org/zap"
)

const maxAmountLen = 24

// SwapWidget renders the trading pair selector with one token dialog per side
type SwapWidget struct {
	sel     *swap.Selector
	dialog  *TokenDialog
	keys    ui.KeyMap
	palette style.Palette
	logger  *zap.Logger
	width   int
}

// NewSwapWidget creates the widget over a fresh selector for tokens
func NewSwapWidget(tokens token.List, logger *zap.Logger) (*SwapWidget, error) {
	sel, err := swap.NewSelector(tokens)
	if err != nil {
		return nil, err
	}
	return &SwapWidget{
		sel:     sel,
		dialog:  NewTokenDialog(tokens),
		keys:    ui.DefaultKeyMap(),
		palette: style.DefaultPalette(),
		logger:  logger.Named("swap-widget"),
	}, nil
}

// Selector exposes the widget state
func (w *SwapWidget) Selector() *swap.Selector {
	return w.sel
}

// Dialog returns the token dialog
func (w *SwapWidget) Dialog() *TokenDialog {
	return w.dialog
}

// SetWidth sets the component width
func (w *SwapWidget) SetWidth(width int) {
	w.width = width
	w.dialog.SetWidth(width)
}

// activeDialog returns the side whose dialog is open
func (w *SwapWidget) activeDialog() (swap.Side, bool) {
	for _, side := range []swap.Side{swap.Sell, swap.Buy} {
		if w.sel.DialogOpen(side) {
			return side, true
		}
	}
	return swap.Sell, false
}

// HasOverlay reports whether a token dialog is open
func (w *SwapWidget) HasOverlay() bool {
	_, open := w.activeDialog()
	return open
}

// Capturing reports whether the widget wants every key
func (w *SwapWidget) Capturing() bool {
	return w.HasOverlay()
}

func (w *SwapWidget) openDialog(side swap.Side) tea.Cmd {
	w.sel.OpenDialog(side)
	return w.dialog.Reset(side, w.sel.Pair().Get(side))
}

// Update handles key input and dialog results
func (w *SwapWidget) Update(msg tea.Msg) (*SwapWidget, tea.Cmd) {
	switch msg := msg.(type) {
	case TokenChosenMsg:
		if err := w.sel.ChooseFromDialog(msg.Side, msg.Token); err != nil {
			w.logger.Warn("Token pick rejected", zap.String("symbol", msg.Token.Symbol), zap.Error(err))
		}
		return w, nil

	case TokenDialogClosedMsg:
		w.sel.CloseDialog(msg.Side)
		return w, nil

	case tea.KeyMsg:
		if _, open := w.activeDialog(); open {
			var cmd tea.Cmd
			w.dialog, cmd = w.dialog.Update(msg)
			return w, cmd
		}
		return w.handleKey(msg)
	}

	if _, open := w.activeDialog(); open {
		var cmd tea.Cmd
		w.dialog, cmd = w.dialog.Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w *SwapWidget) handleKey(msg tea.KeyMsg) (*SwapWidget, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.PickSell):
		return w, w.openDialog(swap.Sell)
	case key.Matches(msg, w.keys.PickBuy):
		return w, w.openDialog(swap.Buy)
	case key.Matches(msg, w.keys.Flip):
		w.sel.SwapDirection()
	case key.Matches(msg, w.keys.NextTab):
		w.sel.NextTab()
	case key.Matches(msg, w.keys.ToggleMode):
		w.sel.ToggleMode()
	case msg.Type == tea.KeyBackspace:
		if amount := w.sel.Amount(); amount != "" {
			w.sel.SetAmount(amount[:len(amount)-1])
		}
	case msg.Type == tea.KeyRunes:
		w.typeAmount(msg.Runes)
	}
	return w, nil
}

// typeAmount appends the digits and the first decimal point of runes.
// Other runes of a paste are dropped.
func (w *SwapWidget) typeAmount(runes []rune) {
	amount := w.sel.Amount()
	for _, r := range runes {
		if len(amount) >= maxAmountLen {
			break
		}
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && !strings.Contains(amount, "."):
		default:
			continue
		}
		amount += string(r)
	}
	w.sel.SetAmount(amount)
}

// View renders the widget, or the open token dialog over it
func (w *SwapWidget) View() string {
	if _, open := w.activeDialog(); open {
		return w.dialog.View()
	}

	p := w.palette
	muted := lipgloss.NewStyle().Foreground(p.TextMuted)
	label := lipgloss.NewStyle().Foreground(p.TextSecondary).Bold(true)
	pair := w.sel.Pair()

	tabs := make([]string, 0, len(swap.Tabs))
	for _, t := range swap.Tabs {
		if t == w.sel.Tab() {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(p.Primary).Bold(true).Underline(true).Render(t.String()))
		} else {
			tabs = append(tabs, muted.Render(t.String()))
		}
	}

	modeColor := p.Accent
	if w.sel.Mode() == swap.ModeManual {
		modeColor = p.TextSecondary
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		strings.Join(tabs, "  "), "    ", p.Badge(w.sel.Mode().String(), modeColor))

	amount := w.sel.Amount()
	if amount == "" {
		amount = "0.00"
	}

	selling := lipgloss.JoinVertical(lipgloss.Left,
		label.Render(swap.Sell.String())+"   "+muted.Render("HALF  MAX"),
		lipgloss.JoinHorizontal(lipgloss.Center,
			w.tokenChip(pair.Sell, p.Sell, "s"), "   ",
			lipgloss.NewStyle().Foreground(p.Text).Bold(true).Render(amount)),
	)

	flip := muted.Render("        ⇅ [x]")

	buying := lipgloss.JoinVertical(lipgloss.Left,
		label.Render(swap.Buy.String()),
		lipgloss.JoinHorizontal(lipgloss.Center,
			w.tokenChip(pair.Buy, p.Buy, "b"), "   ",
			muted.Render("0.00")),
	)

	badges := lipgloss.JoinHorizontal(lipgloss.Center,
		p.Badge("OPTIMISED", p.Success), " ", p.Badge("RTSE", p.Info))

	action := p.Button(w.sel.CallToAction(), p.TextMuted)

	body := lipgloss.JoinVertical(lipgloss.Left,
		header, "", selling, flip, buying, "", badges, action)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Secondary).
		Padding(1, 2).
		Render(body)
}

func (w *SwapWidget) tokenChip(t token.Token, color lipgloss.Color, hint string) string {
	chip := lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(t.Badge() + " " + t.Symbol + " ▾")
	return chip + lipgloss.NewStyle().Foreground(w.palette.TextMuted).Render(" ["+hint+"]")
}
