package component

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/solcrusher/internal/swap"
	"github.com/rovshanmuradov/solcrusher/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestWidget(t *testing.T) *SwapWidget {
	t.Helper()
	w, err := NewSwapWidget(token.Default(), zap.NewNop())
	require.NoError(t, err)
	return w
}

// feed runs msg through the widget and feeds back whatever the returned
// command produces, skipping the cursor blink commands of focused inputs
func feed(w *SwapWidget, msg tea.Msg) {
	_, cmd := w.Update(msg)
	if _, ok := msg.(tea.KeyMsg); !ok || cmd == nil {
		return
	}
	k := msg.(tea.KeyMsg)
	if k.Type == tea.KeyEnter || k.Type == tea.KeyEsc {
		w.Update(cmd())
	}
}

func TestSwapWidgetDefaults(t *testing.T) {
	w := newTestWidget(t)
	tokens := token.Default()

	pair := w.Selector().Pair()
	assert.Equal(t, tokens.At(0), pair.Sell)
	assert.Equal(t, tokens.At(1), pair.Buy)

	view := w.View()
	for _, want := range []string{"Selling", "Buying", "USDC", "SOL", "ULTRA", "OPTIMISED", "RTSE", "Enter an amount", "HALF", "MAX", "Instant"} {
		assert.Contains(t, view, want)
	}
}

func TestSwapWidgetSellDialogPick(t *testing.T) {
	w := newTestWidget(t)
	tokens := token.Default()
	buyBefore := w.Selector().Pair().Buy

	w.Update(runes("s"))
	require.True(t, w.Selector().DialogOpen(swap.Sell))
	require.True(t, w.HasOverlay())
	assert.Equal(t, 0, w.Dialog().Cursor(), "cursor starts on the current token")
	assert.Contains(t, w.View(), "Select a token")

	w.Update(downKey)
	w.Update(downKey)
	feed(w, enterKey)

	pair := w.Selector().Pair()
	assert.Equal(t, tokens.At(2), pair.Sell)
	assert.Equal(t, buyBefore, pair.Buy)
	assert.False(t, w.Selector().DialogOpen(swap.Sell))
	assert.False(t, w.HasOverlay())
}

func TestSwapWidgetDialogEscKeepsPair(t *testing.T) {
	w := newTestWidget(t)
	before := w.Selector().Pair()

	w.Update(runes("b"))
	require.True(t, w.Selector().DialogOpen(swap.Buy))
	w.Update(downKey)
	feed(w, escKey)

	assert.False(t, w.Selector().DialogOpen(swap.Buy))
	assert.Equal(t, before, w.Selector().Pair())
}

func TestSwapWidgetDialogFilters(t *testing.T) {
	w := newTestWidget(t)
	update := func(m tea.Msg) { w.Update(m) }

	w.Update(runes("b"))
	// 's' and 'x' are shortcuts outside the dialog but text inside it
	typeText(t, update, "jup")
	require.Len(t, w.Dialog().Results(), 1)
	feed(w, enterKey)

	assert.Equal(t, "JUP", w.Selector().Pair().Buy.Symbol)
	assert.Equal(t, "USDC", w.Selector().Pair().Sell.Symbol)
}

func TestSwapWidgetDialogNoMatches(t *testing.T) {
	w := newTestWidget(t)
	update := func(m tea.Msg) { w.Update(m) }

	w.Update(runes("s"))
	typeText(t, update, "zzzzzz")
	assert.Empty(t, w.Dialog().Results())
	assert.Contains(t, w.View(), "No tokens found")

	_, cmd := w.Update(enterKey)
	assert.Nil(t, cmd)
	assert.True(t, w.HasOverlay())
}

func TestSwapWidgetShortcuts(t *testing.T) {
	w := newTestWidget(t)
	before := w.Selector().Pair()

	w.Update(runes("x"))
	assert.Equal(t, before.Sell, w.Selector().Pair().Buy)
	w.Update(runes("x"))
	assert.Equal(t, before, w.Selector().Pair())

	w.Update(tabKey)
	assert.Equal(t, swap.TabTrigger, w.Selector().Tab())

	w.Update(runes("u"))
	assert.Equal(t, swap.ModeManual, w.Selector().Mode())
	assert.Contains(t, w.View(), "MANUAL")
}

func TestSwapWidgetAmountIsDecorative(t *testing.T) {
	w := newTestWidget(t)
	update := func(m tea.Msg) { w.Update(m) }

	typeText(t, update, "1.5.2q")
	assert.Equal(t, "1.52", w.Selector().Amount())

	w.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "1.5", w.Selector().Amount())
	assert.Equal(t, swap.CallToAction, w.Selector().CallToAction())
	assert.Contains(t, w.View(), "1.5")
}

func TestSwapWidgetAmountPaste(t *testing.T) {
	tests := []struct {
		paste string
		want  string
	}{
		{"1.5x", "1.5"},
		{"1.2.", "1.2"},
		{"x42", "42"},
		{"1,000.25", "1000.25"},
		{strings.Repeat("7", maxAmountLen+6), strings.Repeat("7", maxAmountLen)},
	}
	for _, tt := range tests {
		t.Run(tt.paste, func(t *testing.T) {
			w := newTestWidget(t)
			w.Update(runes(tt.paste))
			assert.Equal(t, tt.want, w.Selector().Amount())
		})
	}
}

func TestSwapWidgetRejectsForeignToken(t *testing.T) {
	w := newTestWidget(t)
	before := w.Selector().Pair()

	w.Update(runes("s"))
	w.Update(TokenChosenMsg{Side: swap.Sell, Token: token.Token{Symbol: "FAKE"}})

	assert.Equal(t, before, w.Selector().Pair())
	assert.True(t, w.Selector().DialogOpen(swap.Sell))
}
