package swap

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovshanmuradov/solcrusher/internal/token"
)

func newTestSelector(t *testing.T) *Selector {
	t.Helper()
	s, err := NewSelector(token.Default())
	require.NoError(t, err)
	return s
}

func TestNewSelectorDefaults(t *testing.T) {
	s := newTestSelector(t)
	list := token.Default()

	assert.Equal(t, Pair{Sell: list.At(0), Buy: list.At(1)}, s.Pair())
	assert.False(t, s.DialogOpen(Sell))
	assert.False(t, s.DialogOpen(Buy))
	assert.Equal(t, TabInstant, s.Tab())
	assert.Equal(t, ModeUltra, s.Mode())
	assert.Equal(t, "Enter an amount", s.CallToAction())
}

func TestNewSelectorTooFewTokens(t *testing.T) {
	_, err := NewSelector(token.NewList(token.Default().At(0)))
	assert.ErrorIs(t, err, ErrTooFewTokens)
}

func TestSelectEveryCombination(t *testing.T) {
	list := token.Default()
	for i := 0; i < list.Len(); i++ {
		for j := 0; j < list.Len(); j++ {
			s := newTestSelector(t)
			require.NoError(t, s.SelectSell(list.At(i)))
			require.NoError(t, s.SelectBuy(list.At(j)))
			assert.Equal(t, Pair{Sell: list.At(i), Buy: list.At(j)}, s.Pair(), "i=%d j=%d", i, j)
		}
	}
}

func TestSelectUnknownToken(t *testing.T) {
	s := newTestSelector(t)
	before := s.Pair()

	err := s.SelectSell(token.Token{Symbol: "FAKE", Mint: solana.SystemProgramID})
	assert.ErrorIs(t, err, ErrUnknownToken)
	assert.Equal(t, before, s.Pair())

	assert.Error(t, s.Select(Side(7), token.Default().At(0)))
}

func TestSwapDirectionIsInvolution(t *testing.T) {
	list := token.Default()
	for i := 0; i < list.Len(); i++ {
		for j := 0; j < list.Len(); j++ {
			s := newTestSelector(t)
			require.NoError(t, s.SelectSell(list.At(i)))
			require.NoError(t, s.SelectBuy(list.At(j)))
			original := s.Pair()

			s.SwapDirection()
			assert.Equal(t, Pair{Sell: original.Buy, Buy: original.Sell}, s.Pair())

			s.SwapDirection()
			assert.Equal(t, original, s.Pair())
		}
	}
}

func TestDialogFlagsAreIdempotentAndIndependent(t *testing.T) {
	s := newTestSelector(t)

	s.OpenDialog(Sell)
	s.OpenDialog(Sell)
	assert.True(t, s.DialogOpen(Sell))
	assert.False(t, s.DialogOpen(Buy))

	s.OpenDialog(Buy)
	assert.True(t, s.DialogOpen(Sell))
	assert.True(t, s.DialogOpen(Buy))

	s.CloseDialog(Sell)
	s.CloseDialog(Sell)
	assert.False(t, s.DialogOpen(Sell))
	assert.True(t, s.DialogOpen(Buy))

	s.OpenDialog(Side(-1))
	assert.False(t, s.DialogOpen(Side(-1)))
}

func TestSellDialogScenario(t *testing.T) {
	s := newTestSelector(t)
	list := token.Default()
	buyBefore := s.Pair().Buy

	s.OpenDialog(Sell)
	require.NoError(t, s.ChooseFromDialog(Sell, list.At(2)))
	s.CloseDialog(Sell)

	assert.Equal(t, list.At(2), s.Pair().Sell)
	assert.Equal(t, buyBefore, s.Pair().Buy)
	assert.False(t, s.DialogOpen(Sell))
}

func TestTabsAndMode(t *testing.T) {
	s := newTestSelector(t)

	assert.Equal(t, TabTrigger, s.NextTab())
	assert.Equal(t, TabRecurring, s.NextTab())
	assert.Equal(t, TabInstant, s.NextTab())

	assert.Equal(t, ModeManual, s.ToggleMode())
	assert.Equal(t, ModeUltra, s.ToggleMode())
	assert.Equal(t, "ULTRA", s.Mode().String())

	s.SetAmount("1.5")
	assert.Equal(t, "1.5", s.Amount())
	assert.Equal(t, CallToAction, s.CallToAction())
}
