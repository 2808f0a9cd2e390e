// internal/swap/selector.go
package swap

import (
	"errors"
	"fmt"

	"github.com/rovshanmuradov/solcrusher/internal/token"
)

var (
	// ErrTooFewTokens is returned when the reference list cannot fill a pair.
	ErrTooFewTokens = errors.New("at least two tokens are required")
	// ErrUnknownToken is returned for a token outside the reference list.
	ErrUnknownToken = errors.New("token is not in the reference list")
)

// CallToAction is the label of the swap action control.
const CallToAction = "Enter an amount"

// Side selects one slot of a trading pair.
type Side int

const (
	Sell Side = iota
	Buy
)

// String returns the label used in the widget.
func (s Side) String() string {
	switch s {
	case Sell:
		return "Selling"
	case Buy:
		return "Buying"
	default:
		return "unknown"
	}
}

// Pair is an ordered (sell, buy) token selection. Both slots may hold the
// same token.
type Pair struct {
	Sell token.Token
	Buy  token.Token
}

// Get returns the token in the given slot.
func (p Pair) Get(side Side) token.Token {
	if side == Buy {
		return p.Buy
	}
	return p.Sell
}

// Selector holds the widget's local state: the pair, one dialog flag per
// side and the display-only tab, mode and amount.
type Selector struct {
	tokens  token.List
	pair    Pair
	dialogs [2]bool
	tab     Tab
	mode    Mode
	amount  string
}

// NewSelector starts with the first two reference tokens.
func NewSelector(tokens token.List) (*Selector, error) {
	if tokens.Len() < 2 {
		return nil, ErrTooFewTokens
	}
	return &Selector{
		tokens: tokens,
		pair:   Pair{Sell: tokens.At(0), Buy: tokens.At(1)},
		tab:    TabInstant,
		mode:   ModeUltra,
	}, nil
}

// Tokens returns the reference list the selector draws from.
func (s *Selector) Tokens() token.List {
	return s.tokens
}

// Pair returns the current selection.
func (s *Selector) Pair() Pair {
	return s.pair
}

// Select replaces one slot. The other slot is not consulted.
func (s *Selector) Select(side Side, t token.Token) error {
	if !s.tokens.Contains(t) {
		return fmt.Errorf("%w: %s", ErrUnknownToken, t.Symbol)
	}
	switch side {
	case Sell:
		s.pair.Sell = t
	case Buy:
		s.pair.Buy = t
	default:
		return fmt.Errorf("invalid side %d", side)
	}
	return nil
}

// SelectSell replaces the sell slot.
func (s *Selector) SelectSell(t token.Token) error {
	return s.Select(Sell, t)
}

// SelectBuy replaces the buy slot.
func (s *Selector) SelectBuy(t token.Token) error {
	return s.Select(Buy, t)
}

// SwapDirection exchanges the two slots.
func (s *Selector) SwapDirection() {
	s.pair = Pair{Sell: s.pair.Buy, Buy: s.pair.Sell}
}

// OpenDialog marks the picker for side as open. The other side's flag is
// left as is.
func (s *Selector) OpenDialog(side Side) {
	if side == Sell || side == Buy {
		s.dialogs[side] = true
	}
}

// CloseDialog marks the picker for side as closed.
func (s *Selector) CloseDialog(side Side) {
	if side == Sell || side == Buy {
		s.dialogs[side] = false
	}
}

// DialogOpen reports whether the picker for side is open.
func (s *Selector) DialogOpen(side Side) bool {
	if side == Sell || side == Buy {
		return s.dialogs[side]
	}
	return false
}

// ChooseFromDialog selects t for side and closes that side's picker. On an
// invalid token the dialog stays open.
func (s *Selector) ChooseFromDialog(side Side, t token.Token) error {
	if err := s.Select(side, t); err != nil {
		return err
	}
	s.CloseDialog(side)
	return nil
}

// Amount returns the decorative amount text.
func (s *Selector) Amount() string {
	return s.amount
}

// SetAmount stores the decorative amount text. It is never quoted.
func (s *Selector) SetAmount(amount string) {
	s.amount = amount
}

// CallToAction returns the static label of the action control.
func (s *Selector) CallToAction() string {
	return CallToAction
}
