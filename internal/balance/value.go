// internal/balance/value.go
package balance

import (
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of decimals shown for a SOL balance.
const DisplayPlaces = 2

var lamportsPerSOL = decimal.NewFromBigInt(new(big.Int).SetUint64(solana.LAMPORTS_PER_SOL), 0)

// Value is a SOL amount that may be unknown. The zero Value is unknown.
type Value struct {
	sol   decimal.Decimal
	known bool
}

// Unknown returns a Value with no amount.
func Unknown() Value {
	return Value{}
}

// FromLamports normalizes a raw lamport balance into SOL.
func FromLamports(lamports uint64) Value {
	raw := decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), 0)
	return Value{sol: raw.Div(lamportsPerSOL), known: true}
}

// Known reports whether the value holds an amount.
func (v Value) Known() bool {
	return v.known
}

// Decimal returns the exact SOL amount; zero when unknown.
func (v Value) Decimal() decimal.Decimal {
	return v.sol
}

// Rounded returns the amount rounded to DisplayPlaces, and false when unknown.
func (v Value) Rounded() (float64, bool) {
	if !v.known {
		return 0, false
	}
	return v.sol.Round(DisplayPlaces).InexactFloat64(), true
}

// Amount formats the bare amount, or "—" when unknown.
func (v Value) Amount() string {
	if !v.known {
		return "—"
	}
	return v.sol.StringFixed(DisplayPlaces)
}

// Display formats the value for the header, e.g. "12.35 SOL".
func (v Value) Display() string {
	return v.Amount() + " SOL"
}

// String implements fmt.Stringer.
func (v Value) String() string {
	return v.Display()
}
