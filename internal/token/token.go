// internal/token/token.go
package token

import (
	"errors"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/gagliardetto/solana-go"
)

// ErrNotFound is returned by lookups that miss the reference list.
var ErrNotFound = errors.New("token not found")

const (
	// maxSearchDistance bounds the edit distance accepted as a fuzzy symbol match.
	maxSearchDistance = 2
	// minFuzzyQuery is the shortest query that is compared by edit distance.
	minFuzzyQuery = 3
)

// Token describes a tradable SPL token.
type Token struct {
	Symbol   string
	Name     string
	Icon     string
	Mint     solana.PublicKey
	Decimals uint8
}

// Equals reports whether two tokens refer to the same mint.
func (t Token) Equals(other Token) bool {
	return t.Mint.Equals(other.Mint)
}

// Badge returns the single-letter glyph drawn next to a token symbol.
func (t Token) Badge() string {
	if t.Icon != "" {
		return t.Icon
	}
	for _, r := range t.Symbol {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// List is an immutable ordered sequence of tokens.
type List struct {
	items []Token
}

// NewList copies the given tokens into a new List.
func NewList(tokens ...Token) List {
	items := make([]Token, len(tokens))
	copy(items, tokens)
	return List{items: items}
}

// Len returns the number of tokens in the list.
func (l List) Len() int {
	return len(l.items)
}

// At returns the token at index i. It panics on an out-of-range index,
// same as a slice access.
func (l List) At(i int) Token {
	return l.items[i]
}

// All returns a copy of the tokens.
func (l List) All() []Token {
	out := make([]Token, len(l.items))
	copy(out, l.items)
	return out
}

// Index returns the position of the token with the given symbol, or -1.
func (l List) Index(symbol string) int {
	for i, t := range l.items {
		if strings.EqualFold(t.Symbol, symbol) {
			return i
		}
	}
	return -1
}

// Contains reports whether t is a member of the list.
func (l List) Contains(t Token) bool {
	for _, item := range l.items {
		if item.Equals(t) {
			return true
		}
	}
	return false
}

// BySymbol looks a token up by its case-insensitive symbol.
func (l List) BySymbol(symbol string) (Token, error) {
	if i := l.Index(symbol); i >= 0 {
		return l.items[i], nil
	}
	return Token{}, ErrNotFound
}

// ByMint looks a token up by its mint address.
func (l List) ByMint(mint solana.PublicKey) (Token, error) {
	for _, t := range l.items {
		if t.Mint.Equals(mint) {
			return t, nil
		}
	}
	return Token{}, ErrNotFound
}

type scoredToken struct {
	token Token
	score int
	index int
}

// Search matches a free-form query against the list. A query that parses as
// a base58 public key is matched against mints; anything else is ranked by
// exact symbol, symbol prefix, substring and finally edit distance.
func (l List) Search(query string) []Token {
	q := strings.TrimSpace(query)
	if q == "" {
		return l.All()
	}

	if mint, err := solana.PublicKeyFromBase58(q); err == nil {
		if t, err := l.ByMint(mint); err == nil {
			return []Token{t}
		}
		return nil
	}

	upper := strings.ToUpper(q)
	var scored []scoredToken
	for i, t := range l.items {
		symbol := strings.ToUpper(t.Symbol)
		name := strings.ToUpper(t.Name)

		score := -1
		switch {
		case symbol == upper:
			score = 0
		case strings.HasPrefix(symbol, upper):
			score = 1
		case strings.Contains(symbol, upper) || strings.Contains(name, upper):
			score = 2
		case len(upper) >= minFuzzyQuery:
			if d := levenshtein.ComputeDistance(symbol, upper); d <= maxSearchDistance {
				score = 2 + d
			}
		}
		if score >= 0 {
			scored = append(scored, scoredToken{token: t, score: score, index: i})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score < scored[j].score
		}
		return scored[i].index < scored[j].index
	})

	out := make([]Token, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.token)
	}
	return out
}
