// internal/token/reference.go
package token

import "github.com/gagliardetto/solana-go"

// reference is built once at package init and never mutated.
var reference = NewList(
	Token{
		Symbol:   "USDC",
		Name:     "USD Coin",
		Mint:     solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"),
		Decimals: 6,
	},
	Token{
		Symbol:   "SOL",
		Name:     "Wrapped SOL",
		Icon:     "◎",
		Mint:     solana.SolMint,
		Decimals: 9,
	},
	Token{
		Symbol:   "USDT",
		Name:     "Tether USD",
		Mint:     solana.MustPublicKeyFromBase58("Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"),
		Decimals: 6,
	},
	Token{
		Symbol:   "BONK",
		Name:     "Bonk",
		Mint:     solana.MustPublicKeyFromBase58("DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"),
		Decimals: 5,
	},
	Token{
		Symbol:   "JUP",
		Name:     "Jupiter",
		Mint:     solana.MustPublicKeyFromBase58("JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN"),
		Decimals: 6,
	},
	Token{
		Symbol:   "RAY",
		Name:     "Raydium",
		Mint:     solana.MustPublicKeyFromBase58("4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R"),
		Decimals: 6,
	},
)

// Default returns the reference token list.
func Default() List {
	return reference
}
