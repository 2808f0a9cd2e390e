// internal/blockchain/types.go
package blockchain

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// BalanceReader читает баланс аккаунта в лампортах.
type BalanceReader interface {
	GetBalance(ctx context.Context, pubkey solana.PublicKey, commitment rpc.CommitmentType) (uint64, error)
}

// Airdropper запрашивает тестовые SOL у development-кластера.
type Airdropper interface {
	RequestAirdrop(ctx context.Context, pubkey solana.PublicKey, lamports uint64) (solana.Signature, error)
}

// Prober проверяет доступность RPC узла и возвращает задержку ответа.
type Prober interface {
	Ping(ctx context.Context) (time.Duration, error)
}

// Client объединяет все операции, которые нужны интерфейсу.
type Client interface {
	BalanceReader
	Airdropper
	Prober
	Endpoint() string
	Close() error
}

// Dialer создаёт клиента для заданного RPC endpoint.
type Dialer func(endpoint string) Client
