// internal/blockchain/solbc/client.go
package solbc

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/solcrusher/internal/blockchain"
)

const (
	DefaultAirdropTries      = 4
	DefaultAirdropInterval   = 500 * time.Millisecond
	DefaultAirdropMaxElapsed = 15 * time.Second
)

// Client – тонкий адаптер для взаимодействия с блокчейном Solana через solana-go.
type Client struct {
	rpc      *rpc.Client
	endpoint string
	logger   *zap.Logger

	airdropTries    uint
	airdropInterval time.Duration
	airdropElapsed  time.Duration
}

// Option настраивает Client.
type Option func(*Client)

// WithAirdropRetry задаёт политику повторов для RequestAirdrop.
func WithAirdropRetry(tries uint, interval, maxElapsed time.Duration) Option {
	return func(c *Client) {
		c.airdropTries = tries
		c.airdropInterval = interval
		c.airdropElapsed = maxElapsed
	}
}

// NewClient создаёт новый клиент, принимая RPC URL и логгер через dependency injection.
func NewClient(endpoint string, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		rpc:             rpc.New(endpoint),
		endpoint:        endpoint,
		logger:          logger.Named("solbc-client"),
		airdropTries:    DefaultAirdropTries,
		airdropInterval: DefaultAirdropInterval,
		airdropElapsed:  DefaultAirdropMaxElapsed,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dialer возвращает blockchain.Dialer, создающий клиентов с общим логгером.
func Dialer(logger *zap.Logger, opts ...Option) blockchain.Dialer {
	return func(endpoint string) blockchain.Client {
		return NewClient(endpoint, logger, opts...)
	}
}

// Endpoint возвращает URL узла.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// GetBalance получает баланс аккаунта в лампортах.
func (c *Client) GetBalance(ctx context.Context, pubkey solana.PublicKey, commitment rpc.CommitmentType) (uint64, error) {
	result, err := c.rpc.GetBalance(ctx, pubkey, commitment)
	if err != nil {
		c.logger.Debug("GetBalance error",
			zap.String("pubkey", pubkey.String()),
			zap.Error(err))
		return 0, NewError(err, c.endpoint, "getBalance")
	}
	return result.Value, nil
}

// RequestAirdrop запрашивает airdrop; ответы с rate limit повторяются с экспоненциальной задержкой.
func (c *Client) RequestAirdrop(ctx context.Context, pubkey solana.PublicKey, lamports uint64) (solana.Signature, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.airdropInterval
	policy.MaxInterval = c.airdropInterval * 10

	notify := func(err error, d time.Duration) {
		c.logger.Info("Airdrop rate limited, retrying",
			zap.Error(err),
			zap.Duration("backoff", d))
	}

	operation := func() (solana.Signature, error) {
		sig, err := c.rpc.RequestAirdrop(ctx, pubkey, lamports, rpc.CommitmentConfirmed)
		if err == nil {
			return sig, nil
		}
		if ctx.Err() != nil || !isRateLimited(err) {
			return solana.Signature{}, backoff.Permanent(err)
		}
		return solana.Signature{}, err
	}

	sig, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(c.airdropTries),
		backoff.WithMaxElapsedTime(c.airdropElapsed),
		backoff.WithNotify(notify))
	if err != nil {
		c.logger.Warn("RequestAirdrop failed",
			zap.String("pubkey", pubkey.String()),
			zap.Uint64("lamports", lamports),
			zap.Error(err))
		return solana.Signature{}, NewError(err, c.endpoint, "requestAirdrop")
	}

	c.logger.Info("Airdrop requested",
		zap.String("signature", sig.String()),
		zap.Uint64("lamports", lamports))
	return sig, nil
}

// Ping запрашивает версию узла как самый лёгкий запрос и меряет задержку.
func (c *Client) Ping(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	version, err := c.rpc.GetVersion(ctx)
	if err != nil {
		return 0, NewError(err, c.endpoint, "getVersion")
	}
	latency := time.Since(start)
	c.logger.Debug("RPC reachable",
		zap.String("endpoint", c.endpoint),
		zap.String("solana_core", version.SolanaCore),
		zap.Duration("latency", latency))
	return latency, nil
}

// Close освобождает HTTP соединения клиента.
func (c *Client) Close() error {
	return c.rpc.Close()
}

// Гарантируем, что Client реализует интерфейс blockchain.Client.
var _ blockchain.Client = (*Client)(nil)
