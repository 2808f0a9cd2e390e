// internal/balance/poller.go
package balance

import (
	"context"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/solcrusher/internal/blockchain"
)

// DefaultInterval is the wall-clock period between balance reads.
const DefaultInterval = 30 * time.Second

// Sink receives every accepted balance snapshot. It is called with the
// poller's lock held and must not block or call back into the Poller.
type Sink func(Update)

// Option configures a Poller.
type Option func(*Poller)

// WithInterval overrides DefaultInterval.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithCommitment sets the commitment level used for reads.
func WithCommitment(c rpc.CommitmentType) Option {
	return func(p *Poller) {
		p.commitment = c
	}
}

// Poller keeps a balance approximately fresh for one watched address.
// Reads are fire-and-forget: a tick never waits for the previous read, and
// the Tracker discards results that arrive out of order.
type Poller struct {
	mu         sync.Mutex
	tracker    *Tracker
	sink       Sink
	logger     *zap.Logger
	interval   time.Duration
	commitment rpc.CommitmentType

	ctx     context.Context
	cancel  context.CancelFunc
	reader  blockchain.BalanceReader
	address solana.PublicKey
}

// NewPoller creates an idle poller.
func NewPoller(sink Sink, logger *zap.Logger, opts ...Option) *Poller {
	if sink == nil {
		sink = func(Update) {}
	}
	p := &Poller{
		tracker:    NewTracker(),
		sink:       sink,
		logger:     logger.Named("balance-poller"),
		interval:   DefaultInterval,
		commitment: rpc.CommitmentConfirmed,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Watch restarts the poll cycle for address using reader. Any running cycle
// is canceled and the balance is reset to unknown. A nil address or reader
// leaves the poller idle.
func (p *Poller) Watch(ctx context.Context, reader blockchain.BalanceReader, address *solana.PublicKey) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelLocked()
	p.tracker.Reset(address)
	p.sink(p.tracker.Snapshot())

	if address == nil || reader == nil {
		return
	}

	pctx, cancel := context.WithCancel(ctx)
	p.ctx = pctx
	p.cancel = cancel
	p.reader = reader
	p.address = *address

	p.logger.Debug("Balance polling started",
		zap.String("address", p.address.String()),
		zap.Duration("interval", p.interval))

	go p.loop(pctx, reader, p.address)
}

// Refresh issues one extra read now. It does nothing while idle.
func (p *Poller) Refresh() {
	p.mu.Lock()
	if p.cancel == nil {
		p.mu.Unlock()
		return
	}
	ctx, reader, address := p.ctx, p.reader, p.address
	p.mu.Unlock()

	p.fire(ctx, reader, address)
}

// Stop cancels the poll cycle. Nothing is published after Stop returns.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelLocked()
	p.tracker.Reset(nil)
}

// Snapshot returns the latest accepted state.
func (p *Poller) Snapshot() Update {
	return p.tracker.Snapshot()
}

// Active reports whether a poll cycle is running.
func (p *Poller) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

func (p *Poller) cancelLocked() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
		p.ctx = nil
		p.reader = nil
	}
}

func (p *Poller) loop(ctx context.Context, reader blockchain.BalanceReader, address solana.PublicKey) {
	p.fire(ctx, reader, address)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fire(ctx, reader, address)
		}
	}
}

func (p *Poller) fire(ctx context.Context, reader blockchain.BalanceReader, address solana.PublicKey) {
	generation, seq := p.tracker.Begin()

	go func() {
		lamports, err := reader.GetBalance(ctx, address, p.commitment)
		if ctx.Err() != nil {
			return
		}

		p.mu.Lock()
		defer p.mu.Unlock()

		if err != nil {
			p.logger.Warn("Error fetching balance",
				zap.String("address", address.String()),
				zap.Uint64("seq", seq),
				zap.Error(err))
		}

		update, ok := p.tracker.Apply(generation, seq, lamports, err)
		if !ok {
			p.logger.Debug("Dropped stale balance result",
				zap.Uint64("generation", generation),
				zap.Uint64("seq", seq))
			return
		}
		p.sink(update)
	}()
}
