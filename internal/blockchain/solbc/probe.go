// internal/blockchain/solbc/probe.go
package solbc

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rovshanmuradov/solcrusher/internal/blockchain"
	"github.com/rovshanmuradov/solcrusher/internal/cluster"
)

const maxConcurrentProbes = 4

// Status is the reachability of one cluster's RPC endpoint.
type Status struct {
	Cluster   cluster.Cluster
	Connected bool
	Latency   time.Duration
	Err       error
	CheckedAt time.Time
}

// ProbeAll pings every cluster concurrently and returns statuses keyed by
// cluster name. A failed ping is recorded in its Status, never returned.
func ProbeAll(ctx context.Context, clusters []cluster.Cluster, dial blockchain.Dialer, timeout time.Duration) map[string]Status {
	results := make([]Status, len(clusters))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentProbes)

	for i, c := range clusters {
		g.Go(func() error {
			pctx, cancel := context.WithTimeout(gctx, timeout)
			defer cancel()

			client := dial(c.Endpoint)
			defer client.Close()

			latency, err := client.Ping(pctx)
			results[i] = Status{
				Cluster:   c,
				Connected: err == nil,
				Latency:   latency,
				Err:       err,
				CheckedAt: time.Now(),
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]Status, len(results))
	for _, s := range results {
		out[s.Cluster.Name] = s
	}
	return out
}
