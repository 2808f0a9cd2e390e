// internal/cluster/cluster.go
package cluster

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gagliardetto/solana-go/rpc"
)

// ErrUnknownCluster is returned when a cluster name is not configured.
var ErrUnknownCluster = errors.New("unknown cluster")

// Network identifies a Solana network environment.
type Network int

const (
	Mainnet Network = iota
	Testnet
	Devnet
	Localnet
)

// String returns the canonical network name
func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet-beta"
	case Testnet:
		return "testnet"
	case Devnet:
		return "devnet"
	case Localnet:
		return "localnet"
	default:
		return "unknown"
	}
}

// Cluster is a named network with the RPC endpoint used to reach it.
type Cluster struct {
	Name     string
	Network  Network
	Endpoint string
}

// IsDevelopment reports whether the cluster hands out airdrops.
func (c Cluster) IsDevelopment() bool {
	return c.Network == Devnet
}

// Defaults returns the public clusters known to solana-go, with endpoint
// overrides applied by cluster name.
func Defaults(overrides map[string]string) []Cluster {
	clusters := []Cluster{
		{Name: rpc.MainNetBeta.Name, Network: Mainnet, Endpoint: rpc.MainNetBeta.RPC},
		{Name: rpc.TestNet.Name, Network: Testnet, Endpoint: rpc.TestNet.RPC},
		{Name: rpc.DevNet.Name, Network: Devnet, Endpoint: rpc.DevNet.RPC},
		{Name: rpc.LocalNet.Name, Network: Localnet, Endpoint: rpc.LocalNet.RPC},
	}
	for i := range clusters {
		if url, ok := lookupFold(overrides, clusters[i].Name); ok && url != "" {
			clusters[i].Endpoint = url
		}
	}
	return clusters
}

func lookupFold(m map[string]string, key string) (string, bool) {
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// Selector holds the active cluster. It is safe for concurrent use.
type Selector struct {
	mu       sync.RWMutex
	clusters []Cluster
	active   int
}

// NewSelector creates a selector over clusters with the named one active.
func NewSelector(clusters []Cluster, active string) (*Selector, error) {
	if len(clusters) == 0 {
		return nil, errors.New("no clusters configured")
	}
	s := &Selector{clusters: append([]Cluster(nil), clusters...)}
	if active != "" {
		if err := s.Select(active); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Active returns the current cluster.
func (s *Selector) Active() Cluster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clusters[s.active]
}

// All returns a copy of every configured cluster.
func (s *Selector) All() []Cluster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Cluster(nil), s.clusters...)
}

// Select activates the cluster with the given name.
func (s *Selector) Select(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.clusters {
		if strings.EqualFold(c.Name, name) || strings.EqualFold(c.Network.String(), name) {
			s.active = i
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownCluster, name)
}

// Next activates the following cluster, wrapping around.
func (s *Selector) Next() Cluster {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = (s.active + 1) % len(s.clusters)
	return s.clusters[s.active]
}

// Prev activates the preceding cluster, wrapping around.
func (s *Selector) Prev() Cluster {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = (s.active - 1 + len(s.clusters)) % len(s.clusters)
	return s.clusters[s.active]
}
