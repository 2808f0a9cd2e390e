package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsWithOverrides(t *testing.T) {
	clusters := Defaults(map[string]string{"DevNet": "https://devnet.example.com"})
	require.Len(t, clusters, 4)

	var devnet Cluster
	for _, c := range clusters {
		if c.Network == Devnet {
			devnet = c
		}
	}
	assert.Equal(t, "https://devnet.example.com", devnet.Endpoint)
	assert.True(t, devnet.IsDevelopment())
}

func TestOnlyDevnetIsDevelopment(t *testing.T) {
	for _, c := range Defaults(nil) {
		assert.Equal(t, c.Network == Devnet, c.IsDevelopment(), c.Name)
	}
}

func TestSelectorCycle(t *testing.T) {
	s, err := NewSelector(Defaults(nil), "devnet")
	require.NoError(t, err)
	assert.Equal(t, Devnet, s.Active().Network)

	assert.Equal(t, Localnet, s.Next().Network)
	assert.Equal(t, Mainnet, s.Next().Network)
	assert.Equal(t, Localnet, s.Prev().Network)

	require.NoError(t, s.Select("mainnet-beta"))
	assert.Equal(t, Mainnet, s.Active().Network)
}

func TestSelectorUnknown(t *testing.T) {
	_, err := NewSelector(Defaults(nil), "moonnet")
	assert.ErrorIs(t, err, ErrUnknownCluster)

	_, err = NewSelector(nil, "")
	assert.Error(t, err)
}
