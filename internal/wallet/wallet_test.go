package wallet

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionConnectDisconnect(t *testing.T) {
	s := NewSession()
	assert.False(t, s.Connected())
	assert.Nil(t, s.AddressPtr())
	assert.Equal(t, "", s.String())

	require.NoError(t, s.Connect(solana.SystemProgramID.String()))
	pk, ok := s.Address()
	require.True(t, ok)
	assert.True(t, pk.Equals(solana.SystemProgramID))
	assert.False(t, s.Verified())

	s.Disconnect()
	assert.False(t, s.Connected())
}

func TestSessionConnectInvalid(t *testing.T) {
	s := NewSession()
	err := s.Connect("not-a-key")
	assert.ErrorIs(t, err, ErrInvalidAddress)
	assert.False(t, s.Connected())
}

func TestSessionConnectKeypair(t *testing.T) {
	priv, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	ints := make([]int, len(priv))
	for i, b := range priv {
		ints[i] = int(b)
	}
	data, err := json.Marshal(ints)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "id.json")
	require.NoError(t, os.WriteFile(path, data, 0600))

	s := NewSession()
	require.NoError(t, s.ConnectKeypair(path))
	pk, ok := s.Address()
	require.True(t, ok)
	assert.True(t, pk.Equals(priv.PublicKey()))

	assert.Error(t, s.ConnectKeypair(filepath.Join(t.TempDir(), "missing.json")))
}

func TestAddressPtrIsCopy(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Connect(solana.SystemProgramID.String()))

	p := s.AddressPtr()
	*p = solana.TokenProgramID

	pk, _ := s.Address()
	assert.True(t, pk.Equals(solana.SystemProgramID))
}

func TestSessionConcurrentAccess(t *testing.T) {
	s := NewSession()
	var wg sync.WaitGroup
	wg.Add(20)
	for i := 0; i < 20; i++ {
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = s.Connect(solana.SystemProgramID.String())
			} else {
				s.Disconnect()
			}
			_ = s.Connected()
		}(i)
	}
	wg.Wait()
}

func TestEllipsify(t *testing.T) {
	assert.Equal(t, "1111..1111", Ellipsify("11111111111111111111111111111111", 4))
	assert.Equal(t, "abcd", Ellipsify("abcd", 2))
	assert.Equal(t, "abcdef", Ellipsify("abcdef", 0))
}
