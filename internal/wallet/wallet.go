// ==================================
// File: internal/wallet/wallet.go
// ==================================
package wallet

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"
)

// ErrInvalidAddress возвращается, если строку нельзя разобрать как публичный ключ.
var ErrInvalidAddress = errors.New("invalid wallet address")

// Session хранит состояние подключения кошелька: адрес может отсутствовать.
// Приватные ключи в сессии не хранятся.
type Session struct {
	mu       sync.RWMutex
	address  *solana.PublicKey
	verified bool
}

// NewSession создаёт пустую (неподключённую) сессию.
func NewSession() *Session {
	return &Session{}
}

// Connect подключает кошелёк по base58-адресу.
func (s *Session) Connect(address string) error {
	pk, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	s.set(pk)
	return nil
}

// ConnectKeypair читает keypair-файл solana-keygen и сохраняет только публичный ключ.
func (s *Session) ConnectKeypair(path string) error {
	priv, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return fmt.Errorf("failed to read keypair file: %w", err)
	}
	s.set(priv.PublicKey())
	return nil
}

func (s *Session) set(pk solana.PublicKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.address = &pk
	s.verified = false
}

// Disconnect сбрасывает адрес.
func (s *Session) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.address = nil
	s.verified = false
}

// Address возвращает текущий адрес и флаг подключения.
func (s *Session) Address() (solana.PublicKey, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.address == nil {
		return solana.PublicKey{}, false
	}
	return *s.address, true
}

// AddressPtr возвращает копию адреса или nil, если кошелёк не подключён.
func (s *Session) AddressPtr() *solana.PublicKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.address == nil {
		return nil
	}
	pk := *s.address
	return &pk
}

// Connected сообщает, подключён ли кошелёк.
func (s *Session) Connected() bool {
	_, ok := s.Address()
	return ok
}

// Verified is always false until a verification flow exists.
func (s *Session) Verified() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.verified
}

// String возвращает адрес кошелька или пустую строку.
func (s *Session) String() string {
	if pk, ok := s.Address(); ok {
		return pk.String()
	}
	return ""
}

// Ellipsify shortens s to its first and last n characters joined by "..".
func Ellipsify(s string, n int) string {
	if n <= 0 || len(s) <= 2*n {
		return s
	}
	return s[:n] + ".." + s[len(s)-n:]
}
