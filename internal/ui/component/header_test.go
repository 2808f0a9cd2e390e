package component

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gagliardetto/solana-go"
	"github.com/rovshanmuradov/solcrusher/internal/balance"
	"github.com/rovshanmuradov/solcrusher/internal/blockchain/solbc"
	"github.com/rovshanmuradov/solcrusher/internal/token"
	"github.com/rovshanmuradov/solcrusher/internal/ui"
	"github.com/rovshanmuradov/solcrusher/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"

func kinds(entries []NavEntry) []NavKind {
	out := make([]NavKind, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Kind)
	}
	return out
}

func newTestHeader(t *testing.T, active string) (*Header, *wallet.Session) {
	t.Helper()
	session := wallet.NewSession()
	h := NewHeader(session, newClusters(t, active), token.Default())
	h.SetWidth(120)
	return h, session
}

func connectedHeader(t *testing.T) (*Header, *wallet.Session) {
	t.Helper()
	h, session := newTestHeader(t, "devnet")
	require.NoError(t, session.Connect(testAddress))
	h.SetBalance(balance.FromLamports(1_500_000_000))
	return h, session
}

func TestHeaderDisconnectedShowsConnect(t *testing.T) {
	h, _ := newTestHeader(t, "devnet")

	assert.Equal(t, []NavKind{NavAirdrop, NavNetwork, NavConnect}, kinds(h.Entries()))
	assert.Contains(t, h.View(), "Connect Wallet")
	assert.NotContains(t, h.View(), "SOL ▾")
}

func TestHeaderBalanceOnlyWhenConnectedAndKnown(t *testing.T) {
	h, session := newTestHeader(t, "devnet")
	require.NoError(t, session.Connect(testAddress))

	// Connected but unknown balance: no dropdown trigger
	assert.Equal(t, []NavKind{NavAirdrop, NavNetwork, NavVerify}, kinds(h.Entries()))

	h.SetBalance(balance.FromLamports(1_500_000_000))
	entries := h.Entries()
	require.Equal(t, []NavKind{NavBalance, NavAirdrop, NavNetwork, NavVerify}, kinds(entries))
	assert.Equal(t, "1.50 SOL", entries[0].Label)
	assert.Contains(t, h.View(), "Verify Wallet")

	session.Disconnect()
	assert.Equal(t, []NavKind{NavAirdrop, NavNetwork, NavConnect}, kinds(h.Entries()))
}

func TestHeaderAirdropOnlyOnDevnet(t *testing.T) {
	for _, name := range []string{"mainnet-beta", "testnet", "devnet", "localnet"} {
		t.Run(name, func(t *testing.T) {
			h, _ := newTestHeader(t, name)
			assert.Equal(t, name == "devnet", containsKind(h.Entries(), NavAirdrop))
		})
	}
}

func containsKind(entries []NavEntry, kind NavKind) bool {
	for _, e := range entries {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestHeaderNetworkLabel(t *testing.T) {
	h, _ := newTestHeader(t, "devnet")
	assert.Equal(t, "devnet ◌", h.Entries()[1].Label)

	h.SetStatuses(map[string]solbc.Status{
		"devnet": {Connected: true, Latency: 42 * time.Millisecond},
	})
	assert.Equal(t, "devnet ● 42ms", h.Entries()[1].Label)

	h.SetStatuses(map[string]solbc.Status{"devnet": {Connected: false}})
	assert.Equal(t, "devnet ○ offline", h.Entries()[1].Label)
}

func TestHeaderLayoutFollowsWidth(t *testing.T) {
	h, _ := newTestHeader(t, "devnet")

	h.SetWidth(Breakpoint)
	assert.False(t, h.Compact())
	assert.Contains(t, h.View(), "Connect Wallet")

	h.SetWidth(Breakpoint - 1)
	require.True(t, h.Compact())
	assert.NotContains(t, h.View(), "Connect Wallet", "inline controls are hidden behind the menu")

	h.Update(runes("m"))
	require.True(t, h.MenuOpen())
	assert.Contains(t, h.View(), "Connect Wallet", "the panel renders the same entries")

	h.Update(runes("m"))
	assert.False(t, h.MenuOpen())

	h.Update(runes("m"))
	h.Update(escKey)
	assert.False(t, h.MenuOpen())

	// Growing past the breakpoint drops the panel
	h.Update(runes("m"))
	h.SetWidth(140)
	assert.False(t, h.MenuOpen())
}

func TestHeaderSearchEmitsPickedToken(t *testing.T) {
	h, _ := newTestHeader(t, "devnet")
	update := func(m tea.Msg) { h.Update(m) }

	h.Update(runes("/"))
	require.True(t, h.Searching())
	require.True(t, h.Capturing())

	typeText(t, update, "bon")
	require.NotEmpty(t, h.Results())
	assert.Equal(t, "BONK", h.Results()[0].Symbol)

	_, cmd := h.Update(enterKey)
	msg, ok := msgOf(cmd).(ui.TokenSearchMsg)
	require.True(t, ok)
	assert.Equal(t, "BONK", msg.Token.Symbol)
	assert.False(t, h.Searching())
}

func TestHeaderSearchCapsResultsAndEscCloses(t *testing.T) {
	h, _ := newTestHeader(t, "devnet")
	update := func(m tea.Msg) { h.Update(m) }

	h.Update(runes("/"))
	// Keys that are shortcuts elsewhere are typed into the field
	typeText(t, update, "n")
	assert.LessOrEqual(t, len(h.Results()), MaxSearchResults)

	_, cmd := h.Update(escKey)
	assert.Nil(t, cmd)
	assert.False(t, h.Searching())
	assert.Empty(t, h.Results())
}

func TestHeaderDropdownActions(t *testing.T) {
	h, _ := connectedHeader(t)

	h.Update(runes("o"))
	require.True(t, h.DropdownOpen())
	pk := solana.MustPublicKeyFromBase58(testAddress)
	assert.Contains(t, h.View(), ConnectedAs(pk))
	assert.Equal(t, "Connected as 9xQe..VFin", ConnectedAs(pk))

	h.Update(downKey)
	_, cmd := h.Update(enterKey)
	assert.Equal(t, ui.RouterMsg{To: ui.RouteDashboard}, msgOf(cmd))
	assert.False(t, h.DropdownOpen())

	h.Update(runes("o"))
	_, cmd = h.Update(enterKey)
	assert.Equal(t, ui.RouterMsg{To: ui.RouteAccount}, msgOf(cmd))

	h.Update(runes("o"))
	h.Update(downKey)
	h.Update(downKey)
	h.Update(downKey) // clamps on the last item
	_, cmd = h.Update(enterKey)
	assert.Equal(t, ui.DisconnectRequestMsg{}, msgOf(cmd))

	h.Update(runes("o"))
	h.Update(upKey)
	h.Update(escKey)
	assert.False(t, h.DropdownOpen())
}

func TestHeaderDropdownNeedsKnownBalance(t *testing.T) {
	h, session := newTestHeader(t, "devnet")
	require.NoError(t, session.Connect(testAddress))

	h.Update(runes("o"))
	assert.False(t, h.DropdownOpen())

	h.SetBalance(balance.FromLamports(10))
	h.Update(runes("o"))
	require.True(t, h.DropdownOpen())

	h.SetBalance(balance.Unknown())
	assert.False(t, h.DropdownOpen())
}

func TestHeaderKeysEmitRequests(t *testing.T) {
	h, session := newTestHeader(t, "devnet")

	_, cmd := h.Update(runes("n"))
	assert.Equal(t, ui.ClusterSwitchMsg{Step: 1}, msgOf(cmd))
	_, cmd = h.Update(runes("N"))
	assert.Equal(t, ui.ClusterSwitchMsg{Step: -1}, msgOf(cmd))

	_, cmd = h.Update(runes("a"))
	status, ok := msgOf(cmd).(ui.StatusMsg)
	require.True(t, ok)
	assert.True(t, status.IsError)

	_, cmd = h.Update(runes("w"))
	assert.Equal(t, ui.OpenConnectMsg{}, msgOf(cmd))
	_, cmd = h.Update(runes("d"))
	assert.Nil(t, cmd, "nothing to disconnect")

	require.NoError(t, session.Connect(testAddress))
	_, cmd = h.Update(runes("a"))
	assert.Equal(t, ui.AirdropRequestMsg{}, msgOf(cmd))
	_, cmd = h.Update(runes("w"))
	assert.Nil(t, cmd, "already connected")
	_, cmd = h.Update(runes("d"))
	assert.Equal(t, ui.DisconnectRequestMsg{}, msgOf(cmd))
	_, cmd = h.Update(runes("r"))
	assert.Equal(t, ui.RefreshRequestMsg{}, msgOf(cmd))
}

func TestHeaderAirdropIgnoredOffDevnet(t *testing.T) {
	h, session := newTestHeader(t, "mainnet-beta")
	require.NoError(t, session.Connect(testAddress))

	_, cmd := h.Update(runes("a"))
	assert.Nil(t, cmd)
}

func TestHeaderPanelShowsAccountCard(t *testing.T) {
	h, session := newTestHeader(t, "devnet")
	h.SetWidth(80)
	require.NoError(t, session.Connect(testAddress))

	h.Update(runes("m"))
	require.True(t, h.MenuOpen())
	view := h.View()
	assert.Contains(t, view, "Connected as 9xQe..VFin")
	assert.Contains(t, view, "— SOL", "the card shows the balance even before the first read")
	assert.Contains(t, view, "Account")
	assert.Contains(t, view, "Dashboard")
	assert.Contains(t, view, "Verify Wallet")

	h.SetBalance(balance.FromLamports(1_500_000_000))
	assert.Contains(t, h.View(), "1.50 SOL")

	_, cmd := h.Update(runes("p"))
	assert.Equal(t, ui.RouterMsg{To: ui.RouteAccount}, msgOf(cmd))
	assert.False(t, h.MenuOpen())

	h.Update(runes("m"))
	_, cmd = h.Update(runes("g"))
	assert.Equal(t, ui.RouterMsg{To: ui.RouteDashboard}, msgOf(cmd))
	assert.False(t, h.MenuOpen())
}

func TestHeaderPanelLinksNeedWallet(t *testing.T) {
	h, _ := newTestHeader(t, "devnet")
	h.SetWidth(80)

	h.Update(runes("m"))
	view := h.View()
	assert.NotContains(t, view, "Connected as")
	assert.NotContains(t, view, "[p]")

	_, cmd := h.Update(runes("p"))
	assert.Nil(t, cmd)
	assert.True(t, h.MenuOpen())

	// Outside the panel the links are inert
	h.Update(runes("m"))
	_, cmd = h.Update(runes("g"))
	assert.Nil(t, cmd)
}
