package component

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/solcrusher/internal/logger"
	"github.com/rovshanmuradov/solcrusher/internal/ui"
	"github.com/rovshanmuradov/solcrusher/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConnectDialogValidatesAddress(t *testing.T) {
	c := NewConnectDialog()
	update := func(m tea.Msg) { c.Update(m) }
	assert.Empty(t, c.View())

	c.Open()
	require.True(t, c.IsOpen())

	typeText(t, update, "not-an-address")
	_, cmd := c.Update(enterKey)
	assert.Nil(t, cmd)
	assert.True(t, c.IsOpen())
	assert.NotEmpty(t, c.Error())
	assert.Contains(t, c.View(), "Not a valid Solana address")

	// Reopening starts from an empty field
	c.Open()
	typeText(t, update, testAddress)
	_, cmd = c.Update(enterKey)
	assert.Equal(t, ui.ConnectRequestMsg{Address: testAddress}, msgOf(cmd))
	assert.False(t, c.IsOpen())
}

func TestConnectDialogEscCloses(t *testing.T) {
	c := NewConnectDialog()
	c.Open()

	_, cmd := c.Update(escKey)
	assert.Nil(t, cmd)
	assert.False(t, c.IsOpen())

	// Closed dialog ignores input
	_, cmd = c.Update(enterKey)
	assert.Nil(t, cmd)
}

func TestMarketingHeaderFollowsSession(t *testing.T) {
	session := wallet.NewSession()
	m := NewMarketingHeader(session)
	m.SetWidth(80)

	assert.Equal(t, []string{"Connect Wallet"}, m.Links())
	assert.NotContains(t, m.View(), "Dashboard")

	_, cmd := m.Update(runes("g"))
	assert.Nil(t, cmd, "dashboard link hidden while disconnected")
	_, cmd = m.Update(runes("w"))
	assert.Equal(t, ui.OpenConnectMsg{}, msgOf(cmd))

	require.NoError(t, session.Connect(testAddress))
	assert.Equal(t, []string{"Dashboard", "Disconnect"}, m.Links())
	assert.Contains(t, m.View(), "Dashboard")
	assert.Contains(t, m.View(), "9xQe..VFin")

	_, cmd = m.Update(runes("g"))
	assert.Equal(t, ui.RouterMsg{To: ui.RouteDashboard}, msgOf(cmd))
	_, cmd = m.Update(runes("d"))
	assert.Equal(t, ui.DisconnectRequestMsg{}, msgOf(cmd))
	_, cmd = m.Update(runes("w"))
	assert.Nil(t, cmd)
}

func TestLogPaneFiltersDebug(t *testing.T) {
	buffer, err := logger.NewLogBuffer(10, "", zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, buffer.Add("debug", "hidden detail", nil))
	require.NoError(t, buffer.Add("warn", "Balance read failed", nil))

	pane := NewLogPane(buffer)
	pane.SetSize(80, 8)
	assert.False(t, pane.IsVisible())
	assert.Empty(t, pane.View())
	pane.Toggle()

	lines := pane.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Balance read failed")
	assert.Contains(t, pane.View(), "Recent Logs")

	pane.SetFilter(LogFilter{ShowDebug: true})
	lines = pane.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "hidden detail")

	pane.Toggle()
	assert.False(t, pane.IsVisible())
	assert.Empty(t, pane.View())
}

func TestLogPaneWithoutBuffer(t *testing.T) {
	pane := NewLogPane(nil)
	pane.Toggle()
	assert.Nil(t, pane.Lines())
	assert.Contains(t, pane.View(), "No log buffer available")
}
