package component

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/solcrusher/internal/cluster"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	upKey    = tea.KeyMsg{Type: tea.KeyUp}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

// typeText feeds s one rune at a time
func typeText(t *testing.T, update func(tea.Msg), s string) {
	t.Helper()
	for _, r := range s {
		update(runes(string(r)))
	}
}

func newClusters(t *testing.T, active string) *cluster.Selector {
	t.Helper()
	sel, err := cluster.NewSelector(cluster.Defaults(nil), active)
	require.NoError(t, err)
	return sel
}

func msgOf(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
