package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gagliardetto/solana-go"
	"github.com/rovshanmuradov/solcrusher/internal/balance"
	"github.com/rovshanmuradov/solcrusher/internal/blockchain/solbc"
	"github.com/rovshanmuradov/solcrusher/internal/cluster"
	"github.com/rovshanmuradov/solcrusher/internal/token"
	"github.com/rovshanmuradov/solcrusher/internal/ui"
	"github.com/rovshanmuradov/solcrusher/internal/ui/state"
	"github.com/rovshanmuradov/solcrusher/internal/ui/style"
	"github.com/rovshanmuradov/solcrusher/internal/wallet"
)

const (
	// Breakpoint is the terminal width at which the header switches from the
	// slide-out panel to inline controls.
	Breakpoint = 100

	// MaxSearchResults caps the header search result list.
	MaxSearchResults = 5

	searchPlaceholder = "Search tokens or paste address"
)

// NavKind identifies a header control
type NavKind int

const (
	NavBalance NavKind = iota
	NavAirdrop
	NavNetwork
	NavConnect
	NavVerify
)

// NavEntry is one header control. Both layouts render the same entries.
type NavEntry struct {
	Kind  NavKind
	Label string
	Key   string
}

// DropdownItem is an action in the balance dropdown
type DropdownItem int

const (
	DropdownAccount DropdownItem = iota
	DropdownDashboard
	DropdownDisconnect
	dropdownItemCount
)

func (d DropdownItem) String() string {
	switch d {
	case DropdownAccount:
		return "Account"
	case DropdownDashboard:
		return "Dashboard"
	case DropdownDisconnect:
		return "Disconnect"
	default:
		return ""
	}
}

// HeaderSnapshot is the data one render of the header reads
type HeaderSnapshot struct {
	Address   *solana.PublicKey
	Verified  bool
	Balance   balance.Value
	Cluster   cluster.Cluster
	Status    solbc.Status
	HasStatus bool
}

// Header is the primary application header: title, token search, balance
// dropdown, airdrop, network selector and wallet control.
type Header struct {
	session  *wallet.Session
	clusters *cluster.Selector
	tokens   token.List
	keys     ui.KeyMap
	palette  style.Palette

	width    int
	menu     state.Toggle
	dropdown state.Toggle
	cursor   int

	search  textinput.Model
	results []token.Token
	picked  int

	balance  balance.Value
	statuses map[string]solbc.Status
}

// NewHeader creates the header over the shared wallet session and cluster selector
func NewHeader(session *wallet.Session, clusters *cluster.Selector, tokens token.List) *Header {
	search := textinput.New()
	search.Placeholder = searchPlaceholder
	search.Prompt = "⌕ "
	search.CharLimit = 64
	search.Width = 32

	return &Header{
		session:  session,
		clusters: clusters,
		tokens:   tokens,
		keys:     ui.DefaultKeyMap(),
		palette:  style.DefaultPalette(),
		search:   search,
		width:    Breakpoint,
		statuses: map[string]solbc.Status{},
	}
}

// SetWidth sets the width; it picks the layout.
func (h *Header) SetWidth(width int) {
	h.width = width
	// the slide-out panel only exists in the compact layout
	h.menu.Set(h.menu.IsOpen() && h.Compact())
	if h.Compact() {
		h.search.Width = 20
	} else {
		h.search.Width = 32
	}
}

// Compact reports whether the slide-out layout is in use
func (h *Header) Compact() bool {
	return h.width < Breakpoint
}

// SetBalance updates the displayed balance
func (h *Header) SetBalance(v balance.Value) {
	h.balance = v
	if !h.balanceVisible(h.Snapshot()) {
		h.dropdown.Close()
	}
}

// SetStatuses replaces the probe results keyed by cluster name
func (h *Header) SetStatuses(statuses map[string]solbc.Status) {
	h.statuses = statuses
}

// MenuOpen reports whether the slide-out panel is open
func (h *Header) MenuOpen() bool {
	return h.menu.IsOpen()
}

// DropdownOpen reports whether the balance dropdown is open
func (h *Header) DropdownOpen() bool {
	return h.dropdown.IsOpen()
}

// Searching reports whether the search field has focus
func (h *Header) Searching() bool {
	return h.search.Focused()
}

// Capturing reports whether the header wants every key
func (h *Header) Capturing() bool {
	return h.Searching() || h.DropdownOpen()
}

// HasOverlay reports whether esc would close something in the header
func (h *Header) HasOverlay() bool {
	return h.Capturing() || h.MenuOpen()
}

// Results returns the current search matches
func (h *Header) Results() []token.Token {
	return h.results
}

// Snapshot reads wallet, balance and cluster state once
func (h *Header) Snapshot() HeaderSnapshot {
	active := h.clusters.Active()
	status, ok := h.statuses[active.Name]
	return HeaderSnapshot{
		Address:   h.session.AddressPtr(),
		Verified:  h.session.Verified(),
		Balance:   h.balance,
		Cluster:   active,
		Status:    status,
		HasStatus: ok,
	}
}

func (h *Header) balanceVisible(snap HeaderSnapshot) bool {
	return snap.Address != nil && snap.Balance.Known()
}

// Entries builds the header controls from one snapshot
func (h *Header) Entries() []NavEntry {
	return BuildEntries(h.Snapshot())
}

// BuildEntries builds the header controls for snap
func BuildEntries(snap HeaderSnapshot) []NavEntry {
	entries := make([]NavEntry, 0, 4)

	if snap.Address != nil && snap.Balance.Known() {
		entries = append(entries, NavEntry{Kind: NavBalance, Label: snap.Balance.Display(), Key: "o"})
	}
	if snap.Cluster.IsDevelopment() {
		entries = append(entries, NavEntry{Kind: NavAirdrop, Label: "Airdrop", Key: "a"})
	}
	entries = append(entries, NavEntry{Kind: NavNetwork, Label: networkLabel(snap), Key: "n"})

	switch {
	case snap.Address == nil:
		entries = append(entries, NavEntry{Kind: NavConnect, Label: "Connect Wallet", Key: "w"})
	case !snap.Verified:
		entries = append(entries, NavEntry{Kind: NavVerify, Label: "Verify Wallet"})
	}
	return entries
}

func networkLabel(snap HeaderSnapshot) string {
	switch {
	case !snap.HasStatus:
		return snap.Cluster.Name + " ◌"
	case snap.Status.Connected:
		return fmt.Sprintf("%s ● %dms", snap.Cluster.Name, snap.Status.Latency.Milliseconds())
	default:
		return snap.Cluster.Name + " ○ offline"
	}
}

// ConnectedAs is the first line of the balance dropdown
func ConnectedAs(address solana.PublicKey) string {
	return "Connected as " + wallet.Ellipsify(address.String(), 4)
}

// Update handles key input. Actions are returned as commands carrying ui
// request messages.
func (h *Header) Update(msg tea.Msg) (*Header, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if h.Searching() {
			var cmd tea.Cmd
			h.search, cmd = h.search.Update(msg)
			return h, cmd
		}
		return h, nil
	}

	if h.Searching() {
		return h.updateSearch(keyMsg)
	}
	if h.DropdownOpen() {
		return h.updateDropdown(keyMsg)
	}

	snap := h.Snapshot()
	switch {
	case key.Matches(keyMsg, h.keys.Back):
		h.menu.Close()

	case key.Matches(keyMsg, h.keys.Menu):
		h.menu.Toggle()

	case key.Matches(keyMsg, h.keys.Search):
		h.results = nil
		h.picked = 0
		return h, h.search.Focus()

	case key.Matches(keyMsg, h.keys.AccountMenu):
		if h.balanceVisible(snap) {
			h.cursor = 0
			h.dropdown.Open()
		}

	case key.Matches(keyMsg, h.keys.NextNetwork):
		h.menu.Close()
		return h, ui.Emit(ui.ClusterSwitchMsg{Step: 1})

	case key.Matches(keyMsg, h.keys.PrevNetwork):
		h.menu.Close()
		return h, ui.Emit(ui.ClusterSwitchMsg{Step: -1})

	case key.Matches(keyMsg, h.keys.Airdrop):
		if !snap.Cluster.IsDevelopment() {
			return h, nil
		}
		h.menu.Close()
		if snap.Address == nil {
			return h, ui.Emit(ui.StatusMsg{Text: "Connect a wallet to request an airdrop", IsError: true})
		}
		return h, ui.Emit(ui.AirdropRequestMsg{})

	case key.Matches(keyMsg, h.keys.Connect):
		if snap.Address == nil {
			h.menu.Close()
			return h, ui.Emit(ui.OpenConnectMsg{})
		}

	case key.Matches(keyMsg, h.keys.Disconnect):
		if snap.Address != nil {
			h.menu.Close()
			return h, ui.Emit(ui.DisconnectRequestMsg{})
		}

	case key.Matches(keyMsg, h.keys.Refresh):
		return h, ui.Emit(ui.RefreshRequestMsg{})

	case key.Matches(keyMsg, h.keys.Account):
		if h.menu.IsOpen() && snap.Address != nil {
			h.menu.Close()
			return h, ui.Emit(ui.RouterMsg{To: ui.RouteAccount})
		}

	case key.Matches(keyMsg, h.keys.Dashboard):
		if h.menu.IsOpen() && snap.Address != nil {
			h.menu.Close()
			return h, ui.Emit(ui.RouterMsg{To: ui.RouteDashboard})
		}
	}

	return h, nil
}

func (h *Header) updateSearch(msg tea.KeyMsg) (*Header, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		h.closeSearch()
		return h, nil
	case tea.KeyUp:
		if h.picked > 0 {
			h.picked--
		}
		return h, nil
	case tea.KeyDown:
		if h.picked < len(h.results)-1 {
			h.picked++
		}
		return h, nil
	case tea.KeyEnter:
		if len(h.results) == 0 {
			return h, nil
		}
		picked := h.results[h.picked]
		h.closeSearch()
		return h, ui.Emit(ui.TokenSearchMsg{Token: picked})
	}

	var cmd tea.Cmd
	h.search, cmd = h.search.Update(msg)
	h.refreshResults()
	return h, cmd
}

func (h *Header) refreshResults() {
	query := strings.TrimSpace(h.search.Value())
	if query == "" {
		h.results = nil
		h.picked = 0
		return
	}
	results := h.tokens.Search(query)
	if len(results) > MaxSearchResults {
		results = results[:MaxSearchResults]
	}
	h.results = results
	if h.picked >= len(results) {
		h.picked = 0
	}
}

func (h *Header) closeSearch() {
	h.search.Blur()
	h.search.Reset()
	h.results = nil
	h.picked = 0
}

func (h *Header) updateDropdown(msg tea.KeyMsg) (*Header, tea.Cmd) {
	switch {
	case key.Matches(msg, h.keys.Back), key.Matches(msg, h.keys.AccountMenu):
		h.dropdown.Close()
	case key.Matches(msg, h.keys.Up):
		if h.cursor > 0 {
			h.cursor--
		}
	case key.Matches(msg, h.keys.Down):
		if h.cursor < int(dropdownItemCount)-1 {
			h.cursor++
		}
	case key.Matches(msg, h.keys.Enter):
		h.dropdown.Close()
		h.menu.Close()
		switch DropdownItem(h.cursor) {
		case DropdownAccount:
			return h, ui.Emit(ui.RouterMsg{To: ui.RouteAccount})
		case DropdownDashboard:
			return h, ui.Emit(ui.RouterMsg{To: ui.RouteDashboard})
		case DropdownDisconnect:
			return h, ui.Emit(ui.DisconnectRequestMsg{})
		}
	}
	return h, nil
}

// View renders the header
func (h *Header) View() string {
	snap := h.Snapshot()
	entries := BuildEntries(snap)

	title := lipgloss.NewStyle().Foreground(h.palette.Primary).Bold(true).Render("SolCrusher")
	muted := lipgloss.NewStyle().Foreground(h.palette.TextMuted)

	var bar string
	if h.Compact() {
		icon := "≡"
		if h.menu.IsOpen() {
			icon = "✕"
		}
		bar = lipgloss.JoinHorizontal(lipgloss.Center,
			title, "  ", h.search.View(), "  ", muted.Render("[m] "+icon))
	} else {
		parts := []string{title, "  ", h.search.View()}
		for _, e := range entries {
			parts = append(parts, "  ", h.renderEntry(e))
		}
		bar = lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	}

	sections := []string{bar}
	if h.Searching() {
		sections = append(sections, h.renderResults())
	}
	if h.DropdownOpen() && snap.Address != nil {
		sections = append(sections, h.renderDropdown(*snap.Address))
	}
	if h.Compact() && h.menu.IsOpen() {
		sections = append(sections, h.renderPanel(snap, entries))
	}

	container := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(h.palette.TextMuted)
	if h.width > 0 {
		container = container.Width(h.width)
	}
	return container.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (h *Header) renderEntry(e NavEntry) string {
	hint := ""
	if e.Key != "" {
		hint = lipgloss.NewStyle().Foreground(h.palette.TextMuted).Render("[" + e.Key + "] ")
	}

	s := lipgloss.NewStyle().Foreground(h.palette.Text)
	label := e.Label
	switch e.Kind {
	case NavBalance:
		s = s.Foreground(h.palette.Success).Bold(true)
		label += " ▾"
	case NavAirdrop:
		s = s.Foreground(h.palette.Accent)
	case NavNetwork:
		if snapStatus, ok := h.statuses[h.clusters.Active().Name]; ok && !snapStatus.Connected {
			s = s.Foreground(h.palette.Error)
		} else {
			s = s.Foreground(h.palette.Info)
		}
	case NavConnect:
		s = s.Foreground(h.palette.Secondary).Bold(true)
	case NavVerify:
		return h.palette.Badge(label, h.palette.Warning)
	}
	return hint + s.Render(label)
}

func (h *Header) renderResults() string {
	muted := lipgloss.NewStyle().Foreground(h.palette.TextMuted)
	if len(h.results) == 0 {
		if strings.TrimSpace(h.search.Value()) == "" {
			return muted.Render("  type a symbol, name or mint address")
		}
		return muted.Render("  no tokens found")
	}

	lines := make([]string, 0, len(h.results))
	for i, t := range h.results {
		line := fmt.Sprintf("%s %-6s %s", t.Badge(), t.Symbol, muted.Render(t.Name))
		if i == h.picked {
			line = lipgloss.NewStyle().Foreground(h.palette.Primary).Bold(true).Render("▸ " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (h *Header) renderDropdown(address solana.PublicKey) string {
	lines := []string{
		lipgloss.NewStyle().Foreground(h.palette.TextMuted).Render(ConnectedAs(address)),
	}
	for i := DropdownItem(0); i < dropdownItemCount; i++ {
		if int(i) == h.cursor {
			lines = append(lines, lipgloss.NewStyle().Foreground(h.palette.Primary).Bold(true).Render("▸ "+i.String()))
		} else {
			lines = append(lines, "  "+i.String())
		}
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(h.palette.Primary).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// renderPanel draws the slide-out panel. A connected wallet gets an
// account card on top and screen links below the controls.
func (h *Header) renderPanel(snap HeaderSnapshot, entries []NavEntry) string {
	muted := lipgloss.NewStyle().Foreground(h.palette.TextMuted)
	lines := make([]string, 0, len(entries)+4)

	if snap.Address != nil {
		amount := lipgloss.NewStyle().Foreground(h.palette.Success).Bold(true)
		lines = append(lines,
			muted.Render(ConnectedAs(*snap.Address)),
			amount.Render(snap.Balance.Display()),
			"")
	}
	for _, e := range entries {
		if e.Kind == NavBalance {
			continue
		}
		lines = append(lines, h.renderEntry(e))
	}
	if snap.Address != nil {
		lines = append(lines, "",
			muted.Render("[p] ")+"Account",
			muted.Render("[g] ")+"Dashboard")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(h.palette.Accent).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}
