package screen

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gagliardetto/solana-go"
	"github.com/rovshanmuradov/solcrusher/internal/balance"
	"github.com/rovshanmuradov/solcrusher/internal/blockchain"
	"github.com/rovshanmuradov/solcrusher/internal/blockchain/solbc"
	"github.com/rovshanmuradov/solcrusher/internal/cluster"
	"github.com/rovshanmuradov/solcrusher/internal/logger"
	"github.com/rovshanmuradov/solcrusher/internal/token"
	"github.com/rovshanmuradov/solcrusher/internal/ui"
	"github.com/rovshanmuradov/solcrusher/internal/ui/component"
	"github.com/rovshanmuradov/solcrusher/internal/ui/router"
	"github.com/rovshanmuradov/solcrusher/internal/wallet"
	"go.uber.org/zap"
)

const (
	defaultProbeInterval = 30 * time.Second
	defaultProbeTimeout  = 3 * time.Second
	airdropTimeout       = 30 * time.Second
)

// Services are the long-lived collaborators the screens act on
type Services struct {
	Ctx       context.Context
	Session   *wallet.Session
	Clusters  *cluster.Selector
	Tokens    token.List
	Poller    *balance.Poller
	Dial      blockchain.Dialer
	Updates   <-chan tea.Msg
	LogBuffer *logger.LogBuffer
	Logger    *zap.Logger

	AirdropLamports uint64
	ProbeTimeout    time.Duration
	ProbeInterval   time.Duration
}

// Shared is the display state every screen reads. It is only touched on
// the bubbletea event loop.
type Shared struct {
	Balance        balance.Update
	Statuses       map[string]solbc.Status
	Status         ui.StatusMsg
	AirdropPending bool
}

// Env is what a screen is built with
type Env struct {
	Services
	Shared *Shared
}

type probeTickMsg struct{}

// capturer is implemented by screens that take every key while a text
// field or menu has focus
type capturer interface {
	Capturing() bool
}

// App is the root bubbletea model. It owns the side effects requested by
// components and forwards everything to the router.
type App struct {
	env     Env
	router  *router.Router
	connect *component.ConnectDialog
	client  blockchain.Client
	keys    ui.KeyMap
	logger  *zap.Logger
	width   int
	height  int
}

// NewApp builds the root model starting on the landing screen
func NewApp(svc Services) *App {
	if svc.Ctx == nil {
		svc.Ctx = context.Background()
	}
	if svc.ProbeTimeout <= 0 {
		svc.ProbeTimeout = defaultProbeTimeout
	}
	if svc.ProbeInterval <= 0 {
		svc.ProbeInterval = defaultProbeInterval
	}

	env := Env{
		Services: svc,
		Shared:   &Shared{Statuses: map[string]solbc.Status{}},
	}
	a := &App{
		env:     env,
		connect: component.NewConnectDialog(),
		keys:    ui.DefaultKeyMap(),
		logger:  svc.Logger.Named("app"),
	}
	a.router = router.New(a.build, ui.RouteLanding)
	return a
}

func (a *App) build(route ui.Route) router.Screen {
	switch route {
	case ui.RouteDashboard:
		s, err := NewDashboardScreen(a.env)
		if err != nil {
			a.logger.Error("Dashboard unavailable", zap.Error(err))
			return NewLandingScreen(a.env)
		}
		return s
	case ui.RouteAccount:
		return NewAccountScreen(a.env)
	default:
		return NewLandingScreen(a.env)
	}
}

// Shared returns the display state
func (a *App) Shared() *Shared {
	return a.env.Shared
}

// Router returns the screen router
func (a *App) Router() *router.Router {
	return a.router
}

// Init starts balance polling, the status tick and the update listener
func (a *App) Init() tea.Cmd {
	a.dialActive()
	a.watch()

	cmds := []tea.Cmd{a.router.Init(), a.probe(), a.scheduleProbe()}
	if a.env.Updates != nil {
		cmds = append(cmds, ui.Listen(a.env.Updates))
	}
	return tea.Batch(cmds...)
}

func (a *App) dialActive() {
	active := a.env.Clusters.Active()
	previous := a.client
	a.client = a.env.Dial(active.Endpoint)
	if previous != nil {
		if err := previous.Close(); err != nil {
			a.logger.Debug("Failed to close RPC client",
				zap.String("endpoint", previous.Endpoint()),
				zap.Error(err))
		}
	}
	a.logger.Info("Cluster selected",
		zap.String("cluster", active.Name),
		zap.String("endpoint", active.Endpoint))
}

// watch points the poller at the current wallet and cluster and takes its
// reset state synchronously, so leftovers of the previous generation that
// are still queued are ignored.
func (a *App) watch() {
	a.env.Poller.Watch(a.env.Ctx, a.client, a.env.Session.AddressPtr())
	a.env.Shared.Balance = a.env.Poller.Snapshot()
}

func (a *App) probe() tea.Cmd {
	ctx := a.env.Ctx
	clusters := a.env.Clusters.All()
	dial := a.env.Dial
	timeout := a.env.ProbeTimeout
	return func() tea.Msg {
		return ui.ClusterStatusMsg{Statuses: solbc.ProbeAll(ctx, clusters, dial, timeout)}
	}
}

// scheduleProbe arms the next periodic round. Only probeTickMsg re-arms it,
// so manual rounds never start a second chain.
func (a *App) scheduleProbe() tea.Cmd {
	return tea.Tick(a.env.ProbeInterval, func(time.Time) tea.Msg {
		return probeTickMsg{}
	})
}

func (a *App) requestAirdrop(address solana.PublicKey) tea.Cmd {
	ctx := a.env.Ctx
	client := a.client
	lamports := a.env.AirdropLamports
	name := a.env.Clusters.Active().Name
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, airdropTimeout)
		defer cancel()
		sig, err := client.RequestAirdrop(ctx, address, lamports)
		return ui.AirdropResultMsg{Cluster: name, Lamports: lamports, Signature: sig, Err: err}
	}
}

func (a *App) setStatus(text string, isErr bool) {
	a.env.Shared.Status = ui.StatusMsg{Text: text, IsError: isErr}
}

func (a *App) capturing() bool {
	if a.connect.IsOpen() {
		return true
	}
	c, ok := a.router.Current().(capturer)
	return ok && c.Capturing()
}

// Update handles application-level messages, then forwards to the router
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.connect.IsOpen() {
			var cmd tea.Cmd
			a.connect, cmd = a.connect.Update(msg)
			return a, cmd
		}
		if !a.capturing() && key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case ui.BalanceMsg:
		if msg.Update.Supersedes(a.env.Shared.Balance) {
			a.env.Shared.Balance = msg.Update
		}
		if a.env.Updates != nil {
			cmds = append(cmds, ui.Listen(a.env.Updates))
		}

	case ui.ClusterStatusMsg:
		a.env.Shared.Statuses = msg.Statuses

	case probeTickMsg:
		return a, tea.Batch(a.probe(), a.scheduleProbe())

	case ui.StatusMsg:
		a.env.Shared.Status = msg

	case ui.OpenConnectMsg:
		return a, a.connect.Open()

	case ui.ConnectRequestMsg:
		if err := a.env.Session.Connect(msg.Address); err != nil {
			a.logger.Warn("Wallet connect rejected", zap.Error(err))
			a.setStatus("Invalid wallet address", true)
			return a, nil
		}
		a.logger.Info("Wallet connected", zap.String("address", msg.Address))
		a.setStatus("Connected as "+wallet.Ellipsify(msg.Address, 4), false)
		a.watch()
		cmds = append(cmds, ui.Emit(ui.WalletChangedMsg{}))

	case ui.DisconnectRequestMsg:
		a.env.Session.Disconnect()
		a.logger.Info("Wallet disconnected")
		a.setStatus("Wallet disconnected", false)
		a.watch()
		cmds = append(cmds, ui.Emit(ui.WalletChangedMsg{}))

	case ui.ClusterSwitchMsg:
		var next cluster.Cluster
		if msg.Step < 0 {
			next = a.env.Clusters.Prev()
		} else {
			next = a.env.Clusters.Next()
		}
		a.dialActive()
		a.watch()
		a.setStatus("Switched to "+next.Name, false)
		cmds = append(cmds, a.probe())

	case ui.AirdropRequestMsg:
		address, ok := a.env.Session.Address()
		switch {
		case !ok:
			a.setStatus("Connect a wallet to request an airdrop", true)
		case !a.env.Clusters.Active().IsDevelopment():
			a.setStatus("Airdrops are only available on devnet", true)
		case a.env.Shared.AirdropPending:
			a.setStatus("Airdrop already in progress", false)
		default:
			a.env.Shared.AirdropPending = true
			a.setStatus("Requesting airdrop...", false)
			cmds = append(cmds, a.requestAirdrop(address))
		}

	case ui.AirdropResultMsg:
		a.env.Shared.AirdropPending = false
		if msg.Err != nil {
			a.logger.Warn("Airdrop failed", zap.String("cluster", msg.Cluster), zap.Error(msg.Err))
			a.setStatus("Airdrop failed: "+msg.Err.Error(), true)
			break
		}
		sol := balance.FromLamports(msg.Lamports)
		a.logger.Info("Airdrop confirmed",
			zap.String("cluster", msg.Cluster),
			zap.Stringer("signature", msg.Signature),
			zap.String("amount", sol.Display()))
		a.setStatus(fmt.Sprintf("Airdropped %s (%s)", sol.Display(),
			wallet.Ellipsify(msg.Signature.String(), 6)), false)
		a.env.Poller.Refresh()

	case ui.RefreshRequestMsg:
		a.env.Poller.Refresh()
		cmds = append(cmds, a.probe())
	}

	_, cmd := a.router.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

// View renders the current screen, or the connect dialog over it
func (a *App) View() string {
	body := a.router.View()
	if a.connect.IsOpen() {
		dialog := a.connect.View()
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, dialog)
		}
		return dialog
	}
	return body
}
