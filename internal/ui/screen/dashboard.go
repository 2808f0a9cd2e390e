package screen

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/solcrusher/internal/ui"
	"github.com/rovshanmuradov/solcrusher/internal/ui/component"
	"github.com/rovshanmuradov/solcrusher/internal/ui/router"
	"go.uber.org/zap"
)

const logPaneHeight = 8

// DashboardScreen hosts the primary header, the swap widget and the log pane
type DashboardScreen struct {
	env     Env
	width   int
	height  int
	keyMap  ui.KeyMap
	logger  *zap.Logger
	header  *component.Header
	widget  *component.SwapWidget
	logs    *component.LogPane
	helpBar *component.HelpBar
}

// NewDashboardScreen creates the dashboard screen
func NewDashboardScreen(env Env) (*DashboardScreen, error) {
	widget, err := component.NewSwapWidget(env.Tokens, env.Logger)
	if err != nil {
		return nil, err
	}
	s := &DashboardScreen{
		env:     env,
		keyMap:  ui.DefaultKeyMap(),
		logger:  env.Logger.Named("dashboard"),
		header:  component.NewHeader(env.Session, env.Clusters, env.Tokens),
		widget:  widget,
		logs:    component.NewLogPane(env.LogBuffer),
		helpBar: component.NewHelpBar(ui.RouteDashboard),
	}
	s.sync()
	return s, nil
}

// Header returns the primary header
func (s *DashboardScreen) Header() *component.Header {
	return s.header
}

// Widget returns the swap widget
func (s *DashboardScreen) Widget() *component.SwapWidget {
	return s.widget
}

// Capturing reports whether a text field or menu takes every key
func (s *DashboardScreen) Capturing() bool {
	return s.header.Capturing() || s.widget.Capturing()
}

// HasOverlay reports whether esc closes something on this screen
func (s *DashboardScreen) HasOverlay() bool {
	return s.header.HasOverlay() || s.widget.HasOverlay()
}

func (s *DashboardScreen) sync() {
	s.header.SetBalance(s.env.Shared.Balance.Value)
	s.header.SetStatuses(s.env.Shared.Statuses)
}

// Init initializes the dashboard screen
func (s *DashboardScreen) Init() tea.Cmd {
	s.sync()
	return nil
}

// Update handles screen updates
func (s *DashboardScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	s.sync()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s, s.handleKey(msg)

	case ui.TokenSearchMsg:
		if err := s.widget.Selector().SelectBuy(msg.Token); err != nil {
			s.logger.Warn("Search pick rejected", zap.String("symbol", msg.Token.Symbol), zap.Error(err))
			return s, nil
		}
		return s, ui.Emit(ui.StatusMsg{Text: "Buying " + msg.Token.Symbol})

	case tea.MouseMsg:
		var cmd tea.Cmd
		s.logs, cmd = s.logs.Update(msg)
		return s, cmd
	}

	// Dialog results and input blinks
	var cmds []tea.Cmd
	var cmd tea.Cmd
	s.header, cmd = s.header.Update(msg)
	cmds = append(cmds, cmd)
	s.widget, cmd = s.widget.Update(msg)
	cmds = append(cmds, cmd)
	return s, tea.Batch(cmds...)
}

func (s *DashboardScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case s.header.Capturing():
		s.header, cmd = s.header.Update(msg)
		return cmd
	case s.widget.Capturing():
		s.widget, cmd = s.widget.Update(msg)
		return cmd
	case key.Matches(msg, s.keyMap.ToggleLogs):
		s.logs.Toggle()
		s.layout()
		return nil
	}

	// Header and widget shortcuts do not overlap
	var cmds []tea.Cmd
	s.header, cmd = s.header.Update(msg)
	cmds = append(cmds, cmd)
	s.widget, cmd = s.widget.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// View renders the dashboard screen
func (s *DashboardScreen) View() string {
	widget := s.widget.View()
	if s.width > 0 {
		widget = lipgloss.PlaceHorizontal(s.width, lipgloss.Center, widget)
	}

	sections := []string{s.header.View(), widget}
	if s.logs.IsVisible() {
		sections = append(sections, s.logs.View())
	}
	sections = append(sections, s.helpBar.View(s.env.Shared.Status))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetSize sets the screen dimensions
func (s *DashboardScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.layout()
}

func (s *DashboardScreen) layout() {
	s.header.SetWidth(s.width)
	s.widget.SetWidth(s.width)
	s.logs.SetSize(s.width, logPaneHeight)
	s.helpBar.SetWidth(s.width).SetCompact(s.width < component.Breakpoint)
}
