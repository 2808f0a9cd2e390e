package screen

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/solcrusher/internal/ui"
	"github.com/rovshanmuradov/solcrusher/internal/ui/component"
	"github.com/rovshanmuradov/solcrusher/internal/ui/router"
	"github.com/rovshanmuradov/solcrusher/internal/ui/style"
)

// LandingScreen is the marketing page shown on start
type LandingScreen struct {
	env     Env
	width   int
	height  int
	keyMap  ui.KeyMap
	header  *component.MarketingHeader
	helpBar *component.HelpBar
	palette style.Palette
}

// NewLandingScreen creates the landing screen
func NewLandingScreen(env Env) *LandingScreen {
	keyMap := ui.DefaultKeyMap()
	launch := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start trading"))

	return &LandingScreen{
		env:     env,
		keyMap:  keyMap,
		header:  component.NewMarketingHeader(env.Session),
		helpBar: component.NewHelpBar(ui.RouteLanding, launch),
		palette: style.DefaultPalette(),
	}
}

// Init initializes the landing screen
func (s *LandingScreen) Init() tea.Cmd {
	return nil
}

// Update handles screen updates
func (s *LandingScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, s.keyMap.Enter) {
		return s, router.Navigate(ui.RouteDashboard)
	}

	var cmd tea.Cmd
	s.header, cmd = s.header.Update(msg)
	return s, cmd
}

// View renders the landing screen
func (s *LandingScreen) View() string {
	title := lipgloss.NewStyle().
		Foreground(s.palette.Primary).
		Bold(true).
		Render("Swap Solana tokens from your terminal")
	tagline := lipgloss.NewStyle().
		Foreground(s.palette.TextSecondary).
		Render("Live wallet balance, devnet airdrops and a token swap preview.")

	symbols := make([]string, 0, s.env.Tokens.Len())
	for _, t := range s.env.Tokens.All() {
		symbols = append(symbols, t.Badge()+" "+t.Symbol)
	}
	tokens := lipgloss.NewStyle().Foreground(s.palette.TextMuted).Render(strings.Join(symbols, "   "))

	cta := s.palette.Button("Start trading", s.palette.Secondary)

	hero := lipgloss.JoinVertical(lipgloss.Center, "", title, tagline, "", tokens, "", cta)
	if s.width > 0 {
		hero = lipgloss.PlaceHorizontal(s.width, lipgloss.Center, hero)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.header.View(),
		hero,
		s.helpBar.View(s.env.Shared.Status),
	)
}

// SetSize sets the screen dimensions
func (s *LandingScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.header.SetWidth(width)
	s.helpBar.SetWidth(width)
}
