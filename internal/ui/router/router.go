package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/solcrusher/internal/ui"
)

// Screen represents a screen that can be navigated to
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Overlay is implemented by screens that show a dialog or panel which
// should consume esc before the router pops the screen
type Overlay interface {
	HasOverlay() bool
}

// Factory builds the screen for a route
type Factory func(route ui.Route) Screen

// Router manages navigation between screens using a stack-based approach
type Router struct {
	stack   []Screen
	routes  []ui.Route
	factory Factory
	width   int
	height  int
}

// New creates a new router with the initial route
func New(factory Factory, initial ui.Route) *Router {
	return &Router{
		stack:   []Screen{factory(initial)},
		routes:  []ui.Route{initial},
		factory: factory,
	}
}

// Init initializes the router
func (r *Router) Init() tea.Cmd {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1].Init()
}

// Update processes messages and updates the current screen
func (r *Router) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle router-specific messages
	switch msg := msg.(type) {
	case ui.RouterMsg:
		return r, r.Open(msg.To)

	case tea.WindowSizeMsg:
		r.SetSize(msg.Width, msg.Height)
		// Forward size to current screen
		if len(r.stack) > 0 {
			r.stack[len(r.stack)-1].SetSize(msg.Width, msg.Height)
		}
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			// Handle back navigation on Escape unless an overlay takes it
			if o, ok := r.Current().(Overlay); ok && o.HasOverlay() {
				break
			}
			if len(r.stack) > 1 {
				return r, r.Back()
			}
		}
	}

	// Update current screen
	if len(r.stack) > 0 {
		currentScreen := r.stack[len(r.stack)-1]
		updatedScreen, cmd := currentScreen.Update(msg)
		r.stack[len(r.stack)-1] = updatedScreen

		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return r, tea.Batch(cmds...)
}

// View renders the current screen
func (r *Router) View() string {
	if len(r.stack) == 0 {
		return "No screen available"
	}
	return r.stack[len(r.stack)-1].View()
}

// SetSize sets the size for the router and current screen
func (r *Router) SetSize(width, height int) {
	r.width = width
	r.height = height

	// Set size for current screen
	if len(r.stack) > 0 {
		r.stack[len(r.stack)-1].SetSize(width, height)
	}
}

// Open shows route. A route already on the stack is returned to by popping
// the screens above it; any other route is pushed.
func (r *Router) Open(route ui.Route) tea.Cmd {
	for i := len(r.routes) - 1; i >= 0; i-- {
		if r.routes[i] != route {
			continue
		}
		if i == len(r.routes)-1 {
			return nil
		}
		r.stack = r.stack[:i+1]
		r.routes = r.routes[:i+1]
		current := r.stack[i]
		current.SetSize(r.width, r.height)
		return current.Init()
	}
	return r.Push(route, r.factory(route))
}

// Push adds a new screen to the navigation stack
func (r *Router) Push(route ui.Route, screen Screen) tea.Cmd {
	screen.SetSize(r.width, r.height)
	r.stack = append(r.stack, screen)
	r.routes = append(r.routes, route)
	return screen.Init()
}

// Pop removes the current screen from the stack
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil // Can't pop the last screen
	}

	r.stack = r.stack[:len(r.stack)-1]
	r.routes = r.routes[:len(r.routes)-1]

	// Re-initialize the current screen
	if len(r.stack) > 0 {
		currentScreen := r.stack[len(r.stack)-1]
		currentScreen.SetSize(r.width, r.height)
		return currentScreen.Init()
	}

	return nil
}

// Navigate is a helper method that creates a RouterMsg command
func Navigate(route ui.Route) tea.Cmd {
	return func() tea.Msg {
		return ui.RouterMsg{To: route}
	}
}

// Back navigates back to the previous screen
func (r *Router) Back() tea.Cmd {
	return r.Pop()
}

// Current returns the current screen
func (r *Router) Current() Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Route returns the route of the current screen
func (r *Router) Route() ui.Route {
	return r.routes[len(r.routes)-1]
}

// Depth returns the current navigation depth
func (r *Router) Depth() int {
	return len(r.stack)
}

// Clear removes all screens except the first one
func (r *Router) Clear() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}

	r.stack = r.stack[:1]
	r.routes = r.routes[:1]

	// Re-initialize the root screen
	if len(r.stack) > 0 {
		currentScreen := r.stack[0]
		currentScreen.SetSize(r.width, r.height)
		return currentScreen.Init()
	}

	return nil
}

// CanGoBack returns true if there are screens to go back to
func (r *Router) CanGoBack() bool {
	return len(r.stack) > 1
}
