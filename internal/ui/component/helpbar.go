package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/solcrusher/internal/ui"
	"github.com/rovshanmuradov/solcrusher/internal/ui/style"
)

const hintSeparator = " • "

type hint struct {
	key  string
	desc string
}

func (h hint) text(compact bool) string {
	if compact {
		return h.key
	}
	return h.key + " " + h.desc
}

// HelpBar is the screen footer: the last status message above the key hints
// of the current route.
type HelpBar struct {
	hints   []hint
	width   int
	compact bool

	keyStyle  lipgloss.Style
	descStyle lipgloss.Style
	palette   style.Palette
}

// NewHelpBar builds the footer for route. Extra bindings are listed first.
func NewHelpBar(route ui.Route, extra ...key.Binding) *HelpBar {
	palette := style.DefaultPalette()
	bindings := append(append([]key.Binding{}, extra...), ui.DefaultKeyMap().ContextualHelp(route)...)

	hints := make([]hint, 0, len(bindings))
	for _, b := range bindings {
		help := b.Help()
		if !b.Enabled() || help.Key == "" || help.Desc == "" {
			continue
		}
		hints = append(hints, hint{key: help.Key, desc: help.Desc})
	}

	return &HelpBar{
		hints:     hints,
		width:     80,
		keyStyle:  lipgloss.NewStyle().Foreground(palette.Primary).Bold(true),
		descStyle: lipgloss.NewStyle().Foreground(palette.TextMuted),
		palette:   palette,
	}
}

// SetWidth sets the footer width
func (h *HelpBar) SetWidth(width int) *HelpBar {
	h.width = width
	return h
}

// SetCompact shows keys without descriptions
func (h *HelpBar) SetCompact(compact bool) *HelpBar {
	h.compact = compact
	return h
}

// Hints returns the hints that fit on one line, as plain text
func (h *HelpBar) Hints() []string {
	fitted := h.fit()
	out := make([]string, 0, len(fitted))
	for _, hn := range fitted {
		out = append(out, hn.text(h.compact))
	}
	return out
}

// fit keeps hints in order until the line is full; the first one always stays
func (h *HelpBar) fit() []hint {
	available := h.width - 2
	sepWidth := lipgloss.Width(hintSeparator)

	out := make([]hint, 0, len(h.hints))
	used := 0
	for _, hn := range h.hints {
		w := lipgloss.Width(hn.text(h.compact))
		if len(out) > 0 {
			w += sepWidth
		}
		if used+w > available && len(out) > 0 {
			break
		}
		out = append(out, hn)
		used += w
	}
	return out
}

// View renders the status line, when there is one, and the hint line
func (h *HelpBar) View(status ui.StatusMsg) string {
	lines := make([]string, 0, 2)

	if status.Text != "" {
		color := h.palette.TextSecondary
		if status.IsError {
			color = h.palette.Error
		}
		line := lipgloss.NewStyle().Foreground(color)
		if h.width > 2 {
			line = line.MaxWidth(h.width - 2)
		}
		lines = append(lines, line.Render(status.Text))
	}

	fitted := h.fit()
	if len(fitted) > 0 {
		items := make([]string, 0, len(fitted))
		for _, hn := range fitted {
			item := h.keyStyle.Render(hn.key)
			if !h.compact {
				item += " " + h.descStyle.Render(hn.desc)
			}
			items = append(items, item)
		}
		lines = append(lines, strings.Join(items, h.descStyle.Render(hintSeparator)))
	}

	if len(lines) == 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Margin(1, 0, 0, 0).
		Render(strings.Join(lines, "\n"))
}
