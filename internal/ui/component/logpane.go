package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/solcrusher/internal/logger"
	"github.com/rovshanmuradov/solcrusher/internal/ui/style"
)

const logPaneEntries = 50

// LogFilter defines what log levels to show
type LogFilter struct {
	ShowError   bool
	ShowWarning bool
	ShowInfo    bool
	ShowDebug   bool
}

// LogPane shows the newest entries of the in-memory log buffer
type LogPane struct {
	buffer   *logger.LogBuffer
	viewport viewport.Model
	filter   LogFilter
	style    logPaneStyle
	width    int
	height   int
	visible  bool
}

type logPaneStyle struct {
	container lipgloss.Style
	title     lipgloss.Style
	timestamp lipgloss.Style
	name      lipgloss.Style
	entry     lipgloss.Style
	error     lipgloss.Style
	warning   lipgloss.Style
	info      lipgloss.Style
	debug     lipgloss.Style
}

// NewLogPane creates a log pane over buffer; a nil buffer renders a notice
func NewLogPane(buffer *logger.LogBuffer) *LogPane {
	palette := style.DefaultPalette()

	return &LogPane{
		buffer:  buffer,
		visible: false,
		filter: LogFilter{
			ShowError:   true,
			ShowWarning: true,
			ShowInfo:    true,
			ShowDebug:   false, // Hide debug by default for compact view
		},
		style: logPaneStyle{
			container: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(palette.Info).
				Padding(0, 1),
			title:     lipgloss.NewStyle().Foreground(palette.Info).Bold(true),
			timestamp: lipgloss.NewStyle().Foreground(palette.TextMuted),
			name:      lipgloss.NewStyle().Foreground(palette.Accent),
			entry:     lipgloss.NewStyle().Foreground(palette.Text),
			error:     lipgloss.NewStyle().Foreground(palette.Error).Bold(true),
			warning:   lipgloss.NewStyle().Foreground(palette.Warning).Bold(true),
			info:      lipgloss.NewStyle().Foreground(palette.Info),
			debug:     lipgloss.NewStyle().Foreground(palette.TextMuted),
		},
		viewport: viewport.New(50, 4),
	}
}

// SetSize sets the component dimensions
func (lp *LogPane) SetSize(width, height int) {
	lp.width = width
	lp.height = height

	// Border + padding + title
	vw := width - 4
	vh := height - 3
	if vw < 10 {
		vw = 10
	}
	if vh < 2 {
		vh = 2
	}
	lp.viewport.Width = vw
	lp.viewport.Height = vh
}

// Toggle flips the pane visibility
func (lp *LogPane) Toggle() {
	lp.visible = !lp.visible
}

// IsVisible returns whether the pane is visible
func (lp *LogPane) IsVisible() bool {
	return lp.visible
}

// SetFilter updates the log filter
func (lp *LogPane) SetFilter(filter LogFilter) {
	lp.filter = filter
}

// Update handles viewport scrolling
func (lp *LogPane) Update(msg tea.Msg) (*LogPane, tea.Cmd) {
	if !lp.visible {
		return lp, nil
	}
	var cmd tea.Cmd
	lp.viewport, cmd = lp.viewport.Update(msg)
	return lp, cmd
}

// Lines returns the formatted entries that pass the filter
func (lp *LogPane) Lines() []string {
	if lp.buffer == nil {
		return nil
	}

	entries := lp.buffer.GetRecentLogs(logPaneEntries)
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		if lp.shouldShowEntry(entry) {
			lines = append(lines, lp.formatLogEntry(entry))
		}
	}
	return lines
}

// View renders the pane
func (lp *LogPane) View() string {
	if !lp.visible {
		return ""
	}

	switch lines := lp.Lines(); {
	case lp.buffer == nil:
		lp.viewport.SetContent("No log buffer available")
	case len(lines) == 0:
		lp.viewport.SetContent("No logs yet")
	default:
		lp.viewport.SetContent(strings.Join(lines, "\n"))
		lp.viewport.GotoBottom()
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		lp.style.title.Render("Recent Logs [l]"),
		lp.viewport.View(),
	)
	container := lp.style.container
	if lp.width > 2 {
		container = container.Width(lp.width - 2)
	}
	return container.Render(content)
}

// shouldShowEntry determines if a log entry should be displayed based on filter
func (lp *LogPane) shouldShowEntry(entry logger.LogEntry) bool {
	switch strings.ToLower(entry.Level) {
	case "error", "dpanic", "panic", "fatal":
		return lp.filter.ShowError
	case "warning", "warn":
		return lp.filter.ShowWarning
	case "info":
		return lp.filter.ShowInfo
	case "debug":
		return lp.filter.ShowDebug
	default:
		return lp.filter.ShowInfo // Default to info level
	}
}

// formatLogEntry formats a log entry for display
func (lp *LogPane) formatLogEntry(entry logger.LogEntry) string {
	timestamp := lp.style.timestamp.Render(entry.Timestamp.Format("15:04:05"))

	var msg string
	switch strings.ToLower(entry.Level) {
	case "error", "dpanic", "panic", "fatal":
		msg = lp.style.error.Render(entry.Message)
	case "warning", "warn":
		msg = lp.style.warning.Render(entry.Message)
	case "info":
		msg = lp.style.info.Render(entry.Message)
	case "debug":
		msg = lp.style.debug.Render(entry.Message)
	default:
		msg = lp.style.entry.Render(entry.Message)
	}

	if entry.Logger != "" {
		return fmt.Sprintf("%s %s %s", timestamp, lp.style.name.Render(entry.Logger), msg)
	}
	return fmt.Sprintf("%s %s", timestamp, msg)
}
