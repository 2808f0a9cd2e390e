// internal/swap/mode.go
package swap

// Tab is the trading type shown above the widget.
type Tab int

const (
	TabInstant Tab = iota
	TabTrigger
	TabRecurring
	tabCount
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabInstant, TabTrigger, TabRecurring}

func (t Tab) String() string {
	switch t {
	case TabInstant:
		return "Instant"
	case TabTrigger:
		return "Trigger"
	case TabRecurring:
		return "Recurring"
	default:
		return "unknown"
	}
}

// Mode is the routing mode badge.
type Mode int

const (
	ModeUltra Mode = iota
	ModeManual
)

func (m Mode) String() string {
	if m == ModeManual {
		return "MANUAL"
	}
	return "ULTRA"
}

// Tab returns the active tab.
func (s *Selector) Tab() Tab {
	return s.tab
}

// NextTab cycles the active tab.
func (s *Selector) NextTab() Tab {
	s.tab = (s.tab + 1) % tabCount
	return s.tab
}

// Mode returns the routing mode.
func (s *Selector) Mode() Mode {
	return s.mode
}

// ToggleMode flips between ULTRA and MANUAL.
func (s *Selector) ToggleMode() Mode {
	if s.mode == ModeUltra {
		s.mode = ModeManual
	} else {
		s.mode = ModeUltra
	}
	return s.mode
}
