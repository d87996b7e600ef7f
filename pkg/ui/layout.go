package ui

import tea "github.com/charmbracelet/bubbletea"

// Layout contains the computed dimensions for all panels.
type Layout struct {
	Width  int
	Height int

	PanelWidth    int
	InputHeight   int
	BrowserHeight int

	horizontalMargin int
	verticalMargin   int
}

// NewLayout calculates sizes for the different UI components based on the
// terminal window dimensions.
func NewLayout(msg tea.WindowSizeMsg) Layout {
	l := Layout{Width: msg.Width, Height: msg.Height, horizontalMargin: 2, verticalMargin: 1}

	availableWidth := msg.Width - (l.horizontalMargin * 2)
	availableHeight := msg.Height - (l.verticalMargin * 2)

	headerHeight := 1
	statusHeight := 1

	l.PanelWidth = availableWidth
	l.InputHeight = 5
	// Panel borders eat two rows each.
	l.BrowserHeight = availableHeight - headerHeight - statusHeight - l.InputHeight - 4
	if l.BrowserHeight < 3 {
		l.BrowserHeight = 3
	}

	return l
}

func (l Layout) Margins() (int, int) {
	return l.horizontalMargin, l.verticalMargin
}
