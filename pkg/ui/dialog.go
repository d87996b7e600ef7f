package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/promptdeck/promptdeck/pkg/prompt"
)

// dialogMode selects how the category is chosen.
type dialogMode int

const (
	// modePick selects one of the suggested categories.
	modePick dialogMode = iota
	// modeCustom uses the free-text input.
	modeCustom
)

/*
Dialog is the suggestion-confirmation step: it shows the AI summary, lets the
user pick one of the suggested categories or type a custom one, and emits a
CategoryConfirmedMsg with the chosen value. It is pure presentation plus
local selection state; the workflow controller owns when it is visible.
*/
type Dialog struct {
	suggestion prompt.Suggestion
	mode       dialogMode
	cursor     int
	custom     textinput.Model
	saving     bool
	note       string
	width      int
}

func NewDialog() Dialog {
	ti := textinput.New()
	ti.Placeholder = "Custom category"
	ti.CharLimit = 64
	ti.Prompt = "> "
	return Dialog{custom: ti, width: 48}
}

/*
Open resets the dialog for a fresh suggestion. With suggested categories
present the first one is preselected in pick mode; with none the dialog is
forced into custom mode with an empty value.
*/
func (d *Dialog) Open(s prompt.Suggestion) {
	d.suggestion = s
	d.cursor = 0
	d.note = ""
	d.saving = false
	d.custom.SetValue("")

	if len(s.SuggestedCategories) == 0 {
		d.mode = modeCustom
		d.custom.Focus()
	} else {
		d.mode = modePick
		d.custom.Blur()
	}
}

// SetSaving toggles the in-flight save state, which disables both the
// confirm and cancel actions.
func (d *Dialog) SetSaving(saving bool) { d.saving = saving }

// SetNote surfaces an inline message, such as a failed save.
func (d *Dialog) SetNote(note string) { d.note = note }

func (d *Dialog) SetWidth(w int) {
	if w > 20 {
		d.width = w
	}
}

func (d Dialog) Init() tea.Cmd { return nil }

func (d Dialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	m, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		d.custom, cmd = d.custom.Update(msg)
		return d, cmd
	}

	// A genuinely in-flight save disables everything, including cancel.
	if d.saving {
		return d, nil
	}

	switch {
	case key.Matches(m, defaultKeymap.cancel):
		return d, func() tea.Msg { return DialogCancelledMsg{} }

	case key.Matches(m, defaultKeymap.enter):
		return d.submit()

	case key.Matches(m, defaultKeymap.tab):
		d.toggleMode()
		return d, nil

	case d.mode == modePick && key.Matches(m, defaultKeymap.up):
		if d.cursor > 0 {
			d.cursor--
		}
		return d, nil

	case d.mode == modePick && key.Matches(m, defaultKeymap.down):
		if d.cursor < len(d.suggestion.SuggestedCategories)-1 {
			d.cursor++
		}
		return d, nil
	}

	if d.mode == modeCustom {
		var cmd tea.Cmd
		d.custom, cmd = d.custom.Update(msg)
		return d, cmd
	}

	return d, nil
}

// submit validates the selected value locally and emits the confirmation.
// The confirmed string is passed through exactly as chosen, untrimmed.
func (d Dialog) submit() (Dialog, tea.Cmd) {
	value := d.selectedValue()

	if strings.TrimSpace(value) == "" {
		d.note = "category is required"
		return d, nil
	}

	d.note = ""
	return d, func() tea.Msg { return CategoryConfirmedMsg{Category: value} }
}

func (d Dialog) selectedValue() string {
	if d.mode == modeCustom {
		return d.custom.Value()
	}
	if d.cursor < len(d.suggestion.SuggestedCategories) {
		return d.suggestion.SuggestedCategories[d.cursor]
	}
	return ""
}

// toggleMode switches between pick and custom. Pick mode is only reachable
// when there are suggested categories to pick from.
func (d *Dialog) toggleMode() {
	if d.mode == modePick {
		d.mode = modeCustom
		d.custom.Focus()
		return
	}

	if len(d.suggestion.SuggestedCategories) > 0 {
		d.mode = modePick
		d.custom.Blur()
	}
}

func (d Dialog) View() string {
	var b strings.Builder

	b.WriteString(dialogTitleStyle.Render("Save prompt"))
	b.WriteString("\n\n")
	b.WriteString(summaryStyle.Render("Summary: " + d.suggestion.Summary))
	b.WriteString("\n\n")

	for i, cat := range d.suggestion.SuggestedCategories {
		marker := "( ) "
		line := cat
		if d.mode == modePick && i == d.cursor {
			marker = "(•) "
			line = selectedStyle.Render(cat)
		}
		b.WriteString(marker + line + "\n")
	}

	if len(d.suggestion.SuggestedCategories) > 0 {
		b.WriteString("\n")
	}

	if d.mode == modeCustom {
		b.WriteString(d.custom.View())
	} else {
		b.WriteString(cardMetaStyle.Render("tab: custom category"))
	}
	b.WriteString("\n")

	if d.note != "" {
		b.WriteString("\n" + errorStyle.Render(d.note) + "\n")
	}

	footer := "enter: save  tab: mode  esc: cancel"
	if d.saving {
		footer = "saving..."
	}
	b.WriteString("\n" + statusBarStyle.Render(footer))

	return dialogStyle.Width(d.width).Render(b.String())
}

// Overlay centers the dialog within the given area.
func (d Dialog) Overlay(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, d.View())
}
