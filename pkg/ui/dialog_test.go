package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/promptdeck/promptdeck/pkg/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCmd resolves a command into the message it produces, nil included.
func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func enterKey() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func escKey() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEsc} }
func tabKey() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyTab} }
func downKey() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyDown} }

func TestDialogDefaultsToFirstSuggestion(t *testing.T) {
	d := NewDialog()

	d.Open(prompt.Suggestion{Summary: "s", SuggestedCategories: []string{"A", "B"}})

	assert.Equal(t, modePick, d.mode)
	assert.Equal(t, 0, d.cursor)
	assert.Equal(t, "A", d.selectedValue())
}

func TestDialogWithoutSuggestionsForcesCustomMode(t *testing.T) {
	d := NewDialog()

	d.Open(prompt.Suggestion{Summary: "s"})

	assert.Equal(t, modeCustom, d.mode)
	assert.Empty(t, d.selectedValue())
}

func TestDialogReopenResetsSelection(t *testing.T) {
	d := NewDialog()
	d.Open(prompt.Suggestion{SuggestedCategories: []string{"A", "B"}})
	d, _ = d.Update(downKey())
	require.Equal(t, 1, d.cursor)

	d.Open(prompt.Suggestion{SuggestedCategories: []string{"X"}})

	assert.Equal(t, modePick, d.mode)
	assert.Equal(t, "X", d.selectedValue())
}

func TestDialogSubmitEmitsPickedCategory(t *testing.T) {
	d := NewDialog()
	d.Open(prompt.Suggestion{SuggestedCategories: []string{"A", "B"}})
	d, _ = d.Update(downKey())

	_, cmd := d.Update(enterKey())

	msg := runCmd(cmd)
	require.IsType(t, CategoryConfirmedMsg{}, msg)
	assert.Equal(t, "B", msg.(CategoryConfirmedMsg).Category)
}

func TestDialogSubmitPreservesCustomValueExactly(t *testing.T) {
	d := NewDialog()
	d.Open(prompt.Suggestion{})
	d.custom.SetValue("  My Category ")

	_, cmd := d.Update(enterKey())

	msg := runCmd(cmd)
	require.IsType(t, CategoryConfirmedMsg{}, msg)
	assert.Equal(t, "  My Category ", msg.(CategoryConfirmedMsg).Category)
}

func TestDialogRejectsBlankSubmissionInBothModes(t *testing.T) {
	d := NewDialog()
	d.Open(prompt.Suggestion{})
	d.custom.SetValue("   ")

	d, cmd := d.Update(enterKey())
	assert.Nil(t, runCmd(cmd))
	assert.NotEmpty(t, d.note)

	// Pick mode with no categories behind the cursor behaves the same.
	d = NewDialog()
	d.Open(prompt.Suggestion{SuggestedCategories: []string{"A"}})
	d.suggestion.SuggestedCategories = nil

	d, cmd = d.Update(enterKey())
	assert.Nil(t, runCmd(cmd))
	assert.NotEmpty(t, d.note)
}

func TestDialogCancelEmitsMessage(t *testing.T) {
	d := NewDialog()
	d.Open(prompt.Suggestion{SuggestedCategories: []string{"A"}})

	_, cmd := d.Update(escKey())

	assert.IsType(t, DialogCancelledMsg{}, runCmd(cmd))
}

func TestDialogSavingDisablesConfirmAndCancel(t *testing.T) {
	d := NewDialog()
	d.Open(prompt.Suggestion{SuggestedCategories: []string{"A"}})
	d.SetSaving(true)

	_, cmd := d.Update(enterKey())
	assert.Nil(t, runCmd(cmd))

	_, cmd = d.Update(escKey())
	assert.Nil(t, runCmd(cmd))
}

func TestDialogModeToggle(t *testing.T) {
	d := NewDialog()
	d.Open(prompt.Suggestion{SuggestedCategories: []string{"A"}})

	d, _ = d.Update(tabKey())
	assert.Equal(t, modeCustom, d.mode)

	d, _ = d.Update(tabKey())
	assert.Equal(t, modePick, d.mode)

	// Without suggestions the pick mode is unreachable.
	d = NewDialog()
	d.Open(prompt.Suggestion{})
	d, _ = d.Update(tabKey())
	assert.Equal(t, modeCustom, d.mode)
}
