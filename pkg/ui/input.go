package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// InputArea is the textarea used for drafting a new prompt.
type InputArea struct {
	textarea textarea.Model
}

func NewInputArea() InputArea {
	ta := textarea.New()
	ta.Placeholder = "Write a prompt and press Ctrl+S to get a category suggestion..."
	ta.ShowLineNumbers = false
	ta.Prompt = "┃ "
	return InputArea{textarea: ta}
}

func (ia InputArea) Init() tea.Cmd { return textarea.Blink }

func (ia InputArea) Update(msg tea.Msg) (InputArea, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(m, defaultKeymap.suggest) {
			// The draft is kept as typed: it is only cleared after a
			// successful save, and blank drafts are rejected upstream
			// before any network call.
			text := ia.textarea.Value()
			return ia, func() tea.Msg { return SuggestRequestedMsg{Content: text} }
		}
	}

	var cmd tea.Cmd
	ia.textarea, cmd = ia.textarea.Update(msg)
	return ia, cmd
}

func (ia InputArea) View() string { return ia.textarea.View() }

func (ia InputArea) Value() string { return ia.textarea.Value() }

func (ia *InputArea) Reset() { ia.textarea.Reset() }
func (ia *InputArea) Focus() { ia.textarea.Focus() }
func (ia *InputArea) Blur()  { ia.textarea.Blur() }

func (ia *InputArea) SetSize(w, h int) {
	ia.textarea.SetWidth(w)
	ia.textarea.SetHeight(h)
}
