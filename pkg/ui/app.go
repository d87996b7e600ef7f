package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/promptdeck/promptdeck/pkg/api"
	"github.com/promptdeck/promptdeck/pkg/workflow"
)

// focusArea identifies which panel receives key input.
type focusArea int

const (
	focusInput focusArea = iota
	focusBrowser
)

/*
Model is the root composition: it wires the draft input, the confirmation
dialog and the prompt browser together around the creation workflow
controller, and turns backend calls into commands resolving to typed
messages. A saved prompt is spliced into the browser directly, without a
re-fetch.
*/
type Model struct {
	client  *api.Client
	flow    *workflow.Controller
	input   InputArea
	dialog  Dialog
	browser Browser
	spinner spinner.Model
	layout  Layout
	focus   focusArea
	status  string
	failed  bool
}

func New(client *api.Client) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	m := Model{
		client:  client,
		flow:    workflow.NewController(),
		input:   NewInputArea(),
		dialog:  NewDialog(),
		browser: NewBrowser(),
		spinner: sp,
	}
	m.input.Focus()

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.input.Init(), m.fetchPrompts())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayout(msg)
		m.input.SetSize(m.layout.PanelWidth-2, m.layout.InputHeight)
		m.browser.SetSize(m.layout.PanelWidth-2, m.layout.BrowserHeight)
		m.dialog.SetWidth(m.layout.PanelWidth / 2)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case promptsLoadedMsg:
		m.browser.SetPrompts(msg.prompts)
		return m, nil

	case listFailedMsg:
		// Acceptable at this scope: note it and leave the list empty.
		log.Error("failed to fetch prompts", "error", msg.err)
		m.setError(msg.err.Error())
		return m, nil

	case suggestionMsg:
		m.flow.ApplySuggestion(msg.suggestion)
		m.dialog.Open(msg.suggestion)
		m.setStatus("")
		return m, nil

	case suggestFailedMsg:
		m.flow.FailSuggestion(msg.err)
		m.setError(msg.err.Error())
		return m, nil

	case promptSavedMsg:
		m.flow.CompleteSave()
		m.dialog.SetSaving(false)
		m.input.Reset()
		m.browser.PrependPrompt(msg.prompt)
		m.setStatus("saved " + msg.prompt.Title)
		return m, nil

	case saveFailedMsg:
		// The dialog stays open so the user can retry or cancel.
		m.flow.FailSave(msg.err)
		m.dialog.SetSaving(false)
		m.dialog.SetNote(msg.err.Error())
		return m, nil

	case SuggestRequestedMsg:
		if err := m.flow.StartSuggestion(msg.Content); err != nil {
			m.setError(err.Error())
			return m, nil
		}
		m.setStatus("requesting suggestion...")
		return m, tea.Batch(m.spinner.Tick, m.requestSuggestion(msg.Content))

	case CategoryConfirmedMsg:
		req, err := m.flow.StartSave(msg.Category)
		if err != nil {
			m.dialog.SetNote(err.Error())
			return m, nil
		}
		m.dialog.SetSaving(true)
		return m, tea.Batch(m.spinner.Tick, m.savePrompt(req))

	case DialogCancelledMsg:
		m.flow.Cancel()
		return m, nil

	case copyExpiredMsg:
		var cmd tea.Cmd
		m.browser, cmd = m.browser.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.routeToFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, defaultKeymap.quit) {
		return m, tea.Quit
	}

	// While the dialog is up it owns the keyboard.
	if m.flow.DialogOpen() {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, defaultKeymap.tab):
		m.switchFocus()
		return m, nil

	case key.Matches(msg, defaultKeymap.refresh):
		return m, m.fetchPrompts()
	}

	return m.routeToFocused(msg)
}

func (m Model) routeToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.focus == focusInput {
		// Ignore further suggest requests while one is in flight; the
		// controller rejects them, so skip the trigger entirely.
		if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, defaultKeymap.suggest) && m.busy() {
			return m, nil
		}
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	m.browser, cmd = m.browser.Update(msg)
	return m, cmd
}

func (m *Model) switchFocus() {
	if m.focus == focusInput {
		m.focus = focusBrowser
		m.input.Blur()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

func (m Model) busy() bool {
	return m.flow.Phase() == workflow.PhaseSuggesting || m.flow.Phase() == workflow.PhaseSaving
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.failed = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.failed = true
}

// Commands

func (m Model) fetchPrompts() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		prompts, err := client.ListPrompts(context.Background())
		if err != nil {
			return listFailedMsg{err: err}
		}
		return promptsLoadedMsg{prompts: prompts}
	}
}

func (m Model) requestSuggestion(content string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		suggestion, err := client.Categorize(context.Background(), content)
		if err != nil {
			return suggestFailedMsg{err: err}
		}
		return suggestionMsg{suggestion: *suggestion}
	}
}

func (m Model) savePrompt(req api.CreatePromptRequest) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		created, err := client.CreatePrompt(context.Background(), req)
		if err != nil {
			return saveFailedMsg{err: err}
		}
		return promptSavedMsg{prompt: *created}
	}
}

// View

func (m Model) View() string {
	if m.layout.Width == 0 {
		return "loading..."
	}

	header := headerStyle.Render("promptdeck") + " " +
		statusBarStyle.Render(m.client.BaseURL())

	inputStyle := inactiveStyle
	browserStyle := inactiveStyle
	if m.focus == focusInput {
		inputStyle = activeStyle
	} else {
		browserStyle = activeStyle
	}

	inputPanel := inputStyle.Width(m.layout.PanelWidth).Render(m.input.View())

	var browserPanel string
	if m.flow.DialogOpen() {
		browserPanel = browserStyle.Width(m.layout.PanelWidth).
			Render(m.dialog.Overlay(m.layout.PanelWidth-2, m.layout.BrowserHeight))
	} else {
		browserPanel = browserStyle.Width(m.layout.PanelWidth).Render(m.browser.View())
	}

	hm, _ := m.layout.Margins()

	return lipgloss.NewStyle().Margin(0, hm).Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			inputPanel,
			m.statusLine(),
			browserPanel,
		),
	)
}

func (m Model) statusLine() string {
	if m.busy() {
		verb := "requesting suggestion"
		if m.flow.Phase() == workflow.PhaseSaving {
			verb = "saving"
		}
		return statusBarStyle.Render(m.spinner.View() + " " + verb + "...")
	}

	if m.status == "" {
		return statusBarStyle.Render("ctrl+s suggest · tab focus · ctrl+r refresh · enter expand · c copy · ctrl+c quit")
	}

	if m.failed {
		return statusBarStyle.Render(errorStyle.Render(m.status))
	}
	return statusBarStyle.Render(m.status)
}
