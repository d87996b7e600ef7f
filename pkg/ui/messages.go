package ui

import "github.com/promptdeck/promptdeck/pkg/prompt"

// Message types for internal events
type promptsLoadedMsg struct{ prompts []prompt.Prompt }
type listFailedMsg struct{ err error }
type suggestionMsg struct{ suggestion prompt.Suggestion }
type suggestFailedMsg struct{ err error }
type promptSavedMsg struct{ prompt prompt.Prompt }
type saveFailedMsg struct{ err error }
type copyExpiredMsg struct{ seq int }

// SuggestRequestedMsg is emitted by the input area when the user asks for a
// category suggestion for the current draft.
type SuggestRequestedMsg struct{ Content string }

// CategoryConfirmedMsg is emitted by the dialog when the user confirms a
// non-blank category. Category holds the exact string the user chose.
type CategoryConfirmedMsg struct{ Category string }

// DialogCancelledMsg is emitted by the dialog when the user dismisses it
// without saving.
type DialogCancelledMsg struct{}
