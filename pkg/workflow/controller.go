package workflow

import (
	"github.com/cohesivestack/valgo"
	"github.com/promptdeck/promptdeck/pkg/api"
	"github.com/promptdeck/promptdeck/pkg/prompt"
)

/*
Phase identifies where the two-step creation flow currently is. Representing
the flow as a single tagged state instead of independent booleans makes the
contradictory combinations (saving while suggesting, dialog open without a
suggestion) unrepresentable.
*/
type Phase string

const (
	// PhaseIdle means no request is in flight and no suggestion is pending.
	PhaseIdle Phase = "idle"
	// PhaseSuggesting means a categorize request is in flight.
	PhaseSuggesting Phase = "suggesting"
	// PhaseAwaitingConfirmation means a suggestion arrived and the dialog is
	// open for the user to confirm or override a category.
	PhaseAwaitingConfirmation Phase = "awaiting-confirmation"
	// PhaseSaving means a save request is in flight with the dialog still
	// open.
	PhaseSaving Phase = "saving"
)

// ValidationError is a user-facing input error caught before any network
// call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

/*
Controller drives the create flow: request a suggestion, let the user pick a
category, save. It owns the draft content, the pending suggestion and the
last surfaced error. Network calls happen outside the controller and report
back through the Apply/Fail/Complete methods, so the type stays free of
transport concerns and every transition is synchronous and testable.
*/
type Controller struct {
	phase      Phase
	content    string
	suggestion *prompt.Suggestion
	err        error
}

func NewController() *Controller {
	return &Controller{phase: PhaseIdle}
}

func (c *Controller) Phase() Phase { return c.phase }

// Content returns the draft content the flow currently holds.
func (c *Controller) Content() string { return c.content }

// Suggestion returns the pending suggestion. It is non-nil exactly in the
// AwaitingConfirmation and Saving phases.
func (c *Controller) Suggestion() *prompt.Suggestion { return c.suggestion }

// Err returns the last surfaced error, cleared when a new request starts.
func (c *Controller) Err() error { return c.err }

// DialogOpen reports whether the confirmation dialog should be visible.
func (c *Controller) DialogOpen() bool {
	return c.phase == PhaseAwaitingConfirmation || c.phase == PhaseSaving
}

/*
StartSuggestion validates the draft and enters the Suggesting phase. A blank
draft or an already running request is rejected with a ValidationError and
no transition, so no network call should follow.
*/
func (c *Controller) StartSuggestion(content string) error {
	if c.phase != PhaseIdle {
		return &ValidationError{Message: "a request is already in flight"}
	}

	if v := valgo.Is(valgo.String(content, "content").Not().Blank()); !v.Valid() {
		return &ValidationError{Message: "enter a prompt before requesting a suggestion"}
	}

	c.content = content
	c.err = nil
	c.phase = PhaseSuggesting
	return nil
}

// ApplySuggestion records the suggestion returned by the backend and opens
// the confirmation step.
func (c *Controller) ApplySuggestion(s prompt.Suggestion) {
	if c.phase != PhaseSuggesting {
		return
	}

	c.suggestion = &s
	c.phase = PhaseAwaitingConfirmation
}

// FailSuggestion surfaces a suggestion failure and returns to Idle. The
// draft content is kept so the user can edit and retry.
func (c *Controller) FailSuggestion(err error) {
	if c.phase != PhaseSuggesting {
		return
	}

	c.err = err
	c.phase = PhaseIdle
}

/*
StartSave validates the confirmed category and enters the Saving phase,
returning the payload for the persistence endpoint. Without a pending
suggestion the call is a no-op, and a blank category is rejected with a
ValidationError.
*/
func (c *Controller) StartSave(category string) (api.CreatePromptRequest, error) {
	if c.phase != PhaseAwaitingConfirmation || c.suggestion == nil {
		return api.CreatePromptRequest{}, &ValidationError{Message: "no suggestion to confirm"}
	}

	if v := valgo.Is(valgo.String(category, "category").Not().Blank()); !v.Valid() {
		return api.CreatePromptRequest{}, &ValidationError{Message: "choose or enter a category"}
	}

	c.err = nil
	c.phase = PhaseSaving

	return api.CreatePromptRequest{
		Category: category,
		Content:  c.content,
		Summary:  c.suggestion.Summary,
	}, nil
}

// CompleteSave finishes a successful save: the draft and the suggestion are
// discarded and the flow returns to Idle.
func (c *Controller) CompleteSave() {
	if c.phase != PhaseSaving {
		return
	}

	c.content = ""
	c.suggestion = nil
	c.err = nil
	c.phase = PhaseIdle
}

// FailSave surfaces a save failure and reopens the confirmation step so the
// user can retry with the same or another category, or cancel.
func (c *Controller) FailSave(err error) {
	if c.phase != PhaseSaving {
		return
	}

	c.err = err
	c.phase = PhaseAwaitingConfirmation
}

// Cancel discards the pending suggestion without a network call. The draft
// content survives so the user can edit and request a new suggestion.
func (c *Controller) Cancel() {
	if c.phase != PhaseAwaitingConfirmation {
		return
	}

	c.suggestion = nil
	c.phase = PhaseIdle
}
