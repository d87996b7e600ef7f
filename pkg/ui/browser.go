package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/promptdeck/promptdeck/pkg/prompt"
)

// copyIndicatorTTL is how long the copied marker stays up after the most
// recent copy action.
const copyIndicatorTTL = 2 * time.Second

// browserRow is one navigable line of the browser: either a group header or
// a prompt card within an expanded group.
type browserRow struct {
	header   bool
	category string
	prompt   prompt.Prompt
}

/*
Browser displays the saved prompts grouped by category. Groups and cards are
independently collapsible and default to collapsed; the group of a freshly
created prompt is forced open. The grouping itself is recomputed from the
flat list on every change, never stored.
*/
type Browser struct {
	viewport   viewport.Model
	prompts    []prompt.Prompt
	openGroups map[string]bool
	openCards  map[int]bool
	cursor     int
	copiedID   int
	copySeq    int
}

func NewBrowser() Browser {
	return Browser{
		viewport:   viewport.New(0, 0),
		openGroups: map[string]bool{},
		openCards:  map[int]bool{},
	}
}

func (b *Browser) SetSize(w, h int) {
	b.viewport.Width = w
	b.viewport.Height = h
	b.refresh()
}

// SetPrompts replaces the whole list, as after a fetch.
func (b *Browser) SetPrompts(prompts []prompt.Prompt) {
	b.prompts = prompts
	b.cursor = 0
	b.refresh()
}

// PrependPrompt splices a just-created prompt in at the head and forces its
// group open so the new entry is visible immediately.
func (b *Browser) PrependPrompt(p prompt.Prompt) {
	b.prompts = prompt.Prepend(b.prompts, p)
	b.openGroups[p.DisplayCategory()] = true
	b.refresh()
}

// Prompts returns the flat list currently displayed.
func (b Browser) Prompts() []prompt.Prompt { return b.prompts }

// GroupOpen reports whether the given category group is expanded.
func (b Browser) GroupOpen(category string) bool { return b.openGroups[category] }

// rows flattens the grouped view into the currently visible rows.
func (b Browser) rows() []browserRow {
	var rows []browserRow

	for _, g := range prompt.GroupByCategory(b.prompts) {
		rows = append(rows, browserRow{header: true, category: g.Category})
		if !b.openGroups[g.Category] {
			continue
		}
		for _, p := range g.Prompts {
			rows = append(rows, browserRow{category: g.Category, prompt: p})
		}
	}

	return rows
}

func (b Browser) Init() tea.Cmd { return nil }

func (b Browser) Update(msg tea.Msg) (Browser, tea.Cmd) {
	switch m := msg.(type) {
	case copyExpiredMsg:
		// Only the timer of the most recent copy clears the marker; stale
		// timers from earlier copies are ignored.
		if m.seq == b.copySeq {
			b.copiedID = 0
			b.refresh()
		}
		return b, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(m, defaultKeymap.up):
			if b.cursor > 0 {
				b.cursor--
			}
			b.refresh()
			return b, nil

		case key.Matches(m, defaultKeymap.down):
			if b.cursor < len(b.rows())-1 {
				b.cursor++
			}
			b.refresh()
			return b, nil

		case key.Matches(m, defaultKeymap.enter):
			b.toggle()
			b.refresh()
			return b, nil

		case key.Matches(m, defaultKeymap.copy):
			return b.copyCurrent()
		}
	}

	var cmd tea.Cmd
	b.viewport, cmd = b.viewport.Update(msg)
	return b, cmd
}

// toggle expands or collapses the group or card under the cursor.
func (b *Browser) toggle() {
	rows := b.rows()
	if b.cursor >= len(rows) {
		return
	}

	row := rows[b.cursor]
	if row.header {
		b.openGroups[row.category] = !b.openGroups[row.category]
		return
	}
	b.openCards[row.prompt.ID] = !b.openCards[row.prompt.ID]
}

// copyCurrent copies the content of the card under the cursor to the
// clipboard and arms the indicator timer.
func (b Browser) copyCurrent() (Browser, tea.Cmd) {
	rows := b.rows()
	if b.cursor >= len(rows) || rows[b.cursor].header {
		return b, nil
	}

	p := rows[b.cursor].prompt
	if err := clipboard.WriteAll(p.Content); err != nil {
		log.Error("failed to copy to clipboard", "error", err)
		return b, nil
	}

	return b.markCopied(p.ID)
}

// markCopied shows the copied indicator on the given prompt and schedules
// its expiry. Each copy bumps the sequence so a later copy restarts the
// window instead of inheriting the old timer.
func (b Browser) markCopied(id int) (Browser, tea.Cmd) {
	b.copiedID = id
	b.copySeq++
	seq := b.copySeq
	b.refresh()

	return b, tea.Tick(copyIndicatorTTL, func(time.Time) tea.Msg {
		return copyExpiredMsg{seq: seq}
	})
}

func (b *Browser) refresh() {
	content, cursorLine := b.render()
	b.viewport.SetContent(content)
	b.scrollTo(cursorLine)
}

// render builds the full browser text and reports which line the cursor
// row starts on.
func (b Browser) render() (string, int) {
	rows := b.rows()
	if len(rows) == 0 {
		return statusBarStyle.Render("No prompts saved yet."), 0
	}

	var lines []string
	cursorLine := 0

	for i, row := range rows {
		if i == b.cursor {
			cursorLine = len(lines)
		}
		lines = append(lines, b.renderRow(row, i == b.cursor)...)
	}

	return strings.Join(lines, "\n"), cursorLine
}

func (b Browser) renderRow(row browserRow, selected bool) []string {
	prefix := "  "
	if selected {
		prefix = cursorStyle.Render("> ")
	}

	if row.header {
		chevron := "▸"
		if b.openGroups[row.category] {
			chevron = "▾"
		}
		count := 0
		for _, p := range b.prompts {
			if p.DisplayCategory() == row.category {
				count++
			}
		}
		header := groupHeaderStyle.Render(fmt.Sprintf("%s %s (%d)", chevron, row.category, count))
		return []string{prefix + header}
	}

	p := row.prompt
	title := p.Title
	if title == "" {
		title = p.Summary
	}

	head := prefix + "  " + cardTitleStyle.Render(title)
	if b.copiedID == p.ID {
		head += " " + copiedStyle.Render("✓ copied")
	}

	lines := []string{head, "     " + summaryStyle.Render(p.Summary)}

	if b.openCards[p.ID] {
		for _, l := range strings.Split(p.Content, "\n") {
			lines = append(lines, "     "+l)
		}
		meta := p.CreatedAt
		if p.Tags != "" {
			meta += "  [" + p.Tags + "]"
		}
		if meta != "" {
			lines = append(lines, "     "+cardMetaStyle.Render(meta))
		}
	}

	return lines
}

// scrollTo keeps the cursor row inside the viewport.
func (b *Browser) scrollTo(line int) {
	if b.viewport.Height <= 0 {
		return
	}
	if line < b.viewport.YOffset {
		b.viewport.SetYOffset(line)
	} else if line >= b.viewport.YOffset+b.viewport.Height {
		b.viewport.SetYOffset(line - b.viewport.Height + 1)
	}
}

func (b Browser) View() string { return b.viewport.View() }
