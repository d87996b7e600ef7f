package ui

import (
	"testing"

	"github.com/promptdeck/promptdeck/pkg/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserPrependForcesGroupOpen(t *testing.T) {
	b := NewBrowser()
	b.SetPrompts([]prompt.Prompt{{ID: 1, Category: "Coding"}})
	require.False(t, b.GroupOpen("Coding"))

	b.PrependPrompt(prompt.Prompt{ID: 2, Category: "Coding"})

	assert.True(t, b.GroupOpen("Coding"))
	require.Len(t, b.Prompts(), 2)
	assert.Equal(t, 2, b.Prompts()[0].ID)

	groups := prompt.GroupByCategory(b.Prompts())
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Prompts, 2)
	assert.Equal(t, 2, groups[0].Prompts[0].ID)
}

func TestBrowserPrependUncategorized(t *testing.T) {
	b := NewBrowser()

	b.PrependPrompt(prompt.Prompt{ID: 1})

	assert.True(t, b.GroupOpen(prompt.Uncategorized))
}

func TestBrowserRowsFollowExpansion(t *testing.T) {
	b := NewBrowser()
	b.SetPrompts([]prompt.Prompt{
		{ID: 1, Category: "A"},
		{ID: 2, Category: "B"},
	})

	// Collapsed: only the two group headers are visible.
	rows := b.rows()
	require.Len(t, rows, 2)
	assert.True(t, rows[0].header)
	assert.True(t, rows[1].header)

	b.openGroups["A"] = true
	rows = b.rows()
	require.Len(t, rows, 3)
	assert.False(t, rows[1].header)
	assert.Equal(t, 1, rows[1].prompt.ID)
}

func TestCopyIndicatorExpiresOnlyForLatestCopy(t *testing.T) {
	b := NewBrowser()
	b.SetPrompts([]prompt.Prompt{{ID: 1, Category: "A"}})

	b, cmd := b.markCopied(1)
	require.NotNil(t, cmd)
	assert.Equal(t, 1, b.copiedID)
	firstSeq := b.copySeq

	// A second copy supersedes the first timer.
	b, cmd = b.markCopied(1)
	require.NotNil(t, cmd)

	// The first timer fires and must be ignored.
	b, _ = b.Update(copyExpiredMsg{seq: firstSeq})
	assert.Equal(t, 1, b.copiedID)

	// The second timer fires and clears the indicator.
	b, _ = b.Update(copyExpiredMsg{seq: b.copySeq})
	assert.Equal(t, 0, b.copiedID)
}
