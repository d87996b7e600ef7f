package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(prompts []Prompt) []int {
	out := make([]int, len(prompts))
	for i, p := range prompts {
		out[i] = p.ID
	}
	return out
}

func TestGroupByCategoryIsStable(t *testing.T) {
	prompts := []Prompt{
		{ID: 1, Category: "A"},
		{ID: 2, Category: ""},
		{ID: 3, Category: "A"},
	}

	groups := GroupByCategory(prompts)

	require.Len(t, groups, 2)
	assert.Equal(t, "A", groups[0].Category)
	assert.Equal(t, []int{1, 3}, ids(groups[0].Prompts))
	assert.Equal(t, Uncategorized, groups[1].Category)
	assert.Equal(t, []int{2}, ids(groups[1].Prompts))
}

func TestGroupByCategoryFirstEncounterOrder(t *testing.T) {
	prompts := []Prompt{
		{ID: 1, Category: "翻訳"},
		{ID: 2, Category: "Coding"},
		{ID: 3, Category: "翻訳"},
		{ID: 4, Category: "ライティング"},
	}

	groups := GroupByCategory(prompts)

	require.Len(t, groups, 3)
	assert.Equal(t, "翻訳", groups[0].Category)
	assert.Equal(t, "Coding", groups[1].Category)
	assert.Equal(t, "ライティング", groups[2].Category)
}

func TestGroupByCategoryEmpty(t *testing.T) {
	assert.Empty(t, GroupByCategory(nil))
}

func TestPrepend(t *testing.T) {
	existing := []Prompt{{ID: 1, Category: "Coding"}}

	updated := Prepend(existing, Prompt{ID: 2, Category: "Coding"})

	require.Len(t, updated, 2)
	assert.Equal(t, 2, updated[0].ID)
	assert.Equal(t, 1, updated[1].ID)
	// The original slice is left alone.
	assert.Equal(t, []int{1}, ids(existing))

	groups := GroupByCategory(updated)
	require.Len(t, groups, 1)
	assert.Equal(t, []int{2, 1}, ids(groups[0].Prompts))
}

func TestDisplayCategory(t *testing.T) {
	assert.Equal(t, "Coding", Prompt{Category: "Coding"}.DisplayCategory())
	assert.Equal(t, Uncategorized, Prompt{}.DisplayCategory())
}
