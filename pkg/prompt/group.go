package prompt

// Uncategorized is the group label used for prompts without a category.
const Uncategorized = "未分類"

// Group is a single category bucket in display order.
type Group struct {
	Category string
	Prompts  []Prompt
}

// Groups is an ordered partition of a prompt list by category. It is derived
// from the flat list each time it is needed, never stored.
type Groups []Group

/*
GroupByCategory folds prompts into category buckets. The fold is stable:
groups appear in first-encounter order, and prompts keep the order of the
input slice within their bucket. An empty category maps to Uncategorized.
*/
func GroupByCategory(prompts []Prompt) Groups {
	var groups Groups
	index := make(map[string]int, len(prompts))

	for _, p := range prompts {
		cat := p.DisplayCategory()

		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, Group{Category: cat})
		}

		groups[i].Prompts = append(groups[i].Prompts, p)
	}

	return groups
}

// Prepend returns a new slice with p at the head, used to splice a freshly
// created prompt into the displayed list without a re-fetch.
func Prepend(prompts []Prompt, p Prompt) []Prompt {
	out := make([]Prompt, 0, len(prompts)+1)
	out = append(out, p)
	return append(out, prompts...)
}
