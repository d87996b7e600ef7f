package prompt

/*
Prompt is a saved text snippet together with the metadata the backend derives
for it. The backend owns every field: ids and timestamps are assigned on
insert, and title/tags are generated server-side, so a client never fills
them in.
*/
type Prompt struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Content   string `json:"content"`
	Summary   string `json:"summary"`
	Tags      string `json:"tags"`
	CreatedAt string `json:"created_at"`
}

/*
Suggestion is the ephemeral output of the categorize endpoint: a one-line
summary plus candidate categories, pending user confirmation. It lives only
between a suggestion request and the final save or cancel.
*/
type Suggestion struct {
	Summary             string   `json:"summary"`
	SuggestedCategories []string `json:"suggested_categories"`
}

// DisplayCategory returns the group label for p, substituting the
// Uncategorized sentinel when the category is empty.
func (p Prompt) DisplayCategory() string {
	if p.Category == "" {
		return Uncategorized
	}
	return p.Category
}
