package devserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/promptdeck/promptdeck/pkg/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(t *testing.T, srv *Server, method, path string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	res, err := srv.App().Test(req)
	require.NoError(t, err)
	return res
}

func decodeBody[T any](t *testing.T, res *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return out
}

func TestCategorizeFallsBackToKeywords(t *testing.T) {
	srv := New()

	res := request(t, srv, http.MethodPost, "/categorize", map[string]string{
		"content": "pythonのテストを書いて",
	})

	require.Equal(t, http.StatusOK, res.StatusCode)
	suggestion := decodeBody[prompt.Suggestion](t, res)
	assert.Equal(t, "pythonのテストを書いて", suggestion.Summary)
	assert.Equal(t, []string{"プログラミング", "Python", "開発"}, suggestion.SuggestedCategories)
}

func TestCategorizeTruncatesSummary(t *testing.T) {
	srv := New()
	long := strings.Repeat("あ", 60)

	res := request(t, srv, http.MethodPost, "/categorize", map[string]string{"content": long})

	suggestion := decodeBody[prompt.Suggestion](t, res)
	assert.Equal(t, strings.Repeat("あ", 50)+"...", suggestion.Summary)
}

func TestCategorizeOffersExistingCategories(t *testing.T) {
	srv := New()
	srv.store.Insert("レビュー", "review this", "a review prompt")

	res := request(t, srv, http.MethodPost, "/categorize", map[string]string{"content": "hello"})

	suggestion := decodeBody[prompt.Suggestion](t, res)
	assert.Contains(t, suggestion.SuggestedCategories, "レビュー")
	// Keyword candidates come first.
	assert.Equal(t, "一般", suggestion.SuggestedCategories[0])
}

func TestCreateDerivesServerFields(t *testing.T) {
	srv := New()

	res := request(t, srv, http.MethodPost, "/prompts", map[string]string{
		"category": "Coding",
		"content":  "write a lexer in go",
		"summary":  "lexer prompt",
	})

	require.Equal(t, http.StatusOK, res.StatusCode)
	created := decodeBody[prompt.Prompt](t, res)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "write a lexer in go", created.Title)
	assert.Equal(t, "Coding", created.Category)
	assert.Equal(t, "lexer prompt", created.Summary)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Empty(t, created.Tags)
}

func TestListIsNewestFirst(t *testing.T) {
	srv := New()
	srv.store.Insert("A", "first", "s1")
	srv.store.Insert("B", "second", "s2")

	res := request(t, srv, http.MethodGet, "/prompts", nil)

	require.Equal(t, http.StatusOK, res.StatusCode)
	prompts := decodeBody[[]prompt.Prompt](t, res)
	require.Len(t, prompts, 2)
	assert.Equal(t, 2, prompts[0].ID)
	assert.Equal(t, 1, prompts[1].ID)
}

func TestListEmptyIsAnArray(t *testing.T) {
	srv := New()

	res := request(t, srv, http.MethodGet, "/prompts", nil)

	prompts := decodeBody[[]prompt.Prompt](t, res)
	assert.NotNil(t, prompts)
	assert.Empty(t, prompts)
}

func TestStoreCategoriesAreDistinctInOrder(t *testing.T) {
	s := NewStore()
	s.Insert("A", "one", "")
	s.Insert("", "two", "")
	s.Insert("B", "three", "")
	s.Insert("A", "four", "")

	assert.Equal(t, []string{"A", "B"}, s.Categories())
}
