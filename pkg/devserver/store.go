package devserver

import (
	"sync"
	"time"

	"github.com/promptdeck/promptdeck/pkg/prompt"
)

const titleLimit = 30

/*
Store is an in-memory stand-in for the backend's prompt table. It assigns
ids, timestamps and the server-derived title, and lists prompts newest
first, matching the real backend's ordering.
*/
type Store struct {
	mu      sync.Mutex
	prompts []prompt.Prompt
	nextID  int
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

// Insert stores a confirmed prompt and returns it as persisted.
func (s *Store) Insert(category, content, summary string) prompt.Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := prompt.Prompt{
		ID:        s.nextID,
		Title:     truncate(content, titleLimit),
		Category:  category,
		Content:   content,
		Summary:   summary,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	s.nextID++
	s.prompts = append(s.prompts, p)
	return p
}

// List returns all prompts, newest first.
func (s *Store) List() []prompt.Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]prompt.Prompt, len(s.prompts))
	for i, p := range s.prompts {
		out[len(s.prompts)-1-i] = p
	}
	return out
}

// Categories returns the distinct non-empty categories in insertion order.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	var cats []string

	for _, p := range s.prompts {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		cats = append(cats, p.Category)
	}

	return cats
}
