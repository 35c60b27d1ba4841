// Package emotes keeps a name-indexed emote registry and tokenizes
// message text against it.
package emotes

import (
	"sort"
	"strings"
	"sync"

	"github.com/mwielgus/marquee"
)

// Store maps emote names to emotes. Lookups and tokenization take a read
// lock, so rendering many messages concurrently does not serialize;
// updates replace entries wholesale per provider refresh.
type Store struct {
	mu     sync.RWMutex
	byName map[string]*marquee.Emote
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{byName: make(map[string]*marquee.Emote)}
}

// Add registers an emote under its name, replacing any previous entry.
func (s *Store) Add(e *marquee.Emote) {
	if e == nil || e.Name == "" {
		return
	}
	s.mu.Lock()
	s.byName[e.Name] = e
	s.mu.Unlock()
}

// Remove drops the emote registered under name.
func (s *Store) Remove(name string) {
	s.mu.Lock()
	delete(s.byName, name)
	s.mu.Unlock()
}

// Lookup returns the emote registered under name, or nil.
func (s *Store) Lookup(name string) *marquee.Emote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byName[name]
}

// Names returns the registered emote names in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered emotes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byName)
}

// Parse splits text on spaces and replaces each word registered in the
// store with an emote token. Adjacent non-emote words merge back into a
// single text token, separators included, so the text layout sees the
// same runs it would without emotes.
func (s *Store) Parse(text string) []marquee.Token {
	if text == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		tokens []marquee.Token
		plain  strings.Builder
	)
	flush := func() {
		if plain.Len() > 0 {
			tokens = append(tokens, marquee.TextToken{Text: plain.String()})
			plain.Reset()
		}
	}

	prevPlain := false
	for i, word := range strings.Split(text, " ") {
		if e := s.byName[word]; e != nil {
			flush()
			tokens = append(tokens, marquee.EmoteToken{Emote: e})
			prevPlain = false
			continue
		}
		// Consecutive plain words re-join on the space that split them,
		// even when the word itself is empty, so runs of spaces survive.
		if i > 0 && prevPlain {
			plain.WriteByte(' ')
		}
		plain.WriteString(word)
		prevPlain = true
	}
	flush()
	return tokens
}

// Interface compliance check.
var _ marquee.Tokenizer = (*Store)(nil)
