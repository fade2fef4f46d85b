// Package stopwords holds the per-language noise-word sets used by the
// tokenizer. The sets live in a flat JSON file (language -> sorted word list)
// that is created with defaults on first use and can be amended and saved
// back between runs.
package stopwords

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultFile is the store location when none is configured.
const DefaultFile = "stop_words.json"

// Store is the process-wide stop-word cache. It is constructed once by the
// caller and passed to every tokenization call; nothing in the pipeline
// mutates it.
type Store struct {
	path string
	sets map[string]map[string]struct{}
}

// Load reads the store from path, creating the file with default Portuguese
// and English sets when it does not exist. A corrupt file is replaced by the
// defaults rather than aborting startup.
func Load(path string) (*Store, error) {
	if path == "" {
		path = DefaultFile
	}
	s := &Store{path: path, sets: map[string]map[string]struct{}{}}

	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read stop words: %w", err)
		}
		log.Warn().Str("path", path).Msg("stop-word file missing, creating defaults")
		s.seedDefaults()
		if err := s.Save(); err != nil {
			return nil, err
		}
		return s, nil
	}

	var raw map[string][]string
	if err := json.Unmarshal(b, &raw); err != nil {
		log.Error().Err(err).Str("path", path).Msg("stop-word file unreadable, using defaults")
		s.seedDefaults()
		return s, nil
	}
	for lang, words := range raw {
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[strings.ToLower(w)] = struct{}{}
		}
		s.sets[lang] = set
	}
	log.Info().Int("languages", len(s.sets)).Msg("stop words loaded")
	return s, nil
}

func (s *Store) seedDefaults() {
	for lang, words := range defaultSets {
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[w] = struct{}{}
		}
		s.sets[lang] = set
	}
}

// Words returns the set for a language. Unknown languages yield an empty set
// so tokenization still runs, just without filtering.
func (s *Store) Words(lang string) map[string]struct{} {
	if set, ok := s.sets[lang]; ok {
		return set
	}
	return map[string]struct{}{}
}

// Languages lists the languages currently present, sorted.
func (s *Store) Languages() []string {
	out := make([]string, 0, len(s.sets))
	for lang := range s.sets {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Add appends words to a language's set, creating the language if needed.
func (s *Store) Add(lang string, words ...string) {
	set, ok := s.sets[lang]
	if !ok {
		set = map[string]struct{}{}
		s.sets[lang] = set
	}
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	log.Debug().Str("lang", lang).Int("count", len(words)).Msg("stop words added")
}

// Remove drops words from a language's set. Other languages are untouched.
func (s *Store) Remove(lang string, words ...string) {
	set, ok := s.sets[lang]
	if !ok {
		return
	}
	for _, w := range words {
		delete(set, strings.ToLower(w))
	}
}

// Save rewrites the backing file as language -> sorted word list.
func (s *Store) Save() error {
	out := make(map[string][]string, len(s.sets))
	for lang, set := range s.sets {
		words := make([]string, 0, len(set))
		for w := range set {
			words = append(words, w)
		}
		sort.Strings(words)
		out[lang] = words
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stop words: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write stop words: %w", err)
	}
	log.Info().Str("path", s.path).Msg("stop words saved")
	return nil
}

var defaultSets = map[string][]string{
	"portugues": {
		"a", "o", "e", "é", "de", "do", "da", "em", "um", "para", "com", "não",
		"uma", "os", "no", "se", "na", "por", "mais", "as", "dos", "como",
		"mas", "foi", "ele", "das",
	},
	"ingles": {
		"a", "an", "and", "are", "as", "at", "be", "by", "for", "from", "has",
		"he", "in", "is", "it", "its", "of", "on", "that", "the", "to", "was",
		"will", "with", "i", "me", "my", "myself", "we", "our", "ours",
		"ourselves", "you", "your", "yours", "yourself", "yourselves",
	},
}
