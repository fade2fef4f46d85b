// Package lang guesses a document's language from a fixed set of short,
// high-frequency function words per supported language.
package lang

import "strings"

// Default is returned when no language scores above zero.
const Default = "portugues"

// priority fixes the tie-break order so detection is deterministic.
var priority = []string{"portugues", "ingles", "espanhol"}

var indicators = map[string]map[string]struct{}{
	"portugues": set("de", "da", "do", "em", "um", "uma", "para", "com", "não",
		"que", "se", "por", "mais", "as", "dos", "como", "mas", "foi", "ele", "das"),
	"ingles": set("the", "and", "of", "to", "a", "in", "is", "it", "you",
		"that", "he", "was", "for", "on", "are", "as", "with", "his", "they", "at"),
	"espanhol": set("de", "la", "el", "en", "y", "a", "los", "se", "del",
		"las", "un", "por", "con", "no", "una", "su", "para", "es", "al", "lo"),
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// Supported lists the detectable languages in tie-break priority order.
func Supported() []string {
	out := make([]string, len(priority))
	copy(out, priority)
	return out
}

// Detect scores the text against each language's indicator set and returns
// the best match. Score is the number of distinct indicator words present in
// the whitespace-split, lowercased input. Ties, including the all-zero case,
// resolve to the earliest language in priority order, so identical input
// always yields the same answer.
func Detect(text string) string {
	words := map[string]struct{}{}
	for _, w := range strings.Fields(strings.ToLower(text)) {
		words[w] = struct{}{}
	}

	best, bestScore := Default, -1
	for _, language := range priority {
		score := 0
		for w := range indicators[language] {
			if _, ok := words[w]; ok {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = language, score
		}
	}
	return best
}
