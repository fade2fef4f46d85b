package token

import (
	"reflect"
	"testing"
)

func stopSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func TestTokenize_StopWordsAndShortTokens(t *testing.T) {
	got := Tokenize("The cat is black The dog is brown", stopSet("the", "is"))
	want := []string{"cat", "black", "dog", "brown"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenize_StripsPunctuation(t *testing.T) {
	got := Tokenize("Hello, world! (testing... punctuation-removal)", stopSet())
	want := []string{"hello", "world", "testing", "punctuationremoval"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenize_PreservesUnicodeLetters(t *testing.T) {
	got := Tokenize("Análise de conteúdo: informação útil!", stopSet("de"))
	want := []string{"análise", "conteúdo", "informação", "útil"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenize_LengthIsCountedInRunes(t *testing.T) {
	// "útil" is four runes but five bytes; it must survive the length filter.
	got := Tokenize("útil ém", stopSet())
	want := []string{"útil"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenize_Deterministic(t *testing.T) {
	stop := stopSet("the")
	text := "The rain in Spain stays mainly in the plain"
	first := Tokenize(text, stop)
	for i := 0; i < 20; i++ {
		if got := Tokenize(text, stop); !reflect.DeepEqual(got, first) {
			t.Fatalf("tokenization not deterministic: %v vs %v", got, first)
		}
	}
}

func TestTokenize_EveryTokenPassesFilters(t *testing.T) {
	stop := stopSet("para", "com", "the")
	tokens := Tokenize("Para cada palavra com mais de dois caracteres, the test keeps it", stop)
	for _, tok := range tokens {
		if len([]rune(tok)) <= MinLength {
			t.Fatalf("token %q too short", tok)
		}
		if _, ok := stop[tok]; ok {
			t.Fatalf("stop word %q leaked through", tok)
		}
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	if got := Tokenize("", stopSet()); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
	if got := Tokenize("!!! ... ---", stopSet()); len(got) != 0 {
		t.Fatalf("expected no tokens from punctuation, got %v", got)
	}
}
