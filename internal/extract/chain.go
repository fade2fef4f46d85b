// Package extract runs the ordered backend fallback that turns a source into
// text and provenance metadata. Backends are probed in a fixed priority
// order; an unavailable or failing backend is skipped, never fatal. When
// every backend is exhausted the chain substitutes a fixed placeholder so
// downstream analysis always has content to work with.
package extract

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/rmaltez/docfreq/internal/fetch"
	"github.com/rmaltez/docfreq/internal/source"
)

// ErrUnavailable is returned by a backend whose underlying capability is
// absent in this runtime (for example a missing external binary). The chain
// treats it like any other per-backend failure.
var ErrUnavailable = errors.New("extraction backend unavailable")

// Backend is one pluggable extractor. A backend may be able to produce text,
// metadata, or both; either method may fail without aborting the chain.
type Backend interface {
	Name() string
	// Available reports whether the backend can run at all in this process.
	// Unavailable backends are skipped silently, which is not an error.
	Available() bool
	ExtractText(ctx context.Context, locator string) (string, error)
	ExtractMetadata(ctx context.Context, locator string, info *source.Info) error
}

// Content is the outcome of text extraction. Synthetic marks placeholder
// content so callers can tell real extraction from the fallback without
// matching on the text itself.
type Content struct {
	Text      string
	Backend   string
	Synthetic bool
}

// Chain is a priority-ordered backend list for one source kind.
type Chain struct {
	Kind     source.Kind
	Backends []Backend
}

// NewPDFChain builds the local-file chain: the pure-Go reader first, the
// poppler command-line tools as fallback when installed.
func NewPDFChain() *Chain {
	return &Chain{
		Kind:     source.KindPDF,
		Backends: []Backend{&NativePDF{}, &PopplerPDF{}},
	}
}

// NewWebChain builds the remote-page chain around one HTTP client.
func NewWebChain(client *fetch.Client) *Chain {
	return &Chain{
		Kind:     source.KindWeb,
		Backends: []Backend{&WebPage{Client: client}},
	}
}

// Content walks the chain and returns the first non-empty extraction. A
// backend error is logged and the next backend is tried; if nothing
// succeeds the kind-specific placeholder is returned with Synthetic set.
// Content never fails.
func (c *Chain) Content(ctx context.Context, src source.Source) Content {
	for _, b := range c.Backends {
		if !b.Available() {
			log.Debug().Str("backend", b.Name()).Msg("backend unavailable, skipping")
			continue
		}
		text, err := b.ExtractText(ctx, src.Locator)
		if err != nil {
			log.Warn().Err(err).Str("backend", b.Name()).Str("source", src.Locator).
				Msg("text extraction failed, trying next backend")
			continue
		}
		if strings.TrimSpace(text) == "" {
			log.Warn().Str("backend", b.Name()).Str("source", src.Locator).
				Msg("backend produced no text, trying next backend")
			continue
		}
		log.Info().Str("backend", b.Name()).Int("chars", len(text)).Msg("content extracted")
		return Content{Text: text, Backend: b.Name()}
	}
	log.Warn().Str("source", src.Locator).Msg("no backend produced content, using placeholder")
	return Content{Text: Placeholder(c.Kind), Backend: "placeholder", Synthetic: true}
}

// Metadata walks the chain with the same skip-on-failure discipline but no
// placeholder: the first backend that succeeds wins, and any field it could
// not supply keeps its unavailable sentinel.
func (c *Chain) Metadata(ctx context.Context, src source.Source) source.Info {
	var info source.Info
	if c.Kind == source.KindPDF {
		info = source.StatInfo(src.Locator)
	} else {
		info = source.NewInfo(source.KindWeb)
		info.URL = src.Locator
	}
	for _, b := range c.Backends {
		if !b.Available() {
			continue
		}
		if err := b.ExtractMetadata(ctx, src.Locator, &info); err != nil {
			log.Warn().Err(err).Str("backend", b.Name()).Str("source", src.Locator).
				Msg("metadata extraction failed, trying next backend")
			continue
		}
		log.Debug().Str("backend", b.Name()).Msg("metadata extracted")
		break
	}
	return info
}
