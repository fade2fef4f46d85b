package source

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Extension is the only local document extension the pipeline recognizes.
const Extension = ".pdf"

// ErrInvalidSource reports a locator that cannot be analyzed: a missing or
// non-PDF local file, or a malformed URL.
var ErrInvalidSource = errors.New("invalid source")

// Kind distinguishes the two supported source families.
type Kind string

const (
	KindPDF Kind = "pdf"
	KindWeb Kind = "web"
)

// Source identifies one document to analyze. Kind is decided once by
// Classify and never changes afterwards.
type Source struct {
	Locator string
	Kind    Kind
}

// Classify decides whether a locator names a local PDF or a remote page and
// validates it. The decision order mirrors the ingestion contract: a parseable
// URL with scheme and host is a web page; otherwise a ".pdf" suffix or an
// existing filesystem entry means a local file; anything else is assumed to
// be a web page and must then survive URL validation.
func Classify(locator string) (Source, error) {
	src := Source{Locator: locator, Kind: kindOf(locator)}
	if err := src.validate(); err != nil {
		return Source{}, err
	}
	return src, nil
}

func kindOf(locator string) Kind {
	if u, err := url.Parse(locator); err == nil && u.Scheme != "" && u.Host != "" {
		return KindWeb
	}
	if strings.HasSuffix(strings.ToLower(locator), Extension) {
		return KindPDF
	}
	if _, err := os.Stat(locator); err == nil {
		return KindPDF
	}
	return KindWeb
}

func (s Source) validate() error {
	switch s.Kind {
	case KindPDF:
		if _, err := os.Stat(s.Locator); err != nil {
			return fmt.Errorf("%w: file not found: %s", ErrInvalidSource, s.Locator)
		}
		if !strings.HasSuffix(strings.ToLower(s.Locator), Extension) {
			return fmt.Errorf("%w: not a %s file: %s", ErrInvalidSource, Extension, s.Locator)
		}
	case KindWeb:
		u, err := url.Parse(s.Locator)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: malformed URL: %s", ErrInvalidSource, s.Locator)
		}
	}
	return nil
}
