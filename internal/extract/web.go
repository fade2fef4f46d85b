package extract

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/rmaltez/docfreq/internal/fetch"
	"github.com/rmaltez/docfreq/internal/source"
)

// WebPage fetches a remote page and extracts its visible text and metadata.
// It is the only backend in the remote-page chain.
type WebPage struct {
	Client *fetch.Client
}

func (w *WebPage) Name() string { return "web" }

func (w *WebPage) Available() bool { return w.Client != nil }

func (w *WebPage) ExtractText(ctx context.Context, locator string) (string, error) {
	page, err := w.Client.Get(ctx, locator)
	if err != nil {
		return "", err
	}
	return VisibleText(page.Body), nil
}

// ExtractMetadata fetches the page again on its own shorter budget; metadata
// retrieval is independent of content extraction and may succeed or fail on
// its own.
func (w *WebPage) ExtractMetadata(ctx context.Context, locator string, info *source.Info) error {
	page, err := w.Client.Get(ctx, locator)
	if err != nil {
		return err
	}

	info.URL = locator
	info.SizeBytes = int64(len(page.Body))
	info.Accessed = source.Now().Format(source.TimeFormat)
	info.StatusCode = strconv.Itoa(page.StatusCode)
	if page.ContentType != "" {
		info.ContentType = page.ContentType
	}
	if page.Encoding != "" {
		info.Encoding = page.Encoding
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Body))
	if err != nil {
		// Transport facts above are still valid; only the markup was bad.
		return nil
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		info.Title = title
	}
	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		name, ok := sel.Attr("name")
		if !ok || name == "" {
			name, _ = sel.Attr("property")
		}
		content, _ := sel.Attr("content")
		if name != "" && content != "" {
			info.Meta[name] = content
		}
	})
	return nil
}
