package extract

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"

	"github.com/rmaltez/docfreq/internal/source"
)

// NativePDF reads PDFs in-process with github.com/ledongthuc/pdf. It is the
// highest-priority local backend and is always available.
type NativePDF struct{}

func (*NativePDF) Name() string { return "pdf-native" }

func (*NativePDF) Available() bool { return true }

// open creates a reader, attempting a single empty-password unlock when the
// file is encrypted. A password-protected document fails here and the chain
// moves on.
func (*NativePDF) open(f *os.File, size int64) (*pdf.Reader, error) {
	r, err := pdf.NewReader(f, size)
	if err == nil {
		return r, nil
	}
	r, encErr := pdf.NewReaderEncrypted(f, size, func() string { return "" })
	if encErr != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return r, nil
}

func (b *NativePDF) ExtractText(ctx context.Context, locator string) (string, error) {
	f, err := os.Open(locator)
	if err != nil {
		return "", err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return "", err
	}
	r, err := b.open(f, st.Size())
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			log.Warn().Err(err).Int("page", i).Str("file", locator).Msg("page extraction failed")
			continue
		}
		sb.WriteString(text)
		sb.WriteString(" ")
	}
	return collapseSpaces(sb.String()), nil
}

func (b *NativePDF) ExtractMetadata(ctx context.Context, locator string, info *source.Info) error {
	f, err := os.Open(locator)
	if err != nil {
		return err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return err
	}

	// The document version lives in the file header, not the trailer.
	header := make([]byte, 8)
	if n, _ := f.ReadAt(header, 0); n >= 8 && strings.HasPrefix(string(header), "%PDF-") {
		info.Version = strings.TrimSpace(string(header[5:8]))
	}

	r, err := b.open(f, st.Size())
	if err != nil {
		return err
	}
	info.Pages = strconv.Itoa(r.NumPage())

	trailer := r.Trailer()
	if enc := trailer.Key("Encrypt"); !enc.IsNull() {
		info.Encrypted = "yes"
	} else {
		info.Encrypted = "no"
	}

	dict := trailer.Key("Info")
	if dict.IsNull() {
		return nil
	}
	for key, field := range map[string]string{
		"Title":        "title",
		"Author":       "author",
		"Subject":      "subject",
		"Creator":      "creator",
		"Producer":     "producer",
		"CreationDate": "created",
		"ModDate":      "modified",
	} {
		v := dict.Key(key)
		if v.Kind() != pdf.String {
			continue
		}
		if s := strings.TrimSpace(v.RawString()); s != "" {
			info.Meta[field] = s
		}
	}
	return nil
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
