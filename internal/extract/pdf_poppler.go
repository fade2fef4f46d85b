package extract

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rmaltez/docfreq/internal/source"
)

// PopplerPDF shells out to the poppler-utils command-line tools. It is only
// available when the binaries are on PATH, which is exactly the dynamic
// capability probe the chain is built around: absence means skip, not error.
type PopplerPDF struct{}

func (*PopplerPDF) Name() string { return "pdf-poppler" }

func (*PopplerPDF) Available() bool {
	_, err := exec.LookPath("pdftotext")
	return err == nil
}

func (p *PopplerPDF) ExtractText(ctx context.Context, locator string) (string, error) {
	if !p.Available() {
		return "", ErrUnavailable
	}
	// "-" writes to stdout; -upw "" is the single empty-password attempt for
	// encrypted documents.
	cmd := exec.CommandContext(ctx, "pdftotext", "-enc", "UTF-8", "-upw", "", locator, "-")
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("pdftotext: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return collapseSpaces(out.String()), nil
}

func (p *PopplerPDF) ExtractMetadata(ctx context.Context, locator string, info *source.Info) error {
	if _, err := exec.LookPath("pdfinfo"); err != nil {
		return ErrUnavailable
	}
	cmd := exec.CommandContext(ctx, "pdfinfo", "-upw", "", locator)
	out, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("pdfinfo: %w", err)
	}
	parsePDFInfo(string(out), info)
	return nil
}

// parsePDFInfo maps pdfinfo's "Key: value" lines onto the provenance record.
func parsePDFInfo(out string, info *source.Info) {
	for _, line := range strings.Split(out, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		switch strings.TrimSpace(key) {
		case "Pages":
			info.Pages = value
		case "PDF version":
			info.Version = value
		case "Encrypted":
			if strings.HasPrefix(value, "yes") {
				info.Encrypted = "yes"
			} else {
				info.Encrypted = "no"
			}
		case "Title":
			info.Meta["title"] = value
		case "Author":
			info.Meta["author"] = value
		case "Subject":
			info.Meta["subject"] = value
		case "Creator":
			info.Meta["creator"] = value
		case "Producer":
			info.Meta["producer"] = value
		case "CreationDate":
			info.Meta["created"] = value
		case "ModDate":
			info.Meta["modified"] = value
		}
	}
}
