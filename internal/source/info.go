package source

import (
	"os"
	"path/filepath"
	"time"
)

// Unavailable marks a provenance field no backend could supply. Fields are
// never silently zeroed: readers can always tell "absent" from "empty".
const Unavailable = "unavailable"

// TimeFormat is used for the modified/accessed timestamps in Info.
const TimeFormat = "02/01/2006 15:04:05"

// Info is the provenance record for one source. It is populated once during
// ingestion and read-only afterwards. String fields start at Unavailable;
// SizeBytes is inherently a size and starts at zero.
type Info struct {
	Kind Kind

	// Local files.
	Name     string
	Path     string
	Modified string
	Pages    string
	Version  string
	// Encrypted is "yes"/"no" once a backend has answered, Unavailable before.
	Encrypted string

	// Remote pages.
	URL         string
	Title       string
	Accessed    string
	StatusCode  string
	ContentType string
	Encoding    string

	SizeBytes int64

	// Meta holds document metadata such as author and creation date.
	Meta map[string]string
}

// NewInfo returns an Info with every sentinel-bearing field initialized.
func NewInfo(kind Kind) Info {
	return Info{
		Kind:        kind,
		Name:        Unavailable,
		Path:        Unavailable,
		Modified:    Unavailable,
		Pages:       Unavailable,
		Version:     Unavailable,
		Encrypted:   Unavailable,
		URL:         Unavailable,
		Title:       Unavailable,
		Accessed:    Unavailable,
		StatusCode:  Unavailable,
		ContentType: Unavailable,
		Encoding:    Unavailable,
		Meta:        map[string]string{},
	}
}

// StatInfo builds the baseline Info for a local file from the filesystem
// alone, before any extraction backend runs.
func StatInfo(path string) Info {
	info := NewInfo(KindPDF)
	info.Name = filepath.Base(path)
	info.Path = path
	if st, err := os.Stat(path); err == nil {
		info.SizeBytes = st.Size()
		info.Modified = st.ModTime().Format(TimeFormat)
	}
	return info
}

// Now is swapped in tests to pin the accessed timestamp.
var Now = time.Now
