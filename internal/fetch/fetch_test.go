package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/encoding/charmap"
)

func TestGet_BasicPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua == "" {
			t.Errorf("expected a user agent header")
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>olá</body></html>"))
	}))
	defer srv.Close()

	c := &Client{Timeout: 5 * time.Second}
	page, err := c.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", page.StatusCode)
	}
	if page.Encoding != "utf-8" {
		t.Fatalf("expected utf-8 encoding, got %q", page.Encoding)
	}
	if !strings.Contains(string(page.Body), "olá") {
		t.Fatalf("expected body content")
	}
}

func TestGet_DecodesDeclaredCharset(t *testing.T) {
	latin1, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte("ação"))
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		_, _ = w.Write(latin1)
	}))
	defer srv.Close()

	c := &Client{Timeout: 5 * time.Second}
	page, err := c.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(page.Body); got != "ação" {
		t.Fatalf("expected decoded UTF-8 body, got %q", got)
	}
	if page.Encoding != "iso-8859-1" {
		t.Fatalf("expected reported charset, got %q", page.Encoding)
	}
}

func TestGet_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	c := &Client{Timeout: 5 * time.Second}
	page, err := c.Get(context.Background(), srv.URL)
	if err == nil {
		t.Fatalf("expected error for 404")
	}
	if page.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status to be reported, got %d", page.StatusCode)
	}
}

func TestGet_TimeoutIsAFailureNotARetry(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := &Client{Timeout: 50 * time.Millisecond}
	if _, err := c.Get(context.Background(), srv.URL); err == nil {
		t.Fatalf("expected timeout error")
	}
	if hits != 1 {
		t.Fatalf("expected exactly one attempt, got %d", hits)
	}
}

func TestGet_RejectsNonHTTPScheme(t *testing.T) {
	c := &Client{}
	if _, err := c.Get(context.Background(), "ftp://example.com/x"); err == nil {
		t.Fatalf("expected scheme rejection")
	}
}
