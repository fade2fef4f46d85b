package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rmaltez/docfreq/internal/fetch"
	"github.com/rmaltez/docfreq/internal/source"
)

const samplePage = `<!doctype html>
<html>
  <head>
    <title>Relatório Anual</title>
    <meta name="description" content="Resumo do relatório">
    <meta property="og:type" content="article">
  </head>
  <body>
    <nav>Início Sobre Contato</nav>
    <p>Conteúdo principal do relatório anual.</p>
    <footer>Rodapé</footer>
  </body>
</html>`

func webServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(samplePage))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestWebPage_ExtractText(t *testing.T) {
	srv := webServer(t)
	backend := &WebPage{Client: &fetch.Client{Timeout: 5 * time.Second}}

	text, err := backend.ExtractText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Conteúdo principal do relatório anual.") {
		t.Fatalf("expected body text, got %q", text)
	}
	if strings.Contains(text, "Rodapé") || strings.Contains(text, "Início Sobre Contato") {
		t.Fatalf("expected nav/footer to be excluded, got %q", text)
	}
}

func TestWebPage_ExtractMetadata(t *testing.T) {
	srv := webServer(t)
	backend := &WebPage{Client: &fetch.Client{Timeout: 5 * time.Second}}

	info := source.NewInfo(source.KindWeb)
	if err := backend.ExtractMetadata(context.Background(), srv.URL, &info); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Title != "Relatório Anual" {
		t.Fatalf("expected page title, got %q", info.Title)
	}
	if info.StatusCode != "200" {
		t.Fatalf("expected status 200, got %q", info.StatusCode)
	}
	if info.SizeBytes == 0 {
		t.Fatalf("expected non-zero size")
	}
	if info.Meta["description"] != "Resumo do relatório" {
		t.Fatalf("expected description meta tag, got %v", info.Meta)
	}
	if info.Meta["og:type"] != "article" {
		t.Fatalf("expected property meta tag, got %v", info.Meta)
	}
	if info.Accessed == source.Unavailable {
		t.Fatalf("expected accessed timestamp to be set")
	}
}

func TestWebPage_MetadataFailureKeepsSentinels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	backend := &WebPage{Client: &fetch.Client{Timeout: 5 * time.Second}}
	info := source.NewInfo(source.KindWeb)
	if err := backend.ExtractMetadata(context.Background(), srv.URL, &info); err == nil {
		t.Fatalf("expected error from 403")
	}
	if info.Title != source.Unavailable {
		t.Fatalf("fields must stay unavailable after failure, got %q", info.Title)
	}
}
