package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// VisibleText extracts the readable text of an HTML page. Script, style,
// nav, footer and header subtrees are dropped before collection, and the
// result is flattened to single-space-separated prose: lines are split on
// runs of double spaces and the non-empty chunks rejoined, so layout
// indentation never leaks into the token stream.
func VisibleText(input []byte) string {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return ""
	}
	var b strings.Builder
	collectText(&b, node)
	return flatten(b.String())
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "footer", "header", "aside", "iframe":
			return
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteString("\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}

func flatten(s string) string {
	var chunks []string
	for _, line := range strings.Split(s, "\n") {
		for _, chunk := range strings.Split(strings.TrimSpace(line), "  ") {
			chunk = strings.TrimSpace(chunk)
			if chunk != "" {
				chunks = append(chunks, chunk)
			}
		}
	}
	return strings.Join(chunks, " ")
}
