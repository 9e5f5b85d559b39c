package source

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

var errInvalidUTF8 = errors.New("invalid UTF-8")

// loadText splits plain text into pages on form feeds.
func loadText(name string, data []byte) Outcome {
	if !utf8.Valid(data) {
		return failed(name, "text", ReasonUnreadable, errInvalidUTF8)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	parts := strings.Split(text, "\f")

	pages := make([]PageText, 0, len(parts))
	for i, p := range parts {
		pages = append(pages, PageText{Number: i + 1, Text: p, Origin: pageOrigin(p)})
	}
	return Outcome{Pages: pages}
}

// loadHTML treats an exported plan sheet as a single page of visible text.
func loadHTML(name string, data []byte) Outcome {
	doc, err := html.Parse(strings.NewReader(string(data)))
	if err != nil {
		return failed(name, "html", ReasonUnreadable, err)
	}
	text := visibleText(doc)
	return Outcome{Pages: []PageText{{Number: 1, Text: text, Origin: pageOrigin(text)}}}
}

var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"table": true, "section": true, "pre": true,
}

// visibleText walks the tree, skipping non-rendered elements. Block
// elements end a line so dimension strings in separate cells stay apart.
func visibleText(root *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "head":
				return
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				buf.WriteString(t)
				buf.WriteByte(' ')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockElements[n.Data] {
			buf.WriteByte('\n')
		}
	}
	walk(root)

	lines := strings.Split(buf.String(), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
