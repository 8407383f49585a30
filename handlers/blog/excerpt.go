package blog

import (
	"strings"

	"golang.org/x/net/html"
)

const excerptMaxLen = 200

// ExtractExcerpt strips HTML tags from a post body and returns the leading
// plain text, cut at a word boundary around excerptMaxLen runes. Script and
// style contents are skipped entirely.
func ExtractExcerpt(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return truncate(strings.TrimSpace(htmlContent))
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(text)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return truncate(b.String())
}

func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptMaxLen {
		return text
	}

	cut := string(runes[:excerptMaxLen])
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "…"
}
