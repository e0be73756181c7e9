package clean

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// StripTags parses text as HTML, removes style and script elements entirely
// (tag and body), and returns the remaining visible text nodes trimmed and
// joined with single spaces. Input with no markup comes back as its trimmed
// self.
func StripTags(text string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return strings.TrimSpace(text)
	}

	doc.Find("style, script").Remove()

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Selection.Nodes {
		walk(n)
	}

	return strings.Join(parts, " ")
}
