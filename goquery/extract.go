// Package goquery provides fallback extraction strategies that select text
// by CSS selector using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/briefly"
	"golang.org/x/net/html"
)

// noiseSelector matches elements that never contribute readable text.
const noiseSelector = "script, style, noscript, template, svg, iframe"

// blockElements start a new line when rendering text.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "footer": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "hr": true,
	"li": true, "main": true, "nav": true, "ol": true, "p": true,
	"pre": true, "section": true, "table": true, "td": true, "th": true,
	"tr": true, "ul": true,
}

// parse parses HTML and strips noise elements.
func parse(rawHTML string) (*goquery.Document, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, briefly.Errorf(briefly.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, briefly.Errorf(briefly.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find(noiseSelector).Remove()
	return doc, nil
}

// pageTitle returns the document's <title>, or briefly.DefaultTitle.
func pageTitle(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return briefly.DefaultTitle
	}
	return strings.Join(strings.Fields(title), " ")
}

// Text renders the text of a selection, starting a new line at every block
// element so that list items and headings do not run together.
func Text(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		renderText(&sb, n)
	}
	return briefly.NormalizeText(sb.String())
}

func renderText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if blockElements[n.Data] {
			sb.WriteString("\n")
			defer sb.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderText(sb, c)
	}
}

// joinBlocks joins non-empty blocks with a blank line, keeping only the
// first occurrence of identical blocks.
func joinBlocks(blocks []string) string {
	seen := make(map[string]bool, len(blocks))
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b == "" || seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, b)
	}
	return strings.Join(out, "\n\n")
}
