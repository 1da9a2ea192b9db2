// Package extract turns rendered HTML into the plain text the validation
// checks expect. Headings become markdown headings so section-scoped checks
// keep working, inline code keeps its backticks so fact-density sees it,
// and boilerplate containers (nav, footer, scripts) are dropped.
package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Document is the validation-ready form of an HTML page.
type Document struct {
	Title string
	Text  string
	// Anchors lists link texts with their byte position in Text, ready to
	// become relevance-check links once the caller resolves targets.
	Anchors []Anchor
}

// Anchor is one link occurrence in the extracted text.
type Anchor struct {
	Text     string
	Href     string
	Position int
}

// FromHTML extracts validation input from an HTML document, preferring
// <main> or <article> over <body>.
func FromHTML(input []byte) Document {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return Document{}
	}
	root := firstOf(node, "main", "article", "body")
	if root == nil {
		return Document{}
	}

	w := &writer{}
	w.walk(root)
	return Document{
		Title:   strings.TrimSpace(textOf(firstOf(node, "title"))),
		Text:    strings.TrimSpace(w.b.String()),
		Anchors: w.anchors,
	}
}

type writer struct {
	b       strings.Builder
	anchors []Anchor
}

func (w *writer) walk(n *html.Node) {
	if n.Type == html.TextNode {
		w.b.WriteString(collapse(n.Data))
		return
	}
	if n.Type != html.ElementNode && n.Type != html.DocumentNode {
		return
	}
	name := strings.ToLower(n.Data)
	switch name {
	case "script", "style", "noscript", "nav", "footer", "aside", "iframe", "form":
		return
	case "h1", "h2", "h3", "h4":
		w.blankLine()
		w.b.WriteString(strings.Repeat("#", int(name[1]-'0')) + " ")
		w.walkChildren(n)
		w.blankLine()
		return
	case "p", "ul", "ol", "table", "blockquote", "div", "section":
		w.blankLine()
		w.walkChildren(n)
		if name == "p" || name == "blockquote" {
			w.blankLine()
		}
		return
	case "li":
		w.newline()
		w.b.WriteString("- ")
		w.walkChildren(n)
		return
	case "br":
		w.newline()
		return
	case "code":
		w.b.WriteString("`")
		w.walkChildren(n)
		w.b.WriteString("`")
		return
	case "a":
		start := w.b.Len()
		w.walkChildren(n)
		text := strings.TrimSpace(w.b.String()[start:])
		if text != "" {
			w.anchors = append(w.anchors, Anchor{Text: text, Href: attr(n, "href"), Position: start})
		}
		return
	}
	w.walkChildren(n)
}

func (w *writer) walkChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

func (w *writer) newline() {
	s := w.b.String()
	if s != "" && !strings.HasSuffix(s, "\n") {
		w.b.WriteString("\n")
	}
}

func (w *writer) blankLine() {
	s := w.b.String()
	if s == "" || strings.HasSuffix(s, "\n\n") {
		return
	}
	if strings.HasSuffix(s, "\n") {
		w.b.WriteString("\n")
		return
	}
	w.b.WriteString("\n\n")
}

func firstOf(n *html.Node, tags ...string) *html.Node {
	for _, tag := range tags {
		var res *html.Node
		var dfs func(*html.Node)
		dfs = func(cur *html.Node) {
			if res != nil {
				return
			}
			if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
				res = cur
				return
			}
			for c := cur.FirstChild; c != nil; c = c.NextSibling {
				dfs(c)
			}
		}
		dfs(n)
		if res != nil {
			return res
		}
	}
	return nil
}

func textOf(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(n)
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func collapse(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	out := strings.Join(fields, " ")
	if strings.HasPrefix(s, " ") || strings.HasPrefix(s, "\n") || strings.HasPrefix(s, "\t") {
		out = " " + out
	}
	if strings.HasSuffix(s, " ") || strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\t") {
		out += " "
	}
	return out
}
