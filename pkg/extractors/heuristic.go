package extractors

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/dtnitsch/extract-text/models"
)

// Heuristic is the secondary backend: an article-focused fallback that walks
// the DOM directly, preferring <main> and <article> containers and skipping
// obvious boilerplate. It emits text and title only — no metadata, no
// structural elements.
type Heuristic struct{}

func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

func (b *Heuristic) Name() string { return models.MethodHeuristic }

func (b *Heuristic) Attempt(input string) (doc *models.ExtractedDocument) {
	defer recovered(b.Name(), &doc)

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return models.Failure(b.Name(), "%v", err)
	}

	title := collapseWhitespace(findTitle(node))

	content := findFirst(node, "main")
	if content == nil {
		content = findFirst(node, "article")
	}
	if content == nil {
		content = findFirst(node, "body")
	}
	if content == nil {
		content = node
	}

	var sb strings.Builder
	collectText(&sb, content)
	text := collapseWhitespace(sb.String())
	if text == "" {
		return models.Failure(b.Name(), "returned empty")
	}

	return &models.ExtractedDocument{
		Success:        true,
		Text:           text,
		WordCount:      models.CountWords(text),
		Method:         b.Name(),
		TitleExtracted: title,
	}
}

func findTitle(n *html.Node) string {
	head := findFirst(n, "head")
	if head == nil {
		return ""
	}
	t := findFirst(head, "title")
	if t == nil || t.FirstChild == nil {
		return ""
	}
	return t.FirstChild.Data
}

func findFirst(n *html.Node, tag string) *html.Node {
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
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

// collectText gathers visible text, separating block elements with spaces
// so words from adjacent blocks never run together.
func collectText(sb *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "header", "footer", "aside", "iframe", "svg":
			return
		}
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteString(" ")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(sb, c)
	}
}
