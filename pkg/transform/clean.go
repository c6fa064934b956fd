package transform

import (
	"html"
	"regexp"
	"strings"

	xhtml "golang.org/x/net/html"
)

const descriptionLimit = 2000

var blankRuns = regexp.MustCompile(`\n{2,}`)

// CleanDescription reduces marked-up listing text to plain text safe for the
// target feed: entities unescaped, tags stripped, <p> and <br> turned into
// line breaks, blank runs collapsed, lines trimmed.
func CleanDescription(text string) string {
	if strings.TrimSpace(text) == "" {
		return "No description provided"
	}

	text = html.UnescapeString(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	if node, err := xhtml.Parse(strings.NewReader(text)); err == nil {
		var b strings.Builder
		flatten(node, &b)
		text = b.String()
	}

	text = blankRuns.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func flatten(n *xhtml.Node, b *strings.Builder) {
	if n.Type == xhtml.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flatten(c, b)
	}
	if n.Type == xhtml.ElementNode && (n.Data == "p" || n.Data == "br") {
		b.WriteString("\n")
	}
}

// SplitDescription breaks an overlong description on paragraph boundaries.
// The overflow lands in the record's otherNote, truncated at the same limit.
func SplitDescription(text string) (first, overflow string) {
	if len([]rune(text)) <= descriptionLimit {
		return text, ""
	}

	paragraphs := strings.Split(text, "\n\n")
	var head, tail []string
	length := 0
	for _, p := range paragraphs {
		if len(tail) == 0 && length+len([]rune(p))+len(head)*2 <= descriptionLimit {
			head = append(head, p)
			length += len([]rune(p))
		} else {
			tail = append(tail, p)
		}
	}

	first = strings.Join(head, "\n\n")
	overflow = strings.Join(tail, "\n\n")
	if r := []rune(overflow); len(r) > descriptionLimit {
		overflow = string(r[:descriptionLimit])
	}
	return first, overflow
}
