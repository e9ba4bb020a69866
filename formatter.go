package docshelf

import (
	"fmt"
	"strings"
)

// FormatTopics formats the topic hierarchy as an indented outline.
// Each document line shows its title followed by its slug.
func FormatTopics(topics []*Topic) string {
	if len(topics) == 0 {
		return ""
	}

	var b strings.Builder
	for i, topic := range topics {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(topic.Title + "\n")
		for _, sub := range topic.Subtopics {
			b.WriteString("  " + sub.Title + "\n")
			for _, doc := range sub.Docs {
				fmt.Fprintf(&b, "    %s (%s)\n", doc.Title, doc.Slug)
			}
		}
	}

	return b.String()
}

// FormatDocument formats a single document for display: title, location in
// the hierarchy, then the raw markdown.
func FormatDocument(doc *Document) string {
	subtopic := doc.Subtopic
	if subtopic == "" {
		subtopic = GeneralSubtopic
	}
	header := doc.Title + "\n" + doc.Topic + " • " + subtopic
	return header + "\n\n" + doc.Content
}
