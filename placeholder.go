package docshelf

import (
	"fmt"
	"strings"
)

// Placeholder returns the markdown substituted for a document whose backing
// file cannot be retrieved. The output depends only on its arguments.
func Placeholder(title, topic, subtopic string) string {
	if topic == "" {
		topic = DefaultTopic
	}
	if subtopic == "" {
		subtopic = GeneralSubtopic
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Welcome to the %s documentation. This page belongs to **%s** → **%s**.\n\n", title, topic, subtopic)
	b.WriteString("> Content for this page is coming soon.\n\n")

	b.WriteString("## Overview\n\n")
	fmt.Fprintf(&b, "This guide covers the essentials of %s within %s.\n\n", title, topic)

	b.WriteString("## Key Features\n\n")
	b.WriteString("- Step-by-step explanations\n")
	b.WriteString("- Practical code examples\n")
	b.WriteString("- Best practices and common pitfalls\n")
	b.WriteString("- Links to related topics\n\n")

	b.WriteString("## Code Example\n\n")
	b.WriteString("```javascript\n")
	fmt.Fprintf(&b, "// %s example\n", title)
	b.WriteString("function example() {\n")
	fmt.Fprintf(&b, "  console.log(%q);\n", title+" documentation")
	b.WriteString("}\n")
	b.WriteString("```\n\n")

	b.WriteString("## SQL Example\n\n")
	b.WriteString("```sql\n")
	b.WriteString("SELECT id, name, created_at\n")
	b.WriteString("FROM examples\n")
	b.WriteString("WHERE active = 1\n")
	b.WriteString("ORDER BY created_at DESC;\n")
	b.WriteString("```\n\n")

	b.WriteString("## Related\n\n")
	b.WriteString("- [Introduction](/docs/introduction)\n")
	b.WriteString("- [Quick Start](/docs/quick-start)\n")
	b.WriteString("- [All Documents](/documents)\n")

	return b.String()
}

// NewDocumentTemplate is the starter content offered for a new document.
const NewDocumentTemplate = "# New Document\n\n" +
	"## Overview\n\n" +
	"Write your document content here...\n\n" +
	"## Examples\n\n" +
	"```javascript\n" +
	"// Your code examples\n" +
	"console.log(\"Hello World\");\n" +
	"```\n\n" +
	"## SQL Examples\n\n" +
	"```sql\n" +
	"SELECT * FROM your_table;\n" +
	"```\n"
