package docshelf

import (
	"sort"
	"strconv"
	"strings"
)

// RegistryEntry declares a known document and the static file backing it.
type RegistryEntry struct {
	Slug     string `json:"slug" yaml:"slug"`
	Title    string `json:"title" yaml:"title"`
	Topic    string `json:"topic" yaml:"topic"`
	Subtopic string `json:"subtopic,omitempty" yaml:"subtopic,omitempty"`
	File     string `json:"file" yaml:"file"`
}

// Registry is the ordered list of documents known at build time.
// Slugs are expected to be unique; Validate reports violations.
type Registry []RegistryEntry

// FindEntry returns the first entry whose slug equals slug.
func (r Registry) FindEntry(slug string) (RegistryEntry, bool) {
	for _, e := range r {
		if e.Slug == slug {
			return e, true
		}
	}
	return RegistryEntry{}, false
}

// Topics returns the distinct entry topics in declaration order.
// Entries without a topic contribute DefaultTopic.
func (r Registry) Topics() []string {
	seen := make(map[string]bool)
	var topics []string
	for _, e := range r {
		topic := e.Topic
		if topic == "" {
			topic = DefaultTopic
		}
		if seen[topic] {
			continue
		}
		seen[topic] = true
		topics = append(topics, topic)
	}
	return topics
}

// Validate returns EINVALID if an entry lacks a slug, title or file, or if
// two entries share a slug.
func (r Registry) Validate() error {
	var problems []string
	counts := make(map[string]int)
	for i, e := range r {
		if e.Slug == "" {
			problems = append(problems, "entry "+strconv.Itoa(i)+": slug required")
			continue
		}
		if e.Title == "" {
			problems = append(problems, "entry "+e.Slug+": title required")
		}
		if e.File == "" {
			problems = append(problems, "entry "+e.Slug+": file required")
		}
		counts[e.Slug]++
	}

	var dups []string
	for slug, n := range counts {
		if n > 1 {
			dups = append(dups, slug)
		}
	}
	sort.Strings(dups)
	for _, slug := range dups {
		problems = append(problems, "duplicate slug "+slug)
	}

	if len(problems) > 0 {
		return Errorf(EINVALID, "invalid registry: %s", strings.Join(problems, "; "))
	}
	return nil
}

// DefaultRegistry returns the built-in registry of the documentation site.
func DefaultRegistry() Registry {
	return Registry{
		// Getting Started
		{Slug: "introduction", Title: "Introduction", Topic: "Getting Started", File: "introduction.md"},
		{Slug: "quick-start", Title: "Quick Start", Topic: "Getting Started", File: "quick-start.md"},
		{Slug: "installation", Title: "Installation Guide", Topic: "Getting Started", File: "installation.md"},
		{Slug: "setup", Title: "Setup Guide", Topic: "Getting Started", File: "setup.md"},

		// Tutorials
		{Slug: "basic-tutorial", Title: "Basic Tutorial", Topic: "Tutorials", Subtopic: "Beginner", File: "basic-tutorial.md"},
		{Slug: "advanced-concepts", Title: "Advanced Concepts", Topic: "Tutorials", Subtopic: "Advanced", File: "advanced-concepts.md"},
		{Slug: "best-practices", Title: "Best Practices", Topic: "Tutorials", File: "best-practices.md"},
		{Slug: "tutorials", Title: "Tutorial Hub", Topic: "Tutorials", File: "tutorials.md"},

		// Reference
		{Slug: "api", Title: "API Documentation", Topic: "Reference", Subtopic: "APIs", File: "api.md"},
		{Slug: "configuration", Title: "Configuration", Topic: "Reference", File: "configuration.md"},
		{Slug: "troubleshooting", Title: "Troubleshooting", Topic: "Reference", File: "troubleshooting.md"},
		{Slug: "reference", Title: "Reference Guide", Topic: "Reference", File: "reference.md"},

		// Examples
		{Slug: "code-samples", Title: "Code Samples", Topic: "Examples", File: "code-samples.md"},
		{Slug: "use-cases", Title: "Use Cases", Topic: "Examples", File: "use-cases.md"},
		{Slug: "integrations", Title: "Integrations", Topic: "Examples", File: "integrations.md"},

		// Development
		{Slug: "oracle_backup", Title: "Oracle Backup", Topic: "Development", Subtopic: "Database", File: "oracle_backup.md"},

		// Document Management
		{Slug: "add-documents", Title: "How to Add Documents", Topic: "Document Management", File: "add-documents.md"},
	}
}
