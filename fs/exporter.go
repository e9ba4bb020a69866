package fs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docshelf"
	"gopkg.in/yaml.v3"
)

// Ensure Exporter implements docshelf.DocumentExporter at compile time.
var _ docshelf.DocumentExporter = (*Exporter)(nil)

// frontmatter is the YAML header written above exported documents.
type frontmatter struct {
	Slug     string `yaml:"slug"`
	Title    string `yaml:"title"`
	Topic    string `yaml:"topic"`
	Subtopic string `yaml:"subtopic,omitempty"`
	Created  string `yaml:"created"`
}

// DocumentPath returns the relative path an exported document is written to.
// Example: {Topic: "Getting Started", Slug: "intro"} → getting-started/intro.md
func DocumentPath(doc *docshelf.Document) (string, error) {
	slug := doc.Slug
	if slug == "" || slug == "." || slug == ".." || strings.ContainsAny(slug, `/\`) {
		return "", docshelf.Errorf(docshelf.EINVALID, "invalid slug %q for export", slug)
	}

	topic := doc.Topic
	if topic == "" {
		topic = docshelf.DefaultTopic
	}
	dir := strings.NewReplacer("/", "-", `\`, "-").Replace(docshelf.TopicID(topic))
	if dir == "" || dir == "." || dir == ".." {
		dir = docshelf.TopicID(docshelf.DefaultTopic)
	}

	return dir + "/" + slug + ".md", nil
}

// FormatDocument formats a document with YAML frontmatter.
func FormatDocument(doc *docshelf.Document) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	err := enc.Encode(frontmatter{
		Slug:     doc.Slug,
		Title:    doc.Title,
		Topic:    doc.Topic,
		Subtopic: doc.Subtopic,
		Created:  doc.CreatedAt.UTC().Format("2006-01-02"),
	})
	if err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	buf.WriteString("---\n\n")
	buf.WriteString(doc.Content)
	return buf.String(), nil
}

// Exporter writes documents as markdown files with atomic update semantics.
// Documents are saved to a temporary directory, then moved on Commit.
type Exporter struct {
	baseDir string
	name    string
}

// NewExporter creates a new Exporter.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewExporter(baseDir, name string) *Exporter {
	return &Exporter{
		baseDir: baseDir,
		name:    name,
	}
}

func (e *Exporter) tempDir() string {
	return filepath.Join(e.baseDir, e.name+".tmp")
}

func (e *Exporter) finalDir() string {
	return filepath.Join(e.baseDir, e.name)
}

// Save writes doc below the temporary directory.
func (e *Exporter) Save(ctx context.Context, doc *docshelf.Document) error {
	relPath, err := DocumentPath(doc)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(e.tempDir(), filepath.FromSlash(relPath))

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatDocument(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// Commit replaces the output directory with the temporary directory.
func (e *Exporter) Commit() error {
	// An export without documents still produces an empty directory
	if err := os.MkdirAll(e.tempDir(), 0755); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(e.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(e.tempDir(), e.finalDir())
}

// Abort discards everything saved since the last Commit.
func (e *Exporter) Abort() error {
	return os.RemoveAll(e.tempDir())
}
