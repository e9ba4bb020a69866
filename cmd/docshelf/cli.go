package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/docshelf"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Registry    docshelf.Registry
	Documents   docshelf.DocumentService
	Resolver    docshelf.Resolver
	Renderer    docshelf.Renderer
	NewExporter func(baseDir, name string) docshelf.DocumentExporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Docs        string        `env:"DOCSHELF_DOCS" default:"./public/docs" help:"Directory or http(s) URL serving the registry's markdown files"`
	Store       string        `env:"DOCSHELF_STORE" default:"${default_store}" help:"Custom document store: a directory, or a .db/.sqlite file"`
	Registry    string        `env:"DOCSHELF_REGISTRY" help:"YAML registry manifest (defaults to the built-in registry)"`
	Concurrency int           `short:"c" default:"0" help:"Concurrent fetch limit when listing (0 for no limit)"`
	Timeout     time.Duration `default:"10s" help:"Timeout for fetching a file over HTTP"`
	RateLimit   float64       `name:"rate-limit" default:"0" help:"Maximum HTTP requests per second (0 for no limit)"`
	Retries     int           `default:"0" help:"Retries for transient HTTP failures, with exponential backoff from 1s"`
	Verbose     bool          `short:"v" help:"Log operations to stderr"`

	Topics     TopicsCmd     `cmd:"" help:"Show the topic tree"`
	Show       ShowCmd       `cmd:"" help:"Show a document"`
	Save       SaveCmd       `cmd:"" help:"Create or replace a custom document"`
	TopicNames TopicNamesCmd `cmd:"" name:"topic-names" help:"List known topic names"`
	Check      CheckCmd      `cmd:"" help:"Validate the registry and report unavailable files"`
	Export     ExportCmd     `cmd:"" help:"Write all documents as markdown files"`
}

// TopicsCmd is the "topics" subcommand.
type TopicsCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Slug    string `arg:"" help:"Document slug"`
	HTML    bool   `name:"html" xor:"format" help:"Render the document as HTML"`
	Outline bool   `xor:"format" help:"Show only the document's headings"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	Title    string `required:"" help:"Document title"`
	Topic    string `required:"" help:"Topic name"`
	Subtopic string `help:"Subtopic name (defaults to General)"`
	Slug     string `help:"Document slug (derived from the title if omitted)"`
	Content  string `xor:"source" help:"Markdown content"`
	File     string `type:"path" xor:"source" help:"Read markdown content from a file"`
	Template bool   `xor:"source" help:"Start from the new document template"`
}

// TopicNamesCmd is the "topic-names" subcommand.
type TopicNamesCmd struct{}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Strict bool `help:"Fail when any registry file is unavailable"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir  string `arg:"" type:"path" help:"Parent directory of the export"`
	Name string `default:"docs" help:"Name of the export directory"`
}
