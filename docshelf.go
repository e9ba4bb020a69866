// Package docshelf provides the document registry and resolution layer of a
// documentation browser. It lists topics and subtopics, resolves markdown
// documents by slug from static backing files, falls back to generated
// placeholder content when a file is missing, and persists user-authored
// documents in a custom store that overlays the static registry.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, goldmark/).
package docshelf
