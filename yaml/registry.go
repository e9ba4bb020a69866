// Package yaml loads registry manifests written in YAML.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/docshelf"
	"gopkg.in/yaml.v3"
)

// LoadRegistry decodes a YAML list of registry entries from r and validates
// it. An empty document yields an empty registry.
//
//	- slug: introduction
//	  title: Introduction
//	  topic: Getting Started
//	  file: introduction.md
func LoadRegistry(r io.Reader) (docshelf.Registry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var reg docshelf.Registry
	if err := dec.Decode(&reg); err != nil && !errors.Is(err, io.EOF) {
		return nil, docshelf.Errorf(docshelf.EINVALID, "invalid registry manifest: %v", err)
	}
	if reg == nil {
		reg = docshelf.Registry{}
	}

	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

// LoadRegistryFile reads the manifest at path.
func LoadRegistryFile(path string) (docshelf.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry manifest: %w", err)
	}
	defer f.Close()

	return LoadRegistry(f)
}
