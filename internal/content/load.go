package content

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed default.yaml
var defaultContent []byte

// DefaultDocument parses the built-in content.
func DefaultDocument() (*Document, error) {
	return Decode(defaultContent, FormatYAML)
}

// Default returns the store built from the built-in content.
func Default() (*Store, error) {
	doc, err := DefaultDocument()
	if err != nil {
		return nil, fmt.Errorf("built-in content: %w", err)
	}
	return FromDocument(doc, SourceBuiltin)
}

// FromDocument validates and converts doc.
func FromDocument(doc *Document, source string) (*Store, error) {
	if errs := Validate(doc); len(errs) > 0 {
		return nil, &ValidationError{Errs: errs}
	}
	return Convert(doc, source)
}

// ReadDocument reads and parses a YAML or JSON content file.
func ReadDocument(path string) (*Document, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	if format == FormatBundle {
		return nil, fmt.Errorf("%s is a content bundle; open it with the bundle loader", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file: %w", err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LoadFile reads, validates and converts a YAML or JSON content file.
func LoadFile(path string) (*Store, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc, path)
}
