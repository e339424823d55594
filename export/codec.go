package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" and "json" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("export: %q: %w", s, ErrUnknownFormat)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// ContentType returns the HTTP media type of f.
func (f Format) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}

	return "application/yaml"
}

// Encode writes doc to w.
func Encode(w io.Writer, doc *Document, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("export: yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("export: json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("export: Encode(%q): %w", f, ErrUnknownFormat)
	}
}

// Decode reads one document from r.
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	switch f {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("export: yaml: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("export: json: %w", err)
		}
	default:
		return nil, fmt.Errorf("export: Decode(%q): %w", f, ErrUnknownFormat)
	}

	return &doc, nil
}

// WriteFile encodes doc into path; the extension selects the format.
func WriteFile(path string, doc *Document) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = Encode(&buf, doc, f); err != nil {
		return err
	}
	if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return nil
}

// ReadFile decodes the document stored at path.
func ReadFile(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	defer fh.Close()

	return Decode(fh, f)
}
