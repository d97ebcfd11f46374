package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrUnknownFormat = errors.New("unknown format")

// Format is a wire encoding.
type Format int

const (
	JSON Format = iota
	YAML
	CBOR
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case CBOR:
		return "cbor"
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat resolves a format name. Matching is case-insensitive and
// "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "cbor":
		return CBOR, nil
	}

	return 0, fmt.Errorf("%w: %q (expected json, yaml or cbor)", ErrUnknownFormat, name)
}

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}
