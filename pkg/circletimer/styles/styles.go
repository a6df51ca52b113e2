// Package styles reads and writes circletimer.Style descriptions.
//
// A description only needs the fields it changes; everything else keeps
// the value from circletimer.DefaultStyle. Colors are written as hex
// strings ("#AARRGGBB", "#RRGGBB", "#RGB") or by name ("white", "blue").
// In YAML a hex color must be quoted, since an unquoted '#' starts a
// comment.
//
//	use_mask: false
//	fill_color: "#FF3366CC"
//	fill_diameter_ratio: 0.7
package styles

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/circletimer/pkg/circletimer"
	timererrors "github.com/go-drift/circletimer/pkg/errors"
)

// Format is the encoding of a style description.
type Format int

const (
	// FormatYAML is YAML, decoded with gopkg.in/yaml.v3.
	FormatYAML Format = iota
	// FormatTOML is TOML, decoded with github.com/pelletier/go-toml/v2.
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("unsupported style file extension %q", filepath.Ext(path))
	}
}

// Parse decodes a style description on top of circletimer.DefaultStyle.
// Unknown keys are rejected. Errors are *errors.TimerError of kind
// KindConfig.
func Parse(data []byte, format Format) (circletimer.Style, error) {
	style := circletimer.DefaultStyle()
	if err := Decode(data, format, &style); err != nil {
		return circletimer.DefaultStyle(), configError("styles.Parse", "", err)
	}
	return style, nil
}

// Decode strictly decodes data into v, leaving absent fields untouched.
// v is a *circletimer.Style or a pointer to a struct holding one, such as
// a host configuration with a style section. An empty document is not an
// error.
func Decode(data []byte, format Format, v any) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("decode toml: %w", err)
		}
	default:
		return fmt.Errorf("unknown style format %v", format)
	}
	return nil
}

// Load reads a style file, choosing the format from its extension.
func Load(path string) (circletimer.Style, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return circletimer.DefaultStyle(), configError("styles.Load", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return circletimer.DefaultStyle(), configError("styles.Load", path, err)
	}
	style := circletimer.DefaultStyle()
	if err := Decode(data, format, &style); err != nil {
		return circletimer.DefaultStyle(), configError("styles.Load", path, err)
	}
	return style, nil
}

// Marshal encodes every field of style.
func Marshal(style circletimer.Style, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(style); err != nil {
			return nil, fmt.Errorf("encode yaml style: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml style: %w", err)
		}
		return buf.Bytes(), nil
	case FormatTOML:
		data, err := toml.Marshal(style)
		if err != nil {
			return nil, fmt.Errorf("encode toml style: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown style format %v", format)
	}
}

func configError(op, source string, err error) *timererrors.TimerError {
	return &timererrors.TimerError{
		Op:     op,
		Kind:   timererrors.KindConfig,
		Err:    err,
		Source: source,
	}
}
