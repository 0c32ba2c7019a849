// Package translate re-encodes rendered client configurations between
// JSON, YAML and TOML.
package translate

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mcpreg/internal/errors"
)

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTOML}
}

// ParseFormat maps a user-supplied name (case-insensitive, "yml" allowed) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", errors.Wrapf(errors.ErrUnsupportedFormat, "%q (valid: json, yaml, toml)", s)
	}
}

// FromJSON converts a JSON document to the requested format.
// JSON input is returned unchanged so templates keep their exact layout.
func FromJSON(data []byte, to Format) ([]byte, error) {
	switch to {
	case FormatJSON:
		if !json.Valid(data) {
			return nil, errors.New("input is not valid JSON")
		}
		return data, nil
	case FormatYAML:
		return JSONToYAML(data)
	case FormatTOML:
		return JSONToTOML(data)
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "%q", to)
	}
}

// JSONToYAML converts JSON to block-style YAML, keeping key order.
func JSONToYAML(data []byte) ([]byte, error) {
	// JSON is a YAML subset; decoding into a node keeps key order.
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.Wrap(err, "unmarshaling json")
	}
	if node.Kind == 0 {
		return nil, errors.New("empty document")
	}
	clearStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, errors.Wrap(err, "marshaling yaml")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "marshaling yaml")
	}
	return buf.Bytes(), nil
}

// JSONToTOML converts a JSON object to TOML.
func JSONToTOML(data []byte) ([]byte, error) {
	var v map[string]any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(err, "unmarshaling json")
	}
	out, err := toml.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling toml")
	}
	return out, nil
}

// clearStyle drops the flow and quoting styles carried over from JSON so
// the encoder picks block style and plain scalars where they are safe.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}
