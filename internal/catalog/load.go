package catalog

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mcpreg/internal/errors"
	"github.com/thoreinstein/mcpreg/pkg/fileutil"
)

// file is the on-disk shape of a replacement catalog:
//
//	integrations:
//	  - id: github
//	    name: GitHub
//	    ...
type file struct {
	Integrations []Integration `json:"integrations" yaml:"integrations" toml:"integrations"`
}

// LoadFile reads a catalog from a YAML, TOML or JSON file chosen by extension.
func LoadFile(path string) (*Catalog, error) {
	records, err := ReadRecords(path)
	if err != nil {
		return nil, err
	}
	c, err := New(records)
	return c, errors.Wrapf(err, "loading catalog %s", path)
}

// ReadRecords decodes the records of a catalog file without validating them.
func ReadRecords(path string) ([]Integration, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading catalog file")
	}
	records, err := ParseRecords(data, FormatFromPath(path))
	return records, errors.Wrapf(err, "loading catalog %s", path)
}

// FormatFromPath returns the extension of path without the dot.
func FormatFromPath(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// Parse decodes and validates a catalog document in the given format:
// yaml, yml, toml or json.
func Parse(data []byte, format string) (*Catalog, error) {
	records, err := ParseRecords(data, format)
	if err != nil {
		return nil, err
	}
	return New(records)
}

// ParseRecords decodes a catalog document. Unknown fields are rejected;
// record contents are not validated.
func ParseRecords(data []byte, format string) ([]Integration, error) {
	var f file

	switch strings.ToLower(format) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(err, "decoding yaml")
		}
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(err, "decoding toml")
		}
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(err, "decoding json")
		}
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "catalog format %q", format)
	}

	if len(f.Integrations) == 0 {
		return nil, errors.Mark(errors.New("no integrations defined"), errors.ErrInvalidCatalog)
	}
	return f.Integrations, nil
}
