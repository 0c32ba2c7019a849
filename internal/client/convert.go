package client

import (
	"github.com/thoreinstein/mcpreg/internal/catalog"
	"github.com/thoreinstein/mcpreg/internal/errors"
	"github.com/thoreinstein/mcpreg/internal/translate"
)

// Convert re-encodes a rendered JSON configuration in the given format.
func Convert(rendered string, format translate.Format) (string, error) {
	out, err := translate.FromJSON([]byte(rendered), format)
	if err != nil {
		return "", errors.Wrapf(err, "converting config to %s", format)
	}
	return string(out), nil
}

// RenderAs renders p for i under slug policy s and converts the result.
func (p Profile) RenderAs(s catalog.Slugger, i catalog.Integration, format translate.Format) (string, error) {
	return Convert(p.RenderWith(s, i), format)
}
