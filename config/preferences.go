// Copyright 2024 The Corelib Authors
// This file is part of corelib.
//
// corelib is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// corelib is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with corelib. If not, see <http://www.gnu.org/licenses/>.

// Package config holds the Preferences document.InitNewDocument(prefs)
// accepts (spec.md §3 "optional preferences"). The distilled spec leaves
// their shape unspecified beyond "optional"; this fills in the settings an
// editable document actually needs at init time.
package config

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/jameo-labs/corelib/iostream"
)

// Preferences is the (de)serializable configuration handed to
// Document.InitNewDocument.
type Preferences struct {
	// Compression is the default Deflater level used when saving (see
	// compress/flate level constants); 0 means "use the codec default".
	Compression int `toml:"compression"`

	// AutosaveIntervalSeconds is how often an editor should checkpoint the
	// document to disk; 0 disables autosave.
	AutosaveIntervalSeconds int `toml:"autosave_interval_seconds"`

	// MaxUndoSteps caps the undo stack depth a Document keeps around; 0
	// means unlimited.
	MaxUndoSteps int `toml:"max_undo_steps"`

	// DefaultCharset names the encoding used by ustr's string collaborator
	// when a byte-oriented read doesn't carry its own encoding tag.
	DefaultCharset string `toml:"default_charset"`
}

// Default returns the preferences a freshly initialized document uses when
// none are supplied.
func Default() Preferences {
	return Preferences{
		Compression:             0,
		AutosaveIntervalSeconds: 0,
		MaxUndoSteps:            0,
		DefaultCharset:          "UTF-8",
	}
}

// Load decodes TOML-encoded preferences from s, which must already be open
// for reading.
func Load(s iostream.Stream) (Preferences, error) {
	size, err := s.Size()
	if err != nil {
		return Preferences{}, errors.Wrap(err, "config: could not determine stream size")
	}
	buf := make([]byte, size)
	if err := s.ReadFully(buf); err != nil {
		return Preferences{}, errors.Wrap(err, "config: could not read preferences")
	}
	var p Preferences
	if err := toml.Unmarshal(buf, &p); err != nil {
		return Preferences{}, errors.Wrap(err, "config: could not parse preferences")
	}
	return p, nil
}

// Save encodes p as TOML to s, which must already be open for writing.
func Save(s iostream.Stream, p Preferences) error {
	buf, err := toml.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "config: could not encode preferences")
	}
	if _, err := s.Write(buf); err != nil {
		return errors.Wrap(err, "config: could not write preferences")
	}
	return nil
}
