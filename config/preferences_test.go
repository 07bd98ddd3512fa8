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

package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jameo-labs/corelib/iostream"
)

func TestSaveThenLoadRoundTrip(t *testing.T) {
	p := Preferences{
		Compression:             9,
		AutosaveIntervalSeconds: 30,
		MaxUndoSteps:            200,
		DefaultCharset:          "Windows-1252",
	}

	s := iostream.NewMemoryStream(nil)
	require.NoError(t, s.Open(iostream.ModeReadWrite))
	require.NoError(t, Save(s, p))

	require.NoError(t, s.Seek(0))
	got, err := Load(s)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestDefaultPreferences(t *testing.T) {
	d := Default()
	require.Equal(t, "UTF-8", d.DefaultCharset)
	require.Equal(t, 0, d.MaxUndoSteps)
}
