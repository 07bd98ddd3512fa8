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

package iostream

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// FileStream is a Stream backed by an afero.Fs, letting callers substitute
// an in-memory filesystem in tests while running against the real OS
// filesystem in production (spec.md §1 "file-system and path wrappers" are
// an external collaborator; this is the concrete adapter the codec and
// object model's Stream surface needs).
type FileStream struct {
	fs   afero.Fs
	path string

	f    afero.File
	mode Mode
}

// NewFileStream returns a FileStream rooted at fs for the given path. Pass
// afero.NewOsFs() for real filesystem access or afero.NewMemMapFs() for a
// hermetic test filesystem.
func NewFileStream(fs afero.Fs, path string) *FileStream {
	return &FileStream{fs: fs, path: path}
}

func (fs *FileStream) Open(mode Mode) error {
	if fs.f != nil {
		return ErrAlreadyOpen
	}
	var flag int
	switch mode {
	case ModeRead:
		flag = os.O_RDONLY
	case ModeWrite:
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case ModeReadWrite:
		flag = os.O_RDWR | os.O_CREATE
	}
	f, err := fs.fs.OpenFile(fs.path, flag, 0o644)
	if err != nil {
		return err
	}
	fs.f = f
	fs.mode = mode
	return nil
}

func (fs *FileStream) Close() error {
	if fs.f == nil {
		return nil
	}
	err := fs.f.Close()
	fs.f = nil
	return err
}

func (fs *FileStream) IsOpen() bool { return fs.f != nil }

func (fs *FileStream) Read(buf []byte) (int, error) {
	if fs.f == nil {
		return 0, ErrNotOpen
	}
	return fs.f.Read(buf)
}

func (fs *FileStream) ReadFully(buf []byte) error {
	if fs.f == nil {
		return ErrNotOpen
	}
	_, err := io.ReadFull(fs.f, buf)
	return err
}

func (fs *FileStream) Write(buf []byte) (int, error) {
	if fs.f == nil {
		return 0, ErrNotOpen
	}
	return fs.f.Write(buf)
}

func (fs *FileStream) Seek(position int64) error {
	if fs.f == nil {
		return ErrNotOpen
	}
	_, err := fs.f.Seek(position, io.SeekStart)
	return err
}

func (fs *FileStream) Move(offset int64) error {
	if fs.f == nil {
		return ErrNotOpen
	}
	_, err := fs.f.Seek(offset, io.SeekCurrent)
	return err
}

func (fs *FileStream) Position() (int64, error) {
	if fs.f == nil {
		return 0, ErrNotOpen
	}
	return fs.f.Seek(0, io.SeekCurrent)
}

func (fs *FileStream) Size() (int64, error) {
	if fs.f == nil {
		info, err := fs.fs.Stat(fs.path)
		if err != nil {
			return 0, err
		}
		return info.Size(), nil
	}
	info, err := fs.f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

var _ Stream = (*FileStream)(nil)
