/*
 * lines.go, part of goMartini
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */


package top

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Lines is a text file stored in memory, one string per line, without
// the trailing '\n'.
type Lines struct {
	Name string //the file the lines were read from, if any.
	t    []string
	i    int
}

// Returns a new Lines, with the text
// represented by the given slice of strings (each
// string must correspond to one line of the file, without
// the respective '\n').
func NewLines(t []string) *Lines {
	return &Lines{t: t, i: 0}
}

// ReadLines reads all the lines in r.
func ReadLines(r io.Reader) (*Lines, error) {
	L := new(Lines)
	L.t = make([]string, 0, 10)
	re := bufio.NewReader(r)
	var l string
	var err error
	for l, err = re.ReadString('\n'); err == nil; l, err = re.ReadString('\n') {
		L.t = append(L.t, strings.TrimSuffix(strings.TrimSuffix(l, "\n"), "\r"))
	}
	if errors.Is(err, io.EOF) {
		err = nil
		if l != "" { //last line without a '\n'
			L.t = append(L.t, strings.TrimSuffix(l, "\r"))
		}
	}
	return L, err
}

// LinesFromFile reads the whole file fname. Files ending in .gz and .zst
// are decompressed.
func LinesFromFile(fname string) (*Lines, error) {
	f, err := Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	L, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	L.Name = fname
	return L, nil
}

// Resets the reader to start from the first line
func (t *Lines) Reset() {
	t.i = 0
}

// Returns the number of lines
func (t *Lines) Len() int {
	return len(t.t)
}

// Line returns the ith line.
func (t *Lines) Line(i int) string {
	return t.t[i]
}

// Adds a line to the text. A trailing '\n' is removed.
func (t *Lines) WriteString(s string) (int, error) {
	t.t = append(t.t, strings.TrimSuffix(s, "\n"))
	return len(s), nil

}

// Returns the next line, without the '\n'. Note that the byte argument is
// not used, you can't choose how much you want to read, it's always the
// full next line (unlike in the bufio.Reader ReadString method).
func (t *Lines) ReadString(byte) (string, error) {
	if t.i >= len(t.t) {
		t.i = 0 //you can re-start reading it.
		return "", io.EOF
	}
	t.i++
	return t.t[t.i-1], nil
}

// ToGro returns the lines as they were read, each followed by '\n'.
func (t *Lines) ToGro() (string, error) {
	if len(t.t) == 0 {
		return "", nil
	}
	return strings.Join(t.t, "\n") + "\n", nil
}

type zstdReadCloser struct {
	*zstd.Decoder
	f *os.File
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

type gzipReadCloser struct {
	*gzip.Reader
	f *os.File
}

func (g gzipReadCloser) Close() error {
	err := g.Reader.Close()
	if err2 := g.f.Close(); err == nil {
		err = err2
	}
	return err
}

// Open opens the file name for reading. If the name ends in .gz or .zst, the
// returned reader decompresses the contents.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		g, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return gzipReadCloser{Reader: g, f: f}, nil
	case ".zst", ".zstd":
		z, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return zstdReadCloser{Decoder: z, f: f}, nil
	}
	return f, nil
}
