/*
 * gromacsheaders.go, part of goMartini
 *
 *
 * Copyright 2025 Raul Mera  <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 *
 *  This program is free software; you can redistribute it and/or modify
 *  it under the terms of the GNU Lesser General Public License as published by
 *  the Free Software Foundation; either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  This program is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License along
 *  with this program; if not, write to the Free Software Foundation, Inc.,
 *  51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 *
 *
 */

package top

import (
	"fmt"
	"regexp"
	"strings"
)

var sf func(string, ...any) string = fmt.Sprintf

// Section names for the parts of an atomistic force field that
// are merged into the coarse-grained one.
const (
	AtomTypes     = "atomtypes"
	NonBondParams = "nonbond_params"
	PairTypes     = "pairtypes"
)

// Utility functions

// qerr panics with err if it is not nil. The panic is meant to be
// recovered and returned as an error by the exported caller.
func qerr(err error) {
	if err != nil {
		panic(err)
	}
}

// recovered turns the value r, obtained from recover(), into an error.
func recovered(r any) error {
	if e, ok := r.(error); ok {
		return e
	}
	return fmt.Errorf("%v", r)
}

func fi(s string) []string {
	return strings.Fields(s)
}

// Returns a string without gromacs comments (sequences starting with ';'),
// trailing and leading spaces, tabs and newlines
func cleanString(s string) string {
	f := strings.Split(s, ";")[0]
	return strings.Trim(f, "\n\t\r ")
}

type headerRegexp struct {
	name string
	re   *regexp.Regexp
}

type topHeader struct {
	wany     *regexp.Regexp
	sections []headerRegexp //checked in order
}

func NewTopHeader() *topHeader {
	R := new(topHeader)
	R.Set()
	return R

}

// Set compiles the regular expressions. A header belongs to a section if the section
// name appears anywhere between the brackets, so " [ atomtypes ]" and "[atomtypes_aa]"
// both belong to the atomtypes section.
func (T *topHeader) Set() {
	T.wany = regexp.MustCompile(`^\[`)
	T.sections = []headerRegexp{
		{NonBondParams, regexp.MustCompile(`^\[[^\]]*nonbond_params[^\]]*\]?`)},
		{AtomTypes, regexp.MustCompile(`^\[[^\]]*atomtypes[^\]]*\]?`)},
		{PairTypes, regexp.MustCompile(`^\[[^\]]*pairtypes[^\]]*\]?`)},
	}
}

func (T *topHeader) delcomments(line string) string {
	return cleanString(line)
}

// Returns true if the line is a Gromacs header. It discards comments.
func (T *topHeader) Is(line string) bool {
	line = T.delcomments(line)
	return T.wany.MatchString(line)
}

// Returns a string indicating which of the merged sections
// the header line belongs to, or an empty string if the line
// is not a header or belongs to some other section.
func (T *topHeader) Which(line string) string {
	line = T.delcomments(line)
	if !T.wany.MatchString(line) {
		return ""
	}
	for _, v := range T.sections {
		if v.re.MatchString(line) {
			return v.name
		}
	}
	return ""
}

type StringReader interface {
	ReadString(byte) (string, error)
}
