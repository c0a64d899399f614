/*
 * atomistic.go, part of goMartini
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
	"errors"
	"io"
	"log/slog"
	"strings"
)

// Atomistic holds the sections of an atomistic Gromacs force field that are
// merged into the coarse-grained one. Lines are kept verbatim, without the
// trailing '\n'.
type Atomistic struct {
	Name      string //shown in the merge notice
	AtomTypes []string
	NonBond   []string
	PairTypes []string
}

// ReadAtomistic reads the atomtypes, nonbond_params and pairtypes
// sections from r. Everything else, including anything before the first
// header, is ignored. r can be a *bufio.Reader or a *Lines.
func ReadAtomistic(r StringReader) (*Atomistic, error) {
	A := new(Atomistic)
	h := NewTopHeader()
	key := ""
	for {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if err != nil && line == "" {
			break
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		switch {
		case h.Is(line):
			key = h.Which(line)
		case key == NonBondParams:
			A.NonBond = append(A.NonBond, line)
		case key == AtomTypes:
			A.AtomTypes = append(A.AtomTypes, line)
		case key == PairTypes:
			A.PairTypes = append(A.PairTypes, line)
		}
		if err != nil {
			break
		}
	}
	slog.Debug("Atomistic sections read", AtomTypes, len(A.AtomTypes), NonBondParams, len(A.NonBond), PairTypes, len(A.PairTypes))
	return A, nil
}

// AtomisticFromFile reads the atomistic sections from the file fname.
func AtomisticFromFile(fname string) (*Atomistic, error) {
	L, err := LinesFromFile(fname)
	if err != nil {
		return nil, err
	}
	A, err := ReadAtomistic(L)
	if err != nil {
		return nil, err
	}
	A.Name = fname
	return A, nil
}

// TypeNames returns the names of the atomistic atom types, one for every atomtypes
// line that is not blank, a comment or a preprocessor directive. Lines in the full
// 7-field format are parsed as atom types, for the rest the name is the first field.
func (A *Atomistic) TypeNames() []string {
	ret := make([]string, 0, len(A.AtomTypes))
	for _, v := range A.AtomTypes {
		s := strings.TrimSpace(v)
		if s == "" || s[0] == ';' || s[0] == '#' {
			continue
		}
		if t, err := AtomTypeFromGro(s, false); err == nil {
			ret = append(ret, t.Name)
			continue
		}
		ret = append(ret, fi(s)[0])
	}
	return ret
}
