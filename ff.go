/*
 * ff.go, part of goMartini
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

package martini

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/mat"
)

// Solvent is a single-bead solvent molecule, written as a molecule type
// at the end of the force field file.
type Solvent struct {
	Name    string
	Type    string
	Comment string
}

// FF is an assembled coarse-grained force field: the particle types, the
// merged interaction codes and the levels to decode them. It is read-only.
type FF struct {
	Name     string
	Version  string
	Credit   string //authors of the definition, credited in the file header.
	Preamble string //comment block written before the force field sections.
	Notes    string //comments for the atomtypes section.
	Types    *Registry
	Codes    *PairMap
	Levels   *Levels
	Solvents []Solvent
}

// PairParam is a nonbonded interaction between two particle types.
type PairParam struct {
	A    *ParticleType
	B    *ParticleType
	Code Code
	LJ
}

// Interaction returns the coefficients for the pair a, b. The boolean is false if the pair
// has no interaction, either because no code is defined for it, or because the
// code encodes a zero interaction.
func (F *FF) Interaction(a, b string) (LJ, bool, error) {
	c, ok := F.Codes.Lookup(a, b)
	if !ok {
		return LJ{}, false, nil
	}
	lj, ok, err := F.Levels.Decode(c)
	if err != nil {
		return LJ{}, false, errDecorate(err, fmt.Sprintf("Interaction: %s-%s", a, b))
	}
	return lj, ok && lj.C6 != 0, nil
}

// Pairs returns every pair of particle types with a non-zero interaction. Each unordered pair, including a type with itself,
// appears once, in registry order: (0,0), (0,1), ..., (0,n-1), (1,1), ...
func (F *FF) Pairs() ([]PairParam, error) {
	n := F.Types.Len()
	ret := make([]PairParam, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		a := F.Types.Type(i)
		for j := i; j < n; j++ {
			b := F.Types.Type(j)
			c, ok := F.Codes.Lookup(a.Name, b.Name)
			if !ok {
				continue
			}
			lj, ok, err := F.Levels.Decode(c)
			if err != nil {
				return nil, errDecorate(err, fmt.Sprintf("Pairs: %s-%s", a.Name, b.Name))
			}
			if !ok || lj.C6 == 0 {
				continue
			}
			ret = append(ret, PairParam{A: a, B: b, Code: c, LJ: lj})
		}
	}
	slog.Debug("Nonbonded pairs decoded", "types", n, "pairs", len(ret))
	return ret, nil
}

// Matrix returns symmetric matrices with the c6 and c12 coefficients for every pair of
// types, in registry order. Pairs without interaction are zero.
func (F *FF) Matrix() (c6, c12 *mat.SymDense, err error) {
	n := F.Types.Len()
	c6 = mat.NewSymDense(n, nil)
	c12 = mat.NewSymDense(n, nil)
	pairs, err := F.Pairs()
	if err != nil {
		return nil, nil, errDecorate(err, "Matrix")
	}
	for _, p := range pairs {
		i, j := F.Types.Index(p.A.Name), F.Types.Index(p.B.Name)
		c6.SetSym(i, j, p.C6)
		c12.SetSym(i, j, p.C12)
	}
	return c6, c12, nil
}
