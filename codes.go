/*
 * codes.go, part of goMartini
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
	"math"
)

// Code is the compact encoding of a nonbonded interaction:
// <strength><scale><distance>, for instance "Aa2".
// Shorter forms are accepted: "A" means "Aa2", "Ab" means "Ab2" and "A3" means "Aa3".
type Code string

// Default letters used to complete short codes.
const (
	DefaultScale    byte = 'a'
	DefaultDistance byte = '2'
)

// Levels contains the three lookup tables that decode interaction codes.
// Strength values are well depths (kJ/mol), Scale values are dimensionless
// multipliers and Distance values are separations (nm).
type Levels struct {
	Strength map[byte]float64
	Scale    map[byte]float64
	Distance map[byte]float64
}

// LJ holds the Lennard-Jones coefficients of an interaction.
type LJ struct {
	C6  float64
	C12 float64
}

// SigmaEpsilon returns the sigma/epsilon form of the receiver.
// It returns zeroes if either coefficient is zero.
func (L LJ) SigmaEpsilon() (sigma, epsilon float64) {
	if L.C6 == 0 || L.C12 == 0 {
		return 0, 0
	}
	return math.Pow(L.C12/L.C6, 1.0/6.0), (L.C6 * L.C6) / (4 * L.C12)
}

// LJFromSigmaEpsilon returns the c6/c12 coefficients for the given sigma and epsilon.
func LJFromSigmaEpsilon(sigma, epsilon float64) LJ {
	return LJ{C6: 4 * epsilon * math.Pow(sigma, 6), C12: 4 * epsilon * math.Pow(sigma, 12)}
}

// split returns the strength, scale and distance letters of c, filling in the defaults for
// short codes.
func (L *Levels) split(c Code) (strength, scale, distance byte, err error) {
	switch len(c) {
	case 1:
		return c[0], DefaultScale, DefaultDistance, nil
	case 2:
		if _, ok := L.Distance[c[1]]; ok {
			return c[0], DefaultScale, c[1], nil
		}
		return c[0], c[1], DefaultDistance, nil
	case 3:
		return c[0], c[1], c[2], nil
	}
	return 0, 0, 0, &CodeError{Code: c, message: fmt.Sprintf("expected 1 to 3 characters, got %d", len(c))}
}

// Values returns the strength, scale and distance values encoded in c.
func (L *Levels) Values(c Code) (strength, scale, distance float64, err error) {
	e, s, d, err := L.split(c)
	if err != nil {
		return 0, 0, 0, err
	}
	var ok bool
	if strength, ok = L.Strength[e]; !ok {
		return 0, 0, 0, &CodeError{Code: c, message: fmt.Sprintf("unknown strength %q", e)}
	}
	if scale, ok = L.Scale[s]; !ok {
		return 0, 0, 0, &CodeError{Code: c, message: fmt.Sprintf("unknown scale %q", s)}
	}
	if distance, ok = L.Distance[d]; !ok {
		return 0, 0, 0, &CodeError{Code: c, message: fmt.Sprintf("unknown distance %q", d)}
	}
	return strength, scale, distance, nil
}

// Decode converts the code c into c6 and c12 coefficients:
//
//	c6 = 4*strength*scale*distance^6
//	c12 = 4*strength*scale*distance^12
//
// The boolean is false, and the coefficients zero, if the strength encoded
// in c is zero, i.e. if c means "no interaction".
func (L *Levels) Decode(c Code) (LJ, bool, error) {
	e, s, d, err := L.Values(c)
	if err != nil {
		return LJ{}, false, errDecorate(err, "Decode")
	}
	if e == 0 {
		return LJ{}, false, nil
	}
	f := 4 * e * s
	return LJ{C6: f * math.Pow(d, 6), C12: f * math.Pow(d, 12)}, true, nil
}

// Check returns an error if any table is empty or has negative values,
// or if a key is used in both the scale and distance tables, which would make
// 2-character codes ambiguous.
func (L *Levels) Check() error {
	tables := []struct {
		name string
		m    map[byte]float64
	}{{"strength", L.Strength}, {"scale", L.Scale}, {"distance", L.Distance}}
	for _, t := range tables {
		if len(t.m) == 0 {
			return fmt.Errorf("empty %s table", t.name)
		}
		for k, v := range t.m {
			if v < 0 || math.IsNaN(v) {
				return fmt.Errorf("%s %q has invalid value %g", t.name, k, v)
			}
		}
	}
	for k := range L.Scale {
		if _, ok := L.Distance[k]; ok {
			return fmt.Errorf("%q is both a scale and a distance", k)
		}
	}
	return nil
}
