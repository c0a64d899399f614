/*
 * groio.go, part of goMartini
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
	"fmt"
	"io"
	"strconv"
	"strings"

	martini "github.com/rmera/gomartini"
)

// AtomType is one line of the atomtypes section.
type AtomType struct {
	Name   string
	AtNum  int
	Mass   float64
	Charge float64
	Ptype  string
	martini.LJ
}

// Returns the AtomType for the particle type p. Coarse-grained types always have
// zero Lennard-Jones parameters, as their interactions are given in nonbond_params.
func AtomTypeFromParticle(p *martini.ParticleType) *AtomType {
	return &AtomType{Name: p.Name, Mass: p.Mass, Ptype: p.Ptype()}
}

// Reads a string with the appropriate gromacs topology format
// to return a pointer to AtomType. The line must have 7 fields:
// name atnum mass charge ptype c6 c12. If sigmaep is true, the last two
// are read as sigma/epsilon and transformed to c6/c12.
func AtomTypeFromGro(s string, sigmaep bool) (ret *AtomType, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("Couldn't read atom type from string. Error: %w String:%s", recovered(r), s)
		}
	}()
	s = cleanString(s)
	f := fi(s)
	if len(f) < 7 {
		return nil, fmt.Errorf("Couldn't read atom type from string: %d fields, 7 expected. String:%s", len(f), s)
	}
	ret = new(AtomType)
	ret.Name = f[0]
	ret.AtNum, err = strconv.Atoi(f[1])
	qerr(err)
	ret.Mass, err = strconv.ParseFloat(f[2], 64)
	qerr(err)
	ret.Charge, err = strconv.ParseFloat(f[3], 64)
	qerr(err)
	ret.Ptype = f[4]
	ret.LJ, err = c6c12OrSigmaEpsilon(f[5], f[6], sigmaep)
	qerr(err)
	return ret, err
}

func coef(v float64) string {
	if v == 0 {
		return "0.0"
	}
	return sf("%e", v)
}

func (A *AtomType) ToGro() (string, error) {
	return sf("%5s %4d %10.3f %10.3f     %1s   %-13s %s\n", A.Name, A.AtNum, A.Mass, A.Charge, A.Ptype, coef(A.C6), coef(A.C12)), nil
}

// LJPair is one line of the nonbond_params section.
type LJPair struct {
	Names    [2]string
	FuncType int
	martini.LJ
	//If true, the pair is written as sigma/epsilon.
	SigmaEpsilon bool
	//If not empty, the pair is written with zero c6 and this
	//preprocessor macro for c12, i.e. DUMMY_REPEL.
	Define string
}

// Returns the LJPair for a decoded pair of particle types.
func LJPairFromParam(p martini.PairParam, sigmaep bool) *LJPair {
	return &LJPair{Names: [2]string{p.A.Name, p.B.Name}, FuncType: 1, LJ: p.LJ, SigmaEpsilon: sigmaep}
}

// Reads a nonbond_params line: name1 name2 functype c6 c12. If sigmaep is true, the last two
// fields are read as sigma/epsilon, and transformed to c6/c12.
func LJPairFromGro(s string, sigmaep bool) (ret *LJPair, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("Couldn't read nonbonded pair from string. Error: %w String:%s", recovered(r), s)
		}
	}()
	s = cleanString(s)
	f := fi(s)
	if len(f) < 5 {
		return nil, fmt.Errorf("Couldn't read nonbonded pair from string: %d fields, 5 expected. String:%s", len(f), s)
	}
	ret = new(LJPair)
	ret.Names[0] = f[0]
	ret.Names[1] = f[1]
	ret.FuncType, err = strconv.Atoi(f[2])
	qerr(err)
	if _, err := strconv.ParseFloat(f[4], 64); err != nil {
		//probably a macro
		ret.Define = f[4]
		ret.C6, err = strconv.ParseFloat(f[3], 64)
		qerr(err)
		return ret, nil
	}
	ret.LJ, err = c6c12OrSigmaEpsilon(f[3], f[4], sigmaep)
	qerr(err)
	ret.SigmaEpsilon = sigmaep
	return ret, err

}

func (L *LJPair) ToGro() (string, error) {
	if L.Define != "" {
		return sf(" %7s  %7s  %2d 0.0 %s\n", L.Names[0], L.Names[1], L.FuncType, L.Define), nil
	}
	c6, c12 := L.C6, L.C12
	if L.SigmaEpsilon {
		c6, c12 = L.LJ.SigmaEpsilon()
	}
	return sf(" %7s  %7s %2d  %e %e\n", L.Names[0], L.Names[1], L.FuncType, c6, c12), nil
}

func c6c12OrSigmaEpsilon(num1, num2 string, sigmaepsilon bool) (martini.LJ, error) {
	var c6, c12 float64
	var err error
	c6, err = strconv.ParseFloat(num1, 64)
	if err != nil {
		return martini.LJ{}, err
	}
	c12, err = strconv.ParseFloat(num2, 64)
	if err != nil {
		return martini.LJ{}, err
	}
	if sigmaepsilon {
		return martini.LJFromSigmaEpsilon(c6, c12), nil

	}
	return martini.LJ{C6: c6, C12: c12}, nil

}

type Atom struct {
	ID      int
	Type    string
	MolID   int
	MolName string
	Name    string
	CGroup  int
	Charge  float64
}

// Writes the atom to a Gromacs topology line
func (A *Atom) ToGro() (string, error) {
	return sf(" %-6d %-7s %-7d %-7s %-7s %-7d %g\n", A.ID, A.Type, A.MolID, A.MolName, A.Name, A.CGroup, A.Charge), nil
}

// MoleculeType is a moleculetype section with its atoms. Bonded terms
// are not supported.
type MoleculeType struct {
	Name    string
	NrExcl  int
	Comment string //written before the section, if not empty.
	Atoms   []*Atom
}

// Returns a one-bead MoleculeType for the solvent s.
func MoleculeTypeFromSolvent(s martini.Solvent) *MoleculeType {
	return &MoleculeType{
		Name:    s.Name,
		NrExcl:  1,
		Comment: s.Comment,
		Atoms:   []*Atom{{ID: 1, Type: s.Type, MolID: 1, MolName: s.Name, Name: s.Name, CGroup: 1}},
	}
}

func (M *MoleculeType) ToGro() (string, error) {
	var b strings.Builder
	if M.Comment != "" {
		b.WriteString(sf(";;;;;; %s\n\n", M.Comment))
	}
	b.WriteString("[ moleculetype ]\n; molname       nrexcl\n")
	b.WriteString(sf("  %-13s %d\n\n", M.Name, M.NrExcl))
	b.WriteString("[ atoms ]\n;id     type    resnr   residu  atom    cgnr    charge\n")
	for _, v := range M.Atoms {
		s, err := v.ToGro()
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	b.WriteString("\n")
	return b.String(), nil
}

type groer interface {
	ToGro() (string, error)
}

func printGro[G ~[]E, E groer](r io.StringWriter, g G) error {
	for _, v := range g {
		m, e := v.ToGro()
		if e != nil {
			return e
		}
		_, e = r.WriteString(m)
		if e != nil {
			return e
		}
	}
	return nil
}
