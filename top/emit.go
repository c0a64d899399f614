/*
 * emit.go, part of goMartini
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
	"fmt"
	"io"
	"log/slog"
	"strings"

	martini "github.com/rmera/gomartini"
)

// Markers around the merged sections.
const (
	AtomisticBegin = "; Atomistic definitions"
	AtomisticEnd   = "; End of atomistic definitions"
	CGEnd          = "; End of coarsegrained definitions"
	DummyRepel     = "DUMMY_REPEL"
)

// Emitter writes a complete Gromacs force field file for a coarse-grained
// force field, optionally merged with an atomistic one.
type Emitter struct {
	FF           *martini.FF
	Program      string     //credited in the first line of the file.
	Atomistic    *Atomistic //nil if no atomistic force field is merged.
	Extra        []*Lines   //copied verbatim before the solvents.
	SigmaEpsilon bool       //write sigma/epsilon (combination rule 2) instead of c6/c12.
}

func (E *Emitter) merging() bool {
	return E.Atomistic != nil
}

// Write writes the force field to w. The output only depends on the Emitter's contents.
// Output is buffered, but not held until the end: if an error occurs partway through,
// part of the file may already have been written to w.
func (E *Emitter) Write(w io.Writer) (err error) {
	if E.FF == nil {
		return fmt.Errorf("Emitter.Write: no force field given")
	}
	if E.SigmaEpsilon && E.merging() {
		return fmt.Errorf("Emitter.Write: sigma/epsilon output can't be merged with an atomistic force field")
	}
	pairs, err := E.FF.Pairs()
	if err != nil {
		return fmt.Errorf("Emitter.Write: %w", err)
	}
	b := bufio.NewWriter(w)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("Emitter.Write: %w", recovered(r))
		}
	}()
	ws := func(s string) {
		_, err := b.WriteString(s)
		qerr(err)
	}
	ws(sf("; This file was created automatically by %s\n", E.Program))
	if E.FF.Credit != "" {
		ws(sf("; %s\n", E.FF.Credit))
	}
	ws(";\n")
	if E.merging() {
		ws(sf("; This file contains a merged forcefield, combining %s with %s\n;\n", E.Atomistic.Name, E.FF.Name))
		ws(sf("#define %s 1e-7\n;\n", DummyRepel))
	}
	ws(E.FF.Preamble)
	comb := 1
	if E.SigmaEpsilon {
		comb = 2
	}
	ws(sf("\n[ defaults ]\n1 %d\n\n[ %s ]\n\n", comb, AtomTypes))
	ws(E.FF.Notes)

	//atomtypes
	var aanames []string
	if E.merging() {
		aanames = E.Atomistic.TypeNames()
		writeBlock(ws, E.Atomistic.AtomTypes)
	}
	types := make([]*AtomType, 0, E.FF.Types.Len())
	for _, v := range E.FF.Types.All() {
		types = append(types, AtomTypeFromParticle(v))
	}
	qerr(printGro(b, types))
	ws(CGEnd + "\n\n")

	//nonbond_params
	ws(sf("[ %s ]\n", NonBondParams))
	if E.merging() {
		writeBlock(ws, E.Atomistic.NonBond)
	}
	lj := make([]*LJPair, 0, len(pairs))
	for _, v := range pairs {
		lj = append(lj, LJPairFromParam(v, E.SigmaEpsilon))
	}
	qerr(printGro(b, lj))
	ws(CGEnd + "\n")
	dummies := E.FF.Types.Dummies()
	if len(dummies) > 0 && E.merging() && len(aanames) == 0 {
		slog.Warn("Dummy particle types defined, but the atomistic force field has no atom types", "dummies", len(dummies))
	}
	dl := make([]*LJPair, 0, len(dummies)*len(aanames))
	for _, d := range dummies {
		for _, a := range aanames {
			dl = append(dl, &LJPair{Names: [2]string{d.Name, a}, FuncType: 1, Define: DummyRepel})
		}
	}
	qerr(printGro(b, dl))
	ws("\n")

	if E.merging() {
		ws(sf("[ %s ]\n", PairTypes))
		writeBlock(ws, E.Atomistic.PairTypes)
		ws(CGEnd + "\n\n")
	}
	ws("\n")
	qerr(printGro(b, E.Extra))
	mols := make([]*MoleculeType, 0, len(E.FF.Solvents))
	for _, v := range E.FF.Solvents {
		mols = append(mols, MoleculeTypeFromSolvent(v))
	}
	qerr(printGro(b, mols))
	qerr(b.Flush())
	slog.Debug("Force field written", "types", len(types)+len(aanames), "pairs", len(lj), "dummy pairs", len(dl), "extra files", len(E.Extra))
	return nil
}

func writeBlock(ws func(string), lines []string) {
	ws(AtomisticBegin + "\n")
	if len(lines) > 0 {
		ws(strings.Join(lines, "\n") + "\n")
	}
	ws(AtomisticEnd + "\n")
}
