/*
 * tables.go, part of goMartini
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
	"strings"
)

// SubTable is the interaction matrix between the types of two categories.
// The first non-blank line of Matrix lists the column types, every following
// line starts with a row type, followed by one code per column.
type SubTable struct {
	Rows   Category
	Cols   Category
	Matrix string
}

// Name returns a name for the sub-table, used in error messages.
func (S *SubTable) Name() string {
	if S.Rows == S.Cols {
		return S.Rows.String()
	}
	return S.Rows.String() + "/" + S.Cols.String()
}

// Entry is one cell of a sub-table.
type Entry struct {
	Row  string
	Col  string
	Code Code
}

// Entries parses the receiver and returns its cells, row by row.
// It returns a *TableError if a row doesn't have exactly one code per column.
func (S *SubTable) Entries() ([]Entry, error) {
	var cols []string
	var ret []Entry
	for i, line := range strings.Split(S.Matrix, "\n") {
		f := strings.Fields(line)
		if len(f) == 0 {
			continue
		}
		if cols == nil {
			cols = f
			continue
		}
		if len(f) != len(cols)+1 {
			return nil, &TableError{Table: S.Name(), Line: i + 1, message: fmt.Sprintf("row %s has %d codes for %d columns", f[0], len(f)-1, len(cols))}
		}
		for j, c := range f[1:] {
			ret = append(ret, Entry{Row: f[0], Col: cols[j], Code: Code(c)})
		}
	}
	if cols == nil {
		return nil, &TableError{Table: S.Name(), message: "no column header"}
	}
	return ret, nil
}

// pairKey is an unordered pair of type names.
type pairKey [2]string

func newPairKey(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a, b}
}

// PairMap maps unordered pairs of type names to interaction codes.
// It is read-only once built.
type PairMap struct {
	codes map[pairKey]Code
}

// Lookup returns the code for the pair a, b, which is the same as for b, a.
// The boolean is false if no interaction is defined for the pair.
func (P *PairMap) Lookup(a, b string) (Code, bool) {
	c, ok := P.codes[newPairKey(a, b)]
	return c, ok
}

// Len returns the number of pairs with a code.
func (P *PairMap) Len() int {
	return len(P.codes)
}

// Tables holds the sub-tables of a force field, indexed by the row and column
// categories. Missing sub-tables are nil.
type Tables [NCategories][NCategories]*SubTable

// Order returns the non-nil sub-tables in merge order: for each category, first
// the self table, then the tables with every other category as columns.
func (T *Tables) Order() []*SubTable {
	ret := make([]*SubTable, 0, NCategories*NCategories)
	for i := range NCategories {
		if t := T[i][i]; t != nil {
			ret = append(ret, t)
		}
		for j := range NCategories {
			if j == i || T[i][j] == nil {
				continue
			}
			ret = append(ret, T[i][j])
		}
	}
	return ret
}

// Merge builds the PairMap for the receiver's sub-tables. Every row and column type must
// be in the registry R, and belong to the category of the sub-table. When two cells name the
// same unordered pair, the one merged last wins.
func (T *Tables) Merge(R *Registry) (*PairMap, error) {
	P := &PairMap{codes: make(map[pairKey]Code)}
	overwritten := 0
	for _, t := range T.Order() {
		entries, err := t.Entries()
		if err != nil {
			return nil, errDecorate(err, "Merge")
		}
		for _, e := range entries {
			if err := checkMember(R, t, e.Row, t.Rows); err != nil {
				return nil, errDecorate(err, "Merge")
			}
			if err := checkMember(R, t, e.Col, t.Cols); err != nil {
				return nil, errDecorate(err, "Merge")
			}
			k := newPairKey(e.Row, e.Col)
			if old, ok := P.codes[k]; ok && old != e.Code {
				overwritten++
				slog.Debug("Interaction code overwritten", "table", t.Name(), "a", e.Row, "b", e.Col, "old", old, "new", e.Code)
			}
			P.codes[k] = e.Code
		}
	}
	slog.Debug("Interaction tables merged", "pairs", len(P.codes), "overwritten", overwritten)
	return P, nil
}

func checkMember(R *Registry, t *SubTable, name string, c Category) error {
	p := R.Get(name)
	if p == nil {
		return &TableError{Table: t.Name(), message: fmt.Sprintf("unknown particle type %s", name)}
	}
	if p.Category != c {
		return &TableError{Table: t.Name(), message: fmt.Sprintf("particle type %s is %s, not %s", name, p.Category, c)}
	}
	return nil
}
