/*
 * definition.go, part of goMartini
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
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed forcefields/martini21.yaml
var martini21 []byte

// Definition is the literal description of a force field, as read from
// a YAML file. Build turns it into an FF.
type Definition struct {
	Name     string       `yaml:"name"`
	Version  string       `yaml:"version"`
	Credit   string       `yaml:"credit"`
	Preamble string       `yaml:"preamble"`
	Notes    string       `yaml:"notes"`
	Levels   LevelsDef    `yaml:"levels"`
	Types    []TypeDef    `yaml:"types"`
	Tables   []TableDef   `yaml:"tables"`
	Solvents []SolventDef `yaml:"solvents"`
}

// LevelsDef contains the lookup tables for interaction codes, with
// single-character keys.
type LevelsDef struct {
	Strength map[string]float64 `yaml:"strength"`
	Scale    map[string]float64 `yaml:"scale"`
	Distance map[string]float64 `yaml:"distance"`
}

type TypeDef struct {
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`
	Mass     float64  `yaml:"mass"`
	Dummy    bool     `yaml:"dummy"`
}

type TableDef struct {
	Rows   Category `yaml:"rows"`
	Cols   Category `yaml:"cols"`
	Matrix string   `yaml:"matrix"`
}

type SolventDef struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Comment string `yaml:"comment"`
}

// UnmarshalYAML reads a category from its name.
func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	cat, err := ParseCategory(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = cat
	return nil
}

// MarshalYAML writes the category name.
func (c Category) MarshalYAML() (any, error) {
	return c.String(), nil
}

// ReadDefinition decodes a YAML force field definition from r.
// Unknown fields are an error.
func ReadDefinition(r io.Reader) (*Definition, error) {
	D := new(Definition)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(D); err != nil {
		return nil, fmt.Errorf("reading force field definition: %w", err)
	}
	return D, nil
}

// DefinitionFromFile reads the YAML force field definition in the file name.
func DefinitionFromFile(name string) (*Definition, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	D, err := ReadDefinition(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return D, nil
}

// Default returns the definition of the MARTINI 2.1 force field.
func Default() (*Definition, error) {
	return ReadDefinition(bytes.NewReader(martini21))
}

func levelTable(name string, m map[string]float64) (map[byte]float64, error) {
	ret := make(map[byte]float64, len(m))
	for k, v := range m {
		if len(k) != 1 {
			return nil, fmt.Errorf("%s key %q is not a single character", name, k)
		}
		ret[k[0]] = v
	}
	return ret, nil
}

// BuildLevels returns the code-decoding levels of the receiver.
func (D *Definition) BuildLevels() (*Levels, error) {
	var err error
	L := new(Levels)
	if L.Strength, err = levelTable("strength", D.Levels.Strength); err != nil {
		return nil, err
	}
	if L.Scale, err = levelTable("scale", D.Levels.Scale); err != nil {
		return nil, err
	}
	if L.Distance, err = levelTable("distance", D.Levels.Distance); err != nil {
		return nil, err
	}
	if err = L.Check(); err != nil {
		return nil, err
	}
	return L, nil
}

// BuildTables arranges the receiver's sub-tables by category pair. Defining
// the same pair of categories twice is an error.
func (D *Definition) BuildTables() (*Tables, error) {
	T := new(Tables)
	for _, v := range D.Tables {
		if v.Rows < 0 || int(v.Rows) >= NCategories || v.Cols < 0 || int(v.Cols) >= NCategories {
			return nil, &TableError{Table: fmt.Sprintf("%s/%s", v.Rows, v.Cols), message: "invalid category"}
		}
		t := &SubTable{Rows: v.Rows, Cols: v.Cols, Matrix: v.Matrix}
		if T[v.Rows][v.Cols] != nil {
			return nil, &TableError{Table: t.Name(), message: "defined more than once"}
		}
		T[v.Rows][v.Cols] = t
	}
	return T, nil
}

// Build validates the receiver and assembles the force field it describes.
func (D *Definition) Build() (*FF, error) {
	types := make([]*ParticleType, 0, len(D.Types))
	for _, v := range D.Types {
		types = append(types, &ParticleType{Name: v.Name, Category: v.Category, Mass: v.Mass, Dummy: v.Dummy})
	}
	R, err := NewRegistry(types)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	L, err := D.BuildLevels()
	if err != nil {
		return nil, fmt.Errorf("force field %s levels: %w", D.Name, err)
	}
	T, err := D.BuildTables()
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	P, err := T.Merge(R)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	F := &FF{
		Name:     D.Name,
		Version:  D.Version,
		Credit:   D.Credit,
		Preamble: D.Preamble,
		Notes:    D.Notes,
		Types:    R,
		Codes:    P,
		Levels:   L,
	}
	for _, v := range D.Solvents {
		if R.Get(v.Type) == nil {
			return nil, &RegistryError{Name: v.Type, message: fmt.Sprintf("used by solvent %s but not defined", v.Name)}
		}
		F.Solvents = append(F.Solvents, Solvent{Name: v.Name, Type: v.Type, Comment: v.Comment})
	}
	return F, nil
}
