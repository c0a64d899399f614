/*
 * types.go, part of goMartini
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
	"slices"
)

// Category is one of the structural classes of particle types.
// The order of the constants is the order in which types are listed
// and in which interaction sub-tables are merged.
type Category int

const (
	Standard        Category = iota // 4:1 mapping
	Ring                            // 2-3:1 mapping, used for ring compounds
	VirtualStandard                 // massless counterparts of Standard
	VirtualRing                     // massless counterparts of Ring
	Special                         // antifreeze, dummies, etc.
	NCategories     int      = iota
)

var categoryNames = [NCategories]string{"standard", "ring", "virtual-standard", "virtual-ring", "special"}

func (c Category) String() string {
	if c < 0 || int(c) >= NCategories {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Virtual returns true for the virtual-site categories.
func (c Category) Virtual() bool {
	return c == VirtualStandard || c == VirtualRing
}

// ParseCategory returns the Category named s.
func ParseCategory(s string) (Category, error) {
	for i, v := range categoryNames {
		if v == s {
			return Category(i), nil
		}
	}
	return -1, fmt.Errorf("unknown particle category %q", s)
}

// Categories returns all the categories, in order.
func Categories() []Category {
	ret := make([]Category, NCategories)
	for i := range ret {
		ret[i] = Category(i)
	}
	return ret
}

// ParticleType is a coarse-grained interaction site type.
type ParticleType struct {
	Name     string
	Category Category
	Mass     float64
	//Dummy types get a weak repulsion with every type of a merged atomistic
	//force field, instead of table-driven interactions.
	Dummy bool
}

// Virtual returns true if the type is a virtual site (no mass).
func (P *ParticleType) Virtual() bool {
	return P.Category.Virtual()
}

// Ptype returns the Gromacs particle type: "V" for virtual sites, "A" otherwise.
func (P *ParticleType) Ptype() string {
	if P.Virtual() {
		return "V"
	}
	return "A"
}

// Registry is the ordered, read-only set of particle types of a force field.
type Registry struct {
	types  []*ParticleType
	index  map[string]int
	counts [NCategories]int
}

// NewRegistry returns a registry with the given types, ordered by category and, within
// each category, in the order given. It returns an error if a name is repeated, if a virtual
// type has mass, or if a non-virtual, non-dummy type has no mass.
func NewRegistry(types []*ParticleType) (*Registry, error) {
	R := &Registry{
		types: slices.Clone(types),
		index: make(map[string]int, len(types)),
	}
	slices.SortStableFunc(R.types, func(a, b *ParticleType) int {
		return int(a.Category) - int(b.Category)
	})
	for i, v := range R.types {
		if v.Name == "" {
			return nil, &RegistryError{message: fmt.Sprintf("type number %d has no name", i+1)}
		}
		if v.Category < 0 || int(v.Category) >= NCategories {
			return nil, &RegistryError{Name: v.Name, message: fmt.Sprintf("invalid category %d", int(v.Category))}
		}
		if _, ok := R.index[v.Name]; ok {
			return nil, &RegistryError{Name: v.Name, message: "defined more than once"}
		}
		switch {
		case v.Virtual() && v.Mass != 0:
			return nil, &RegistryError{Name: v.Name, message: fmt.Sprintf("virtual site with mass %g", v.Mass)}
		case !v.Virtual() && !v.Dummy && v.Mass <= 0:
			return nil, &RegistryError{Name: v.Name, message: fmt.Sprintf("non-virtual type with mass %g", v.Mass)}
		case v.Mass < 0:
			return nil, &RegistryError{Name: v.Name, message: fmt.Sprintf("negative mass %g", v.Mass)}
		}
		R.index[v.Name] = i
		R.counts[v.Category]++
	}
	return R, nil
}

// Len returns the number of types in the registry.
func (R *Registry) Len() int {
	return len(R.types)
}

// Type returns the ith type in the registry.
func (R *Registry) Type(i int) *ParticleType {
	return R.types[i]
}

// All returns the types in the registry, in order. The slice is a copy,
// but the elements are shared, and should not be modified.
func (R *Registry) All() []*ParticleType {
	return slices.Clone(R.types)
}

// Get returns the type with the given name, or nil if there is none.
func (R *Registry) Get(name string) *ParticleType {
	i, ok := R.index[name]
	if !ok {
		return nil
	}
	return R.types[i]
}

// Index returns the position of the type name in the registry, or -1.
func (R *Registry) Index(name string) int {
	i, ok := R.index[name]
	if !ok {
		return -1
	}
	return i
}

// IsVirtual returns true if name is a virtual site type in the registry.
func (R *Registry) IsVirtual(name string) bool {
	t := R.Get(name)
	return t != nil && t.Virtual()
}

// InCategory returns the types belonging to category c, in order.
func (R *Registry) InCategory(c Category) []*ParticleType {
	ret := make([]*ParticleType, 0, R.counts[c])
	for _, v := range R.types {
		if v.Category == c {
			ret = append(ret, v)
		}
	}
	return ret
}

// Dummies returns the dummy types in the registry.
func (R *Registry) Dummies() []*ParticleType {
	var ret []*ParticleType
	for _, v := range R.types {
		if v.Dummy {
			ret = append(ret, v)
		}
	}
	return ret
}
