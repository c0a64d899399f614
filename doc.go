/*
 * doc.go, part of goMartini.
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

/*
Package martini builds MARTINI-style coarse-grained force fields from a set of
particle types and interaction tables.



	**goMartini Capabilities**


    Keeps the particle types of the force field, classified in standard, ring,
	virtual-site (standard and ring) and special categories.

    Merges the interaction sub-tables (one per pair of categories) into a single
	map from pairs of type names to interaction codes.

    Decodes interaction codes (i.e. "Aa2": strength, scale and distance) into
	Lennard-Jones C6/C12 coefficients, or sigma/epsilon.

    Reads force field definitions from YAML files. The MARTINI 2.1 definition is
	embedded and returned by Default.

The subpackage top writes the Gromacs topology file for a force field,
optionally merged with an atomistic one, and ffplot draws the interaction
matrix of a force field.
*/
package martini
