/*
 * errors.go, part of goMartini
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
	"strings"
)

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
// If passed an empty string, Decorate just returns the current decoration.
type Error interface {
	Error() string
	Decorate(string) []string
}

// decoration is embedded by the concrete errors of the package.
type decoration struct {
	deco []string
}

// Decorate adds new information to the error
func (d *decoration) Decorate(deco string) []string {
	if deco != "" {
		d.deco = append(d.deco, deco)
	}
	return d.deco
}

func (d *decoration) trace() string {
	if len(d.deco) == 0 {
		return ""
	}
	return " (" + strings.Join(d.deco, " <- ") + ")"
}

// TableError is returned when an interaction sub-table can't be parsed or merged.
// Since the tables are static data, these errors are always critical.
type TableError struct {
	decoration
	Table   string //the sub-table name, i.e. "ring/standard"
	Line    int    //1-based line in the matrix, 0 if the problem isn't tied to one.
	message string
}

func (err *TableError) Error() string {
	if err.Line > 0 {
		return fmt.Sprintf("interaction table %s, line %d: %s%s", err.Table, err.Line, err.message, err.trace())
	}
	return fmt.Sprintf("interaction table %s: %s%s", err.Table, err.message, err.trace())
}

// CodeError is returned when an interaction code contains letters not present in
// the corresponding lookup table, or has the wrong length.
type CodeError struct {
	decoration
	Code    Code
	message string
}

func (err *CodeError) Error() string {
	return fmt.Sprintf("interaction code %q: %s%s", string(err.Code), err.message, err.trace())
}

// RegistryError signals an inconsistent particle type list (repeated names, wrong masses
// or unknown categories).
type RegistryError struct {
	decoration
	Name    string
	message string
}

func (err *RegistryError) Error() string {
	if err.Name == "" {
		return fmt.Sprintf("particle types: %s%s", err.message, err.trace())
	}
	return fmt.Sprintf("particle type %s: %s%s", err.Name, err.message, err.trace())
}

// errDecorate decorates err with the caller's name if err implements Error,
// and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
	}
	return err
}
