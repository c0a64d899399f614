/*
 * heatmap.go, part of goMartini
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


// Package ffplot draws the nonbonded interactions of a goMartini force field.
package ffplot

import (
	"fmt"
	"log/slog"
	"math"

	martini "github.com/rmera/gomartini"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// grid implements plotter.GridXYZ over a square block of a symmetric matrix.
type grid struct {
	m     *mat.SymDense
	idx   []int //the matrix rows/columns included in the grid.
	names []string
}

func newGrid(ff *martini.FF, m *mat.SymDense) *grid {
	g := new(grid)
	for i, v := range ff.Types.All() {
		if v.Virtual() {
			continue
		}
		g.idx = append(g.idx, i)
		g.names = append(g.names, v.Name)
	}
	g.m = m
	return g
}

func (g *grid) Dims() (c, r int) {
	return len(g.idx), len(g.idx)
}

func (g *grid) Z(c, r int) float64 {
	return g.m.At(g.idx[r], g.idx[c])
}

func (g *grid) X(c int) float64 {
	return float64(c)
}

func (g *grid) Y(r int) float64 {
	return float64(r)
}

func (g *grid) max() float64 {
	var ret float64
	c, r := g.Dims()
	for i := 0; i < c; i++ {
		for j := 0; j < r; j++ {
			ret = max(ret, g.Z(i, j))
		}
	}
	return ret
}

// Heatmap draws the c6 coefficients between every pair of non-virtual types
// of ff, and saves the plot to filename. The format is
// given by the extension of filename (png, svg, pdf...).
func Heatmap(ff *martini.FF, filename string) error {
	c6, _, err := ff.Matrix()
	if err != nil {
		return fmt.Errorf("Heatmap: %w", err)
	}
	g := newGrid(ff, c6)
	if g.max() == 0 {
		return fmt.Errorf("Heatmap: no interactions to plot")
	}
	h := plotter.NewHeatMap(g, palette.Heat(12, 1))
	h.Min = 0
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s %s c6", ff.Name, ff.Version)
	p.Title.Padding = 3 * vg.Millimeter
	p.Add(h)
	p.NominalX(g.names...)
	p.NominalY(g.names...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = -1
	p.X.Tick.Label.YAlign = -0.5
	side := vg.Length(len(g.names)) * vg.Centimeter / 2
	if err := p.Save(side, side, filename); err != nil {
		return fmt.Errorf("Heatmap: %w", err)
	}
	slog.Debug("Heatmap saved", "file", filename, "types", len(g.names))
	return nil
}
