// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// builder accumulates vertices and triangles for the generators.
type builder struct {
	Data
}

// add appends a vertex and returns its index.
func (b *builder) add(pos, norm math32.Vector3, tex math32.Vector2) uint32 {
	idx := uint32(len(b.Vertex))
	b.Vertex = append(b.Vertex, pos)
	b.Normal = append(b.Normal, norm)
	b.TexCoord = append(b.TexCoord, tex)
	return idx
}

func (b *builder) tri(i0, i1, i2 uint32) {
	b.Index = append(b.Index, Triangle{i0, i1, i2})
}

// quad adds a flat quad with corners a, b, c, d in counter-clockwise
// order seen from the side the normal points to.
func (b *builder) quad(a, bb, c, d, norm math32.Vector3) {
	i0 := b.add(a, norm, math32.Vec2(0, 0))
	i1 := b.add(bb, norm, math32.Vec2(1, 0))
	i2 := b.add(c, norm, math32.Vec2(1, 1))
	i3 := b.add(d, norm, math32.Vec2(0, 1))
	b.tri(i0, i1, i2)
	b.tri(i0, i2, i3)
}

// flatTri adds a flat triangle with its own three vertices.
func (b *builder) flatTri(a, bb, c math32.Vector3) {
	norm := bb.Sub(a).Cross(c.Sub(a)).Normal()
	i0 := b.add(a, norm, math32.Vec2(0, 0))
	i1 := b.add(bb, norm, math32.Vec2(1, 0))
	i2 := b.add(c, norm, math32.Vec2(0.5, 1))
	b.tri(i0, i1, i2)
}

func (b *builder) data() *Data {
	md := b.Data
	return &md
}

// isFinite returns whether v is neither NaN nor infinite.
func isFinite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

// checkPositive returns an [ErrInvalidDimension] error naming
// the first of the given values that is not a finite value > 0.
func checkPositive(fn string, names []string, vals ...float32) error {
	for i, v := range vals {
		if !(v > 0) || !isFinite(v) {
			return fmt.Errorf("mesh.%s: %s = %g must be > 0: %w", fn, names[i], v, ErrInvalidDimension)
		}
	}
	return nil
}

func checkDivisions(fn, name string, divs int) error {
	if divs < 3 {
		return fmt.Errorf("mesh.%s: %s = %d must be >= 3: %w", fn, name, divs, ErrInvalidDimension)
	}
	return nil
}

// circlePoint returns the unit circle point for step i of divs,
// stepping 2π/divs from angle 0.
func circlePoint(i, divs int) (cos, sin float32) {
	ang := 2 * math32.Pi * float32(i) / float32(divs)
	return math32.Cos(ang), math32.Sin(ang)
}
