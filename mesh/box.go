// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// boxFace is one face of a box: its outward half-extent axis n and the
// two half-extent axes u, v along the face, with u x v pointing along n.
type boxFace struct {
	n, u, v math32.Vector3
}

// Box returns a box of the given size, centered at the origin.
// Each face has its own 4 vertices with flat normals and
// texture coordinates covering the full [0,1] range.
func Box(lx, ly, lz float32) (*Data, error) {
	if err := checkPositive("Box", []string{"lx", "ly", "lz"}, lx, ly, lz); err != nil {
		return nil, err
	}
	b := &builder{}
	orientedBox(b, math32.Vector3{}, math32.Vec3(lx/2, 0, 0), math32.Vec3(0, ly/2, 0), math32.Vec3(0, 0, lz/2))
	return b.data(), nil
}

// Line returns a line segment from p0 to p1 drawn as a thin box
// with a square section of the given width.
func Line(p0, p1 math32.Vector3, width float32) (*Data, error) {
	if err := checkPositive("Line", []string{"width"}, width); err != nil {
		return nil, err
	}
	for _, v := range []float32{p0.X, p0.Y, p0.Z, p1.X, p1.Y, p1.Z} {
		if !isFinite(v) {
			return nil, fmt.Errorf("mesh.Line: end points %v, %v must be finite: %w", p0, p1, ErrInvalidDimension)
		}
	}
	d := p1.Sub(p0)
	ln := d.Length()
	if !(ln > 0) {
		return nil, fmt.Errorf("mesh.Line: end points must differ: %w", ErrInvalidDimension)
	}
	w := d.DivScalar(ln)
	// any axis not parallel to w gives the section frame
	ref := math32.Vec3(1, 0, 0)
	if math32.Abs(w.X) > 0.9 {
		ref = math32.Vec3(0, 1, 0)
	}
	u := ref.Cross(w).Normal()
	v := w.Cross(u)
	hw := width / 2
	b := &builder{}
	orientedBox(b, p0.Add(p1).MulScalar(0.5), u.MulScalar(hw), v.MulScalar(hw), w.MulScalar(ln/2))
	return b.data(), nil
}

// orientedBox adds a box centered at ctr with the given right-handed
// half-extent axes.
func orientedBox(b *builder, ctr, ax, ay, az math32.Vector3) {
	faces := []boxFace{
		{ax, ay, az},
		{ax.Negate(), az, ay},
		{ay, az, ax},
		{ay.Negate(), ax, az},
		{az, ax, ay},
		{az.Negate(), ay, ax},
	}
	for _, f := range faces {
		c := ctr.Add(f.n)
		b.quad(
			c.Sub(f.u).Sub(f.v),
			c.Add(f.u).Sub(f.v),
			c.Add(f.u).Add(f.v),
			c.Sub(f.u).Add(f.v),
			f.n.Normal())
	}
}

// Wedge returns a box of the given size with the top edge at -x
// collapsed onto the bottom, giving a ramp rising towards +x.
// The bottom face lies in the z = 0 plane, centered in x and y.
func Wedge(lx, ly, lz float32) (*Data, error) {
	if err := checkPositive("Wedge", []string{"lx", "ly", "lz"}, lx, ly, lz); err != nil {
		return nil, err
	}
	hx, hy := lx/2, ly/2
	b := &builder{}
	// bottom
	b.quad(math32.Vec3(-hx, -hy, 0), math32.Vec3(-hx, hy, 0), math32.Vec3(hx, hy, 0), math32.Vec3(hx, -hy, 0),
		math32.Vec3(0, 0, -1))
	// back
	b.quad(math32.Vec3(hx, -hy, 0), math32.Vec3(hx, hy, 0), math32.Vec3(hx, hy, lz), math32.Vec3(hx, -hy, lz),
		math32.Vec3(1, 0, 0))
	// ramp
	slope := math32.Vec3(-lz, 0, lx).Normal()
	b.quad(math32.Vec3(-hx, -hy, 0), math32.Vec3(hx, -hy, lz), math32.Vec3(hx, hy, lz), math32.Vec3(-hx, hy, 0),
		slope)
	// sides
	b.flatTri(math32.Vec3(-hx, -hy, 0), math32.Vec3(hx, -hy, 0), math32.Vec3(hx, -hy, lz))
	b.flatTri(math32.Vec3(-hx, hy, 0), math32.Vec3(hx, hy, lz), math32.Vec3(hx, hy, 0))
	return b.data(), nil
}

// PyramidBox returns a box of size lx, ly, lz centered at the origin,
// with a pyramid of height lh on both its top and its bottom face.
// If lh is 0 the top and bottom faces are flat, as for [Box].
func PyramidBox(lx, ly, lz, lh float32) (*Data, error) {
	if err := checkPositive("PyramidBox", []string{"lx", "ly", "lz"}, lx, ly, lz); err != nil {
		return nil, err
	}
	if !(lh >= 0) || !isFinite(lh) {
		return nil, fmt.Errorf("mesh.PyramidBox: lh = %g must be >= 0: %w", lh, ErrInvalidDimension)
	}
	hx, hy, hz := lx/2, ly/2, lz/2
	// corners counter-clockwise seen from above
	ring := [4]math32.Vector2{math32.Vec2(hx, -hy), math32.Vec2(hx, hy), math32.Vec2(-hx, hy), math32.Vec2(-hx, -hy)}
	b := &builder{}
	for i := range ring {
		p, q := ring[i], ring[(i+1)%4]
		norm := math32.Vec3(q.Y-p.Y, p.X-q.X, 0).Normal()
		b.quad(math32.Vec3(p.X, p.Y, -hz), math32.Vec3(q.X, q.Y, -hz), math32.Vec3(q.X, q.Y, hz), math32.Vec3(p.X, p.Y, hz), norm)
	}
	if lh == 0 {
		b.quad(math32.Vec3(hx, -hy, hz), math32.Vec3(hx, hy, hz), math32.Vec3(-hx, hy, hz), math32.Vec3(-hx, -hy, hz),
			math32.Vec3(0, 0, 1))
		b.quad(math32.Vec3(hx, -hy, -hz), math32.Vec3(-hx, -hy, -hz), math32.Vec3(-hx, hy, -hz), math32.Vec3(hx, hy, -hz),
			math32.Vec3(0, 0, -1))
		return b.data(), nil
	}
	top := math32.Vec3(0, 0, hz+lh)
	bot := math32.Vec3(0, 0, -hz-lh)
	for i := range ring {
		p, q := ring[i], ring[(i+1)%4]
		b.flatTri(math32.Vec3(p.X, p.Y, hz), math32.Vec3(q.X, q.Y, hz), top)
		b.flatTri(math32.Vec3(q.X, q.Y, -hz), math32.Vec3(p.X, p.Y, -hz), bot)
	}
	return b.data(), nil
}

// Tetrahedron returns a regular tetrahedron with the given edge
// length, centered at the origin, with one vertex pointing up.
func Tetrahedron(edge float32) (*Data, error) {
	if err := checkPositive("Tetrahedron", []string{"edge"}, edge); err != nil {
		return nil, err
	}
	// circumradius of the regular tetrahedron
	r := edge * math32.Sqrt(6) / 4
	apex := math32.Vec3(0, 0, r)
	baseZ := -r / 3
	baseR := edge / math32.Sqrt(3)
	var base [3]math32.Vector3
	for i := range base {
		c, s := circlePoint(i, 3)
		base[i] = math32.Vec3(baseR*c, baseR*s, baseZ)
	}
	b := &builder{}
	b.flatTri(base[0], base[2], base[1])
	for i := range base {
		b.flatTri(base[i], base[(i+1)%3], apex)
	}
	return b.data(), nil
}
