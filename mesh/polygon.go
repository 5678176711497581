// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Polygon returns a flat polygon in the z = 0 plane, facing +z.
// The outline may be convex or concave, in either orientation, and
// is triangulated by ear clipping.
func Polygon(outline []math32.Vector2) (*Data, error) {
	pts, err := normalizeOutline("Polygon", outline)
	if err != nil {
		return nil, err
	}
	tris := Triangulate(pts)
	b := &builder{}
	bb := outlineBounds(pts)
	addCap(b, pts, tris, bb, 0, math32.Vec3(0, 0, 1))
	return b.data(), nil
}

// ExtrudedPolygon returns a prism built from the given outline in the
// xy plane, extruded along z from 0 to height. The caps are triangulated
// by ear clipping, so concave outlines are supported. Each side wall
// has flat normals.
func ExtrudedPolygon(outline []math32.Vector2, height float32) (*Data, error) {
	if err := checkPositive("ExtrudedPolygon", []string{"height"}, height); err != nil {
		return nil, err
	}
	pts, err := normalizeOutline("ExtrudedPolygon", outline)
	if err != nil {
		return nil, err
	}
	tris := Triangulate(pts)
	bb := outlineBounds(pts)
	b := &builder{}
	addCap(b, pts, tris, bb, 0, math32.Vec3(0, 0, -1))
	addCap(b, pts, tris, bb, height, math32.Vec3(0, 0, 1))

	perim := float32(0)
	for i := range pts {
		perim += pts[(i+1)%len(pts)].Sub(pts[i]).Length()
	}
	dist := float32(0)
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		d := q.Sub(p)
		norm := math32.Vec3(d.Y, -d.X, 0).Normal()
		u0 := dist / perim
		dist += d.Length()
		u1 := dist / perim
		i0 := b.add(math32.Vec3(p.X, p.Y, 0), norm, math32.Vec2(u0, 0))
		i1 := b.add(math32.Vec3(q.X, q.Y, 0), norm, math32.Vec2(u1, 0))
		i2 := b.add(math32.Vec3(q.X, q.Y, height), norm, math32.Vec2(u1, 1))
		i3 := b.add(math32.Vec3(p.X, p.Y, height), norm, math32.Vec2(u0, 1))
		b.tri(i0, i1, i2)
		b.tri(i0, i2, i3)
	}
	return b.data(), nil
}

// addCap adds the triangulated outline at height z. The triangles are
// counter-clockwise seen from above, and are flipped for a -z normal.
func addCap(b *builder, pts []math32.Vector2, tris []Triangle, bb math32.Box2, z float32, norm math32.Vector3) {
	sz := bb.Size()
	off := uint32(len(b.Vertex))
	for _, p := range pts {
		tc := math32.Vec2((p.X-bb.Min.X)/sz.X, (p.Y-bb.Min.Y)/sz.Y)
		b.add(math32.Vec3(p.X, p.Y, z), norm, tc)
	}
	for _, t := range tris {
		if norm.Z > 0 {
			b.tri(off+t[0], off+t[1], off+t[2])
		} else {
			b.tri(off+t[0], off+t[2], off+t[1])
		}
	}
}

func outlineBounds(pts []math32.Vector2) math32.Box2 {
	bb := math32.B2Empty()
	for _, p := range pts {
		bb.ExpandByPoint(p)
	}
	return bb
}

// SignedArea returns the signed area of the closed outline,
// positive for counter-clockwise orientation.
func SignedArea(outline []math32.Vector2) float32 {
	a := float32(0)
	n := len(outline)
	for i := range outline {
		p, q := outline[i], outline[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// normalizeOutline validates the outline and returns a copy
// in counter-clockwise order.
func normalizeOutline(fn string, outline []math32.Vector2) ([]math32.Vector2, error) {
	n := len(outline)
	if n < 3 {
		return nil, fmt.Errorf("mesh.%s: outline has %d points, need at least 3: %w", fn, n, ErrDegeneratePolygon)
	}
	for i, p := range outline {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return nil, fmt.Errorf("mesh.%s: point %d is not finite: %w", fn, i, ErrDegeneratePolygon)
		}
		if p == outline[(i+1)%n] {
			return nil, fmt.Errorf("mesh.%s: points %d and %d coincide: %w", fn, i, (i+1)%n, ErrDegeneratePolygon)
		}
	}
	area := SignedArea(outline)
	if area == 0 {
		return nil, fmt.Errorf("mesh.%s: outline has zero area: %w", fn, ErrDegeneratePolygon)
	}
	if i, j, ok := selfIntersection(outline); ok {
		return nil, fmt.Errorf("mesh.%s: edges %d and %d intersect: %w", fn, i, j, ErrDegeneratePolygon)
	}
	pts := append([]math32.Vector2(nil), outline...)
	if area < 0 {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return pts, nil
}

// selfIntersection returns the first pair of non-adjacent edges that
// touch or cross, where edge i goes from point i to point i+1.
func selfIntersection(pts []math32.Vector2) (int, int, bool) {
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				// adjacent edges share an endpoint; they only overlap if collinear and folded back
				c := pts[(j+1)%n]
				if j == i+1 && cross2(a, b, c) == 0 && b.Sub(a).Dot(c.Sub(b)) < 0 {
					return i, j, true
				}
				continue
			}
			if segmentsTouch(a, b, pts[j], pts[(j+1)%n]) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// cross2 returns the z component of (b - a) x (c - a):
// positive when a, b, c turn counter-clockwise.
func cross2(a, b, c math32.Vector2) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func sign(v float32) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func segmentsTouch(p1, p2, q1, q2 math32.Vector2) bool {
	d1 := sign(cross2(q1, q2, p1))
	d2 := sign(cross2(q1, q2, p2))
	d3 := sign(cross2(p1, p2, q1))
	d4 := sign(cross2(p1, p2, q2))
	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	return (d1 == 0 && onSegment(q1, q2, p1)) ||
		(d2 == 0 && onSegment(q1, q2, p2)) ||
		(d3 == 0 && onSegment(p1, p2, q1)) ||
		(d4 == 0 && onSegment(p1, p2, q2))
}

// onSegment returns whether p, known to be collinear with a and b,
// lies within their bounding box.
func onSegment(a, b, p math32.Vector2) bool {
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}

// Triangulate returns the triangles of a simple polygon given in
// counter-clockwise order, using ear clipping. The result has
// len(pts) - 2 triangles, indexing into pts, all counter-clockwise.
// For a convex polygon, every vertex is an ear and the result is
// equivalent to a fan.
func Triangulate(pts []math32.Vector2) []Triangle {
	n := len(pts)
	if n < 3 {
		return nil
	}
	idx := make([]uint32, n)
	for i := range idx {
		idx[i] = uint32(i)
	}
	tris := make([]Triangle, 0, n-2)
	for len(idx) > 3 {
		ear := findEar(pts, idx)
		m := len(idx)
		prev, next := idx[(ear+m-1)%m], idx[(ear+1)%m]
		tris = append(tris, Triangle{prev, idx[ear], next})
		idx = append(idx[:ear], idx[ear+1:]...)
	}
	return append(tris, Triangle{idx[0], idx[1], idx[2]})
}

// findEar returns the position in idx of a vertex that can be clipped.
// If rounding leaves no strict ear, it falls back to the most convex vertex.
func findEar(pts []math32.Vector2, idx []uint32) int {
	m := len(idx)
	best, bestCross := 0, float32(-math32.Infinity)
	for i := range idx {
		a, b, c := pts[idx[(i+m-1)%m]], pts[idx[i]], pts[idx[(i+1)%m]]
		cr := cross2(a, b, c)
		if cr > bestCross {
			best, bestCross = i, cr
		}
		if cr <= 0 {
			continue // reflex or flat
		}
		ear := true
		for j := range idx {
			if j == i || j == (i+m-1)%m || j == (i+1)%m {
				continue
			}
			p := pts[idx[j]]
			if p == a || p == b || p == c {
				continue
			}
			if inTriangle(a, b, c, p) {
				ear = false
				break
			}
		}
		if ear {
			return i
		}
	}
	return best
}

// inTriangle returns whether p is inside or on the boundary of the
// counter-clockwise triangle a, b, c.
func inTriangle(a, b, c, p math32.Vector2) bool {
	return cross2(a, b, p) >= 0 && cross2(b, c, p) >= 0 && cross2(c, a, p) >= 0
}
