// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh generates triangle meshes for canonical solids
// (box, sphere, cylinder, cone, wedge, extruded polygon, etc.)
// and wraps externally loaded vertex data.
//
// The construction functions assume the following coordinate convention:
// x pointing forward, y pointing left, z pointing up. Round shapes are
// built around the z axis. All generated meshes use counter-clockwise
// triangle winding when viewed from outside of the solid.
//
// All functions are pure and deterministic: the same parameters always
// produce the same [Data], so meshes may be generated concurrently.
package mesh

//go:generate core generate

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
)

var (
	// ErrInvalidDimension is returned for non-positive or otherwise
	// geometrically invalid primitive parameters.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrDegeneratePolygon is returned for a polygon outline with fewer
	// than 3 points, zero area, or self-intersecting edges.
	ErrDegeneratePolygon = errors.New("degenerate polygon")

	// ErrIndexOutOfRange is returned when a triangle index does not
	// reference a vertex.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidMesh is returned when optional per-vertex arrays do not
	// match the number of vertices, or the index list is not made of triangles.
	ErrInvalidMesh = errors.New("invalid mesh")
)

// Triangle holds the three vertex indexes of a triangle,
// in counter-clockwise order seen from the outside.
type Triangle [3]uint32

// Data is an indexed triangle mesh. Normal and TexCoord are either
// empty or have the same length as Vertex.
// Data is not modified after it has been generated, and can be
// shared among any number of graph instructions.
type Data struct {

	// Vertex has the vertex positions.
	Vertex []math32.Vector3

	// Normal has the per-vertex normals.
	Normal []math32.Vector3

	// TexCoord has the per-vertex texture coordinates.
	TexCoord []math32.Vector2

	// Index has the triangles, referencing Vertex.
	Index []Triangle
}

// NumVertex returns the number of vertices.
func (md *Data) NumVertex() int { return len(md.Vertex) }

// NumTriangle returns the number of triangles.
func (md *Data) NumTriangle() int { return len(md.Index) }

// Validate checks that all indexes are within bounds
// and that the optional arrays have consistent lengths.
func (md *Data) Validate() error {
	nv := len(md.Vertex)
	if len(md.Normal) != 0 && len(md.Normal) != nv {
		return fmt.Errorf("mesh: %d normals for %d vertices: %w", len(md.Normal), nv, ErrInvalidMesh)
	}
	if len(md.TexCoord) != 0 && len(md.TexCoord) != nv {
		return fmt.Errorf("mesh: %d texture coordinates for %d vertices: %w", len(md.TexCoord), nv, ErrInvalidMesh)
	}
	for ti, tri := range md.Index {
		for _, vi := range tri {
			if int(vi) >= nv {
				return fmt.Errorf("mesh: triangle %d references vertex %d of %d: %w", ti, vi, nv, ErrIndexOutOfRange)
			}
		}
	}
	return nil
}

// BBox returns the bounding box of the vertices.
func (md *Data) BBox() math32.Box3 {
	bb := math32.B3Empty()
	for _, v := range md.Vertex {
		bb.ExpandByPoint(v)
	}
	return bb
}

// Corners returns the three vertex positions of triangle i.
func (md *Data) Corners(i int) (a, b, c math32.Vector3) {
	tri := md.Index[i]
	return md.Vertex[tri[0]], md.Vertex[tri[1]], md.Vertex[tri[2]]
}

// SurfaceArea returns the total area of all triangles.
func (md *Data) SurfaceArea() float32 {
	area := float32(0)
	for i := range md.Index {
		a, b, c := md.Corners(i)
		area += b.Sub(a).Cross(c.Sub(a)).Length() * 0.5
	}
	return area
}

// SignedVolume returns the volume enclosed by the mesh, computed with the
// divergence theorem. It is only meaningful for closed meshes, and is
// positive when the winding is counter-clockwise seen from outside.
func (md *Data) SignedVolume() float32 {
	vol := float32(0)
	for i := range md.Index {
		a, b, c := md.Corners(i)
		vol += a.Dot(b.Cross(c))
	}
	return vol / 6
}

// Clone returns a deep copy.
func (md *Data) Clone() *Data {
	return &Data{
		Vertex:   cloneSlice(md.Vertex),
		Normal:   cloneSlice(md.Normal),
		TexCoord: cloneSlice(md.TexCoord),
		Index:    cloneSlice(md.Index),
	}
}

func cloneSlice[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

// Transformed returns a copy of the mesh with positions transformed
// by the given matrix, and normals by its inverse transpose.
// If the matrix mirrors space (negative determinant), the triangle
// winding is reversed so that it stays counter-clockwise from outside.
func (md *Data) Transformed(m *math32.Matrix4) *Data {
	nd := &Data{
		Vertex:   make([]math32.Vector3, len(md.Vertex)),
		TexCoord: cloneSlice(md.TexCoord),
		Index:    cloneSlice(md.Index),
	}
	for i, v := range md.Vertex {
		nd.Vertex[i] = v.MulMatrix4(m)
	}
	if len(md.Normal) > 0 {
		nd.Normal = make([]math32.Vector3, len(md.Normal))
		inv, err := m.Inverse()
		for i, n := range md.Normal {
			if err != nil {
				nd.Normal[i] = n
				continue
			}
			nd.Normal[i] = mulInverseTranspose(inv, n).Normal()
		}
	}
	if det3(m) < 0 {
		for i, tri := range nd.Index {
			nd.Index[i] = Triangle{tri[0], tri[2], tri[1]}
		}
	}
	return nd
}

// mulInverseTranspose multiplies n by the transpose of the upper 3x3
// of the given (already inverted) column-major matrix.
func mulInverseTranspose(inv *math32.Matrix4, n math32.Vector3) math32.Vector3 {
	return math32.Vec3(
		inv[0]*n.X+inv[1]*n.Y+inv[2]*n.Z,
		inv[4]*n.X+inv[5]*n.Y+inv[6]*n.Z,
		inv[8]*n.X+inv[9]*n.Y+inv[10]*n.Z,
	)
}

// det3 returns the determinant of the upper 3x3 of m.
func det3(m *math32.Matrix4) float32 {
	return m[0]*(m[5]*m[10]-m[9]*m[6]) -
		m[4]*(m[1]*m[10]-m[9]*m[2]) +
		m[8]*(m[1]*m[6]-m[5]*m[2])
}
