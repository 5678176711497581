// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"slices"

	"cogentcore.org/core/math32"
)

// Kinds are the kinds of primitive solids that can be requested.
type Kinds int32 //enums:enum -trim-prefix Kind

const (
	// KindBox is a box with Dims lx, ly, lz.
	KindBox Kinds = iota

	// KindSphere is a sphere with Dims radius.
	KindSphere

	// KindEllipsoid is an ellipsoid with Dims rx, ry, rz.
	KindEllipsoid

	// KindCylinder is a cylinder with Dims radius, height.
	KindCylinder

	// KindCone is a cone with Dims radius, height.
	KindCone

	// KindTruncatedCone is a truncated cone with Dims
	// radiusTop, radiusBottom, height.
	KindTruncatedCone

	// KindWedge is a wedge with Dims lx, ly, lz.
	KindWedge

	// KindExtrudedPolygon is the Outline extruded by Dims height.
	KindExtrudedPolygon

	// KindPolygon is the flat Outline, without Dims.
	KindPolygon

	// KindPyramidBox is a box with pyramids with Dims lx, ly, lz, lh.
	KindPyramidBox

	// KindTetrahedron is a regular tetrahedron with Dims edge.
	KindTetrahedron

	// KindArcTorus is a torus arc with Dims start, end, major, minor.
	KindArcTorus

	// KindCapsule is a capsule with Dims height, rx, ry, rz.
	KindCapsule

	// KindHemiEllipsoid is a half ellipsoid with Dims rx, ry, rz.
	KindHemiEllipsoid

	// KindLine is a line segment with Dims x0, y0, z0, x1, y1, z1, width.
	KindLine
)

// numDims has the number of Dims for each kind.
var numDims = [KindsN]int{3, 1, 3, 2, 2, 3, 3, 1, 0, 4, 1, 4, 4, 3, 7}

// Resolution has the number of divisions used for curved surfaces.
type Resolution struct {

	// Divisions is the number of divisions around a circle,
	// used for longitudes and for round cross sections.
	Divisions int `default:"32" min:"3"`

	// LatDivisions is the number of divisions from pole to pole
	// of spheres and ellipsoids.
	LatDivisions int `default:"24" min:"3"`
}

// DefaultResolution is the resolution used when a [Request] has none.
// It is read concurrently by [Request.Generate] and must not be modified;
// set [Request.Resolution] instead.
var DefaultResolution = Resolution{Divisions: 32, LatDivisions: 24}

// orDefault returns the resolution with zero fields set to the default.
func (rs Resolution) orDefault() Resolution {
	if rs.Divisions == 0 {
		rs.Divisions = DefaultResolution.Divisions
	}
	if rs.LatDivisions == 0 {
		rs.LatDivisions = DefaultResolution.LatDivisions
	}
	return rs
}

// Request is a declarative description of a primitive solid,
// from which [Request.Generate] produces the mesh.
// It is kept by graph instructions so that backends with
// native primitives can use the parameters directly.
type Request struct {

	// Kind is the kind of solid.
	Kind Kinds

	// Dims are the dimensions, whose number and meaning depend on Kind.
	Dims []float32

	// Outline is the polygon outline for [KindPolygon]
	// and [KindExtrudedPolygon].
	Outline []math32.Vector2

	// Resolution is for curved surfaces; zero fields use
	// [DefaultResolution].
	Resolution Resolution
}

// NewRequest returns a new request for the given kind and dimensions.
func NewRequest(kind Kinds, dims ...float32) Request {
	return Request{Kind: kind, Dims: dims}
}

// Clone returns a copy that does not share its slices.
func (rq Request) Clone() Request {
	rq.Dims = slices.Clone(rq.Dims)
	rq.Outline = slices.Clone(rq.Outline)
	return rq
}

// Generate validates the request and generates its mesh.
func (rq Request) Generate() (*Data, error) {
	if rq.Kind < 0 || rq.Kind >= KindsN {
		return nil, fmt.Errorf("mesh.Request: invalid kind %d: %w", rq.Kind, ErrInvalidDimension)
	}
	if nd := numDims[rq.Kind]; len(rq.Dims) != nd {
		return nil, fmt.Errorf("mesh.Request: %v needs %d dims, got %d: %w", rq.Kind, nd, len(rq.Dims), ErrInvalidDimension)
	}
	rs := rq.Resolution.orDefault()
	d := rq.Dims
	switch rq.Kind {
	case KindBox:
		return Box(d[0], d[1], d[2])
	case KindSphere:
		return Sphere(d[0], rs.LatDivisions, rs.Divisions)
	case KindEllipsoid:
		return Ellipsoid(d[0], d[1], d[2], rs.LatDivisions, rs.Divisions)
	case KindCylinder:
		return Cylinder(d[0], d[1], rs.Divisions)
	case KindCone:
		return Cone(d[0], d[1], rs.Divisions)
	case KindTruncatedCone:
		return TruncatedCone(d[0], d[1], d[2], rs.Divisions)
	case KindWedge:
		return Wedge(d[0], d[1], d[2])
	case KindExtrudedPolygon:
		return ExtrudedPolygon(rq.Outline, d[0])
	case KindPolygon:
		return Polygon(rq.Outline)
	case KindPyramidBox:
		return PyramidBox(d[0], d[1], d[2], d[3])
	case KindTetrahedron:
		return Tetrahedron(d[0])
	case KindArcTorus:
		return ArcTorus(d[0], d[1], d[2], d[3], rs.Divisions)
	case KindCapsule:
		return Capsule(d[0], d[1], d[2], d[3], rs.LatDivisions, rs.Divisions)
	case KindHemiEllipsoid:
		return HemiEllipsoid(d[0], d[1], d[2], max(3, rs.LatDivisions/2), rs.Divisions)
	case KindLine:
		return Line(math32.Vec3(d[0], d[1], d[2]), math32.Vec3(d[3], d[4], d[5]), d[6])
	}
	return nil, fmt.Errorf("mesh.Request: unhandled kind %v: %w", rq.Kind, ErrInvalidDimension)
}
