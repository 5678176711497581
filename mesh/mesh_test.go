// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"errors"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardTol = float32(1.0e-4)

// checkClosed verifies the basic invariants of a generated closed mesh:
// valid indexes, unit normals, and outward winding (positive volume).
func checkClosed(t *testing.T, md *Data) {
	t.Helper()
	require.NoError(t, md.Validate())
	assert.Len(t, md.Normal, md.NumVertex())
	assert.Len(t, md.TexCoord, md.NumVertex())
	for _, n := range md.Normal {
		tolassert.EqualTol(t, 1, n.Length(), standardTol)
	}
	assert.Greater(t, md.SignedVolume(), float32(0))
}

func uniquePositions(md *Data) int {
	set := map[math32.Vector3]bool{}
	for _, v := range md.Vertex {
		set[v] = true
	}
	return len(set)
}

func TestBox(t *testing.T) {
	md, err := Box(1, 2, 3)
	require.NoError(t, err)
	checkClosed(t, md)
	assert.Equal(t, 24, md.NumVertex())
	assert.Equal(t, 12, md.NumTriangle())
	assert.Equal(t, 8, uniquePositions(md))
	tolassert.EqualTol(t, 6, md.SignedVolume(), standardTol)
	tolassert.EqualTol(t, 2*(2+3+6), md.SurfaceArea(), standardTol)

	bb := md.BBox()
	assert.Equal(t, math32.Vec3(-0.5, -1, -1.5), bb.Min)
	assert.Equal(t, math32.Vec3(0.5, 1, 1.5), bb.Max)

	// each face normal agrees with its triangle winding
	for i := range md.Index {
		a, b, c := md.Corners(i)
		fn := b.Sub(a).Cross(c.Sub(a)).Normal()
		tolassert.EqualTol(t, 1, fn.Dot(md.Normal[md.Index[i][0]]), standardTol)
	}
}

func TestInvalidDimensions(t *testing.T) {
	_, err := Box(0, 1, 1)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
	_, err = Box(1, -1, 1)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
	_, err = Box(1, 1, math32.NaN())
	assert.True(t, errors.Is(err, ErrInvalidDimension))
	_, err = Sphere(0, 8, 8)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
	_, err = Sphere(1, 2, 8)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
	_, err = Cylinder(1, 1, 2)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
	_, err = TruncatedCone(0, 0, 1, 8)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
	_, err = TruncatedCone(-1, 1, 1, 8)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
	_, err = Cone(1, 0, 8)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
	_, err = ArcTorus(1, 0, 2, 0.5, 8)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
	_, err = PyramidBox(1, 1, 1, -1)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
}

func TestSphere(t *testing.T) {
	md, err := Sphere(2, 16, 24)
	require.NoError(t, err)
	checkClosed(t, md)
	assert.Equal(t, 17*25, md.NumVertex())
	assert.Equal(t, 2*24*15, md.NumTriangle())
	for i, v := range md.Vertex {
		tolassert.EqualTol(t, 2, v.Length(), standardTol)
		tolassert.EqualTol(t, 1, v.Normal().Dot(md.Normal[i]), standardTol)
	}
	exact := float32(4.0 / 3.0 * math32.Pi * 8)
	vol := md.SignedVolume()
	assert.Less(t, vol, exact)
	assert.Greater(t, vol, 0.95*exact)
}

func TestEllipsoid(t *testing.T) {
	md, err := Ellipsoid(1, 2, 3, 12, 12)
	require.NoError(t, err)
	checkClosed(t, md)
	bb := md.BBox()
	tolassert.EqualTol(t, 3, bb.Max.Z, standardTol)
	tolassert.EqualTol(t, -3, bb.Min.Z, standardTol)
	tolassert.EqualTol(t, 1, bb.Max.X, standardTol)
}

func TestCylinderSideAreaConverges(t *testing.T) {
	const r, h = 1.5, 2
	exact := float32(2 * math32.Pi * r * h)
	prevErr := math32.Infinity
	for _, divs := range []int{3, 4, 6, 8, 16, 32, 64, 128} {
		md, err := Cylinder(r, h, divs)
		require.NoError(t, err)
		checkClosed(t, md)
		caps := float32(0)
		for i := range md.Index {
			if math32.Abs(md.Normal[md.Index[i][0]].Z) == 1 {
				a, b, c := md.Corners(i)
				caps += b.Sub(a).Cross(c.Sub(a)).Length() / 2
			}
		}
		side := md.SurfaceArea() - caps
		serr := math32.Abs(exact - side)
		assert.Less(t, serr, prevErr, "divisions %d", divs)
		prevErr = serr
	}
	assert.Less(t, prevErr, float32(0.01))
}

func TestCylinderPlacement(t *testing.T) {
	md, err := Cylinder(1, 3, 16)
	require.NoError(t, err)
	bb := md.BBox()
	tolassert.EqualTol(t, 0, bb.Min.Z, standardTol)
	tolassert.EqualTol(t, 3, bb.Max.Z, standardTol)
	// side strip of 2 per division, plus 2 fans
	assert.Equal(t, 16*2+16*2, md.NumTriangle())
}

func TestConeCaps(t *testing.T) {
	md, err := Cone(1, 2, 16)
	require.NoError(t, err)
	checkClosed(t, md)
	// no top cap and one triangle per division on the side
	assert.Equal(t, 16+16, md.NumTriangle())
	for _, n := range md.Normal {
		assert.NotEqual(t, float32(1), n.Z, "no cap facing up")
	}

	inv, err := TruncatedCone(1, 0, 2, 16)
	require.NoError(t, err)
	checkClosed(t, inv)
	assert.Equal(t, 16+16, inv.NumTriangle())

	tc, err := TruncatedCone(0.5, 1, 2, 64)
	require.NoError(t, err)
	checkClosed(t, tc)
	// frustum volume: pi h (R^2 + Rr + r^2) / 3
	exact := float32(math32.Pi * 2 * (1 + 0.5 + 0.25) / 3)
	tolassert.EqualTol(t, exact, tc.SignedVolume(), 0.01)
}

func TestWedge(t *testing.T) {
	md, err := Wedge(2, 1, 1)
	require.NoError(t, err)
	checkClosed(t, md)
	tolassert.EqualTol(t, 1, md.SignedVolume(), standardTol)
	assert.Equal(t, 6, uniquePositions(md))
	bb := md.BBox()
	assert.Equal(t, float32(0), bb.Min.Z)
}

func TestPyramidBox(t *testing.T) {
	md, err := PyramidBox(1, 1, 1, 0.5)
	require.NoError(t, err)
	checkClosed(t, md)
	// box + 2 pyramids of volume base * h / 3
	tolassert.EqualTol(t, 1+2*0.5/3, md.SignedVolume(), standardTol)

	flat, err := PyramidBox(1, 2, 3, 0)
	require.NoError(t, err)
	checkClosed(t, flat)
	tolassert.EqualTol(t, 6, flat.SignedVolume(), standardTol)
}

func TestTetrahedron(t *testing.T) {
	md, err := Tetrahedron(1)
	require.NoError(t, err)
	checkClosed(t, md)
	assert.Equal(t, 4, uniquePositions(md))
	tolassert.EqualTol(t, 1/(6*math32.Sqrt(2)), md.SignedVolume(), standardTol)
	for i := range md.Index {
		a, b, c := md.Corners(i)
		tolassert.EqualTol(t, 1, b.Sub(a).Length(), standardTol)
		tolassert.EqualTol(t, 1, c.Sub(b).Length(), standardTol)
	}
}

func TestArcTorus(t *testing.T) {
	md, err := ArcTorus(0, 2*math32.Pi, 2, 0.5, 48)
	require.NoError(t, err)
	checkClosed(t, md)
	// Pappus: 2 pi R * pi r^2
	exact := float32(2 * math32.Pi * 2 * math32.Pi * 0.25)
	tolassert.EqualTol(t, exact, md.SignedVolume(), 0.1)
}

var lShape = []math32.Vector2{
	{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2},
}

func TestTriangulateConcave(t *testing.T) {
	tris := Triangulate(lShape)
	require.Len(t, tris, len(lShape)-2)
	area := float32(0)
	for _, tr := range tris {
		a := cross2(lShape[tr[0]], lShape[tr[1]], lShape[tr[2]]) / 2
		assert.Greater(t, a, float32(0), "counter-clockwise")
		area += a
	}
	tolassert.EqualTol(t, 3, area, standardTol)
	tolassert.EqualTol(t, 3, SignedArea(lShape), standardTol)
}

func TestTriangulateConvexFan(t *testing.T) {
	hex := make([]math32.Vector2, 6)
	for i := range hex {
		c, s := circlePoint(i, 6)
		hex[i] = math32.Vec2(c, s)
	}
	tris := Triangulate(hex)
	require.Len(t, tris, 4)
	area := float32(0)
	for _, tr := range tris {
		area += cross2(hex[tr[0]], hex[tr[1]], hex[tr[2]]) / 2
	}
	tolassert.EqualTol(t, SignedArea(hex), area, standardTol)
}

func TestExtrudedPolygon(t *testing.T) {
	md, err := ExtrudedPolygon(lShape, 0.5)
	require.NoError(t, err)
	checkClosed(t, md)
	tolassert.EqualTol(t, 1.5, md.SignedVolume(), standardTol)

	// clockwise input is normalized
	cw := make([]math32.Vector2, len(lShape))
	for i, p := range lShape {
		cw[len(lShape)-1-i] = p
	}
	md2, err := ExtrudedPolygon(cw, 0.5)
	require.NoError(t, err)
	tolassert.EqualTol(t, 1.5, md2.SignedVolume(), standardTol)
}

func TestDegeneratePolygon(t *testing.T) {
	_, err := ExtrudedPolygon([]math32.Vector2{{0, 0}, {1, 0}}, 1)
	assert.True(t, errors.Is(err, ErrDegeneratePolygon))

	_, err = ExtrudedPolygon([]math32.Vector2{{0, 0}, {1, 0}, {2, 0}}, 1)
	assert.True(t, errors.Is(err, ErrDegeneratePolygon), "zero area")

	bowtie := []math32.Vector2{{0, 0}, {1, 1}, {1, 0}, {0, 1}}
	_, err = Polygon(bowtie)
	assert.True(t, errors.Is(err, ErrDegeneratePolygon), "self intersecting")

	_, err = ExtrudedPolygon(lShape, 0)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
}

func TestPolygon(t *testing.T) {
	md, err := Polygon(lShape)
	require.NoError(t, err)
	require.NoError(t, md.Validate())
	assert.Equal(t, 4, md.NumTriangle())
	tolassert.EqualTol(t, 3, md.SurfaceArea(), standardTol)
	for _, n := range md.Normal {
		assert.Equal(t, math32.Vec3(0, 0, 1), n)
	}
}

func TestCustom(t *testing.T) {
	verts := []math32.Vector3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	md, err := Custom(verts, nil, nil, []uint32{0, 1, 2, 1, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, md.NumTriangle())
	require.Len(t, md.Normal, 4)
	for _, n := range md.Normal {
		tolassert.EqualTol(t, 1, n.Z, standardTol)
	}
	verts[0].X = 5
	assert.Equal(t, float32(0), md.Vertex[0].X, "input is copied")

	_, err = Custom(verts, nil, nil, []uint32{0, 1, 4})
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	_, err = Custom(verts, nil, nil, []uint32{0, 1})
	assert.True(t, errors.Is(err, ErrInvalidMesh))

	_, err = Custom(verts, []math32.Vector3{{0, 0, 1}}, nil, []uint32{0, 1, 2})
	assert.True(t, errors.Is(err, ErrInvalidMesh))
}

func TestTransformed(t *testing.T) {
	md, err := Box(1, 1, 1)
	require.NoError(t, err)

	m := math32.Identity4()
	m.SetTransform(math32.Vec3(1, 2, 3), math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.Pi/2), math32.Vec3(2, 2, 2))
	tm := md.Transformed(m)
	checkClosed(t, tm)
	tolassert.EqualTol(t, 8, tm.SignedVolume(), standardTol)
	c := tm.BBox().Center()
	tolassert.EqualTol(t, 1, c.X, standardTol)
	tolassert.EqualTol(t, 2, c.Y, standardTol)
	tolassert.EqualTol(t, 3, c.Z, standardTol)

	mirror := math32.Identity4()
	mirror.SetTransform(math32.Vector3{}, math32.Quat{W: 1}, math32.Vec3(-1, 1, 1))
	mm := md.Transformed(mirror)
	tolassert.EqualTol(t, 1, mm.SignedVolume(), standardTol)
	assert.Equal(t, 24, md.NumVertex(), "original unchanged")
}

func TestRequest(t *testing.T) {
	md, err := NewRequest(KindBox, 1, 2, 3).Generate()
	require.NoError(t, err)
	tolassert.EqualTol(t, 6, md.SignedVolume(), standardTol)

	_, err = NewRequest(KindBox, 1, 2).Generate()
	assert.True(t, errors.Is(err, ErrInvalidDimension))

	_, err = Request{Kind: KindsN, Dims: []float32{1}}.Generate()
	assert.True(t, errors.Is(err, ErrInvalidDimension))

	rq := NewRequest(KindSphere, 1)
	rq.Resolution = Resolution{Divisions: 8}
	sp, err := rq.Generate()
	require.NoError(t, err)
	assert.Equal(t, (DefaultResolution.LatDivisions+1)*9, sp.NumVertex())

	poly := Request{Kind: KindExtrudedPolygon, Dims: []float32{2}, Outline: lShape}
	ext, err := poly.Generate()
	require.NoError(t, err)
	tolassert.EqualTol(t, 6, ext.SignedVolume(), standardTol)

	cl := poly.Clone()
	cl.Outline[0].X = 9
	assert.Equal(t, float32(0), poly.Outline[0].X)
	assert.Equal(t, "ExtrudedPolygon", poly.Kind.String())
}

// checkWatertight verifies that every edge, compared by rounded vertex
// position, is shared by exactly two triangles in opposite directions.
func checkWatertight(t *testing.T, md *Data) {
	t.Helper()
	type key [3]float32
	round := func(v math32.Vector3) key {
		return key{math32.Round(v.X * 1e4), math32.Round(v.Y * 1e4), math32.Round(v.Z * 1e4)}
	}
	edges := map[[2]key]int{}
	for i := range md.Index {
		a, b, c := md.Corners(i)
		ka, kb, kc := round(a), round(b), round(c)
		edges[[2]key{ka, kb}]++
		edges[[2]key{kb, kc}]++
		edges[[2]key{kc, ka}]++
	}
	for e, n := range edges {
		if !assert.Equal(t, 1, n, "edge %v used more than once in the same direction", e) {
			return
		}
		if !assert.Equal(t, 1, edges[[2]key{e[1], e[0]}], "edge %v has no opposite", e) {
			return
		}
	}
}

func TestCapsule(t *testing.T) {
	md, err := Capsule(2, 0.5, 0.5, 0.5, 16, 32)
	require.NoError(t, err)
	checkClosed(t, md)
	checkWatertight(t, md)
	bb := md.BBox()
	tolassert.EqualTol(t, 1.5, bb.Max.Z, standardTol)
	tolassert.EqualTol(t, -1.5, bb.Min.Z, standardTol)
	tolassert.EqualTol(t, 0.5, bb.Max.X, standardTol)

	exact := float32(math32.Pi*0.25*2 + 4.0/3.0*math32.Pi*0.125)
	vol := md.SignedVolume()
	assert.Less(t, vol, exact)
	assert.Greater(t, vol, 0.95*exact)

	// odd latitude divisions are rounded up
	odd, err := Capsule(1, 1, 2, 0.5, 7, 12)
	require.NoError(t, err)
	checkClosed(t, odd)
	checkWatertight(t, odd)
	tolassert.EqualTol(t, 1, odd.BBox().Max.Z, standardTol)

	_, err = Capsule(0, 1, 1, 1, 8, 8)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
}

func TestHemiEllipsoid(t *testing.T) {
	md, err := HemiEllipsoid(1, 2, 3, 8, 32)
	require.NoError(t, err)
	checkClosed(t, md)
	checkWatertight(t, md)
	bb := md.BBox()
	tolassert.EqualTol(t, 0, bb.Min.Z, standardTol)
	tolassert.EqualTol(t, 3, bb.Max.Z, standardTol)
	tolassert.EqualTol(t, -2, bb.Min.Y, standardTol)

	exact := float32(2.0 / 3.0 * math32.Pi * 6)
	vol := md.SignedVolume()
	assert.Less(t, vol, exact)
	assert.Greater(t, vol, 0.95*exact)

	_, err = HemiEllipsoid(1, 1, 1, 2, 8)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
}

func TestLine(t *testing.T) {
	p0, p1 := math32.Vec3(1, 2, 3), math32.Vec3(4, -2, 3)
	md, err := Line(p0, p1, 0.1)
	require.NoError(t, err)
	checkClosed(t, md)
	checkWatertight(t, md)
	assert.Equal(t, 12, md.NumTriangle())
	tolassert.EqualTol(t, 0.1*0.1*5, md.SignedVolume(), standardTol)
	c := md.BBox().Center()
	tolassert.EqualTol(t, 2.5, c.X, standardTol)
	tolassert.EqualTol(t, 0, c.Y, standardTol)
	tolassert.EqualTol(t, 3, c.Z, standardTol)

	// along x, where the default section frame would be degenerate
	mx, err := Line(math32.Vec3(0, 0, 0), math32.Vec3(-2, 0, 0), 0.2)
	require.NoError(t, err)
	checkClosed(t, mx)
	tolassert.EqualTol(t, 0.2*0.2*2, mx.SignedVolume(), standardTol)

	_, err = Line(p0, p0, 0.1)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
	_, err = Line(p0, p1, 0)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
	_, err = Line(p0, math32.Vec3(math32.NaN(), 0, 0), 0.1)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
}

func TestRoundShapesWatertight(t *testing.T) {
	sp, err := Sphere(1, 6, 9)
	require.NoError(t, err)
	checkWatertight(t, sp)
	cy, err := Cylinder(1, 2, 7)
	require.NoError(t, err)
	checkWatertight(t, cy)
	tc, err := TruncatedCone(0.5, 1, 1, 16)
	require.NoError(t, err)
	checkWatertight(t, tc)
}

func TestRequestNewKinds(t *testing.T) {
	rs := Resolution{Divisions: 16, LatDivisions: 8}
	for _, rq := range []Request{
		NewRequest(KindCapsule, 1, 0.5, 0.5, 0.5),
		NewRequest(KindHemiEllipsoid, 1, 1, 1),
		NewRequest(KindLine, 0, 0, 0, 0, 0, 1, 0.1),
	} {
		rq.Resolution = rs
		md, err := rq.Generate()
		require.NoError(t, err, rq.Kind.String())
		checkClosed(t, md)
	}
	_, err := NewRequest(KindLine, 0, 0, 0, 1, 1, 1).Generate()
	assert.True(t, errors.Is(err, ErrInvalidDimension))
	assert.Equal(t, "HemiEllipsoid", KindHemiEllipsoid.String())
}
