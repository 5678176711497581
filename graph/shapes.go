// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/gdesc/appearance"
	"cogentcore.org/gdesc/mesh"
	"cogentcore.org/gdesc/transform"
)

// AddBox adds a box of the given size centered at the current origin.
func (g *Graph) AddBox(lx, ly, lz float32, app *appearance.Appearance) (Primitive, error) {
	return g.AddPrimitive(mesh.NewRequest(mesh.KindBox, lx, ly, lz), app)
}

// AddSphere adds a sphere centered at the current origin,
// with the graph resolution.
func (g *Graph) AddSphere(radius float32, app *appearance.Appearance) (Primitive, error) {
	return g.AddPrimitive(mesh.NewRequest(mesh.KindSphere, radius), app)
}

// AddEllipsoid adds an ellipsoid with the given radii
// centered at the current origin.
func (g *Graph) AddEllipsoid(rx, ry, rz float32, app *appearance.Appearance) (Primitive, error) {
	return g.AddPrimitive(mesh.NewRequest(mesh.KindEllipsoid, rx, ry, rz), app)
}

// AddCylinder adds a cylinder along the current z axis,
// from the current origin up to the given height.
func (g *Graph) AddCylinder(radius, height float32, app *appearance.Appearance) (Primitive, error) {
	return g.AddPrimitive(mesh.NewRequest(mesh.KindCylinder, radius, height), app)
}

// AddCone adds a cone along the current z axis, with its base
// at the current origin and its tip at the given height.
func (g *Graph) AddCone(radius, height float32, app *appearance.Appearance) (Primitive, error) {
	return g.AddPrimitive(mesh.NewRequest(mesh.KindCone, radius, height), app)
}

// AddTruncatedCone adds a truncated cone along the current z axis,
// from the current origin up to the given height.
func (g *Graph) AddTruncatedCone(radiusTop, radiusBottom, height float32, app *appearance.Appearance) (Primitive, error) {
	return g.AddPrimitive(mesh.NewRequest(mesh.KindTruncatedCone, radiusTop, radiusBottom, height), app)
}

// AddWedge adds a wedge with its bottom face on the current xy plane.
func (g *Graph) AddWedge(lx, ly, lz float32, app *appearance.Appearance) (Primitive, error) {
	return g.AddPrimitive(mesh.NewRequest(mesh.KindWedge, lx, ly, lz), app)
}

// AddPyramidBox adds a box with a pyramid of height lh on its
// top and bottom faces, centered at the current origin.
func (g *Graph) AddPyramidBox(lx, ly, lz, lh float32, app *appearance.Appearance) (Primitive, error) {
	return g.AddPrimitive(mesh.NewRequest(mesh.KindPyramidBox, lx, ly, lz, lh), app)
}

// AddArcTorus adds a torus arc in the current xy plane.
func (g *Graph) AddArcTorus(start, end, major, minor float32, app *appearance.Appearance) (Primitive, error) {
	return g.AddPrimitive(mesh.NewRequest(mesh.KindArcTorus, start, end, major, minor), app)
}

// AddPolygon adds a flat polygon in the current xy plane.
func (g *Graph) AddPolygon(outline []math32.Vector2, app *appearance.Appearance) (Primitive, error) {
	return g.AddPrimitive(mesh.Request{Kind: mesh.KindPolygon, Outline: outline}, app)
}

// AddExtrudedPolygon adds the given outline in the current xy plane,
// extruded along z up to the given height.
func (g *Graph) AddExtrudedPolygon(outline []math32.Vector2, height float32, app *appearance.Appearance) (Primitive, error) {
	return g.AddPrimitive(mesh.Request{Kind: mesh.KindExtrudedPolygon, Dims: []float32{height}, Outline: outline}, app)
}

// AddCapsule adds a capsule along the current z axis, centered at the
// current origin, whose half ellipsoid ends of radii rx, ry, rz are
// centered height apart.
func (g *Graph) AddCapsule(height, rx, ry, rz float32, app *appearance.Appearance) (Primitive, error) {
	return g.AddPrimitive(mesh.NewRequest(mesh.KindCapsule, height, rx, ry, rz), app)
}

// AddHemiEllipsoid adds the top half of an ellipsoid, with its flat
// base on the current xy plane.
func (g *Graph) AddHemiEllipsoid(rx, ry, rz float32, app *appearance.Appearance) (Primitive, error) {
	return g.AddPrimitive(mesh.NewRequest(mesh.KindHemiEllipsoid, rx, ry, rz), app)
}

// AddLine adds a line segment from p0 to p1, in current coordinates,
// as a thin box of the given width.
func (g *Graph) AddLine(p0, p1 math32.Vector3, width float32, app *appearance.Appearance) (Primitive, error) {
	return g.AddPrimitive(mesh.NewRequest(mesh.KindLine, p0.X, p0.Y, p0.Z, p1.X, p1.Y, p1.Z, width), app)
}

// arrow has the generated parts of an arrow along z:
// a cylinder shaft and a cone head on top of it.
type arrow struct {
	shaft, head         mesh.Request
	shaftMesh, headMesh *mesh.Data
	shaftHeight         float32
}

// newArrow generates the parts of an arrow of the given length.
func (g *Graph) newArrow(length float32) (*arrow, error) {
	if !(length > 0) || math32.IsInf(length, 0) {
		return nil, fmt.Errorf("length %g must be > 0: %w", length, mesh.ErrInvalidDimension)
	}
	headHeight := 0.1 * length
	radius := 0.02 * length
	ar := &arrow{shaftHeight: length - headHeight}
	var err error
	ar.shaft, ar.shaftMesh, err = g.generate(mesh.NewRequest(mesh.KindCylinder, radius, ar.shaftHeight))
	if err != nil {
		return nil, err
	}
	ar.head, ar.headMesh, err = g.generate(mesh.NewRequest(mesh.KindCone, 2*radius, headHeight))
	if err != nil {
		return nil, err
	}
	return ar, nil
}

// add appends the arrow at the current transform, which it leaves unchanged.
func (ar *arrow) add(g *Graph, base, head appearance.Appearance) {
	g.addGenerated(ar.shaft, ar.shaftMesh, base)
	g.push()
	g.translate(math32.Vec3(0, 0, ar.shaftHeight))
	g.addGenerated(ar.head, ar.headMesh, head)
	g.popPushed()
}

// popPushed pops a push made by the caller, which cannot underflow.
func (g *Graph) popPushed() {
	if err := g.pop(); err != nil {
		panic(err)
	}
}

// AddArrow adds an arrow of the given length along the current z axis,
// made of a cylinder shaft with the base appearance and a cone head
// with the head appearance. The current transform is unchanged afterwards.
// Nothing is added if the length is too small to build the arrow.
func (g *Graph) AddArrow(length float32, base, head *appearance.Appearance) error {
	if err := g.checkFrozen("AddArrow"); err != nil {
		return err
	}
	ar, err := g.newArrow(length)
	if err != nil {
		return fmt.Errorf("graph.AddArrow: %w", err)
	}
	ar.add(g, g.effective(base), g.effective(head))
	return nil
}

// AddCoordinateSystem adds three arrows of the given length along the
// current x (red), y (white) and z (blue) axes, with heads of the
// given appearance, or [appearance.Gray] if nil.
// Nothing is added if the length is too small to build the arrows.
func (g *Graph) AddCoordinateSystem(length float32, head *appearance.Appearance) error {
	if err := g.checkFrozen("AddCoordinateSystem"); err != nil {
		return err
	}
	if head == nil {
		head = &appearance.Gray
	}
	ar, err := g.newArrow(length)
	if err != nil {
		return fmt.Errorf("graph.AddCoordinateSystem: %w", err)
	}
	axes := []struct {
		axis  math32.Vector3
		angle float32
		app   appearance.Appearance
	}{
		{math32.Vec3(0, 1, 0), math32.Pi / 2, appearance.Red},
		{math32.Vec3(1, 0, 0), -math32.Pi / 2, appearance.White},
		{math32.Vec3(0, 0, 1), 0, appearance.Blue},
	}
	for _, ax := range axes {
		g.push()
		if ax.angle != 0 {
			m, err := transform.RotationMatrix(ax.axis, ax.angle)
			if err != nil {
				panic(err) // unit axes
			}
			g.rotate(math32.NewQuatAxisAngle(ax.axis, ax.angle), m)
		}
		ar.add(g, ax.app, *head)
		g.popPushed()
	}
	return nil
}
