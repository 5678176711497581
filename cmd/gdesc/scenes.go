// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"

	"cogentcore.org/core/math32"
	"cogentcore.org/gdesc/appearance"
	"cogentcore.org/gdesc/graph"
	"cogentcore.org/gdesc/mesh"
)

// scenes are the sample scene builders, by name.
var scenes = map[string]func(g *graph.Graph) error{
	"robot":      robot,
	"primitives": primitives,
	"ramp":       ramp,
}

var sceneDocs = map[string]string{
	"robot":      "a wheeled base with an arm, built from combined sub-graphs",
	"primitives": "one of each primitive kind, in a row along x",
	"ramp":       "a ball at the top of a wedge ramp, with a coordinate system",
}

// wheel returns a wheel lying in the xz plane, so that it rolls along x.
func wheel(radius, width float32) (*graph.Graph, error) {
	w := graph.New()
	tire := appearance.Black
	hub := appearance.Aluminum
	err := errors.Join(
		w.Rotate(math32.Vec3(1, 0, 0), math32.Pi/2),
		w.Translate(math32.Vec3(0, 0, -width/2)),
	)
	if err != nil {
		return nil, err
	}
	_, err = w.AddCylinder(radius, width, &tire)
	if err != nil {
		return nil, err
	}
	_, err = w.AddCylinder(radius/3, width*1.2, &hub)
	return w, err
}

func robot(g *graph.Graph) error {
	wh, err := wheel(0.15, 0.08)
	if err != nil {
		return err
	}
	base := appearance.Orange
	if _, err := g.AddBox(0.8, 0.5, 0.2, &base); err != nil {
		return err
	}
	for _, pos := range []math32.Vector3{{0.3, 0.3, -0.05}, {0.3, -0.3, -0.05}, {-0.3, 0.3, -0.05}, {-0.3, -0.3, -0.05}} {
		err := errors.Join(
			g.PushState(),
			g.Translate(pos),
			g.Combine(wh),
			g.PopState(),
		)
		if err != nil {
			return err
		}
	}
	// arm: shoulder, upper link and a forearm, each in the frame of the previous
	if err := g.ChangeAppearance(appearance.Gray); err != nil {
		return err
	}
	steps := []func() error{
		func() error { return g.Translate(math32.Vec3(0.2, 0, 0.1)) },
		func() error { _, err := g.AddSphere(0.06, nil); return err },
		func() error { return g.Rotate(math32.Vec3(0, 1, 0), math32.Pi/6) },
		func() error { _, err := g.AddCylinder(0.03, 0.4, nil); return err },
		func() error { return g.Translate(math32.Vec3(0, 0, 0.4)) },
		func() error { return g.Rotate(math32.Vec3(0, 1, 0), math32.Pi/3) },
		func() error { _, err := g.AddTruncatedCone(0.015, 0.03, 0.3, nil); return err },
		func() error { return g.Translate(math32.Vec3(0, 0, 0.3)) },
		func() error { return g.AddCoordinateSystem(0.1, nil) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	// name plate on the base
	plate := []math32.Vector2{{0, 0}, {0.2, 0}, {0.2, 0.05}, {0.1, 0.1}, {0, 0.05}}
	if err := g.Identity(); err != nil {
		return err
	}
	if err := g.Translate(math32.Vec3(-0.35, -0.05, 0.1)); err != nil {
		return err
	}
	_, err = g.AddExtrudedPolygon(plate, 0.01, &appearance.DarkGreen)
	return err
}

func primitives(g *graph.Graph) error {
	reqs := []mesh.Request{
		mesh.NewRequest(mesh.KindBox, 0.5, 0.5, 0.5),
		mesh.NewRequest(mesh.KindSphere, 0.25),
		mesh.NewRequest(mesh.KindEllipsoid, 0.3, 0.2, 0.1),
		mesh.NewRequest(mesh.KindCylinder, 0.2, 0.5),
		mesh.NewRequest(mesh.KindCone, 0.25, 0.5),
		mesh.NewRequest(mesh.KindTruncatedCone, 0.1, 0.25, 0.5),
		mesh.NewRequest(mesh.KindWedge, 0.5, 0.4, 0.3),
		{Kind: mesh.KindExtrudedPolygon, Dims: []float32{0.2}, Outline: []math32.Vector2{{0, 0}, {0.4, 0}, {0.4, 0.2}, {0.2, 0.2}, {0.2, 0.4}, {0, 0.4}}},
		{Kind: mesh.KindPolygon, Outline: []math32.Vector2{{0, 0}, {0.4, 0}, {0.2, 0.3}}},
		mesh.NewRequest(mesh.KindPyramidBox, 0.3, 0.3, 0.3, 0.15),
		mesh.NewRequest(mesh.KindTetrahedron, 0.4),
		mesh.NewRequest(mesh.KindArcTorus, 0, 3*math32.Pi/2, 0.2, 0.05),
		mesh.NewRequest(mesh.KindCapsule, 0.3, 0.1, 0.1, 0.1),
		mesh.NewRequest(mesh.KindHemiEllipsoid, 0.25, 0.2, 0.15),
		mesh.NewRequest(mesh.KindLine, 0, 0, 0, 0.3, 0.2, 0.4, 0.02),
	}
	colors := []appearance.Appearance{appearance.Red, appearance.Green, appearance.Blue, appearance.Yellow}
	for i, rq := range reqs {
		app := colors[i%len(colors)]
		if _, err := g.AddPrimitive(rq, &app); err != nil {
			return err
		}
		if err := g.Translate(math32.Vec3(0.75, 0, 0)); err != nil {
			return err
		}
	}
	return nil
}

func ramp(g *graph.Graph) error {
	if err := g.AddCoordinateSystem(0.5, nil); err != nil {
		return err
	}
	glass, err := appearance.Blue.WithTransparency(0.5)
	if err != nil {
		return err
	}
	if _, err := g.AddWedge(1, 0.4, 0.5, &glass); err != nil {
		return err
	}
	if err := g.Translate(math32.Vec3(0.4, 0, 0.6)); err != nil {
		return err
	}
	_, err = g.AddSphere(0.1, &appearance.Red)
	return err
}
