// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph provides the renderer-agnostic description of a
// graphics object: an ordered list of instructions that add shapes,
// set appearances, and transform the placement of subsequent shapes.
//
// A [Graph] is built by a single goroutine. Every shape instruction
// captures the transform and appearance that are current when it is
// added, so later changes never affect instructions already added.
// Once built, call [Graph.Freeze]; a frozen graph can be traversed by any
// number of goroutines at the same time, with [Graph.Traverse].
package graph

//go:generate core generate

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/gdesc/appearance"
	"cogentcore.org/gdesc/mesh"
	"cogentcore.org/gdesc/transform"
)

var (
	// ErrFrozen is returned when trying to modify a frozen graph.
	ErrFrozen = errors.New("graph is frozen")

	// ErrNilGraph is returned when combining a nil graph.
	ErrNilGraph = errors.New("nil graph")
)

// Graph is an ordered list of graphics instructions.
//
// The instructions of combined sub-graphs are kept in an arena of
// bodies: body 0 has the graph's own instructions, and each [Combine]
// refers to the body holding the copy of the combined graph.
type Graph struct {

	// bodies is the arena of instruction lists.
	bodies [][]Instruction

	// depth is the number of open PushState in each body.
	depth []int

	// stack is the transform stack used during construction.
	stack *transform.Stack

	// active is the appearance set by the last SetAppearance.
	active appearance.Appearance

	// resolution fills the zero resolution fields of primitive requests.
	resolution mesh.Resolution

	frozen bool
}

// New returns a new empty graph, with the identity transform
// and [appearance.Default] as the active appearance.
func New() *Graph {
	return &Graph{
		bodies: [][]Instruction{nil},
		depth:  []int{0},
		stack:  transform.New(),
		active: appearance.Default,
	}
}

// Len returns the number of instructions, not counting the
// instructions within combined sub-graphs.
func (g *Graph) Len() int { return len(g.bodies[0]) }

// Instructions returns a copy of the list of instructions.
func (g *Graph) Instructions() []Instruction { return slices.Clone(g.bodies[0]) }

// SubGraph returns a copy of the instructions of the
// sub-graph included by the given [Combine] instruction.
func (g *Graph) SubGraph(c Combine) []Instruction {
	if c.Body <= 0 || c.Body >= len(g.bodies) {
		return nil
	}
	return slices.Clone(g.bodies[c.Body])
}

// Transform returns the current transform, which will be captured by
// the next shape that is added.
func (g *Graph) Transform() math32.Matrix4 { return g.stack.Current() }

// Depth returns the number of [Graph.PushState] that have
// not been popped yet.
func (g *Graph) Depth() int { return g.stack.Depth() }

// Appearance returns the active appearance, used for shapes
// that are added without an explicit appearance.
func (g *Graph) Appearance() appearance.Appearance { return g.active }

// Resolution returns the resolution used for primitive requests
// that do not set their own.
func (g *Graph) Resolution() mesh.Resolution { return g.resolution }

// SetResolution sets the resolution used for the primitives added
// afterwards whose requests do not set their own. Zero fields use
// [mesh.DefaultResolution].
func (g *Graph) SetResolution(rs mesh.Resolution) error {
	if err := g.checkFrozen("SetResolution"); err != nil {
		return err
	}
	if (rs.Divisions != 0 && rs.Divisions < 3) || (rs.LatDivisions != 0 && rs.LatDivisions < 3) {
		return fmt.Errorf("graph.SetResolution: divisions %d, %d must be 0 or >= 3: %w", rs.Divisions, rs.LatDivisions, mesh.ErrInvalidDimension)
	}
	g.resolution = rs
	return nil
}

// Freeze makes the graph read-only: all subsequent modifications
// fail with [ErrFrozen]. It is safe to share a frozen graph between
// goroutines.
func (g *Graph) Freeze() { g.frozen = true }

// Frozen returns whether [Graph.Freeze] has been called.
func (g *Graph) Frozen() bool { return g.frozen }

// Clone returns a deep copy of the graph, including its construction
// state. The copy is not frozen, so it can be extended.
func (g *Graph) Clone() *Graph {
	ng := &Graph{
		bodies: make([][]Instruction, len(g.bodies)),
		depth:  slices.Clone(g.depth),
		stack:  g.stack.Clone(),
		active: g.active,

		resolution: g.resolution,
	}
	for i, b := range g.bodies {
		ng.bodies[i] = slices.Clone(b)
	}
	return ng
}

func (g *Graph) checkFrozen(fn string) error {
	if g.frozen {
		slog.Debug("graph: modification of frozen graph", "op", fn)
		return fmt.Errorf("graph.%s: %w", fn, ErrFrozen)
	}
	return nil
}

func (g *Graph) append(in Instruction) {
	g.bodies[0] = append(g.bodies[0], in)
}

// effective returns the explicit appearance if non-nil, and otherwise
// the active one.
func (g *Graph) effective(app *appearance.Appearance) appearance.Appearance {
	if app != nil {
		return *app
	}
	return g.active
}

// AddPrimitive generates the mesh for the given request and adds it,
// at the current transform. If app is nil, the active appearance is used.
// Nothing is added if the request is invalid.
func (g *Graph) AddPrimitive(req mesh.Request, app *appearance.Appearance) (Primitive, error) {
	if err := g.checkFrozen("AddPrimitive"); err != nil {
		return Primitive{}, err
	}
	req, md, err := g.generate(req)
	if err != nil {
		return Primitive{}, fmt.Errorf("graph.AddPrimitive: %w", err)
	}
	return g.addGenerated(req, md, g.effective(app)), nil
}

// generate returns a copy of the request with the graph resolution
// filled in, and its mesh.
func (g *Graph) generate(req mesh.Request) (mesh.Request, *mesh.Data, error) {
	req = req.Clone()
	if req.Resolution.Divisions == 0 {
		req.Resolution.Divisions = g.resolution.Divisions
	}
	if req.Resolution.LatDivisions == 0 {
		req.Resolution.LatDivisions = g.resolution.LatDivisions
	}
	md, err := req.Generate()
	return req, md, err
}

// addGenerated appends a primitive whose mesh has already been generated.
func (g *Graph) addGenerated(req mesh.Request, md *mesh.Data, app appearance.Appearance) Primitive {
	p := Primitive{
		Request:    req,
		Mesh:       md,
		Appearance: app,
		Transform:  g.stack.Current(),
	}
	g.append(p)
	return p
}

// AddMesh adds the given mesh data at the current transform.
// The data must not be modified afterwards; the same data can be
// added any number of times. If app is nil, the active appearance
// is used. Nothing is added if the data is invalid.
func (g *Graph) AddMesh(md *mesh.Data, app *appearance.Appearance) (CustomMesh, error) {
	if err := g.checkFrozen("AddMesh"); err != nil {
		return CustomMesh{}, err
	}
	if md == nil {
		return CustomMesh{}, fmt.Errorf("graph.AddMesh: nil mesh: %w", mesh.ErrInvalidMesh)
	}
	if err := md.Validate(); err != nil {
		return CustomMesh{}, fmt.Errorf("graph.AddMesh: %w", err)
	}
	cm := CustomMesh{
		Mesh:       md,
		Appearance: g.effective(app),
		Transform:  g.stack.Current(),
	}
	g.append(cm)
	return cm, nil
}

// AddCustomMesh wraps the given vertex data with [mesh.Custom]
// and adds it with [Graph.AddMesh].
func (g *Graph) AddCustomMesh(vertices, normals []math32.Vector3, texCoords []math32.Vector2, indices []uint32, app *appearance.Appearance) (CustomMesh, error) {
	if err := g.checkFrozen("AddCustomMesh"); err != nil {
		return CustomMesh{}, err
	}
	md, err := mesh.Custom(vertices, normals, texCoords, indices)
	if err != nil {
		return CustomMesh{}, fmt.Errorf("graph.AddCustomMesh: %w", err)
	}
	return g.AddMesh(md, app)
}

// ChangeAppearance sets the active appearance, used by the shapes added
// afterwards without an explicit appearance. Shapes already added keep
// their appearance.
func (g *Graph) ChangeAppearance(app appearance.Appearance) error {
	if err := g.checkFrozen("ChangeAppearance"); err != nil {
		return err
	}
	g.active = app
	g.append(SetAppearance{Appearance: app})
	return nil
}

// Translate translates the current transform by v.
func (g *Graph) Translate(v math32.Vector3) error {
	if err := g.checkFrozen("Translate"); err != nil {
		return err
	}
	g.translate(v)
	return nil
}

func (g *Graph) translate(v math32.Vector3) {
	g.stack.Translate(v)
	g.append(Translate{Vector: v})
}

// Rotate rotates the current transform by angle (in radians)
// around the given axis, which does not need to be normalized.
func (g *Graph) Rotate(axis math32.Vector3, angle float32) error {
	if err := g.checkFrozen("Rotate"); err != nil {
		return err
	}
	m, err := transform.RotationMatrix(axis, angle)
	if err != nil {
		return fmt.Errorf("graph.Rotate: %w", err)
	}
	g.rotate(math32.NewQuatAxisAngle(axis.Normal(), angle), m)
	return nil
}

// rotate applies the rotation matrix m and appends the
// instruction for the normalized quaternion q it was made from.
func (g *Graph) rotate(q math32.Quat, m *math32.Matrix4) {
	g.stack.Apply(m)
	g.append(Rotate{Rotation: q})
}

// RotateQuat rotates the current transform by the given quaternion,
// which does not need to be normalized.
func (g *Graph) RotateQuat(q math32.Quat) error {
	if err := g.checkFrozen("RotateQuat"); err != nil {
		return err
	}
	m, err := transform.QuatMatrix(q)
	if err != nil {
		return fmt.Errorf("graph.RotateQuat: %w", err)
	}
	ln := math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	g.rotate(math32.Quat{X: q.X / ln, Y: q.Y / ln, Z: q.Z / ln, W: q.W / ln}, m)
	return nil
}

// Scale scales the current transform by v, which must not
// have any zero component.
func (g *Graph) Scale(v math32.Vector3) error {
	if err := g.checkFrozen("Scale"); err != nil {
		return err
	}
	if err := g.stack.Scale(v); err != nil {
		return fmt.Errorf("graph.Scale: %w", err)
	}
	g.append(Scale{Vector: v})
	return nil
}

// PushState saves the current transform, to be restored with [Graph.PopState].
func (g *Graph) PushState() error {
	if err := g.checkFrozen("PushState"); err != nil {
		return err
	}
	g.push()
	return nil
}

func (g *Graph) push() {
	g.stack.Push()
	g.depth[0]++
	g.append(PushState{})
}

// PopState restores the transform saved by the last [Graph.PushState].
// It fails with [transform.ErrStackUnderflow] if there is none.
func (g *Graph) PopState() error {
	if err := g.checkFrozen("PopState"); err != nil {
		return err
	}
	if err := g.pop(); err != nil {
		return fmt.Errorf("graph.PopState: %w", err)
	}
	return nil
}

func (g *Graph) pop() error {
	if err := g.stack.Pop(); err != nil {
		return err
	}
	g.depth[0]--
	g.append(PopState{})
	return nil
}

// Identity resets the current transform to the identity.
// Saved transforms are not affected.
func (g *Graph) Identity() error {
	if err := g.checkFrozen("Identity"); err != nil {
		return err
	}
	g.stack.Reset()
	g.append(Identity{})
	return nil
}

// Combine adds a copy of the other graph at the current transform:
// its shapes are placed relative to the current transform, and
// later changes to either graph do not affect the copy.
// The other graph can be the graph itself.
func (g *Graph) Combine(other *Graph) error {
	if err := g.checkFrozen("Combine"); err != nil {
		return err
	}
	if other == nil {
		return fmt.Errorf("graph.Combine: %w", ErrNilGraph)
	}
	off := len(g.bodies)
	nb := make([][]Instruction, len(other.bodies))
	for i, b := range other.bodies {
		nb[i] = make([]Instruction, len(b))
		for j, in := range b {
			if c, ok := in.(Combine); ok {
				c.Body += off
				in = c
			}
			nb[i][j] = in
		}
	}
	g.bodies = append(g.bodies, nb...)
	g.depth = append(g.depth, other.depth...)
	g.append(Combine{Body: off, Transform: g.stack.Current()})
	return nil
}
