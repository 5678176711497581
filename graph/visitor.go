// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"cogentcore.org/core/math32"
)

// Visitor is implemented by rendering and export backends to receive the
// instructions of a graph from [Graph.Traverse], with one method per kind
// of instruction. Embed [VisitorBase] to only implement some of them.
//
// The world matrices passed for shapes and sub-graphs are the complete
// placement relative to the root of the traversed graph, so backends do
// not need to track the transform instructions themselves.
type Visitor interface {

	// VisitPrimitive is called for a [Primitive], with its world transform.
	VisitPrimitive(p Primitive, world math32.Matrix4)

	// VisitCustomMesh is called for a [CustomMesh], with its world transform.
	VisitCustomMesh(m CustomMesh, world math32.Matrix4)

	VisitSetAppearance(a SetAppearance)
	VisitTranslate(t Translate)
	VisitRotate(r Rotate)
	VisitScale(s Scale)
	VisitPushState()
	VisitPopState()
	VisitIdentity()

	// VisitCombine is called for a [Combine], with the world transform of
	// the sub-graph root. If it returns true, the instructions of the
	// sub-graph are visited next, followed by a call to EndCombine.
	VisitCombine(c Combine, world math32.Matrix4) bool

	// EndCombine is called after the instructions of a sub-graph.
	EndCombine(c Combine)
}

// VisitorBase is a [Visitor] that does nothing and
// visits all sub-graphs, for embedding.
type VisitorBase struct{}

func (VisitorBase) VisitPrimitive(p Primitive, world math32.Matrix4)  {}
func (VisitorBase) VisitCustomMesh(m CustomMesh, world math32.Matrix4) {}
func (VisitorBase) VisitSetAppearance(a SetAppearance)                {}
func (VisitorBase) VisitTranslate(t Translate)                        {}
func (VisitorBase) VisitRotate(r Rotate)                              {}
func (VisitorBase) VisitScale(s Scale)                                {}
func (VisitorBase) VisitPushState()                                   {}
func (VisitorBase) VisitPopState()                                    {}
func (VisitorBase) VisitIdentity()                                    {}
func (VisitorBase) VisitCombine(c Combine, world math32.Matrix4) bool { return true }
func (VisitorBase) EndCombine(c Combine)                              {}

// Traverse calls the visitor for each instruction, in the order they were
// added, descending into sub-graphs where the visitor asks for it.
// Transform scopes are always balanced: any [PushState] left open at the
// end of a graph or sub-graph is closed with a call to VisitPopState.
// Traverse does not modify the graph, so a frozen graph can be
// traversed from multiple goroutines at the same time.
func (g *Graph) Traverse(v Visitor) {
	g.traverse(v, 0, *math32.Identity4())
}

func (g *Graph) traverse(v Visitor, body int, parent math32.Matrix4) {
	for _, in := range g.bodies[body] {
		switch x := in.(type) {
		case Primitive:
			v.VisitPrimitive(x, worldMatrix(&parent, &x.Transform))
		case CustomMesh:
			v.VisitCustomMesh(x, worldMatrix(&parent, &x.Transform))
		case SetAppearance:
			v.VisitSetAppearance(x)
		case Translate:
			v.VisitTranslate(x)
		case Rotate:
			v.VisitRotate(x)
		case Scale:
			v.VisitScale(x)
		case PushState:
			v.VisitPushState()
		case PopState:
			v.VisitPopState()
		case Identity:
			v.VisitIdentity()
		case Combine:
			world := worldMatrix(&parent, &x.Transform)
			if v.VisitCombine(x, world) {
				g.traverse(v, x.Body, world)
				v.EndCombine(x)
			}
		}
	}
	for range g.depth[body] {
		v.VisitPopState()
	}
}

// worldMatrix returns parent * local.
func worldMatrix(parent, local *math32.Matrix4) math32.Matrix4 {
	var w math32.Matrix4
	w.MulMatrices(parent, local)
	return w
}
