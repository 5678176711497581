// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/gdesc/appearance"
	"cogentcore.org/gdesc/mesh"
)

// Kinds are the kinds of graph instructions.
type Kinds int32 //enums:enum -trim-prefix Kind

const (
	// KindPrimitive adds a generated primitive mesh.
	KindPrimitive Kinds = iota

	// KindCustomMesh adds externally provided mesh data.
	KindCustomMesh

	// KindSetAppearance changes the active appearance.
	KindSetAppearance

	// KindTranslate translates the current transform.
	KindTranslate

	// KindRotate rotates the current transform.
	KindRotate

	// KindScale scales the current transform.
	KindScale

	// KindPushState saves the current transform.
	KindPushState

	// KindPopState restores the last saved transform.
	KindPopState

	// KindIdentity resets the current transform to the identity.
	KindIdentity

	// KindCombine includes another graph at the current transform.
	KindCombine
)

// Instruction is one element of a [Graph]. The set of instructions is
// closed: it is implemented only by the types in this package, and
// backends dispatch on it with a type switch, or with a [Visitor].
// Instructions are values: they are copied in and out of the graph,
// and share only their immutable mesh data.
type Instruction interface {

	// Kind returns the kind of instruction.
	Kind() Kinds

	// isInstruction seals the interface.
	isInstruction()
}

// Primitive adds a mesh generated from a primitive request.
type Primitive struct {

	// Request has the parameters the mesh was generated from,
	// for backends that have native primitives.
	Request mesh.Request

	// Mesh is the generated mesh, in local coordinates.
	Mesh *mesh.Data

	// Appearance is the effective appearance of the shape.
	Appearance appearance.Appearance

	// Transform is the transform that was current when
	// the shape was added, relative to the graph root.
	Transform math32.Matrix4
}

// CustomMesh adds externally provided mesh data.
type CustomMesh struct {

	// Mesh is the mesh, in local coordinates.
	Mesh *mesh.Data

	// Appearance is the effective appearance of the mesh.
	Appearance appearance.Appearance

	// Transform is the transform that was current when
	// the mesh was added, relative to the graph root.
	Transform math32.Matrix4
}

// SetAppearance changes the appearance used by subsequently added
// shapes that do not specify one.
type SetAppearance struct {
	Appearance appearance.Appearance
}

// Translate is a translation of the current transform.
type Translate struct {
	Vector math32.Vector3
}

// Rotate is a rotation of the current transform.
type Rotate struct {

	// Rotation is the normalized rotation quaternion.
	Rotation math32.Quat
}

// AxisAngle returns the rotation as a unit axis and an angle in radians.
// The axis is +x for a zero rotation.
func (rt Rotate) AxisAngle() (math32.Vector3, float32) {
	q := rt.Rotation
	s := math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if s == 0 {
		return math32.Vec3(1, 0, 0), 0
	}
	return math32.Vec3(q.X/s, q.Y/s, q.Z/s), 2 * math32.Atan2(s, q.W)
}

// Scale is a scaling of the current transform.
type Scale struct {
	Vector math32.Vector3
}

// PushState saves the current transform.
type PushState struct{}

// PopState restores the transform saved by the matching [PushState].
type PopState struct{}

// Identity resets the current transform to the identity.
type Identity struct{}

// Combine includes a copy of another graph, whose instructions
// are placed relative to the transform that was current when it was
// combined. The copy is held by the combining graph; use
// [Graph.SubGraph] to get its instructions.
type Combine struct {

	// Body is the index of the sub-graph body within the graph.
	Body int

	// Transform is the transform that was current when
	// the graph was combined, relative to the graph root.
	Transform math32.Matrix4
}

func (Primitive) Kind() Kinds     { return KindPrimitive }
func (CustomMesh) Kind() Kinds    { return KindCustomMesh }
func (SetAppearance) Kind() Kinds { return KindSetAppearance }
func (Translate) Kind() Kinds     { return KindTranslate }
func (Rotate) Kind() Kinds        { return KindRotate }
func (Scale) Kind() Kinds         { return KindScale }
func (PushState) Kind() Kinds     { return KindPushState }
func (PopState) Kind() Kinds      { return KindPopState }
func (Identity) Kind() Kinds      { return KindIdentity }
func (Combine) Kind() Kinds       { return KindCombine }

func (Primitive) isInstruction()     {}
func (CustomMesh) isInstruction()    {}
func (SetAppearance) isInstruction() {}
func (Translate) isInstruction()     {}
func (Rotate) isInstruction()        {}
func (Scale) isInstruction()         {}
func (PushState) isInstruction()     {}
func (PopState) isInstruction()      {}
func (Identity) isInstruction()      {}
func (Combine) isInstruction()       {}
