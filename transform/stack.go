// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform provides a stack of 4x4 affine transform matrices,
// as used while building a scene description: operations compose with
// the top of the stack, and nested state is saved with [Stack.Push]
// and restored with [Stack.Pop].
package transform

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
)

var (
	// ErrStackUnderflow is returned by [Stack.Pop] when only the root remains.
	ErrStackUnderflow = errors.New("transform stack underflow")

	// ErrInvalidAxis is returned for a rotation around a zero-length axis.
	ErrInvalidAxis = errors.New("invalid rotation axis")

	// ErrInvalidScale is returned for a scale with a zero component,
	// which would make the transform non-invertible.
	ErrInvalidScale = errors.New("invalid scale")
)

// Stack is a stack of transforms. The bottom (root) entry is
// always present and starts as the identity. All operations
// right-multiply the top entry, so that they apply in the local
// frame established by the previous operations.
// The zero value is not ready for use; call [New].
type Stack struct {
	mats []math32.Matrix4
}

// New returns a new stack with the identity as its root.
func New() *Stack {
	return &Stack{mats: []math32.Matrix4{*math32.Identity4()}}
}

// Depth returns the number of entries above the root.
func (st *Stack) Depth() int { return len(st.mats) - 1 }

// Current returns a copy of the top transform.
func (st *Stack) Current() math32.Matrix4 { return st.mats[len(st.mats)-1] }

// Push duplicates the top transform.
func (st *Stack) Push() {
	st.mats = append(st.mats, st.Current())
}

// Pop removes the top transform, restoring the one that was current at
// the matching [Stack.Push]. The root cannot be popped.
func (st *Stack) Pop() error {
	if len(st.mats) <= 1 {
		return fmt.Errorf("transform.Pop: %w", ErrStackUnderflow)
	}
	st.mats = st.mats[:len(st.mats)-1]
	return nil
}

// Reset resets the top transform to the identity.
func (st *Stack) Reset() {
	st.mats[len(st.mats)-1] = *math32.Identity4()
}

// Clone returns an independent copy of the stack.
func (st *Stack) Clone() *Stack {
	return &Stack{mats: append([]math32.Matrix4(nil), st.mats...)}
}

// Apply right-multiplies the top transform by m.
func (st *Stack) Apply(m *math32.Matrix4) {
	top := &st.mats[len(st.mats)-1]
	cur := *top
	top.MulMatrices(&cur, m)
}

// Translate translates by v.
func (st *Stack) Translate(v math32.Vector3) {
	st.Apply(TranslationMatrix(v))
}

// Rotate rotates by angle (in radians) around the given axis,
// which need not be normalized.
func (st *Stack) Rotate(axis math32.Vector3, angle float32) error {
	m, err := RotationMatrix(axis, angle)
	if err != nil {
		return err
	}
	st.Apply(m)
	return nil
}

// RotateQuat rotates by the given quaternion, which is normalized first.
func (st *Stack) RotateQuat(q math32.Quat) error {
	m, err := QuatMatrix(q)
	if err != nil {
		return err
	}
	st.Apply(m)
	return nil
}

// Scale scales by v, which must not have any zero component.
func (st *Stack) Scale(v math32.Vector3) error {
	m, err := ScaleMatrix(v)
	if err != nil {
		return err
	}
	st.Apply(m)
	return nil
}

// TranslationMatrix returns the matrix translating by v.
func TranslationMatrix(v math32.Vector3) *math32.Matrix4 {
	m := &math32.Matrix4{}
	m.SetTransform(v, math32.Quat{W: 1}, math32.Vec3(1, 1, 1))
	return m
}

// RotationMatrix returns the matrix rotating by angle (in radians)
// around the given axis.
func RotationMatrix(axis math32.Vector3, angle float32) (*math32.Matrix4, error) {
	ln := axis.Length()
	if !(ln > 0) || math32.IsInf(ln, 0) || math32.IsNaN(angle) || math32.IsInf(angle, 0) {
		return nil, fmt.Errorf("transform.Rotate: axis %v, angle %g: %w", axis, angle, ErrInvalidAxis)
	}
	m := &math32.Matrix4{}
	m.SetTransform(math32.Vector3{}, math32.NewQuatAxisAngle(axis.DivScalar(ln), angle), math32.Vec3(1, 1, 1))
	return m, nil
}

// QuatMatrix returns the rotation matrix for q, after normalizing it.
func QuatMatrix(q math32.Quat) (*math32.Matrix4, error) {
	ln := math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if !(ln > 0) || math32.IsInf(ln, 0) {
		return nil, fmt.Errorf("transform.RotateQuat: quaternion %v: %w", q, ErrInvalidAxis)
	}
	q = math32.Quat{X: q.X / ln, Y: q.Y / ln, Z: q.Z / ln, W: q.W / ln}
	m := &math32.Matrix4{}
	m.SetTransform(math32.Vector3{}, q, math32.Vec3(1, 1, 1))
	return m, nil
}

// ScaleMatrix returns the matrix scaling by v.
func ScaleMatrix(v math32.Vector3) (*math32.Matrix4, error) {
	for _, c := range [3]float32{v.X, v.Y, v.Z} {
		if c == 0 || math32.IsNaN(c) || math32.IsInf(c, 0) {
			return nil, fmt.Errorf("transform.Scale: %v: %w", v, ErrInvalidScale)
		}
	}
	m := &math32.Matrix4{}
	m.SetTransform(math32.Vector3{}, math32.Quat{W: 1}, v)
	return m, nil
}
