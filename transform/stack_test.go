// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"errors"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardTol = float32(1.0e-5)

func tolAssertEqualVector(t *testing.T, vt, va math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, standardTol)
	tolassert.EqualTol(t, vt.Y, va.Y, standardTol)
	tolassert.EqualTol(t, vt.Z, va.Z, standardTol)
}

func point(st *Stack, p math32.Vector3) math32.Vector3 {
	m := st.Current()
	return p.MulMatrix4(&m)
}

func TestNew(t *testing.T) {
	st := New()
	assert.Equal(t, 0, st.Depth())
	assert.Equal(t, *math32.Identity4(), st.Current())
	assert.True(t, errors.Is(st.Pop(), ErrStackUnderflow))
	assert.Equal(t, 0, st.Depth())
}

func TestPushPopRoundTrip(t *testing.T) {
	st := New()
	st.Translate(math32.Vec3(1, 2, 3))
	before := st.Current()

	st.Push()
	assert.Equal(t, 1, st.Depth())
	st.Translate(math32.Vec3(5, 0, 0))
	require.NoError(t, st.Rotate(math32.Vec3(0, 0, 1), 1.2))
	require.NoError(t, st.Scale(math32.Vec3(2, 3, 4)))
	assert.NotEqual(t, before, st.Current())

	require.NoError(t, st.Pop())
	assert.Equal(t, before, st.Current(), "restored bit for bit")
	assert.Equal(t, 0, st.Depth())
}

func TestComposition(t *testing.T) {
	st := New()
	st.Translate(math32.Vec3(1, 0, 0))
	require.NoError(t, st.Rotate(math32.Vec3(0, 0, 2), math32.Pi/2))
	// rotation applies in the translated frame: local x maps to world y
	tolAssertEqualVector(t, math32.Vec3(1, 1, 0), point(st, math32.Vec3(1, 0, 0)))

	require.NoError(t, st.Scale(math32.Vec3(2, 2, 2)))
	tolAssertEqualVector(t, math32.Vec3(1, 2, 0), point(st, math32.Vec3(1, 0, 0)))

	st.Reset()
	assert.Equal(t, *math32.Identity4(), st.Current())
}

func TestRotateQuat(t *testing.T) {
	st := New()
	q := math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), math32.Pi/2)
	// a non-normalized quaternion gives the same rotation
	require.NoError(t, st.RotateQuat(math32.Quat{X: 3 * q.X, Y: 3 * q.Y, Z: 3 * q.Z, W: 3 * q.W}))
	tolAssertEqualVector(t, math32.Vec3(0, 0, 1), point(st, math32.Vec3(0, 1, 0)))

	assert.True(t, errors.Is(st.RotateQuat(math32.Quat{}), ErrInvalidAxis))
}

func TestInvalidOperations(t *testing.T) {
	st := New()
	st.Translate(math32.Vec3(1, 1, 1))
	before := st.Current()
	assert.True(t, errors.Is(st.Rotate(math32.Vec3(0, 0, 0), 1), ErrInvalidAxis))
	assert.True(t, errors.Is(st.Scale(math32.Vec3(1, 0, 1)), ErrInvalidScale))
	assert.True(t, errors.Is(st.Scale(math32.Vec3(1, math32.NaN(), 1)), ErrInvalidScale))
	assert.Equal(t, before, st.Current(), "failed operations do not change the stack")
}

func TestClone(t *testing.T) {
	st := New()
	st.Push()
	st.Translate(math32.Vec3(1, 0, 0))
	cl := st.Clone()
	st.Translate(math32.Vec3(1, 0, 0))
	require.NoError(t, st.Pop())
	assert.Equal(t, 1, cl.Depth())
	tolAssertEqualVector(t, math32.Vec3(1, 0, 0), point(cl, math32.Vector3{}))
}
