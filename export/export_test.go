// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/gdesc/appearance"
	"cogentcore.org/gdesc/graph"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const standardTol = float32(1.0e-4)

// twoBoxes returns a graph with a unit box at the origin, and a sub-graph
// with a red unit box, combined at x = 2 and again at x = 4.
func twoBoxes(t *testing.T) *graph.Graph {
	sub := graph.New()
	require.NoError(t, sub.ChangeAppearance(appearance.Red))
	_, err := sub.AddBox(1, 1, 1, nil)
	require.NoError(t, err)

	g := graph.New()
	_, err = g.AddBox(1, 1, 1, nil)
	require.NoError(t, err)
	require.NoError(t, g.Translate(math32.Vec3(2, 0, 0)))
	require.NoError(t, g.Combine(sub))
	require.NoError(t, g.Translate(math32.Vec3(2, 0, 0)))
	require.NoError(t, g.Combine(sub))
	g.Freeze()
	return g
}

func TestFlatten(t *testing.T) {
	g := twoBoxes(t)
	shapes := Flatten(g)
	require.Len(t, shapes, 3)
	assert.Equal(t, 0, shapes[0].Depth)
	assert.Equal(t, 1, shapes[1].Depth)
	assert.Equal(t, appearance.Red, shapes[2].Appearance)

	c := shapes[2].WorldMesh().BBox().Center()
	tolassert.EqualTol(t, 4, c.X, standardTol)

	fl := &Flattener{MaxDepth: 1}
	g.Traverse(fl)
	assert.Len(t, fl.Shapes, 3)
	fl = &Flattener{MaxDepth: -1}
	g.Traverse(fl)
	assert.Len(t, fl.Shapes, 3)

	merged := Merge(shapes)
	require.NoError(t, merged.Validate())
	assert.Equal(t, 3*24, merged.NumVertex())
	tolassert.EqualTol(t, 3, merged.SignedVolume(), standardTol)
}

func TestLibrary(t *testing.T) {
	lib := NewLibrary(Flatten(twoBoxes(t)))
	assert.Len(t, lib.Instances, 3)
	assert.Equal(t, 1, lib.Meshes.Len(), "equal boxes share a mesh")
	assert.Equal(t, 2, lib.Appearances.Len())
	assert.Equal(t, "Box0", lib.Meshes.Values[0])
	assert.Equal(t, 1, lib.Instances[2].Appearance)
}

func TestSummary(t *testing.T) {
	sm := Summarize(twoBoxes(t))
	assert.Equal(t, 3, sm.Shapes)
	assert.Equal(t, 3, sm.Instructions["Primitive"])
	assert.Equal(t, 2, sm.Instructions["Combine"])
	assert.Equal(t, 2, sm.Instructions["SetAppearance"])
	assert.Equal(t, 2, sm.Instructions["Translate"])
	assert.Equal(t, 36, sm.Triangles)
	tolassert.EqualTol(t, 18, sm.SurfaceArea, standardTol)
	tolassert.EqualTol(t, -0.5, sm.Min[0], standardTol)
	tolassert.EqualTol(t, 4.5, sm.Max[0], standardTol)
	require.Len(t, sm.Appearances, 2)
	assert.Equal(t, "#FF0000", sm.Appearances[1].Color)
	tolassert.EqualTol(t, 2, sm.Instances[1].Position[0], standardTol)

	var buf bytes.Buffer
	require.NoError(t, sm.WriteYAML(&buf))
	var back Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, sm.Instances, back.Instances)
	assert.Equal(t, sm.Instructions, back.Instructions)

	buf.Reset()
	require.NoError(t, sm.WriteTOML(&buf))
	var tback Summary
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &tback))
	assert.Equal(t, sm.Meshes, tback.Meshes)
	assert.Equal(t, sm.Appearances, tback.Appearances)
}

func TestSummaryEmpty(t *testing.T) {
	sm := Summarize(graph.New())
	assert.Equal(t, 0, sm.Shapes)
	assert.Equal(t, [3]float32{}, sm.Min)
	var buf bytes.Buffer
	assert.NoError(t, sm.WriteYAML(&buf))
}
