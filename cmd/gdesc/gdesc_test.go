// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/cli"
	"cogentcore.org/gdesc/export"
	"cogentcore.org/gdesc/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenes(t *testing.T) {
	for _, nm := range sceneNames() {
		t.Run(nm, func(t *testing.T) {
			g := graph.New()
			require.NoError(t, scenes[nm](g))
			assert.Equal(t, 0, g.Depth())
			sm := export.Summarize(g)
			assert.Greater(t, sm.Shapes, 0)
			assert.NotEmpty(t, sceneDocs[nm])
		})
	}
}

func TestRobotCombinesWheels(t *testing.T) {
	g := graph.New()
	require.NoError(t, robot(g))
	sm := export.Summarize(g)
	assert.Equal(t, 4, sm.Instructions["Combine"])
	// 4 wheels of 2 cylinders each
	assert.GreaterOrEqual(t, sm.Instructions["Primitive"], 8)
}

func TestDescribe(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "ramp.toml")
	require.NoError(t, Describe(&Config{Scene: "ramp", Format: "toml", Output: out}))
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "shapes")

	assert.Error(t, Describe(&Config{Scene: "nothing", Format: "yaml"}))
	assert.Error(t, Describe(&Config{Scene: "ramp", Format: "json", Output: filepath.Join(dir, "x")}))
}

func TestRunRootCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "ramp.yaml")
	args := os.Args
	t.Cleanup(func() { os.Args = args })
	os.Args = []string{"gdesc", "ramp", "-o", out}

	cfg := &Config{}
	cli.Run(options(), cfg, commands()...)
	assert.Equal(t, "ramp", cfg.Scene)
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "instances:")
}

func TestCommands(t *testing.T) {
	cmds := commands()
	require.Len(t, cmds, 2)
	assert.True(t, cmds[0].Root)
	assert.Equal(t, "describe", cmds[0].Name)
	assert.False(t, cmds[1].Root)
}
