// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package appearance

import "cogentcore.org/core/math32"

// Default is the appearance used for shapes added without any
// explicit or active appearance: a matte mid gray.
var Default = mustRGB(0.5, 0.5, 0.5)

// Common solid colors.
var (
	Black     = mustRGB(0, 0, 0)
	White     = mustRGB(1, 1, 1)
	Gray      = mustRGB(0.5, 0.5, 0.5)
	Red       = mustRGB(1, 0, 0)
	Green     = mustRGB(0, 1, 0)
	Blue      = mustRGB(0, 0, 1)
	Yellow    = mustRGB(1, 1, 0)
	Orange    = mustRGB(1, 0.647, 0)
	Aluminum  = mustRGB(0.7, 0.7, 0.75)
	DarkGreen = mustRGB(0, 0.392, 0)
)

func mustRGB(r, g, b float32) Appearance {
	ap, err := New(math32.Vec4(r, g, b, 1), math32.Vec4(1, 1, 1, 1), DefaultShininess, "")
	if err != nil {
		panic(err)
	}
	return ap
}

// Texture returns a white appearance that references the given texture,
// so that the texture colors are shown unmodified.
func Texture(name TextureName) Appearance {
	return White.WithTexture(name)
}
