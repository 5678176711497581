// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Cylinder returns a closed cylinder around the z axis with its
// bottom cap at z = 0 and its top cap at z = height.
func Cylinder(radius, height float32, divs int) (*Data, error) {
	if err := checkPositive("Cylinder", []string{"radius", "height"}, radius, height); err != nil {
		return nil, err
	}
	return cone("Cylinder", radius, radius, height, divs)
}

// Cone returns a cone around the z axis with its base cap of the
// given radius at z = 0 and its tip at z = height.
func Cone(radius, height float32, divs int) (*Data, error) {
	if err := checkPositive("Cone", []string{"radius", "height"}, radius, height); err != nil {
		return nil, err
	}
	return cone("Cone", 0, radius, height, divs)
}

// TruncatedCone returns a cone around the z axis cut at the top,
// with a bottom cap of radiusBottom at z = 0 and a top cap of
// radiusTop at z = height. A cap is omitted when its radius is 0,
// but both radii cannot be 0.
func TruncatedCone(radiusTop, radiusBottom, height float32, divs int) (*Data, error) {
	return cone("TruncatedCone", radiusTop, radiusBottom, height, divs)
}

func cone(fn string, rTop, rBot, height float32, divs int) (*Data, error) {
	if err := checkPositive(fn, []string{"height"}, height); err != nil {
		return nil, err
	}
	if !(rTop >= 0) || !(rBot >= 0) || !isFinite(rTop) || !isFinite(rBot) || (rTop == 0 && rBot == 0) {
		return nil, fmt.Errorf("mesh.%s: radii (top %g, bottom %g) must be >= 0 and not both 0: %w", fn, rTop, rBot, ErrInvalidDimension)
	}
	if err := checkDivisions(fn, "divs", divs); err != nil {
		return nil, err
	}
	b := &builder{}

	// side: one column of two vertices per step, the seam duplicated
	bot := make([]uint32, divs+1)
	top := make([]uint32, divs+1)
	for i := 0; i <= divs; i++ {
		c, s := circlePoint(i, divs)
		u := float32(i) / float32(divs)
		norm := math32.Vec3(height*c, height*s, rBot-rTop).Normal()
		bot[i] = b.add(math32.Vec3(rBot*c, rBot*s, 0), norm, math32.Vec2(u, 0))
		top[i] = b.add(math32.Vec3(rTop*c, rTop*s, height), norm, math32.Vec2(u, 1))
	}
	for i := 0; i < divs; i++ {
		if rBot > 0 {
			b.tri(bot[i], bot[i+1], top[i])
		}
		if rTop > 0 {
			b.tri(bot[i+1], top[i+1], top[i])
		}
	}

	if rBot > 0 {
		capFan(b, rBot, rBot, 0, math32.Vec3(0, 0, -1), divs)
	}
	if rTop > 0 {
		capFan(b, rTop, rTop, height, math32.Vec3(0, 0, 1), divs)
	}
	return b.data(), nil
}

// capFan adds an elliptic disc with radii rx, ry at height z as a
// triangle fan around its center, facing along norm (which is either +z or -z).
func capFan(b *builder, rx, ry, z float32, norm math32.Vector3, divs int) {
	ctr := b.add(math32.Vec3(0, 0, z), norm, math32.Vec2(0.5, 0.5))
	rim := make([]uint32, divs)
	for i := range rim {
		c, s := circlePoint(i, divs)
		rim[i] = b.add(math32.Vec3(rx*c, ry*s, z), norm, math32.Vec2(0.5+c/2, 0.5+s/2))
	}
	for i := range rim {
		j := (i + 1) % divs
		if norm.Z > 0 {
			b.tri(ctr, rim[i], rim[j])
		} else {
			b.tri(ctr, rim[j], rim[i])
		}
	}
}

// ArcTorus returns a torus segment in the xy plane, around the z axis,
// with the given major (ring) and minor (tube) radius, going from the
// start to the end angle (in radians). The ends of a partial arc are open.
func ArcTorus(start, end, major, minor float32, divs int) (*Data, error) {
	if err := checkPositive("ArcTorus", []string{"major", "minor"}, major, minor); err != nil {
		return nil, err
	}
	if !(end > start) || !isFinite(start) || !isFinite(end) {
		return nil, fmt.Errorf("mesh.ArcTorus: end angle %g must be > start angle %g: %w", end, start, ErrInvalidDimension)
	}
	if err := checkDivisions("ArcTorus", "divs", divs); err != nil {
		return nil, err
	}
	b := &builder{}
	n := divs + 1
	for i := 0; i < n; i++ {
		u := float32(i) / float32(divs)
		ang := start + (end-start)*u
		ca, sa := math32.Cos(ang), math32.Sin(ang)
		for j := 0; j < n; j++ {
			ct, st := circlePoint(j, divs)
			norm := math32.Vec3(ct*ca, ct*sa, st)
			rad := major + minor*ct
			b.add(math32.Vec3(rad*ca, rad*sa, minor*st), norm, math32.Vec2(u, float32(j)/float32(divs)))
		}
	}
	at := func(i, j int) uint32 { return uint32(i*n + j) }
	for i := 0; i < divs; i++ {
		for j := 0; j < divs; j++ {
			b.tri(at(i, j), at(i+1, j), at(i, j+1))
			b.tri(at(i+1, j), at(i+1, j+1), at(i, j+1))
		}
	}
	return b.data(), nil
}
