// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"cogentcore.org/core/math32"
)

// Sphere returns a UV sphere of the given radius centered at the origin,
// with latDivs divisions from the south to the north pole and lonDivs
// divisions around the z axis. The poles are triangle fans.
func Sphere(radius float32, latDivs, lonDivs int) (*Data, error) {
	if err := checkPositive("Sphere", []string{"radius"}, radius); err != nil {
		return nil, err
	}
	return ellipsoid("Sphere", math32.Vec3(radius, radius, radius), latDivs, lonDivs)
}

// Ellipsoid returns an ellipsoid with the given radii along x, y and z,
// centered at the origin, built like [Sphere].
func Ellipsoid(rx, ry, rz float32, latDivs, lonDivs int) (*Data, error) {
	if err := checkPositive("Ellipsoid", []string{"rx", "ry", "rz"}, rx, ry, rz); err != nil {
		return nil, err
	}
	return ellipsoid("Ellipsoid", math32.Vec3(rx, ry, rz), latDivs, lonDivs)
}

func ellipsoid(fn string, rad math32.Vector3, latDivs, lonDivs int) (*Data, error) {
	if err := checkDivisions(fn, "latDivs", latDivs); err != nil {
		return nil, err
	}
	if err := checkDivisions(fn, "lonDivs", lonDivs); err != nil {
		return nil, err
	}
	rows := make([]ring, latDivs+1)
	for lat := range rows {
		v := float32(lat) / float32(latDivs)
		rows[lat] = ring{angle: -math32.Pi/2 + math32.Pi*v, v: v}
	}
	b := &builder{}
	latitudeRings(b, rad, rows, lonDivs)
	return b.data(), nil
}

// HemiEllipsoid returns the top half of an ellipsoid with the given
// radii, with its flat base cap in the z = 0 plane. latDivs is the
// number of divisions from the base to the pole.
func HemiEllipsoid(rx, ry, rz float32, latDivs, lonDivs int) (*Data, error) {
	if err := checkPositive("HemiEllipsoid", []string{"rx", "ry", "rz"}, rx, ry, rz); err != nil {
		return nil, err
	}
	if err := checkDivisions("HemiEllipsoid", "latDivs", latDivs); err != nil {
		return nil, err
	}
	if err := checkDivisions("HemiEllipsoid", "lonDivs", lonDivs); err != nil {
		return nil, err
	}
	rows := make([]ring, latDivs+1)
	for lat := range rows {
		v := float32(lat) / float32(latDivs)
		rows[lat] = ring{angle: math32.Pi / 2 * v, v: v}
	}
	b := &builder{}
	rad := math32.Vec3(rx, ry, rz)
	latitudeRings(b, rad, rows, lonDivs)
	capFan(b, rx, ry, 0, math32.Vec3(0, 0, -1), lonDivs)
	return b.data(), nil
}

// Capsule returns a capsule along the z axis centered at the origin:
// a cylinder of elliptic section rx, ry and the given height, closed at
// both ends by half ellipsoids of radii rx, ry, rz centered on the
// cylinder ends. latDivs is the number of divisions from pole to pole
// over the two ends, rounded up to an even number.
func Capsule(height, rx, ry, rz float32, latDivs, lonDivs int) (*Data, error) {
	if err := checkPositive("Capsule", []string{"height", "rx", "ry", "rz"}, height, rx, ry, rz); err != nil {
		return nil, err
	}
	if err := checkDivisions("Capsule", "latDivs", latDivs); err != nil {
		return nil, err
	}
	if err := checkDivisions("Capsule", "lonDivs", lonDivs); err != nil {
		return nil, err
	}
	half := (latDivs + 1) / 2
	total := 2*rz + height
	rows := make([]ring, 0, 2*half+2)
	for lat := 0; lat <= half; lat++ {
		ang := -math32.Pi/2 + math32.Pi/2*float32(lat)/float32(half)
		z := -height/2 + rz*math32.Sin(ang)
		rows = append(rows, ring{angle: ang, offset: -height / 2, v: (z + total/2) / total})
	}
	// the equator is repeated at the top of the cylinder
	for lat := 0; lat <= half; lat++ {
		ang := math32.Pi / 2 * float32(lat) / float32(half)
		z := height/2 + rz*math32.Sin(ang)
		rows = append(rows, ring{angle: ang, offset: height / 2, v: (z + total/2) / total})
	}
	b := &builder{}
	latitudeRings(b, math32.Vec3(rx, ry, rz), rows, lonDivs)
	return b.data(), nil
}

// ring is one latitude ring of an ellipsoidal surface.
type ring struct {

	// angle is the latitude angle, from -π/2 at the south pole
	// to π/2 at the north pole.
	angle float32

	// offset is added to the z coordinate of the ring.
	offset float32

	// v is the texture coordinate of the ring.
	v float32
}

// isPole returns whether the ring collapses to a single point.
func (r ring) isPole() bool {
	return math32.Abs(r.angle) >= math32.Pi/2
}

// latitudeRings adds the surface through the given rings, which must go
// from south to north, with lonDivs divisions around the z axis.
// The seam column is duplicated so that texture coordinates wrap,
// and a pole has one vertex per column.
func latitudeRings(b *builder, rad math32.Vector3, rows []ring, lonDivs int) {
	base := uint32(len(b.Vertex))
	nlon := lonDivs + 1
	for _, r := range rows {
		cl, sl := math32.Cos(r.angle), math32.Sin(r.angle)
		if r.isPole() {
			// exact poles, independent of rounding
			cl = 0
		}
		for lon := 0; lon < nlon; lon++ {
			c, s := circlePoint(lon, lonDivs)
			unit := math32.Vec3(cl*c, cl*s, sl)
			pos := math32.Vec3(rad.X*unit.X, rad.Y*unit.Y, rad.Z*unit.Z+r.offset)
			norm := math32.Vec3(unit.X/rad.X, unit.Y/rad.Y, unit.Z/rad.Z).Normal()
			b.add(pos, norm, math32.Vec2(float32(lon)/float32(lonDivs), r.v))
		}
	}
	at := func(row, lon int) uint32 { return base + uint32(row*nlon+lon) }
	for row := 0; row < len(rows)-1; row++ {
		for lon := 0; lon < lonDivs; lon++ {
			if !rows[row+1].isPole() {
				b.tri(at(row, lon), at(row, lon+1), at(row+1, lon))
			}
			if !rows[row].isPole() {
				b.tri(at(row, lon+1), at(row+1, lon+1), at(row+1, lon))
			}
		}
	}
}
