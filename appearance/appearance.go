// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package appearance describes the surface material of graphics elements:
// diffuse and specular colors, shininess, and an optional texture reference.
// An [Appearance] is an immutable value that can be compared with ==, so
// that rendering backends can use it directly as a cache key.
package appearance

import (
	"errors"
	"fmt"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// ErrInvalidColor is returned when a color channel is outside of [0,1]
// or the shininess exponent is negative.
var ErrInvalidColor = errors.New("invalid color")

// TextureName is an opaque reference to a texture that is owned and
// loaded by the rendering backend. The empty name means no texture.
type TextureName string

// DefaultShininess is the specular exponent used by the constructors
// that do not take an explicit shininess.
const DefaultShininess = 30

// Appearance is the immutable material description of a surface.
// The zero value is a fully transparent black surface; use [New]
// or one of the helper constructors to get a valid one.
type Appearance struct {
	diffuse   math32.Vector4
	specular  math32.Vector4
	shininess float32
	texture   TextureName
}

// New returns a new Appearance with the given diffuse and specular colors
// (RGBA, each channel normalized to [0,1], alpha is opacity),
// shininess exponent, and optional texture (empty for none).
// It returns an error wrapping [ErrInvalidColor] if any channel is outside
// of [0,1] or shininess is negative.
func New(diffuse, specular math32.Vector4, shininess float32, texture TextureName) (Appearance, error) {
	if err := checkColor("diffuse", diffuse); err != nil {
		return Appearance{}, err
	}
	if err := checkColor("specular", specular); err != nil {
		return Appearance{}, err
	}
	if !(shininess >= 0) || math32.IsInf(shininess, 1) {
		return Appearance{}, fmt.Errorf("appearance.New: shininess %g must be a finite value >= 0: %w", shininess, ErrInvalidColor)
	}
	return Appearance{diffuse: diffuse, specular: specular, shininess: shininess, texture: texture}, nil
}

func checkColor(field string, c math32.Vector4) error {
	chans := [4]float32{c.X, c.Y, c.Z, c.W}
	names := [4]string{"r", "g", "b", "a"}
	for i, v := range chans {
		// written so that NaN fails too
		if !(v >= 0 && v <= 1) {
			return fmt.Errorf("appearance.New: %s channel %s = %g is outside of [0,1]: %w", field, names[i], v, ErrInvalidColor)
		}
	}
	return nil
}

// RGBA returns an opaque Appearance with the given diffuse color,
// white specular and [DefaultShininess].
func RGBA(r, g, b, a float32) (Appearance, error) {
	return New(math32.Vec4(r, g, b, a), math32.Vec4(1, 1, 1, 1), DefaultShininess, "")
}

// FromColor returns an Appearance with the given diffuse color,
// white specular and [DefaultShininess]. It cannot fail because
// all [color.Color] values map into the valid range.
func FromColor(c color.Color) Appearance {
	rgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Appearance{
		diffuse:   math32.Vec4(float32(rgba.R)/255, float32(rgba.G)/255, float32(rgba.B)/255, float32(rgba.A)/255),
		specular:  math32.Vec4(1, 1, 1, 1),
		shininess: DefaultShininess,
	}
}

// FromName returns an Appearance for the given CSS standard color name
// (e.g., "red", "steelblue").
func FromName(name string) (Appearance, error) {
	c, err := colors.FromName(name)
	if err != nil {
		return Appearance{}, fmt.Errorf("appearance.FromName: %w", err)
	}
	return FromColor(c), nil
}

// Diffuse returns the diffuse (main) color.
func (ap Appearance) Diffuse() math32.Vector4 { return ap.diffuse }

// Specular returns the specular color.
func (ap Appearance) Specular() math32.Vector4 { return ap.specular }

// Shininess returns the specular exponent.
func (ap Appearance) Shininess() float32 { return ap.shininess }

// Texture returns the texture reference, empty if none.
func (ap Appearance) Texture() TextureName { return ap.texture }

// HasTexture returns whether a texture is set.
func (ap Appearance) HasTexture() bool { return ap.texture != "" }

// Transparency returns 1 - diffuse alpha.
func (ap Appearance) Transparency() float32 { return 1 - ap.diffuse.W }

// IsTransparent returns true if the diffuse color is not fully opaque.
func (ap Appearance) IsTransparent() bool { return ap.diffuse.W < 1 }

// Equal returns whether the two appearances are interchangeable.
// It is the same as ==.
func (ap Appearance) Equal(other Appearance) bool { return ap == other }

// Color returns the diffuse color as a non-premultiplied [color.NRGBA].
func (ap Appearance) Color() color.NRGBA {
	d := ap.diffuse
	return color.NRGBA{R: to8(d.X), G: to8(d.Y), B: to8(d.Z), A: to8(d.W)}
}

func to8(v float32) uint8 {
	return uint8(math32.Round(v * 255))
}

// WithTransparency returns a copy with the diffuse alpha set to 1 - t.
func (ap Appearance) WithTransparency(t float32) (Appearance, error) {
	d := ap.diffuse
	d.W = 1 - t
	return New(d, ap.specular, ap.shininess, ap.texture)
}

// WithTexture returns a copy that references the given texture.
func (ap Appearance) WithTexture(tex TextureName) Appearance {
	ap.texture = tex
	return ap
}

// WithShininess returns a copy with the given shininess.
func (ap Appearance) WithShininess(shininess float32) (Appearance, error) {
	return New(ap.diffuse, ap.specular, shininess, ap.texture)
}

func (ap Appearance) String() string {
	d := ap.diffuse
	s := fmt.Sprintf("Appearance{diffuse: (%.3g, %.3g, %.3g, %.3g), shininess: %g", d.X, d.Y, d.Z, d.W, ap.shininess)
	if ap.texture != "" {
		s += ", texture: " + string(ap.texture)
	}
	return s + "}"
}
