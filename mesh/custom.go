// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Custom wraps externally provided mesh data, for example loaded from a
// model file. The indices are a flat list of vertex index triples, one per
// triangle. The normals and texture coordinates are optional (nil), and
// must otherwise have one entry per vertex. If normals are not given,
// area-weighted vertex normals are computed from the triangles.
// All slices are copied, so the caller can reuse them.
func Custom(vertices, normals []math32.Vector3, texCoords []math32.Vector2, indices []uint32) (*Data, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("mesh.Custom: %d indices is not a multiple of 3: %w", len(indices), ErrInvalidMesh)
	}
	md := &Data{
		Vertex:   cloneSlice(vertices),
		Normal:   cloneSlice(normals),
		TexCoord: cloneSlice(texCoords),
		Index:    make([]Triangle, len(indices)/3),
	}
	for i := range md.Index {
		md.Index[i] = Triangle{indices[3*i], indices[3*i+1], indices[3*i+2]}
	}
	if err := md.Validate(); err != nil {
		return nil, fmt.Errorf("mesh.Custom: %w", err)
	}
	if len(md.Normal) == 0 && len(md.Vertex) > 0 {
		md.Normal = ComputeNormals(md.Vertex, md.Index)
	}
	return md, nil
}

// ComputeNormals returns area-weighted vertex normals for the given
// triangles: each vertex gets the normalized sum of the unnormalized face
// normals of the triangles that use it. Vertices not used by any
// triangle (or only by degenerate ones) get a zero normal.
func ComputeNormals(vertex []math32.Vector3, index []Triangle) []math32.Vector3 {
	norms := make([]math32.Vector3, len(vertex))
	for _, tri := range index {
		a, b, c := vertex[tri[0]], vertex[tri[1]], vertex[tri[2]]
		// length is twice the area, giving the weighting
		fn := b.Sub(a).Cross(c.Sub(a))
		for _, vi := range tri {
			norms[vi] = norms[vi].Add(fn)
		}
	}
	for i, n := range norms {
		if n.LengthSquared() > 0 {
			norms[i] = n.Normal()
		}
	}
	return norms
}
