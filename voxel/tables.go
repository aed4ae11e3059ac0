package voxel

import (
	"github.com/pkg/errors"
)

// Tables holds the marching-cubes lookup tables for one meshing pass. Edges
// maps a corner configuration to a bitmask of the 12 cube edges crossed by the
// isosurface; Triangles lists edge-vertex indices in triples per
// configuration, terminated by -1 before the 16 slots run out.
//
// The kernel only indexes into these; callers may supply their own pair or use
// DefaultTables.
type Tables struct {
	Edges     [256]uint32
	Triangles [256][16]int32
}

// DefaultTables returns the canonical 256-entry tables matching the kernel's
// corner and edge numbering.
func DefaultTables() *Tables {
	return &Tables{
		Edges:     defaultEdgeTable,
		Triangles: defaultTriangleTable,
	}
}

// Validate checks an externally supplied table pair for the structural
// invariants the kernel relies on: -1-terminated rows of whole triangles,
// edge indices in [0,12), and agreement between each row and the edge bitmask
// for its configuration.
func (t *Tables) Validate() error {
	for cfg := 0; cfg < 256; cfg++ {
		row := t.Triangles[cfg]
		n := 0
		for n < len(row) && row[n] != -1 {
			n++
		}
		if n == len(row) {
			return errors.Errorf("triangle table row %d is not -1-terminated", cfg)
		}
		if n%3 != 0 {
			return errors.Errorf("triangle table row %d has %d entries, not a whole number of triangles", cfg, n)
		}
		var used uint32
		for i := 0; i < n; i++ {
			e := row[i]
			if e < 0 || e > 11 {
				return errors.Errorf("triangle table row %d entry %d: edge index %d out of range", cfg, i, e)
			}
			used |= 1 << uint(e)
		}
		if used != t.Edges[cfg] {
			return errors.Errorf("configuration %d: triangle row uses edge mask %#03x but edge table says %#03x", cfg, used, t.Edges[cfg])
		}
	}
	if t.Edges[0x00] != 0 || t.Edges[0xff] != 0 {
		return errors.New("uniform configurations 0x00 and 0xff must cross no edges")
	}
	return nil
}
