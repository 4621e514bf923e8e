package piece

import "github.com/fkopp/polycube/internal/geom"

// placementsFor slides every orientation through every in-bounds
// translation and records the resulting bitboard. cellCount is the
// piece's cell count, used only to assert the invariant that every
// placement has exactly that many bits set.
func placementsFor(orientations []geom.Orientation, dim geom.Dim, cellCount int) []geom.Bitboard {
	placements := make([]geom.Bitboard, 0, 64)
	for _, o := range orientations {
		bound := o.Bounds()
		maxTX := dim.X - bound.X - 1
		maxTY := dim.Y - bound.Y - 1
		maxTZ := dim.Z - bound.Z - 1
		if maxTX < 0 || maxTY < 0 || maxTZ < 0 {
			continue
		}
		for tx := 0; tx <= maxTX; tx++ {
			for ty := 0; ty <= maxTY; ty++ {
				for tz := 0; tz <= maxTZ; tz++ {
					translated := make(geom.Orientation, len(o))
					t := geom.Coord{X: tx, Y: ty, Z: tz}
					for i, c := range o {
						translated[i] = c.Add(t)
					}
					b := translated.Bitboard(dim)
					if b.PopCount() != cellCount {
						// An internal invariant violation: normalisation or
						// translation produced a cell list with a repeated
						// cell, which should be impossible for a
						// well-formed polycube.
						panic("piece: placement bit count diverges from cell count")
					}
					placements = append(placements, b)
				}
			}
		}
	}
	return dedupBitboards(placements)
}

func dedupBitboards(bs []geom.Bitboard) []geom.Bitboard {
	seen := make(map[geom.Bitboard]struct{}, len(bs))
	out := make([]geom.Bitboard, 0, len(bs))
	for _, b := range bs {
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	return out
}
