package raster

import (
	"errors"

	assert "github.com/arl/assertgo"
)

// ErrCorruptWalk is returned by PathScan when the contour walk lands on a
// lookup entry marked invalid. This must never happen on a well-formed
// edge grid; its entries only arise from memory corruption, a miswired
// LayeringStep, or a bug in this package.
var ErrCorruptWalk = errors.New("raster: contour walk reached an invalid lookup entry")

// PathScan walks the edge grid in row-major order, starting a new contour
// walk at every cell coded 4 (outer seed) or 11 (hole seed), and returns
// the closed contour paths it finds. Contours shorter than pathomit
// points are discarded. layer is mutated in place: every visited cell is
// overwritten with its lookup replacement, so a closed contour is never
// walked twice.
func PathScan(layer []int, width, height, pathomit int) ([]*Path, error) {
	var paths []*Path

	at := func(r, c int) int { return layer[r*width+c] }
	set := func(r, c, v int) { layer[r*width+c] = v }

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			code := at(row, col)
			if code != outerSeedCode && code != holeSeedCode {
				continue
			}

			px, py := col, row
			startX, startY := px, py
			dir := 1
			hole := code == holeSeedCode

			p := &Path{BBox: BBox{px, py, px, py}, Parent: -1}

			for {
				// Record the current position, offset by -1 to remove
				// the 1-pixel border added by the driver.
				point := Point{X: float64(px - 1), Y: float64(py - 1)}
				p.Points = append(p.Points, point)
				p.Labels = append(p.Labels, -1)
				p.BBox = p.BBox.grow(px-1, py-1)

				cur := at(py, px)
				lookup := pathScanCombinedLookup[cur][dir]
				assert.True(lookup[0] != -1, "PathScan: reached invalid lookup entry at code=%d dir=%d", cur, dir)
				if lookup[0] == -1 {
					return nil, ErrCorruptWalk
				}

				set(py, px, lookup[0])
				dir = lookup[1]
				px += lookup[2]
				py += lookup[3]

				if px == startX && py == startY {
					break
				}
			}

			if len(p.Points) < pathomit {
				continue
			}
			p.Hole = hole
			if hole {
				assignHoleParent(paths, p, width, height)
			}
			paths = append(paths, p)
		}
	}

	return paths, nil
}

// assignHoleParent records hole's parent path index: the non-hole path
// whose bounding box strictly contains hole's and is itself the smallest
// such box among candidates. Scanning is scoped to the paths accepted so
// far in this same color layer; holes never parent across layers.
func assignHoleParent(paths []*Path, hole *Path, width, height int) {
	best := sentinelBBox(width, height)
	parentIdx := -1
	for i, parent := range paths {
		if parent.Hole {
			continue
		}
		if parent.BBox.Includes(hole.BBox) && best.Includes(parent.BBox) {
			parentIdx = i
			best = parent.BBox
		}
	}
	hole.Parent = parentIdx
	if parentIdx >= 0 {
		paths[parentIdx].HoleChildren = append(paths[parentIdx].HoleChildren, len(paths))
	}
}
