package raster

// Edge node types ( X: this layer or 1; .: not this layer or 0 )
//
// 12  ..  X.  .X  XX  ..  X.  .X  XX  ..  X.  .X  XX  ..  X.  .X  XX
//
// 48  ..  ..  ..  ..  .X  .X  .X  .X  X.  X.  X.  X.  XX  XX  XX  XX
//     0   1   2   3   4   5   6   7   8   9   10  11  12  13  14  15
//
// pathScanCombinedLookup[code][dir] = {nextCode, nextDir, dx, dy}.
// A {-1,-1,-1,-1} entry can never legally be reached by PathScan: codes 0
// and 15 are interior (no contour starts or passes through them) and the
// walk only ever enters a cell through an edge the table says is walkable.
var pathScanCombinedLookup = [16][4][4]int{
	{{-1, -1, -1, -1}, {-1, -1, -1, -1}, {-1, -1, -1, -1}, {-1, -1, -1, -1}}, // 0 is invalid
	{{0, 1, 0, -1}, {-1, -1, -1, -1}, {-1, -1, -1, -1}, {0, 2, -1, 0}},
	{{-1, -1, -1, -1}, {-1, -1, -1, -1}, {0, 1, 0, -1}, {0, 0, 1, 0}},
	{{0, 0, 1, 0}, {-1, -1, -1, -1}, {0, 2, -1, 0}, {-1, -1, -1, -1}},

	{{-1, -1, -1, -1}, {0, 0, 1, 0}, {0, 3, 0, 1}, {-1, -1, -1, -1}},
	{{13, 3, 0, 1}, {13, 2, -1, 0}, {7, 1, 0, -1}, {7, 0, 1, 0}},
	{{-1, -1, -1, -1}, {0, 1, 0, -1}, {-1, -1, -1, -1}, {0, 3, 0, 1}},
	{{0, 3, 0, 1}, {0, 2, -1, 0}, {-1, -1, -1, -1}, {-1, -1, -1, -1}},

	{{0, 3, 0, 1}, {0, 2, -1, 0}, {-1, -1, -1, -1}, {-1, -1, -1, -1}},
	{{-1, -1, -1, -1}, {0, 1, 0, -1}, {-1, -1, -1, -1}, {0, 3, 0, 1}},
	{{11, 1, 0, -1}, {14, 0, 1, 0}, {14, 3, 0, 1}, {11, 2, -1, 0}},
	{{-1, -1, -1, -1}, {0, 0, 1, 0}, {0, 3, 0, 1}, {-1, -1, -1, -1}},

	{{0, 0, 1, 0}, {-1, -1, -1, -1}, {0, 2, -1, 0}, {-1, -1, -1, -1}},
	{{-1, -1, -1, -1}, {-1, -1, -1, -1}, {0, 1, 0, -1}, {0, 0, 1, 0}},
	{{0, 1, 0, -1}, {-1, -1, -1, -1}, {-1, -1, -1, -1}, {0, 2, -1, 0}},
	{{-1, -1, -1, -1}, {-1, -1, -1, -1}, {-1, -1, -1, -1}, {-1, -1, -1, -1}}, // 15 is invalid
}

// directionLookup[sign(dx)+1][sign(dy)+1] gives the 8-direction code
// between two consecutive internode points.
var directionLookup = [3][3]int{
	{1, 0, 7}, // dx=-1 -> dy=-1 SE, dy=0 E, dy=+1 NE
	{2, 8, 6}, // dx= 0 -> dy=-1 S,  dy=0 center, dy=+1 N
	{3, 4, 5}, // dx=+1 -> dy=-1 SW, dy=0 W, dy=+1 NW
}

// sentinelColor is the reserved color index that both borders the
// bordered pixel buffer and may never appear in valid input.
const sentinelColor = 255

// Contour seed codes: 4 starts an outer contour walk, 11 a hole walk.
const (
	outerSeedCode = 4
	holeSeedCode  = 11
)
