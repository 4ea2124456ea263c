package raster

import "testing"

func TestLayeringStepSquare(t *testing.T) {
	const w, h = 4, 4
	pixels := []byte{
		0, 0, 0, 0,
		0, 1, 1, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
	}

	layer := LayeringStep(pixels, w, h, 1)

	ttable := []struct {
		row, col, want int
	}{
		{0, 0, 0},  // top row zero-filled
		{1, 0, 0},  // left column zero-filled
		{1, 1, 4},  // NW=0 NE=0 SE=1 SW=0 -> outer seed
		{1, 2, 12}, // NW=0 NE=0 SE=1 SW=1
		{2, 2, 15}, // fully interior
		{3, 3, 1},  // NW=1 NE=0 SE=0 SW=0
	}
	for _, tt := range ttable {
		if got := layer[tt.row*w+tt.col]; got != tt.want {
			t.Errorf("layer[%d][%d] = %d, want %d", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestLayeringStepInteriorAndExteriorCodes(t *testing.T) {
	const w, h = 3, 3
	pixels := []byte{
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	}
	layer := LayeringStep(pixels, w, h, 1)
	if got := layer[2*w+2]; got != 15 {
		t.Errorf("fully interior code = %d, want 15", got)
	}

	pixels2 := []byte{
		0, 0, 0,
		0, 0, 0,
		0, 0, 0,
	}
	layer2 := LayeringStep(pixels2, w, h, 1)
	if got := layer2[2*w+2]; got != 0 {
		t.Errorf("fully exterior code = %d, want 0", got)
	}
}
