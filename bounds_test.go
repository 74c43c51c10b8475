package pivotset

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBoundsOf(t *testing.T) {
	b := BoundsOf([]mgl32.Vec3{{1, 2, 3}, {4, 5, 6}, {-1, 0, 2}})

	if b.Min != (mgl32.Vec3{-1, 0, 2}) {
		t.Errorf("Min incorrect: expected (-1, 0, 2), got %v", b.Min)
	}
	if b.Max != (mgl32.Vec3{4, 5, 6}) {
		t.Errorf("Max incorrect: expected (4, 5, 6), got %v", b.Max)
	}
	if b.Center() != (mgl32.Vec3{1.5, 2.5, 4}) {
		t.Errorf("Center incorrect: got %v", b.Center())
	}
	if b.Size() != (mgl32.Vec3{5, 5, 4}) {
		t.Errorf("Size incorrect: got %v", b.Size())
	}
}

func TestBoundsOf_Empty(t *testing.T) {
	if !BoundsOf(nil).IsEmpty() {
		t.Errorf("bounds of no points should be empty")
	}
	if BoundsOf([]mgl32.Vec3{{0, 0, 0}}).IsEmpty() {
		t.Errorf("bounds of a single point should not be empty")
	}
}

func TestBounds_CornersOrder(t *testing.T) {
	c := Bounds{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 2, 3}}.Corners()
	want := Corners{
		{0, 0, 0}, {0, 0, 3}, {0, 2, 3}, {0, 2, 0},
		{1, 0, 0}, {1, 0, 3}, {1, 2, 3}, {1, 2, 0},
	}
	if c != want {
		t.Errorf("corner order incorrect:\n got  %v\n want %v", c, want)
	}
}

func TestCorners_Transform(t *testing.T) {
	c := Bounds{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 1, 1}}.Corners()
	moved := c.Transform(mgl32.Translate3D(10, 0, -5).Mul4(mgl32.Scale3D(2, 2, 2)))

	if moved[0] != (mgl32.Vec3{10, 0, -5}) {
		t.Errorf("corner 0 incorrect: got %v", moved[0])
	}
	if moved[6] != (mgl32.Vec3{12, 2, -3}) {
		t.Errorf("corner 6 incorrect: got %v", moved[6])
	}
	if moved.Center() != (mgl32.Vec3{11, 1, -4}) {
		t.Errorf("center incorrect: got %v", moved.Center())
	}
}

func TestCorners_Extent(t *testing.T) {
	c := Bounds{Min: mgl32.Vec3{-1, 2, -3}, Max: mgl32.Vec3{4, 5, 6}}.Corners()
	for axis, want := range [3][2]float32{{-1, 4}, {2, 5}, {-3, 6}} {
		lo, hi := c.Extent(axis)
		if lo != want[0] || hi != want[1] {
			t.Errorf("axis %d: expected [%v, %v], got [%v, %v]", axis, want[0], want[1], lo, hi)
		}
	}
}
