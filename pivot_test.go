package pivotset

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func cube10() Corners {
	return Bounds{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{10, 10, 10}}.Corners()
}

func TestComputePivot_Cube(t *testing.T) {
	corners := cube10()

	tests := []struct {
		loc  Location
		want mgl32.Vec3
	}{
		{Center, mgl32.Vec3{5, 5, 5}},
		{MinX, mgl32.Vec3{0, 5, 5}},
		{MaxX, mgl32.Vec3{10, 5, 5}},
		{MinY, mgl32.Vec3{5, 0, 5}},
		{MaxY, mgl32.Vec3{5, 10, 5}},
		{MinZ, mgl32.Vec3{5, 5, 0}},
		{MaxZ, mgl32.Vec3{5, 5, 10}},
		{CenterX, mgl32.Vec3{5, 5, 5}},
		{CenterY, mgl32.Vec3{5, 5, 5}},
		{CenterZ, mgl32.Vec3{5, 5, 5}},
		{CenterXYBottom, mgl32.Vec3{5, 5, 0}},
		{CenterXYTop, mgl32.Vec3{5, 5, 10}},
		{CenterXZFront, mgl32.Vec3{5, 10, 5}},
		{CenterXZBack, mgl32.Vec3{5, 0, 5}},
		{CenterYZLeft, mgl32.Vec3{10, 5, 5}},
		{CenterYZRight, mgl32.Vec3{0, 5, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.loc.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ComputePivot(corners, tt.loc))
		})
	}
}

func TestCalculator_ExtremeCorner(t *testing.T) {
	calc := Calculator{Extremes: ExtremeCorner}
	corners := cube10()
	origin := corners.Center()

	assert.Equal(t, mgl32.Vec3{0, 0, 0}, calc.Compute(corners, MinX, origin))
	assert.Equal(t, mgl32.Vec3{10, 0, 0}, calc.Compute(corners, MaxX, origin))
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, calc.Compute(corners, MinY, origin))
	assert.Equal(t, mgl32.Vec3{0, 10, 10}, calc.Compute(corners, MaxY, origin))
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, calc.Compute(corners, MinZ, origin))
	assert.Equal(t, mgl32.Vec3{0, 0, 10}, calc.Compute(corners, MaxZ, origin))
}

func TestCalculator_ExtremeCornerTieBreak(t *testing.T) {
	// every corner shares x; the first one wins
	corners := Corners{
		{1, 9, 9}, {1, 2, 3}, {1, 4, 5}, {1, 6, 7},
		{1, 0, 0}, {1, 1, 1}, {1, 2, 2}, {1, 3, 3},
	}
	calc := Calculator{Extremes: ExtremeCorner}
	assert.Equal(t, mgl32.Vec3{1, 9, 9}, calc.Compute(corners, MaxX, mgl32.Vec3{}))
	assert.Equal(t, mgl32.Vec3{1, 9, 9}, calc.Compute(corners, MinX, mgl32.Vec3{}))
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, calc.Compute(corners, MinY, mgl32.Vec3{}))
}

func TestCalculator_AxisCenterPolicies(t *testing.T) {
	corners := cube10()
	origin := mgl32.Vec3{-1, -2, -3}

	keep := Calculator{}
	assert.Equal(t, mgl32.Vec3{5, -2, -3}, keep.Compute(corners, CenterX, origin))
	assert.Equal(t, mgl32.Vec3{-1, 5, -3}, keep.Compute(corners, CenterY, origin))
	assert.Equal(t, mgl32.Vec3{-1, -2, 5}, keep.Compute(corners, CenterZ, origin))

	box := Calculator{AxisCenters: AxisCenterBoxCenter}
	for _, loc := range []Location{CenterX, CenterY, CenterZ} {
		assert.Equal(t, mgl32.Vec3{5, 5, 5}, box.Compute(corners, loc, origin), loc.String())
	}
}

func TestComputePivot_Deterministic(t *testing.T) {
	corners := Bounds{Min: mgl32.Vec3{-0.3, 1.7, 2.1}, Max: mgl32.Vec3{4.9, 3.3, 8.25}}.
		Corners().Transform(mgl32.HomogRotate3DY(0.7))
	for _, loc := range Locations() {
		first := ComputePivot(corners, loc)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, ComputePivot(corners, loc), loc.String())
		}
	}
}

func TestComputePivot_CenterIgnoresOrder(t *testing.T) {
	corners := cube10()
	shuffled := Corners{corners[6], corners[1], corners[7], corners[3], corners[0], corners[5], corners[2], corners[4]}
	assert.Equal(t, ComputePivot(corners, Center), ComputePivot(shuffled, Center))
}

func TestComputePivot_FixedCoordinatesMatchCenter(t *testing.T) {
	corners := Bounds{Min: mgl32.Vec3{-2, 1, 3}, Max: mgl32.Vec3{6, 5, 11}}.Corners()
	center := ComputePivot(corners, Center)

	assert.Equal(t, center.X(), ComputePivot(corners, CenterX).X())
	assert.Equal(t, center.Y(), ComputePivot(corners, CenterY).Y())
	assert.Equal(t, center.Z(), ComputePivot(corners, CenterZ).Z())

	for _, loc := range []Location{CenterXYBottom, CenterXYTop} {
		p := ComputePivot(corners, loc)
		assert.Equal(t, center.X(), p.X())
		assert.Equal(t, center.Y(), p.Y())
	}
	for _, loc := range []Location{CenterXZFront, CenterXZBack} {
		p := ComputePivot(corners, loc)
		assert.Equal(t, center.X(), p.X())
		assert.Equal(t, center.Z(), p.Z())
	}
	for _, loc := range []Location{CenterYZLeft, CenterYZRight} {
		p := ComputePivot(corners, loc)
		assert.Equal(t, center.Y(), p.Y())
		assert.Equal(t, center.Z(), p.Z())
	}
}

func TestComputePivot_DegenerateBox(t *testing.T) {
	p := mgl32.Vec3{3, -4, 7}
	corners := Bounds{Min: p, Max: p}.Corners()

	for _, calc := range []Calculator{
		{},
		{Extremes: ExtremeCorner},
		{AxisCenters: AxisCenterBoxCenter},
	} {
		for _, loc := range Locations() {
			assert.Equal(t, p, calc.Compute(corners, loc, p), loc.String())
		}
	}
}

func TestComputePivot_InvalidLocationFallsBackToCenter(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{5, 5, 5}, ComputePivot(cube10(), Location(99)))
}

func TestParsePolicies(t *testing.T) {
	e, err := ParseExtremePolicy("Corner")
	assert.NoError(t, err)
	assert.Equal(t, ExtremeCorner, e)

	a, err := ParseAxisCenterPolicy("box")
	assert.NoError(t, err)
	assert.Equal(t, AxisCenterBoxCenter, a)

	_, err = ParseExtremePolicy("middle")
	assert.Error(t, err)
	_, err = ParseAxisCenterPolicy("world")
	assert.Error(t, err)
}
