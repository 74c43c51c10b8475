package pivotset

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ObjectHandle is what a host exposes for one object whose origin can move.
type ObjectHandle interface {
	// LocalBounds returns the object's bounding box in local space.
	LocalBounds() (Bounds, error)
	// WorldMatrix maps local space to world space.
	WorldMatrix() mgl32.Mat4
	// SetOrigin moves the origin to a world-space point without moving the
	// object's geometry in world space.
	SetOrigin(world mgl32.Vec3) error
}

// WorldCorners returns the object's local bounding box corners in world space.
func WorldCorners(obj ObjectHandle) (Corners, error) {
	b, err := obj.LocalBounds()
	if err != nil {
		return Corners{}, err
	}
	return b.Corners().Transform(obj.WorldMatrix()), nil
}

// Relocation is a computed but not yet applied origin move.
type Relocation struct {
	Location Location
	Corners  Corners    // world-space bounding box corners
	Origin   mgl32.Vec3 // origin before the move
	Pivot    mgl32.Vec3 // new origin
}

// PlanRelocation reads obj's bounds and computes the pivot for loc without
// touching obj.
func PlanRelocation(obj ObjectHandle, loc Location, calc Calculator) (Relocation, error) {
	if obj == nil {
		return Relocation{}, ErrNoObject
	}
	if !loc.Valid() {
		return Relocation{}, fmt.Errorf("%w: %d", ErrInvalidLocation, int(loc))
	}

	corners, err := WorldCorners(obj)
	if err != nil {
		return Relocation{}, fmt.Errorf("pivotset: read bounds: %w", err)
	}
	origin := obj.WorldMatrix().Col(3).Vec3()
	return Relocation{
		Location: loc,
		Corners:  corners,
		Origin:   origin,
		Pivot:    calc.Compute(corners, loc, origin),
	}, nil
}

// Apply moves obj's origin to the planned pivot.
func (r Relocation) Apply(obj ObjectHandle) error {
	if obj == nil {
		return ErrNoObject
	}
	if err := obj.SetOrigin(r.Pivot); err != nil {
		return fmt.Errorf("pivotset: set origin to %v: %w", r.Pivot, err)
	}
	return nil
}

// Relocate computes the pivot for loc and moves obj's origin there. It returns
// the new origin in world space.
func Relocate(obj ObjectHandle, loc Location, calc Calculator) (mgl32.Vec3, error) {
	r, err := PlanRelocation(obj, loc, calc)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	if err := r.Apply(obj); err != nil {
		return mgl32.Vec3{}, err
	}
	return r.Pivot, nil
}
