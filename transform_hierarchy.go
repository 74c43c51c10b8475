package pivotset

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a local TRS transform relative to the parent object (or world
// space for roots).
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Matrix returns T * R * S.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(t.Rotation.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// LocalToParent maps a point from this transform's local space into the parent's
// space: Pos + Rot * (Scale * p).
func (t Transform) LocalToParent(p mgl32.Vec3) mgl32.Vec3 {
	scaled := mgl32.Vec3{
		p.X() * t.Scale.X(),
		p.Y() * t.Scale.Y(),
		p.Z() * t.Scale.Z(),
	}
	return t.Position.Add(t.Rotation.Normalize().Rotate(scaled))
}

// Parent returns the object this one is attached to, or nil for a root.
func (o *Object) Parent() *Object {
	return o.parent
}

func (o *Object) Children() []*Object {
	return o.children
}

// AddChild attaches child under o, detaching it from any previous parent. The
// child's Transform is kept as is and is read as relative to o.
func (o *Object) AddChild(child *Object) {
	if child == nil || child == o {
		return
	}
	for p := o; p != nil; p = p.parent {
		if p == child {
			return
		}
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = o
	o.children = append(o.children, child)
}

// Detach makes o a root.
func (o *Object) Detach() {
	if o.parent != nil {
		o.parent.removeChild(o)
		o.parent = nil
	}
}

func (o *Object) removeChild(child *Object) {
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// WorldMatrix composes the transforms from the root down to o.
func (o *Object) WorldMatrix() mgl32.Mat4 {
	m := o.Transform.Matrix()
	for p := o.parent; p != nil; p = p.parent {
		m = p.Transform.Matrix().Mul4(m)
	}
	return m
}

// WorldPosition is the object's origin in world space.
func (o *Object) WorldPosition() mgl32.Vec3 {
	pos := o.Transform.Position
	for p := o.parent; p != nil; p = p.parent {
		pos = p.Transform.LocalToParent(pos)
	}
	return pos
}
