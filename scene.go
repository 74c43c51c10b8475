package pivotset

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type ObjectID string

// Object is an in-memory scene object: a transform, an optional mesh in local
// space, and child objects whose transforms are relative to it.
type Object struct {
	ID        ObjectID
	Name      string
	Transform Transform
	Mesh      *Mesh

	parent   *Object
	children []*Object
}

var _ ObjectHandle = (*Object)(nil)

func NewObject(name string, mesh *Mesh) *Object {
	return &Object{
		ID:        ObjectID(uuid.NewString()),
		Name:      name,
		Transform: IdentityTransform(),
		Mesh:      mesh,
	}
}

func (o *Object) String() string {
	if o.Name != "" {
		return o.Name
	}
	return string(o.ID)
}

// LocalBounds returns the bounds of the object's own mesh. Child geometry is not
// included.
func (o *Object) LocalBounds() (Bounds, error) {
	if o.Mesh == nil || len(o.Mesh.Vertices) == 0 {
		return Bounds{}, fmt.Errorf("%w: %s", ErrNoGeometry, o)
	}
	return o.Mesh.Bounds(), nil
}

// SetOrigin moves the origin to the world-space point p. Mesh vertices and child
// positions are shifted the opposite way so nothing moves in world space.
func (o *Object) SetOrigin(p mgl32.Vec3) error {
	world := o.WorldMatrix()
	if mgl32.FloatEqual(world.Det(), 0) {
		return fmt.Errorf("%w: %s", ErrDegenerateTransform, o)
	}
	d := world.Inv().Mul4x1(p.Vec4(1)).Vec3()
	if !finite(d) {
		return fmt.Errorf("%w: %s", ErrDegenerateTransform, o)
	}

	if o.Mesh != nil {
		o.Mesh.Translate(d.Mul(-1))
	}
	for _, c := range o.children {
		c.Transform.Position = c.Transform.Position.Sub(d)
	}
	o.Transform.Position = o.Transform.LocalToParent(d)
	return nil
}

func finite(v mgl32.Vec3) bool {
	for _, f := range v {
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return false
		}
	}
	return true
}
