package pivotset

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// ExtremePolicy decides what MIN_<axis> and MAX_<axis> resolve to.
type ExtremePolicy int

const (
	// ExtremeOnAxis starts from the box center and moves only the named axis
	// to its extreme.
	ExtremeOnAxis ExtremePolicy = iota
	// ExtremeCorner returns the whole first corner reaching the extreme.
	ExtremeCorner
)

// AxisCenterPolicy decides what CENTER_<axis> resolves to.
type AxisCenterPolicy int

const (
	// AxisCenterKeepOrigin keeps the current origin and centers only the named axis.
	AxisCenterKeepOrigin AxisCenterPolicy = iota
	// AxisCenterBoxCenter returns the box center.
	AxisCenterBoxCenter
)

// Calculator computes pivot points. The zero value uses ExtremeOnAxis and
// AxisCenterKeepOrigin.
type Calculator struct {
	Extremes    ExtremePolicy
	AxisCenters AxisCenterPolicy
}

// ComputePivot resolves loc against corners with the default policies, taking
// the box center as the current origin.
func ComputePivot(corners Corners, loc Location) mgl32.Vec3 {
	return Calculator{}.Compute(corners, loc, corners.Center())
}

// Compute resolves loc against corners. origin is the object's current origin in
// the same space as corners; only AxisCenterKeepOrigin reads it.
func (c Calculator) Compute(corners Corners, loc Location, origin mgl32.Vec3) mgl32.Vec3 {
	center := corners.Center()

	switch loc {
	case Center:
		return center
	case MinX, MinY, MinZ, MaxX, MaxY, MaxZ:
		return c.extreme(corners, loc, center)
	case CenterX, CenterY, CenterZ:
		if c.AxisCenters == AxisCenterBoxCenter {
			return center
		}
		axis := loc.axis()
		p := origin
		p[axis] = center[axis]
		return p
	case CenterXYBottom:
		lo, _ := corners.Extent(2)
		return mgl32.Vec3{center.X(), center.Y(), lo}
	case CenterXYTop:
		_, hi := corners.Extent(2)
		return mgl32.Vec3{center.X(), center.Y(), hi}
	case CenterXZFront:
		_, hi := corners.Extent(1)
		return mgl32.Vec3{center.X(), hi, center.Z()}
	case CenterXZBack:
		lo, _ := corners.Extent(1)
		return mgl32.Vec3{center.X(), lo, center.Z()}
	case CenterYZLeft:
		_, hi := corners.Extent(0)
		return mgl32.Vec3{hi, center.Y(), center.Z()}
	case CenterYZRight:
		lo, _ := corners.Extent(0)
		return mgl32.Vec3{lo, center.Y(), center.Z()}
	}
	return center
}

func (c Calculator) extreme(corners Corners, loc Location, center mgl32.Vec3) mgl32.Vec3 {
	axis := loc.axis()
	isMin := loc == MinX || loc == MinY || loc == MinZ

	if c.Extremes == ExtremeCorner {
		if isMin {
			return corners.minCorner(axis)
		}
		return corners.maxCorner(axis)
	}

	lo, hi := corners.Extent(axis)
	p := center
	if isMin {
		p[axis] = lo
	} else {
		p[axis] = hi
	}
	return p
}

func (p ExtremePolicy) String() string {
	switch p {
	case ExtremeOnAxis:
		return "axis"
	case ExtremeCorner:
		return "corner"
	}
	return fmt.Sprintf("ExtremePolicy(%d)", int(p))
}

func ParseExtremePolicy(s string) (ExtremePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "axis", "":
		return ExtremeOnAxis, nil
	case "corner":
		return ExtremeCorner, nil
	}
	return 0, fmt.Errorf("pivotset: unknown extreme policy %q (want axis or corner)", s)
}

func (p AxisCenterPolicy) String() string {
	switch p {
	case AxisCenterKeepOrigin:
		return "origin"
	case AxisCenterBoxCenter:
		return "box"
	}
	return fmt.Sprintf("AxisCenterPolicy(%d)", int(p))
}

func ParseAxisCenterPolicy(s string) (AxisCenterPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "origin", "":
		return AxisCenterKeepOrigin, nil
	case "box":
		return AxisCenterBoxCenter, nil
	}
	return 0, fmt.Errorf("pivotset: unknown axis center policy %q (want origin or box)", s)
}

func (p ExtremePolicy) MarshalYAML() (any, error) { return p.String(), nil }

func (p *ExtremePolicy) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseExtremePolicy(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*p = parsed
	return nil
}

func (p AxisCenterPolicy) MarshalYAML() (any, error) { return p.String(), nil }

func (p *AxisCenterPolicy) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseAxisCenterPolicy(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*p = parsed
	return nil
}
