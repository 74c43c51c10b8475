package pivotset

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location names one of the bounding-box points an origin can be moved to.
type Location int

const (
	Center Location = iota
	MinX
	MaxX
	MinY
	MaxY
	MinZ
	MaxZ
	CenterX
	CenterY
	CenterZ
	CenterXYBottom
	CenterXYTop
	CenterXZFront
	CenterXZBack
	CenterYZLeft
	CenterYZRight

	locationCount
)

// LocationGroup clusters locations the way the pivot panel lays them out.
type LocationGroup int

const (
	GroupBasic LocationGroup = iota
	GroupAxisExtremes
	GroupAxisCenters
	GroupFaceCenters
)

type locationInfo struct {
	name        string
	label       string
	description string
	group       LocationGroup
}

var locationTable = [locationCount]locationInfo{
	Center:         {"CENTER", "Center", "Set origin to the center of the bounding box", GroupBasic},
	MinX:           {"MIN_X", "Min X", "Set origin to the minimum X of the bounding box", GroupAxisExtremes},
	MaxX:           {"MAX_X", "Max X", "Set origin to the maximum X of the bounding box", GroupAxisExtremes},
	MinY:           {"MIN_Y", "Min Y", "Set origin to the minimum Y of the bounding box", GroupAxisExtremes},
	MaxY:           {"MAX_Y", "Max Y", "Set origin to the maximum Y of the bounding box", GroupAxisExtremes},
	MinZ:           {"MIN_Z", "Min Z", "Set origin to the minimum Z of the bounding box", GroupAxisExtremes},
	MaxZ:           {"MAX_Z", "Max Z", "Set origin to the maximum Z of the bounding box", GroupAxisExtremes},
	CenterX:        {"CENTER_X", "Center X", "Set origin to the center of the X axis only", GroupAxisCenters},
	CenterY:        {"CENTER_Y", "Center Y", "Set origin to the center of the Y axis only", GroupAxisCenters},
	CenterZ:        {"CENTER_Z", "Center Z", "Set origin to the center of the Z axis only", GroupAxisCenters},
	CenterXYBottom: {"CENTER_XY_BOTTOM", "Bottom", "Set origin to the center of the XY plane at the bottom", GroupFaceCenters},
	CenterXYTop:    {"CENTER_XY_TOP", "Top", "Set origin to the center of the XY plane at the top", GroupFaceCenters},
	CenterXZFront:  {"CENTER_XZ_FRONT", "Front", "Set origin to the center of the XZ plane at the front", GroupFaceCenters},
	CenterXZBack:   {"CENTER_XZ_BACK", "Back", "Set origin to the center of the XZ plane at the back", GroupFaceCenters},
	CenterYZLeft:   {"CENTER_YZ_LEFT", "Left", "Set origin to the center of the YZ plane on the left", GroupFaceCenters},
	CenterYZRight:  {"CENTER_YZ_RIGHT", "Right", "Set origin to the center of the YZ plane on the right", GroupFaceCenters},
}

// Locations returns every location in declaration order.
func Locations() []Location {
	out := make([]Location, 0, locationCount)
	for l := Center; l < locationCount; l++ {
		out = append(out, l)
	}
	return out
}

func (l Location) Valid() bool {
	return l >= Center && l < locationCount
}

func (l Location) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Location(%d)", int(l))
	}
	return locationTable[l].name
}

// Label is the short button caption.
func (l Location) Label() string {
	if !l.Valid() {
		return ""
	}
	return locationTable[l].label
}

func (l Location) Description() string {
	if !l.Valid() {
		return ""
	}
	return locationTable[l].description
}

func (l Location) Group() LocationGroup {
	if !l.Valid() {
		return GroupBasic
	}
	return locationTable[l].group
}

func (g LocationGroup) String() string {
	switch g {
	case GroupBasic:
		return "Basic"
	case GroupAxisExtremes:
		return "Axis Extremes"
	case GroupAxisCenters:
		return "Axis Centers"
	case GroupFaceCenters:
		return "Face Centers"
	}
	return fmt.Sprintf("LocationGroup(%d)", int(g))
}

// ParseLocation accepts the upper snake case names ("CENTER_XY_TOP") in any case,
// with dashes allowed in place of underscores.
func ParseLocation(s string) (Location, error) {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	for l := Center; l < locationCount; l++ {
		if locationTable[l].name == key {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLocation, s)
}

func (l Location) MarshalYAML() (any, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLocation, int(l))
	}
	return l.String(), nil
}

func (l *Location) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseLocation(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*l = parsed
	return nil
}

// axis returns the axis index a single-axis location refers to.
func (l Location) axis() int {
	switch l {
	case MinX, MaxX, CenterX:
		return 0
	case MinY, MaxY, CenterY:
		return 1
	case MinZ, MaxZ, CenterZ:
		return 2
	}
	return -1
}
