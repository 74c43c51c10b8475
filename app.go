package pivotset

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
)

type Module interface {
	Install(app *App)
}

// App carries the resources modules install (logger, calculator) and runs the
// set-pivot operation against objects handed to it.
type App struct {
	resources map[reflect.Type]any
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// Calculator returns the installed calculator, or the default one.
func (app *App) Calculator() Calculator {
	if app != nil {
		if c, ok := app.resources[reflect.TypeOf(Calculator{})].(*Calculator); ok {
			return *c
		}
	}
	return Calculator{}
}

// SetPivot moves obj's origin to loc and returns the new origin in world space.
func (app *App) SetPivot(obj ObjectHandle, loc Location) (mgl32.Vec3, error) {
	log := app.Logger()

	if obj == nil {
		log.Errorf("set pivot %s: no active object", loc)
		return mgl32.Vec3{}, ErrNoObject
	}
	if !loc.Valid() {
		err := fmt.Errorf("%w: %d", ErrInvalidLocation, int(loc))
		log.Errorf("set pivot: %v", err)
		return mgl32.Vec3{}, err
	}

	calc := app.Calculator()
	r, err := PlanRelocation(obj, loc, calc)
	if err == nil {
		log.Debugf("set pivot %s: world corners %v (extremes=%s axis-centers=%s)",
			loc, r.Corners, calc.Extremes, calc.AxisCenters)
		err = r.Apply(obj)
	}
	if err != nil {
		if errors.Is(err, ErrNoGeometry) {
			log.Warnf("set pivot %s: %v", loc, err)
		} else {
			log.Errorf("set pivot %s: %v", loc, err)
		}
		return mgl32.Vec3{}, err
	}

	log.Infof("origin set to %s at (%g, %g, %g)", loc, r.Pivot.X(), r.Pivot.Y(), r.Pivot.Z())
	return r.Pivot, nil
}
