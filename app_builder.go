package pivotset

import (
	"reflect"
)

type AppBuilder struct {
	app     *App
	modules []Module
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{app: &App{
		resources: make(map[reflect.Type]any),
	}}
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)

	return b
}

func (b *AppBuilder) Build() *App {
	app := b.app

	for _, module := range b.modules {
		module.Install(app)
	}
	return app
}

// PivotModule installs the calculator used by App.SetPivot.
type PivotModule struct {
	Extremes    ExtremePolicy
	AxisCenters AxisCenterPolicy
}

func (m PivotModule) Install(app *App) {
	app.addResources(&Calculator{
		Extremes:    m.Extremes,
		AxisCenters: m.AxisCenters,
	})
}
