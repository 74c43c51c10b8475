package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gekko3d/pivotset"
	"github.com/go-gl/mathgl/mgl32"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("pivotset", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML config file")
	in := fs.String("in", "", "Input mesh (.obj, .gltf, .glb)")
	out := fs.String("out", "", "Write the re-centered mesh to this .obj file")
	location := fs.String("location", "", "Pivot location, e.g. CENTER or CENTER_XY_BOTTOM")
	position := fs.String("position", "0,0,0", "Object position x,y,z")
	rotation := fs.String("rotation", "0,0,0", "Object rotation x,y,z in degrees (XYZ euler)")
	scale := fs.String("scale", "1,1,1", "Object scale x,y,z")
	extremes := fs.String("extremes", "", "MIN/MAX policy: axis or corner")
	axisCenters := fs.String("axis-centers", "", "CENTER_<axis> policy: origin or box")
	debug := fs.Bool("debug", false, "Enable debug logging")
	list := fs.Bool("list", false, "List pivot locations and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		printLocations(stdout)
		return nil
	}

	cfg := pivotset.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = pivotset.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if err := applyFlags(&cfg, *location, *extremes, *axisCenters, *debug); err != nil {
		return err
	}

	if *in == "" {
		return fmt.Errorf("pivotset: -in is required")
	}
	tr, err := parseTransform(*position, *rotation, *scale)
	if err != nil {
		return err
	}

	mesh, err := pivotset.LoadMesh(*in)
	if err != nil {
		return err
	}
	obj := pivotset.NewObject(strings.TrimSuffix(filepath.Base(*in), filepath.Ext(*in)), mesh)
	obj.Transform = tr

	app := pivotset.NewAppBuilder().UseModule(cfg.Modules(stderr, stderr)...).Build()
	pivot, err := app.SetPivot(obj, cfg.Pivot.Location)
	if err != nil {
		return err
	}

	if *out != "" {
		if err := pivotset.SaveOBJ(*out, mesh); err != nil {
			return err
		}
	}
	fmt.Fprintf(stdout, "%g %g %g\n", pivot.X(), pivot.Y(), pivot.Z())
	return nil
}

func applyFlags(cfg *pivotset.Config, location, extremes, axisCenters string, debug bool) error {
	if location != "" {
		loc, err := pivotset.ParseLocation(location)
		if err != nil {
			return err
		}
		cfg.Pivot.Location = loc
	}
	if extremes != "" {
		p, err := pivotset.ParseExtremePolicy(extremes)
		if err != nil {
			return err
		}
		cfg.Pivot.Extremes = p
	}
	if axisCenters != "" {
		p, err := pivotset.ParseAxisCenterPolicy(axisCenters)
		if err != nil {
			return err
		}
		cfg.Pivot.AxisCenters = p
	}
	if debug {
		cfg.Log.Debug = true
	}
	return nil
}

func parseTransform(position, rotation, scale string) (pivotset.Transform, error) {
	tr := pivotset.IdentityTransform()
	pos, err := parseVec3(position)
	if err != nil {
		return tr, fmt.Errorf("pivotset: -position: %w", err)
	}
	rot, err := parseVec3(rotation)
	if err != nil {
		return tr, fmt.Errorf("pivotset: -rotation: %w", err)
	}
	sc, err := parseVec3(scale)
	if err != nil {
		return tr, fmt.Errorf("pivotset: -scale: %w", err)
	}
	tr.Position = pos
	tr.Rotation = mgl32.AnglesToQuat(
		mgl32.DegToRad(rot.X()), mgl32.DegToRad(rot.Y()), mgl32.DegToRad(rot.Z()), mgl32.XYZ)
	tr.Scale = sc
	return tr, nil
}

func parseVec3(s string) (mgl32.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var v mgl32.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return mgl32.Vec3{}, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

func printLocations(w io.Writer) {
	group := pivotset.LocationGroup(-1)
	for _, loc := range pivotset.Locations() {
		if loc.Group() != group {
			group = loc.Group()
			fmt.Fprintf(w, "%s:\n", group)
		}
		fmt.Fprintf(w, "  %-18s %s\n", loc, loc.Description())
	}
}
