package main

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-studio/internal/classify"
	"scene-studio/internal/commands"
	"scene-studio/internal/lights"
	"scene-studio/internal/scenegraph"
)

// commands builds the terminal command registry. Every command reports
// through the logger so the terminal history shows results inline.
func (a *app) commands() *commands.Registry {
	reg := commands.NewRegistry()

	reg.Register("help", "list commands", nil, func(args []string) error {
		for _, line := range reg.Help() {
			a.log.Info(line)
		}
		return nil
	})

	reg.Register("light", "light add <kind> | set <prop> <value> | toggle | remove | list", nil, a.cmdLight)

	reg.Register("select", "select <name|id> | select none", nil, a.cmdSelect)

	reg.Register("add", "add cube|sphere|plane [name]", nil, func(args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("usage: add cube|sphere|plane [name]")
		}
		return a.addMesh(args[0], restName(args[1:]))
	})

	reg.Register("grid", "grid on|off", nil, func(args []string) error {
		on, err := parseOnOff(args)
		if err != nil {
			return err
		}
		a.view.SetGridVisible(on)
		a.savePrefs()
		return nil
	})

	reg.Register("helpers", "helpers on|off (outliner helper rows)", nil, func(args []string) error {
		on, err := parseOnOff(args)
		if err != nil {
			return err
		}
		a.outliner.ShowHelpers = on
		a.savePrefs()
		return nil
	})

	reg.Register("fps", "fps on|off", nil, func(args []string) error {
		on, err := parseOnOff(args)
		if err != nil {
			return err
		}
		a.dbg.ShowFPS = on
		a.savePrefs()
		return nil
	})

	reg.Register("mem", "mem on|off", nil, func(args []string) error {
		on, err := parseOnOff(args)
		if err != nil {
			return err
		}
		a.dbg.ShowMemAlloc = on
		a.savePrefs()
		return nil
	})

	reg.Register("stats", "stats on|off (node/light counts)", nil, func(args []string) error {
		on, err := parseOnOff(args)
		if err != nil {
			return err
		}
		a.dbg.ShowStats = on
		return nil
	})

	reg.Register("export", "export a clean frame (tooling hidden) to exports/", nil, func(args []string) error {
		path, err := a.exportFrame()
		if err != nil {
			return err
		}
		a.log.Info("exported " + path)
		return nil
	})

	return reg
}

// cmdLight dispatches the light subcommands. set/toggle/remove act on the
// currently selected light.
func (a *app) cmdLight(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: light add|set|toggle|remove|list")
	}
	switch args[0] {
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: light add ambient|directional|point|spot|area")
		}
		kind, err := lights.ParseKind(args[1])
		if err != nil {
			return err
		}
		id, err := a.registry.Create(kind, lights.Properties{})
		if err != nil {
			return err
		}
		a.selectedLight = id
		a.selectedNode = ""
		if l, ok := a.registry.Get(id); ok {
			a.log.Info("added " + l.Name)
		}
		return nil
	case "set":
		if a.selectedLight == "" {
			return fmt.Errorf("no light selected (click one or \"light add\")")
		}
		if len(args) < 3 {
			return fmt.Errorf("usage: light set <property> <value>")
		}
		return a.setLightProperty(a.selectedLight, args[1], args[2:])
	case "toggle":
		if a.selectedLight == "" {
			return fmt.Errorf("no light selected")
		}
		a.log.Info(fmt.Sprintf("visible: %v", a.registry.ToggleVisibility(a.selectedLight)))
		return nil
	case "remove":
		if a.selectedLight == "" {
			return fmt.Errorf("no light selected")
		}
		if !a.registry.Remove(a.selectedLight) {
			return fmt.Errorf("light no longer exists")
		}
		a.selectedLight = ""
		return nil
	case "list":
		all := a.registry.GetAll()
		if len(all) == 0 {
			a.log.Info("no lights")
		}
		for _, l := range all {
			a.log.Info(fmt.Sprintf("%s (%s) intensity %.2f visible %v", l.Name, l.Kind, l.Properties.Intensity, l.Visible))
		}
		return nil
	}
	return fmt.Errorf("unknown light subcommand: %s", args[0])
}

// setLightProperty parses the value for a property path and applies it via
// the registry. Color takes a hex string; position/rotation take three
// numbers; everything else one number.
func (a *app) setLightProperty(id, path string, vals []string) error {
	var value any
	switch path {
	case "color":
		value = vals[0]
	case "position", "rotation":
		if len(vals) < 3 {
			return fmt.Errorf("usage: light set %s <x> <y> <z>", path)
		}
		var v [3]float32
		for i := 0; i < 3; i++ {
			f, err := strconv.ParseFloat(vals[i], 32)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			v[i] = float32(f)
		}
		value = v
	default:
		f, err := strconv.ParseFloat(vals[0], 32)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		value = float32(f)
	}
	if !a.registry.UpdateProperty(id, path, value) {
		return fmt.Errorf("cannot set %q on this light", path)
	}
	return nil
}

// cmdSelect selects an object by node id or by name. Names resolve through
// the outliner view (helpers included), so gizmos and transform rig parts
// cannot be selected this way; a node owned by a managed light selects the
// light itself. "select none" clears the selection.
func (a *app) cmdSelect(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: select <name|id> | select none")
	}
	query := restName(args)
	if query == "none" {
		a.selectedLight = ""
		a.selectedNode = ""
		return nil
	}

	n := a.graph.FindByID(query)
	if n == nil {
		for _, e := range classify.Filter(a.graph.Nodes(), classify.OutlinerQuery(true)) {
			if strings.EqualFold(e.Node.Name, query) {
				n = e.Node
				break
			}
		}
	}
	if n == nil {
		return fmt.Errorf("no object named %q", query)
	}

	a.selectedLight = ""
	a.selectedNode = ""
	if id := n.Attr(scenegraph.AttrLightID); id != "" {
		if l, ok := a.registry.Get(id); ok {
			a.selectedLight = id
			a.log.Info("selected " + l.Name)
			return nil
		}
	}
	a.selectedNode = n.ID
	a.log.Info("selected " + n.Name)
	return nil
}

// addMesh drops a user primitive into the scene at the origin.
func (a *app) addMesh(prim, name string) error {
	var shape scenegraph.Shape
	switch prim {
	case "cube":
		shape = scenegraph.Shape{Kind: scenegraph.ShapeCube, Width: 1, Height: 1, Length: 1}
	case "sphere":
		shape = scenegraph.Shape{Kind: scenegraph.ShapeSphere, Radius: 0.5}
	case "plane":
		shape = scenegraph.Shape{Kind: scenegraph.ShapePlane, Width: 10, Length: 10}
	default:
		return fmt.Errorf("unknown primitive: %s", prim)
	}
	shape.Color = rl.NewColor(128, 128, 128, 255)
	if name == "" {
		name = prim
	}
	n := scenegraph.NewNode(scenegraph.KindMesh, name)
	n.Shapes = []scenegraph.Shape{shape}
	if prim != "plane" {
		n.Position = rl.NewVector3(0, 0.5, 0)
	}
	a.graph.Add(nil, n)
	a.selectedNode = n.ID
	a.selectedLight = ""
	a.log.Info("added " + name)
	return nil
}

func parseOnOff(args []string) (bool, error) {
	if len(args) != 1 || args[0] != "on" && args[0] != "off" {
		return false, fmt.Errorf("expected \"on\" or \"off\"")
	}
	return args[0] == "on", nil
}

func restName(args []string) string {
	if len(args) == 0 {
		return ""
	}
	name := args[0]
	for _, a := range args[1:] {
		name += " " + a
	}
	return name
}
