package lights

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// DefaultsPath is the per-kind light defaults file, relative to the working
// directory. Missing or invalid files fall back to the built-in defaults.
const DefaultsPath = "assets/lights/defaults.yaml"

// Def is the YAML definition of one kind's default properties
// (assets/lights/defaults.yaml). Zero fields keep the built-in value.
type Def struct {
	Kind      string     `yaml:"kind"`
	Intensity float32    `yaml:"intensity,omitempty"`
	Color     string     `yaml:"color,omitempty"`
	Position  [3]float32 `yaml:"position,omitempty"`
	Distance  float32    `yaml:"distance,omitempty"`
	Angle     float32    `yaml:"angle,omitempty"`
	Penumbra  float32    `yaml:"penumbra,omitempty"`
	Decay     float32    `yaml:"decay,omitempty"`
	Width     float32    `yaml:"width,omitempty"`
	Height    float32    `yaml:"height,omitempty"`
}

// builtinDefaults returns the in-code defaults used when the YAML file is
// missing or for kinds it does not cover.
func builtinDefaults() map[Kind]Properties {
	return map[Kind]Properties{
		Ambient: {Intensity: 0.4, Color: "#ffffff"},
		Directional: {
			Intensity: 1, Color: "#ffffff",
			Position: rl.NewVector3(5, 10, 5),
		},
		Point: {
			Intensity: 1, Color: "#ffffff",
			Position: rl.NewVector3(0, 5, 0),
			Distance: 10, Decay: 2,
		},
		Spot: {
			Intensity: 1, Color: "#ffffff",
			Position: rl.NewVector3(0, 5, 0),
			Distance: 12, Angle: 30, Penumbra: 0.1, Decay: 2,
		},
		Area: {
			Intensity: 1, Color: "#ffffff",
			Position: rl.NewVector3(0, 3, 0),
			Width: 2, Height: 1,
		},
	}
}

// LoadDefaults reads per-kind defaults from path, overlaying them on the
// built-in table. A missing file is not an error; an entry with an unknown
// kind or an unparseable color is.
func LoadDefaults(path string) (map[Kind]Properties, error) {
	out := builtinDefaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return out, err
	}
	var defs []Def
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return out, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, d := range defs {
		k, err := ParseKind(d.Kind)
		if err != nil {
			return out, err
		}
		p := out[k]
		if d.Intensity > 0 {
			p.Intensity = d.Intensity
		}
		if d.Color != "" {
			if _, err := parseHexColor(d.Color); err != nil {
				return out, fmt.Errorf("defaults for %s: %w", d.Kind, err)
			}
			p.Color = d.Color
		}
		if d.Position != [3]float32{} {
			p.Position = rl.NewVector3(d.Position[0], d.Position[1], d.Position[2])
		}
		if d.Distance > 0 {
			p.Distance = d.Distance
		}
		if d.Angle > 0 {
			p.Angle = d.Angle
		}
		if d.Penumbra > 0 {
			p.Penumbra = d.Penumbra
		}
		if d.Decay > 0 {
			p.Decay = d.Decay
		}
		if d.Width > 0 {
			p.Width = d.Width
		}
		if d.Height > 0 {
			p.Height = d.Height
		}
		out[k] = p
	}
	return out, nil
}
