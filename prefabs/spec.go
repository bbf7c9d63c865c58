package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LaneKind selects what a lane carries.
type LaneKind string

const (
	LaneRoad  LaneKind = "road"
	LaneRiver LaneKind = "river"
)

// MoverKind selects which mover a lane spawns.
type MoverKind string

const (
	MoverCar    MoverKind = "car"
	MoverTruck  MoverKind = "truck"
	MoverLog    MoverKind = "log"
	MoverTurtle MoverKind = "turtle"
)

type LaneSpec struct {
	Kind      LaneKind  `yaml:"kind"`
	Mover     MoverKind `yaml:"mover"`
	Row       int       `yaml:"row"`
	Speed     float64   `yaml:"speed"`
	Direction int       `yaml:"direction"`
	Length    float64   `yaml:"length"`
	Script    string    `yaml:"script"`
	Interval  int       `yaml:"interval"`
	Prewarm   int       `yaml:"prewarm"`
	Color     YAMLColor `yaml:"color"`
}

type LevelSpec struct {
	Name       string     `yaml:"name"`
	Columns    int        `yaml:"columns"`
	Rows       int        `yaml:"rows"`
	Lives      int        `yaml:"lives"`
	Goals      []int      `yaml:"goals"`
	HopScore   int        `yaml:"hop_score"`
	GoalScore  int        `yaml:"goal_score"`
	LevelBonus int        `yaml:"level_bonus"`
	Visible    int        `yaml:"visible_rows"`
	Grass      YAMLColor  `yaml:"grass"`
	Road       YAMLColor  `yaml:"road"`
	Water      YAMLColor  `yaml:"water"`
	Goal       YAMLColor  `yaml:"goal"`
	GoalFilled YAMLColor  `yaml:"goal_filled"`
	Lanes      []LaneSpec `yaml:"lanes"`
}

// Validate checks the level for values the builders cannot work with.
func (l LevelSpec) Validate() error {
	if l.Columns <= 0 || l.Rows <= 1 {
		return fmt.Errorf("%w: level %q: grid %dx%d", ErrInvalidSpec, l.Name, l.Columns, l.Rows)
	}
	if l.Lives <= 0 {
		return fmt.Errorf("%w: level %q: lives %d", ErrInvalidSpec, l.Name, l.Lives)
	}
	for _, g := range l.Goals {
		if g < 0 || g >= l.Columns {
			return fmt.Errorf("%w: level %q: goal column %d", ErrInvalidSpec, l.Name, g)
		}
	}
	for i, lane := range l.Lanes {
		if lane.Row <= 0 || lane.Row >= l.Rows-1 {
			return fmt.Errorf("%w: level %q: lane %d row %d", ErrInvalidSpec, l.Name, i, lane.Row)
		}
		if lane.Kind != LaneRoad && lane.Kind != LaneRiver {
			return fmt.Errorf("%w: level %q: lane %d kind %q", ErrInvalidSpec, l.Name, i, lane.Kind)
		}
		if lane.Direction != -1 && lane.Direction != 1 {
			return fmt.Errorf("%w: level %q: lane %d direction %d", ErrInvalidSpec, l.Name, i, lane.Direction)
		}
		if lane.Length <= 0 || lane.Speed <= 0 {
			return fmt.Errorf("%w: level %q: lane %d length %.2f speed %.3f", ErrInvalidSpec, l.Name, i, lane.Length, lane.Speed)
		}
	}
	return nil
}

type FrogSpec struct {
	HopFrames   int       `yaml:"hop_frames"`
	HopHeight   float64   `yaml:"hop_height"`
	StartColumn int       `yaml:"start_column"`
	StartRow    int       `yaml:"start_row"`
	Size        float64   `yaml:"size"`
	Color       YAMLColor `yaml:"color"`
}

type TurtleSpec struct {
	SurfaceFrames   int       `yaml:"surface_frames"`
	SinkFrames      int       `yaml:"sink_frames"`
	SubmergedFrames int       `yaml:"submerged_frames"`
	RiseFrames      int       `yaml:"rise_frames"`
	Depth           float64   `yaml:"depth"`
	Divers          bool      `yaml:"divers"`
	Color           YAMLColor `yaml:"color"`
}

type CameraSpec struct {
	Smoothness float64 `yaml:"smoothness"`
	LeadRows   float64 `yaml:"lead_rows"`
}

// Content bundles every spec a level build needs.
type Content struct {
	Level  LevelSpec
	Frog   FrogSpec
	Turtle TurtleSpec
	Camera CameraSpec
}

// LoadContent loads level.yaml, frog.yaml, turtle.yaml and camera.yaml.
func LoadContent(level string) (*Content, error) {
	if level == "" {
		level = "level.yaml"
	}
	lvl, err := LoadSpec[LevelSpec](level)
	if err != nil {
		return nil, err
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	frog, err := LoadSpec[FrogSpec]("frog.yaml")
	if err != nil {
		return nil, err
	}
	turtle, err := LoadSpec[TurtleSpec]("turtle.yaml")
	if err != nil {
		return nil, err
	}
	cam, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &Content{Level: lvl, Frog: frog, Turtle: turtle, Camera: cam}, nil
}

type YAMLColor struct {
	color.Color
}

// UnmarshalYAML accepts #rrggbb, #rrggbbaa or an SVG colour name.
func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns c, or fallback when c was never set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
