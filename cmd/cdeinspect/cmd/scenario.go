package cmd

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/arl/cde/geom"
)

// Scenario is the YAML-configured input to the check command: a
// bin and a set of items placed in it, ready to be replayed through the
// engine.
type Scenario struct {
	Bin   BinSpec    `yaml:"bin"`
	Items []ItemSpec `yaml:"items"`
}

// BinSpec describes the containment bin as a simple rectangle.
type BinSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ItemSpec describes one item: its outline, as a list of [x, y] pairs, and
// the rigid transform placing it in the bin.
type ItemSpec struct {
	ID       int          `yaml:"id"`
	Vertices [][2]float64 `yaml:"vertices"`
	Angle    float64      `yaml:"angle"`
	TX       float64      `yaml:"tx"`
	TY       float64      `yaml:"ty"`
}

// Polygon returns the item's untransformed outline as a simple polygon.
func (s ItemSpec) Polygon() (*geom.SPolygon, error) {
	points := make([]geom.Point, len(s.Vertices))
	for i, v := range s.Vertices {
		points[i] = geom.NewPoint(v[0], v[1])
	}
	return geom.NewSPolygon(points, nil)
}

// Placement returns the item's placement as a canonical transformation.
func (s ItemSpec) Placement() geom.DTransformation {
	return geom.NewDTransformation(s.Angle, s.TX, s.TY)
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
