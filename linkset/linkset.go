// Package linkset reads sets of links from YAML or JSON documents.
package linkset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tdewolff/linkpath"
	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when the document holds no links.
var ErrEmpty = errors.New("no links")

// Coord is a point written as a sequence [x, y] or a mapping {x: .., y: ..}.
type Coord linkpath.Point

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Coord) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		var xy []float64
		if err := n.Decode(&xy); err != nil {
			return err
		} else if len(xy) != 2 {
			return fmt.Errorf("line %d: point must have two coordinates, got %d", n.Line, len(xy))
		}
		c.X, c.Y = xy[0], xy[1]
	case yaml.MappingNode:
		var xy struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
		}
		if err := n.Decode(&xy); err != nil {
			return err
		}
		c.X, c.Y = xy.X, xy.Y
	default:
		return fmt.Errorf("line %d: point must be a sequence or mapping", n.Line)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Coord) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, f := range []float64{c.X, c.Y} {
		v := &yaml.Node{}
		if err := v.Encode(f); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, v)
	}
	return node, nil
}

// Entry is a link in a set.
type Entry struct {
	ID          string  `yaml:"id,omitempty"`
	Source      Coord   `yaml:"source"`
	Target      Coord   `yaml:"target"`
	Style       string  `yaml:"style,omitempty"` // STRAIGHT, CURVE_SMOOTH or CURVE_FULL
	BreakPoints []Coord `yaml:"breakpoints,omitempty"`
	Width       float64 `yaml:"width,omitempty"`
	Height      float64 `yaml:"height,omitempty"`
}

// Link returns the link described by the entry. Unknown styles are straight links.
func (e Entry) Link() linkpath.Link {
	var breakPoints []linkpath.Point
	for _, c := range e.BreakPoints {
		breakPoints = append(breakPoints, linkpath.Point(c))
	}
	return linkpath.Link{
		Source:       linkpath.Point(e.Source),
		Target:       linkpath.Point(e.Target),
		Style:        linkpath.ParseLineStyle(e.Style),
		BreakPoints:  breakPoints,
		TargetWidth:  e.Width,
		TargetHeight: e.Height,
	}
}

// Set is a canvas of Width by Height with links.
type Set struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Entries []Entry `yaml:"links"`
}

// Load reads a set from r. Unknown fields are errors.
func Load(r io.Reader) (*Set, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	s := &Set{}
	if err := dec.Decode(s); err == io.EOF {
		return nil, ErrEmpty
	} else if err != nil {
		return nil, fmt.Errorf("linkset: %w", err)
	} else if len(s.Entries) == 0 {
		return nil, ErrEmpty
	}
	return s, nil
}

// LoadFile reads a set from the named file.
func LoadFile(name string) (*Set, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// Save writes the set to w in YAML.
func (s *Set) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// Links returns the links of the set.
func (s *Set) Links() []linkpath.Link {
	links := make([]linkpath.Link, 0, len(s.Entries))
	for _, e := range s.Entries {
		links = append(links, e.Link())
	}
	return links
}

// Validate returns the first error of linkpath.Link.Validate, prefixed by the index or ID of the entry.
func (s *Set) Validate() error {
	for i, e := range s.Entries {
		if err := e.Link().Validate(); err != nil {
			if e.ID != "" {
				return fmt.Errorf("link %s: %w", e.ID, err)
			}
			return fmt.Errorf("link %d: %w", i, err)
		}
	}
	return nil
}
