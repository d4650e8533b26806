package memtree

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bnema/switchscan/internal/domain/entity"
)

// Spec is the YAML form of a tree snapshot.
//
//	id: desktop
//	role: desktop
//	rect: [0, 0, 1920, 1080]
//	children:
//	  - id: ok
//	    role: button
//	    rect: [10, 10, 80, 20]
type Spec struct {
	ID        string      `yaml:"id"`
	Role      string      `yaml:"role"`
	Name      string      `yaml:"name,omitempty"`
	Rect      []int       `yaml:"rect,omitempty"`
	Verb      string      `yaml:"verb,omitempty"`
	Offscreen bool        `yaml:"offscreen,omitempty"`
	Invisible bool        `yaml:"invisible,omitempty"`
	Focusable bool        `yaml:"focusable,omitempty"`
	Editable  bool        `yaml:"editable,omitempty"`
	Disabled  bool        `yaml:"disabled,omitempty"`
	Focused   bool        `yaml:"focused,omitempty"`
	Value     string      `yaml:"value,omitempty"`
	Selection []int       `yaml:"selection,omitempty"`
	Scroll    *ScrollSpec `yaml:"scroll,omitempty"`
	Children  []Spec      `yaml:"children,omitempty"`
}

// ScrollSpec is the YAML form of a node's scroll state.
type ScrollSpec struct {
	X    int `yaml:"x"`
	XMax int `yaml:"x_max"`
	Y    int `yaml:"y"`
	YMax int `yaml:"y_max"`
}

// Parse decodes a YAML snapshot.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("decode tree snapshot: %w", err)
	}
	if err := spec.validate(map[string]struct{}{}); err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadFile reads and decodes a YAML snapshot from path.
func LoadFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree snapshot: %w", err)
	}
	return Parse(data)
}

func (s *Spec) validate(seen map[string]struct{}) error {
	if s.ID == "" {
		return fmt.Errorf("node with role %q has no id", s.Role)
	}
	if _, dup := seen[s.ID]; dup {
		return fmt.Errorf("duplicate node id %q", s.ID)
	}
	seen[s.ID] = struct{}{}
	if s.Rect != nil && len(s.Rect) != 4 {
		return fmt.Errorf("node %q: rect needs [left, top, width, height]", s.ID)
	}
	if s.Selection != nil && len(s.Selection) != 2 {
		return fmt.Errorf("node %q: selection needs [start, end]", s.ID)
	}
	for i := range s.Children {
		if err := s.Children[i].validate(seen); err != nil {
			return err
		}
	}
	return nil
}

func (h *Host) build(s *Spec, parent *Node) *Node {
	n := &Node{
		host:   h,
		id:     entity.NodeID(s.ID),
		role:   entity.Role(s.Role),
		name:   s.Name,
		verb:   entity.DefaultActionVerb(s.Verb),
		value:  s.Value,
		parent: parent,
		state: entity.NodeState{
			Offscreen: s.Offscreen,
			Invisible: s.Invisible,
			Focusable: s.Focusable,
			Editable:  s.Editable,
			Disabled:  s.Disabled,
			Focused:   s.Focused,
		},
	}
	if len(s.Rect) == 4 {
		n.rect = entity.Rect{Left: s.Rect[0], Top: s.Rect[1], Width: s.Rect[2], Height: s.Rect[3]}
		n.hasRect = true
	}
	if len(s.Selection) == 2 {
		n.selStart, n.selEnd = s.Selection[0], s.Selection[1]
	} else {
		n.selStart, n.selEnd = len(s.Value), len(s.Value)
	}
	if s.Scroll != nil {
		n.scroll = entity.ScrollState{
			Scrollable: true,
			X:          s.Scroll.X,
			XMax:       s.Scroll.XMax,
			Y:          s.Scroll.Y,
			YMax:       s.Scroll.YMax,
		}
	}
	h.nodes[n.id] = n
	if n.state.Focused {
		h.focused = n
	}
	for i := range s.Children {
		n.children = append(n.children, h.build(&s.Children[i], n))
	}
	return n
}
