package subgraph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/graphprep/index"
	"gopkg.in/yaml.v3"
)

// allKeyword selects every label of an index.
const allKeyword = "all"

// LabelSelector names a set of classes: all of them, or a list of names.
// The zero value selects nothing.
type LabelSelector struct {
	all   bool
	names []string
	ids   []int // deprecated integer addressing, rejected by Resolve
}

// All selects every label of the index it is resolved against.
func All() LabelSelector { return LabelSelector{all: true} }

// Names selects labels by name.
func Names(names ...string) LabelSelector {
	return LabelSelector{names: slices.Clone(names)}
}

// IsAll reports whether s selects every label.
func (s LabelSelector) IsAll() bool { return s.all }

// Resolve turns s into class ids of li. Unknown names resolve to
// index.Undefined, which matches no labeled vertex. Integer addressing fails
// with ErrUnsupported.
func (s LabelSelector) Resolve(li index.LabelIndex) ([]int, error) {
	if s.ids != nil {
		return nil, fmt.Errorf("%w: addressing labels by integer %v is deprecated, use names", ErrUnsupported, s.ids)
	}
	if s.all {
		return li.Values(), nil
	}
	out := make([]int, len(s.names))
	for i, name := range s.names {
		id, err := li.ID(name)
		if err != nil {
			id = index.Undefined
		}
		out[i] = id
	}
	return out, nil
}

// String renders s the way it is written in configuration.
func (s LabelSelector) String() string {
	switch {
	case s.all:
		return allKeyword
	case s.ids != nil:
		return fmt.Sprint(s.ids)
	default:
		return "[" + strings.Join(s.names, ", ") + "]"
	}
}

// UnmarshalYAML accepts the scalar "all" or a sequence of label names. A
// sequence of integers is kept so that Resolve can reject it.
func (s *LabelSelector) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Value != allKeyword {
			return fmt.Errorf("%w: label selector %q, want %q or a list", ErrUnsupported, n.Value, allKeyword)
		}
		*s = All()
		return nil
	case yaml.SequenceNode:
		var sel LabelSelector
		sel.names = []string{}
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("%w: label selector entries must be scalars (line %d)", ErrUnsupported, item.Line)
			}
			if item.ShortTag() == "!!int" {
				var id int
				if err := item.Decode(&id); err != nil {
					return err
				}
				sel.ids = append(sel.ids, id)
				continue
			}
			sel.names = append(sel.names, item.Value)
		}
		*s = sel
		return nil
	default:
		return fmt.Errorf("%w: label selector at line %d", ErrUnsupported, n.Line)
	}
}

// MarshalYAML writes "all" or the list of names.
func (s LabelSelector) MarshalYAML() (any, error) {
	if s.all {
		return allKeyword, nil
	}
	if s.ids != nil {
		return s.ids, nil
	}
	return s.names, nil
}
