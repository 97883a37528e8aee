package subgraph

import (
	"github.com/katalvlaran/graphprep/graphview"
)

// Option configures SelectByLabels.
type Option func(*Options)

// Options holds the parameters of SelectByLabels.
type Options struct {
	// Connected restricts the result to its largest connected component.
	Connected bool

	// CompressLabels maps the remaining class ids onto 0..k-1 in ascending order.
	CompressLabels bool
}

// DefaultOptions enables both Connected and CompressLabels.
func DefaultOptions() Options {
	return Options{Connected: true, CompressLabels: true}
}

// WithConnected toggles the largest-connected-component restriction.
func WithConnected(on bool) Option {
	return func(o *Options) { o.Connected = on }
}

// WithCompressLabels toggles label compression.
func WithCompressLabels(on bool) Option {
	return func(o *Options) { o.CompressLabels = on }
}

// SelectByLabels returns the subgraph of g holding only vertices whose class
// id is in labels, and the mask of kept positions in g.
//
// Steps:
//  1. mask = positions with a label in labels
//  2. sub  = g.SelectByMask(mask)
//  3. if Connected: sub = LCC(sub); positions of g outside the LCC are
//     cleared from mask
//  4. if CompressLabels: class ids of sub are compressed
//
// Complexity: O(N·D + E).
func SelectByLabels(g *graphview.Graph, labels []int, opts ...Option) (*graphview.Graph, graphview.Mask, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	mask := graphview.LabelMask(g.Labels(), labels)
	sub, err := g.SelectByMask(mask)
	if err != nil {
		return nil, nil, err
	}

	if o.Connected {
		var lccMask graphview.Mask
		sub, lccMask, err = sub.LargestConnectedComponent()
		if err != nil {
			return nil, nil, err
		}
		if mask, err = mask.Expand(lccMask); err != nil {
			return nil, nil, err
		}
	}

	if o.CompressLabels {
		if sub, _, err = sub.CompressLabels(); err != nil {
			return nil, nil, err
		}
	}

	return sub, mask, nil
}
