package normalize

import (
	"maps"
	"slices"

	"github.com/katalvlaran/graphprep/graphview"
	"github.com/katalvlaran/graphprep/index"
)

// Normalize returns the fixed point of "largest connected component, then
// prune small classes" applied to g, with class ids compressed afterwards.
// g itself is not modified. Running Normalize on its own output returns an
// identical graph.
//
// Surviving classes are renumbered 0..k-1 in ascending order of their
// previous ids, so the result does not depend on map iteration order.
// Vertices without a label (index.Undefined) are not a class: they are
// never pruned and stay in the result while they belong to the largest
// component.
//
// Complexity: O(I·(N·D + E)), I = number of iterations (I ≤ N + 1).
func Normalize(g *graphview.Graph, opts ...Option) (*graphview.Graph, *Report, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, o.err
	}

	log := o.Logger.With("component", "normalize")
	rep := &Report{InputVertices: g.NumVertices()}

	if o.MakeSymmetric {
		g = g.MakeSymmetric()
	}

	n := g.NumVertices()
	log.Info("normalizing graph", "vertices", n, "min_class_count", o.MinClassCount)
	for n > 0 {
		rep.Iterations++
		o.Recorder.Iteration()

		lcc, _, err := g.LargestConnectedComponent()
		if err != nil {
			return nil, nil, err
		}
		o.Recorder.Removed("lcc", n-lcc.NumVertices())
		log.Debug("selected largest connected component", "vertices", lcc.NumVertices())

		keep, pruned := pruneMask(lcc, o.MinClassCount)
		for _, p := range pruned {
			log.Info("class is underrepresented, removing it",
				"class", p.name, "id", p.id, "count", p.count, "min_class_count", o.MinClassCount)
			rep.PrunedClasses = append(rep.PrunedClasses, p.name)
		}
		o.Recorder.Pruned(len(pruned))

		g, err = lcc.SelectByMask(keep)
		if err != nil {
			return nil, nil, err
		}
		o.Recorder.Removed("class", lcc.NumVertices()-g.NumVertices())
		log.Debug("removed underrepresented classes", "vertices", g.NumVertices())

		if g.NumVertices() == n {
			break // fixed point
		}
		n = g.NumVertices()
	}

	out, _, err := g.CompressLabels()
	if err != nil {
		return nil, nil, err
	}
	rep.OutputVertices = out.NumVertices()
	o.Recorder.Vertices("normalized", out.NumVertices())
	log.Info("normalized graph", "vertices", out.NumVertices(), "edges", out.NumEdges(),
		"classes", out.Classes().Len(), "iterations", rep.Iterations)

	return out, rep, nil
}

type prunedClass struct {
	name  string
	id    int
	count int
}

// pruneMask keeps every vertex whose class has at least minCount members.
// Undefined labels are never pruned. Classes are examined in ascending id
// order.
func pruneMask(g *graphview.Graph, minCount float64) (graphview.Mask, []prunedClass) {
	keep := graphview.NewMask(g.NumVertices(), true)
	if minCount <= 0 {
		return keep, nil
	}

	counts := g.ClassCounts()
	drop := make(map[int]bool)
	var pruned []prunedClass
	for _, id := range slices.Sorted(maps.Keys(counts)) {
		if float64(counts[id]) >= minCount {
			continue
		}
		drop[id] = true
		name, err := g.Classes().Name(id)
		if err != nil {
			name = "?"
		}
		pruned = append(pruned, prunedClass{name: name, id: id, count: counts[id]})
	}
	if len(drop) == 0 {
		return keep, nil
	}
	for pos := range keep {
		if l := g.Label(pos); l != index.Undefined && drop[l] {
			keep[pos] = false
		}
	}
	return keep, pruned
}
