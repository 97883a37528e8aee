package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/katalvlaran/graphprep/config"
	"github.com/katalvlaran/graphprep/graphview"
	"github.com/katalvlaran/graphprep/index"
	"github.com/katalvlaran/graphprep/integrity"
	"github.com/katalvlaran/graphprep/normalize"
	"github.com/katalvlaran/graphprep/split"
	"github.com/katalvlaran/graphprep/subgraph"
	"golang.org/x/sync/errgroup"
)

// Integrity check names used as keys of Split.Shared.
const (
	PairBaseTrain = "base/train"
	PairBaseVal   = "base/val"
	PairTrainVal  = "train/val"
)

// masks are the base-graph masks of one seed.
type masks struct {
	train, val, test graphview.Mask
}

// Run prepares g according to cfg. g is not modified.
func Run(ctx context.Context, g *graphview.Graph, cfg *config.Config, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if cfg == nil {
		return nil, ErrConfigNil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result{RunID: uuid.New()}
	log := o.Logger.With("run", res.RunID.String())
	o.Recorder.Vertices("input", g.NumVertices())

	base, rep, err := normalize.Normalize(g,
		normalize.WithMakeSymmetric(cfg.Normalize.MakeSymmetric),
		normalize.WithMinClassCount(cfg.Normalize.MinClassCount),
		normalize.WithLogger(log),
		normalize.WithRecorder(o.Recorder),
	)
	if err != nil {
		return nil, err
	}
	res.Base, res.Report = base, rep

	trainIDs, err := resolve(cfg.Train.Labels, base.Classes(), log)
	if err != nil {
		return nil, fmt.Errorf("train labels: %w", err)
	}
	valIDs, err := resolve(cfg.Val.Labels, base.Classes(), log)
	if err != nil {
		return nil, fmt.Errorf("val labels: %w", err)
	}

	perSeed, err := splitMasks(ctx, base, cfg, trainIDs, valIDs)
	if err != nil {
		return nil, err
	}

	res.Splits = make([]Split, len(cfg.Split.Seeds))
	grp, ctx := errgroup.WithContext(ctx)
	for j, seed := range cfg.Split.Seeds {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := buildSplit(base, cfg, perSeed[j], trainIDs, valIDs, o)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			s.Seed = seed
			res.Splits[j] = *s
			log.Info("built split", "seed", seed,
				"train", s.Train.Mask.Count(), "val", s.Val.Mask.Count(), "test", s.Test.Mask.Count())
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	o.Recorder.Split(len(res.Splits))
	return res, nil
}

// resolve turns a selector into known class ids. Names absent from the
// normalized graph are logged and skipped.
func resolve(sel subgraph.LabelSelector, li index.LabelIndex, log *slog.Logger) ([]int, error) {
	ids, err := sel.Resolve(li)
	if err != nil {
		return nil, err
	}
	known := make([]int, 0, len(ids))
	for _, id := range ids {
		if id == index.Undefined {
			continue
		}
		known = append(known, id)
	}
	if len(known) < len(ids) {
		log.Warn("labels not present after normalization were skipped", "selector", sel.String())
	}
	slices.Sort(known)
	return slices.Compact(known), nil
}

// splitMasks computes train/val/test masks on base for every seed.
func splitMasks(ctx context.Context, base *graphview.Graph, cfg *config.Config, trainIDs, valIDs []int) ([]masks, error) {
	strategy, err := cfg.Strategy()
	if err != nil {
		return nil, err
	}
	labels := base.Labels()
	labeled := graphview.LabelMask(labels, base.Classes().Values())
	out := make([]masks, len(cfg.Split.Seeds))

	switch strategy {
	case split.Stratified:
		sets, err := split.StratifiedSplit(ctx, labels, cfg.Split.Seeds, cfg.Split.Sizes)
		if err != nil {
			return nil, err
		}
		trainSel := graphview.LabelMask(labels, trainIDs)
		valSel := graphview.LabelMask(labels, valIDs)
		for j := range out {
			if out[j].train, err = sets[0][j].And(trainSel); err != nil {
				return nil, err
			}
			if out[j].val, err = sets[1][j].And(valSel); err != nil {
				return nil, err
			}
			if out[j].test, err = sets[2][j].And(labeled); err != nil {
				return nil, err
			}
		}
	case split.Uniform:
		for j, seed := range cfg.Split.Seeds {
			rng := split.NewRNG(seed)
			train, err := split.SampleUniformly(labels, trainIDs, cfg.Split.TrainPerClass, labeled, rng)
			if err != nil {
				return nil, fmt.Errorf("seed %d train: %w", seed, err)
			}
			rest, err := labeled.And(train.Not())
			if err != nil {
				return nil, err
			}
			val, err := split.SampleUniformly(labels, valIDs, cfg.Split.ValPerClass, rest, rng)
			if err != nil {
				return nil, fmt.Errorf("seed %d val: %w", seed, err)
			}
			test, err := rest.And(val.Not())
			if err != nil {
				return nil, err
			}
			out[j] = masks{train: train, val: val, test: test}
		}
	}
	return out, nil
}

// buildSplit derives the three views of one seed and checks them.
func buildSplit(base *graphview.Graph, cfg *config.Config, m masks, trainIDs, valIDs []int, o Options) (*Split, error) {
	train, err := labelView(base, m.train, trainIDs, cfg.Train.RemoveOther)
	if err != nil {
		return nil, fmt.Errorf("train view: %w", err)
	}
	target := train.Graph.Classes()

	val, err := labelView(base, m.val, valIDs, cfg.Val.RemoveOther)
	if err != nil {
		return nil, fmt.Errorf("val view: %w", err)
	}
	if val.Graph, err = val.Graph.AlignLabelsTo(target); err != nil {
		return nil, fmt.Errorf("val view: %w", err)
	}

	testGraph, err := base.AlignLabelsTo(target)
	if err != nil {
		return nil, fmt.Errorf("test view: %w", err)
	}
	test := View{Graph: testGraph, Mask: m.test.Clone()}

	for stage, v := range map[string]View{"train": train, "val": val, "test": test} {
		o.Recorder.Vertices(stage, v.Graph.NumVertices())
	}

	s := &Split{Train: train, Val: val, Test: test, Shared: make(map[string]int, 3)}
	checks := []struct {
		name          string
		first, second *graphview.Graph
		opts          []integrity.Option
	}{
		{PairBaseTrain, base, train.Graph, nil},
		{PairBaseVal, base, val.Graph, nil},
		{PairTrainVal, train.Graph, val.Graph, []integrity.Option{
			integrity.WithVertexSubset(false), integrity.WithLabelSubset(false),
		}},
	}
	for _, c := range checks {
		opts := append([]integrity.Option{
			integrity.WithTolerance(cfg.Integrity.AbsTol, cfg.Integrity.RelTol),
			integrity.WithRecorder(o.Recorder),
		}, c.opts...)
		n, err := integrity.AssertIntegrity(c.first, c.second, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.name, err)
		}
		if n == 0 {
			return nil, fmt.Errorf("%w: %s: no shared vertices", integrity.ErrIntegrityViolation, c.name)
		}
		s.Shared[c.name] = n
	}
	return s, nil
}

// labelView returns base restricted to ids when removeOther is set, with mask
// carried into the reduced graph. Otherwise it keeps base and limits the mask
// to ids.
func labelView(base *graphview.Graph, mask graphview.Mask, ids []int, removeOther bool) (View, error) {
	if !removeOther {
		m, err := mask.And(graphview.LabelMask(base.Labels(), ids))
		if err != nil {
			return View{}, err
		}
		return View{Graph: base, Mask: m}, nil
	}
	g, sel, err := subgraph.SelectByLabels(base, ids)
	if err != nil {
		return View{}, err
	}
	m, err := mask.Restrict(sel)
	if err != nil {
		return View{}, err
	}
	return View{Graph: g, Mask: m}, nil
}
