package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/graphprep/dataset"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the name of the manifest written by Write.
const ManifestFile = "manifest.yaml"

// Manifest indexes the files written for a Result.
type Manifest struct {
	RunID         string          `yaml:"run_id"`
	Base          string          `yaml:"base"`
	Vertices      int             `yaml:"vertices"`
	Classes       []string        `yaml:"classes"`
	PrunedClasses []string        `yaml:"pruned_classes,omitempty"`
	Iterations    int             `yaml:"iterations"`
	Splits        []SplitManifest `yaml:"splits"`
}

// SplitManifest lists the view files of one seed.
type SplitManifest struct {
	Seed   int64          `yaml:"seed"`
	Train  string         `yaml:"train"`
	Val    string         `yaml:"val"`
	Test   string         `yaml:"test"`
	Shared map[string]int `yaml:"shared"`
}

// Write stores res under dir: the normalized graph, one directory per seed
// with its three views, and a manifest. Paths in the manifest are relative
// to dir.
func Write(dir string, res *Result) (*Manifest, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	m := &Manifest{
		RunID:      res.RunID.String(),
		Base:       "base.json",
		Vertices:   res.Base.NumVertices(),
		Classes:    res.Base.Classes().Names(),
		Iterations: res.Report.Iterations,
	}
	m.PrunedClasses = res.Report.PrunedClasses
	if err := dataset.Save(filepath.Join(dir, m.Base), res.Base, nil); err != nil {
		return nil, err
	}

	for _, s := range res.Splits {
		sub := fmt.Sprintf("seed-%d", s.Seed)
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("creating split directory: %w", err)
		}
		sm := SplitManifest{
			Seed:   s.Seed,
			Train:  filepath.Join(sub, "train.json"),
			Val:    filepath.Join(sub, "val.json"),
			Test:   filepath.Join(sub, "test.json"),
			Shared: s.Shared,
		}
		for path, v := range map[string]View{sm.Train: s.Train, sm.Val: s.Val, sm.Test: s.Test} {
			if err := dataset.Save(filepath.Join(dir, path), v.Graph, v.Mask); err != nil {
				return nil, err
			}
		}
		m.Splits = append(m.Splits, sm)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), data, 0o644); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}
	return m, nil
}
