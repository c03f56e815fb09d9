// Package catalog provides the sample datasets every panel starts from.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"mvp90terminal/internal/intel"
)

// Dataset bundles the sample data of every panel.
type Dataset struct {
	Signals    []intel.StartupSignal
	Founders   []intel.FounderDetails
	Deals      []intel.VCDeal
	SavedItems []intel.SavedItem
	Ideas      []intel.RoutedIdea
	Digest     intel.DigestData
	Sectors    []intel.SectorMomentum
	TopIdeas   []intel.TopIdea
	Sources    []intel.SourceDistribution
}

// Clone copies every top-level slice so a session can replace elements
// without touching another session's data. Nested slices are shared; panels
// never write through them.
func (d Dataset) Clone() Dataset {
	return Dataset{
		Signals:    slices.Clone(d.Signals),
		Founders:   slices.Clone(d.Founders),
		Deals:      slices.Clone(d.Deals),
		SavedItems: slices.Clone(d.SavedItems),
		Ideas:      slices.Clone(d.Ideas),
		Digest: intel.DigestData{
			TopIdeas:        slices.Clone(d.Digest.TopIdeas),
			EmergingTrends:  slices.Clone(d.Digest.EmergingTrends),
			SuggestedBuilds: slices.Clone(d.Digest.SuggestedBuilds),
			MarketInsights:  slices.Clone(d.Digest.MarketInsights),
		},
		Sectors:  slices.Clone(d.Sectors),
		TopIdeas: slices.Clone(d.TopIdeas),
		Sources:  slices.Clone(d.Sources),
	}
}

// Source loads a dataset.
type Source interface {
	Name() string
	Load(ctx context.Context) (Dataset, error)
}

// BuiltinSource serves the compiled-in samples.
type BuiltinSource struct{}

// Name returns the source name.
func (BuiltinSource) Name() string { return "builtin" }

// Load returns a fresh copy of the samples.
func (BuiltinSource) Load(ctx context.Context) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}
	return Samples(), nil
}

// FileSource overlays a YAML document on top of a base source. Sections
// missing from the file keep the base data.
type FileSource struct {
	path string
	base Source
}

// NewFileSource returns a FileSource reading path over base. A nil base means
// the built-in samples.
func NewFileSource(path string, base Source) (*FileSource, error) {
	if path == "" {
		return nil, errors.New("catalog: file source requires a path")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if base == nil {
		base = BuiltinSource{}
	}
	return &FileSource{path: path, base: base}, nil
}

// Name returns the file path.
func (s *FileSource) Name() string { return s.path }

// Load reads the file and applies it to the base dataset.
func (s *FileSource) Load(ctx context.Context) (Dataset, error) {
	data, err := s.base.Load(ctx)
	if err != nil {
		return Dataset{}, fmt.Errorf("load %s: %w", s.base.Name(), err)
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset file %s: %w", s.path, err)
	}

	overlay, err := decodeDataset(raw)
	if err != nil {
		return Dataset{}, fmt.Errorf("decode dataset file %s: %w", s.path, err)
	}
	return overlay.apply(data), nil
}

// Open picks the file source when path is set and the built-in samples
// otherwise, then loads it.
func Open(ctx context.Context, path string) (Dataset, error) {
	var src Source = BuiltinSource{}
	if path != "" {
		fs, err := NewFileSource(path, nil)
		if err != nil {
			return Dataset{}, err
		}
		src = fs
	}
	return src.Load(ctx)
}
