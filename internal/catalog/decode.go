package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"mvp90terminal/internal/intel"
)

type rawDataset struct {
	Signals    []intel.StartupSignal      `yaml:"signals"`
	Founders   []intel.FounderDetails     `yaml:"founders"`
	Deals      []intel.VCDeal             `yaml:"deals"`
	SavedItems []rawSavedItem             `yaml:"savedItems"`
	Ideas      []intel.RoutedIdea         `yaml:"routing"`
	Digest     *intel.DigestData          `yaml:"digest"`
	Sectors    []intel.SectorMomentum     `yaml:"sectors"`
	TopIdeas   []intel.TopIdea            `yaml:"topIdeas"`
	Sources    []intel.SourceDistribution `yaml:"sources"`
}

type rawSavedItem struct {
	ID          string          `yaml:"id"`
	Type        intel.SavedType `yaml:"type"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	DateAdded   intel.Date      `yaml:"dateAdded"`
	LastUpdate  *intel.Date     `yaml:"lastUpdate"`
	UpdateType  string          `yaml:"updateType"`
	Data        yaml.Node       `yaml:"data"`
}

// overlay holds the sections present in a dataset file.
type overlay struct {
	raw        rawDataset
	savedItems []intel.SavedItem
}

func decodeDataset(data []byte) (*overlay, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var raw rawDataset
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode YAML: %w", err)
	}

	ov := &overlay{raw: raw}
	if raw.SavedItems != nil {
		ov.savedItems = make([]intel.SavedItem, 0, len(raw.SavedItems))
		for i, r := range raw.SavedItems {
			if strings.TrimSpace(r.ID) == "" || strings.TrimSpace(r.Name) == "" {
				return nil, fmt.Errorf("saved item %d: missing id or name", i)
			}
			snap, err := decodeSnapshot(r.Type, &r.Data)
			if err != nil {
				return nil, fmt.Errorf("saved item %s: %w", r.ID, err)
			}
			ov.savedItems = append(ov.savedItems, intel.SavedItem{
				ID:          r.ID,
				Name:        r.Name,
				Description: r.Description,
				DateAdded:   r.DateAdded,
				LastUpdate:  r.LastUpdate,
				UpdateType:  r.UpdateType,
				Data:        snap,
			})
		}
	}

	for i := range ov.raw.Ideas {
		normalizeIdea(&ov.raw.Ideas[i])
	}
	return ov, nil
}

func decodeSnapshot(kind intel.SavedType, node *yaml.Node) (intel.Snapshot, error) {
	if node.Kind == 0 {
		return nil, errors.New("missing data")
	}
	var snap intel.Snapshot
	var err error
	switch kind {
	case intel.SavedSignal:
		var s intel.SignalSnapshot
		err = decodeStrict(node, &s)
		snap = s
	case intel.SavedFounder:
		var s intel.FounderSnapshot
		err = decodeStrict(node, &s)
		snap = s
	case intel.SavedDeal:
		var s intel.DealSnapshot
		err = decodeStrict(node, &s)
		snap = s
	default:
		return nil, fmt.Errorf("unknown saved item type %q", kind)
	}
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// decodeStrict re-encodes node so the known-fields check applies to it too.
func decodeStrict(node *yaml.Node, out any) error {
	raw, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	return decoder.Decode(out)
}

// normalizeIdea fills currentAction when the file leaves it out.
func normalizeIdea(idea *intel.RoutedIdea) {
	if idea.CurrentAction != "" {
		return
	}
	if idea.AnalystOverride != nil {
		idea.CurrentAction = idea.AnalystOverride.NewAction
		return
	}
	idea.CurrentAction = idea.OriginalAction
}

func (ov *overlay) apply(d Dataset) Dataset {
	if ov.raw.Signals != nil {
		d.Signals = ov.raw.Signals
	}
	if ov.raw.Founders != nil {
		d.Founders = ov.raw.Founders
	}
	if ov.raw.Deals != nil {
		d.Deals = ov.raw.Deals
	}
	if ov.savedItems != nil {
		d.SavedItems = ov.savedItems
	}
	if ov.raw.Ideas != nil {
		d.Ideas = ov.raw.Ideas
	}
	if ov.raw.Digest != nil {
		d.Digest = *ov.raw.Digest
	}
	if ov.raw.Sectors != nil {
		d.Sectors = ov.raw.Sectors
	}
	if ov.raw.TopIdeas != nil {
		d.TopIdeas = ov.raw.TopIdeas
	}
	if ov.raw.Sources != nil {
		d.Sources = ov.raw.Sources
	}
	return d
}
