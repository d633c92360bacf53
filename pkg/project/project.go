package project

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/elyrion/platsat/pkg/encoder"
	"github.com/elyrion/platsat/pkg/geom"
	"github.com/elyrion/platsat/pkg/platform"
	"github.com/elyrion/platsat/pkg/world"
)

// Objective selects what a driver asks a solved project to optimize for,
// when it builds more than one candidate solve; it only names the two
// shapes a PlatformLimits-bearing instance naturally supports, leaving
// the actual search strategy to the driver.
type Objective string

const (
	// ObjectiveNone means: find any satisfying layout, no optimization.
	ObjectiveNone Objective = "none"
	// ObjectiveMinimizeCount prefers layouts with fewer total platforms.
	ObjectiveMinimizeCount Objective = "minimize_count"
	// ObjectiveMinimizeWeight prefers layouts with the lowest weighted sum.
	ObjectiveMinimizeWeight Objective = "minimize_weight"
)

func (o Objective) valid() bool {
	switch o {
	case ObjectiveNone, ObjectiveMinimizeCount, ObjectiveMinimizeWeight, "":
		return true
	default:
		return false
	}
}

// CatalogEntry is one platform definition's on-disk form.
type CatalogEntry struct {
	Width  uint `yaml:"width"`
	Height uint `yaml:"height"`
}

// LimitEntry is one platform definition's per-type cardinality bound and
// weight, keyed by its native (unrotated) dimensions.
type LimitEntry struct {
	Width    uint `yaml:"width"`
	Height   uint `yaml:"height"`
	MaxCount *int `yaml:"maxCount,omitempty"`
	Weight   int  `yaml:"weight,omitempty"`
}

// Project is the full on-disk bundle: a world, the platforms available to
// place on it, optional per-type and global limits, and an objective.
type Project struct {
	World       world.World    `yaml:"world"`
	Catalog     []CatalogEntry `yaml:"catalog"`
	Limits      []LimitEntry   `yaml:"limits,omitempty"`
	WeightLimit *int           `yaml:"weightLimit,omitempty"`
	Objective   Objective      `yaml:"objective,omitempty"`
}

// Validate checks internal consistency: every catalog entry has positive
// dimensions, every limit entry's dimensions name a catalog entry (in
// either orientation), and Objective is one of the recognized values.
func (p *Project) Validate() error {
	if len(p.Catalog) == 0 {
		return fmt.Errorf("project: catalog has no platform definitions")
	}
	known := make(map[geom.Dimensions]bool, len(p.Catalog)*2)
	for i, c := range p.Catalog {
		if c.Width == 0 || c.Height == 0 {
			return fmt.Errorf("project: catalog entry %d has zero dimension (%dx%d)", i, c.Width, c.Height)
		}
		d := geom.NewDimensions(c.Width, c.Height)
		known[d] = true
		known[d.Swap()] = true
	}
	for i, l := range p.Limits {
		d := geom.NewDimensions(l.Width, l.Height)
		if !known[d] {
			return fmt.Errorf("project: limit entry %d (%dx%d) does not match any catalog definition", i, l.Width, l.Height)
		}
	}
	if !p.Objective.valid() {
		return fmt.Errorf("project: unrecognized objective %q", p.Objective)
	}
	return nil
}

// BuildCatalog converts the on-disk catalog entries into a platform.Catalog.
func (p *Project) BuildCatalog() platform.Catalog {
	defs := make([]platform.Def, len(p.Catalog))
	for i, c := range p.Catalog {
		defs[i] = platform.NewDef(c.Width, c.Height)
	}
	return platform.NewCatalog(defs...)
}

// BuildLimits converts the on-disk limit entries into encoder.PlatformLimits,
// or nil if the project declares neither per-type nor global limits.
func (p *Project) BuildLimits() *encoder.PlatformLimits {
	if len(p.Limits) == 0 && p.WeightLimit == nil {
		return nil
	}
	limits := encoder.NewPlatformLimits()
	for _, l := range p.Limits {
		def := platform.NewDef(l.Width, l.Height)
		if l.MaxCount != nil {
			limits.CardLimits[def] = *l.MaxCount
		}
		if l.Weight != 0 {
			limits.Weights[def] = l.Weight
		}
	}
	limits.WeightLimit = p.WeightLimit
	return limits
}

// Weights returns the per-definition weight map declared in Limits, keyed
// by native (unrotated) Def, for use with layout.PlatformWeightSum.
func (p *Project) Weights() map[platform.Def]int {
	weights := make(map[platform.Def]int, len(p.Limits))
	for _, l := range p.Limits {
		if l.Weight != 0 {
			weights[platform.NewDef(l.Width, l.Height)] = l.Weight
		}
	}
	return weights
}

// Load reads and validates a YAML project file at path. ctx is checked
// for cancellation before the read and again before returning, bracketing
// the expensive file-read and parse/validate steps.
func Load(ctx context.Context, path string) (*Project, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("project: reading %s: %w", path, err)
	}

	p, err := LoadFromBytes(data)
	if err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	return p, nil
}

// LoadFromBytes parses and validates a YAML project file already read into
// memory.
func LoadFromBytes(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("project: parsing YAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("project: validation failed: %w", err)
	}
	return &p, nil
}

// Save renders p as YAML and writes it to path.
func (p *Project) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("project: marshaling YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("project: writing %s: %w", path, err)
	}
	return nil
}
