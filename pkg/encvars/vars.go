// Package encvars allocates and indexes the Boolean variables the
// encoder reasons over: one per (tile, footprint dimension) pair, plus a
// fixed-depth stack of terrain-support layer variables per terrain tile.
package encvars

import (
	"fmt"

	"github.com/elyrion/platsat/pkg/cnf"
	"github.com/elyrion/platsat/pkg/geom"
	"github.com/elyrion/platsat/pkg/platform"
	"github.com/elyrion/platsat/pkg/world"
)

// TerrainSupportDistance is K, the terrain-support diffusion depth. It is
// a build-time constant, not a per-run parameter.
const TerrainSupportDistance = 4

// ItemKind discriminates the kinds of variables an EncodingVars tracks.
type ItemKind int

const (
	ItemPlatform ItemKind = iota
	ItemTerrain
	// ItemAux marks a variable allocated after construction for the
	// encoder's own bookkeeping (e.g. a cardinality-encoding auxiliary)
	// rather than one of New's per-tile allocations.
	ItemAux
)

// EncodedItem is the inverse-map entry for one allocated variable: a
// platform-placement var at a tile for a given footprint dimension, a
// terrain-support layer var at a given depth, or an auxiliary var from
// AllocAux (which carries no tile, dims or layer).
type EncodedItem struct {
	Kind  ItemKind
	Tile  geom.Point
	Dims  geom.Dimensions // valid when Kind == ItemPlatform
	Layer int             // valid when Kind == ItemTerrain
}

// EncodingVars is the variable index built once per solver session from a
// Catalog and a World. The per-tile placement and terrain-layer entries
// never change after construction; AllocAux is the one method that
// mutates the index, drawing from the allocator and adding an ItemAux
// entry, so it must not run concurrently with other readers.
type EncodingVars struct {
	catalog platform.Catalog
	dims    geom.Dimensions
	effDims []geom.Dimensions

	dimsVars      map[geom.Point]map[geom.Dimensions]cnf.Var
	terrainLayers map[geom.Point][]cnf.Var
	inverse       map[cnf.Var]EncodedItem

	tileOrder []geom.Point

	alloc *cnf.VarAllocator
}

// New builds the variable table for catalog over w, drawing fresh
// variable ids from alloc. It allocates exactly
// |w| * |S(catalog)| + (#terrain in w) * TerrainSupportDistance
// variables, each with exactly one inverse record.
//
// If alloc is exhausted partway through, the error is propagated
// unchanged and no EncodingVars is returned: there is no partially built
// state for a caller to observe.
func New(catalog platform.Catalog, w *world.World, alloc *cnf.VarAllocator) (*EncodingVars, error) {
	effDims := catalog.EffectiveDims()
	dims := w.Dims()
	tileOrder := dims.IterWithin()

	ev := &EncodingVars{
		catalog:       catalog,
		dims:          dims,
		effDims:       effDims,
		dimsVars:      make(map[geom.Point]map[geom.Dimensions]cnf.Var, len(tileOrder)),
		terrainLayers: make(map[geom.Point][]cnf.Var),
		inverse:       make(map[cnf.Var]EncodedItem),
		tileOrder:     tileOrder,
		alloc:         alloc,
	}

	for _, p := range tileOrder {
		perTile := make(map[geom.Dimensions]cnf.Var, len(effDims))
		for _, d := range effDims {
			v, err := alloc.New()
			if err != nil {
				return nil, fmt.Errorf("encvars: allocating platform var at %v for %v: %w", p, d, err)
			}
			perTile[d] = v
			ev.inverse[v] = EncodedItem{Kind: ItemPlatform, Tile: p, Dims: d}
		}
		ev.dimsVars[p] = perTile

		if w.IsTerrain(p) {
			layers := make([]cnf.Var, TerrainSupportDistance)
			for i := range layers {
				v, err := alloc.New()
				if err != nil {
					return nil, fmt.Errorf("encvars: allocating terrain layer %d var at %v: %w", i, p, err)
				}
				layers[i] = v
				ev.inverse[v] = EncodedItem{Kind: ItemTerrain, Tile: p, Layer: i}
			}
			ev.terrainLayers[p] = layers
		}
	}

	return ev, nil
}

// EffectiveDims returns the catalog's effective footprint dimensions, in
// the stable order variables were allocated in.
func (ev *EncodingVars) EffectiveDims() []geom.Dimensions {
	return append([]geom.Dimensions(nil), ev.effDims...)
}

// Catalog returns the catalog this index was built from.
func (ev *EncodingVars) Catalog() platform.Catalog {
	return ev.catalog
}

// Dims returns the world's dimensions.
func (ev *EncodingVars) Dims() geom.Dimensions {
	return ev.dims
}

// ForDimsAt returns the variable claiming a platform of footprint d
// starts at p. It returns ok=false if p is out of the world or d is not
// an effective footprint dimension of the catalog.
func (ev *EncodingVars) ForDimsAt(p geom.Point, d geom.Dimensions) (cnf.Var, bool) {
	perTile, ok := ev.dimsVars[p]
	if !ok {
		return 0, false
	}
	v, ok := perTile[d]
	return v, ok
}

// IterDimsVars returns every placement variable for footprint d across
// the world, ordered by world tile traversal (row-major).
func (ev *EncodingVars) IterDimsVars(d geom.Dimensions) []cnf.Var {
	vars := make([]cnf.Var, 0, len(ev.tileOrder))
	for _, p := range ev.tileOrder {
		if v, ok := ev.dimsVars[p][d]; ok {
			vars = append(vars, v)
		}
	}
	return vars
}

// TerrainLayerVars returns the K terrain-support layer variables at p, in
// increasing layer order, or ok=false if p has no terrain there.
func (ev *EncodingVars) TerrainLayerVars(p geom.Point) (layers []cnf.Var, ok bool) {
	layers, ok = ev.terrainLayers[p]
	return layers, ok
}

// TerrainTiles returns every tile with allocated terrain-support layer
// vars, in world traversal order.
func (ev *EncodingVars) TerrainTiles() []geom.Point {
	tiles := make([]geom.Point, 0, len(ev.terrainLayers))
	for _, p := range ev.tileOrder {
		if _, ok := ev.terrainLayers[p]; ok {
			tiles = append(tiles, p)
		}
	}
	return tiles
}

// VarToPlatform inverts a placement variable into a Platform whose origin
// is the variable's tile and whose effective dimensions equal its
// encoded footprint. It returns ok=false for terrain-layer vars and for
// variables this index did not allocate.
func (ev *EncodingVars) VarToPlatform(v cnf.Var) (platform.Platform, bool) {
	item, ok := ev.inverse[v]
	if !ok || item.Kind != ItemPlatform {
		return platform.Platform{}, false
	}
	def, rotated, ok := ev.catalog.DefFor(item.Dims)
	if !ok {
		return platform.Platform{}, false
	}
	return platform.NewPlatform(item.Tile, def, rotated), true
}

// AllocAux draws a fresh variable from the same allocator New used,
// keeping encoder-internal auxiliaries (e.g. cardinality-encoding vars)
// in the shared namespace alongside placement and terrain-layer vars. It
// is tracked in the inverse map as ItemAux.
func (ev *EncodingVars) AllocAux() (cnf.Var, error) {
	v, err := ev.alloc.New()
	if err != nil {
		return 0, fmt.Errorf("encvars: allocating auxiliary var: %w", err)
	}
	ev.inverse[v] = EncodedItem{Kind: ItemAux}
	return v, nil
}

// Lookup returns the inverse-map entry for v, if any.
func (ev *EncodingVars) Lookup(v cnf.Var) (EncodedItem, bool) {
	item, ok := ev.inverse[v]
	return item, ok
}

// DebugName renders a human-readable label for a literal:
// "[~]P{w}x{h}(x;y)" for platform vars, "[~]T{layer}(x;y)" for terrain
// layer vars, prefixed with "~" when the literal is negated.
func (ev *EncodingVars) DebugName(lit cnf.Lit) string {
	item, ok := ev.inverse[lit.Var()]
	if !ok {
		return fmt.Sprintf("?%d", lit)
	}
	prefix := ""
	if lit.Negated() {
		prefix = "~"
	}
	switch item.Kind {
	case ItemPlatform:
		return fmt.Sprintf("%sP%dx%d(%d;%d)", prefix, item.Dims.W, item.Dims.H, item.Tile.X, item.Tile.Y)
	case ItemTerrain:
		return fmt.Sprintf("%sT%d(%d;%d)", prefix, item.Layer, item.Tile.X, item.Tile.Y)
	case ItemAux:
		return fmt.Sprintf("%sAux%d", prefix, lit.Var())
	default:
		return fmt.Sprintf("?%d", lit)
	}
}
