// Package tilemap implements the layered tile grid: tile metadata lookup,
// visible-window enumeration, runtime-hidden tiles, and map links.
package tilemap

import (
	"fmt"
	"iter"
	"math"

	"github.com/younwookim/tilerpg/internal/domain/gameerr"
	"github.com/younwookim/tilerpg/internal/domain/geom"
)

// Empty marks a transparent cell.
const Empty = -1

// Layer is one grid of tile types drawn from a single tilesheet.
type Layer struct {
	TilesheetID string
	Tiles       []int

	sheet  *Tilesheet
	hidden map[int]struct{}
}

// Sheet returns the tilesheet the layer is bound to.
func (l *Layer) Sheet() *Tilesheet {
	return l.sheet
}

// Hidden reports whether the cell is suppressed at runtime.
func (l *Layer) Hidden(idx int) bool {
	_, ok := l.hidden[idx]
	return ok
}

// HiddenCount returns the number of suppressed cells.
func (l *Layer) HiddenCount() int {
	return len(l.hidden)
}

func (l *Layer) hide(idx int) {
	if l.hidden == nil {
		l.hidden = make(map[int]struct{})
	}
	l.hidden[idx] = struct{}{}
}

// LayerData is the raw content of one layer before padding.
type LayerData struct {
	TilesheetID string
	Tiles       []int
}

// Transition links a tile to another map.
type Transition struct {
	Index int
	MapID string
}

// Teleport links a tile to another cell of the same map.
type Teleport struct {
	Index  int
	Target int
}

// Tile is the resolved metadata of one grid cell.
type Tile struct {
	Index  int
	Col    int
	Row    int
	Box    geom.Rect
	Type   int
	Solid  bool
	Effect Effect
	// Layer is the index of the topmost layer holding a tile here, -1 if none.
	Layer int
}

// Tilemap is a grid of Cols x Rows cells, each layer holding exactly Cols*Rows slots.
type Tilemap struct {
	Name        string
	Cols        int
	Rows        int
	TileSize    int
	Layers      []*Layer
	Transitions []Transition
	Teleports   []Teleport
}

// New builds a tilemap, padding or truncating every layer to Cols*Rows cells.
// Each layer's tilesheet must be present in sheets.
func New(name string, cols, rows, tileSize int, layers []LayerData, sheets map[string]*Tilesheet) (*Tilemap, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("map %q has dimensions %dx%d: %w", name, cols, rows, gameerr.ErrMapIntegrity)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("map %q has tile size %d: %w", name, tileSize, gameerr.ErrMapIntegrity)
	}

	m := &Tilemap{
		Name:     name,
		Cols:     cols,
		Rows:     rows,
		TileSize: tileSize,
		Layers:   make([]*Layer, 0, len(layers)),
	}

	n := cols * rows
	for i, data := range layers {
		sheet, ok := sheets[data.TilesheetID]
		if !ok || sheet == nil {
			return nil, fmt.Errorf("map %q layer %d uses unknown tilesheet %q: %w",
				name, i, data.TilesheetID, gameerr.ErrConfiguration)
		}

		tiles := make([]int, n)
		for j := range tiles {
			tiles[j] = Empty
			if j < len(data.Tiles) && data.Tiles[j] >= 0 {
				tiles[j] = data.Tiles[j]
			}
		}

		m.Layers = append(m.Layers, &Layer{
			TilesheetID: data.TilesheetID,
			Tiles:       tiles,
			sheet:       sheet,
		})
	}

	return m, nil
}

// Dimensions returns the grid size in cells.
func (m *Tilemap) Dimensions() geom.Vector {
	return geom.Vector{X: float64(m.Cols), Y: float64(m.Rows)}
}

// Resolution returns the map size in world pixels.
func (m *Tilemap) Resolution() geom.Vector {
	return m.Dimensions().Scale(float64(m.TileSize))
}

// Index returns the cell index of (col, row), or -1 when out of range.
func (m *Tilemap) Index(col, row int) int {
	if col < 0 || col >= m.Cols || row < 0 || row >= m.Rows {
		return -1
	}
	return row*m.Cols + col
}

// CellOrigin returns the world position of the cell's top-left corner.
func (m *Tilemap) CellOrigin(idx int) geom.Vector {
	ts := float64(m.TileSize)
	return geom.Vector{X: float64(idx%m.Cols) * ts, Y: float64(idx/m.Cols) * ts}
}

func (m *Tilemap) cellBox(idx int) geom.Rect {
	ts := float64(m.TileSize)
	return geom.NewRect(m.CellOrigin(idx), geom.Vector{X: ts, Y: ts})
}

// window returns the half-open cell range intersecting a world-space rect.
func (m *Tilemap) window(view geom.Rect) (c0, r0, c1, r1 int) {
	ts := float64(m.TileSize)
	c0 = clamp(int(math.Floor(view.Left()/ts)), 0, m.Cols)
	r0 = clamp(int(math.Floor(view.Top()/ts)), 0, m.Rows)
	c1 = clamp(int(math.Ceil(view.Right()/ts)), 0, m.Cols)
	r1 = clamp(int(math.Ceil(view.Bottom()/ts)), 0, m.Rows)
	return c0, r0, c1, r1
}

func (m *Tilemap) tile(layer, idx, t int) Tile {
	sheet := m.Layers[layer].sheet
	return Tile{
		Index:  idx,
		Col:    idx % m.Cols,
		Row:    idx / m.Cols,
		Box:    m.cellBox(idx),
		Type:   t,
		Solid:  sheet.Solid(t),
		Effect: sheet.Effect(t),
		Layer:  layer,
	}
}

// ViewTiles lazily yields every non-empty, non-hidden tile inside view,
// bottom layer first. Each call walks the grid afresh.
func (m *Tilemap) ViewTiles(view geom.Rect) iter.Seq[Tile] {
	c0, r0, c1, r1 := m.window(view)
	return func(yield func(Tile) bool) {
		for li, layer := range m.Layers {
			for r := r0; r < r1; r++ {
				for c := c0; c < c1; c++ {
					idx := r*m.Cols + c
					t := layer.Tiles[idx]
					if t == Empty || layer.Hidden(idx) {
						continue
					}
					if !yield(m.tile(li, idx, t)) {
						return
					}
				}
			}
		}
	}
}

// ViewTileSet collapses ViewTiles by cell index; the topmost layer wins.
func (m *Tilemap) ViewTileSet(view geom.Rect) map[int]Tile {
	set := make(map[int]Tile)
	for tile := range m.ViewTiles(view) {
		set[tile.Index] = tile
	}
	return set
}

// SolidBoxes returns the world boxes of solid visible cells in row-major order.
func (m *Tilemap) SolidBoxes(view geom.Rect) []geom.Rect {
	set := m.ViewTileSet(view)
	c0, r0, c1, r1 := m.window(view)

	boxes := make([]geom.Rect, 0, len(set))
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			if tile, ok := set[r*m.Cols+c]; ok && tile.Solid {
				boxes = append(boxes, tile.Box)
			}
		}
	}
	return boxes
}

// TileAtWorldPos resolves the cell under pos. Layers are scanned top to
// bottom: solidity is the union of all layers, the effect and owning layer
// come from the topmost layer that sets them. Hidden cells still count.
// The bool is false when pos lies outside the map.
func (m *Tilemap) TileAtWorldPos(pos geom.Vector) (Tile, bool) {
	ts := float64(m.TileSize)
	idx := m.Index(int(math.Floor(pos.X/ts)), int(math.Floor(pos.Y/ts)))
	if idx < 0 {
		return Tile{Index: -1, Type: Empty, Layer: -1}, false
	}

	tile := Tile{
		Index: idx,
		Col:   idx % m.Cols,
		Row:   idx / m.Cols,
		Box:   m.cellBox(idx),
		Type:  Empty,
		Layer: -1,
	}
	for li := len(m.Layers) - 1; li >= 0; li-- {
		layer := m.Layers[li]
		t := layer.Tiles[idx]
		if t == Empty {
			continue
		}
		if tile.Layer < 0 {
			tile.Layer = li
			tile.Type = t
		}
		if layer.sheet.Solid(t) {
			tile.Solid = true
		}
		if tile.Effect == EffectNone {
			tile.Effect = layer.sheet.Effect(t)
		}
	}
	return tile, true
}

// HideEffect suppresses every visible tile whose own type carries effect and
// returns how many cells were hidden.
func (m *Tilemap) HideEffect(view geom.Rect, effect Effect) int {
	c0, r0, c1, r1 := m.window(view)
	hidden := 0
	for _, layer := range m.Layers {
		for r := r0; r < r1; r++ {
			for c := c0; c < c1; c++ {
				idx := r*m.Cols + c
				t := layer.Tiles[idx]
				if t == Empty || layer.sheet.Effect(t) != effect {
					continue
				}
				layer.hide(idx)
				hidden++
			}
		}
	}
	return hidden
}

// ClearHidden restores every suppressed tile on every layer.
func (m *Tilemap) ClearHidden() {
	for _, layer := range m.Layers {
		layer.hidden = nil
	}
}

// TransitionAt returns the map link on cell idx.
func (m *Tilemap) TransitionAt(idx int) (Transition, bool) {
	for _, tr := range m.Transitions {
		if tr.Index == idx {
			return tr, true
		}
	}
	return Transition{}, false
}

// TransitionTo returns the first transition leading to mapID.
func (m *Tilemap) TransitionTo(mapID string) (Transition, bool) {
	for _, tr := range m.Transitions {
		if tr.MapID == mapID {
			return tr, true
		}
	}
	return Transition{}, false
}

// TeleportAt returns the teleport link on cell idx. Links pointing outside
// the grid are ignored.
func (m *Tilemap) TeleportAt(idx int) (Teleport, bool) {
	for _, tp := range m.Teleports {
		if tp.Index == idx && tp.Target >= 0 && tp.Target < m.Cols*m.Rows {
			return tp, true
		}
	}
	return Teleport{}, false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
