package game

import (
	"fmt"
	"math"
)

// MapType identifies which map the client is on.
type MapType uint8

const (
	MapCafe MapType = iota
	MapMarket
	MapForest
)

func (m MapType) String() string {
	switch m {
	case MapCafe:
		return "cafe"
	case MapMarket:
		return "market"
	default:
		return "forest"
	}
}

// MapDims returns the world extent of a map in pixels.
func MapDims(m MapType) (float64, float64) {
	switch m {
	case MapCafe:
		return CafeWidth, CafeHeight
	case MapMarket:
		return MarketWidth, MarketHeight
	default:
		return ForestWidth, ForestHeight
	}
}

// Shrine is a fixed plaza monument. Cooldown state is server-sourced.
type Shrine struct {
	ID   string
	X, Y float64
}

// Stall is a merchant stand. Keeper is the id of the dealer agent
// stationed behind it ("" for an unmanned stall); KX,KY is where the
// keeper stands.
type Stall struct {
	ID     string
	X, Y   float64
	Keeper string
	KX, KY float64
}

// Chest is a treasure chest placed in the outer forest.
type Chest struct {
	ID   string
	X, Y float64
}

// Tower is a wall tower with a centurion platform on top.
type Tower struct {
	X, Y      float64
	PlatformR float64
}

// TreeData is immutable tree geometry, computed once per forest build.
// Cut/respawn state lives in the session snapshot, not here.
type TreeData struct {
	ID      int
	X, Y    float64 // trunk base, world ground coords
	Scale   float64
	TrunkW  float64
	TrunkH  float64
	CanopyR float64
}

// World owns the static layout of the current map plus the forest tree
// registry. All geometry derives from the seed; nothing here changes
// during play.
type World struct {
	seed uint64
	Map  MapType
	W, H float64

	Shrines []Shrine
	Stalls  []Stall
	Chests  []Chest
	Towers  []Tower

	trees      []TreeData
	treesBuilt bool
	treeIndex  *QuadNode
}

func NewWorld(seed uint64, m MapType) *World {
	if seed == 0 {
		seed = 1
	}
	w, h := MapDims(m)
	world := &World{seed: seed, Map: m, W: w, H: h}
	switch m {
	case MapCafe:
		world.layoutCafe()
	case MapMarket:
		world.layoutMarket()
	case MapForest:
		world.layoutPlaza()
	}
	return world
}

// layoutPlaza places the fixed plaza furniture: shrines and stalls on
// inner rings, towers on the wall, chests out in the woods.
func (w *World) layoutPlaza() {
	shrineAngles := []float64{math.Pi * 0.30, math.Pi * 1.05, math.Pi * 1.70}
	for i, a := range shrineAngles {
		w.Shrines = append(w.Shrines, Shrine{
			ID: fmt.Sprintf("shrine_%d", i),
			X:  PlazaCX + math.Cos(a)*280,
			Y:  PlazaCY + math.Sin(a)*280,
		})
	}

	stallAngles := []float64{math.Pi * 0.10, math.Pi * 0.65, math.Pi * 1.25, math.Pi * 1.85}
	for i, a := range stallAngles {
		x := PlazaCX + math.Cos(a)*300
		y := PlazaCY + math.Sin(a)*300
		w.Stalls = append(w.Stalls, Stall{
			ID:     fmt.Sprintf("stall_%d", i),
			X:      x,
			Y:      y,
			Keeper: fmt.Sprintf("keeper_%d", i),
			KX:     x,
			KY:     y - 8,
		})
	}

	towerAngles := []float64{math.Pi * 0.25, math.Pi * 0.75, math.Pi * 1.25, math.Pi * 1.75}
	for _, a := range towerAngles {
		w.Towers = append(w.Towers, Tower{
			X:         PlazaCX + math.Cos(a)*PlazaWallRadius,
			Y:         PlazaCY + math.Sin(a)*PlazaWallRadius,
			PlatformR: CenturionPlatformRadius,
		})
	}

	w.Chests = []Chest{
		{ID: "chest_0", X: 420, Y: 380},
		{ID: "chest_1", X: ForestWidth - 360, Y: ForestHeight - 420},
	}
}

// layoutMarket places two stall rows flanking the central aisle. Row
// spacing jitters off the seed; the background painter draws the booths
// at exactly these anchors.
func (w *World) layoutMarket() {
	r := NewRand(w.seed ^ 0x57A11)
	n := 0
	for row := 0; row < 2; row++ {
		x := w.W/2 - 300
		if row == 1 {
			x = w.W/2 + 300
		}
		for i := 0; i < 4; i++ {
			y := 268.0 + float64(i*260+r.Range(-20, 20))
			if y+40 > w.H {
				break
			}
			keeper := ""
			if n < DealerCount {
				keeper = fmt.Sprintf("dealer_%d", n)
			}
			w.Stalls = append(w.Stalls, Stall{
				ID:     fmt.Sprintf("stall_%d", n),
				X:      x,
				Y:      y,
				Keeper: keeper,
				KX:     x,
				KY:     y - 26,
			})
			n++
		}
	}
}

// layoutCafe places the counter as a single manned stall.
func (w *World) layoutCafe() {
	w.Stalls = append(w.Stalls, Stall{
		ID:     "stall_counter",
		X:      w.W / 2,
		Y:      148,
		Keeper: "barista_0",
		KX:     w.W / 2,
		KY:     120,
	})
}

// EnsureTrees lazily computes forest tree geometry via deterministic
// spacing-rejection sampling. Runs once; ResetTrees forces a redo.
func (w *World) EnsureTrees() {
	if w.treesBuilt || w.Map != MapForest {
		return
	}
	r := NewRand(w.seed ^ 0x7EE5EED)
	trees := make([]TreeData, 0, TreeTarget)

	attempts := 0
	for len(trees) < TreeTarget && attempts < TreeTarget*40 {
		attempts++
		x := r.RangeF(TreeMargin, w.W-TreeMargin)
		y := r.RangeF(TreeMargin, w.H-TreeMargin)

		// Keep the plaza and its apron clear.
		dx := x - PlazaCX
		dy := y - PlazaCY
		if dx*dx+dy*dy < (PlazaWallRadius+70)*(PlazaWallRadius+70) {
			continue
		}

		ok := true
		for _, t := range trees {
			ddx := x - t.X
			ddy := y - t.Y
			if ddx*ddx+ddy*ddy < TreeMinSpacing*TreeMinSpacing {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		scale := r.RangeF(0.8, 1.5)
		trees = append(trees, TreeData{
			ID:      len(trees),
			X:       x,
			Y:       y,
			Scale:   scale,
			TrunkW:  10 * scale,
			TrunkH:  34 * scale,
			CanopyR: 30 * scale,
		})
	}

	root := NewQuadNode(RectF{X0: 0, Y0: 0, X1: w.W, Y1: w.H}, 0)
	for _, t := range trees {
		root.Insert(t.ID, t.Bounds())
	}

	w.trees = trees
	w.treeIndex = root
	w.treesBuilt = true
}

// Bounds returns the tree's full draw box (trunk plus canopy).
func (t TreeData) Bounds() RectF {
	top := t.Y - t.TrunkH - t.CanopyR*2
	half := t.CanopyR + 4
	return RectF{X0: t.X - half, Y0: top, X1: t.X + half, Y1: t.Y + 6}
}

// Trees returns the forest tree registry, building it if needed.
func (w *World) Trees() []TreeData {
	w.EnsureTrees()
	return w.trees
}

// VisibleTrees appends the ids of trees whose bounds intersect view.
func (w *World) VisibleTrees(view RectF, out []int) []int {
	w.EnsureTrees()
	out = out[:0]
	if w.treeIndex == nil {
		return out
	}
	w.treeIndex.Query(view, &out)
	return out
}

// ResetTrees drops the tree registry so the next access recomputes it.
func (w *World) ResetTrees() {
	w.trees = nil
	w.treeIndex = nil
	w.treesBuilt = false
}
