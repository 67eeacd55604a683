package game

import (
	"math"

	"plaza/internal/logger"
)

// cacheEntry pairs a canvas with its build-once guard. builds counts
// paint passes and stays at 1 after the first successful build.
type cacheEntry struct {
	canvas *Canvas
	built  bool
	builds int
}

// GateSegment is an angular range of the wall ring left open for a
// gate, normalized to [0,2pi).
type GateSegment struct {
	A0, A1 float64
}

// Caches owns the tiered render caches: one background per map plus
// singletons for the fountain, the plaza statics, and the wall top.
// Each is painted at most once; content never mutates after build.
// Anything that moves with wall-clock time is layered on top per frame
// by the renderer, never baked in.
type Caches struct {
	seed uint64

	background [3]cacheEntry
	fountain   cacheEntry
	plaza      cacheEntry
	wallTop    cacheEntry

	gateSegs      []GateSegment
	gateSegsBuilt bool

	// GL textures of cleared canvases, freed by the renderer on its
	// next pass. Build code never touches GL directly.
	orphanTex []uint32
}

func NewCaches(seed uint64) *Caches {
	if seed == 0 {
		seed = 1
	}
	return &Caches{seed: seed}
}

// fallbackCanvas stands in when allocation fails: a single flat pixel
// stretched over the target area. The entry is still marked built so
// the engine never retries a failing build.
func fallbackCanvas(col RGB) *Canvas {
	c, err := NewCanvas(1, 1)
	if err != nil {
		// Cannot happen for 1x1; keep the zero canvas non-nil anyway.
		c = &Canvas{W: 1, H: 1, Pix: make([]uint8, 4)}
	}
	c.Fill(col)
	return c
}

// Background returns the built background canvas for the map,
// building it on first access.
func (cs *Caches) Background(w *World) *Canvas {
	e := &cs.background[w.Map]
	if e.built {
		return e.canvas
	}
	c, err := NewCanvas(int(w.W), int(w.H))
	if err != nil {
		logger.Log.WithError(err).WithField("map", w.Map.String()).
			Warn("background cache unavailable, using flat fill")
		e.canvas = fallbackCanvas(Palette.Grass)
		e.built = true
		e.builds++
		return e.canvas
	}
	switch w.Map {
	case MapCafe:
		paintCafe(c, cs.seed)
	case MapMarket:
		paintMarket(c, cs.seed, w)
	default:
		paintForest(c, cs.seed, w, cs.GateSegments())
	}
	e.canvas = c
	e.built = true
	e.builds++
	return c
}

// Fountain returns the fountain structure canvas. Local origin is the
// canvas centre; FountainOrigin gives its world placement.
func (cs *Caches) Fountain() *Canvas {
	if cs.fountain.built {
		return cs.fountain.canvas
	}
	size := int(FountainRadius*2 + 60)
	c, err := NewCanvas(size, size)
	if err != nil {
		logger.Log.WithError(err).Warn("fountain cache unavailable, using flat fill")
		cs.fountain.canvas = fallbackCanvas(Palette.StoneMid)
		cs.fountain.built = true
		cs.fountain.builds++
		return cs.fountain.canvas
	}
	paintFountain(c, cs.seed)
	cs.fountain.canvas = c
	cs.fountain.built = true
	cs.fountain.builds++
	return c
}

// FountainOrigin is the world position of the fountain canvas' top
// left corner.
func FountainOrigin() (float64, float64) {
	half := FountainRadius + 30
	return PlazaCX - half, PlazaCY - half
}

// PlazaStatics returns the canvas holding shrines, stalls and banner
// rigging, transparent outside the painted furniture.
func (cs *Caches) PlazaStatics(w *World) *Canvas {
	if cs.plaza.built {
		return cs.plaza.canvas
	}
	size := int(PlazaWallRadius * 2)
	c, err := NewCanvas(size, size)
	if err != nil {
		logger.Log.WithError(err).Warn("plaza cache unavailable, skipping statics")
		cs.plaza.canvas = fallbackCanvas(RGB{})
		cs.plaza.built = true
		cs.plaza.builds++
		return cs.plaza.canvas
	}
	paintPlazaStatics(c, cs.seed, w)
	cs.plaza.canvas = c
	cs.plaza.built = true
	cs.plaza.builds++
	return c
}

// PlazaOrigin is the world position of the plaza statics canvas' top
// left corner.
func PlazaOrigin() (float64, float64) {
	return PlazaCX - PlazaWallRadius, PlazaCY - PlazaWallRadius
}

// WallTop returns the battlement ring canvas drawn over players.
func (cs *Caches) WallTop(w *World) *Canvas {
	if cs.wallTop.built {
		return cs.wallTop.canvas
	}
	size := int(WallTopHalf() * 2)
	c, err := NewCanvas(size, size)
	if err != nil {
		logger.Log.WithError(err).Warn("wall-top cache unavailable, skipping")
		cs.wallTop.canvas = fallbackCanvas(RGB{})
		cs.wallTop.built = true
		cs.wallTop.builds++
		return cs.wallTop.canvas
	}
	paintWallTop(c, cs.seed, w, cs.GateSegments())
	cs.wallTop.canvas = c
	cs.wallTop.built = true
	cs.wallTop.builds++
	return c
}

// WallTopHalf is the half-extent of the wall-top canvas: the wall ring
// plus tower platforms plus margin.
func WallTopHalf() float64 {
	return PlazaWallRadius + CenturionPlatformRadius + 25
}

// WallTopOrigin is the world position of the wall-top canvas' top left
// corner.
func WallTopOrigin() (float64, float64) {
	half := WallTopHalf()
	return PlazaCX - half, PlazaCY - half
}

// GateSegments computes the angular ranges of the wall openings once.
// Battlement and wall-face painters consult the table instead of
// redoing gate trig per segment.
func (cs *Caches) GateSegments() []GateSegment {
	if cs.gateSegsBuilt {
		return cs.gateSegs
	}
	gates := []struct {
		angle float64
		half  float64
	}{
		{math.Pi / 2, 0.18}, // south, main road
		{math.Pi, 0.15},     // west
		{0, 0.15},           // east
	}
	segs := make([]GateSegment, 0, len(gates))
	for _, g := range gates {
		a0 := math.Mod(g.angle-g.half+2*math.Pi, 2*math.Pi)
		a1 := math.Mod(g.angle+g.half+2*math.Pi, 2*math.Pi)
		segs = append(segs, GateSegment{A0: a0, A1: a1})
	}
	cs.gateSegs = segs
	cs.gateSegsBuilt = true
	return segs
}

// InGate reports whether an angle falls inside any gate opening.
func InGate(segs []GateSegment, a float64) bool {
	for _, s := range segs {
		if angleInRange(a, s.A0, s.A1) {
			return true
		}
	}
	return false
}

// ClearBackground invalidates background caches. With no arguments all
// maps are cleared; otherwise only the named ones. The next draw
// rebuilds lazily.
func (cs *Caches) ClearBackground(maps ...MapType) {
	if len(maps) == 0 {
		maps = []MapType{MapCafe, MapMarket, MapForest}
	}
	for _, m := range maps {
		e := &cs.background[m]
		if e.canvas != nil && e.canvas.Tex != 0 {
			cs.orphanTex = append(cs.orphanTex, e.canvas.Tex)
		}
		*e = cacheEntry{builds: e.builds}
	}
}

// TakeOrphanTextures hands the renderer the GL texture ids of cleared
// canvases and resets the list.
func (cs *Caches) TakeOrphanTextures() []uint32 {
	t := cs.orphanTex
	cs.orphanTex = nil
	return t
}
