package game

import "math"

// Cosmetic particle engine. Pools are bounded per owner and entirely
// local: nothing about particles crosses the network. Spawning is
// probabilistic per equipped item; updating and sprite emission happen
// in one pass per owner per frame.

type Particle struct {
	Kind ParticleKind

	X, Y   float64
	VX, VY float64

	Life    float64 // ms, strictly decreasing
	MaxLife float64
	Born    float64

	Size  float64
	Color RGB
	Glow  bool
	Beam  bool

	// Variant extras.
	Angle  float64
	Radius float64
	Phase  float64
	Set    int
}

type particlePool struct {
	items []Particle
}

// EffectEngine owns every particle pool, keyed by owner id.
type EffectEngine struct {
	r     *Rand
	pools map[string]*particlePool
}

func NewEffectEngine(seed uint64) *EffectEngine {
	return &EffectEngine{
		r:     NewRand(seed ^ 0xEFFEC7),
		pools: make(map[string]*particlePool),
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (e *EffectEngine) pool(ownerID string) *particlePool {
	p, ok := e.pools[ownerID]
	if !ok {
		p = &particlePool{}
		e.pools[ownerID] = p
	}
	return p
}

// RemoveOwner drops an owner's pool (player left, map switched).
func (e *EffectEngine) RemoveOwner(ownerID string) {
	delete(e.pools, ownerID)
}

// Count reports the live particle count for an owner.
func (e *EffectEngine) Count(ownerID string) int {
	if p, ok := e.pools[ownerID]; ok {
		return len(p.items)
	}
	return 0
}

// insert adds a particle, evicting the oldest non-beam first when the
// pool is full so persistent beams survive pressure.
func (e *EffectEngine) insert(p *particlePool, capacity int, np Particle) {
	for len(p.items) >= capacity {
		idx := -1
		for i := range p.items {
			if p.items[i].Beam {
				continue
			}
			if idx == -1 || p.items[i].Born < p.items[idx].Born {
				idx = i
			}
		}
		if idx == -1 {
			// Pool is all beams; give up the oldest one.
			idx = 0
			for i := range p.items {
				if p.items[i].Born < p.items[idx].Born {
					idx = i
				}
			}
		}
		p.items = append(p.items[:idx], p.items[idx+1:]...)
	}
	p.items = append(p.items, np)
}
