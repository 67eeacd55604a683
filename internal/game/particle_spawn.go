package game

import (
	"math"

	"plaza/internal/logger"
)

// Spawn rolls every equipped item's effect once. Velocity radiates
// from the owner's center through the slot offset, which keeps the
// effect visually attached to the cosmetic. Malformed positions from
// a bad network update are skipped whole.
func (e *EffectEngine) Spawn(ownerID string, x, y float64, equipped []string, now float64) {
	if !finite(x) || !finite(y) || !finite(now) {
		logger.Log.WithField("owner", ownerID).Debug("particle spawn skipped: non-finite input")
		return
	}
	p := e.pool(ownerID)
	top := TopTierCount(equipped)
	capacity := ParticleBase + top*ParticlePerTier

	for _, id := range equipped {
		it := ItemByID(id)
		ef := it.Effect
		if e.r.Float64() >= ef.Rate {
			continue
		}
		ox, oy := slotOffset(it.Slot, e.r)
		sx := x + ox
		sy := y + oy
		var vx, vy float64
		if d := math.Hypot(ox, oy); d > 0 && ef.Speed > 0 {
			vx = ox / d * ef.Speed
			vy = oy / d * ef.Speed
		}
		for c := 0; c < ef.Count; c++ {
			e.insert(p, capacity, Particle{
				Kind:    ef.Kind,
				X:       sx + e.r.RangeF(-2, 2),
				Y:       sy + e.r.RangeF(-2, 2),
				VX:      vx,
				VY:      vy,
				Life:    ef.Life,
				MaxLife: ef.Life,
				Born:    now,
				Size:    ef.Size,
				Color:   ef.Color,
				Glow:    ef.Glow,
				Beam:    ef.Beam,
				Angle:   e.r.RangeF(0, 2*math.Pi),
				Radius:  26,
				Phase:   e.r.RangeF(0, 1000),
				Set:     c,
			})
		}
	}

	// Floor span: a ground-anchored ring, rolled once per frame when
	// top-tier gear is worn, outside the per-item loop.
	if top > 0 && e.r.Float64() < FloorSpanChance {
		e.insert(p, capacity, Particle{
			Kind:    PKFloorSpan,
			X:       x,
			Y:       y + PlayerH/2,
			Life:    1200,
			MaxLife: 1200,
			Born:    now,
			Size:    3,
			Color:   Palette.Gold,
			Glow:    true,
			Radius:  34,
		})
	}
}
