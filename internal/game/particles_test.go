package game

import (
	"math"
	"testing"
)

func TestParticleLifeAndRemoval(t *testing.T) {
	e := NewEffectEngine(1)
	e.insert(e.pool("p"), 10, Particle{Kind: PKSparkle, Life: 100, MaxLife: 100, Size: 3})

	buf, glow := e.UpdateDraw("p", 40, 0, nil, nil)
	if len(buf) != 8 || len(glow) != 0 {
		t.Fatalf("frame 1: buf=%d glow=%d floats, want 8/0", len(buf), len(glow))
	}
	if e.pool("p").items[0].Life != 60 {
		t.Fatalf("life=%v after one frame, want 60", e.pool("p").items[0].Life)
	}
	e.UpdateDraw("p", 40, 0, nil, nil)
	buf, _ = e.UpdateDraw("p", 40, 0, nil, nil)
	if len(buf) != 0 || e.Count("p") != 0 {
		t.Fatalf("dead particle still around: buf=%d count=%d", len(buf), e.Count("p"))
	}
}

func TestSpawnSkipsNonFinite(t *testing.T) {
	e := NewEffectEngine(1)
	e.Spawn("p", math.NaN(), 0, []string{"torch_stick"}, 0)
	e.Spawn("p", 0, math.Inf(1), []string{"torch_stick"}, 0)
	if e.Count("p") != 0 {
		t.Fatalf("count=%d after non-finite spawns, want 0", e.Count("p"))
	}
}

func TestNonFiniteParticleCulled(t *testing.T) {
	e := NewEffectEngine(1)
	e.insert(e.pool("p"), 10, Particle{Kind: PKSparkle, X: math.NaN(), Life: 500, MaxLife: 500})
	buf, glow := e.UpdateDraw("p", 16, 0, nil, nil)
	if len(buf) != 0 || len(glow) != 0 || e.Count("p") != 0 {
		t.Fatalf("NaN particle survived: buf=%d glow=%d count=%d", len(buf), len(glow), e.Count("p"))
	}
}

// Common gear keeps the pool at its base bound no matter how long the
// emitter runs.
func TestPoolStaysBounded(t *testing.T) {
	e := NewEffectEngine(1)
	equipped := []string{"straw_hat"}
	for i := 0; i < 5000; i++ {
		e.Spawn("p", 100, 100, equipped, float64(i)*16)
		if c := e.Count("p"); c > ParticleBase {
			t.Fatalf("frame %d: count=%d over base capacity %d", i, c, ParticleBase)
		}
	}
	if e.Count("p") != ParticleBase {
		t.Fatalf("count=%d after 5000 frames, want full pool %d", e.Count("p"), ParticleBase)
	}
}

func TestTopTierGearGrowsPool(t *testing.T) {
	e := NewEffectEngine(2)
	equipped := []string{"seraph_wings", "wisp_idol", "torch_stick"}
	capacity := ParticleBase + 2*ParticlePerTier
	for i := 0; i < 8000; i++ {
		e.Spawn("p", 100, 100, equipped, float64(i)*16)
		if c := e.Count("p"); c > capacity {
			t.Fatalf("frame %d: count=%d over capacity %d", i, c, capacity)
		}
	}
	if e.Count("p") <= ParticleBase {
		t.Fatalf("count=%d never grew past the base pool", e.Count("p"))
	}
}

// Eviction takes the oldest non-beam first; beams only yield to other
// beams.
func TestInsertEvictionPrefersNonBeams(t *testing.T) {
	e := NewEffectEngine(1)
	p := e.pool("p")
	for i := 1; i <= 3; i++ {
		e.insert(p, 5, Particle{Beam: true, Born: float64(i), Life: 1, MaxLife: 1})
	}
	for i := 4; i <= 8; i++ {
		e.insert(p, 5, Particle{Born: float64(i), Life: 1, MaxLife: 1})
	}
	if len(p.items) != 5 {
		t.Fatalf("pool size %d, want 5", len(p.items))
	}
	beams := 0
	for _, it := range p.items {
		if it.Beam {
			beams++
		}
	}
	if beams != 3 {
		t.Fatalf("%d beams survived, want all 3", beams)
	}

	for i := 9; i <= 11; i++ {
		e.insert(p, 5, Particle{Beam: true, Born: float64(i), Life: 1, MaxLife: 1})
	}
	if len(p.items) != 5 {
		t.Fatalf("pool size %d after beam flood, want 5", len(p.items))
	}
	for _, it := range p.items {
		if !it.Beam {
			t.Fatal("non-beam survived a beam flood")
		}
		if it.Born == 1 {
			t.Fatal("oldest beam should have been evicted when only beams remained")
		}
	}
}

func TestRemoveOwnerDropsPool(t *testing.T) {
	e := NewEffectEngine(1)
	e.insert(e.pool("p"), 10, Particle{Life: 100, MaxLife: 100})
	e.RemoveOwner("p")
	if e.Count("p") != 0 {
		t.Fatalf("count=%d after removal", e.Count("p"))
	}
}

func TestBeamEmitsStackedStrokes(t *testing.T) {
	pt := &Particle{Kind: PKBeam, Life: 1500, MaxLife: 3000, Size: 12, Color: RGB{255, 250, 210}}
	buf, glow := emitParticle(pt, 0, nil, nil)
	if len(buf) != 0 {
		t.Fatalf("beam wrote %d solid floats, want none", len(buf))
	}
	if len(glow) != 6*8 {
		t.Fatalf("beam wrote %d glow floats, want %d", len(glow), 6*8)
	}
	// Strokes stack upward from the anchor.
	if glow[1] != 0 || glow[9] != -11 {
		t.Fatalf("stroke ys %v,%v, want 0,-11", glow[1], glow[9])
	}
}

func TestWingBeamMirrorsBySet(t *testing.T) {
	left := &Particle{Kind: PKWingBeam, Life: 1000, MaxLife: 2600, Size: 9, Set: 1}
	right := &Particle{Kind: PKWingBeam, Life: 1000, MaxLife: 2600, Size: 9, Set: 0}
	_, gl := emitParticle(left, 0, nil, nil)
	_, gr := emitParticle(right, 0, nil, nil)
	if len(gl) != 5*8 || len(gr) != 5*8 {
		t.Fatalf("wing beams wrote %d/%d glow floats, want %d", len(gl), len(gr), 5*8)
	}
	// Second stroke leans opposite ways.
	if gl[8] != -7 || gr[8] != 7 {
		t.Fatalf("stroke xs %v,%v, want -7,7", gl[8], gr[8])
	}
}

func TestFloorSpanEmitsGroundRing(t *testing.T) {
	pt := &Particle{Kind: PKFloorSpan, Life: 600, MaxLife: 1200, Size: 3, Radius: 34, Color: Palette.Gold, Glow: true}
	buf, glow := emitParticle(pt, 0, nil, nil)
	if len(buf) != 0 {
		t.Fatalf("floor span wrote %d solid floats, want none", len(buf))
	}
	if len(glow) != 18*8 {
		t.Fatalf("floor span wrote %d glow floats, want %d", len(glow), 18*8)
	}
	// Half-life ring radius is half the full span, squashed vertically.
	if glow[0] != 17 {
		t.Fatalf("first ring x=%v, want 17", glow[0])
	}
}

func TestGlowParticleFeedsBothPasses(t *testing.T) {
	pt := &Particle{Kind: PKStar, Life: 500, MaxLife: 1000, Size: 4, Glow: true, Color: RGB{255, 240, 160}}
	buf, glow := emitParticle(pt, 0, nil, nil)
	if len(buf) != 8 || len(glow) != 8 {
		t.Fatalf("buf=%d glow=%d floats, want 8/8", len(buf), len(glow))
	}
	if glow[2] != float32(pt.Size*2) {
		t.Fatalf("glow size %v, want doubled sprite size", glow[2])
	}
}

func TestOrbitParticlePathIsElliptical(t *testing.T) {
	pt := &Particle{Kind: PKOrbit, Life: 2400, MaxLife: 2400, Size: 5, Radius: 26}
	buf, _ := emitParticle(pt, 0, nil, nil)
	if buf[0] != 26 || buf[1] != 0 {
		t.Fatalf("age-zero orbit at (%v,%v), want (26,0)", buf[0], buf[1])
	}
	quarter := &Particle{Kind: PKOrbit, Life: 2400, MaxLife: 2400, Size: 5, Radius: 26, Angle: math.Pi / 2}
	buf, _ = emitParticle(quarter, 0, nil, nil)
	if math.Abs(float64(buf[0])) > 1e-5 || math.Abs(float64(buf[1])-26*0.6) > 1e-5 {
		t.Fatalf("quarter orbit at (%v,%v), want (0,15.6)", buf[0], buf[1])
	}
}
