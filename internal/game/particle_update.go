package game

import "math"

// UpdateDraw advances an owner's pool one frame and appends sprites to
// the solid and glow buffers. Dead and non-finite particles compact
// away in the same pass.
func (e *EffectEngine) UpdateDraw(ownerID string, dt, now float64, buf, glow []float32) ([]float32, []float32) {
	p, ok := e.pools[ownerID]
	if !ok {
		return buf, glow
	}
	dtN := dt / 16
	kept := p.items[:0]
	for i := range p.items {
		pt := &p.items[i]
		pt.Life -= dt
		if pt.Life <= 0 {
			continue
		}
		if !finite(pt.X) || !finite(pt.Y) || !finite(pt.VX) || !finite(pt.VY) {
			continue
		}
		pt.X += pt.VX * dtN
		pt.Y += pt.VY * dtN
		stepVariant(pt, dtN)
		buf, glow = emitParticle(pt, now, buf, glow)
		kept = append(kept, *pt)
	}
	p.items = kept
	return buf, glow
}

// stepVariant applies per-kind motion on top of the shared integrate.
func stepVariant(pt *Particle, dtN float64) {
	switch pt.Kind {
	case PKFlame, PKEmber, PKSmoke, PKWisp, PKNote, PKHeart, PKRune, PKBubble:
		pt.VY -= 0.012 * dtN // buoyancy
	case PKConfetti:
		pt.VY += 0.05 * dtN
	case PKRaindrop:
		pt.VY += 0.08 * dtN
	case PKLeaf, PKPetal, PKAsh, PKFrost:
		pt.VY += 0.012 * dtN
	}
}

// emitParticle appends the sprite(s) for one particle. Glow sprites
// carry brightness in RGB; the additive pass ignores alpha.
func emitParticle(pt *Particle, now float64, buf, glow []float32) ([]float32, []float32) {
	age := pt.MaxLife - pt.Life
	fadeIn := clampF(age/180, 0, 1)
	fadeOut := clampF(pt.Life/260, 0, 1)
	alpha := fadeIn
	if fadeOut < alpha {
		alpha = fadeOut
	}

	x := pt.X
	y := pt.Y
	size := pt.Size
	col := pt.Color

	switch pt.Kind {
	case PKLeaf, PKPetal:
		x += math.Sin(now*0.003+pt.Phase) * 4
	case PKFirefly:
		x += math.Sin(now*0.002+pt.Phase) * 6
		y += math.Cos(now*0.0017+pt.Phase) * 4
		alpha *= 0.5 + 0.5*math.Sin(now*0.006+pt.Phase)
	case PKStar, PKRune:
		alpha *= 0.6 + 0.4*math.Sin(now*0.008+pt.Phase)
	case PKHalo:
		y += math.Sin(now*0.004+pt.Phase) * 1.5
	case PKOrbit:
		a := pt.Angle + age*0.003
		x = pt.X + math.Cos(a)*pt.Radius
		y = pt.Y + math.Sin(a)*pt.Radius*0.6
	case PKSmoke:
		size = pt.Size * (1 + age*0.0009)
		alpha *= 0.55
	case PKFlame:
		col = lerpRGB(pt.Color, RGB{200, 40, 30}, clampF(age/pt.MaxLife, 0, 1))
		size = pt.Size * (1 - 0.4*age/pt.MaxLife)
	case PKVoid:
		size = pt.Size * (1 - 0.5*age/pt.MaxLife)
	case PKGlint:
		alpha = math.Sqrt(alpha)
	case PKBeam:
		// Column of stacked strokes above the anchor.
		for k := 0; k < 6; k++ {
			b := alpha * (0.5 - float64(k)*0.06)
			glow = append(glow,
				float32(x), float32(y-float64(k)*11),
				float32(size-float64(k)), pm(col.R, b), pm(col.G, b), pm(col.B, b), 1, 0)
		}
		return buf, glow
	case PKWingBeam:
		dir := 1.0
		if pt.Set&1 == 1 {
			dir = -1
		}
		for k := 0; k < 5; k++ {
			b := alpha * (0.42 - float64(k)*0.06)
			glow = append(glow,
				float32(x+dir*float64(k)*7), float32(y-float64(k)*9),
				float32(size-float64(k)), pm(col.R, b), pm(col.G, b), pm(col.B, b), 1, 0)
		}
		return buf, glow
	case PKFloorSpan:
		// Expanding ground ring, anchored to world coordinates.
		r := pt.Radius * clampF(age/pt.MaxLife, 0, 1)
		for k := 0; k < 18; k++ {
			a := float64(k) * 2 * math.Pi / 18
			b := alpha * 0.35
			glow = append(glow,
				float32(x+math.Cos(a)*r), float32(y+math.Sin(a)*r*0.5),
				float32(size), pm(col.R, b), pm(col.G, b), pm(col.B, b), 1, 0)
		}
		return buf, glow
	}

	if pt.Glow {
		b := alpha * 0.5
		glow = append(glow,
			float32(x), float32(y), float32(size*2),
			pm(col.R, b), pm(col.G, b), pm(col.B, b), 1, 0)
	}
	buf = append(buf,
		float32(x), float32(y), float32(size),
		float32(col.R)/255, float32(col.G)/255, float32(col.B)/255,
		float32(alpha), float32(pt.Angle))
	return buf, glow
}

// pm premultiplies a color channel by brightness for the glow pass.
func pm(c uint8, b float64) float32 {
	return float32(c) / 255 * float32(b)
}
