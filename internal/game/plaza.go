package game

import "math"

// Plaza painters and the per-frame decoration emitters. Painters run
// once into a cache canvas; emitters are pure functions of (now, index)
// appending point sprites over the blit, so the cached geometry never
// has to know what time it is.

// paintFountain paints the fountain structure into its cache. Local
// origin is the canvas centre.
func paintFountain(c *Canvas, seed uint64) {
	cx := float64(c.W) / 2
	cy := float64(c.H) / 2

	// Basin rim with radial tick joints.
	c.Ring(cx, cy, FountainRadius-14, FountainRadius, Palette.StoneLight)
	c.Ring(cx, cy, FountainRadius-2, FountainRadius, Palette.StoneDark)
	for i := 0; i < 28; i++ {
		a := float64(i) * 2 * math.Pi / 28
		c.ArcRing(cx, cy, FountainRadius-14, FountainRadius-2, a-0.006, a+0.006, Palette.StoneMortar)
	}

	// Water with a depth gradient toward the centre.
	for r := FountainRadius - 14; r > 0; r -= 1.0 {
		t := 1 - r/(FountainRadius-14)
		c.Ring(cx, cy, r-1, r, lerpRGB(Palette.Water, Palette.WaterDeep, t*0.8))
	}

	// Sunken coins.
	cr := NewRand(seed ^ 0xC01)
	for i := 0; i < 14; i++ {
		a := cr.RangeF(0, 2*math.Pi)
		d := cr.RangeF(22, FountainRadius-20)
		c.FillCircle(cx+math.Cos(a)*d, cy+math.Sin(a)*d, 1.6, Palette.Gold.Mul(190))
	}

	// Centre pillar with an upper bowl.
	c.FillCircle(cx, cy, 20, Palette.StoneDark)
	c.FillCircle(cx, cy, 16, Palette.StoneMid)
	c.Ring(cx, cy, 24, 28, Palette.StoneLight)
	c.FillCircle(cx, cy, 9, Palette.StoneLight)
	c.FillCircle(cx-3, cy-3, 3, Palette.StoneLight.Add(24, 24, 20))
}

// paintPlazaStatics paints shrines, stalls, banner poles and bunting
// rigging into a transparent canvas covering the plaza interior.
func paintPlazaStatics(c *Canvas, seed uint64, w *World) {
	ox, oy := PlazaOrigin()

	for i, s := range w.Shrines {
		paintShrine(c, s.X-ox, s.Y-oy, uint64(i)^seed)
	}
	for i, s := range w.Stalls {
		paintPlazaStall(c, seed, s.X-ox, s.Y-oy, i)
	}

	// Banner poles ring with sagging bunting ropes between them. The
	// flags themselves wave, so they are emitted per frame instead.
	poles := BuntingPoles()
	for _, p := range poles {
		px := p[0] - ox
		py := p[1] - oy
		c.FillRect(int(px)-2, int(py)-30, int(px)+2, int(py)+4, Palette.PlankDark)
		c.FillCircle(px, py-31, 3, Palette.Gold)
	}
	for i := range poles {
		a := poles[i]
		b := poles[(i+1)%len(poles)]
		prevX, prevY := a[0]-ox, a[1]-oy-30
		for s := 1; s <= 8; s++ {
			t := float64(s) / 8
			x, y := buntingRopePoint(a, b, t)
			x -= ox
			y -= oy
			c.Line(int(prevX), int(prevY), int(x), int(y), Palette.PlankDark.Add(-10, -10, -8))
			prevX, prevY = x, y
		}
	}
}

func paintShrine(c *Canvas, x, y float64, seed uint64) {
	// Base slab, pillar, carved band.
	c.FillCircle(x, y+6, 20, Palette.StoneDark)
	c.FillCircle(x, y+4, 17, Palette.ShrineStone)
	c.FillRect(int(x)-7, int(y)-34, int(x)+7, int(y)+4, Palette.ShrineStone)
	c.FillRect(int(x)-7, int(y)-34, int(x)-4, int(y)+4, Palette.ShrineStone.Add(-22, -20, -16))
	c.FillRect(int(x)-9, int(y)-40, int(x)+9, int(y)-34, Palette.StoneDark)
	for i := 0; i < 3; i++ {
		gy := int(y) - 28 + i*9
		col := Palette.ShrineGlow.Mul(120)
		if hash2D(seed, i, 0)&1 == 0 {
			col = Palette.StoneMortar
		}
		c.FillRect(int(x)-4, gy, int(x)+4, gy+3, col)
	}
}

func paintPlazaStall(c *Canvas, seed uint64, x, y float64, n int) {
	// Stalls face the fountain; painted like the market ones but
	// smaller, with a cloth-covered counter.
	x0 := int(x) - 34
	y0 := int(y) - 16
	c.FillRect(x0, y0+18, x0+68, y0+40, Palette.Counter)
	c.FillRect(x0, y0+18, x0+68, y0+23, Palette.Canvas)
	for ax := x0 - 4; ax < x0+72; ax++ {
		stripe := ((ax - x0) / 9) & 1
		col := Palette.AwningA
		if n&1 == 1 {
			col = Palette.BuntingB
		}
		if stripe == 1 {
			col = Palette.AwningB
		}
		drop := 0
		if ((ax-x0)+4)%9 < 2 {
			drop = 2
		}
		for ay := y0 - 6; ay < y0+8+drop; ay++ {
			c.Set(ax, ay, col)
		}
	}
	r := NewRand(seed ^ uint64(n)*0x57A11600D)
	for g := 0; g < 4; g++ {
		gx := float64(x0 + 10 + g*16 + r.Range(-2, 2))
		gy := float64(y0 + 28 + r.Range(-2, 2))
		col := Palette.Gold
		if r.Intn(3) == 0 {
			col = Palette.LeafLight
		}
		c.FillCircle(gx, gy, 3.4, col)
	}
}

// paintWallTop paints the battlement ring drawn over players: walkway,
// merlons outside the gate openings, tower platforms and gate piers.
func paintWallTop(c *Canvas, seed uint64, w *World, segs []GateSegment) {
	ox, oy := WallTopOrigin()
	cx := PlazaCX - ox
	cy := PlazaCY - oy

	// Walkway band with stone tint noise.
	half := PlazaWallThickness / 2
	x0 := clamp(int(cx-PlazaWallRadius-half), 0, c.W)
	x1 := clamp(int(cx+PlazaWallRadius+half)+1, 0, c.W)
	y0 := clamp(int(cy-PlazaWallRadius-half), 0, c.H)
	y1 := clamp(int(cy+PlazaWallRadius+half)+1, 0, c.H)
	in2 := (PlazaWallRadius - half) * (PlazaWallRadius - half)
	out2 := (PlazaWallRadius + half) * (PlazaWallRadius + half)
	for y := y0; y < y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - cx
			d2 := dx*dx + dy*dy
			if d2 < in2 || d2 > out2 {
				continue
			}
			a := math.Atan2(dy, dx)
			if a < 0 {
				a += 2 * math.Pi
			}
			if InGate(segs, a) {
				continue
			}
			tint := int(hash2D(seed^0xBA77, x, y)&7) - 3
			col := Palette.WallTop.Add(tint*2, tint*2, tint)
			// Edge courses read as laid stone.
			d := math.Sqrt(d2)
			if d > PlazaWallRadius+half-2 || d < PlazaWallRadius-half+2 {
				col = Palette.StoneDark
			} else if int(d)%9 == 0 {
				col = Palette.StoneMortar
			}
			c.Set(x, y, col)
		}
	}

	// Merlons. Gate trig was solved once into segs; here it is a
	// plain table lookup per tooth.
	for i := 0; i < BattlementCount; i++ {
		a := float64(i) * 2 * math.Pi / BattlementCount
		if InGate(segs, a) {
			continue
		}
		c.ArcRing(cx, cy, PlazaWallRadius+half-1, PlazaWallRadius+half+6, a-0.024, a+0.024, Palette.Battlement)
		c.ArcRing(cx, cy, PlazaWallRadius+half+4, PlazaWallRadius+half+6, a-0.024, a+0.024, Palette.StoneDark)
	}

	// Gate piers cap each opening.
	for _, s := range segs {
		for _, a := range []float64{s.A0, s.A1} {
			px := cx + math.Cos(a)*PlazaWallRadius
			py := cy + math.Sin(a)*PlazaWallRadius
			c.FillCircle(px, py, 11, Palette.StoneDark)
			c.FillCircle(px, py, 8, Palette.StoneMid)
		}
	}

	// Tower platforms with crenellated rims.
	for _, t := range w.Towers {
		tx := t.X - ox
		ty := t.Y - oy
		c.FillCircle(tx, ty, t.PlatformR+4, Palette.StoneDark)
		c.FillCircle(tx, ty, t.PlatformR, Palette.StoneMid)
		c.FillCircle(tx, ty, t.PlatformR-10, Palette.WallTop)
		for i := 0; i < 10; i++ {
			a := float64(i) * 2 * math.Pi / 10
			bx := tx + math.Cos(a)*(t.PlatformR+1)
			by := ty + math.Sin(a)*(t.PlatformR+1)
			c.FillCircle(bx, by, 3, Palette.Battlement)
		}
	}
}

// BuntingPoles returns the world positions of the banner pole bases.
func BuntingPoles() [][2]float64 {
	poles := make([][2]float64, 0, 8)
	for i := 0; i < 8; i++ {
		a := float64(i)*math.Pi/4 + math.Pi/8
		poles = append(poles, [2]float64{
			PlazaCX + math.Cos(a)*335,
			PlazaCY + math.Sin(a)*335,
		})
	}
	return poles
}

// buntingRopePoint samples the sagging rope between two pole tops.
func buntingRopePoint(a, b [2]float64, t float64) (float64, float64) {
	x := a[0] + (b[0]-a[0])*t
	y := a[1] - 30 + (b[1]-a[1])*t
	return x, y + math.Sin(t*math.Pi)*12
}

// FlagSprites appends the waving bunting flags. Pure in (now, index);
// every client draws the same wave.
func FlagSprites(buf []float32, now float64) []float32 {
	poles := BuntingPoles()
	for i := range poles {
		a := poles[i]
		b := poles[(i+1)%len(poles)]
		for k := 0; k < 5; k++ {
			t := 0.15 + float64(k)*0.175
			x, y := buntingRopePoint(a, b, t)
			phase := now*0.004 + float64(i)*1.3 + float64(k)*0.9
			x += math.Sin(phase) * 1.6
			y += 4 + math.Abs(math.Sin(phase*0.7))*2.2
			col := Palette.BuntingA
			if (i+k)&1 == 1 {
				col = Palette.BuntingB
			}
			buf = append(buf,
				float32(x), float32(y), 7,
				float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, 1, 0)
		}
	}
	return buf
}

// FountainJetSprites appends the arcing water droplets.
func FountainJetSprites(buf []float32, now float64) []float32 {
	topY := PlazaCY - 30.0
	for jet := 0; jet < 6; jet++ {
		a := float64(jet) * math.Pi / 3
		for d := 0; d < 7; d++ {
			t := now*0.0006 + float64(d)/7 + float64(jet)*0.131
			t -= math.Floor(t)
			x := PlazaCX + math.Cos(a)*(5+t*30)
			y := topY - math.Sin(t*math.Pi)*26 + t*36
			alpha := 0.25 + 0.65*(1-t)
			buf = append(buf,
				float32(x), float32(y), float32(2.4-t),
				float32(Palette.WaterFoam.R)/255,
				float32(Palette.WaterFoam.G)/255,
				float32(Palette.WaterFoam.B)/255,
				float32(alpha), 0)
		}
	}
	return buf
}

// FountainShimmerSprites appends glow sparkles on the basin surface.
// Positions re-seed per epoch so the glints wander without state.
func FountainShimmerSprites(buf []float32, now float64) []float32 {
	const epochMs = 280.0
	epoch := int(now / epochMs)
	frac := now/epochMs - float64(epoch)
	for i := 0; i < 12; i++ {
		h := hash2D(0x5A11F0, i, epoch)
		a := float64(h&1023) / 1024 * 2 * math.Pi
		d := float64((h>>10)&1023) / 1024 * (FountainRadius - 20)
		ph := frac + float64(i)*0.083
		ph -= math.Floor(ph)
		bright := math.Sin(ph*math.Pi) * 0.45
		buf = append(buf,
			float32(PlazaCX+math.Cos(a)*d), float32(PlazaCY+math.Sin(a)*d), 4,
			float32(bright), float32(bright)*1.1, float32(bright)*1.25, 1, 0)
	}
	return buf
}

// ShrineBeamSprites appends the pulsing light columns over shrines.
// Ready shrines pulse bright; cooling ones barely glimmer.
func ShrineBeamSprites(buf []float32, w *World, readyAt map[string]float64, now float64) []float32 {
	for si, s := range w.Shrines {
		bright := 1.0
		if until, ok := readyAt[s.ID]; ok && now < until {
			bright = 0.18
		}
		for k := 0; k < 7; k++ {
			pulse := 0.26 + 0.14*math.Sin(now*0.003+float64(si)*2.1+float64(k)*0.45)
			b := pulse * bright
			buf = append(buf,
				float32(s.X), float32(s.Y-44-float64(k)*13), float32(24-k*2),
				float32(Palette.ShrineGlow.R)/255*float32(b),
				float32(Palette.ShrineGlow.G)/255*float32(b),
				float32(Palette.ShrineGlow.B)/255*float32(b),
				1, 0)
		}
	}
	return buf
}
