package game

import "math"

// Forest map painter. The plaza sits in a meadow; dirt paths run from
// each wall gate to the map edge. Trees are not baked here because cut
// state changes at runtime; see FoliageSprites and StumpSprites.

func paintForest(c *Canvas, seed uint64, w *World, segs []GateSegment) {
	paintMeadow(c, seed)
	paintGatePaths(c, seed, segs)
	paintPlazaPaving(c, seed, segs)
	paintWallShadow(c, segs)
}

func paintMeadow(c *Canvas, seed uint64) {
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			h := hash2D(seed^0x6EA0, x/4, y/4)
			col := Palette.Grass
			if h&7 < 3 {
				col = Palette.GrassDark
			}
			if h&63 == 0 {
				col = Palette.Grass.Add(10, 14, 4)
			}
			c.Set(x, y, col)
		}
	}

	// Leaf litter thickens toward the map edge.
	r := NewRand(seed ^ 0x1177E4)
	for i := 0; i < 2600; i++ {
		x := r.RangeF(0, float64(c.W))
		y := r.RangeF(0, float64(c.H))
		edge := math.Min(math.Min(x, float64(c.W)-x), math.Min(y, float64(c.H)-y))
		if edge > 500 && r.Intn(3) != 0 {
			continue
		}
		c.FillCircle(x, y, r.RangeF(1, 2.6), Palette.LeafDark.Add(-8, -6, -4))
	}

	// Sparse meadow flowers.
	for i := 0; i < 700; i++ {
		x := r.Range(0, c.W)
		y := r.Range(0, c.H)
		col := Palette.AwningB
		switch r.Intn(3) {
		case 1:
			col = Palette.Gold
		case 2:
			col = RGB{236, 238, 240}
		}
		c.Set(x, y, col)
		c.Set(x+1, y, col)
	}
}

// paintGatePaths stamps a jittered dirt trail from each gate opening
// out to the nearest map edge.
func paintGatePaths(c *Canvas, seed uint64, segs []GateSegment) {
	r := NewRand(seed ^ 0x9A7E5)
	for _, s := range segs {
		mid := gateMidAngle(s)
		dx := math.Cos(mid)
		dy := math.Sin(mid)
		x := PlazaCX + dx*(PlazaWallRadius-PlazaWallThickness)
		y := PlazaCY + dy*(PlazaWallRadius-PlazaWallThickness)
		for {
			wob := r.RangeF(-3, 3)
			px := x - dy*wob
			py := y + dx*wob
			rad := r.RangeF(20, 26)
			c.FillCircle(px, py, rad+3, Palette.DirtEdge)
			c.FillCircle(px, py, rad, Palette.Dirt)
			x += dx * 9
			y += dy * 9
			if x < -30 || y < -30 || x > float64(c.W)+30 || y > float64(c.H)+30 {
				break
			}
		}
	}
	// Pebbles on the packed dirt.
	for _, s := range segs {
		mid := gateMidAngle(s)
		dx := math.Cos(mid)
		dy := math.Sin(mid)
		for i := 0; i < 90; i++ {
			d := r.RangeF(PlazaWallRadius, PlazaWallRadius+900)
			off := r.RangeF(-14, 14)
			px := PlazaCX + dx*d - dy*off
			py := PlazaCY + dy*d + dx*off
			c.FillCircle(px, py, 1.4, Palette.CobbleDark)
		}
	}
}

func gateMidAngle(s GateSegment) float64 {
	a0 := s.A0
	a1 := s.A1
	if a1 < a0 {
		a1 += 2 * math.Pi
	}
	return math.Mod((a0+a1)/2, 2*math.Pi)
}

// paintPlazaPaving fills the walled circle with flagstones and the
// fountain apron, and lays stone thresholds through the gates.
func paintPlazaPaving(c *Canvas, seed uint64, segs []GateSegment) {
	half := PlazaWallThickness / 2
	rOut := PlazaWallRadius + half
	x0 := clamp(int(PlazaCX-rOut), 0, c.W)
	x1 := clamp(int(PlazaCX+rOut)+1, 0, c.W)
	y0 := clamp(int(PlazaCY-rOut), 0, c.H)
	y1 := clamp(int(PlazaCY+rOut)+1, 0, c.H)
	inner := PlazaWallRadius - half
	for y := y0; y < y1; y++ {
		dy := float64(y) + 0.5 - PlazaCY
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - PlazaCX
			d := math.Sqrt(dx*dx + dy*dy)
			if d > rOut {
				continue
			}
			if d > inner {
				// Wall band shows through only at the gates, as a
				// worn threshold; elsewhere the overlay covers it.
				a := math.Atan2(dy, dx)
				if a < 0 {
					a += 2 * math.Pi
				}
				if !InGate(segs, a) {
					c.Set(x, y, Palette.StoneDark)
					continue
				}
				c.Set(x, y, stoneAt(seed, x, y, Palette.StoneMid))
				continue
			}
			col := stoneAt(seed, x, y, Palette.StoneLight)
			// Concentric courses around the fountain.
			if int(d)%26 < 2 && d > FountainRadius+30 {
				col = Palette.StoneMortar
			}
			c.Set(x, y, col)
		}
	}

	// Fountain apron, slightly sunk.
	c.Ring(PlazaCX, PlazaCY, FountainRadius+2, FountainRadius+24, Palette.StoneMid)
	for i := 0; i < 20; i++ {
		a := float64(i) * 2 * math.Pi / 20
		c.ArcRing(PlazaCX, PlazaCY, FountainRadius+2, FountainRadius+24, a-0.005, a+0.005, Palette.StoneMortar)
	}
}

func stoneAt(seed uint64, x, y int, base RGB) RGB {
	h := hash2D(seed^0xF1A6, x/7, y/7)
	tint := int(h&7) - 3
	col := base.Add(tint*3, tint*3, tint*2)
	if h&31 == 0 {
		col = base.Mul(225)
	}
	return col
}

// paintWallShadow darkens the grass in a thin ring outside the wall.
func paintWallShadow(c *Canvas, segs []GateSegment) {
	rIn := PlazaWallRadius + PlazaWallThickness/2
	rOut := rIn + 8
	x0 := clamp(int(PlazaCX-rOut), 0, c.W)
	x1 := clamp(int(PlazaCX+rOut)+1, 0, c.W)
	y0 := clamp(int(PlazaCY-rOut), 0, c.H)
	y1 := clamp(int(PlazaCY+rOut)+1, 0, c.H)
	in2 := rIn * rIn
	out2 := rOut * rOut
	for y := y0; y < y1; y++ {
		dy := float64(y) + 0.5 - PlazaCY
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - PlazaCX
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
			o := c.idx(x, y)
			c.Pix[o+0] = uint8(int(c.Pix[o+0]) * 3 / 4)
			c.Pix[o+1] = uint8(int(c.Pix[o+1]) * 3 / 4)
			c.Pix[o+2] = uint8(int(c.Pix[o+2]) * 3 / 4)
		}
	}
}

// FoliageSprites appends standing trees (trunk plus swaying canopy).
// Drawn over players so avatars pass beneath the boughs. Cut trees are
// skipped; their stumps render in the under-player pass.
func FoliageSprites(buf []float32, trees []TreeData, isCut func(int) bool, now float64) []float32 {
	for _, t := range trees {
		if isCut != nil && isCut(t.ID) {
			continue
		}
		sway := math.Sin(now*0.0009+float64(t.ID)*1.7) * 2 * t.Scale

		// Trunk.
		buf = append(buf,
			float32(t.X), float32(t.Y-t.TrunkH/2), float32(t.TrunkW),
			float32(Palette.TrunkBark.R)/255, float32(Palette.TrunkBark.G)/255, float32(Palette.TrunkBark.B)/255, 1, 0)

		// Canopy, three stacked blobs from dark to light.
		topY := t.Y - t.TrunkH
		h := hash2D(0xCA0B, int(t.X), int(t.Y))
		ox := float64(int(h&7)) - 3.5
		blob := func(x, y, size float64, col RGB) {
			buf = append(buf,
				float32(x), float32(y), float32(size),
				float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, 1, 0)
		}
		blob(t.X+sway*0.5, topY, t.CanopyR*1.9, Palette.LeafDark)
		blob(t.X+ox*0.6+sway*0.8, topY-t.CanopyR*0.45, t.CanopyR*1.35, Palette.LeafMid)
		blob(t.X+ox-t.CanopyR*0.25+sway, topY-t.CanopyR*0.8, t.CanopyR*0.8, Palette.LeafLight)
	}
	return buf
}

// StumpSprites appends the stumps of cut trees, drawn under players.
func StumpSprites(buf []float32, trees []TreeData, isCut func(int) bool) []float32 {
	for _, t := range trees {
		if isCut == nil || !isCut(t.ID) {
			continue
		}
		w := t.TrunkW + 4
		buf = append(buf,
			float32(t.X), float32(t.Y), float32(w+4),
			float32(Palette.TrunkBark.R)/255, float32(Palette.TrunkBark.G)/255, float32(Palette.TrunkBark.B)/255, 1, 0,
			float32(t.X), float32(t.Y), float32(w),
			float32(Palette.TrunkCut.R)/255, float32(Palette.TrunkCut.G)/255, float32(Palette.TrunkCut.B)/255, 1, 0,
			float32(t.X+1), float32(t.Y), float32(w/2),
			float32(Palette.TrunkCut.R)/255*0.88, float32(Palette.TrunkCut.G)/255*0.88, float32(Palette.TrunkCut.B)/255*0.88, 1, 0)
	}
	return buf
}
