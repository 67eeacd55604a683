package game

// Procedural painters for the indoor maps. Each runs exactly once per
// cache build; nothing here may depend on wall-clock time.

// paintCafe fills the cafe interior: plank floor, counter, rug, tables.
func paintCafe(c *Canvas, seed uint64) {
	paintPlankFloor(c, seed, 0, 0, c.W, c.H, 16)

	// Walls.
	wall := Palette.Counter.Add(-18, -14, -10)
	c.FillRect(0, 0, c.W, 24, wall)
	c.FillRect(0, c.H-24, c.W, c.H, wall)
	c.FillRect(0, 0, 24, c.H, wall)
	c.FillRect(c.W-24, 0, c.W, c.H, wall)

	// Counter along the north wall with a worktop highlight.
	c.FillRect(80, 40, c.W-520, 110, Palette.Counter)
	c.FillRect(80, 40, c.W-520, 52, Palette.Counter.Add(26, 22, 16))
	r := NewRand(seed ^ 0xCAFE)
	for x := 110; x < c.W-560; x += 70 {
		// Jars and machines on the worktop.
		col := Palette.Gold
		if r.Intn(3) == 0 {
			col = Palette.AwningA
		}
		c.FillRect(x, 56, x+18, 78, col.Mul(200))
	}

	// Center rug with trim and a simple weave check.
	rx0, ry0 := c.W/2-220, c.H/2-140
	rx1, ry1 := c.W/2+220, c.H/2+140
	c.FillRect(rx0, ry0, rx1, ry1, Palette.RugTrim)
	c.FillRect(rx0+10, ry0+10, rx1-10, ry1-10, Palette.Rug)
	for y := ry0 + 10; y < ry1-10; y++ {
		for x := rx0 + 10; x < rx1-10; x++ {
			if ((x/14)+(y/14))&1 == 0 {
				continue
			}
			if hash2D(seed^0x2B6, x, y)&7 == 0 {
				c.Set(x, y, Palette.Rug.Add(-14, -8, -8))
			}
		}
	}

	// Round tables with chairs, skipping the rug.
	tr := NewRand(seed ^ 0x7AB1E)
	for ty := 220; ty < c.H-160; ty += 230 {
		for tx := 160; tx < c.W-120; tx += 280 {
			x := float64(tx + tr.Range(-24, 24))
			y := float64(ty + tr.Range(-18, 18))
			if x > float64(rx0)-40 && x < float64(rx1)+40 &&
				y > float64(ry0)-40 && y < float64(ry1)+40 {
				continue
			}
			paintCafeTable(c, x, y)
		}
	}
}

func paintCafeTable(c *Canvas, x, y float64) {
	// Chair pads first so the table overlaps them.
	for _, d := range [4][2]float64{{0, -34}, {0, 34}, {-34, 0}, {34, 0}} {
		c.FillCircle(x+d[0], y+d[1], 9, Palette.PlankDark)
		c.FillCircle(x+d[0], y+d[1], 7, Palette.Plank)
	}
	c.FillCircle(x, y, 24, Palette.PlankDark)
	c.FillCircle(x, y, 21, Palette.Plank.Add(10, 8, 6))
	c.FillCircle(x-6, y-6, 6, Palette.Plank.Add(26, 22, 14))
}

// paintPlankFloor lays horizontal planks with per-plank tint and
// staggered joints.
func paintPlankFloor(c *Canvas, seed uint64, x0, y0, x1, y1, plankH int) {
	for y := y0; y < y1; y++ {
		row := y / plankH
		rowTint := int(hash2D(seed^0xF100B, 0, row)&7) - 3
		for x := x0; x < x1; x++ {
			col := Palette.Plank.Add(rowTint*3, rowTint*2, rowTint)
			if y%plankH == 0 {
				col = Palette.PlankDark
			} else {
				// Joints staggered per row.
				joint := int(hash2D(seed^0x901A7, row, x/140)) & 1
				if (x+joint*70)%140 == 0 {
					col = Palette.PlankDark.Add(8, 6, 4)
				} else if hash2D(seed^0x617, x, y)&31 == 0 {
					col = col.Add(-8, -6, -4)
				}
			}
			c.Set(x, y, col)
		}
	}
}

// paintMarket fills the market square: cobbles, two stall rows with
// striped awnings, crates and a dirt aisle.
func paintMarket(c *Canvas, seed uint64, w *World) {
	paintCobbles(c, seed, 0, 0, c.W, c.H)

	// Central dirt aisle, edges jittered so it reads as worn ground.
	cx := c.W / 2
	for y := 0; y < c.H; y++ {
		half := 52 + int(hash2D(seed^0xA15E, 0, y/6)&15) - 7
		for x := cx - half; x < cx+half; x++ {
			col := Palette.Dirt
			if x < cx-half+4 || x > cx+half-5 {
				col = Palette.DirtEdge
			} else if hash2D(seed^0x3D1, x, y)&15 == 0 {
				col = Palette.Dirt.Add(-10, -8, -6)
			}
			c.Set(x, y, col)
		}
	}

	// Booths at the stall anchors the world laid out.
	for n, s := range w.Stalls {
		paintMarketStall(c, seed, int(s.X)-120, int(s.Y)-63, n)
	}
}

func paintMarketStall(c *Canvas, seed uint64, x, y, n int) {
	// Counter and legs.
	c.FillRect(x, y+60, x+240, y+110, Palette.Counter)
	c.FillRect(x, y+60, x+240, y+70, Palette.Counter.Add(22, 18, 12))
	c.FillRect(x+6, y+110, x+16, y+126, Palette.PlankDark)
	c.FillRect(x+224, y+110, x+234, y+126, Palette.PlankDark)

	// Striped awning with a scalloped front edge.
	for ax := x - 10; ax < x+250; ax++ {
		stripe := ((ax - x) / 14) & 1
		col := Palette.AwningA
		if stripe == 1 {
			col = Palette.AwningB
		}
		if n&1 == 1 && stripe == 0 {
			col = Palette.BuntingB
		}
		drop := 0
		if ((ax-x)+7)%14 < 3 {
			drop = 3
		}
		for ay := y; ay < y+34+drop; ay++ {
			c.Set(ax, ay, col)
		}
	}

	// Goods on the counter.
	r := NewRand(seed ^ uint64(n)*0x600D5)
	for g := 0; g < 6; g++ {
		gx := float64(x + 20 + g*36 + r.Range(-4, 4))
		gy := float64(y + 82 + r.Range(-6, 6))
		col := Palette.Gold
		switch r.Intn(4) {
		case 1:
			col = Palette.AwningA.Add(20, 30, 10)
		case 2:
			col = Palette.LeafLight
		case 3:
			col = Palette.Water
		}
		c.FillCircle(gx, gy, 6, col)
	}

	// Crates beside the stall.
	crates := 1 + r.Intn(3)
	for k := 0; k < crates; k++ {
		kx := x + 250 + k*30
		ky := y + 70 + r.Range(-10, 26)
		c.FillRect(kx, ky, kx+26, ky+26, Palette.Crate)
		c.FillRect(kx+2, ky+2, kx+24, ky+24, Palette.Crate.Add(14, 10, 6))
		c.Line(kx+2, ky+2, kx+23, ky+23, Palette.Crate.Add(-20, -16, -10))
	}
}

// paintCobbles lays a square cobblestone grid with mortar seams and
// per-stone tint.
func paintCobbles(c *Canvas, seed uint64, x0, y0, x1, y1 int) {
	const stone = 18
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			// Offset every other row for a running bond.
			ox := x
			if (y/stone)&1 == 1 {
				ox += stone / 2
			}
			if ox%stone < 2 || y%stone < 2 {
				c.Set(x, y, Palette.StoneMortar)
				continue
			}
			tint := int(hash2D(seed^0xC0BB1E, ox/stone, y/stone)&15) - 7
			col := Palette.Cobble.Add(tint, tint, tint)
			if hash2D(seed^0x9E2, x, y)&63 == 0 {
				col = Palette.CobbleDark
			}
			c.Set(x, y, col)
		}
	}
}
