package game

import "testing"

func TestCameraClampKeepsViewInWorld(t *testing.T) {
	c := &Camera{X: -500, Y: 99999, Zoom: 1, WorldW: ForestWidth, WorldH: ForestHeight}
	c.Clamp(800, 600)
	if c.X != 400 {
		t.Fatalf("x=%v, want left edge 400", c.X)
	}
	if c.Y != ForestHeight-300 {
		t.Fatalf("y=%v, want bottom edge %v", c.Y, ForestHeight-300)
	}
}

func TestCameraClampCentersSmallWorlds(t *testing.T) {
	c := &Camera{X: 9, Y: 9, Zoom: 0.5, WorldW: CafeWidth, WorldH: CafeHeight}
	// At zoom 0.5 an 800x600 framebuffer sees 1600x1200, taller than
	// the cafe; both axes centre.
	c.Clamp(800, 600)
	if c.X != CafeWidth/2 || c.Y != CafeHeight/2 {
		t.Fatalf("(%v,%v), want world centre", c.X, c.Y)
	}
}

func TestCameraClampBoundsZoom(t *testing.T) {
	c := &Camera{X: 1000, Y: 1000, Zoom: 99, WorldW: ForestWidth, WorldH: ForestHeight}
	c.Clamp(800, 600)
	if c.Zoom != MaxZoom {
		t.Fatalf("zoom=%v, want clamp to %v", c.Zoom, MaxZoom)
	}
	c.Zoom = 0.01
	c.Clamp(800, 600)
	if c.Zoom != MinZoom {
		t.Fatalf("zoom=%v, want clamp to %v", c.Zoom, MinZoom)
	}
}

func TestWorldToScreenCentre(t *testing.T) {
	c := &Camera{X: 1600, Y: 1200, Zoom: 2}
	x, y := c.WorldToScreen(800, 600, 1600, 1200)
	if x != 400 || y != 300 {
		t.Fatalf("centre mapped to (%v,%v), want (400,300)", x, y)
	}
	x, y = c.WorldToScreen(800, 600, 1610, 1190)
	if x != 420 || y != 280 {
		t.Fatalf("offset mapped to (%v,%v), want (420,280)", x, y)
	}
}

func TestInViewEdges(t *testing.T) {
	c := &Camera{X: 0, Y: 0, Zoom: 1}
	if !c.InView(800, 600, 0, 0, PlayerW, PlayerH) {
		t.Fatal("centre not in view")
	}
	// A box just kissing the right edge still counts.
	if !c.InView(800, 600, 400+PlayerW/2, 0, PlayerW, PlayerH) {
		t.Fatal("edge-touching box culled")
	}
	if c.InView(800, 600, 400+PlayerW/2+1, 0, PlayerW, PlayerH) {
		t.Fatal("offscreen box kept")
	}
}

func TestViewRectMargin(t *testing.T) {
	c := &Camera{X: 100, Y: 200, Zoom: 2}
	v := c.ViewRect(800, 600, 10)
	if v.X0 != 100-200-10 || v.X1 != 100+200+10 {
		t.Fatalf("x range [%v,%v]", v.X0, v.X1)
	}
	if v.Y0 != 200-150-10 || v.Y1 != 200+150+10 {
		t.Fatalf("y range [%v,%v]", v.Y0, v.Y1)
	}
}

func TestWithinViewportsScales(t *testing.T) {
	c := &Camera{X: 0, Y: 0, Zoom: 1}
	if !c.WithinViewports(800, 600, 500, 0, CullNearFactor) {
		t.Fatal("point inside 1.5 viewports rejected")
	}
	if c.WithinViewports(800, 600, 700, 0, CullNearFactor) {
		t.Fatal("point outside 1.5 viewports accepted")
	}
	if !c.WithinViewports(800, 600, 900, 0, CullFarFactor) {
		t.Fatal("point inside 2.5 viewports rejected")
	}
}

func TestFollowConverges(t *testing.T) {
	c := &Camera{X: 0, Y: 0, Zoom: 1}
	for i := 0; i < 300; i++ {
		c.Follow(500, -250, 0.016)
	}
	if c.X != 500 || c.Y != -250 {
		t.Fatalf("camera at (%v,%v) after settling, want (500,-250)", c.X, c.Y)
	}
	// One step never overshoots.
	c.X, c.Y = 0, 0
	c.Follow(5, 5, 0.016)
	if c.X != 5 || c.Y != 5 {
		t.Fatalf("short approach landed at (%v,%v), want exact target", c.X, c.Y)
	}
}

func TestApproachHelper(t *testing.T) {
	if got := approach(0, 10, 3); got != 3 {
		t.Fatalf("approach up: %v", got)
	}
	if got := approach(10, 0, 3); got != 7 {
		t.Fatalf("approach down: %v", got)
	}
	if got := approach(9, 10, 3); got != 10 {
		t.Fatalf("approach clamp: %v", got)
	}
	if got := approach(5, 5, 3); got != 5 {
		t.Fatalf("approach at target: %v", got)
	}
}

func TestRandDeterminismAndRanges(t *testing.T) {
	a := NewRand(99)
	b := NewRand(99)
	for i := 0; i < 100; i++ {
		if a.NextU64() != b.NextU64() {
			t.Fatal("same seed diverged")
		}
	}
	r := NewRand(99)
	for i := 0; i < 1000; i++ {
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64 %v out of [0,1)", v)
		}
		if v := r.Intn(7); v < 0 || v > 6 {
			t.Fatalf("Intn(7) %v", v)
		}
		if v := r.Range(3, 5); v < 3 || v > 5 {
			t.Fatalf("Range(3,5) %v", v)
		}
		if v := r.RangeF(-2, 2); v < -2 || v > 2 {
			t.Fatalf("RangeF(-2,2) %v", v)
		}
	}
	if NewRand(0).NextU64() != NewRand(1).NextU64() {
		t.Fatal("zero seed not normalized")
	}
	if r.Intn(0) != 0 || r.Range(5, 3) != 5 || r.RangeF(5, 3) != 5 {
		t.Fatal("degenerate ranges")
	}
}

func TestHash2DStable(t *testing.T) {
	if hash2D(1, 10, 20) != hash2D(1, 10, 20) {
		t.Fatal("hash not stable")
	}
	if hash2D(1, 10, 20) == hash2D(2, 10, 20) {
		t.Fatal("seed ignored")
	}
	if hash2D(1, 10, 20) == hash2D(1, 20, 10) {
		t.Fatal("coordinates commute")
	}
}
