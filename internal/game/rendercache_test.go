package game

import (
	"bytes"
	"math"
	"testing"
)

func alphaAt(c *Canvas, x, y int) uint8 {
	return c.Pix[(y*c.W+x)*4+3]
}

func TestBackgroundBuildsOnce(t *testing.T) {
	w := NewWorld(9, MapCafe)
	cs := NewCaches(9)
	a := cs.Background(w)
	b := cs.Background(w)
	if a != b {
		t.Fatal("second access rebuilt the background")
	}
	if cs.background[MapCafe].builds != 1 {
		t.Fatalf("builds=%d, want 1", cs.background[MapCafe].builds)
	}
	if a.W != CafeWidth || a.H != CafeHeight {
		t.Fatalf("canvas %dx%d, want %dx%d", a.W, a.H, CafeWidth, CafeHeight)
	}
}

func TestBackgroundIsOpaque(t *testing.T) {
	w := NewWorld(9, MapForest)
	cs := NewCaches(9)
	c := cs.Background(w)
	for _, p := range [][2]int{{0, 0}, {c.W - 1, 0}, {0, c.H - 1}, {c.W - 1, c.H - 1}, {c.W / 2, c.H / 2}} {
		if alphaAt(c, p[0], p[1]) != 255 {
			t.Fatalf("background transparent at (%d,%d)", p[0], p[1])
		}
	}
}

func TestBackgroundDeterministic(t *testing.T) {
	w := NewWorld(9, MapForest)
	a := NewCaches(9).Background(w)
	b := NewCaches(9).Background(w)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("same seed painted different backgrounds")
	}
}

func TestClearBackgroundSelective(t *testing.T) {
	cs := NewCaches(9)
	forest := NewWorld(9, MapForest)
	cafe := NewWorld(9, MapCafe)
	cs.Background(forest)
	cafeCanvas := cs.Background(cafe)

	cs.ClearBackground(MapForest)
	if cs.background[MapForest].built {
		t.Fatal("forest entry still marked built after clear")
	}
	if got := cs.Background(cafe); got != cafeCanvas {
		t.Fatal("clearing forest invalidated the cafe background")
	}
	cs.Background(forest)
	if cs.background[MapForest].builds != 2 {
		t.Fatalf("forest builds=%d after rebuild, want 2", cs.background[MapForest].builds)
	}
	if cs.background[MapCafe].builds != 1 {
		t.Fatalf("cafe builds=%d, want 1", cs.background[MapCafe].builds)
	}
}

func TestClearBackgroundOrphansTexture(t *testing.T) {
	cs := NewCaches(9)
	w := NewWorld(9, MapCafe)
	cs.Background(w)

	// Never uploaded: clearing must not orphan texture id 0.
	cs.ClearBackground(MapCafe)
	if got := cs.TakeOrphanTextures(); len(got) != 0 {
		t.Fatalf("orphaned %v for an unuploaded canvas", got)
	}

	c := cs.Background(w)
	c.Tex = 42
	cs.ClearBackground(MapCafe)
	got := cs.TakeOrphanTextures()
	if len(got) != 1 || got[0] != 42 {
		t.Fatalf("orphans=%v, want [42]", got)
	}
	if again := cs.TakeOrphanTextures(); len(again) != 0 {
		t.Fatalf("second take returned %v", again)
	}
}

func TestStructureCachesMemoize(t *testing.T) {
	cs := NewCaches(9)
	w := NewWorld(9, MapForest)
	if cs.Fountain() != cs.Fountain() || cs.fountain.builds != 1 {
		t.Fatal("fountain rebuilt")
	}
	if cs.PlazaStatics(w) != cs.PlazaStatics(w) || cs.plaza.builds != 1 {
		t.Fatal("plaza statics rebuilt")
	}
	if cs.WallTop(w) != cs.WallTop(w) || cs.wallTop.builds != 1 {
		t.Fatal("wall top rebuilt")
	}
}

func TestFountainCanvasGeometry(t *testing.T) {
	cs := NewCaches(9)
	c := cs.Fountain()
	want := int(FountainRadius*2 + 60)
	if c.W != want || c.H != want {
		t.Fatalf("fountain canvas %dx%d, want %dx%d", c.W, c.H, want, want)
	}
	ox, oy := FountainOrigin()
	if ox != PlazaCX-(FountainRadius+30) || oy != PlazaCY-(FountainRadius+30) {
		t.Fatalf("origin (%v,%v)", ox, oy)
	}
	// Basin centre is water, canvas corner is empty air.
	if alphaAt(c, c.W/2, c.H/2) != 255 {
		t.Fatal("fountain centre not painted")
	}
	if alphaAt(c, 0, 0) != 0 {
		t.Fatal("fountain corner painted, should be transparent")
	}
}

func TestWallTopCanvasGeometry(t *testing.T) {
	cs := NewCaches(9)
	w := NewWorld(9, MapForest)
	c := cs.WallTop(w)
	want := int(WallTopHalf() * 2)
	if c.W != want || c.H != want {
		t.Fatalf("wall-top canvas %dx%d, want %dx%d", c.W, c.H, want, want)
	}
	if alphaAt(c, 0, 0) != 0 {
		t.Fatal("wall-top corner painted, should be transparent")
	}
	// North wall has no gate; the walkway band must be painted there.
	if alphaAt(c, c.W/2, c.H/2-int(PlazaWallRadius)) == 0 {
		t.Fatal("north wall ring not painted")
	}
	// The south gate opening stays clear.
	if alphaAt(c, c.W/2, c.H/2+int(PlazaWallRadius)) != 0 {
		t.Fatal("south gate opening painted over")
	}
}

func TestGateSegments(t *testing.T) {
	cs := NewCaches(9)
	segs := cs.GateSegments()
	if len(segs) != 3 {
		t.Fatalf("%d gate segments, want 3", len(segs))
	}
	cases := []struct {
		a    float64
		want bool
	}{
		{math.Pi / 2, true},        // south gate centre
		{math.Pi, true},            // west gate centre
		{0.05, true},               // east gate, positive side
		{2*math.Pi - 0.05, true},   // east gate across the wrap
		{math.Pi / 4, false},       // between south and east
		{3 * math.Pi / 2, false},   // north wall is solid
		{math.Pi/2 + 0.20, false},  // just past the south opening
	}
	for _, c := range cases {
		if got := InGate(segs, c.a); got != c.want {
			t.Errorf("InGate(%v)=%v, want %v", c.a, got, c.want)
		}
	}
}
