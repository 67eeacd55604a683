package game

import (
	"math"
	"testing"
)

func TestMapDims(t *testing.T) {
	cases := []struct {
		m    MapType
		w, h float64
		name string
	}{
		{MapCafe, CafeWidth, CafeHeight, "cafe"},
		{MapMarket, MarketWidth, MarketHeight, "market"},
		{MapForest, ForestWidth, ForestHeight, "forest"},
	}
	for _, c := range cases {
		w, h := MapDims(c.m)
		if w != c.w || h != c.h {
			t.Errorf("%s: %vx%v, want %vx%v", c.name, w, h, c.w, c.h)
		}
		if c.m.String() != c.name {
			t.Errorf("String()=%q, want %q", c.m.String(), c.name)
		}
	}
}

func TestPlazaLayout(t *testing.T) {
	w := NewWorld(5, MapForest)
	if len(w.Shrines) != 3 {
		t.Fatalf("%d shrines, want 3", len(w.Shrines))
	}
	if len(w.Stalls) != 4 {
		t.Fatalf("%d stalls, want 4", len(w.Stalls))
	}
	if len(w.Towers) != 4 {
		t.Fatalf("%d towers, want 4", len(w.Towers))
	}
	if len(w.Chests) != 2 {
		t.Fatalf("%d chests, want 2", len(w.Chests))
	}
	for _, s := range w.Shrines {
		if d := math.Hypot(s.X-PlazaCX, s.Y-PlazaCY); math.Abs(d-280) > 1e-9 {
			t.Errorf("%s at radius %v, want 280", s.ID, d)
		}
	}
	for _, tw := range w.Towers {
		if d := math.Hypot(tw.X-PlazaCX, tw.Y-PlazaCY); math.Abs(d-PlazaWallRadius) > 1e-9 {
			t.Errorf("tower at radius %v, want on the wall", d)
		}
	}
	for i, st := range w.Stalls {
		if st.Keeper == "" {
			t.Errorf("plaza stall %d unmanned", i)
		}
	}
}

func TestMarketLayout(t *testing.T) {
	w := NewWorld(5, MapMarket)
	if len(w.Stalls) != 8 {
		t.Fatalf("%d stalls, want 8", len(w.Stalls))
	}
	manned := 0
	for _, st := range w.Stalls {
		if st.Keeper != "" {
			manned++
		}
	}
	if manned != DealerCount {
		t.Fatalf("%d manned stalls, want %d", manned, DealerCount)
	}
}

func TestCafeLayout(t *testing.T) {
	w := NewWorld(5, MapCafe)
	if len(w.Stalls) != 1 || w.Stalls[0].Keeper != "barista_0" {
		t.Fatalf("cafe stalls: %+v", w.Stalls)
	}
	if len(w.Trees()) != 0 {
		t.Fatal("cafe grew trees")
	}
}

func TestForestTreesDeterministic(t *testing.T) {
	a := NewWorld(5, MapForest).Trees()
	b := NewWorld(5, MapForest).Trees()
	if len(a) != len(b) {
		t.Fatalf("tree counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tree %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
	c := NewWorld(6, MapForest).Trees()
	same := 0
	for i := range a {
		if i < len(c) && a[i].X == c[i].X && a[i].Y == c[i].Y {
			same++
		}
	}
	if same == len(a) {
		t.Fatal("different seeds produced identical forests")
	}
}

func TestForestTreePlacementRules(t *testing.T) {
	w := NewWorld(5, MapForest)
	trees := w.Trees()
	if len(trees) != TreeTarget {
		t.Fatalf("%d trees, want %d", len(trees), TreeTarget)
	}
	clear2 := (PlazaWallRadius + 70) * (PlazaWallRadius + 70)
	for i, a := range trees {
		if a.X < TreeMargin || a.X > ForestWidth-TreeMargin || a.Y < TreeMargin || a.Y > ForestHeight-TreeMargin {
			t.Fatalf("tree %d outside margin at (%v,%v)", i, a.X, a.Y)
		}
		dx := a.X - PlazaCX
		dy := a.Y - PlazaCY
		if dx*dx+dy*dy < clear2 {
			t.Fatalf("tree %d inside the plaza clearing", i)
		}
		if a.Scale < 0.8 || a.Scale > 1.5 {
			t.Fatalf("tree %d scale %v", i, a.Scale)
		}
		for j := i + 1; j < len(trees); j++ {
			b := trees[j]
			if d := math.Hypot(a.X-b.X, a.Y-b.Y); d < TreeMinSpacing {
				t.Fatalf("trees %d,%d only %v apart", i, j, d)
			}
		}
	}
}

func TestResetTreesRebuildsSameForest(t *testing.T) {
	w := NewWorld(5, MapForest)
	before := append([]TreeData(nil), w.Trees()...)
	w.ResetTrees()
	after := w.Trees()
	if len(before) != len(after) {
		t.Fatalf("counts differ after reset: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("tree %d changed after reset", i)
		}
	}
}

func TestVisibleTreesQueries(t *testing.T) {
	w := NewWorld(5, MapForest)
	trees := w.Trees()

	all := w.VisibleTrees(RectF{X0: 0, Y0: 0, X1: ForestWidth, Y1: ForestHeight}, nil)
	if len(all) != len(trees) {
		t.Fatalf("full view found %d of %d trees", len(all), len(trees))
	}

	none := w.VisibleTrees(RectF{X0: PlazaCX - 10, Y0: PlazaCY - 10, X1: PlazaCX + 10, Y1: PlazaCY + 10}, nil)
	if len(none) != 0 {
		t.Fatalf("plaza centre view found %d trees", len(none))
	}

	target := trees[7]
	hit := w.VisibleTrees(RectF{X0: target.X - 1, Y0: target.Y - 1, X1: target.X + 1, Y1: target.Y + 1}, nil)
	found := false
	for _, id := range hit {
		if id == target.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("point view over tree %d missed it (got %v)", target.ID, hit)
	}
}

func TestZeroSeedNormalized(t *testing.T) {
	a := NewWorld(0, MapForest).Trees()
	b := NewWorld(1, MapForest).Trees()
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("counts: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("seed 0 did not normalize to 1")
		}
	}
}
