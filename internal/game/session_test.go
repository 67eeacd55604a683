package game

import (
	"math"
	"testing"
)

func newForestSession(players int) (*Session, *World) {
	w := NewWorld(11, MapForest)
	return NewSession(11, w, "Robin", players), w
}

func TestSessionRoster(t *testing.T) {
	s, _ := newForestSession(4)
	ps := s.Players()
	if len(ps) != 4 {
		t.Fatalf("%d players, want 4", len(ps))
	}
	if !ps[0].Local || ps[0].Name != "Robin" {
		t.Fatalf("first player %+v, want the named local", ps[0])
	}
	for i, p := range ps[1:] {
		if p.Local {
			t.Fatalf("remote %d flagged local", i+1)
		}
	}
	if s.Local() != ps[0] {
		t.Fatal("Local() disagrees with join order")
	}
	hasLantern := false
	for _, id := range s.Local().Equipped {
		if id == "firefly_lantern" {
			hasLantern = true
		}
	}
	if !hasLantern {
		t.Fatal("local player missing the starter lantern")
	}
}

func TestSessionSinglePlayerFloor(t *testing.T) {
	w := NewWorld(11, MapCafe)
	s := NewSession(11, w, "", 0)
	if len(s.Players()) != 1 {
		t.Fatalf("%d players, want the floor of 1", len(s.Players()))
	}
	if s.Local().Name != "traveler_0" {
		t.Fatalf("unnamed local called %q", s.Local().Name)
	}
}

func TestSetLocalTargetClamps(t *testing.T) {
	s, w := newForestSession(1)
	s.SetLocalTarget(-1000, 99999, w)
	p := s.Local()
	if p.TargetX != PlayerW/2 || p.TargetY != w.H-PlayerH/2 {
		t.Fatalf("target (%v,%v) not clamped to bounds", p.TargetX, p.TargetY)
	}
	before := [2]float64{p.TargetX, p.TargetY}
	s.SetLocalTarget(math.NaN(), 100, w)
	if p.TargetX != before[0] || p.TargetY != before[1] {
		t.Fatal("NaN target accepted")
	}
}

func TestLocalWalksToTarget(t *testing.T) {
	s, w := newForestSession(1)
	p := s.Local()
	s.SetLocalTarget(p.X+100, p.Y, w)
	for now := 0.0; now < 2000; now += 16 {
		s.Update(now, 16, w)
	}
	if p.Moving {
		t.Fatal("still moving after 2 seconds over 100px")
	}
	if math.Abs(p.X-p.TargetX) > ArrivalEpsilon {
		t.Fatalf("stopped %vpx short", math.Abs(p.X-p.TargetX))
	}
}

func TestCutTreeRespawns(t *testing.T) {
	s, _ := newForestSession(1)
	if !s.CutTree(3, "player_0", 1000) {
		t.Fatal("first cut refused")
	}
	if s.Coins != 2 {
		t.Fatalf("coins=%d after cut, want 2", s.Coins)
	}
	if s.CutTree(3, "player_0", 1001) {
		t.Fatal("second cut of a stump accepted")
	}
	if !s.IsTreeCut(3) {
		t.Fatal("tree not marked cut")
	}
	w := NewWorld(11, MapForest)
	s.Update(1000+treeRespawnMs-1, 16, w)
	if !s.IsTreeCut(3) {
		t.Fatal("tree respawned early")
	}
	s.Update(1000+treeRespawnMs, 16, w)
	if s.IsTreeCut(3) {
		t.Fatal("tree still cut past its respawn time")
	}
}

func TestShrineCooldown(t *testing.T) {
	s, _ := newForestSession(1)
	if !s.VisitShrine("shrine_0", 1000) {
		t.Fatal("first visit refused")
	}
	if s.Coins != 3 {
		t.Fatalf("coins=%d after blessing, want 3", s.Coins)
	}
	if s.VisitShrine("shrine_0", 1000+shrineCooldown-1) {
		t.Fatal("visit during cooldown accepted")
	}
	if !s.VisitShrine("shrine_0", 1000+shrineCooldown) {
		t.Fatal("visit after cooldown refused")
	}
	if !s.VisitShrine("shrine_1", 1002) {
		t.Fatal("other shrine blocked by shrine_0's cooldown")
	}
}

func TestChestReopen(t *testing.T) {
	s, _ := newForestSession(1)
	if !s.OpenTreasureChest("chest_0", 0) {
		t.Fatal("first open refused")
	}
	loot := s.Coins
	if loot < 4 || loot > 12 {
		t.Fatalf("loot %d outside 4..12", loot)
	}
	if !s.ChestOpen("chest_0", 10) {
		t.Fatal("chest not reported open")
	}
	if s.OpenTreasureChest("chest_0", chestReopenMs-1) {
		t.Fatal("open during reset accepted")
	}
	if s.Coins != loot {
		t.Fatalf("refused open changed coins to %d", s.Coins)
	}
	if !s.OpenTreasureChest("chest_0", chestReopenMs) {
		t.Fatal("open after reset refused")
	}
}

func TestOrbSpawnAndPickup(t *testing.T) {
	s, w := newForestSession(1)
	s.Update(0, 16, w)
	if len(s.Orbs()) != 0 {
		t.Fatal("orb appeared immediately")
	}
	s.Update(orbIntervalMs/2, 16, w)
	if len(s.Orbs()) != 1 {
		t.Fatalf("%d orbs after the first spawn window, want 1", len(s.Orbs()))
	}

	// Drop the orb onto the local player; the next update collects it.
	s.orbs[0].X = s.local.X
	s.orbs[0].Y = s.local.Y
	coins := s.Coins
	s.Update(orbIntervalMs/2+16, 16, w)
	if s.Coins != coins+5 {
		t.Fatalf("coins=%d after pickup, want %d", s.Coins, coins+5)
	}
	if len(s.Orbs()) != 0 {
		t.Fatal("picked-up orb still listed")
	}
}

func TestOrbExpiry(t *testing.T) {
	s, w := newForestSession(1)
	s.Update(0, 16, w)
	s.Update(orbIntervalMs/2, 16, w)
	if len(s.Orbs()) != 1 {
		t.Fatalf("%d orbs, want 1", len(s.Orbs()))
	}
	// Park the orb away from everyone and run out its life.
	s.orbs[0].X = 10
	s.orbs[0].Y = 10
	expire := s.orbs[0].Expires
	s.Update(expire-1, 16, w)
	if len(s.Orbs()) != 1 {
		t.Fatal("orb expired early")
	}
	s.Update(expire, 16, w)
	for _, o := range s.Orbs() {
		if o.Expires == expire {
			t.Fatal("expired orb survived")
		}
	}
}

func TestToastExpiryAndCap(t *testing.T) {
	s, _ := newForestSession(1)
	s.Toast("first", 0)
	s.Toast("second", 1000)
	if got := s.Toasts(toastTTL - 1); len(got) != 2 {
		t.Fatalf("%d toasts before expiry, want 2", len(got))
	}
	if got := s.Toasts(toastTTL); len(got) != 1 || got[0].Text != "second" {
		t.Fatalf("toasts at TTL: %+v", got)
	}
	for i := 0; i < 10; i++ {
		s.Toast("spam", 2000)
	}
	if got := s.Toasts(2001); len(got) != 6 {
		t.Fatalf("%d toasts, cap is 6", len(got))
	}
}

func TestRelocateMovesEveryone(t *testing.T) {
	s, _ := newForestSession(3)
	market := NewWorld(11, MapMarket)
	s.Relocate(market)
	for _, p := range s.Players() {
		if p.X < 0 || p.X > market.W || p.Y < 0 || p.Y > market.H {
			t.Fatalf("%s relocated outside the market at (%v,%v)", p.ID, p.X, p.Y)
		}
		if p.TargetX != p.X || p.TargetY != p.Y {
			t.Fatalf("%s still walking after relocate", p.ID)
		}
	}
}

func TestShopStockMatchesCatalog(t *testing.T) {
	s, _ := newForestSession(1)
	stock := s.ShopStock()
	ids := CatalogIDs()
	if len(stock) != len(ids) {
		t.Fatalf("stock has %d items, catalog %d", len(stock), len(ids))
	}
	for i, it := range stock {
		if it.ID != ids[i] {
			t.Fatalf("stock[%d]=%s, want %s", i, it.ID, ids[i])
		}
	}
}
