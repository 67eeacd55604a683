package game

import (
	"math"
	"testing"
)

func forestSim(seed uint64) *AmbientSim {
	w := NewWorld(seed, MapForest)
	return NewAmbientSim(w, NewSpeechBoard(seed))
}

func TestCullTier(t *testing.T) {
	if got := cullTier(nil, 800, 600, 99999, 99999); got != tierFull {
		t.Fatalf("nil camera: got tier %d, want full", got)
	}
	cam := &Camera{Zoom: 1, WorldW: ForestWidth, WorldH: ForestHeight}
	cases := []struct {
		y    float64
		want simTier
	}{
		{0, tierFull},
		{330, tierFull},   // box edge still overlaps the 300px half-view
		{400, tierNear},   // outside view, inside 1.5 viewports
		{500, tierFar},    // inside 2.5 viewports
		{800, tierSkip},   // beyond everything
	}
	for _, c := range cases {
		if got := cullTier(cam, 800, 600, 0, c.y); got != c.want {
			t.Errorf("y=%v: got tier %d, want %d", c.y, got, c.want)
		}
	}
}

func TestVillagersOnlyInForest(t *testing.T) {
	for _, m := range []MapType{MapCafe, MapMarket} {
		w := NewWorld(7, m)
		s := NewAmbientSim(w, NewSpeechBoard(7))
		if got := s.UpdateVillagers(0, 16, nil, 0, 0); len(got) != 0 {
			t.Errorf("map %v: got %d villagers, want none", m, len(got))
		}
		if got := s.UpdateCenturionPlayers(0, 16, nil, 0, 0); len(got) != 0 {
			t.Errorf("map %v: got %d centurions, want none", m, len(got))
		}
	}
}

func TestVillagerSpawnCount(t *testing.T) {
	s := forestSim(7)
	got := s.UpdateVillagers(0, 16, nil, 0, 0)
	if len(got) != VillagerCount {
		t.Fatalf("got %d villagers, want %d", len(got), VillagerCount)
	}
	cents := s.UpdateCenturionPlayers(0, 16, nil, 0, 0)
	if len(cents) != CenturionCount {
		t.Fatalf("got %d centurions, want %d", len(cents), CenturionCount)
	}
}

// Villagers must stay inside the plaza wander ring at every frame, not
// just at retarget points.
func TestVillagersStayInAnnulus(t *testing.T) {
	s := forestSim(7)
	for now := 0.0; now < 120000; now += 16 {
		for _, a := range s.UpdateVillagers(now, 16, nil, 0, 0) {
			d := math.Hypot(a.X-PlazaCX, a.Y-PlazaCY)
			if d < PlazaWanderMin-1e-6 || d > PlazaWanderMax+1e-6 {
				t.Fatalf("now=%v: %s at distance %v, ring is [%v,%v]", now, a.ID, d, PlazaWanderMin, PlazaWanderMax)
			}
		}
	}
}

// Centurions never leave their tower platform leash.
func TestCenturionsStayOnPlatform(t *testing.T) {
	w := NewWorld(7, MapForest)
	s := NewAmbientSim(w, NewSpeechBoard(7))
	leash := w.Towers[0].PlatformR * CenturionLeash
	for now := 0.0; now < 120000; now += 16 {
		s.UpdateCenturionPlayers(now, 16, nil, 0, 0)
		for _, a := range s.centurions {
			d := math.Hypot(a.X-a.AnchorX, a.Y-a.AnchorY)
			if d > leash+1e-9 {
				t.Fatalf("now=%v: %s at distance %v from anchor, leash %v", now, a.ID, d, leash)
			}
		}
	}
}

// Two sims over the same schedule must agree bit for bit. This is the
// whole point of the shared sampler: ambient motion without sync.
func TestAmbientSimDeterministic(t *testing.T) {
	s1 := forestSim(7)
	s2 := forestSim(7)
	for now := 0.0; now < 30000; now += 16 {
		p1 := s1.UpdateVillagers(now, 16, nil, 0, 0)
		p2 := s2.UpdateVillagers(now, 16, nil, 0, 0)
		if len(p1) != len(p2) {
			t.Fatalf("now=%v: pose counts diverged %d vs %d", now, len(p1), len(p2))
		}
		for i := range p1 {
			if p1[i].X != p2[i].X || p1[i].Y != p2[i].Y || p1[i].Moving != p2[i].Moving {
				t.Fatalf("now=%v agent %s: %+v vs %+v", now, p1[i].ID, p1[i], p2[i])
			}
		}
	}
}

func TestStepAgentArrival(t *testing.T) {
	s := forestSim(7)
	a := &Agent{
		ID: "villager_0", Kind: AgentVillager, Speed: VillagerSpeed,
		X: PlazaCX + 200, Y: PlazaCY,
		TargetX: PlazaCX + 201, TargetY: PlazaCY,
		Cycle: 1, NextRetargetAt: 5000,
	}
	s.stepAgent(a, 1000, 16)
	if a.X != PlazaCX+200 || a.Y != PlazaCY {
		t.Fatalf("agent moved on arrival: (%v,%v)", a.X, a.Y)
	}
	if a.NextRetargetAt != 1000 {
		t.Fatalf("arrival should expire the cycle, NextRetargetAt=%v", a.NextRetargetAt)
	}
	if a.Moving {
		t.Fatal("arrived agent still flagged moving")
	}
}

// A centurion step that would cross the leash is refused outright and
// the cycle expires instead.
func TestStepAgentLeashBlock(t *testing.T) {
	s := forestSim(7)
	leash := 35 * CenturionLeash // 24.5

	walk := &Agent{
		ID: "centurion_0", Kind: AgentCenturion, Speed: CenturionSpeed,
		AllowedRadius: 35,
		X:             24.0, Y: 0, TargetX: 30, TargetY: 0,
		Cycle: 1, NextRetargetAt: 9000,
	}
	s.stepAgent(walk, 1000, 16)
	if !walk.Moving || walk.X <= 24.0 {
		t.Fatalf("inside-leash step refused: x=%v moving=%v", walk.X, walk.Moving)
	}
	if walk.X > leash {
		t.Fatalf("step overshot the leash: x=%v", walk.X)
	}

	blocked := &Agent{
		ID: "centurion_0", Kind: AgentCenturion, Speed: CenturionSpeed,
		AllowedRadius: 35,
		X:             24.4, Y: 0, TargetX: 30, TargetY: 0,
		Cycle: 1, NextRetargetAt: 9000,
	}
	s.stepAgent(blocked, 1000, 16)
	if blocked.X != 24.4 || blocked.Moving {
		t.Fatalf("leash-crossing step not blocked: x=%v moving=%v", blocked.X, blocked.Moving)
	}
	if blocked.NextRetargetAt != 1000 {
		t.Fatalf("blocked step should expire the cycle, NextRetargetAt=%v", blocked.NextRetargetAt)
	}
}

func TestRetargetSamplesLegalGoals(t *testing.T) {
	s := forestSim(7)
	a := &Agent{
		ID: "villager_3", Kind: AgentVillager, Index: 3, Speed: VillagerSpeed,
		X: PlazaCX + 200, Y: PlazaCY, Cycle: 1,
	}
	for i := 0; i < 50; i++ {
		s.retarget(a, float64(i)*100)
		d := math.Hypot(a.TargetX-PlazaCX, a.TargetY-PlazaCY)
		if d < PlazaWanderMin-1e-9 || d > PlazaWanderMax+1e-9 {
			t.Fatalf("cycle %d: target distance %v outside ring", a.Cycle, d)
		}
	}
	if a.Cycle != 51 {
		t.Fatalf("cycle counter at %d after 50 retargets, want 51", a.Cycle)
	}
	want := float64(49*100) + RetargetInterval + 3*RetargetStagger
	if a.NextRetargetAt != want {
		t.Fatalf("NextRetargetAt=%v, want %v", a.NextRetargetAt, want)
	}
}

// Off-screen agents re-evaluate at most every OffscreenSimMs.
func TestCoarseStepThrottle(t *testing.T) {
	s := forestSim(7)
	a := &Agent{
		ID: "villager_0", Kind: AgentVillager,
		X: PlazaCX + 200, Y: PlazaCY,
		Cycle: 1, NextRetargetAt: 1100, LastSimAt: 1000,
	}
	s.coarseStep(a, 1400)
	if a.Cycle != 1 || a.LastSimAt != 1000 {
		t.Fatalf("throttled step still ran: cycle=%d lastSim=%v", a.Cycle, a.LastSimAt)
	}
	s.coarseStep(a, 1501)
	if a.Cycle != 2 {
		t.Fatalf("due step did not retarget: cycle=%d", a.Cycle)
	}
	if a.LastSimAt != 1501 {
		t.Fatalf("lastSim=%v, want 1501", a.LastSimAt)
	}
}

// A camera parked far away skips every agent; nobody moves.
func TestFarCameraSkipsSimulation(t *testing.T) {
	s := forestSim(7)
	s.UpdateVillagers(0, 16, nil, 0, 0)
	before := make(map[string][2]float64)
	for _, a := range s.villagers {
		before[a.ID] = [2]float64{a.X, a.Y}
	}
	cam := &Camera{X: 100000, Y: 100000, Zoom: 1, WorldW: ForestWidth, WorldH: ForestHeight}
	out := s.UpdateVillagers(5000, 16, cam, 800, 600)
	if len(out) != 0 {
		t.Fatalf("far camera returned %d poses, want 0", len(out))
	}
	for _, a := range s.villagers {
		if p := before[a.ID]; p[0] != a.X || p[1] != a.Y {
			t.Fatalf("%s moved while skipped", a.ID)
		}
	}
}

func TestClampHelpers(t *testing.T) {
	if x, y := clampToDisk(10, 0, 0, 0, 5); x != 5 || y != 0 {
		t.Fatalf("clampToDisk(10,0)=(%v,%v), want (5,0)", x, y)
	}
	if x, y := clampToDisk(3, 0, 0, 0, 5); x != 3 || y != 0 {
		t.Fatalf("clampToDisk inside moved the point: (%v,%v)", x, y)
	}
	if x, y := clampToAnnulus(1, 0, 0, 0, 4, 9); x != 4 || y != 0 {
		t.Fatalf("annulus inner clamp: (%v,%v), want (4,0)", x, y)
	}
	if x, y := clampToAnnulus(12, 0, 0, 0, 4, 9); x != 9 || y != 0 {
		t.Fatalf("annulus outer clamp: (%v,%v), want (9,0)", x, y)
	}
	if x, y := clampToAnnulus(6, 0, 0, 0, 4, 9); x != 6 || y != 0 {
		t.Fatalf("annulus interior moved: (%v,%v)", x, y)
	}
	if x, y := clampToAnnulus(0, 0, 0, 0, 4, 9); x != 4 || y != 0 {
		t.Fatalf("annulus centre fallback: (%v,%v), want (4,0)", x, y)
	}
}
