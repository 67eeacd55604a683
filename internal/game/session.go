package game

import (
	"fmt"
	"math"

	"plaza/internal/logger"
)

// Session is the local stand-in for the authoritative service: it owns
// player state, inventory, cooldowns and server-style events. The
// engine only ever reads from it through the same shapes a real
// backend would supply, so swapping in a networked session later does
// not touch the simulation or the renderers.

const (
	playerSpeed     = 3.2
	treeRespawnMs   = 60000.0
	shrineCooldown  = 30000.0
	chestReopenMs   = 45000.0
	orbIntervalMs   = 22000.0
	orbLifeMs       = 14000.0
	toastTTL        = 4000.0
	remoteRetarget  = 5200.0
	orbPickupRadius = 22.0
)

// Player is an avatar, local or remote. Remote fakes wander so the
// shared draw path and particle pools always have several owners.
type Player struct {
	ID   string
	Name string

	X, Y             float64
	TargetX, TargetY float64
	FacingX, FacingY float64
	Moving           bool

	Outfit   Outfit
	Equipped []string
	Local    bool

	nextRetargetAt float64
}

type treeCut struct {
	By        string
	RespawnAt float64
}

// Orb is a server-spawned pickup.
type Orb struct {
	ID      string
	X, Y    float64
	Expires float64
}

// Toast is a transient HUD notice.
type Toast struct {
	Text string
	At   float64
}

type Session struct {
	r *Rand

	players map[string]*Player
	order   []string
	local   *Player

	cuts       map[int]treeCut
	shrines    map[string]float64 // readyAt
	chests     map[string]float64 // reopenAt
	orbs       []Orb
	nextOrbAt  float64
	orbCounter int

	Coins  int
	toasts []Toast

	playerOut []*Player
}

// NewSession seeds the fake service: one local player plus n-1 remote
// wanderers with random cosmetics off the shop catalog.
func NewSession(seed uint64, w *World, localName string, playerCount int) *Session {
	s := &Session{
		r:       NewRand(seed ^ 0x5E5510),
		players: make(map[string]*Player),
		cuts:    make(map[int]treeCut),
		shrines: make(map[string]float64),
		chests:  make(map[string]float64),
	}
	if playerCount < 1 {
		playerCount = 1
	}
	for i := 0; i < playerCount; i++ {
		id := fmt.Sprintf("player_%d", i)
		name := fmt.Sprintf("traveler_%d", i)
		local := i == 0
		if local && localName != "" {
			name = localName
		}
		p := &Player{
			ID:     id,
			Name:   name,
			Local:  local,
			Outfit: s.rollOutfit(),
		}
		s.placePlayer(p, w)
		p.Equipped = s.rollEquipment(local)
		s.players[id] = p
		s.order = append(s.order, id)
		if local {
			s.local = p
		}
	}
	logger.Log.WithField("players", playerCount).Info("session started")
	return s
}

func (s *Session) rollOutfit() Outfit {
	return Outfit{
		Skin:   skinTones[s.r.Intn(len(skinTones))],
		Hair:   hairTones[s.r.Intn(len(hairTones))],
		Top:    villagerTops[s.r.Intn(len(villagerTops))],
		Bottom: villagerBottoms[s.r.Intn(len(villagerBottoms))],
		Hat:    s.r.Intn(3) == 0,
		HatCol: Palette.PlankDark,
	}
}

// rollEquipment hands out 1-4 shop items; the local player always
// gets at least one glow piece so effects show up immediately.
func (s *Session) rollEquipment(local bool) []string {
	ids := CatalogIDs()
	n := 1 + s.r.Intn(4)
	out := make([]string, 0, n)
	for len(out) < n {
		id := ids[s.r.Intn(len(ids))]
		dup := false
		for _, have := range out {
			if have == id {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, id)
		}
	}
	if local {
		out = append(out, "firefly_lantern")
	}
	return out
}

func (s *Session) placePlayer(p *Player, w *World) {
	if w.Map == MapForest {
		a := s.r.RangeF(0, 2*math.Pi)
		d := s.r.RangeF(PlazaWanderMin, PlazaWanderMax)
		p.X = PlazaCX + math.Cos(a)*d
		p.Y = PlazaCY + math.Sin(a)*d
	} else {
		p.X = s.r.RangeF(w.W*0.3, w.W*0.7)
		p.Y = s.r.RangeF(w.H*0.4, w.H*0.8)
	}
	p.TargetX = p.X
	p.TargetY = p.Y
	p.FacingY = 1
}

// Relocate re-places every player for a newly entered map.
func (s *Session) Relocate(w *World) {
	for _, id := range s.order {
		s.placePlayer(s.players[id], w)
	}
}

func (s *Session) Local() *Player { return s.local }

// Players returns all avatars in join order.
func (s *Session) Players() []*Player {
	out := s.playerOut[:0]
	for _, id := range s.order {
		out = append(out, s.players[id])
	}
	s.playerOut = out
	return out
}

// SetLocalTarget sends the local player walking to a world point.
func (s *Session) SetLocalTarget(x, y float64, w *World) {
	if !finite(x) || !finite(y) {
		return
	}
	s.local.TargetX = clampF(x, PlayerW/2, w.W-PlayerW/2)
	s.local.TargetY = clampF(y, PlayerH/2, w.H-PlayerH/2)
}

// Update advances players, remote wander targets, orb spawns and
// respawn clocks by one frame.
func (s *Session) Update(now, dt float64, w *World) {
	for _, id := range s.order {
		p := s.players[id]
		if !p.Local && now >= p.nextRetargetAt {
			s.retargetRemote(p, now, w)
		}
		s.integratePlayer(p, dt)
	}
	s.updateOrbs(now, w)
	s.expireCuts(now)
}

func (s *Session) retargetRemote(p *Player, now float64, w *World) {
	if w.Map == MapForest {
		a := s.r.RangeF(0, 2*math.Pi)
		d := s.r.RangeF(PlazaWanderMin, PlazaWanderMax+120)
		p.TargetX = PlazaCX + math.Cos(a)*d
		p.TargetY = PlazaCY + math.Sin(a)*d
	} else {
		p.TargetX = s.r.RangeF(PlayerW, w.W-PlayerW)
		p.TargetY = s.r.RangeF(PlayerH, w.H-PlayerH)
	}
	p.nextRetargetAt = now + remoteRetarget + s.r.RangeF(0, 2600)
}

func (s *Session) integratePlayer(p *Player, dt float64) {
	dx := p.TargetX - p.X
	dy := p.TargetY - p.Y
	d := math.Hypot(dx, dy)
	if d <= ArrivalEpsilon {
		p.Moving = false
		return
	}
	step := playerSpeed * dt / 16
	if step > d {
		step = d
	}
	p.X += dx / d * step
	p.Y += dy / d * step
	if math.Abs(dx) > math.Abs(dy) {
		p.FacingX = signF(dx)
		p.FacingY = 0
	} else {
		p.FacingX = 0
		p.FacingY = signF(dy)
	}
	p.Moving = true
}

func (s *Session) updateOrbs(now float64, w *World) {
	if s.nextOrbAt == 0 {
		s.nextOrbAt = now + orbIntervalMs/2
	}
	if now >= s.nextOrbAt {
		s.orbCounter++
		o := Orb{
			ID:      fmt.Sprintf("orb_%d", s.orbCounter),
			X:       s.r.RangeF(w.W*0.15, w.W*0.85),
			Y:       s.r.RangeF(w.H*0.15, w.H*0.85),
			Expires: now + orbLifeMs,
		}
		s.orbs = append(s.orbs, o)
		s.nextOrbAt = now + orbIntervalMs
		s.Toast("An orb shimmers somewhere nearby...", now)
	}
	kept := s.orbs[:0]
	for _, o := range s.orbs {
		if now >= o.Expires {
			continue
		}
		if math.Hypot(o.X-s.local.X, o.Y-s.local.Y) <= orbPickupRadius {
			s.Coins += 5
			s.Toast("Picked up an orb (+5)", now)
			continue
		}
		kept = append(kept, o)
	}
	s.orbs = kept
}

func (s *Session) expireCuts(now float64) {
	for id, c := range s.cuts {
		if now >= c.RespawnAt {
			delete(s.cuts, id)
		}
	}
}

// Orbs returns the live pickups.
func (s *Session) Orbs() []Orb { return s.orbs }

// IsTreeCut reports the server-side cut state for a tree.
func (s *Session) IsTreeCut(id int) bool {
	_, ok := s.cuts[id]
	return ok
}

// CutTree fells a standing tree and schedules its respawn.
func (s *Session) CutTree(id int, by string, now float64) bool {
	if s.IsTreeCut(id) {
		return false
	}
	s.cuts[id] = treeCut{By: by, RespawnAt: now + treeRespawnMs}
	s.Coins += 2
	s.Toast("Chopped a tree (+2)", now)
	return true
}

// VisitShrine grants a blessing unless the shrine is cooling down.
func (s *Session) VisitShrine(id string, now float64) bool {
	if ready, ok := s.shrines[id]; ok && now < ready {
		s.Toast("The shrine is quiet...", now)
		return false
	}
	s.shrines[id] = now + shrineCooldown
	s.Coins += 3
	s.Toast("The shrine hums its blessing (+3)", now)
	return true
}

// ShrineReadyAt exposes the cooldown map for the beam renderer.
func (s *Session) ShrineReadyAt() map[string]float64 { return s.shrines }

// OpenTreasureChest opens a chest unless it is resetting.
func (s *Session) OpenTreasureChest(id string, now float64) bool {
	if reopen, ok := s.chests[id]; ok && now < reopen {
		s.Toast("The chest is locked tight.", now)
		return false
	}
	s.chests[id] = now + chestReopenMs
	loot := 4 + s.r.Intn(9)
	s.Coins += loot
	s.Toast(fmt.Sprintf("Treasure! (+%d)", loot), now)
	return true
}

// ChestOpen reports whether a chest currently sits open (looted).
func (s *Session) ChestOpen(id string, now float64) bool {
	reopen, ok := s.chests[id]
	return ok && now < reopen
}

// ShopStock returns the dealer inventory: the full catalog.
func (s *Session) ShopStock() []Item {
	ids := CatalogIDs()
	out := make([]Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, ItemByID(id))
	}
	return out
}

// Toast pushes a HUD notice.
func (s *Session) Toast(text string, now float64) {
	s.toasts = append(s.toasts, Toast{Text: text, At: now})
	if len(s.toasts) > 6 {
		s.toasts = s.toasts[len(s.toasts)-6:]
	}
}

// Toasts returns live notices, expiring stale ones in the same pass.
func (s *Session) Toasts(now float64) []Toast {
	kept := s.toasts[:0]
	for _, t := range s.toasts {
		if now-t.At < toastTTL {
			kept = append(kept, t)
		}
	}
	s.toasts = kept
	return s.toasts
}
