package game

import (
	"time"

	"plaza/internal/logger"
)

// Engine wires the subsystems of one running client: world layout,
// render caches, ambient simulation, speech, particles, the session
// stand-in and the camera. Everything is owned here and passed down
// explicitly; nothing lives in package globals.
type Engine struct {
	Settings *Settings

	World   *World
	Caches  *Caches
	Sim     *AmbientSim
	Speech  *SpeechBoard
	Effects *EffectEngine
	Session *Session
	Cam     *Camera

	// Stall browse panel toggled with E.
	ShopOpen bool

	seed      uint64
	startedAt time.Time
	lastFrame float64

	// Ambient agents that survived culling this frame.
	frameVillagers  []RenderableAgent
	frameCenturions []RenderableAgent
}

func NewEngine(cfg *Settings) *Engine {
	seed := cfg.Seed
	w := NewWorld(seed, cfg.StartMapType())
	speech := NewSpeechBoard(seed)
	e := &Engine{
		Settings:  cfg,
		World:     w,
		Caches:    NewCaches(seed),
		Sim:       NewAmbientSim(w, speech),
		Speech:    speech,
		Effects:   NewEffectEngine(seed),
		Session:   NewSession(seed, w, cfg.PlayerName, cfg.Players),
		seed:      seed,
		startedAt: time.Now(),
	}
	local := e.Session.Local()
	e.Cam = &Camera{
		X:      local.X,
		Y:      local.Y,
		Zoom:   cfg.Zoom,
		WorldW: w.W,
		WorldH: w.H,
	}
	return e
}

// Now is the engine clock in milliseconds since start.
func (e *Engine) Now() float64 {
	return float64(time.Since(e.startedAt).Microseconds()) / 1000
}

// Tick advances the frame clock and returns (now, dt) in ms. Long
// stalls clamp so a debugger pause cannot teleport every agent.
func (e *Engine) Tick() (float64, float64) {
	now := e.Now()
	if e.lastFrame == 0 {
		e.lastFrame = now
	}
	dt := now - e.lastFrame
	if dt > 100 {
		dt = 100
	}
	e.lastFrame = now
	return now, dt
}

// EnterMap swaps the active map: fresh world, dropped ambient
// registries, relocated players. The departed map's background cache
// is cleared so its canvas memory is reclaimed; it rebuilds lazily on
// the next visit.
func (e *Engine) EnterMap(m MapType) {
	if m == e.World.Map {
		return
	}
	logger.Log.WithField("map", m.String()).Info("entering map")
	e.Caches.ClearBackground(e.World.Map)
	e.World = NewWorld(e.seed, m)
	e.Sim.SetWorld(e.World)
	e.Speech.Reset()
	e.Session.Relocate(e.World)
	local := e.Session.Local()
	e.Cam.WorldW = e.World.W
	e.Cam.WorldH = e.World.H
	e.Cam.X = local.X
	e.Cam.Y = local.Y
	PlaySound(SoundChime)
	StartMapMusic(m)
}

// Update runs one simulation frame: players, chatter, particle spawn
// rolls and the camera follow.
func (e *Engine) Update(now, dt float64, fbW, fbH int) {
	e.Session.Update(now, dt, e.World)
	e.frameVillagers = e.Sim.UpdateVillagers(now, dt, e.Cam, fbW, fbH)
	e.frameCenturions = e.Sim.UpdateCenturionPlayers(now, dt, e.Cam, fbW, fbH)
	e.Speech.UpdateChatter(e.World.Stalls, now)
	for _, p := range e.Session.Players() {
		e.Effects.Spawn(p.ID, p.X, p.Y, p.Equipped, now)
	}
	local := e.Session.Local()
	e.Cam.Follow(local.X, local.Y, dt/1000)
	e.Cam.Clamp(fbW, fbH)
}

// HandleClick resolves a world-space click: NPCs speak, furniture
// interacts, open ground becomes a walk target.
func (e *Engine) HandleClick(wx, wy, now float64) {
	if a := e.Sim.ClickedDealer(wx, wy); a != nil {
		e.Speech.SayRandom(a.ID, now)
		e.Session.Toast("Browse the stall wares with E", now)
		PlaySound(SoundClick)
		return
	}
	if a := e.Sim.ClickedNPC(wx, wy); a != nil {
		e.Speech.SayRandom(a.ID, now)
		PlaySound(SoundClick)
		return
	}
	if s, ok := e.World.ClickedShrine(wx, wy); ok {
		if e.Session.VisitShrine(s.ID, now) {
			PlaySound(SoundChime)
		}
		return
	}
	if c, ok := e.World.ClickedTreasureChest(wx, wy); ok {
		if e.Session.OpenTreasureChest(c.ID, now) {
			PlaySound(SoundCoin)
		}
		return
	}
	if t, ok := e.World.ClickedTree(wx, wy); ok && !e.Session.IsTreeCut(t.ID) {
		if e.Session.CutTree(t.ID, e.Session.Local().ID, now) {
			PlaySound(SoundChop)
		}
		return
	}
	e.Session.SetLocalTarget(wx, wy, e.World)
	PlaySound(SoundClick)
}
