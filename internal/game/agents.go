package game

import (
	"fmt"
	"math"
	"strings"
)

type AgentKind uint8

const (
	AgentVillager AgentKind = iota
	AgentCenturion
	AgentDealer
)

// Agent is a client-simulated ambient NPC. Nothing here is
// server-synchronized: identical ids and cycle counters reproduce
// identical motion on every client.
type Agent struct {
	ID    string
	Kind  AgentKind
	Index int

	X, Y             float64
	TargetX, TargetY float64
	Speed            float64
	FacingX, FacingY float64
	Moving           bool

	Cycle          int
	NextRetargetAt float64
	LastSimAt      float64

	// Centurion constraint disk (tower platform).
	AnchorX, AnchorY float64
	AllowedRadius    float64

	Outfit Outfit
}

// RenderableAgent is the pose slice handed to the avatar renderer,
// shaped exactly like a remote player so both share one draw path.
type RenderableAgent struct {
	ID               string
	Kind             AgentKind
	X, Y             float64
	FacingX, FacingY float64
	Moving           bool
	Outfit           Outfit
}

func (a *Agent) renderable() RenderableAgent {
	return RenderableAgent{
		ID:      a.ID,
		Kind:    a.Kind,
		X:       a.X,
		Y:       a.Y,
		FacingX: a.FacingX,
		FacingY: a.FacingY,
		Moving:  a.Moving,
		Outfit:  a.Outfit,
	}
}

// Outfit is the deterministic color set for an agent's sprite.
type Outfit struct {
	Skin   RGB
	Hair   RGB
	Top    RGB
	Bottom RGB
	Hat    bool
	HatCol RGB
}

var (
	skinTones = []RGB{
		{236, 188, 150}, {214, 163, 114}, {178, 126, 84}, {126, 88, 62}, {244, 208, 176},
	}
	hairTones = []RGB{
		{40, 32, 26}, {92, 62, 32}, {150, 110, 50}, {190, 180, 168}, {120, 44, 30},
	}
	villagerTops = []RGB{
		{116, 84, 140}, {86, 120, 160}, {160, 92, 72}, {96, 130, 82}, {170, 140, 70}, {140, 70, 96},
	}
	villagerBottoms = []RGB{
		{70, 62, 54}, {54, 66, 88}, {96, 78, 58}, {60, 74, 60},
	}
)

func pickRGB(pool []RGB, roll float64) RGB {
	i := int(roll * float64(len(pool)))
	if i >= len(pool) {
		i = len(pool) - 1
	}
	return pool[i]
}

// outfitFor derives stable cosmetics from the agent id. Index slots 2+
// stay clear of the wander sampler's (0,0) and (0,1) draws.
func outfitFor(id string, kind AgentKind) Outfit {
	skin := pickRGB(skinTones, AgentRandom(id, 0, 2))
	hair := pickRGB(hairTones, AgentRandom(id, 0, 3))
	switch kind {
	case AgentCenturion:
		return Outfit{
			Skin:   skin,
			Hair:   hair,
			Top:    RGB{168, 172, 182},
			Bottom: RGB{108, 30, 34},
			Hat:    true,
			HatCol: Palette.Gold,
		}
	case AgentDealer:
		return Outfit{
			Skin:   skin,
			Hair:   hair,
			Top:    Palette.Canvas,
			Bottom: Palette.Crate.Add(-18, -14, -10),
			Hat:    AgentRandom(id, 0, 4) < 0.5,
			HatCol: Palette.AwningA,
		}
	default:
		return Outfit{
			Skin:   skin,
			Hair:   hair,
			Top:    pickRGB(villagerTops, AgentRandom(id, 0, 4)),
			Bottom: pickRGB(villagerBottoms, AgentRandom(id, 0, 5)),
			Hat:    AgentRandom(id, 0, 6) < 0.25,
			HatCol: Palette.PlankDark,
		}
	}
}

// professionOf maps an agent id to its speech pool key ("villager_3"
// speaks villager lines).
func professionOf(id string) string {
	if i := strings.IndexByte(id, '_'); i > 0 {
		return id[:i]
	}
	return id
}

// AmbientSim owns every ambient registry for the current map. Nothing
// global: scheduler and renderer both take the sim explicitly, and a
// map switch swaps the whole context.
type AmbientSim struct {
	world  *World
	speech *SpeechBoard

	villagers  []*Agent
	centurions []*Agent
	dealers    []*Agent

	villagersReady  bool
	centurionsReady bool
	dealersReady    bool

	villagerOut  []RenderableAgent
	centurionOut []RenderableAgent
	dealerOut    []RenderableAgent
}

func NewAmbientSim(w *World, speech *SpeechBoard) *AmbientSim {
	return &AmbientSim{world: w, speech: speech}
}

// SetWorld swaps the map. Registries drop and lazily rebuild on the
// next update for the new map.
func (s *AmbientSim) SetWorld(w *World) {
	s.world = w
	s.villagers = nil
	s.centurions = nil
	s.dealers = nil
	s.villagersReady = false
	s.centurionsReady = false
	s.dealersReady = false
}

// initVillagers seeds the wander registry. Spawn poses come from the
// shared sampler, so every client starts them at identical spots.
func (s *AmbientSim) initVillagers(now float64) {
	s.villagersReady = true
	if s.world == nil || s.world.Map != MapForest {
		return
	}
	for i := 0; i < VillagerCount; i++ {
		id := fmt.Sprintf("villager_%d", i)
		angle := AgentRandom(id, 0, 0) * 2 * math.Pi
		dist := PlazaWanderMin + AgentRandom(id, 0, 1)*(PlazaWanderMax-PlazaWanderMin)
		x := PlazaCX + math.Cos(angle)*dist
		y := PlazaCY + math.Sin(angle)*dist
		s.villagers = append(s.villagers, &Agent{
			ID:             id,
			Kind:           AgentVillager,
			Index:          i,
			X:              x,
			Y:              y,
			TargetX:        x,
			TargetY:        y,
			Speed:          VillagerSpeed,
			FacingY:        1,
			Cycle:          1,
			NextRetargetAt: now + float64(i)*RetargetStagger,
			Outfit:         outfitFor(id, AgentVillager),
		})
	}
}

func (s *AmbientSim) initCenturions(now float64) {
	s.centurionsReady = true
	if s.world == nil || len(s.world.Towers) == 0 {
		return
	}
	for i, t := range s.world.Towers {
		if i >= CenturionCount {
			break
		}
		id := fmt.Sprintf("centurion_%d", i)
		s.centurions = append(s.centurions, &Agent{
			ID:             id,
			Kind:           AgentCenturion,
			Index:          i,
			X:              t.X,
			Y:              t.Y,
			TargetX:        t.X,
			TargetY:        t.Y,
			Speed:          CenturionSpeed,
			FacingY:        1,
			Cycle:          1,
			NextRetargetAt: now + float64(i)*RetargetStagger,
			AnchorX:        t.X,
			AnchorY:        t.Y,
			AllowedRadius:  t.PlatformR,
			Outfit:         outfitFor(id, AgentCenturion),
		})
	}
}

func (s *AmbientSim) initDealers() {
	s.dealersReady = true
	if s.world == nil {
		return
	}
	for i, st := range s.world.Stalls {
		if st.Keeper == "" {
			continue
		}
		s.dealers = append(s.dealers, &Agent{
			ID:      st.Keeper,
			Kind:    AgentDealer,
			Index:   i,
			X:       st.KX,
			Y:       st.KY,
			TargetX: st.KX,
			TargetY: st.KY,
			FacingY: 1,
			Outfit:  outfitFor(st.Keeper, AgentDealer),
		})
	}
}

// Dealers returns render poses for the stationary merchants.
func (s *AmbientSim) Dealers() []RenderableAgent {
	if !s.dealersReady {
		s.initDealers()
	}
	out := s.dealerOut[:0]
	for _, a := range s.dealers {
		out = append(out, a.renderable())
	}
	s.dealerOut = out
	return out
}
