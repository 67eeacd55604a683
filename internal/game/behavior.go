package game

import "math"

// Wander scheduler. Each agent alternates between walking to its
// target and sampling a fresh one from the shared deterministic
// sampler, so all clients agree on every pose without exchanging NPC
// state. Off-screen agents drop to a throttled bookkeeping tier and
// far-away ones are skipped outright.

type simTier uint8

const (
	tierFull simTier = iota
	tierNear
	tierFar
	tierSkip
)

// cullTier classifies an agent against the camera. A nil camera means
// headless simulation; everything runs the full path.
func cullTier(cam *Camera, fbW, fbH int, x, y float64) simTier {
	if cam == nil {
		return tierFull
	}
	if cam.InView(fbW, fbH, x, y, PlayerW, PlayerH) {
		return tierFull
	}
	if cam.WithinViewports(fbW, fbH, x, y, CullNearFactor) {
		return tierNear
	}
	if cam.WithinViewports(fbW, fbH, x, y, CullFarFactor) {
		return tierFar
	}
	return tierSkip
}

// UpdateVillagers advances the villager registry and returns the
// poses worth drawing this frame.
func (s *AmbientSim) UpdateVillagers(now, dt float64, cam *Camera, fbW, fbH int) []RenderableAgent {
	if s.world == nil || s.world.Map != MapForest {
		return nil
	}
	if !s.villagersReady {
		s.initVillagers(now)
	}
	out := s.villagerOut[:0]
	for _, a := range s.villagers {
		switch cullTier(cam, fbW, fbH, a.X, a.Y) {
		case tierSkip:
			continue
		case tierFar:
			s.coarseStep(a, now)
			continue
		case tierNear:
			s.coarseStep(a, now)
			out = append(out, a.renderable())
			continue
		}
		a.LastSimAt = now
		s.stepAgent(a, now, dt)
		out = append(out, a.renderable())
	}
	s.villagerOut = out
	return out
}

// UpdateCenturionPlayers advances the wall sentries. The name matches
// the draw path: centurions render through the player avatar routine.
func (s *AmbientSim) UpdateCenturionPlayers(now, dt float64, cam *Camera, fbW, fbH int) []RenderableAgent {
	if s.world == nil || s.world.Map != MapForest {
		return nil
	}
	if !s.centurionsReady {
		s.initCenturions(now)
	}
	out := s.centurionOut[:0]
	for _, a := range s.centurions {
		switch cullTier(cam, fbW, fbH, a.X, a.Y) {
		case tierSkip:
			continue
		case tierFar:
			s.coarseStep(a, now)
			continue
		case tierNear:
			s.coarseStep(a, now)
			out = append(out, a.renderable())
			continue
		}
		a.LastSimAt = now
		s.stepAgent(a, now, dt)
		out = append(out, a.renderable())
	}
	s.centurionOut = out
	return out
}

// coarseStep is the off-screen tier: no movement, just the retarget
// clock, re-evaluated at most every OffscreenSimMs.
func (s *AmbientSim) coarseStep(a *Agent, now float64) {
	a.Moving = false
	if now-a.LastSimAt < OffscreenSimMs {
		return
	}
	a.LastSimAt = now
	if now >= a.NextRetargetAt {
		s.retarget(a, now)
	}
}

// stepAgent runs one full scheduler pass: retarget when the cycle
// expires, otherwise integrate toward the target at a frame-rate
// independent speed (16 ms reference frame).
func (s *AmbientSim) stepAgent(a *Agent, now, dt float64) {
	if now >= a.NextRetargetAt {
		s.retarget(a, now)
		a.Moving = false
		return
	}

	dx := a.TargetX - a.X
	dy := a.TargetY - a.Y
	d := math.Hypot(dx, dy)
	if d <= ArrivalEpsilon {
		// Arrived; expire the cycle so next frame samples anew.
		a.NextRetargetAt = now
		a.Moving = false
		return
	}

	step := a.Speed * dt / 16
	if step > d {
		step = d
	}
	nx := a.X + dx/d*step
	ny := a.Y + dy/d*step

	if a.Kind == AgentCenturion {
		leash := a.AllowedRadius * CenturionLeash
		adx := nx - a.AnchorX
		ady := ny - a.AnchorY
		if adx*adx+ady*ady > leash*leash {
			// Moving would leave the platform; force a retarget now.
			a.NextRetargetAt = now
			a.Moving = false
			return
		}
	}

	a.X = nx
	a.Y = ny
	if a.Kind == AgentVillager {
		// The annulus is not convex; a chord between two legal points
		// can cut inside the fountain apron. Clamp every step so the
		// containment invariant holds mid-walk, not just at retarget.
		a.X, a.Y = clampToAnnulus(a.X, a.Y, PlazaCX, PlazaCY, PlazaWanderMin, PlazaWanderMax)
	}
	if math.Abs(dx) > math.Abs(dy) {
		a.FacingX = signF(dx)
		a.FacingY = 0
	} else {
		a.FacingX = 0
		a.FacingY = signF(dy)
	}
	a.Moving = true
}

// retarget samples the next wander goal inside the agent's legal
// region and re-clamps the pose, squashing any accumulated drift.
func (s *AmbientSim) retarget(a *Agent, now float64) {
	c := a.Cycle
	angle := AgentRandom(a.ID, c*2, 0) * 2 * math.Pi
	switch a.Kind {
	case AgentCenturion:
		leash := a.AllowedRadius * CenturionLeash
		dist := AgentRandom(a.ID, c*2+1, 1) * leash
		a.TargetX = a.AnchorX + math.Cos(angle)*dist
		a.TargetY = a.AnchorY + math.Sin(angle)*dist
		a.X, a.Y = clampToDisk(a.X, a.Y, a.AnchorX, a.AnchorY, leash)
	default:
		dist := PlazaWanderMin + AgentRandom(a.ID, c*2+1, 1)*(PlazaWanderMax-PlazaWanderMin)
		a.TargetX = PlazaCX + math.Cos(angle)*dist
		a.TargetY = PlazaCY + math.Sin(angle)*dist
		a.X, a.Y = clampToAnnulus(a.X, a.Y, PlazaCX, PlazaCY, PlazaWanderMin, PlazaWanderMax)
	}
	a.Cycle++
	a.NextRetargetAt = now + RetargetInterval + float64(a.Index)*RetargetStagger
}

func signF(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// clampToDisk projects (x,y) radially into the disk around (cx,cy).
func clampToDisk(x, y, cx, cy, r float64) (float64, float64) {
	dx := x - cx
	dy := y - cy
	d := math.Hypot(dx, dy)
	if d <= r || d == 0 {
		return x, y
	}
	k := r / d
	return cx + dx*k, cy + dy*k
}

// clampToAnnulus projects (x,y) radially into the ring between rIn
// and rOut around (cx,cy).
func clampToAnnulus(x, y, cx, cy, rIn, rOut float64) (float64, float64) {
	dx := x - cx
	dy := y - cy
	d := math.Hypot(dx, dy)
	if d == 0 {
		return cx + rIn, cy
	}
	if d < rIn {
		k := rIn / d
		return cx + dx*k, cy + dy*k
	}
	if d > rOut {
		k := rOut / d
		return cx + dx*k, cy + dy*k
	}
	return x, y
}
