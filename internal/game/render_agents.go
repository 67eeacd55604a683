package game

import (
	"math"
	"sort"
)

// Avatars are composed from point sprites per body part, offset from
// the anchor and swung by a clock-driven walk cycle. Positions are
// rounded to whole pixels so parts do not shimmer against each other.

type drawRefKind int

const (
	refPlayer drawRefKind = iota
	refVillager
	refCenturion
	refDealer
)

type drawRef struct {
	y    float64
	kind drawRefKind
	idx  int
}

// walkPhase gives each avatar a stable stride offset so crowds do not
// march in lockstep.
func walkPhase(id string) float64 {
	return float64(HashAgentID(id)&0x3FF) * 0.017
}

// appendAvatar emits one avatar's body parts into buf in paint order.
// equipped is nil for ambient agents.
func appendAvatar(buf []float32, x, y, fx, fy float64, moving bool, o Outfit, equipped []string, id string, now float64, local bool) []float32 {
	stride := 0.0
	bob := 0.0
	if moving {
		t := now*0.012 + walkPhase(id)
		stride = math.Sin(t) * 5
		bob = math.Abs(math.Cos(t)) * 2
	}
	lean := fx * 2

	rx := func(v float64) float32 { return float32(math.Round(v)) }

	skR := float32(o.Skin.R) / 255
	skG := float32(o.Skin.G) / 255
	skB := float32(o.Skin.B) / 255
	tpR := float32(o.Top.R) / 255
	tpG := float32(o.Top.G) / 255
	tpB := float32(o.Top.B) / 255
	btR := float32(o.Bottom.R) / 255
	btG := float32(o.Bottom.G) / 255
	btB := float32(o.Bottom.B) / 255

	// Cosmetic accents pulled out of the equipment list first: boots
	// recolor the feet, the rest add sprites at fixed anchor points.
	var capeItem, hatItem, heldItem Item
	var hasCape, hasHat, hasHeld bool
	bootR, bootG, bootB := btR*0.6, btG*0.6, btB*0.6
	for _, itemID := range equipped {
		it := ItemByID(itemID)
		switch it.Slot {
		case SlotCape:
			capeItem, hasCape = it, true
		case SlotHat:
			hatItem, hasHat = it, true
		case SlotHeld:
			heldItem, hasHeld = it, true
		case SlotBoots:
			bootR = float32(it.Effect.Color.R) / 255
			bootG = float32(it.Effect.Color.G) / 255
			bootB = float32(it.Effect.Color.B) / 255
		}
	}

	if local {
		buf = append(buf, rx(x), rx(y+30), 44, 1, 1, 1, 0.14, 0)
	}

	// Shadow.
	buf = append(buf, rx(x+2), rx(y+30), 26, 0, 0, 0, 0.30, 0)

	// Cape hangs behind the torso, away from the facing direction.
	if hasCape {
		cR := float32(capeItem.Effect.Color.R) / 255
		cG := float32(capeItem.Effect.Color.G) / 255
		cB := float32(capeItem.Effect.Color.B) / 255
		buf = append(buf, rx(x-fx*9), rx(y+4-bob*0.5), 22, cR*0.8, cG*0.8, cB*0.8, 1, 0)
		buf = append(buf, rx(x-fx*11), rx(y+16), 16, cR*0.65, cG*0.65, cB*0.65, 1, 0)
	}

	// Feet swing along the facing axis, opposite phases.
	buf = append(buf, rx(x-7+fx*stride), rx(y+28+fy*stride*0.5), 9, bootR, bootG, bootB, 1, 0)
	buf = append(buf, rx(x+7-fx*stride), rx(y+28-fy*stride*0.5), 9, bootR, bootG, bootB, 1, 0)

	// Legs and torso.
	buf = append(buf, rx(x), rx(y+17-bob*0.5), 18, btR, btG, btB, 1, 0)
	buf = append(buf, rx(x), rx(y+4-bob), 24, tpR, tpG, tpB, 1, 0)
	buf = append(buf, rx(x-11), rx(y-2-bob), 10, tpR*0.92, tpG*0.92, tpB*0.92, 1, 0)
	buf = append(buf, rx(x+11), rx(y-2-bob), 10, tpR*0.92, tpG*0.92, tpB*0.92, 1, 0)

	// Hands swing opposite the same-side foot.
	buf = append(buf, rx(x-15-fx*stride*0.8), rx(y+6-bob), 7, skR, skG, skB, 1, 0)
	buf = append(buf, rx(x+15+fx*stride*0.8), rx(y+6-bob), 7, skR, skG, skB, 1, 0)

	if hasHeld {
		hR := float32(heldItem.Effect.Color.R) / 255
		hG := float32(heldItem.Effect.Color.G) / 255
		hB := float32(heldItem.Effect.Color.B) / 255
		buf = append(buf, rx(x+15+fx*stride*0.8), rx(y+2-bob), 8, hR, hG, hB, 1, 0)
	}

	// Head and hair.
	buf = append(buf, rx(x+lean), rx(y-16-bob), 17, skR, skG, skB, 1, 0)
	buf = append(buf, rx(x+lean), rx(y-22-bob), 15,
		float32(o.Hair.R)/255, float32(o.Hair.G)/255, float32(o.Hair.B)/255, 1, 0)

	switch {
	case hasHat:
		buf = append(buf, rx(x+lean), rx(y-28-bob), 15,
			float32(hatItem.Effect.Color.R)/255,
			float32(hatItem.Effect.Color.G)/255,
			float32(hatItem.Effect.Color.B)/255, 1, 0)
	case o.Hat:
		buf = append(buf, rx(x+lean), rx(y-28-bob), 15,
			float32(o.HatCol.R)/255, float32(o.HatCol.G)/255, float32(o.HatCol.B)/255, 1, 0)
	}

	return buf
}

// DrawAgents renders every avatar in painter order: smaller Y first so
// southern figures overlap northern ones.
func (r *Renderer) DrawAgents(e *Engine, now float64, fbW, fbH int) {
	refs := r.drawRefs[:0]
	players := e.Session.Players()
	for i, p := range players {
		if !e.Cam.InView(fbW, fbH, p.X, p.Y, PlayerW*2, PlayerH*2) {
			continue
		}
		refs = append(refs, drawRef{y: p.Y, kind: refPlayer, idx: i})
	}
	for i, a := range e.frameVillagers {
		refs = append(refs, drawRef{y: a.Y, kind: refVillager, idx: i})
	}
	for i, a := range e.frameCenturions {
		refs = append(refs, drawRef{y: a.Y, kind: refCenturion, idx: i})
	}
	dealers := e.Sim.Dealers()
	for i, a := range dealers {
		if !e.Cam.InView(fbW, fbH, a.X, a.Y, PlayerW*2, PlayerH*2) {
			continue
		}
		refs = append(refs, drawRef{y: a.Y, kind: refDealer, idx: i})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].y < refs[j].y })
	r.drawRefs = refs

	buf := r.agentBuf[:0]
	for _, ref := range refs {
		switch ref.kind {
		case refPlayer:
			p := players[ref.idx]
			buf = appendAvatar(buf, p.X, p.Y, p.FacingX, p.FacingY, p.Moving, p.Outfit, p.Equipped, p.ID, now, p.Local)
		case refVillager:
			a := e.frameVillagers[ref.idx]
			buf = appendAvatar(buf, a.X, a.Y, a.FacingX, a.FacingY, a.Moving, a.Outfit, nil, a.ID, now, false)
		case refCenturion:
			a := e.frameCenturions[ref.idx]
			buf = appendAvatar(buf, a.X, a.Y, a.FacingX, a.FacingY, a.Moving, a.Outfit, nil, a.ID, now, false)
		case refDealer:
			a := dealers[ref.idx]
			buf = appendAvatar(buf, a.X, a.Y, a.FacingX, a.FacingY, a.Moving, a.Outfit, nil, a.ID, now, false)
		}
	}
	r.agentBuf = buf
	r.DrawSprites(buf, e.Cam, fbW, fbH)
	r.RestoreCacheProgram()
}

// DrawParticles runs every owner's particle pools and draws the solid
// and glow passes.
func (r *Renderer) DrawParticles(e *Engine, dt, now float64, fbW, fbH int) {
	r.decoBuf = r.decoBuf[:0]
	r.glowBuf = r.glowBuf[:0]
	for _, p := range e.Session.Players() {
		r.decoBuf, r.glowBuf = e.Effects.UpdateDraw(p.ID, dt, now, r.decoBuf, r.glowBuf)
	}
	r.DrawSprites(r.decoBuf, e.Cam, fbW, fbH)
	r.DrawGlowSprites(r.glowBuf, e.Cam, fbW, fbH)
	r.RestoreCacheProgram()
}
