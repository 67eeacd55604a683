package game

import "math"

// Click hit-testing in world coordinates. All queries return the
// frontmost candidate (largest Y, matching the y-sorted draw order).

func agentHit(a *Agent, x, y float64) bool {
	return math.Abs(x-a.X) <= PlayerW/2 && math.Abs(y-a.Y) <= PlayerH/2
}

// ClickedNPC returns the ambient agent under the point, or nil.
func (s *AmbientSim) ClickedNPC(x, y float64) *Agent {
	if !s.dealersReady {
		s.initDealers()
	}
	var best *Agent
	for _, group := range [][]*Agent{s.villagers, s.centurions, s.dealers} {
		for _, a := range group {
			if agentHit(a, x, y) && (best == nil || a.Y > best.Y) {
				best = a
			}
		}
	}
	return best
}

// ClickedDealer returns the stationary merchant under the point, or
// nil. Villagers and centurions never match.
func (s *AmbientSim) ClickedDealer(x, y float64) *Agent {
	if !s.dealersReady {
		s.initDealers()
	}
	var best *Agent
	for _, a := range s.dealers {
		if agentHit(a, x, y) && (best == nil || a.Y > best.Y) {
			best = a
		}
	}
	return best
}

// ClickedTree returns the tree whose trunk or canopy contains the
// point. The quadtree narrows candidates before exact tests.
func (w *World) ClickedTree(x, y float64) (TreeData, bool) {
	pt := RectF{X0: x, Y0: y, X1: x, Y1: y}
	ids := w.VisibleTrees(pt, nil)
	found := TreeData{}
	ok := false
	for _, id := range ids {
		t := w.trees[id]
		trunkHit := math.Abs(x-t.X) <= t.TrunkW && y >= t.Y-t.TrunkH && y <= t.Y+8
		cdx := x - t.X
		cdy := y - (t.Y - t.TrunkH - t.CanopyR*0.5)
		canopyHit := cdx*cdx+cdy*cdy <= t.CanopyR*t.CanopyR*1.44
		if (trunkHit || canopyHit) && (!ok || t.Y > found.Y) {
			found = t
			ok = true
		}
	}
	return found, ok
}

// ClickedShrine returns the shrine whose pillar contains the point.
func (w *World) ClickedShrine(x, y float64) (Shrine, bool) {
	for _, s := range w.Shrines {
		if math.Abs(x-s.X) <= 22 && y >= s.Y-44 && y <= s.Y+12 {
			return s, true
		}
	}
	return Shrine{}, false
}

// ClickedTreasureChest returns the chest under the point.
func (w *World) ClickedTreasureChest(x, y float64) (Chest, bool) {
	for _, c := range w.Chests {
		if math.Abs(x-c.X) <= 20 && math.Abs(y-c.Y) <= 16 {
			return c, true
		}
	}
	return Chest{}, false
}
