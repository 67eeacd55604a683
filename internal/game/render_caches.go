package game

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Cache canvas drawing: lazy texture creation, one-time upload, then a
// single quad blit per frame. The canvases themselves are painted on
// the CPU by the cache manager; this file only moves them to the GPU.

// EnsureCanvasTexture creates a GL texture for a canvas that lacks one.
func (r *Renderer) EnsureCanvasTexture(c *Canvas) {
	if c.Tex != 0 {
		return
	}
	gl.GenTextures(1, &c.Tex)
	gl.BindTexture(gl.TEXTURE_2D, c.Tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(c.W), int32(c.H), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(c.Pix),
	)
	c.NeedsUpload = false
}

// UploadCanvas re-uploads pixels for a canvas whose texture exists.
func (r *Renderer) UploadCanvas(c *Canvas) {
	if c.Tex == 0 {
		r.EnsureCanvasTexture(c)
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, c.Tex)
	gl.TexSubImage2D(
		gl.TEXTURE_2D, 0, 0, 0,
		int32(c.W), int32(c.H),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(c.Pix),
	)
	c.NeedsUpload = false
}

// DrawCanvas blits a cache canvas at a world origin, skipping it when
// fully outside the view. Assumes the cache program is active.
func (r *Renderer) DrawCanvas(c *Canvas, ox, oy float64, cam *Camera, fbW, fbH int) {
	if c == nil {
		return
	}
	view := cam.ViewRect(fbW, fbH, 0)
	if !view.Intersects(RectF{X0: ox, Y0: oy, X1: ox + float64(c.W), Y1: oy + float64(c.H)}) {
		return
	}
	if c.NeedsUpload {
		r.UploadCanvas(c)
	} else {
		r.EnsureCanvasTexture(c)
	}
	gl.Uniform2f(r.uOrigin, float32(ox), float32(oy))
	gl.Uniform2f(r.uSize, float32(c.W), float32(c.H))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BindTexture(gl.TEXTURE_2D, c.Tex)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.Disable(gl.BLEND)
}

// FreeOrphanTextures deletes GL textures left behind by cache clears.
func (r *Renderer) FreeOrphanTextures(cs *Caches) {
	for _, tex := range cs.TakeOrphanTextures() {
		if tex != 0 {
			gl.DeleteTextures(1, &tex)
		}
	}
}

// DrawBackground blits the map background plus, on the forest, the
// plaza statics layer that sits under every avatar.
func (r *Renderer) DrawBackground(e *Engine, fbW, fbH int) {
	r.FreeOrphanTextures(e.Caches)
	r.DrawCanvas(e.Caches.Background(e.World), 0, 0, e.Cam, fbW, fbH)
	if e.World.Map == MapForest {
		ox, oy := PlazaOrigin()
		r.DrawCanvas(e.Caches.PlazaStatics(e.World), ox, oy, e.Cam, fbW, fbH)
	}
}

// DrawForestFountain blits the fountain and layers the water jets and
// surface shimmer over it. The moving parts are functions of the
// clock, never baked.
func (r *Renderer) DrawForestFountain(e *Engine, now float64, fbW, fbH int) {
	if e.World.Map != MapForest {
		return
	}
	ox, oy := e.Caches.FountainOrigin()
	r.DrawCanvas(e.Caches.Fountain(), ox, oy, e.Cam, fbW, fbH)
	if !e.Cam.InView(fbW, fbH, PlazaCX, PlazaCY, FountainRadius*2+80, FountainRadius*2+80) {
		return
	}
	r.decoBuf = FountainJetSprites(r.decoBuf[:0], now)
	r.DrawSprites(r.decoBuf, e.Cam, fbW, fbH)
	r.glowBuf = FountainShimmerSprites(r.glowBuf[:0], now)
	r.DrawGlowSprites(r.glowBuf, e.Cam, fbW, fbH)
	r.RestoreCacheProgram()
}

// DrawPlazaWallTop blits the battlement ring over the avatars and
// waves the bunting flags on top.
func (r *Renderer) DrawPlazaWallTop(e *Engine, now float64, fbW, fbH int) {
	if e.World.Map != MapForest {
		return
	}
	ox, oy := e.Caches.WallTopOrigin()
	r.DrawCanvas(e.Caches.WallTop(e.World), ox, oy, e.Cam, fbW, fbH)
	r.decoBuf = FlagSprites(r.decoBuf[:0], now)
	r.DrawSprites(r.decoBuf, e.Cam, fbW, fbH)
	r.RestoreCacheProgram()
}

// DrawForestStumps draws cut-tree stumps in the under-player layer.
func (r *Renderer) DrawForestStumps(e *Engine, fbW, fbH int) {
	if e.World.Map != MapForest {
		return
	}
	r.decoBuf = StumpSprites(r.decoBuf[:0], r.visibleTrees(e, fbW, fbH), e.Session.IsTreeCut)
	r.DrawSprites(r.decoBuf, e.Cam, fbW, fbH)
	r.RestoreCacheProgram()
}

// DrawForestFoliage draws standing trees over the avatars.
func (r *Renderer) DrawForestFoliage(e *Engine, now float64, fbW, fbH int) {
	if e.World.Map != MapForest {
		return
	}
	r.decoBuf = FoliageSprites(r.decoBuf[:0], r.visibleTrees(e, fbW, fbH), e.Session.IsTreeCut, now)
	r.DrawSprites(r.decoBuf, e.Cam, fbW, fbH)
	r.RestoreCacheProgram()
}

// visibleTrees gathers the trees whose bounds touch the padded view.
func (r *Renderer) visibleTrees(e *Engine, fbW, fbH int) []TreeData {
	view := e.Cam.ViewRect(fbW, fbH, 120)
	r.treeIDs = e.World.VisibleTrees(view, r.treeIDs)
	trees := e.World.Trees()
	r.treeScratch = r.treeScratch[:0]
	for _, id := range r.treeIDs {
		r.treeScratch = append(r.treeScratch, trees[id])
	}
	return r.treeScratch
}

// DrawChests renders treasure chests with the box shader; open chests
// sit darker with a lingering coin glint.
func (r *Renderer) DrawChests(e *Engine, now float64, fbW, fbH int) {
	if len(e.World.Chests) == 0 {
		return
	}
	r.boxBuf = r.boxBuf[:0]
	r.glowBuf = r.glowBuf[:0]
	for _, c := range e.World.Chests {
		if !e.Cam.InView(fbW, fbH, c.X, c.Y, 64, 64) {
			continue
		}
		col := Palette.Crate
		if e.Session.ChestOpen(c.ID, now) {
			col = col.Mul(150)
			glint := 0.25 + 0.15*math.Sin(now*0.006)
			r.glowBuf = append(r.glowBuf,
				float32(c.X), float32(c.Y-14), 10,
				float32(Palette.Gold.R)/255*float32(glint),
				float32(Palette.Gold.G)/255*float32(glint),
				float32(Palette.Gold.B)/255*float32(glint), 1, 0)
		}
		r.boxBuf = append(r.boxBuf,
			float32(c.X), float32(c.Y), 30,
			float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, 1, 0)
	}
	r.DrawBoxSprites(r.boxBuf, e.Cam, fbW, fbH)
	r.DrawGlowSprites(r.glowBuf, e.Cam, fbW, fbH)
	r.RestoreCacheProgram()
}

// DrawShrineBeams layers the pulsing shrine light columns over the
// whole scene.
func (r *Renderer) DrawShrineBeams(e *Engine, now float64, fbW, fbH int) {
	if e.World.Map != MapForest {
		return
	}
	r.glowBuf = ShrineBeamSprites(r.glowBuf[:0], e.World, e.Session.ShrineReadyAt(), now)
	r.DrawGlowSprites(r.glowBuf, e.Cam, fbW, fbH)
	r.RestoreCacheProgram()
}

// DrawOrbs renders server-spawned pickups as pulsing lights.
func (r *Renderer) DrawOrbs(e *Engine, now float64, fbW, fbH int) {
	orbs := e.Session.Orbs()
	if len(orbs) == 0 {
		return
	}
	r.glowBuf = r.glowBuf[:0]
	for i, o := range orbs {
		if !e.Cam.InView(fbW, fbH, o.X, o.Y, 48, 48) {
			continue
		}
		pulse := 0.35 + 0.2*math.Sin(now*0.005+float64(i)*1.7)
		r.glowBuf = append(r.glowBuf,
			float32(o.X), float32(o.Y), 18,
			float32(0.4*pulse), float32(0.8*pulse), float32(1.0*pulse), 1, 0)
		r.glowBuf = append(r.glowBuf,
			float32(o.X), float32(o.Y), 7,
			float32(0.8*pulse), float32(1.0*pulse), float32(1.0*pulse), 1, 0)
	}
	r.DrawGlowSprites(r.glowBuf, e.Cam, fbW, fbH)
	r.RestoreCacheProgram()
}
