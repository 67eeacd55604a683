package game

import "github.com/go-gl/gl/v4.1-core/gl"

// DrawSprites renders an array of point sprites using the sprite program.
// buf format: [x, y, size, r, g, b, a, rotation] * N (8 floats per sprite).
func (r *Renderer) DrawSprites(buf []float32, cam *Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}

	count := len(buf) / 8
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.spUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.spUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.spUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawGlowSprites renders light sprites with additive blending and radial falloff.
// buf format: same as DrawSprites, [x, y, size, r, g, b, a, rotation] * N.
// RGB values should be pre-multiplied by desired brightness.
func (r *Renderer) DrawGlowSprites(buf []float32, cam *Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}
	gl.UseProgram(r.glowProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(r.glowUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.glowUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.glowUResolution, float32(fbW), float32(fbH))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.Disable(gl.BLEND)
}

// DrawBoxSprites renders chests and crate pickups with the rotated-box
// shader. buf format: same as DrawSprites.
func (r *Renderer) DrawBoxSprites(buf []float32, cam *Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}

	gl.UseProgram(r.boxProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.boxUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.boxUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.boxUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// RestoreCacheProgram switches back to the cache program after sprite
// passes.
func (r *Renderer) RestoreCacheProgram() {
	gl.UseProgram(r.cacheProg)
	gl.BindVertexArray(r.cacheVAO)
}
