package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// MaxSpriteRender caps one streaming draw call. Buffers past the cap
// split into multiple uploads.
const MaxSpriteRender = 16384

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Cache blit program: one quad per cache canvas.
	cacheProg uint32
	cacheVAO  uint32
	cacheVBO  uint32

	uOrigin     int32
	uSize       int32
	uCamera     int32
	uZoom       int32
	uResolution int32
	uTex        int32

	// Sprite program (avatars, agents, decorations, particles).
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32

	spUCamera     int32
	spUZoom       int32
	spUResolution int32

	// Glow (radial light) program on the additive pass, shares spriteVAO.
	glowProg        uint32
	glowUCamera     int32
	glowUZoom       int32
	glowUResolution int32

	// Box program (chests), shares spriteVAO.
	boxProg        uint32
	boxUCamera     int32
	boxUZoom       int32
	boxUResolution int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32

	// Reusable render buffers to avoid per-frame heap allocations.
	agentBuf    []float32
	glowBuf     []float32
	decoBuf     []float32
	boxBuf      []float32
	treeIDs     []int
	treeScratch []TreeData
	drawRefs    []drawRef
}

func NewRenderer() (*Renderer, error) {
	cacheProg, err := linkProgram(cacheVertSrc, cacheFragSrc)
	if err != nil {
		return nil, fmt.Errorf("cache program: %w", err)
	}
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		gl.DeleteProgram(cacheProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(cacheProg)
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}
	boxProg, err := linkProgram(spriteVertSrc, boxFragSrc)
	if err != nil {
		gl.DeleteProgram(cacheProg)
		gl.DeleteProgram(spriteProg)
		gl.DeleteProgram(glowProg)
		return nil, fmt.Errorf("box program: %w", err)
	}

	r := &Renderer{
		cacheProg:  cacheProg,
		spriteProg: spriteProg,
		glowProg:   glowProg,
		boxProg:    boxProg,
	}

	// Cache VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var cVAO, cVBO uint32
	gl.GenVertexArrays(1, &cVAO)
	gl.GenBuffers(1, &cVBO)
	gl.BindVertexArray(cVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, cVBO)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.cacheVAO = cVAO
	r.cacheVBO = cVBO

	// Cache uniforms.
	gl.UseProgram(cacheProg)
	r.uOrigin = gl.GetUniformLocation(cacheProg, gl.Str("uOrigin\x00"))
	r.uSize = gl.GetUniformLocation(cacheProg, gl.Str("uSize\x00"))
	r.uCamera = gl.GetUniformLocation(cacheProg, gl.Str("uCamera\x00"))
	r.uZoom = gl.GetUniformLocation(cacheProg, gl.Str("uZoom\x00"))
	r.uResolution = gl.GetUniformLocation(cacheProg, gl.Str("uResolution\x00"))
	r.uTex = gl.GetUniformLocation(cacheProg, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uTex, 0)

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, rotation).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aRotation (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	// Sprite uniforms.
	gl.UseProgram(spriteProg)
	r.spUCamera = gl.GetUniformLocation(spriteProg, gl.Str("uCamera\x00"))
	r.spUZoom = gl.GetUniformLocation(spriteProg, gl.Str("uZoom\x00"))
	r.spUResolution = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))

	// Glow uniforms.
	gl.UseProgram(glowProg)
	r.glowUCamera = gl.GetUniformLocation(glowProg, gl.Str("uCamera\x00"))
	r.glowUZoom = gl.GetUniformLocation(glowProg, gl.Str("uZoom\x00"))
	r.glowUResolution = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	// Box uniforms.
	gl.UseProgram(boxProg)
	r.boxUCamera = gl.GetUniformLocation(boxProg, gl.Str("uCamera\x00"))
	r.boxUZoom = gl.GetUniformLocation(boxProg, gl.Str("uZoom\x00"))
	r.boxUResolution = gl.GetUniformLocation(boxProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.cacheVBO, r.spriteVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.cacheVAO, r.spriteVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.cacheProg, r.spriteProg, r.glowProg, r.boxProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

func (r *Renderer) BeginFrame(cam *Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	// Cache program is the frame default; sprite passes switch away
	// and back as needed.
	gl.UseProgram(r.cacheProg)
	gl.BindVertexArray(r.cacheVAO)

	gl.Uniform2f(r.uCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.uZoom, float32(cam.Zoom))
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))

	gl.ActiveTexture(gl.TEXTURE0)
}
