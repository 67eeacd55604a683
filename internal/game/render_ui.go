package game

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// InitFont bakes the glyph atlas and sets up the text rendering
// pipeline.
func (r *Renderer) InitFont() error {
	atlas := buildFontAtlas()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(FontAtlasW), int32(FontAtlasH), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas))
	r.fontTex = tex

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 2) // texture unit 2

	// Text VAO/VBO: per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 1024*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.textVAO = vao
	r.textVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

// DrawChar queues a single character as a textured quad in screen
// pixel space. The atlas covers printable ASCII only.
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col RGB, alpha float32) {
	if ch < 32 || ch > 127 {
		return
	}
	c := int(ch) - 32
	column := c % FontCols
	row := c / FontCols

	u0 := float32(column*FontCellW) / float32(FontAtlasW)
	v0 := float32(row*FontCellH) / float32(FontAtlasH)
	u1 := float32((column+1)*FontCellW) / float32(FontAtlasW)
	v1 := float32((row+1)*FontCellH) / float32(FontAtlasH)

	w := float32(FontCellW) * scale
	h := float32(FontCellH) * scale

	cr := float32(col.R) / 255.0
	cg := float32(col.G) / 255.0
	cb := float32(col.B) / 255.0

	// Two triangles: TL, TR, BL then TR, BR, BL.
	r.textBuf = append(r.textBuf,
		sx, sy, u0, v0, cr, cg, cb, alpha,
		sx+w, sy, u1, v0, cr, cg, cb, alpha,
		sx, sy+h, u0, v1, cr, cg, cb, alpha,
		sx+w, sy, u1, v0, cr, cg, cb, alpha,
		sx+w, sy+h, u1, v1, cr, cg, cb, alpha,
		sx, sy+h, u0, v1, cr, cg, cb, alpha,
	)
}

// DrawString queues a string at screen pixel position (sx, sy).
func (r *Renderer) DrawString(text string, sx, sy int, scale float32, col RGB) {
	advance := float32(FontCellW) * scale
	lineAdvance := float32(FontCellH) * scale
	baseX := float32(sx)
	x := float32(sx)
	y := float32(sy)
	for _, ch := range text {
		if ch == '\n' {
			x = baseX
			y += lineAdvance
			continue
		}
		r.DrawChar(ch, x, y, scale, col, 1)
		x += advance
	}
}

// TextWidth returns the width in screen pixels of a string.
func TextWidth(text string, scale float32) int {
	lineLen := 0
	maxLineLen := 0
	for _, ch := range text {
		if ch == '\n' {
			if lineLen > maxLineLen {
				maxLineLen = lineLen
			}
			lineLen = 0
			continue
		}
		lineLen++
	}
	if lineLen > maxLineLen {
		maxLineLen = lineLen
	}
	return int(float32(maxLineLen*FontCellW) * scale)
}

// DrawSolidRect queues a tinted rectangle through the text pipeline by
// sampling the solid filler glyph at the end of the atlas.
func (r *Renderer) DrawSolidRect(sx, sy, w, h float32, col RGB, alpha float32) {
	// Center of the last glyph cell, which is painted fully white.
	u := (float32(31*FontCellW) + float32(FontCellW)/2) / float32(FontAtlasW)
	v := (float32(2*FontCellH) + float32(FontCellH)/2) / float32(FontAtlasH)

	cr := float32(col.R) / 255.0
	cg := float32(col.G) / 255.0
	cb := float32(col.B) / 255.0

	r.textBuf = append(r.textBuf,
		sx, sy, u, v, cr, cg, cb, alpha,
		sx+w, sy, u, v, cr, cg, cb, alpha,
		sx, sy+h, u, v, cr, cg, cb, alpha,
		sx+w, sy, u, v, cr, cg, cb, alpha,
		sx+w, sy+h, u, v, cr, cg, cb, alpha,
		sx, sy+h, u, v, cr, cg, cb, alpha,
	)
}

// FlushText draws all buffered text quads and clears the buffer.
func (r *Renderer) FlushText(fbW, fbH int) {
	if len(r.textBuf) == 0 {
		return
	}

	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)

	gl.Uniform2f(r.textURes, float32(fbW), float32(fbH))

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.textBuf) / 8
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}

// drawBubble queues one speech bubble anchored above a world point.
func (r *Renderer) drawBubble(e *Engine, text string, wx, wy float64, fbW, fbH int) {
	sx, sy := e.Cam.WorldToScreen(fbW, fbH, wx, wy-PlayerH/2-10)
	tw := float32(TextWidth(text, 1))
	bw := tw + 12
	bh := float32(FontCellH) + 8
	bx := float32(sx) - bw/2
	by := float32(sy) - bh - 8

	r.DrawSolidRect(bx, by, bw, bh, Palette.Bubble, 0.92)
	r.DrawSolidRect(float32(sx)-4, by+bh, 8, 5, Palette.Bubble, 0.92)
	r.DrawString(text, int(bx)+6, int(by)+4, 1, Palette.BubbleText)
}

// DrawSpeechBubbles pulls the live line for every on-screen avatar.
func (r *Renderer) DrawSpeechBubbles(e *Engine, now float64, fbW, fbH int) {
	for _, p := range e.Session.Players() {
		if text, ok := e.Speech.Active(p.ID, now); ok && e.Cam.InView(fbW, fbH, p.X, p.Y, PlayerW*4, PlayerH*4) {
			r.drawBubble(e, text, p.X, p.Y, fbW, fbH)
		}
	}
	for _, a := range e.frameVillagers {
		if text, ok := e.Speech.Active(a.ID, now); ok {
			r.drawBubble(e, text, a.X, a.Y, fbW, fbH)
		}
	}
	for _, a := range e.frameCenturions {
		if text, ok := e.Speech.Active(a.ID, now); ok {
			r.drawBubble(e, text, a.X, a.Y, fbW, fbH)
		}
	}
	for _, a := range e.Sim.Dealers() {
		if text, ok := e.Speech.Active(a.ID, now); ok && e.Cam.InView(fbW, fbH, a.X, a.Y, PlayerW*4, PlayerH*4) {
			r.drawBubble(e, text, a.X, a.Y, fbW, fbH)
		}
	}
}

func rarityColor(ra Rarity) RGB {
	switch ra {
	case RarityGodlike:
		return RGB{R: 255, G: 150, B: 40}
	case RarityLegendary:
		return RGB{R: 230, G: 120, B: 240}
	case RarityEpic:
		return RGB{R: 150, G: 110, B: 250}
	case RarityRare:
		return RGB{R: 90, G: 160, B: 255}
	default:
		return RGB{R: 200, G: 200, B: 200}
	}
}

// DrawHUD renders the coin count, map label, toast stack and, when
// open, the stall browse panel.
func (r *Renderer) DrawHUD(e *Engine, now float64, fbW, fbH int) {
	white := RGB{R: 240, G: 240, B: 240}
	dim := RGB{R: 170, G: 170, B: 170}

	r.DrawSolidRect(8, 8, 250, 54, RGB{R: 16, G: 18, B: 24}, 0.6)
	r.DrawString(fmt.Sprintf("Coins: %d", e.Session.Coins), 16, 14, 1, Palette.Gold)
	r.DrawString(fmt.Sprintf("%s  (1/2/3 to travel)", e.World.Map.String()), 16, 34, 1, dim)

	local := e.Session.Local()
	if local.Name != "" {
		sx, sy := e.Cam.WorldToScreen(fbW, fbH, local.X, local.Y+PlayerH/2+6)
		r.DrawString(local.Name, int(sx)-TextWidth(local.Name, 1)/2, int(sy), 1, white)
	}

	// Toasts stack upward from the bottom, newest last.
	toasts := e.Session.Toasts(now)
	for i, t := range toasts {
		age := now - t.At
		alpha := float32(1.0)
		if age > toastTTL-800 {
			alpha = float32((toastTTL - age) / 800)
		}
		tw := float32(TextWidth(t.Text, 1))
		bx := float32(fbW)/2 - tw/2
		by := float32(fbH) - 60 - float32(len(toasts)-1-i)*26
		r.DrawSolidRect(bx-8, by-4, tw+16, float32(FontCellH)+8, RGB{R: 16, G: 18, B: 24}, 0.7*alpha)
		for j, ch := range t.Text {
			r.DrawChar(ch, bx+float32(j*FontCellW), by, 1, white, alpha)
		}
	}

	if e.ShopOpen {
		r.drawShopPanel(e, fbW, fbH)
	}

	r.FlushText(fbW, fbH)
}

// drawShopPanel lists the stall catalog with rarity tints; the local
// player's equipped items are marked.
func (r *Renderer) drawShopPanel(e *Engine, fbW, fbH int) {
	stock := e.Session.ShopStock()
	panelW := float32(420)
	panelH := float32(len(stock)*20 + 56)
	px := float32(fbW)/2 - panelW/2
	py := float32(fbH)/2 - panelH/2

	r.DrawSolidRect(px, py, panelW, panelH, RGB{R: 22, G: 24, B: 32}, 0.94)
	r.DrawSolidRect(px, py, panelW, 26, RGB{R: 40, G: 44, B: 58}, 0.94)
	r.DrawString("Stall wares  (E to close)", int(px)+10, int(py)+5, 1, RGB{R: 240, G: 240, B: 240})

	equipped := map[string]bool{}
	for _, id := range e.Session.Local().Equipped {
		equipped[id] = true
	}

	y := int(py) + 36
	for _, it := range stock {
		label := fmt.Sprintf("%-22s %s", it.Name, it.Rarity.String())
		if equipped[it.ID] {
			label += "  *"
		}
		r.DrawString(label, int(px)+12, y, 1, rarityColor(it.Rarity))
		y += 20
	}
}
