package game

import (
	"fmt"
	"math"
)

// Canvas is a CPU-side RGBA bitmap for the render caches. Painted once
// by the procedural painters, uploaded lazily to a GL texture, then
// blitted as a single quad per frame. A=0 is transparent.
type Canvas struct {
	W, H int
	Pix  []uint8 // RGBA8

	Tex         uint32 // created lazily by the renderer
	NeedsUpload bool
}

const maxCanvasDim = 4096

func NewCanvas(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 || w > maxCanvasDim || h > maxCanvasDim {
		return nil, fmt.Errorf("canvas size %dx%d out of range", w, h)
	}
	return &Canvas{
		W:           w,
		H:           h,
		Pix:         make([]uint8, w*h*4),
		NeedsUpload: true,
	}, nil
}

func (c *Canvas) idx(x, y int) int {
	return (y*c.W + x) * 4
}

func (c *Canvas) Set(x, y int, col RGB) {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return
	}
	o := c.idx(x, y)
	c.Pix[o+0] = col.R
	c.Pix[o+1] = col.G
	c.Pix[o+2] = col.B
	c.Pix[o+3] = 255
}

func (c *Canvas) SetA(x, y int, col RGB, a uint8) {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return
	}
	o := c.idx(x, y)
	c.Pix[o+0] = col.R
	c.Pix[o+1] = col.G
	c.Pix[o+2] = col.B
	c.Pix[o+3] = a
}

// Fill floods the whole canvas with an opaque colour.
func (c *Canvas) Fill(col RGB) {
	for i := 0; i < len(c.Pix); i += 4 {
		c.Pix[i+0] = col.R
		c.Pix[i+1] = col.G
		c.Pix[i+2] = col.B
		c.Pix[i+3] = 255
	}
}

func (c *Canvas) FillRect(x0, y0, x1, y1 int, col RGB) {
	x0 = clamp(x0, 0, c.W)
	y0 = clamp(y0, 0, c.H)
	x1 = clamp(x1, 0, c.W)
	y1 = clamp(y1, 0, c.H)
	for y := y0; y < y1; y++ {
		o := c.idx(x0, y)
		for x := x0; x < x1; x++ {
			c.Pix[o+0] = col.R
			c.Pix[o+1] = col.G
			c.Pix[o+2] = col.B
			c.Pix[o+3] = 255
			o += 4
		}
	}
}

func (c *Canvas) FillCircle(cx, cy, r float64, col RGB) {
	x0 := clamp(int(cx-r), 0, c.W)
	x1 := clamp(int(cx+r)+1, 0, c.W)
	y0 := clamp(int(cy-r), 0, c.H)
	y1 := clamp(int(cy+r)+1, 0, c.H)
	r2 := r * r
	for y := y0; y < y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				c.Set(x, y, col)
			}
		}
	}
}

// Ring fills the annulus between rIn and rOut.
func (c *Canvas) Ring(cx, cy, rIn, rOut float64, col RGB) {
	x0 := clamp(int(cx-rOut), 0, c.W)
	x1 := clamp(int(cx+rOut)+1, 0, c.W)
	y0 := clamp(int(cy-rOut), 0, c.H)
	y1 := clamp(int(cy+rOut)+1, 0, c.H)
	in2 := rIn * rIn
	out2 := rOut * rOut
	for y := y0; y < y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - cx
			d2 := dx*dx + dy*dy
			if d2 >= in2 && d2 <= out2 {
				c.Set(x, y, col)
			}
		}
	}
}

// ArcRing fills the part of the annulus whose angle lies in [a0,a1].
// Angles in radians; the range may wrap through zero.
func (c *Canvas) ArcRing(cx, cy, rIn, rOut, a0, a1 float64, col RGB) {
	a0 = math.Mod(a0+4*math.Pi, 2*math.Pi)
	a1 = math.Mod(a1+4*math.Pi, 2*math.Pi)
	x0 := clamp(int(cx-rOut), 0, c.W)
	x1 := clamp(int(cx+rOut)+1, 0, c.W)
	y0 := clamp(int(cy-rOut), 0, c.H)
	y1 := clamp(int(cy+rOut)+1, 0, c.H)
	in2 := rIn * rIn
	out2 := rOut * rOut
	for y := y0; y < y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - cx
			d2 := dx*dx + dy*dy
			if d2 < in2 || d2 > out2 {
				continue
			}
			a := math.Atan2(dy, dx)
			if a < 0 {
				a += 2 * math.Pi
			}
			if angleInRange(a, a0, a1) {
				c.Set(x, y, col)
			}
		}
	}
}

// Line draws a 1px Bresenham line.
func (c *Canvas) Line(x0, y0, x1, y1 int, col RGB) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// angleInRange reports whether a lies in [a0,a1], all normalized to
// [0,2pi); the range may wrap through zero.
func angleInRange(a, a0, a1 float64) bool {
	if a0 <= a1 {
		return a >= a0 && a <= a1
	}
	return a >= a0 || a <= a1
}
