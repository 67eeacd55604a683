package game

// Camera is the viewport transform consumed by the renderers and the
// simulation culler.
type Camera struct {
	X, Y float64 // world-pixel space, camera centre
	Zoom float64 // screen pixels per world pixel

	// Current map extent, set on map switch.
	WorldW, WorldH float64
}

// ViewRect returns the world-space rectangle covered by the
// framebuffer, inflated by margin world pixels on every side.
func (c *Camera) ViewRect(fbW, fbH int, margin float64) RectF {
	halfW := float64(fbW)/(2.0*c.Zoom) + margin
	halfH := float64(fbH)/(2.0*c.Zoom) + margin
	return RectF{X0: c.X - halfW, Y0: c.Y - halfH, X1: c.X + halfW, Y1: c.Y + halfH}
}

// InView reports whether the box centred on (x,y) overlaps the
// viewport. Drawing and full simulation both key off this.
func (c *Camera) InView(fbW, fbH int, x, y, w, h float64) bool {
	v := c.ViewRect(fbW, fbH, 0)
	return x+w/2 >= v.X0 && x-w/2 <= v.X1 &&
		y+h/2 >= v.Y0 && y-h/2 <= v.Y1
}

// WithinViewports reports whether (x,y) lies inside factor stacked
// viewports around the camera. The culler uses this to pick between
// the throttled near path and the full skip.
func (c *Camera) WithinViewports(fbW, fbH int, x, y, factor float64) bool {
	halfW := float64(fbW) / (2.0 * c.Zoom) * factor
	halfH := float64(fbH) / (2.0 * c.Zoom) * factor
	dx := x - c.X
	dy := y - c.Y
	return dx >= -halfW && dx <= halfW && dy >= -halfH && dy <= halfH
}

// WorldToScreen converts world coordinates to framebuffer pixels.
func (c *Camera) WorldToScreen(fbW, fbH int, x, y float64) (float64, float64) {
	return (x-c.X)*c.Zoom + float64(fbW)/2, (y-c.Y)*c.Zoom + float64(fbH)/2
}

// Follow eases the camera toward (x,y). dt in seconds.
func (c *Camera) Follow(x, y, dt float64) {
	step := (600 + c.Zoom*200) * dt
	c.X = approach(c.X, x, step)
	c.Y = approach(c.Y, y, step)
}

func (c *Camera) Clamp(fbW, fbH int) {
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}

	halfW := float64(fbW) / (2.0 * c.Zoom)
	halfH := float64(fbH) / (2.0 * c.Zoom)

	minX := halfW
	maxX := c.WorldW - halfW
	minY := halfH
	maxY := c.WorldH - halfH

	if minX > maxX {
		c.X = c.WorldW * 0.5
	} else {
		if c.X < minX {
			c.X = minX
		}
		if c.X > maxX {
			c.X = maxX
		}
	}

	if minY > maxY {
		c.Y = c.WorldH * 0.5
	} else {
		if c.Y < minY {
			c.Y = minY
		}
		if c.Y > maxY {
			c.Y = maxY
		}
	}
}
