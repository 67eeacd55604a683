package game

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// CursorWorldPos converts cursor position to world coordinates.
func CursorWorldPos(window *glfw.Window, cam *Camera, fbW, fbH int) (float64, float64) {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 {
		return cam.X, cam.Y
	}
	scaleX := float64(fbW) / float64(winW)
	scaleY := float64(fbH) / float64(winH)
	fx := cx * scaleX
	fy := cy * scaleY
	wx := cam.X + (fx-float64(fbW)*0.5)/cam.Zoom
	wy := cam.Y + (fy-float64(fbH)*0.5)/cam.Zoom
	return wx, wy
}

// ProcessInput handles one frame of player input: map travel, the
// stall panel, WASD walking and click interactions.
func (in *Input) ProcessInput(window *glfw.Window, e *Engine, now float64, fbW, fbH int) {
	if in.JustPressed(window, glfw.Key1) {
		e.EnterMap(MapCafe)
	}
	if in.JustPressed(window, glfw.Key2) {
		e.EnterMap(MapMarket)
	}
	if in.JustPressed(window, glfw.Key3) {
		e.EnterMap(MapForest)
	}
	if in.JustPressed(window, glfw.KeyE) {
		e.ShopOpen = !e.ShopOpen
		PlaySound(SoundClick)
	}
	// F5: regrow cut trees and repaint every cached canvas.
	if in.JustPressed(window, glfw.KeyF5) {
		e.World.ResetTrees()
		e.Caches.ClearBackground()
	}

	// WASD walks by continuously re-aiming the walk target a short
	// step ahead; click-to-move still works alongside.
	dx, dy := 0.0, 0.0
	if window.GetKey(glfw.KeyW) == glfw.Press {
		dy -= 1
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		dy += 1
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		dx -= 1
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		dx += 1
	}
	if dx != 0 || dy != 0 {
		local := e.Session.Local()
		n := math.Hypot(dx, dy)
		e.Session.SetLocalTarget(local.X+dx/n*60, local.Y+dy/n*60, e.World)
	}

	if in.JustClicked(window, glfw.MouseButtonLeft) {
		if e.ShopOpen {
			e.ShopOpen = false
			return
		}
		wx, wy := CursorWorldPos(window, e.Cam, fbW, fbH)
		e.HandleClick(wx, wy, now)
	}
}

// UpdateCameraZoom handles +/- zoom. dt in seconds.
func UpdateCameraZoom(cam *Camera, window *glfw.Window, dt float64, fbW, fbH int) {
	zoomRate := 1.4
	if window.GetKey(glfw.KeyEqual) == glfw.Press || window.GetKey(glfw.KeyKPAdd) == glfw.Press {
		cam.Zoom *= math.Exp(zoomRate * dt)
	}
	if window.GetKey(glfw.KeyMinus) == glfw.Press || window.GetKey(glfw.KeyKPSubtract) == glfw.Press {
		cam.Zoom *= math.Exp(-zoomRate * dt)
	}
	cam.Clamp(fbW, fbH)
}
