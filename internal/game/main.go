package game

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"plaza/internal/logger"
)

func RunDesktop(cfg *Settings) {
	runtime.LockOSThread()

	window, err := initWindow(cfg)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if cfg.Audio {
		if err := InitAudio(); err != nil {
			logger.Log.WithError(err).Warn("audio init failed, continuing without sound")
		} else {
			startMap := cfg.StartMapType()
			go func() {
				time.Sleep(100 * time.Millisecond) // let audio context initialize
				StartMapMusic(startMap)
			}()
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(
		float32(Palette.NightInk.R)/255.0,
		float32(Palette.NightInk.G)/255.0,
		float32(Palette.NightInk.B)/255.0,
		1.0,
	)

	e := NewEngine(cfg)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}

	input := NewInput()
	var nextSplashAt float64

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		now, dt := e.Tick()

		input.ProcessInput(window, e, now, fbW, fbH)
		UpdateCameraZoom(e.Cam, window, dt/1000, fbW, fbH)
		e.Update(now, dt, fbW, fbH)
		fountainAmbience(e, now, &nextSplashAt)

		rend.BeginFrame(e.Cam, fbW, fbH)
		rend.DrawBackground(e, fbW, fbH)
		rend.DrawForestFountain(e, now, fbW, fbH)
		rend.DrawForestStumps(e, fbW, fbH)
		rend.DrawChests(e, now, fbW, fbH)
		rend.DrawOrbs(e, now, fbW, fbH)
		rend.DrawAgents(e, now, fbW, fbH)
		rend.DrawForestFoliage(e, now, fbW, fbH)
		rend.DrawPlazaWallTop(e, now, fbW, fbH)
		rend.DrawShrineBeams(e, now, fbW, fbH)
		rend.DrawParticles(e, dt, now, fbW, fbH)
		rend.DrawSpeechBubbles(e, now, fbW, fbH)
		rend.DrawHUD(e, now, fbW, fbH)

		window.SwapBuffers()
	}
}

// fountainAmbience plays a soft splash while the camera sits near the
// forest fountain, louder the closer it is.
func fountainAmbience(e *Engine, now float64, nextAt *float64) {
	if e.World.Map != MapForest || now < *nextAt {
		return
	}
	d := math.Hypot(e.Cam.X-PlazaCX, e.Cam.Y-PlazaCY)
	const audible = 340.0
	if d > audible {
		*nextAt = now + 250
		return
	}
	*nextAt = now + 820
	PlaySoundWithGain(SoundSplash, 0.8*(1.0-d/audible))
}
