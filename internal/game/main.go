package game

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"crisis/internal/config"
	"crisis/internal/logging"
	"crisis/internal/palette"
	"crisis/internal/sim"
	"crisis/internal/telemetry"
)

// RunDesktop opens the window and runs the frame loop until it is closed.
func RunDesktop(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(cfg.Window.Width, cfg.Window.Height, cfg.WindowTitle())
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	log.Info().Str("gl", gl.GoStr(gl.GetString(gl.VERSION))).Msg("opened window")

	var sound *AudioSystem
	if cfg.Audio.Enabled {
		sound, err = InitAudio(cfg.Audio.Volume)
		if err != nil {
			log.Warn().Err(err).Msg("audio init failed, continuing without sound")
		} else {
			defer sound.Close()
		}
	}

	world, err := sim.NewWorld(sim.Options{
		Vehicle:    cfg.VehicleParams(),
		Controller: cfg.Controller(),
		Logger:     logging.Component(log, "sim"),
	})
	if err != nil {
		return err
	}
	if _, err := world.SpawnGrid(cfg.Grid.Spacing); err != nil {
		return err
	}

	rend, err := NewRenderer(palette.Kizu)
	if err != nil {
		return err
	}
	defer rend.Destroy()

	rec, err := telemetry.New(telemetry.Meter(cfg.Telemetry.Enabled))
	if err != nil {
		return err
	}

	input := NewInput()

	last := glfw.GetTime()
	for !window.ShouldClose() {
		if ctx.Err() != nil {
			break
		}
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDt {
			dt = MaxFrameDt
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		winW, winH := window.GetSize()
		fbW, fbH := window.GetFramebufferSize()

		view := NewView(world.Camera.Position(), winW, winH)
		world.Frame(dt, input.Poll(window), view.Viewport())

		snap := world.Snapshot()
		rec.Record(ctx, dt, snap)
		sound.Update(snap.VehicleSpeed)

		if fbW <= 0 || fbH <= 0 || !view.Ready() {
			continue
		}
		view.Center = snap.Camera

		rend.BeginFrame(fbW, fbH)
		rend.DrawGrids(world.Grids, view)
		rend.DrawVehicle(world.Vehicle, view)
		window.SwapBuffers()
	}

	log.Info().Int64("frames", rec.Frames()).Msg("window closed")
	return nil
}
