package game

import (
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"roaddodge/internal/assets"
	"roaddodge/internal/dodge"
)

// RunDesktop opens the window and runs session until the window is closed
// or Escape is pressed.
func RunDesktop(session *dodge.Session, set *assets.Set, logger *log.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger.Debug("gl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	rend.InitFont()
	sprites := rend.UploadSprites(set)

	input := NewInput()
	var (
		clock   dodge.Clock
		snap    dodge.Snapshot
		restart bool
	)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		frame := time.Duration((now - last) * float64(time.Second))
		last = now

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		controls := input.Poll(window)
		// Hold the restart edge until a tick consumes it.
		restart = restart || controls.Restart
		for n := clock.Advance(frame); n > 0; n-- {
			controls.Restart = restart
			session.Step(controls)
			restart = false
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		session.Snapshot(&snap)
		rend.BeginFrame(fbW, fbH)
		rend.DrawScene(&sprites, &snap)
		RenderHUD(rend, &sprites, &snap)
		window.SwapBuffers()
	}

	logger.Info("window closed", "attempts", session.Attempts, "record", session.Record)
	return nil
}
