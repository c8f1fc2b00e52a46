package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"roaddodge/internal/dodge"
)

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Poll reads held arrow keys and the restart edge (Space or Enter).
func (in *Input) Poll(window *glfw.Window) dodge.Controls {
	held := func(key glfw.Key) bool { return window.GetKey(key) == glfw.Press }

	space := in.JustPressed(window, glfw.KeySpace)
	enter := in.JustPressed(window, glfw.KeyEnter)

	return dodge.Controls{
		Left:    held(glfw.KeyLeft),
		Right:   held(glfw.KeyRight),
		Up:      held(glfw.KeyUp),
		Down:    held(glfw.KeyDown),
		Restart: space || enter,
	}
}
