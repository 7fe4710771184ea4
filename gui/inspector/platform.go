// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package inspector is a debug UI showing live GPIO pin state, NVMC
// register values and LED duty-cycle bars, built the way the teacher
// builds its own debugger window (gui/sdlwindows/platform.go): an SDL2
// window owning an OpenGL context, driving a Dear ImGui frame each Poll.
package inspector

import (
	"fmt"
	"runtime"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

// platform owns the SDL2 window, the GL context and per-frame input
// plumbing into imgui's IO, mirroring the teacher's platform type.
type platform struct {
	window *sdl.Window
	time   uint64
	io     imgui.IO
}

func newPlatform(title string, w, h int32, io imgui.IO) (*platform, error) {
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("inspector: failed to initialise SDL2: %w", err)
	}

	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, w, h,
		sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("inspector: failed to create window: %w", err)
	}

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	glContext, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("inspector: failed to create GL context: %w", err)
	}
	if err := window.GLMakeCurrent(glContext); err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("inspector: failed to make GL context current: %w", err)
	}
	_ = sdl.GLSetSwapInterval(1)

	return &platform{window: window, io: io}, nil
}

// newFrame forwards window size and timing into imgui's IO, matching
// platform.newFrame in the teacher's sdlwindows package.
func (p *platform) newFrame() {
	w, h := p.window.GetSize()
	p.io.SetDisplaySize(imgui.Vec2{X: float32(w), Y: float32(h)})

	frequency := sdl.GetPerformanceFrequency()
	current := sdl.GetPerformanceCounter()
	if p.time > 0 {
		p.io.SetDeltaTime(float32(current-p.time) / float32(frequency))
	} else {
		p.io.SetDeltaTime(1.0 / 60.0)
	}
	p.time = current

	x, y, _ := sdl.GetMouseState()
	p.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
}

func (p *platform) swap() {
	p.window.GLSwap()
}

// pollQuit drains SDL events and reports whether the window was asked to
// close.
func (p *platform) pollQuit() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			return true
		}
	}
	return false
}

func (p *platform) destroy() {
	if p.window != nil {
		p.window.Destroy()
	}
	sdl.Quit()
}
