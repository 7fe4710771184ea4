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

// Package ledsurface is an SDL2-backed realization of the §4.6 display
// refresh contract (ledmatrix.Surface): it clears a window, draws one
// filled rectangle per lit LED at the intensity the matrix computed, and
// presents. Modelled on the teacher's own SDL2 window setup
// (gui/sdlwindows/platform.go), trimmed to the plain 2D renderer API since
// this surface has no need of an OpenGL context of its own.
package ledsurface

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/blinkenlabs/nrf51emu/hardware/display/ledmatrix"
	"github.com/blinkenlabs/nrf51emu/logger"
)

// background colour between redraws.
var background = sdl.Color{R: 8, G: 8, B: 8, A: 255}

// ledColour is the fully-lit RGB colour; a Box's Intensity scales it.
var ledColour = sdl.Color{R: 220, G: 30, B: 30}

// Surface is an SDL2 window implementing ledmatrix.Surface. It must be
// created and driven on the OS's main thread, matching SDL2's own
// requirement and the teacher's runtime.LockOSThread() convention.
type Surface struct {
	window   *sdl.Window
	renderer *sdl.Renderer
}

// New opens an SDL2 window sized for a rows x cols matrix and returns a
// Surface ready to Attach to a ledmatrix.Matrix. Must be called from the
// OS thread the caller intends to drive the event loop from.
func New(title string, rows, cols int) (*Surface, error) {
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("ledsurface: %w", err)
	}

	w, h := ledmatrix.BoxSize()
	width := int32(cols * (w + w))
	height := int32(rows * (h + h))

	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width, height, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("ledsurface: failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("ledsurface: failed to create renderer: %w", err)
	}

	return &Surface{window: window, renderer: renderer}, nil
}

// Redraw implements ledmatrix.Surface.
func (s *Surface) Redraw(boxes []ledmatrix.Box) {
	s.renderer.SetDrawColor(background.R, background.G, background.B, background.A)
	s.renderer.Clear()

	w, h := ledmatrix.BoxSize()
	for _, b := range boxes {
		if b.Intensity == 0 {
			continue
		}
		scale := float64(b.Intensity) / 255.0
		s.renderer.SetDrawColor(
			uint8(float64(ledColour.R)*scale),
			uint8(float64(ledColour.G)*scale),
			uint8(float64(ledColour.B)*scale),
			255,
		)
		rect := sdl.Rect{X: int32(b.X), Y: int32(b.Y), W: int32(w), H: int32(h)}
		if err := s.renderer.FillRect(&rect); err != nil {
			logger.Logf("ledsurface", "fill rect: %v", err)
		}
	}

	s.renderer.Present()
}

// PollQuit drains pending SDL events and reports whether a window-close
// event was seen. Intended to be polled from the same goroutine that
// drives the emulation's GPIO edges, matching SDL2's single-thread event
// queue requirement.
func (s *Surface) PollQuit() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			return true
		}
	}
	return false
}

// Close destroys the window and renderer and tears down SDL2.
func (s *Surface) Close() {
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()
}

var _ ledmatrix.Surface = (*Surface)(nil)
