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

package inspector

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/blinkenlabs/nrf51emu/hardware/board"
)

// Inspector is a live debug window over a realized board: a GPIO pin
// table, the NVMC register dump and LED duty-cycle bars, redrawn once per
// Poll call.
type Inspector struct {
	context  *imgui.Context
	io       imgui.IO
	platform *platform
	glsl     *glsl
}

// New creates the debug window. Must be called on the OS thread that will
// drive Poll, per SDL2's single-thread requirement.
func New(title string) (*Inspector, error) {
	insp := &Inspector{
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
	}

	var err error
	insp.platform, err = newPlatform(title, 900, 500, insp.io)
	if err != nil {
		insp.context.Destroy()
		return nil, err
	}

	insp.glsl, err = newGlsl(insp.io)
	if err != nil {
		insp.platform.destroy()
		insp.context.Destroy()
		return nil, err
	}

	return insp, nil
}

// Close tears down the GL renderer, the SDL2 window and the imgui context.
func (insp *Inspector) Close() {
	insp.glsl.destroy()
	insp.platform.destroy()
	insp.context.Destroy()
}

// Poll draws one frame of the inspector over b's current state and
// reports whether the window was asked to close.
func (insp *Inspector) Poll(b *board.Board) bool {
	quit := insp.platform.pollQuit()

	insp.platform.newFrame()
	imgui.NewFrame()

	imgui.Begin("GPIO")
	out, _ := b.SoC.GPIO.Read(0x504, 4)
	in, _ := b.SoC.GPIO.Read(0x510, 4)
	dir, _ := b.SoC.GPIO.Read(0x514, 4)
	imgui.Text(fmt.Sprintf("OUT     0x%08X", out))
	imgui.Text(fmt.Sprintf("IN      0x%08X", in))
	imgui.Text(fmt.Sprintf("DIR     0x%08X", dir))
	imgui.Text(fmt.Sprintf("DETECT  %v", b.SoC.GPIO.Detect()))
	imgui.End()

	imgui.Begin("NVMC")
	ready, _ := b.SoC.NVMC.Read(0x400, 4)
	imgui.Text(fmt.Sprintf("READY   %d", ready))
	imgui.Text(fmt.Sprintf("CONFIG  0x%X", b.SoC.NVMC.Config()))
	imgui.Text(fmt.Sprintf("ERASES  %d", b.SoC.NVMC.EraseCount()))
	imgui.End()

	imgui.Begin("LED matrix")
	imgui.Text(fmt.Sprintf("REFRESHES  %d", b.Matrix.RefreshCount()))
	imgui.End()

	imgui.Render()

	displaySize := insp.io.DisplaySize()
	insp.glsl.render([2]float32{displaySize.X, displaySize.Y}, imgui.CurrentDrawData())
	insp.platform.swap()

	return quit
}
