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

package board_test

import (
	"testing"

	"github.com/blinkenlabs/nrf51emu/environment"
	"github.com/blinkenlabs/nrf51emu/hardware/board"
	"github.com/blinkenlabs/nrf51emu/hardware/clocks"
	"github.com/blinkenlabs/nrf51emu/hardware/config"
	"github.com/blinkenlabs/nrf51emu/hardware/display/ledmatrix"
	"github.com/blinkenlabs/nrf51emu/hardware/soc/variant"
	"github.com/blinkenlabs/nrf51emu/prefs"
	"github.com/blinkenlabs/nrf51emu/test"
)

type captureSurface func(boxes []ledmatrix.Box)

func (f captureSurface) Redraw(boxes []ledmatrix.Box) { f(boxes) }

// §6: "on reset, the board asserts logical 1 on GPIO input pins 17
// (Button A) and 26 (Button B) as board-level pull-ups."
func TestButtonPullUpsAssertedOnRealize(t *testing.T) {
	b, err := board.Realize(nil, variant.AB)
	test.ExpectSuccess(t, err)

	in, ok := b.SoC.GPIO.Read(0x510, 4) // IN register
	test.ExpectSuccess(t, ok)

	if in&(1<<board.PinButtonA) == 0 {
		t.Errorf("expected button A pull-up, IN=0x%x", in)
	}
	if in&(1<<board.PinButtonB) == 0 {
		t.Errorf("expected button B pull-up, IN=0x%x", in)
	}
}

// §6: "SoC GPIO outputs 4..12 drive LED-matrix col[0..8]; outputs 13..15
// drive row[0..2]." Exercised end-to-end: GPIO register writes on the
// wired pins light a logical LED in the attached matrix.
func TestGPIOOutputsWiredToMatrix(t *testing.T) {
	env := &environment.Environment{Clock: &clocks.VirtualClock{}}

	b, err := board.Realize(env, variant.AB)
	test.ExpectSuccess(t, err)

	var captured []ledmatrix.Box
	b.Matrix.Attach(captureSurface(func(boxes []ledmatrix.Box) { captured = boxes }))

	// pin 4 (col 0): output, always connected, driven low (active-low
	// column -> LED on when the row is also high).
	b.SoC.GPIO.Write(0x700+4*4, 4, 0x1)
	b.SoC.GPIO.Write(0x50C, 4, 1<<4) // OUTCLR: col0 -> 0

	// pin 13 (row 0): output, always connected, driven high.
	b.SoC.GPIO.Write(0x700+4*13, 4, 0x1)
	b.SoC.GPIO.Write(0x508, 4, 1<<13) // OUTSET: row0 -> 1

	env.Clock.Advance(1000)

	// pin 15 (row 2) rising, the strobe line for this 3x9 board, ends the
	// refresh period.
	b.SoC.GPIO.Write(0x700+4*15, 4, 0x1)
	b.SoC.GPIO.Write(0x508, 4, 1<<15)

	b.Matrix.Refresh()

	if len(captured) == 0 {
		t.Fatalf("expected at least one lit LED box")
	}
	if captured[0].Intensity == 0 {
		t.Errorf("expected LED(0,0) to have accumulated duty cycle, got intensity 0")
	}
}

func TestRealizeFailsWithoutVariant(t *testing.T) {
	_, err := board.Realize(nil, variant.Variant(""))
	test.ExpectFailure(t, err)
}

// The micro:bit's LED matrix wiring is fixed at 3x9; a configured geometry
// that disagrees with it is a config-time error, not a silent resize.
func TestRealizeRejectsMismatchedMatrixGeometry(t *testing.T) {
	rows, cols := &prefs.Int{}, &prefs.Int{}
	_ = rows.Set(5)
	_ = cols.Set(5)
	cfg := &config.Preferences{MatrixRows: rows, MatrixCols: cols}
	env := &environment.Environment{Prefs: cfg, Clock: &clocks.VirtualClock{}}

	_, err := board.Realize(env, variant.AB)
	test.ExpectFailure(t, err)
}

// The board's own default geometry (3x9) is accepted.
func TestRealizeAcceptsMatchingMatrixGeometry(t *testing.T) {
	rows, cols := &prefs.Int{}, &prefs.Int{}
	_ = rows.Set(3)
	_ = cols.Set(9)
	cfg := &config.Preferences{MatrixRows: rows, MatrixCols: cols}
	env := &environment.Environment{Prefs: cfg, Clock: &clocks.VirtualClock{}}

	_, err := board.Realize(env, variant.AB)
	test.ExpectSuccess(t, err)
}
