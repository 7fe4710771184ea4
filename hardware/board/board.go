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

// Package board wires a realized SoC to the micro:bit's fixed hardware:
// the LED matrix's row/column drive lines and the two push-button
// pull-ups. Nothing here is configurable; the wiring is the board.
package board

import (
	"github.com/blinkenlabs/nrf51emu/environment"
	"github.com/blinkenlabs/nrf51emu/errors"
	"github.com/blinkenlabs/nrf51emu/hardware/display/ledmatrix"
	"github.com/blinkenlabs/nrf51emu/hardware/soc"
	"github.com/blinkenlabs/nrf51emu/hardware/soc/variant"
)

// BadMatrixGeometry is the curated error head returned when the configured
// LED matrix geometry preference doesn't match the board's fixed physical
// wiring.
const BadMatrixGeometry = "board: configured matrix geometry does not match fixed board wiring"

// GPIO pins the LED matrix is wired to, per §6.
const (
	pinCol0 = 4
	pinCol8 = 12
	pinRow0 = 13
	pinRow2 = 15
)

// Button input pins, pulled high at reset by the board (active-low
// buttons: pressed reads as 0, the firmware drives the transition).
const (
	PinButtonA = 17
	PinButtonB = 26
)

// matrixCoords is the micro:bit's 3x9 physical LED layout: row-major, two
// ints per cell (x, y), -1 for unpopulated intersections. Grounded on the
// board's well known 25-LED 5x5 logical grid multiplexed over a 3x9
// physical matrix.
var matrixCoords = []int{
	0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 4, 1, 4, 2, 4, 3, 4, 4,
	3, 0, 2, 0, 1, 0, 0, 1, 0, 2, 0, 3, 0, 4, 1, 4, 2, 4,
	-1, -1, -1, -1, 2, 1, 2, 2, 2, 3, -1, -1, -1, -1, -1, -1, -1, -1,
}

// Board couples the SoC with the LED matrix and routes GPIO output edges
// between the two.
type Board struct {
	SoC    *soc.SoC
	Matrix *ledmatrix.Matrix
}

// Realize builds a SoC for the given variant and wires it to a fresh LED
// matrix and the board's button pull-ups.
func Realize(env *environment.Environment, v variant.Variant) (*Board, error) {
	s, err := soc.Realize(v)
	if err != nil {
		return nil, err
	}

	// rows/cols are fixed by matrixCoords, the micro:bit's one physical
	// LED layout ("nothing here is configurable; the wiring is the
	// board" above). board.matrix_rows/board.matrix_cols is a
	// config-time sanity check on that fact, not a way to resize it:
	// a mismatch means a stale or hand-edited prefs file, not a
	// different supported geometry.
	rows := 3
	cols := 9
	strobeRow := true
	if env != nil && env.Prefs != nil {
		if prows := env.Prefs.MatrixRows.Get(); prows != rows {
			return nil, errors.Errorf(BadMatrixGeometry+" (rows: configured %d, board wiring is %d)", prows, rows)
		}
		if pcols := env.Prefs.MatrixCols.Get(); pcols != cols {
			return nil, errors.Errorf(BadMatrixGeometry+" (cols: configured %d, board wiring is %d)", pcols, cols)
		}
	}

	m, err := ledmatrix.New(rows, cols, matrixCoords, strobeRow)
	if err != nil {
		return nil, err
	}
	if env != nil {
		m.SetClock(env.Clock)
	}

	b := &Board{SoC: s, Matrix: m}
	s.GPIO.OnEdge(b)

	s.GPIO.SetLine(PinButtonA, 1)
	s.GPIO.SetLine(PinButtonB, 1)

	return b, nil
}

// GPIOEdge implements gpio.EdgeListener, routing SoC GPIO outputs 4..12 to
// the matrix's column lines and 13..15 to its row lines.
func (b *Board) GPIOEdge(pin int, level int) {
	switch {
	case pin >= pinCol0 && pin <= pinCol8:
		b.Matrix.ColEdge(pin-pinCol0, level)
	case pin >= pinRow0 && pin <= pinRow2:
		b.Matrix.RowEdge(pin-pinRow0, level)
	}
}
