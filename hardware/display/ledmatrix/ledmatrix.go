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

// Package ledmatrix models the LED matrix demultiplexer wired to the
// SoC's scanned row/column GPIO outputs. It integrates duty cycle over
// a refresh period rather than modeling instantaneous brightness.
package ledmatrix

import (
	"github.com/blinkenlabs/nrf51emu/assert"
	"github.com/blinkenlabs/nrf51emu/errors"
	"github.com/blinkenlabs/nrf51emu/hardware/clocks"
)

// NoBacking is the curated error head returned when construction is given
// dimensions or a coordinate table that can't describe a matrix.
const NoBacking = "ledmatrix: invalid matrix geometry"

// Surface receives redraw requests once a refresh period completes. Box is
// a single lit-LED rectangle in the §4.6 "5x10 pixel box" layout; the
// surface is responsible for clearing, drawing every box and presenting.
type Surface interface {
	Redraw(boxes []Box)
}

// Box is one LED's drawable rectangle, already placed at its physical
// pixel position, with an intensity computed from duty-cycle integration.
type Box struct {
	X, Y      int
	Intensity uint8
}

const (
	boxWidth  = 5
	boxHeight = 10
	boxStepX  = 10
	boxStepY  = 20
)

// Matrix is the LED matrix device. Rows and cols GPIO edges arrive through
// RowEdge/ColEdge; the board wiring is responsible for routing SoC GPIO
// output edges to those calls.
type Matrix struct {
	clock *clocks.VirtualClock

	rows int
	cols int

	// coords holds, for each (row, col), the physical (x, y) pixel
	// position, or (-1, -1) if the intersection has no LED.
	coords []int

	strobeRow bool

	row uint64
	col uint64

	timestamp          int64
	workingDC          []int64
	frameDC            []int64
	regenerationStart  int64
	regenerationPeriod int64
	redraw             bool

	refreshCount uint64

	surface Surface

	thread assert.SingleThread
}

// New constructs a Matrix with the given dimensions and coordinate table.
// coords must have length 2*rows*cols, laid out as consecutive (x, y)
// pairs indexed by row*cols+col. strobeRow selects whether the scan's
// terminal edge is the last row (true) or last column (false).
func New(rows, cols int, coords []int, strobeRow bool) (*Matrix, error) {
	if rows < 1 || rows > 64 || cols < 1 || cols > 64 {
		return nil, errors.Errorf(NoBacking+" (rows=%d cols=%d)", rows, cols)
	}
	if len(coords) != 2*rows*cols {
		return nil, errors.Errorf(NoBacking+" (coords length %d, want %d)", len(coords), 2*rows*cols)
	}

	m := &Matrix{
		rows:      rows,
		cols:      cols,
		coords:    coords,
		strobeRow: strobeRow,
		workingDC: make([]int64, rows*cols),
		frameDC:   make([]int64, rows*cols),
	}
	return m, nil
}

// Attach registers the surface that receives redraw requests.
func (m *Matrix) Attach(surface Surface) {
	m.surface = surface
}

// SetClock installs the virtual clock read on every edge. Must be called
// before the first RowEdge/ColEdge.
func (m *Matrix) SetClock(clock *clocks.VirtualClock) {
	m.clock = clock
}

// RowEdge delivers a new level for row line x (0/1; hi-Z is treated as no
// change and ignored, since the matrix only cares about driven levels).
func (m *Matrix) RowEdge(x int, level int) {
	if level < 0 {
		return
	}
	m.edge(x, level, true)
}

// ColEdge delivers a new level for column line y.
func (m *Matrix) ColEdge(y int, level int) {
	if level < 0 {
		return
	}
	m.edge(y, level, false)
}

func (m *Matrix) edge(line int, level int, isRow bool) {
	m.thread.Check("ledmatrix.edge")

	now := m.clock.Now()
	delta := now - m.timestamp
	m.timestamp = now

	m.integrate(delta)

	bit := uint64(1) << uint(line)
	rising := false
	if isRow {
		rising = level == 1 && m.row&bit == 0
		if level != 0 {
			m.row |= bit
		} else {
			m.row &^= bit
		}
	} else {
		rising = level == 1 && m.col&bit == 0
		if level != 0 {
			m.col |= bit
		} else {
			m.col &^= bit
		}
	}

	strobe := (isRow && m.strobeRow && line == m.rows-1) ||
		(!isRow && !m.strobeRow && line == m.cols-1)

	if strobe && rising {
		copy(m.frameDC, m.workingDC)
		for i := range m.workingDC {
			m.workingDC[i] = 0
		}
		m.regenerationPeriod = now - m.regenerationStart
		m.regenerationStart = now
		m.redraw = true
	}
}

// integrate adds delta microseconds to every LED that was on during the
// interval that just elapsed, per §4.6 step 2. LED (x, y) is on iff
// row[x]==1 and col[y]==0 (active-low column drive).
func (m *Matrix) integrate(delta int64) {
	if delta <= 0 {
		return
	}
	for x := 0; x < m.rows; x++ {
		if m.row&(1<<uint(x)) == 0 {
			continue
		}
		for y := 0; y < m.cols; y++ {
			if m.col&(1<<uint(y)) != 0 {
				continue
			}
			m.workingDC[x*m.cols+y] += delta
		}
	}
}

// Refresh issues a redraw to the attached surface if a refresh period has
// completed since the last call, per §4.6's display-refresh algorithm.
func (m *Matrix) Refresh() {
	if !m.redraw {
		return
	}
	m.redraw = false

	if m.surface == nil || m.regenerationPeriod <= 0 {
		return
	}

	amplitude := m.cols
	if m.strobeRow {
		amplitude = m.rows
	}

	var boxes []Box
	for x := 0; x < m.rows; x++ {
		for y := 0; y < m.cols; y++ {
			i := x*m.cols + y
			if m.coords[2*i] < 0 {
				continue
			}

			red := m.frameDC[i] * 256 * int64(amplitude) / m.regenerationPeriod
			if red < 0 {
				red = 0
			} else if red > 255 {
				red = 255
			}

			boxes = append(boxes, Box{
				X:         m.coords[2*i] * boxStepX,
				Y:         m.coords[2*i+1] * boxStepY,
				Intensity: uint8(red),
			})
		}
	}

	m.refreshCount++
	m.surface.Redraw(boxes)
}

// RefreshCount returns the number of completed refresh periods that have
// produced a redraw, a soak-test counter surfaced by the diagnostics
// dashboard.
func (m *Matrix) RefreshCount() uint64 {
	return m.refreshCount
}

// BoxSize returns the pixel dimensions of a single LED's drawable box.
func BoxSize() (width, height int) {
	return boxWidth, boxHeight
}
