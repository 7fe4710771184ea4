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

// Package gpio implements the nRF51's 32-pin GPIO block: per-pin direction,
// input buffer, pull and drive configuration, short-circuit detection, and
// the output edges that cross the board boundary to drive external devices
// such as the LED matrix.
package gpio

import "github.com/blinkenlabs/nrf51emu/logger"

// NumPins is the number of GPIO pins modeled.
const NumPins = 32

// Register offsets, relative to the GPIO's base at 0x5000_0000.
const (
	offOut    = 0x504
	offOutSet = 0x508
	offOutClr = 0x50C
	offIn     = 0x510
	offDir    = 0x514
	offDirSet = 0x518
	offDirClr = 0x51C
	offCNF0   = 0x700
)

// CNF field masks.
const (
	cnfDir           = 0x1
	cnfInputDisabled = 0x2
	cnfPullShift     = 2
	cnfPullMask      = 0x3
	cnfDriveShift    = 8
	cnfDriveMask     = 0x7
	cnfSenseShift    = 16
	cnfSenseMask     = 0x3
)

// Pull field values, matching the real PIN_CNF.PULL encoding.
const (
	pullDisabled = 0
	pullDown     = 1
	pullUp       = 3
)

// Sense field values (supplemented: the real PIN_CNF.SENSE field, not
// named in the distilled register map but part of the same CNF word).
const (
	senseDisabled = 0
	senseHigh     = 2
	senseLow      = 3
)

// HiZ is the "disconnected" output level delivered to an edge listener
// when a pin is not internally driving.
const HiZ = -1

// EdgeListener receives output edges from the GPIO block: level is 0, 1 or
// HiZ. Board wiring implements this to route SoC outputs to the LED matrix
// and to nothing else, since the micro:bit board has no other consumer of
// GPIO output edges in this core.
type EdgeListener interface {
	GPIOEdge(pin int, level int)
}

// GPIO is the 32-pin I/O block.
type GPIO struct {
	cnf [NumPins]uint32

	out    uint32
	dir    uint32
	in     uint32
	inMask uint32 // which pins are externally driven
	extVal uint32 // externally-driven value, meaningful only where inMask is set

	oldOut          uint32
	oldOutConnected uint32

	listener EdgeListener
}

// New returns a GPIO block in its reset state.
func New() *GPIO {
	g := &GPIO{}
	g.Reset()
	return g
}

// OnEdge registers the listener that receives output edges. Only one
// listener is supported; the microbit board is the only consumer.
func (g *GPIO) OnEdge(listener EdgeListener) {
	g.listener = listener
}

// Reset clears OUT, DIR, IN and in_mask, and sets every CNF[i] to
// 0x0000_0002 (input, input-buffer disconnected), per §4.5.
func (g *GPIO) Reset() {
	g.out = 0
	g.dir = 0
	g.in = 0
	g.inMask = 0
	g.extVal = 0
	g.oldOut = 0
	g.oldOutConnected = 0
	for i := range g.cnf {
		g.cnf[i] = cnfInputDisabled
	}
	g.recomputeAll()
}

// Name implements addressspace.Region.
func (g *GPIO) Name() string {
	return "gpio"
}

// AccessPolicy implements addressspace.Region. The GPIO register window is
// MMIO: aligned 4-byte accesses only.
func (g *GPIO) AccessPolicy() (min, max int, alignedOnly bool) {
	return 4, 4, true
}

// Read implements addressspace.Region.
func (g *GPIO) Read(offset uint32, size int) (uint32, bool) {
	switch {
	case offset == offOut || offset == offOutSet || offset == offOutClr:
		return g.out, true
	case offset == offIn:
		return g.in, true
	case offset == offDir || offset == offDirSet || offset == offDirClr:
		return g.dir, true
	case offset >= offCNF0 && offset < offCNF0+4*NumPins && (offset-offCNF0)%4 == 0:
		i := (offset - offCNF0) / 4
		return g.cnf[i], true
	}
	return 0, false
}

// Write implements addressspace.Region.
func (g *GPIO) Write(offset uint32, size int, value uint32) bool {
	switch {
	case offset == offOut:
		g.out = value
	case offset == offOutSet:
		g.out |= value
	case offset == offOutClr:
		g.out &^= value
	case offset == offDir:
		g.dir = value
		g.syncCNFFromDIR()
	case offset == offDirSet:
		g.dir |= value
		g.syncCNFFromDIR()
	case offset == offDirClr:
		g.dir &^= value
		g.syncCNFFromDIR()
	case offset >= offCNF0 && offset < offCNF0+4*NumPins && (offset-offCNF0)%4 == 0:
		i := (offset - offCNF0) / 4
		g.cnf[i] = value
		g.syncDIRFromCNF(int(i))
	default:
		return false
	}

	g.recomputeAll()
	return true
}

// syncCNFFromDIR re-derives bit 0 of every CNF[i] from DIR, maintaining
// the invariant that DIR and the CNF direction bits are two views onto a
// single piece of state.
func (g *GPIO) syncCNFFromDIR() {
	for i := 0; i < NumPins; i++ {
		if g.dir&(1<<uint(i)) != 0 {
			g.cnf[i] |= cnfDir
		} else {
			g.cnf[i] &^= cnfDir
		}
	}
}

// syncDIRFromCNF re-derives bit i of DIR from bit 0 of CNF[i].
func (g *GPIO) syncDIRFromCNF(i int) {
	if g.cnf[i]&cnfDir != 0 {
		g.dir |= 1 << uint(i)
	} else {
		g.dir &^= 1 << uint(i)
	}
}

// SetLine delivers external input to pin i. value >= 0 marks the pin
// externally driven with value > 0 ? 1 : 0; value < 0 releases it.
func (g *GPIO) SetLine(i int, value int) {
	bit := uint32(1) << uint(i)
	if value >= 0 {
		g.inMask |= bit
		if value > 0 {
			g.extVal |= bit
		} else {
			g.extVal &^= bit
		}
	} else {
		g.inMask &^= bit
	}
	g.recomputeAll()
}

// isConnected implements §4.5 point 2. drive is a 3-bit field and so
// cannot exceed 7; every code is handled explicitly and the default branch
// below is unreachable, but is kept for safety rather than relying on that
// being obvious at every call site.
func isConnected(drive uint32, out uint32) bool {
	switch drive {
	case 0, 1, 2, 3:
		return true
	case 4, 5:
		return out == 1
	case 6, 7:
		return out == 0
	default:
		return false
	}
}

func pullSettle(pull uint32, current uint32) uint32 {
	switch pull {
	case pullDown:
		return 0
	case pullUp:
		return 1
	default:
		return current
	}
}

// recomputeAll re-derives every pin's IN bit and drive state, per §4.5,
// and emits output edges for whichever pins changed.
func (g *GPIO) recomputeAll() {
	var newIn uint32
	var newOldOut, newOldOutConnected uint32

	for i := 0; i < NumPins; i++ {
		bit := uint32(1) << uint(i)

		cnf := g.cnf[i]
		pull := (cnf >> cnfPullShift) & cnfPullMask
		dirBit := cnf & cnfDir
		inputEnabled := cnf&cnfInputDisabled == 0
		outBit := (g.out >> uint(i)) & 1
		externallyDriven := g.inMask&bit != 0
		drive := (cnf >> cnfDriveShift) & cnfDriveMask

		driveConnected := isConnected(drive, outBit)
		internallyDriving := driveConnected && dirBit != 0

		if internallyDriving && externallyDriven {
			logger.Logf("guest-error", "GPIO short circuit on pin %d", i)
		}

		var inBit uint32
		switch {
		case externallyDriven:
			if g.extVal&bit != 0 {
				inBit = 1
			}
		case internallyDriving && inputEnabled:
			inBit = outBit
		default:
			inBit = pullSettle(pull, (g.in>>uint(i))&1)
		}
		if inBit != 0 {
			newIn |= bit
		}

		level := HiZ
		if internallyDriving {
			level = int(outBit)
		}

		oldConnected := g.oldOutConnected&bit != 0
		oldLevel := HiZ
		if oldConnected {
			oldLevel = int((g.oldOut >> uint(i)) & 1)
		}

		if internallyDriving != oldConnected || (internallyDriving && level != oldLevel) {
			if g.listener != nil {
				g.listener.GPIOEdge(i, level)
			}
		}

		if internallyDriving {
			newOldOutConnected |= bit
			if outBit != 0 {
				newOldOut |= bit
			}
		}
	}

	g.in = newIn
	g.oldOut = newOldOut
	g.oldOutConnected = newOldOutConnected
}

// Detect implements the supplemented per-pin DETECT/SENSE latch: it
// reports whether any pin's SENSE field is configured and its current IN
// level matches the configured condition. Unlike the real nRF51 this is
// recomputed live rather than latched until cleared, since nothing in this
// core's scope needs the latch-and-clear sequence.
func (g *GPIO) Detect() bool {
	for i := 0; i < NumPins; i++ {
		sense := (g.cnf[i] >> cnfSenseShift) & cnfSenseMask
		if sense == senseDisabled {
			continue
		}
		in := (g.in >> uint(i)) & 1
		if (sense == senseHigh && in == 1) || (sense == senseLow && in == 0) {
			return true
		}
	}
	return false
}

// State is the §6 persisted-state envelope for the GPIO block.
type State struct {
	Out             uint32
	In              uint32
	InMask          uint32
	Dir             uint32
	CNF             [NumPins]uint32
	OldOut          uint32
	OldOutConnected uint32
}

// Snapshot returns a value copy of the GPIO's persisted state.
func (g *GPIO) Snapshot() State {
	return State{
		Out:             g.out,
		In:              g.in,
		InMask:          g.inMask,
		Dir:             g.dir,
		CNF:             g.cnf,
		OldOut:          g.oldOut,
		OldOutConnected: g.oldOutConnected,
	}
}

// Restore applies a previously captured State, recomputing derived pin
// state from it.
func (g *GPIO) Restore(s State) {
	g.out = s.Out
	g.in = s.In
	g.inMask = s.InMask
	g.extVal = s.In & s.InMask
	g.dir = s.Dir
	g.cnf = s.CNF
	g.oldOut = s.OldOut
	g.oldOutConnected = s.OldOutConnected
	g.recomputeAll()
}
