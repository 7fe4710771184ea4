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

// Package timer is a bus-attachment stub for the nRF51 TIMER peripherals.
// The three TIMER instances (mapped at 0x4000_8000 + n*0x1000) are out of
// scope for this core beyond responding on the bus so that firmware
// probing the peripheral window doesn't trip an unmapped-access trace;
// register semantics are an external contract.
package timer

import "github.com/blinkenlabs/nrf51emu/logger"

// Timer is a minimal bus stub: it accepts any aligned word access to its
// window and logs what firmware asked of it, without modeling the
// peripheral's actual counting/compare behaviour.
type Timer struct {
	index int
	regs  [0x1000 / 4]uint32
}

// New returns a stub for TIMER instance index (0, 1 or 2).
func New(index int) *Timer {
	return &Timer{index: index}
}

// Name implements addressspace.Region.
func (t *Timer) Name() string {
	return "timer"
}

// AccessPolicy implements addressspace.Region.
func (t *Timer) AccessPolicy() (min, max int, alignedOnly bool) {
	return 4, 4, true
}

// Read implements addressspace.Region.
func (t *Timer) Read(offset uint32, size int) (uint32, bool) {
	i := offset / 4
	if i >= uint32(len(t.regs)) {
		return 0, false
	}
	return t.regs[i], true
}

// Write implements addressspace.Region.
func (t *Timer) Write(offset uint32, size int, value uint32) bool {
	i := offset / 4
	if i >= uint32(len(t.regs)) {
		return false
	}
	t.regs[i] = value
	logger.Logf("timer", "TIMER%d register 0x%x written with 0x%08x (stub)", t.index, offset, value)
	return true
}
