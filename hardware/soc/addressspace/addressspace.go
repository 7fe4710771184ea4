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

// Package addressspace composes the nRF51's single physical address space
// out of the regions contributed by flash, SRAM, FICR, UICR, NVMC, GPIO and
// the bus-attached peripheral stubs, and routes every CPU access to exactly
// one of them.
package addressspace

import (
	"github.com/blinkenlabs/nrf51emu/assert"
	"github.com/blinkenlabs/nrf51emu/logger"
)

// Region is implemented by everything that can be mapped into the address
// space: RAM/flash-backed storage as well as MMIO register blocks.
type Region interface {
	// Name identifies the region in logs and the memviz dump.
	Name() string

	// AccessPolicy reports the access sizes, in bytes, this region will
	// serve, and whether unaligned accesses are permitted. RAM/flash
	// regions report (1, 4, false); this SoC's MMIO regions report
	// (4, 4, true).
	AccessPolicy() (min, max int, alignedOnly bool)

	// Read and Write are passed an address already relative to the
	// region's base. ok is false when the offset falls outside the
	// region's length; callers treat that identically to an unmapped
	// access.
	Read(offset uint32, size int) (value uint32, ok bool)
	Write(offset uint32, size int, value uint32) (ok bool)
}

// entry records one region's placement in the composed address space.
type entry struct {
	name     string
	base     uint32
	length   uint32
	priority int
	region   Region
	irqLine  int
}

// AddressSpace is an ordered collection of regions, resolving each CPU
// access to the single highest-priority region covering the address. Ties
// are resolved in favour of whichever region was added first.
type AddressSpace struct {
	entries []entry

	thread assert.SingleThread
}

// New returns an empty AddressSpace.
func New() *AddressSpace {
	return &AddressSpace{}
}

// AddRegion maps region into the address space at [base, base+length),
// with the given priority. Negative priorities model fallback/stub regions
// that only win when nothing else claims the address (eg. the "peripheral
// window" catch-all at priority -1500).
func (as *AddressSpace) AddRegion(base uint32, length uint32, region Region, priority int) {
	as.entries = append(as.entries, entry{
		name:     region.Name(),
		base:     base,
		length:   length,
		priority: priority,
		region:   region,
		irqLine:  int((base >> 12) & 0x1F),
	})
}

// IRQLine returns the interrupt-controller line index derived from the
// named region's base address, per spec.md §9: "each peripheral's IRQ
// line index equals (base >> 12) & 0x1F". The CPU's interrupt controller
// itself is out of scope for this core (bus.IRQBus has no implementation
// here), but the derivation a real controller would key off of is
// available for inspection and tests without duplicating the formula.
func (as *AddressSpace) IRQLine(name string) (int, bool) {
	for _, e := range as.entries {
		if e.name == name {
			return e.irqLine, true
		}
	}
	return 0, false
}

// RemoveRegion removes the first region registered under name.
func (as *AddressSpace) RemoveRegion(name string) {
	for i, e := range as.entries {
		if e.name == name {
			as.entries = append(as.entries[:i], as.entries[i+1:]...)
			return
		}
	}
}

// resolve finds the highest-priority entry covering addr, returning its
// offset from the entry's base.
func (as *AddressSpace) resolve(addr uint32) (entry, uint32, bool) {
	var winner entry
	var winnerOffset uint32
	found := false

	for _, e := range as.entries {
		// addr-e.base, computed with uint32 wraparound, stays correct
		// even when e.base+e.length itself would overflow uint32 (the
		// CPU-private region at 0xF0000000 with a 0x10000000 length is
		// one such case: base+length wraps to 0).
		if addr-e.base >= e.length {
			continue
		}
		if !found || e.priority > winner.priority {
			winner = e
			winnerOffset = addr - e.base
			found = true
		}
	}

	return winner, winnerOffset, found
}

// Read performs a CPU read of size bytes at addr. An access to an unmapped
// address, or one that violates the winning region's access policy, is a
// guest error: it is logged and 0 is returned.
func (as *AddressSpace) Read(addr uint32, size int) uint32 {
	as.thread.Check("addressspace.Read")

	e, offset, ok := as.resolve(addr)
	if !ok {
		logger.Logf("guest-error", "read from unmapped address 0x%08x", addr)
		return 0
	}

	if !accessAllowed(e.region, addr, size) {
		logger.Logf("guest-error", "disallowed %d-byte read from %s+0x%x (0x%08x)", size, e.name, offset, addr)
		return 0
	}

	value, ok := e.region.Read(offset, size)
	if !ok {
		logger.Logf("guest-error", "out-of-range read from %s+0x%x (0x%08x)", e.name, offset, addr)
		return 0
	}

	return value
}

// Write performs a CPU write of size bytes at addr. An access to an
// unmapped address, or one that violates the winning region's access
// policy, is a guest error: it is logged and the write is ignored.
func (as *AddressSpace) Write(addr uint32, size int, value uint32) {
	as.thread.Check("addressspace.Write")

	e, offset, ok := as.resolve(addr)
	if !ok {
		logger.Logf("guest-error", "write to unmapped address 0x%08x", addr)
		return
	}

	if !accessAllowed(e.region, addr, size) {
		logger.Logf("guest-error", "disallowed %d-byte write to %s+0x%x (0x%08x)", size, e.name, offset, addr)
		return
	}

	if ok := e.region.Write(offset, size, value); !ok {
		logger.Logf("guest-error", "out-of-range write to %s+0x%x (0x%08x)", e.name, offset, addr)
	}
}

func accessAllowed(region Region, addr uint32, size int) bool {
	min, max, alignedOnly := region.AccessPolicy()
	if size < min || size > max {
		return false
	}
	if alignedOnly && addr%uint32(size) != 0 {
		return false
	}
	return true
}
