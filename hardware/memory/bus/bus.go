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

// Package bus defines the memory bus concept used by the nRF51 address
// space. For an explanation see the addressspace package documentation.
package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU. All memory regions implement this interface because they are all
// addressable from the CPU; the address-space composer also implements it
// and routes an access to whichever region currently owns the address.
//
// size is the width of the access in bytes (1, 2 or 4). Region
// implementations that only support word accesses reject other sizes as a
// guest error and behave per the region's failure semantics rather than
// returning a Go error — CPUBus itself never returns one for a
// bus-architecture reason, only for host-side faults.
type CPUBus interface {
	Read(address uint32, size int) (uint32, error)
	Write(address uint32, size int, value uint32) error
}

// DebugBus defines the meta-operations for all memory regions. Think of
// these functions as "debugging" functions: operations outside of the
// normal operation of the machine, used by an inspector or test harness to
// examine or poke state without going through the guest-visible access
// policy of Read/Write.
type DebugBus interface {
	Peek(address uint32) (uint32, error)
	Poke(address uint32, value uint32) error
}

// IRQBus is implemented by the CPU's interrupt controller. Peripherals
// raise an IRQ line by index; the index is derived from the peripheral's
// base address as (base >> 12) & 0x1F.
type IRQBus interface {
	IRQ(line int, asserted bool)
}
