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

// Package ficr implements the Factory Information Configuration Registers:
// a 256-byte, read-only fixture mapped at 0x1000_0000. It is immutable
// under every sequence of CPU writes.
package ficr

import "github.com/blinkenlabs/nrf51emu/logger"

// Size is the mapped length of the FICR window, in bytes.
const Size = 256

// word offsets of the fixture values that firmware actually inspects.
const (
	offCodePageSize = 0x010
	offCodeSize     = 0x014
	offDeviceID0    = 0x060
	offDeviceID1    = 0x064
)

// FICR holds the 64-word read-only fixture.
type FICR struct {
	words [Size / 4]uint32
}

// New returns a FICR pre-seeded with fixture values consistent with a real
// nRF51822: a fixed device ID, a 1024-byte code page size, and the number
// of flash pages implied by flashSize.
func New(flashSize int) *FICR {
	f := &FICR{}
	f.words[offCodePageSize/4] = 1024
	f.words[offCodeSize/4] = uint32(flashSize / 1024)
	f.words[offDeviceID0/4] = 0xdeadbeef
	f.words[offDeviceID1/4] = 0x00c0ffee
	return f
}

// Name implements addressspace.Region.
func (f *FICR) Name() string {
	return "ficr"
}

// AccessPolicy implements addressspace.Region. FICR is MMIO: aligned
// 4-byte accesses only.
func (f *FICR) AccessPolicy() (min, max int, alignedOnly bool) {
	return 4, 4, true
}

// Read implements addressspace.Region.
func (f *FICR) Read(offset uint32, size int) (uint32, bool) {
	i := offset / 4
	if i >= uint32(len(f.words)) {
		return 0, false
	}
	return f.words[i], true
}

// Write implements addressspace.Region. FICR ignores every write: it is
// read-only hardware.
func (f *FICR) Write(offset uint32, size int, value uint32) bool {
	i := offset / 4
	if i >= uint32(len(f.words)) {
		return false
	}
	logger.Logf("guest-error", "rejected write to read-only FICR+0x%x", offset)
	return true
}
