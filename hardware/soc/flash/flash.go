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

// Package flash implements the RAM-backed flash region. It starts at
// 0x0000_0000 and is read-only to the CPU bus path; the NVMC mutates it
// through a privileged path that bypasses the CPU's read-only policy.
package flash

import "github.com/blinkenlabs/nrf51emu/logger"

// Flash is a plain byte-addressable store, sized from the SoC variant
// table at realization.
type Flash struct {
	data []byte
}

// New allocates a Flash region of the given size, in bytes.
func New(size int) *Flash {
	return &Flash{data: make([]byte, size)}
}

// Name implements addressspace.Region.
func (f *Flash) Name() string {
	return "flash"
}

// AccessPolicy implements addressspace.Region. Flash serves any access
// size up to a word.
func (f *Flash) AccessPolicy() (min, max int, alignedOnly bool) {
	return 1, 4, false
}

// Read implements addressspace.Region.
func (f *Flash) Read(offset uint32, size int) (uint32, bool) {
	if int(offset)+size > len(f.data) {
		return 0, false
	}
	return readLE(f.data, offset, size), true
}

// Write implements addressspace.Region. Writes arriving through the normal
// CPU bus path are always rejected: flash is only mutable via the NVMC's
// privileged write path (WriteDirect/ErasePage/EraseAll).
func (f *Flash) Write(offset uint32, size int, value uint32) bool {
	if int(offset)+size > len(f.data) {
		return false
	}
	logger.Logf("guest-error", "rejected CPU write to flash+0x%x", offset)
	return true
}

// Peek reads a single byte without going through guest-visible access
// policy. Used by an inspector or test harness.
func (f *Flash) Peek(offset uint32) (uint8, error) {
	if int(offset) >= len(f.data) {
		return 0, nil
	}
	return f.data[offset], nil
}

// Size returns the size, in bytes, of the flash region.
func (f *Flash) Size() int {
	return len(f.data)
}

// WriteDirect overwrites a single byte, bypassing the CPU read-only
// policy. Used exclusively by the NVMC.
func (f *Flash) WriteDirect(offset uint32, value uint8) {
	if int(offset) < len(f.data) {
		f.data[offset] = value
	}
}

// LoadImage copies a firmware image into flash starting at offset zero,
// the device-loader mechanism referenced in §6. It is the only way
// firmware reaches flash; there is no CPU-visible write path for it.
// Images larger than the flash region are rejected rather than truncated.
func (f *Flash) LoadImage(image []byte) bool {
	if len(image) > len(f.data) {
		logger.Logf("loader", "firmware image (%d bytes) does not fit in flash (%d bytes)", len(image), len(f.data))
		return false
	}
	copy(f.data, image)
	return true
}

// ErasePage fills the page_size bytes starting at base with 0xFF. base
// must already be page-aligned; callers (the NVMC) are responsible for
// that and for bounds-checking against code_size.
func (f *Flash) ErasePage(base uint32, pageSize int) {
	end := int(base) + pageSize
	if end > len(f.data) {
		end = len(f.data)
	}
	for i := int(base); i < end; i++ {
		f.data[i] = 0xFF
	}
}

func readLE(data []byte, offset uint32, size int) uint32 {
	var v uint32
	for i := 0; i < size; i++ {
		v |= uint32(data[int(offset)+i]) << (8 * i)
	}
	return v
}
