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

// Package sram implements the nRF51's SRAM region, mapped at 0x2000_0000
// and fully read/write from the CPU.
package sram

// SRAM is a plain byte-addressable store, sized from the SoC variant table
// at realization.
type SRAM struct {
	data []byte
}

// New allocates an SRAM region of the given size, in bytes.
func New(size int) *SRAM {
	return &SRAM{data: make([]byte, size)}
}

// Name implements addressspace.Region.
func (s *SRAM) Name() string {
	return "sram"
}

// AccessPolicy implements addressspace.Region. SRAM serves any access size
// up to a word.
func (s *SRAM) AccessPolicy() (min, max int, alignedOnly bool) {
	return 1, 4, false
}

// Read implements addressspace.Region.
func (s *SRAM) Read(offset uint32, size int) (uint32, bool) {
	if int(offset)+size > len(s.data) {
		return 0, false
	}
	var v uint32
	for i := 0; i < size; i++ {
		v |= uint32(s.data[int(offset)+i]) << (8 * i)
	}
	return v, true
}

// Write implements addressspace.Region.
func (s *SRAM) Write(offset uint32, size int, value uint32) bool {
	if int(offset)+size > len(s.data) {
		return false
	}
	for i := 0; i < size; i++ {
		s.data[int(offset)+i] = uint8(value >> (8 * i))
	}
	return true
}

// Size returns the size, in bytes, of the SRAM region.
func (s *SRAM) Size() int {
	return len(s.data)
}
