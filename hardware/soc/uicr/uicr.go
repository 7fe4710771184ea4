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

// Package uicr implements the User Information Configuration Registers: a
// 256-byte read/write window mapped at 0x1000_1000, erased to 0xFF on
// reset and by the NVMC's ERASEUICR/ERASEALL commands.
package uicr

// Size is the mapped length of the UICR window, in bytes.
const Size = 256

// UICR holds the 64-word configuration array.
type UICR struct {
	words [Size / 4]uint32
}

// New returns a UICR reset to all 0xFF, per §4.3.
func New() *UICR {
	u := &UICR{}
	u.Reset()
	return u
}

// Reset fills every word with 0xFFFF_FFFF.
func (u *UICR) Reset() {
	for i := range u.words {
		u.words[i] = 0xffffffff
	}
}

// Name implements addressspace.Region.
func (u *UICR) Name() string {
	return "uicr"
}

// AccessPolicy implements addressspace.Region. UICR is MMIO: aligned
// 4-byte accesses only.
func (u *UICR) AccessPolicy() (min, max int, alignedOnly bool) {
	return 4, 4, true
}

// Read implements addressspace.Region.
func (u *UICR) Read(offset uint32, size int) (uint32, bool) {
	i := offset / 4
	if i >= uint32(len(u.words)) {
		return 0, false
	}
	return u.words[i], true
}

// Write implements addressspace.Region.
func (u *UICR) Write(offset uint32, size int, value uint32) bool {
	i := offset / 4
	if i >= uint32(len(u.words)) {
		return false
	}
	u.words[i] = value
	return true
}

// Words returns a copy of the UICR content, for the §6 persisted-state
// envelope.
func (u *UICR) Words() [Size / 4]uint32 {
	return u.words
}

// SetWords restores the UICR content from a savestate snapshot.
func (u *UICR) SetWords(words [Size / 4]uint32) {
	u.words = words
}
