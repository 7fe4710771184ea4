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

// Package variant defines the nRF51822 die variants and the RAM/flash
// capacity each one implies. A page is 1024 bytes.
package variant

import "github.com/blinkenlabs/nrf51emu/errors"

// Variant is an enumerated tag identifying the physical die in use.
type Variant string

// Supported variants. The AB variant (16KB RAM / 256KB flash) is the
// physical micro:bit v1 configuration and is the sensible default.
const (
	AA = Variant("AA")
	AB = Variant("AB")
	AC = Variant("AC")
)

// PageSize is the fixed flash/RAM page size for every nRF51822 variant.
const PageSize = 1024

// capacity describes the page count of each memory kind for a variant.
type capacity struct {
	ramPages   int
	flashPages int
}

var table = map[Variant]capacity{
	AA: {ramPages: 16, flashPages: 128},  // 16KB RAM, 128KB flash
	AB: {ramPages: 16, flashPages: 256},  // 16KB RAM, 256KB flash
	AC: {ramPages: 32, flashPages: 256},  // 32KB RAM, 256KB flash
}

// NoVariant is the curated error head returned when a variant is not
// recognised.
const NoVariant = "variant: unrecognised SoC variant"

// Lookup resolves a Variant tag to a (ram_pages, flash_pages) pair.
func Lookup(v Variant) (ramPages int, flashPages int, err error) {
	c, ok := table[v]
	if !ok {
		return 0, 0, errors.Errorf(NoVariant+" (%s)", v)
	}
	return c.ramPages, c.flashPages, nil
}

// RAMSize returns the size, in bytes, of the variant's SRAM.
func (v Variant) RAMSize() (int, error) {
	ramPages, _, err := Lookup(v)
	if err != nil {
		return 0, err
	}
	return ramPages * PageSize, nil
}

// FlashSize returns the size, in bytes, of the variant's flash.
func (v Variant) FlashSize() (int, error) {
	_, flashPages, err := Lookup(v)
	if err != nil {
		return 0, err
	}
	return flashPages * PageSize, nil
}

// FlashPages returns the number of flash pages for the variant.
func (v Variant) FlashPages() (int, error) {
	_, flashPages, err := Lookup(v)
	if err != nil {
		return 0, err
	}
	return flashPages, nil
}
