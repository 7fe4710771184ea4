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

package variant_test

import (
	"testing"

	"github.com/blinkenlabs/nrf51emu/hardware/soc/variant"
	"github.com/blinkenlabs/nrf51emu/test"
)

func TestLookupKnownVariants(t *testing.T) {
	for _, v := range []variant.Variant{variant.AA, variant.AB, variant.AC} {
		ramPages, flashPages, err := variant.Lookup(v)
		test.ExpectSuccess(t, err)
		if ramPages <= 0 || flashPages <= 0 {
			t.Errorf("%s: expected positive page counts, got ram=%d flash=%d", v, ramPages, flashPages)
		}
	}
}

func TestLookupUnknownVariant(t *testing.T) {
	_, _, err := variant.Lookup(variant.Variant("ZZ"))
	test.ExpectFailure(t, err)
}

func TestSizesAreWholePages(t *testing.T) {
	ramSize, err := variant.AB.RAMSize()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ramSize, 16*variant.PageSize)

	flashSize, err := variant.AB.FlashSize()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, flashSize, 256*variant.PageSize)
}
