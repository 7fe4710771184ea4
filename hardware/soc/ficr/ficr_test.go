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

package ficr_test

import (
	"testing"

	"github.com/blinkenlabs/nrf51emu/hardware/soc/ficr"
	"github.com/blinkenlabs/nrf51emu/test"
)

func TestCodeSizeReflectsFlashSize(t *testing.T) {
	f := ficr.New(256 * 1024)

	v, ok := f.Read(0x014, 4)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint32(256))
}

func TestDeviceIDIsFixed(t *testing.T) {
	f := ficr.New(256 * 1024)

	v, ok := f.Read(0x060, 4)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint32(0xdeadbeef))

	v, ok = f.Read(0x064, 4)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint32(0x00c0ffee))
}

func TestWriteIsIgnoredNotFaulted(t *testing.T) {
	f := ficr.New(256 * 1024)

	before, _ := f.Read(0x060, 4)
	ok := f.Write(0x060, 4, 0)
	test.ExpectSuccess(t, ok)

	after, _ := f.Read(0x060, 4)
	test.ExpectEquality(t, after, before)
}

func TestOutOfBoundsReadIsRejected(t *testing.T) {
	f := ficr.New(256 * 1024)
	_, ok := f.Read(ficr.Size, 4)
	test.ExpectFailure(t, ok)
}
