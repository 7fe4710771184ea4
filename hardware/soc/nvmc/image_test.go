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

package nvmc_test

import (
	"testing"

	"github.com/blinkenlabs/nrf51emu/hardware/soc/flash"
	"github.com/blinkenlabs/nrf51emu/hardware/soc/nvmc"
	"github.com/blinkenlabs/nrf51emu/hardware/soc/uicr"
	"github.com/blinkenlabs/nrf51emu/test"
)

// Two data bytes (0xDEAD) at address 0, followed by an EOF record.
const minimalHex = ":02000000DEAD73\n:00000001FF\n"

func TestDecodeIntelHexDataRecord(t *testing.T) {
	out, err := nvmc.DecodeIntelHex([]byte(minimalHex))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(out), 2)
	test.ExpectEquality(t, out[0], uint8(0xDE))
	test.ExpectEquality(t, out[1], uint8(0xAD))
}

func TestDecodeIntelHexRejectsBadChecksum(t *testing.T) {
	_, err := nvmc.DecodeIntelHex([]byte(":02000000DEAD00\n"))
	test.ExpectFailure(t, err)
}

func TestDecodeIntelHexRejectsMissingColon(t *testing.T) {
	_, err := nvmc.DecodeIntelHex([]byte("02000000DEAD33\n"))
	test.ExpectFailure(t, err)
}

func TestLoadImageDecodesHexBeforeCopying(t *testing.T) {
	f := flash.New(1024)
	n, err := nvmc.New(f, uicr.New(), 1024, 1)
	test.ExpectSuccess(t, err)

	ok := n.LoadImage([]byte(minimalHex), "HEX")
	test.ExpectSuccess(t, ok)

	v, ok := f.Read(0, 2)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint32(0xADDE))
}

func TestLoadImageCopiesBinDirectly(t *testing.T) {
	f := flash.New(1024)
	n, err := nvmc.New(f, uicr.New(), 1024, 1)
	test.ExpectSuccess(t, err)

	ok := n.LoadImage([]byte{0x01, 0x02, 0x03, 0x04}, "BIN")
	test.ExpectSuccess(t, ok)

	v, ok := f.Read(0, 4)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint32(0x04030201))
}
