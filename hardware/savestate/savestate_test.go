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

package savestate_test

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/blinkenlabs/nrf51emu/hardware/savestate"
	"github.com/blinkenlabs/nrf51emu/hardware/soc"
	"github.com/blinkenlabs/nrf51emu/hardware/soc/variant"
	"github.com/blinkenlabs/nrf51emu/test"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s, err := soc.Realize(variant.AB)
	test.ExpectSuccess(t, err)

	s.GPIO.Write(0x504, 4, 0xABCD)
	s.Write(0x10001000, 4, 0x11223344)

	snap := savestate.Capture(s)
	test.ExpectEquality(t, snap.Version, savestate.Version)

	data, err := savestate.Encode(snap)
	test.ExpectSuccess(t, err)

	restored, err := savestate.Decode(data)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, restored.GPIO.Out, uint32(0xABCD))
	test.ExpectEquality(t, restored.UICRWords[0], uint32(0x11223344))
}

func TestApplyRestoresSoCState(t *testing.T) {
	s, err := soc.Realize(variant.AB)
	test.ExpectSuccess(t, err)
	s.GPIO.Write(0x504, 4, 0x42)

	snap := savestate.Capture(s)

	s2, err := soc.Realize(variant.AB)
	test.ExpectSuccess(t, err)
	savestate.Apply(s2, snap)

	v, ok := s2.GPIO.Read(0x504, 4)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint32(0x42))
}

func TestDecodeRejectsWrongVersion(t *testing.T) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(savestate.Snapshot{Version: 999})
	test.ExpectSuccess(t, err)

	_, err = savestate.Decode(buf.Bytes())
	test.ExpectFailure(t, err)
}
