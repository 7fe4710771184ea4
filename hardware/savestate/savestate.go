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

// Package savestate encodes and decodes the §6 persisted-state envelope:
// GPIO's pin state and NVMC's UICR content and config bits, tagged with a
// version number so a future format change can be detected on load.
package savestate

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/blinkenlabs/nrf51emu/hardware/soc/gpio"
)

// Version is the persisted-state format tag. It is bumped whenever the
// Snapshot field layout changes in a way that breaks old saves.
const Version = 1

// Snapshot is the complete persisted state of a realized board, as named
// in §6: GPIO's register state plus NVMC's UICR content and config.
type Snapshot struct {
	Version int

	GPIO gpio.State

	UICRWords [64]uint32
	NVMCConfig uint32
}

// Encode serializes a Snapshot using encoding/gob, the same serialization
// family the wider emulator uses for its own session state.
func Encode(s Snapshot) ([]byte, error) {
	s.Version = Version

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, fmt.Errorf("savestate: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode deserializes a Snapshot previously produced by Encode and checks
// its version tag.
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("savestate: %w", err)
	}
	if s.Version != Version {
		return Snapshot{}, fmt.Errorf("savestate: unsupported version %d (want %d)", s.Version, Version)
	}
	return s, nil
}
