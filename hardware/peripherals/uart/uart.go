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

// Package uart is a bus-attachment stub for the nRF51 UART peripheral,
// mapped at 0x4000_2000. Register-level UART behaviour is out of scope
// for this core (§1 names it an external collaborator with a narrow bus
// contract); what this package does own is the character-device back end
// that TXD/RXD bytes are shuffled through, realized with a host terminal
// via pkg/term so a real console can sit at the other end of the wire.
package uart

import (
	"io"

	"github.com/blinkenlabs/nrf51emu/logger"
	"github.com/pkg/term"
)

// Register offsets, relative to the UART's base.
const (
	offStartTX = 0x008
	offStopTX  = 0x00C
	offTXDRDY  = 0x11C
	offRXDRDY  = 0x108
	offTXD     = 0x51C
	offRXD     = 0x518
)

// Sink is the character-device back end a UART byte stream is written to
// and read from. A *term.Term (opened on a host tty) satisfies this, as
// does anything else implementing io.ReadWriter.
type Sink interface {
	io.ReadWriter
}

// UART is a minimal bus stub plus its back end.
type UART struct {
	sink Sink
	rxdy bool
}

// New returns a UART stub with no back end attached; writes are logged and
// reads return 0 until Attach is called.
func New() *UART {
	return &UART{}
}

// Attach connects the UART's TXD/RXD registers to sink.
func (u *UART) Attach(sink Sink) {
	u.sink = sink
}

// OpenTerminal opens the host tty at path in raw mode and returns it as a
// Sink suitable for Attach. Closing the returned Term is the caller's
// responsibility.
func OpenTerminal(path string) (*term.Term, error) {
	t, err := term.Open(path, term.RawMode)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Name implements addressspace.Region.
func (u *UART) Name() string {
	return "uart"
}

// AccessPolicy implements addressspace.Region.
func (u *UART) AccessPolicy() (min, max int, alignedOnly bool) {
	return 4, 4, true
}

// Read implements addressspace.Region.
func (u *UART) Read(offset uint32, size int) (uint32, bool) {
	switch offset {
	case offTXDRDY:
		return 1, true
	case offRXDRDY:
		if u.rxdy {
			return 1, true
		}
		return 0, true
	case offRXD:
		if u.sink == nil {
			return 0, true
		}
		var b [1]byte
		if _, err := u.sink.Read(b[:]); err != nil {
			return 0, true
		}
		u.rxdy = false
		return uint32(b[0]), true
	}
	return 0, false
}

// Write implements addressspace.Region.
func (u *UART) Write(offset uint32, size int, value uint32) bool {
	switch offset {
	case offStartTX, offStopTX:
		// no-op: this stub transmits a byte as soon as TXD is written
	case offTXD:
		if u.sink != nil {
			if _, err := u.sink.Write([]byte{byte(value)}); err != nil {
				logger.Logf("uart", "write to sink failed: %v", err)
			}
		}
	default:
		return false
	}
	return true
}
