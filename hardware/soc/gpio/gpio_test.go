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

package gpio_test

import (
	"testing"

	"github.com/blinkenlabs/nrf51emu/hardware/soc/gpio"
	"github.com/blinkenlabs/nrf51emu/test"
)

const (
	offOut    = 0x504
	offIn     = 0x510
	offDir    = 0x514
	offCNF0   = 0x700
)

func writeReg(t *testing.T, g *gpio.GPIO, offset uint32, v uint32) {
	t.Helper()
	if ok := g.Write(offset, 4, v); !ok {
		t.Fatalf("write to 0x%x rejected", offset)
	}
}

func readReg(t *testing.T, g *gpio.GPIO, offset uint32) uint32 {
	t.Helper()
	v, ok := g.Read(offset, 4)
	if !ok {
		t.Fatalf("read from 0x%x rejected", offset)
	}
	return v
}

// §8: "∀ GPIO pin i: DIR.[i] == CNF[i].[0] after any sequence of register
// writes." Scenario 4 of §8.
func TestDIRCNFCoupling(t *testing.T) {
	g := gpio.New()

	writeReg(t, g, offDir, 0x00000001)
	cnf0 := readReg(t, g, offCNF0)
	if cnf0&0x1 == 0 {
		t.Errorf("expected CNF[0] bit 0 set after DIR write, got 0x%x", cnf0)
	}

	writeReg(t, g, offCNF0, 0x00000002)
	dir := readReg(t, g, offDir)
	if dir&0x1 != 0 {
		t.Errorf("expected DIR bit 0 cleared after CNF[0] write, got 0x%x", dir)
	}
}

// OUT register round-trip, per §8's round-trip list.
func TestOUTRoundTrip(t *testing.T) {
	g := gpio.New()
	writeReg(t, g, offOut, 0xABCD1234)
	test.ExpectEquality(t, readReg(t, g, offOut), uint32(0xABCD1234))
}

// CNF[i] round-trip: write(CNF[i], v) -> read(CNF[i]) == v and
// read(DIR).[i] == v & 1.
func TestCNFRoundTrip(t *testing.T) {
	g := gpio.New()
	writeReg(t, g, offCNF0+4, 0x00000305) // pin 1: output, pull-down, drive 3
	test.ExpectEquality(t, readReg(t, g, offCNF0+4), uint32(0x00000305))

	dir := readReg(t, g, offDir)
	if dir&0x2 == 0 {
		t.Errorf("expected DIR bit 1 set, got 0x%x", dir)
	}
}

// §8 scenario 5: GPIO short circuit. Externally-driven level wins for IN.
func TestShortCircuitExternalWins(t *testing.T) {
	g := gpio.New()

	// pin 0: output, input buffer enabled, no pull, drive codes 0-3
	// (always connected).
	writeReg(t, g, offCNF0, 0x00000001)
	writeReg(t, g, offOut, 0x00000001)

	in := readReg(t, g, offIn)
	if in&0x1 == 0 {
		t.Fatalf("expected self-stimulated IN bit 0 set before short, got 0x%x", in)
	}

	g.SetLine(0, 0)

	in = readReg(t, g, offIn)
	if in&0x1 != 0 {
		t.Errorf("expected externally-driven level (0) to win after short circuit, got IN=0x%x", in)
	}
}

// Reset clears OUT/DIR/IN/in_mask and sets every CNF[i] to 0x2.
func TestReset(t *testing.T) {
	g := gpio.New()
	writeReg(t, g, offOut, 0xFFFFFFFF)
	writeReg(t, g, offDir, 0xFFFFFFFF)

	g.Reset()

	test.ExpectEquality(t, readReg(t, g, offOut), uint32(0))
	test.ExpectEquality(t, readReg(t, g, offDir), uint32(0))
	test.ExpectEquality(t, readReg(t, g, offCNF0), uint32(0x00000002))
}

// recorder captures GPIOEdge calls for edge-emission assertions.
type recorder struct {
	pins   []int
	levels []int
}

func (r *recorder) GPIOEdge(pin int, level int) {
	r.pins = append(r.pins, pin)
	r.levels = append(r.levels, level)
}

// An output edge only fires when connectedness or level changes relative
// to the previous state (§4.5 point 7).
func TestEdgeOnlyFiresOnChange(t *testing.T) {
	g := gpio.New()
	r := &recorder{}
	g.OnEdge(r)

	writeReg(t, g, offCNF0, 0x00000001) // pin 0: output, driven
	n := len(r.pins)
	if n == 0 {
		t.Fatalf("expected at least one edge after enabling output")
	}

	writeReg(t, g, offOut, 0x00000000) // OUT already 0; no level change on pin 0
	if len(r.pins) != n {
		t.Errorf("expected no additional edge for an unchanged level, got %d new edges", len(r.pins)-n)
	}

	writeReg(t, g, offOut, 0x00000001) // now pin 0 rises to 1
	if len(r.pins) != n+1 {
		t.Errorf("expected exactly one additional edge, got %d", len(r.pins)-n)
	}
}

// A pin with direction=input and input buffer disabled settles to its
// pull value, per §4.5 point 5.
func TestPullSettlesWhenInputDisabled(t *testing.T) {
	g := gpio.New()
	// pin 2: input, input buffer disconnected (bit1=1), pull-up (0b11<<2)
	writeReg(t, g, offCNF0+4*2, 0x0000000E)
	in := readReg(t, g, offIn)
	if in&(1<<2) == 0 {
		t.Errorf("expected pull-up to settle IN bit 2 to 1, got 0x%x", in)
	}
}

// Supplemented DETECT/SENSE latch: Detect reports true only while some
// pin's IN level matches its configured SENSE condition.
func TestDetectFiresOnSenseHigh(t *testing.T) {
	g := gpio.New()
	// pin 0: input, input buffer enabled, no pull, SENSE=High (0b10<<16)
	writeReg(t, g, offCNF0, 0x00020000)

	test.ExpectFailure(t, g.Detect())

	g.SetLine(0, 1)
	test.ExpectSuccess(t, g.Detect())

	g.SetLine(0, 0)
	test.ExpectFailure(t, g.Detect())
}

func TestDetectFiresOnSenseLow(t *testing.T) {
	g := gpio.New()
	// pin 1: input, input buffer enabled, no pull, SENSE=Low (0b11<<16)
	writeReg(t, g, offCNF0+4, 0x00030000)

	test.ExpectSuccess(t, g.Detect()) // IN settles to 0 with no drive/pull

	g.SetLine(1, 1)
	test.ExpectFailure(t, g.Detect())
}
