// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
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

// Package clocks defines the nRF51822's clock-speed constants and the
// virtual microsecond clock consumed by the LED matrix.
//
// Values taken from the Nordic nRF51 Series Reference Manual.
package clocks

// MHz clock rates of the two oscillators available on the nRF51822.
const (
	HFCLK = 16.0 // high frequency clock, MHz
	LFCLK = 0.032768
)

// VirtualClock is a monotonic, microsecond-resolution counter. It models
// §5's "virtual clock... provided by the host": non-decreasing, jump-free,
// and read by the LED matrix on every GPIO edge. Real wall-clock time is
// irrelevant to the emulation; the runtime advances it in step with
// emulated CPU cycles.
type VirtualClock struct {
	us int64
}

// Now returns the current microsecond count.
func (c *VirtualClock) Now() int64 {
	return c.us
}

// Advance moves the clock forward by the given number of microseconds. It
// panics if delta is negative, since the clock is defined to be
// non-decreasing.
func (c *VirtualClock) Advance(delta int64) {
	if delta < 0 {
		panic("clocks: virtual clock cannot move backwards")
	}
	c.us += delta
}

// Set forces the clock to an absolute value.
func (c *VirtualClock) Set(us int64) {
	c.us = us
}
