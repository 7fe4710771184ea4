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

package savestate

import "github.com/blinkenlabs/nrf51emu/hardware/soc"

// Capture builds a Snapshot from a realized SoC's current state.
func Capture(s *soc.SoC) Snapshot {
	return Snapshot{
		Version:    Version,
		GPIO:       s.GPIO.Snapshot(),
		UICRWords:  s.UICR.Words(),
		NVMCConfig: s.NVMC.Config(),
	}
}

// Apply restores a Snapshot onto a realized SoC. NVMC's config bits are
// restored directly; they are stored but never enforced, per §4.4, so
// restoring them is a matter of fidelity rather than correctness.
func Apply(s *soc.SoC, snap Snapshot) {
	s.GPIO.Restore(snap.GPIO)
	s.UICR.SetWords(snap.UICRWords)
	s.NVMC.SetConfig(snap.NVMCConfig)
}
