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

// Package config collects the persistent, disk-backed configuration cells
// for the emulator: default SoC variant, LED matrix physical geometry, and
// ARM clock rate. This is distinct from the machine's runtime
// persisted-state snapshot (see the savestate package) — it is the user's
// settings, not the guest's memory.
package config

import (
	"github.com/blinkenlabs/nrf51emu/paths"
	"github.com/blinkenlabs/nrf51emu/prefs"
)

// Preferences collates the preference cells used by the emulator.
type Preferences struct {
	dsk *prefs.Disk

	// Variant is the default SoC variant tag ("AA", "AB" or "AC") used when
	// none is specified on the command line.
	Variant *prefs.String

	// MatrixRows and MatrixCols describe the physical LED matrix geometry
	// of the board being emulated.
	MatrixRows *prefs.Int
	MatrixCols *prefs.Int

	// ClockMHz is the ARM core clock rate, in MHz.
	ClockMHz *prefs.Float
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. It loads existing values from disk, if a preferences
// file exists.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p := &Preferences{
		Variant:    &prefs.String{},
		MatrixRows: &prefs.Int{},
		MatrixCols: &prefs.Int{},
		ClockMHz:   &prefs.Float{},
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("soc.variant", p.Variant); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("board.matrix_rows", p.MatrixRows); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("board.matrix_cols", p.MatrixCols); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("soc.clock_mhz", p.ClockMHz); err != nil {
		return nil, err
	}

	p.SetDefaults()

	if err := p.dsk.Load(); err != nil {
		if err != prefs.NoPrefsFile {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults resets every preference to the micro:bit's physical defaults.
func (p *Preferences) SetDefaults() {
	_ = p.Variant.Set("AB")
	_ = p.MatrixRows.Set(3)
	_ = p.MatrixCols.Set(9)
	_ = p.ClockMHz.Set(16.0)
}

// Save writes the current preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// String returns every preference as it would be written to disk.
func (p *Preferences) String() string {
	return p.dsk.String()
}
