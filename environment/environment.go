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

package environment

import (
	"github.com/blinkenlabs/nrf51emu/hardware/clocks"
	"github.com/blinkenlabs/nrf51emu/hardware/config"
)

// Label is used to name the environment
type Label string

// MainEmulation is the label used for the main emulation
const MainEmulation = Label("main")

// Environment is used to provide context for an emulation. Particularly
// useful when running more than one machine instance (eg. a headless soak
// test alongside an interactive one).
type Environment struct {
	// label distinguishes between different types of emulation (soak test, etc.)
	Label Label

	// the emulation preferences: default SoC variant, LED matrix geometry,
	// clock rate
	Prefs *config.Preferences

	// the virtual microsecond clock read by the LED matrix on every GPIO
	// edge and advanced once per emulated step by the runtime
	Clock *clocks.VirtualClock
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// Prefs can be nil. If so a new instance of the system wide preferences
// will be created.
func NewEnvironment(label Label, prefs *config.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
		Prefs: prefs,
		Clock: &clocks.VirtualClock{},
	}

	if prefs == nil {
		var err error
		env.Prefs, err = config.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	return env, nil
}

// IsEmulation checks the emulation label and returns true if it matches
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging returns true if environment is permitted to create new log entries
func (env *Environment) AllowLogging() bool {
	return env.IsEmulation(MainEmulation)
}
