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

// Package paths resolves the on-disk location of configuration and resource
// files used by the emulator.
package paths

import "path/filepath"

// baseDir is the directory, relative to the user's home directory, under
// which all resource files are stored.
const baseDir = ".microbit-nrf51"

// ResourcePath returns the path of a resource, joining the base resource
// directory with the supplied subPath and file. Either argument may be the
// empty string.
func ResourcePath(subPath string, file string) (string, error) {
	p := baseDir
	if subPath != "" {
		p = filepath.Join(p, subPath)
	}
	if file != "" {
		p = filepath.Join(p, file)
	}
	return p, nil
}
