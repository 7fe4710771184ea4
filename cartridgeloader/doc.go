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

// Package cartridgeloader loads a firmware image so that it can be copied
// into flash before the CPU is released (§6's device-loader mechanism).
//
// # File formats
//
// The file extension decides the image format unless overridden: ".hex"
// selects Intel HEX, anything else (including ".bin") is treated as a flat
// binary blob copied into flash at offset zero.
//
// # Hashes
//
// Creating a Loader with NewLoaderFromFilename or NewLoaderFromData also
// computes a SHA1 and MD5 hash of the image, checked for consistency
// against any expected hash set before Open is called.
package cartridgeloader
