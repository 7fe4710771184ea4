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

package main

import (
	"os"
	"strings"
	"testing"

	"github.com/blinkenlabs/nrf51emu/test"
)

// §6: "a legacy -kernel path is rejected with a clear diagnostic."
func TestKernelFlagRejected(t *testing.T) {
	err := run([]string{"microbit", "-kernel", "firmware.bin"}, os.Stdout)
	test.ExpectFailure(t, err)
	if !strings.Contains(err.Error(), "-kernel") {
		t.Errorf("expected diagnostic to name -kernel, got: %v", err)
	}
}

func TestHelpRequestedReturnsNoError(t *testing.T) {
	err := run([]string{"-help"}, os.Stdout)
	test.ExpectSuccess(t, err)
}

func TestUnknownFlagRejected(t *testing.T) {
	err := run([]string{"-nosuchflag"}, os.Stdout)
	test.ExpectFailure(t, err)
}
