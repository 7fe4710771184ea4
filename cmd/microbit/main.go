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

// Command microbit is the CLI entry point named in §6: a single machine
// selector ("microbit"), firmware loaded through the device-loader
// mechanism before the board is handed off, and a legacy -kernel path that
// is rejected with a clear diagnostic rather than silently accepted.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/blinkenlabs/nrf51emu/cartridgeloader"
	"github.com/blinkenlabs/nrf51emu/diagnostics"
	"github.com/blinkenlabs/nrf51emu/environment"
	"github.com/blinkenlabs/nrf51emu/gui/inspector"
	"github.com/blinkenlabs/nrf51emu/gui/ledsurface"
	"github.com/blinkenlabs/nrf51emu/hardware/board"
	"github.com/blinkenlabs/nrf51emu/hardware/config"
	"github.com/blinkenlabs/nrf51emu/hardware/soc/variant"
	"github.com/blinkenlabs/nrf51emu/logger"
	"github.com/blinkenlabs/nrf51emu/modalflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, output *os.File) error {
	// the outer Modes instance carries no flags of its own, only the single
	// "microbit" machine selector named in §6; each mode's own flags are
	// parsed separately, over whatever RemainingArgs() leaves, matching the
	// teacher's "myprog debugger -flag vs myprog play -flag" convention.
	var md modalflag.Modes
	md.Output = output
	md.NewArgs(args)
	md.AddSubModes("microbit")

	result, err := md.Parse()
	if err != nil {
		return err
	}
	if result == modalflag.ParseHelp {
		return nil
	}

	var mmd modalflag.Modes
	mmd.Output = output
	mmd.NewArgs(md.RemainingArgs())

	firmware := mmd.AddString("firmware", "", "firmware image to load into flash before release")
	format := mmd.AddString("format", "AUTO", "firmware format: AUTO, BIN or HEX")
	variantFlag := mmd.AddString("variant", "", "SoC variant (AA, AB, AC); defaults to the saved preference")
	kernel := mmd.AddString("kernel", "", "")
	memvizPath := mmd.AddString("memviz", "", "write the composed address-space region table to this .dot file and exit")
	display := mmd.AddBool("display", false, "open an SDL2 window showing the LED matrix")
	inspect := mmd.AddBool("inspector", false, "open the imgui debug inspector alongside the display")
	statsAddr := mmd.AddString("statsview", "", "start the statsview soak-test dashboard on this address (eg. :18066)")

	result, err = mmd.Parse()
	if err != nil {
		return err
	}
	if result == modalflag.ParseHelp {
		return nil
	}

	// the legacy cartridge-era -kernel flag is recognised only so it can be
	// rejected with a useful diagnostic; this machine has no ROM-cartridge
	// concept, firmware is loaded via -firmware into flash.
	if *kernel != "" {
		return fmt.Errorf("microbit: -kernel is not supported; use -firmware to load a flash image")
	}

	prefs, err := config.NewPreferences()
	if err != nil {
		return fmt.Errorf("microbit: %w", err)
	}

	v := variant.Variant(*variantFlag)
	if v == "" {
		v = variant.Variant(prefs.Variant.Get())
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, prefs)
	if err != nil {
		return fmt.Errorf("microbit: %w", err)
	}

	b, err := board.Realize(env, v)
	if err != nil {
		return fmt.Errorf("microbit: %w", err)
	}

	if *memvizPath != "" {
		f, err := os.Create(*memvizPath)
		if err != nil {
			return fmt.Errorf("microbit: %w", err)
		}
		defer f.Close()
		b.SoC.AddressSpace.WriteGraph(f)
		return nil
	}

	if *firmware != "" {
		if err := loadFirmware(b, *firmware, *format); err != nil {
			return fmt.Errorf("microbit: %w", err)
		}
	}

	var stop chan struct{}
	if *statsAddr != "" {
		stop = make(chan struct{})
		dash := diagnostics.New(*statsAddr)
		go dash.Serve()
		go diagnostics.WatchBoard(b, 5*time.Second, stop)
	}

	if *display {
		if err := runDisplay(b, *inspect); err != nil {
			return fmt.Errorf("microbit: %w", err)
		}
	}

	if stop != nil {
		close(stop)
	}

	return nil
}

// loadFirmware loads the image named by path through the cartridgeloader
// package and copies it into flash via the NVMC's device-loader mechanism
// (§6), decoding Intel HEX records first when the format calls for it.
func loadFirmware(b *board.Board, path, format string) error {
	ld, err := cartridgeloader.NewLoaderFromFilename(path, format)
	if err != nil {
		return err
	}
	defer ld.Close()

	if err := ld.Open(); err != nil {
		return err
	}

	if !b.SoC.NVMC.LoadImage(*ld.Data, ld.Format) {
		return fmt.Errorf("firmware image does not fit in flash")
	}

	logger.Logf("microbit", "firmware %q loaded (%s, %d bytes)", ld.Name, ld.Format, len(*ld.Data))
	return nil
}

// runDisplay opens the LED-matrix display (and, if requested, the debug
// inspector) and polls both until a window is closed. There is no CPU core
// wired in yet, so there is nothing else driving GPIO edges; this loop
// exists to exercise the display pipeline end-to-end against whatever
// state Realize and loadFirmware produced.
func runDisplay(b *board.Board, withInspector bool) error {
	surface, err := ledsurface.New("microbit", 3, 9)
	if err != nil {
		return err
	}
	defer surface.Close()
	b.Matrix.Attach(surface)

	var insp *inspector.Inspector
	if withInspector {
		insp, err = inspector.New("microbit inspector")
		if err != nil {
			return err
		}
		defer insp.Close()
	}

	for {
		if surface.PollQuit() {
			return nil
		}
		if insp != nil && insp.Poll(b) {
			return nil
		}
		b.Matrix.Refresh()
		time.Sleep(16 * time.Millisecond)
	}
}
