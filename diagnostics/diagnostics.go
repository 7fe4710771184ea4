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

// Package diagnostics is an optional soak-test dashboard for long-running
// emulation sessions: Go runtime stats (goroutines, heap, GC pauses) served
// by statsview, plus the board's own refresh-period and erase-count
// counters logged alongside at the same cadence.
package diagnostics

import (
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/blinkenlabs/nrf51emu/hardware/board"
	"github.com/blinkenlabs/nrf51emu/logger"
)

// Dashboard serves the statsview HTTP UI and periodically logs the board's
// soak-test counters.
type Dashboard struct {
	view *statsview.Viewer
	addr string
}

// New prepares a dashboard that will listen on addr (eg. ":18066") once
// Serve is called.
func New(addr string) *Dashboard {
	return &Dashboard{
		view: statsview.New(viewer.WithAddr(addr)),
		addr: addr,
	}
}

// Serve starts the statsview HTTP server and blocks until it exits. Callers
// that want it in the background should invoke this in its own goroutine.
func (d *Dashboard) Serve() {
	logger.Logf("diagnostics", "statsview dashboard listening on %s/debug/statsview", d.addr)
	d.view.Start()
}

// WatchBoard logs b's soak-test counters every interval until stop is
// closed. Intended to run in its own goroutine alongside Serve.
func WatchBoard(b *board.Board, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			logger.Logf("diagnostics", "refreshes=%d erases=%d",
				b.Matrix.RefreshCount(), b.SoC.NVMC.EraseCount())
		}
	}
}
