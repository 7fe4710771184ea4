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

// Package nvmc implements the non-volatile memory controller: the
// page-level erase engine for flash and UICR. Erases complete
// synchronously within the write handler; the controller is never
// reported busy.
package nvmc

import (
	"github.com/blinkenlabs/nrf51emu/errors"
	"github.com/blinkenlabs/nrf51emu/hardware/soc/flash"
	"github.com/blinkenlabs/nrf51emu/hardware/soc/uicr"
)

// Register offsets, relative to the NVMC's base at 0x4001_E000.
const (
	offReady     = 0x400
	offConfig    = 0x504
	offErasePCR1 = 0x508
	offEraseAll  = 0x50C
	offErasePCR0 = 0x510
	offEraseUICR = 0x514
)

// Ready is the constant value returned by every READY read. Erases are
// instantaneous in this model, so the controller is never busy.
const Ready = 1

// NoBacking is the curated error head returned when page_size is smaller
// than the UICR window it must be able to hold.
const NoBacking = "nvmc: page_size must be at least as large as the UICR window"

// NVMC models the controller's register window plus the page-erase
// algorithm. It holds direct references to the flash and UICR regions so
// it can mutate them through a path the ordinary CPU bus write policy
// doesn't allow.
type NVMC struct {
	flash *flash.Flash
	uicr  *uicr.UICR

	config     uint32
	pageSize   int
	codeSize   int // in pages
	eraseCount uint64

	// emptyPage is a page_size scratch buffer of 0xFF, matching the
	// source's pre-built erase pattern. It isn't mutated after
	// construction; flash.ErasePage writes the pattern directly, but the
	// buffer is kept so a future bulk-erase implementation (eg. DMA-style
	// copy) has the same source the original design specifies.
	emptyPage []byte
}

// New is the preferred method of initialisation for the NVMC type. pageSize
// must be at least as large as the UICR window (256 bytes).
func New(f *flash.Flash, u *uicr.UICR, pageSize int, codeSize int) (*NVMC, error) {
	if pageSize < uicr.Size {
		return nil, errors.Errorf(NoBacking+" (page_size=%d)", pageSize)
	}

	empty := make([]byte, pageSize)
	for i := range empty {
		empty[i] = 0xFF
	}

	return &NVMC{
		flash:     f,
		uicr:      u,
		pageSize:  pageSize,
		codeSize:  codeSize,
		emptyPage: empty,
	}, nil
}

// Name implements addressspace.Region.
func (n *NVMC) Name() string {
	return "nvmc"
}

// AccessPolicy implements addressspace.Region. The NVMC register window is
// MMIO: aligned 4-byte accesses only.
func (n *NVMC) AccessPolicy() (min, max int, alignedOnly bool) {
	return 4, 4, true
}

// Read implements addressspace.Region.
func (n *NVMC) Read(offset uint32, size int) (uint32, bool) {
	switch offset {
	case offReady:
		return Ready, true
	case offConfig:
		return n.config, true
	}
	return 0, false
}

// Write implements addressspace.Region.
func (n *NVMC) Write(offset uint32, size int, value uint32) bool {
	switch offset {
	case offConfig:
		n.config = value & 0x3
	case offErasePCR1, offErasePCR0:
		n.erasePage(value)
	case offEraseAll:
		if value == 1 {
			n.eraseAll()
		}
	case offEraseUICR:
		if value == 1 {
			n.uicr.Reset()
		}
	default:
		return false
	}
	return true
}

// Config returns the low 2 bits (write-enable, erase-enable) last written
// to CONFIG. The bits are stored only; nothing in this controller gates
// flash writes or erases on them, matching §4.4's "not enforced" note. The
// accessor exists purely so a test or the inspector UI can observe what
// firmware believes the state to be.
func (n *NVMC) Config() uint32 {
	return n.config
}

// SetConfig restores CONFIG from a savestate snapshot.
func (n *NVMC) SetConfig(v uint32) {
	n.config = v & 0x3
}

// EraseCount returns the number of page/bulk erases performed since
// construction, a soak-test counter surfaced by the diagnostics dashboard.
func (n *NVMC) EraseCount() uint64 {
	return n.eraseCount
}

// erasePage masks addr down to page_size alignment and, if the resulting
// page lies within the code region, overwrites it with 0xFF. Addresses
// beyond the code region are silently ignored.
func (n *NVMC) erasePage(addr uint32) {
	base := addr &^ uint32(n.pageSize-1)
	if int(base) >= n.codeSize*n.pageSize {
		return
	}
	n.flash.ErasePage(base, n.pageSize)
	n.eraseCount++
}

// eraseAll erases every flash page and resets UICR to all 0xFF.
func (n *NVMC) eraseAll() {
	for i := 0; i < n.codeSize; i++ {
		n.flash.ErasePage(uint32(i*n.pageSize), n.pageSize)
	}
	n.uicr.Reset()
	n.eraseCount++
}
