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

// Package soc composes the nRF51822 address space out of flash, SRAM,
// FICR, UICR, NVMC, GPIO and the peripheral stubs, and exposes it as a
// single bus.CPUBus to the CPU model.
package soc

import (
	"github.com/blinkenlabs/nrf51emu/errors"
	"github.com/blinkenlabs/nrf51emu/hardware/memory/bus"
	"github.com/blinkenlabs/nrf51emu/hardware/peripherals/rng"
	"github.com/blinkenlabs/nrf51emu/hardware/peripherals/timer"
	"github.com/blinkenlabs/nrf51emu/hardware/peripherals/uart"
	"github.com/blinkenlabs/nrf51emu/hardware/soc/addressspace"
	"github.com/blinkenlabs/nrf51emu/hardware/soc/ficr"
	"github.com/blinkenlabs/nrf51emu/hardware/soc/flash"
	"github.com/blinkenlabs/nrf51emu/hardware/soc/gpio"
	"github.com/blinkenlabs/nrf51emu/hardware/soc/nvmc"
	"github.com/blinkenlabs/nrf51emu/hardware/soc/sram"
	"github.com/blinkenlabs/nrf51emu/hardware/soc/uicr"
	"github.com/blinkenlabs/nrf51emu/hardware/soc/variant"
)

// Base addresses of the memory map named in §6.
const (
	baseFlash         = 0x00000000
	baseFICR          = 0x10000000
	baseUICR          = 0x10001000
	baseSRAM          = 0x20000000
	basePeripheral    = 0x40000000
	peripheralWindow  = 0x20000000
	baseUART          = 0x40002000
	baseTimer0        = 0x40008000
	timerStride       = 0x1000
	numTimers         = 3
	baseRNG           = 0x4000D000
	baseNVMC          = 0x4001E000
	baseGPIO          = 0x50000000
	basePrivate       = 0xF0000000
	privateWindowSize = 0x10000000
)

// fallbackPriority is the priority of the catch-all "unimplemented"
// peripheral-window region; any real peripheral registered at a normal
// priority wins the overlap.
const fallbackPriority = -1500

// NoVariant is the curated error head returned when Realize is called
// without a variant set. Matches §3's "variant must be set before
// realization or construction fails" invariant.
const NoVariant = "soc: variant must be set before realization"

// SoC aggregates every on-chip peripheral and the address space that
// composes them.
type SoC struct {
	AddressSpace *addressspace.AddressSpace

	Flash *flash.Flash
	SRAM  *sram.SRAM
	FICR  *ficr.FICR
	UICR  *uicr.UICR
	NVMC  *nvmc.NVMC
	GPIO  *gpio.GPIO

	UART    *uart.UART
	RNG     *rng.RNG
	Timers  [numTimers]*timer.Timer
}

// Realize constructs a fully wired SoC for the given variant. v must be
// one of variant.AA, variant.AB or variant.AC.
func Realize(v variant.Variant) (*SoC, error) {
	if v == "" {
		return nil, errors.Errorf(NoVariant)
	}

	ramPages, flashPages, err := variant.Lookup(v)
	if err != nil {
		return nil, err
	}

	s := &SoC{
		AddressSpace: addressspace.New(),
		Flash:        flash.New(flashPages * variant.PageSize),
		SRAM:         sram.New(ramPages * variant.PageSize),
		UICR:         uicr.New(),
		GPIO:         gpio.New(),
		UART:         uart.New(),
		RNG:          rng.New(1),
	}
	s.FICR = ficr.New(s.Flash.Size())

	s.NVMC, err = nvmc.New(s.Flash, s.UICR, variant.PageSize, flashPages)
	if err != nil {
		return nil, err
	}

	for i := range s.Timers {
		s.Timers[i] = timer.New(i)
	}

	as := s.AddressSpace
	as.AddRegion(baseFlash, uint32(s.Flash.Size()), s.Flash, 0)
	as.AddRegion(baseFICR, ficr.Size, s.FICR, 0)
	as.AddRegion(baseUICR, uicr.Size, s.UICR, 0)
	as.AddRegion(baseSRAM, uint32(s.SRAM.Size()), s.SRAM, 0)
	as.AddRegion(basePeripheral, peripheralWindow, unimplementedRegion{}, fallbackPriority)
	as.AddRegion(baseUART, 0x1000, s.UART, 0)
	for i := range s.Timers {
		as.AddRegion(uint32(baseTimer0+i*timerStride), timerStride, s.Timers[i], 0)
	}
	as.AddRegion(baseRNG, 0x1000, s.RNG, 0)
	as.AddRegion(baseNVMC, 0x1000, s.NVMC, 0)
	as.AddRegion(baseGPIO, 0x1000, s.GPIO, 0)
	as.AddRegion(basePrivate, privateWindowSize, unimplementedRegion{}, 0)

	return s, nil
}

// Read implements bus.CPUBus.
func (s *SoC) Read(address uint32, size int) (uint32, error) {
	return s.AddressSpace.Read(address, size), nil
}

// Write implements bus.CPUBus.
func (s *SoC) Write(address uint32, size int, value uint32) error {
	s.AddressSpace.Write(address, size, value)
	return nil
}

var _ bus.CPUBus = (*SoC)(nil)

// unimplementedRegion backs the fallback peripheral window and the CPU
// private region: reads return 0, writes are ignored, and nothing is
// logged since these are expected-empty regions, not guest errors.
type unimplementedRegion struct{}

func (unimplementedRegion) Name() string { return "unimplemented" }

func (unimplementedRegion) AccessPolicy() (min, max int, alignedOnly bool) {
	return 1, 4, false
}

func (unimplementedRegion) Read(offset uint32, size int) (uint32, bool) {
	return 0, true
}

func (unimplementedRegion) Write(offset uint32, size int, value uint32) bool {
	return true
}
