// Package hardware is the base package for the micro:bit/nRF51822 core.
// Its sub-packages contain the address-space composer and every
// peripheral needed to bring up an nRF51 SoC and the micro:bit board
// wired around it: flash and SRAM backing, FICR/UICR, the NVMC erase
// engine, the GPIO block and the LED matrix.
//
// The soc.SoC type is the root of the on-chip emulation; board.Board
// wraps it with the fixed micro:bit wiring (LED matrix row/column lines,
// button pull-ups). Neither owns a CPU core or a scheduler — those are
// supplied by the surrounding emulator runtime, which drives bus accesses
// against soc.SoC's bus.CPUBus implementation and advances the virtual
// clock consumed by the LED matrix.
package hardware
