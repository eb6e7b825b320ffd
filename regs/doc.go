// Package regs defines the typed register interface of the chip.
//
// Each peripheral block is one interface whose setters take
// enum-constrained arguments, so only hardware-legal values can be
// written. The interfaces stand in for the vendor's auto-generated
// register map: drivers program peripherals exclusively through them and
// never touch raw addresses. The devsim package provides a behavioral
// implementation for host-side use; tests that need call-level assertions
// use generated mocks instead.
package regs
