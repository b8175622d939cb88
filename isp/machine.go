// SPDX-License-Identifier: MIT
// Package: solid/isp
//
// machine.go — the fat Machine interface and its segregated replacement.

package isp

// Document is what machines operate on.
type Document struct{}

// Machine is the fat interface: every implementer must print, scan and fax.
type Machine interface {
	Print(doc *Document)
	Scan(doc *Document)
	Fax(doc *Document)
}

// MachinePrinter satisfies Machine, including capabilities it does not need.
type MachinePrinter struct{}

// Print does nothing.
func (MachinePrinter) Print(*Document) {}

// Scan does nothing.
func (MachinePrinter) Scan(*Document) {}

// Fax does nothing.
func (MachinePrinter) Fax(*Document) {}

// Printer prints documents.
type Printer interface {
	Print(doc *Document)
}

// Scanner scans documents.
type Scanner interface {
	Scan(doc *Document)
}

// FaxMachine faxes documents.
type FaxMachine interface {
	Fax(doc *Document)
}

// SegregatedPrinter implements each small interface independently.
type SegregatedPrinter struct{}

// Print does nothing.
func (SegregatedPrinter) Print(*Document) {}

// Scan does nothing.
func (SegregatedPrinter) Scan(*Document) {}

// Fax does nothing.
func (SegregatedPrinter) Fax(*Document) {}

// PlainPrinter can only print, which Machine could not express.
type PlainPrinter struct{}

// Print does nothing.
func (PlainPrinter) Print(*Document) {}

// MultiFunctionDevice is composed from the small interfaces.
type MultiFunctionDevice interface {
	Printer
	Scanner
	FaxMachine
}

type multiFunctionDevice struct {
	Printer
	Scanner
	FaxMachine
}

// NewMultiFunctionDevice builds a device that delegates each capability to
// the given part. Panics if any part is nil.
func NewMultiFunctionDevice(p Printer, s Scanner, f FaxMachine) MultiFunctionDevice {
	if p == nil || s == nil || f == nil {
		panic("isp: NewMultiFunctionDevice with nil part")
	}
	return multiFunctionDevice{Printer: p, Scanner: s, FaxMachine: f}
}

// Capabilities lists which of print, scan and fax v supports, in that order.
func Capabilities(v any) []string {
	var caps []string
	if _, ok := v.(Printer); ok {
		caps = append(caps, "print")
	}
	if _, ok := v.(Scanner); ok {
		caps = append(caps, "scan")
	}
	if _, ok := v.(FaxMachine); ok {
		caps = append(caps, "fax")
	}
	return caps
}

var (
	_ Machine             = MachinePrinter{}
	_ Printer             = SegregatedPrinter{}
	_ Scanner             = SegregatedPrinter{}
	_ FaxMachine          = SegregatedPrinter{}
	_ Printer             = PlainPrinter{}
	_ MultiFunctionDevice = SegregatedPrinter{}
)
