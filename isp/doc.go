// Package isp illustrates the Interface Segregation principle with office
// machines.
//
// Machine bundles Print, Scan and Fax. Anything that wants to be a Machine
// must implement all three, so MachinePrinter carries two methods it has no
// business having.
//
// The fix splits the bundle into Printer, Scanner and FaxMachine. A device
// implements what it can (PlainPrinter only prints) and callers ask only for
// what they use. MultiFunctionDevice composes the small interfaces back
// together, and NewMultiFunctionDevice assembles one from separate parts.
//
// Every capability method here is a no-op: the point is the shape of the
// types, not what they do.
package isp
