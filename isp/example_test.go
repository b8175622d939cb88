package isp_test

import (
	"fmt"

	"github.com/katalvlaran/solid/isp"
)

// ExampleCapabilities lists what each device can do.
func ExampleCapabilities() {
	fmt.Println(isp.Capabilities(isp.MachinePrinter{}))
	fmt.Println(isp.Capabilities(isp.PlainPrinter{}))
	// Output:
	// [print scan fax]
	// [print]
}

// ExampleNewMultiFunctionDevice builds a device from one printer and one
// scanner-fax combo.
func ExampleNewMultiFunctionDevice() {
	combo := isp.SegregatedPrinter{}
	dev := isp.NewMultiFunctionDevice(isp.PlainPrinter{}, combo, combo)
	dev.Print(&isp.Document{})
	fmt.Println(isp.Capabilities(dev))
	// Output:
	// [print scan fax]
}
