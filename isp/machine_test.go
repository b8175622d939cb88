package isp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/solid/isp"
)

// recorder counts calls to each capability.
type recorder struct {
	prints, scans, faxes int
}

func (r *recorder) Print(*isp.Document) { r.prints++ }
func (r *recorder) Scan(*isp.Document)  { r.scans++ }
func (r *recorder) Fax(*isp.Document)   { r.faxes++ }

func TestCapabilities(t *testing.T) {
	tests := []struct {
		name   string
		device any
		want   []string
	}{
		{"MachinePrinter", isp.MachinePrinter{}, []string{"print", "scan", "fax"}},
		{"SegregatedPrinter", isp.SegregatedPrinter{}, []string{"print", "scan", "fax"}},
		{"PlainPrinter", isp.PlainPrinter{}, []string{"print"}},
		{"Document", isp.Document{}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isp.Capabilities(tc.device))
		})
	}
}

// TestPlainPrinter_NotMachine shows a single-capability device cannot be a Machine.
func TestPlainPrinter_NotMachine(t *testing.T) {
	var v any = isp.PlainPrinter{}
	_, isMachine := v.(isp.Machine)
	assert.False(t, isMachine)
	_, isPrinter := v.(isp.Printer)
	assert.True(t, isPrinter)
}

func TestNoOps(t *testing.T) {
	doc := &isp.Document{}
	assert.NotPanics(t, func() {
		var m isp.Machine = isp.MachinePrinter{}
		m.Print(doc)
		m.Scan(doc)
		m.Fax(doc)
		var d isp.MultiFunctionDevice = isp.SegregatedPrinter{}
		d.Print(doc)
		d.Scan(doc)
		d.Fax(nil)
		isp.PlainPrinter{}.Print(doc)
	})
}

// TestMultiFunctionDevice_Delegates checks each capability reaches its own part.
func TestMultiFunctionDevice_Delegates(t *testing.T) {
	p, s, f := &recorder{}, &recorder{}, &recorder{}
	dev := isp.NewMultiFunctionDevice(p, s, f)
	doc := &isp.Document{}

	dev.Print(doc)
	dev.Print(doc)
	dev.Scan(doc)
	dev.Fax(doc)

	assert.Equal(t, recorder{prints: 2}, *p)
	assert.Equal(t, recorder{scans: 1}, *s)
	assert.Equal(t, recorder{faxes: 1}, *f)
	assert.Equal(t, []string{"print", "scan", "fax"}, isp.Capabilities(dev))
}

func TestNewMultiFunctionDevice_NilPanics(t *testing.T) {
	r := &recorder{}
	assert.Panics(t, func() { isp.NewMultiFunctionDevice(nil, r, r) })
	assert.Panics(t, func() { isp.NewMultiFunctionDevice(r, nil, r) })
	assert.Panics(t, func() { isp.NewMultiFunctionDevice(r, r, nil) })
}
