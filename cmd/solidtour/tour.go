package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/solid/isp"
	"github.com/katalvlaran/solid/lsp"
	"github.com/katalvlaran/solid/ocp"
	"github.com/katalvlaran/solid/srp"
)

// ErrUnknownPrinciple is returned for a principle name the tour does not know.
var ErrUnknownPrinciple = errors.New("solidtour: unknown principle")

// Each show func writes through an errWriter; run checks it after the section.
type section struct {
	name  string
	title string
	show  func(w io.Writer, log *slog.Logger) error
}

var sections = []section{
	{"srp", "Single Responsibility", showSRP},
	{"ocp", "Open/Closed", showOCP},
	{"lsp", "Liskov Substitution", showLSP},
	{"isp", "Interface Segregation", showISP},
}

// errWriter remembers the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// run prints the sections selected by opts.Principle.
func run(w io.Writer, log *slog.Logger, opts *Options) error {
	ew := &errWriter{w: w}
	matched := false
	for _, s := range sections {
		if opts.Principle != "all" && opts.Principle != s.name {
			continue
		}
		matched = true
		log.Debug("section.start", "principle", s.name)
		fmt.Fprintf(ew, "== %s ==\n", s.title)
		if err := s.show(ew, log); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		if ew.err != nil {
			return fmt.Errorf("%s: write: %w", s.name, ew.err)
		}
	}
	if !matched {
		return fmt.Errorf("%w: %q", ErrUnknownPrinciple, opts.Principle)
	}
	return nil
}

func showSRP(w io.Writer, log *slog.Logger) error {
	j := srp.NewJournal()
	j.AddEntry("I cried today")
	j.AddEntry("I ate a bug")
	fmt.Fprintln(w, j)

	err := j.Save()
	log.Debug("journal.save", "err", err)
	if !errors.Is(err, srp.ErrNotImplemented) {
		return fmt.Errorf("journal save: unexpected result %v", err)
	}
	fmt.Fprintln(w, "save:", err)
	return nil
}

func showOCP(w io.Writer, log *slog.Logger) error {
	var products []ocp.Product
	for _, p := range []struct {
		name  string
		color ocp.Color
		size  ocp.Size
	}{
		{"Apple", ocp.Green, ocp.Small},
		{"Tree", ocp.Green, ocp.Large},
		{"House", ocp.Blue, ocp.Large},
	} {
		prod, err := ocp.NewProduct(p.name, p.color, p.size)
		if err != nil {
			return err
		}
		products = append(products, prod)
	}

	large := ocp.SizeSpecification{Size: ocp.Large}
	green := ocp.ColorSpecification{Color: ocp.Green}
	f := ocp.BetterFilter[ocp.Product]{}

	groups := []struct {
		label string
		spec  ocp.Specification[ocp.Product]
	}{
		{"large", large},
		{"green and large", ocp.And[ocp.Product](green, large)},
		{"green or large", ocp.Or[ocp.Product](green, large)},
	}
	for _, g := range groups {
		got := f.Filter(products, g.spec)
		log.Debug("filter", "spec", g.label, "matched", len(got))
		fmt.Fprintf(w, "%s: %v\n", g.label, got)
	}
	return nil
}

func showLSP(w io.Writer, log *slog.Logger) error {
	sq := lsp.NewSquare(1)
	lsp.Resize(sq.AsRectangle(), 2, 3)
	fmt.Fprintf(w, "Square via *Rectangle:  %v (square: %t)\n", sq, lsp.IsSquare(sq))

	var ls lsp.Shape = lsp.NewLiskovSquare(1)
	lsp.Resize(ls, 2, 3)
	fmt.Fprintf(w, "LiskovSquare via Shape: %v (square: %t)\n", ls, lsp.IsSquare(ls))
	log.Debug("lsp.done")
	return nil
}

func showISP(w io.Writer, log *slog.Logger) error {
	devices := []struct {
		name   string
		device any
	}{
		{"MachinePrinter", isp.MachinePrinter{}},
		{"SegregatedPrinter", isp.SegregatedPrinter{}},
		{"PlainPrinter", isp.PlainPrinter{}},
	}
	for _, d := range devices {
		_, fat := d.device.(isp.Machine)
		log.Debug("device", "name", d.name, "machine", fat)
		fmt.Fprintf(w, "%s: %v\n", d.name, isp.Capabilities(d.device))
	}
	return nil
}
