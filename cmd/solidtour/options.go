package main

// Options are the tour's command-line flags.
type Options struct {
	Principle string `short:"p" long:"principle" default:"all" choice:"srp" choice:"ocp" choice:"lsp" choice:"isp" choice:"all" description:"principle to demonstrate"`
	Verbose   bool   `short:"v" long:"verbose" description:"log each step to stderr"`
}
