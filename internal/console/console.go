// Package console is the tiny output helper every example driver prints through.
//
// A Printer remembers the first write error and turns every later call into a
// no-op, so a driver can print line after line and check the error once at
// the end.
package console

import (
	"fmt"
	"io"
)

type Printer struct {
	w   io.Writer
	err error
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) Println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }
