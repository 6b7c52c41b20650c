package main

import (
	"context"
	"io"

	"github.com/jcorbin/easyforth/internal/fileinput"
	"github.com/jcorbin/easyforth/internal/flushio"
	"github.com/jcorbin/easyforth/internal/runeio"
)

// LineReader provides lines of input, returning io.EOF when there are no
// more; interactive line editors implement it.
type LineReader interface {
	ReadLine() (string, error)
}

// Core holds the session plumbing around the interpreter: where lines come
// from, where responses go, and trace logging.
type Core struct {
	logging
	fileinput.Input
	lines   LineReader
	out     flushio.WriteFlusher
	echo    bool
	closers []io.Closer
}

// Close closes any closable line reader, and any unread input.
func (core *Core) Close() (err error) {
	for i := len(core.closers) - 1; i >= 0; i-- {
		if cerr := core.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	if cerr := core.Input.Close(); err == nil {
		err = cerr
	}
	return err
}

func (core *Core) nextLine() (string, error) {
	if core.lines != nil {
		return core.lines.ReadLine()
	}
	line, err := core.Input.ReadLine()
	if err == nil {
		core.logf("#", "%v", core.Last)
	}
	return line, err
}

// respond writes one line's response, preceded by the line itself when
// echoing; blank continuation responses are only written when echoing.
func (core *Core) respond(line, resp string) error {
	if core.echo {
		resp = line + resp
	}
	if resp == "" {
		return nil
	}
	if _, err := runeio.WriteANSIString(core.out, resp+"\n"); err != nil {
		return err
	}
	return core.out.Flush()
}

// run reads lines until input is exhausted or ctx is done; the context is
// only checked between lines.
func (f *Forth) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := f.nextLine()
		if err != nil {
			return err
		}
		if err := f.respond(line, f.ReadLine(line)); err != nil {
			return err
		}
	}
}
