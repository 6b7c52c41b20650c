package main

import (
	"context"
	"errors"
	"io"

	"github.com/jcorbin/easyforth/internal/fileinput"
	"github.com/jcorbin/easyforth/internal/panicerr"
)

// New creates an interpreter with the builtin dictionary; the builtin words
// cr and space are compiled from source like any user definition.
func New(opts ...Option) *Forth {
	var f Forth
	defaultOptions.apply(&f)
	Options(opts...).apply(&f)
	f.compileBuiltins()
	return &f
}

// Interpret runs every line of input through ReadLine, writing responses to
// the output. Running out of input is a normal end. Interpreter faults, like
// a definition whose if/then do not balance, are returned as errors carrying
// the panic stack, annotated with the input location when known.
func (f *Forth) Interpret(ctx context.Context) error {
	err := panicerr.Recover("forth", func() error {
		return f.run(ctx)
	})
	if ferr := f.out.Flush(); err == nil {
		err = ferr
	}
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	if panicerr.IsPanic(err) && f.Last.Name != "" {
		err = fileinput.Error{Location: f.Last, Err: err}
	}
	return err
}

// Dump writes the stack and dictionary, most recent word first, to w.
func (f *Forth) Dump(w io.Writer) {
	dumper{f: f, out: w}.dump()
}

func WithInput(r io.Reader) Option   { return withInput(r) }
func WithLines(lr LineReader) Option { return withLines(lr) }
func WithOutput(w io.Writer) Option  { return withOutput(w) }
func WithTee(w io.Writer) Option     { return withTee(w) }
func WithEcho(echo bool) Option      { return withEcho(echo) }

func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }
