package main

import (
	"io"
	"io/ioutil"

	"github.com/jcorbin/easyforth/internal/flushio"
)

// Option configures a Forth interpreter created by New.
type Option interface{ apply(f *Forth) }

var defaultOptions = Options(
	withOutput(ioutil.Discard),
)

// Options combines any number of options into one, applied in order.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []Option

func (opts options) apply(f *Forth) {
	for _, opt := range opts {
		opt.apply(f)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(f *Forth) {
	f.logfn = logfn
}

type inputOption struct{ io.Reader }
type linesOption struct{ LineReader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type echoOption bool

func withInput(r io.Reader) inputOption   { return inputOption{r} }
func withLines(lr LineReader) linesOption { return linesOption{lr} }
func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withTee(w io.Writer) teeOption       { return teeOption{w} }
func withEcho(echo bool) echoOption       { return echoOption(echo) }

func (i inputOption) apply(f *Forth) {
	f.Input.Queue = append(f.Input.Queue, i.Reader)
}

func (l linesOption) apply(f *Forth) {
	f.lines = l.LineReader
	if cl, ok := l.LineReader.(io.Closer); ok {
		f.closers = append(f.closers, cl)
	}
}

func (o outputOption) apply(f *Forth) {
	if f.out != nil {
		f.out.Flush()
	}
	f.out = flushio.New(o.Writer)
}

func (o teeOption) apply(f *Forth) {
	f.out = flushio.Tee(f.out, flushio.New(o.Writer))
}

func (echo echoOption) apply(f *Forth) {
	f.echo = bool(echo)
}
