package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/easyforth/internal/fileinput"
	"github.com/jcorbin/easyforth/internal/panicerr"
)

type testLines struct {
	lines  []string
	closed bool
}

func (tl *testLines) ReadLine() (string, error) {
	if len(tl.lines) == 0 {
		return "", io.EOF
	}
	line := tl.lines[0]
	tl.lines = tl.lines[1:]
	return line, nil
}

func (tl *testLines) Close() error {
	tl.closed = true
	return nil
}

type namedInput struct {
	*strings.Reader
	name string
}

func (ni namedInput) Name() string { return ni.name }

func TestInterpret(t *testing.T) {
	for _, tc := range []struct {
		name string
		opts []Option
		out  string
	}{
		{
			name: "responses",
			opts: []Option{WithInput(strings.NewReader(lines(
				"3 4 + .",
				": sq dup *",
				";",
				"5 sq .",
				"nope",
			)))},
			out: lines(
				" 7  ok",
				"  ok",
				" 25  ok",
				" nope ? ",
			),
		},
		{
			name: "echo",
			opts: []Option{
				WithEcho(true),
				WithInput(strings.NewReader(lines(
					"3 4 + .",
					": sq dup *",
					";",
					"5 sq .",
				))),
			},
			out: lines(
				"3 4 + . 7  ok",
				": sq dup *",
				";  ok",
				"5 sq . 25  ok",
			),
		},
		{
			name: "definition spans inputs",
			opts: []Option{
				WithInput(strings.NewReader(": five\n")),
				WithInput(strings.NewReader("5 ;\nfive .\n")),
			},
			out: lines(
				"  ok",
				" 5  ok",
			),
		},
		{
			name: "lines",
			opts: []Option{WithLines(&testLines{lines: []string{
				"1 2 .s",
				"72 emit 105 emit cr",
			}})},
			out: lines(
				" ",
				"1 2 <- Top  ok",
				" Hi",
				" ok",
			),
		},
		{
			name: "no input",
			out:  "",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out strings.Builder
			f := New(append(tc.opts, WithOutput(&out))...)
			defer f.Close()
			require.NoError(t, f.Interpret(context.Background()))
			assert.Equal(t, tc.out, out.String())
		})
	}
}

func TestForth_nextLine(t *testing.T) {
	f := New(WithInput(namedInput{strings.NewReader("1 2 +\n.\n"), "in.fs"}))

	line, err := f.nextLine()
	require.NoError(t, err)
	assert.Equal(t, "1 2 +", line)
	assert.Equal(t, "in.fs:1", f.Last.String())

	line, err = f.nextLine()
	require.NoError(t, err)
	assert.Equal(t, ".", line)

	_, err = f.nextLine()
	assert.Equal(t, io.EOF, err, "expected end of input")
}

func TestInterpret_tee(t *testing.T) {
	var out, transcript strings.Builder
	f := New(
		WithInput(strings.NewReader("1 2 + .\n")),
		WithOutput(&out),
		WithTee(&transcript),
	)
	require.NoError(t, f.Interpret(context.Background()))
	assert.Equal(t, " 3  ok\n", out.String())
	assert.Equal(t, " 3  ok\n", transcript.String())
}

func TestInterpret_fault(t *testing.T) {
	var out strings.Builder
	f := New(
		WithInput(namedInput{strings.NewReader(lines(
			": bad 1 else 2 ;",
			"bad",
			"1 .",
		)), "bad.fs"}),
		WithOutput(&out),
	)
	err := f.Interpret(context.Background())
	require.Error(t, err, "expected an interpreter fault")

	assert.EqualError(t, err, `bad.fs:2: forth panicked: unbalanced control flow in "bad" at else`)

	var ferr fileinput.Error
	if assert.True(t, errors.As(err, &ferr), "expected a located error") {
		assert.Equal(t, fileinput.Location{Name: "bad.fs", Line: 2}, ferr.Location)
	}
	var cerr controlError
	if assert.True(t, errors.As(err, &cerr), "expected a control flow error") {
		assert.Equal(t, controlError{"bad", "else"}, cerr)
	}
	assert.True(t, panicerr.IsPanic(err), "expected a recovered panic")
	assert.Contains(t, fmt.Sprintf("%+v", err), "Panic stack: ", "expected a stack trace")

	assert.Equal(t, "  ok\n", out.String(), "expected output up to the fault")
}

func TestInterpret_faultWithoutLocation(t *testing.T) {
	f := New(WithLines(&testLines{lines: []string{
		": bad then ;",
		"bad",
	}}))
	err := f.Interpret(context.Background())
	require.Error(t, err, "expected an interpreter fault")
	assert.EqualError(t, err, `forth panicked: unbalanced control flow in "bad" at then`)
}

func TestInterpret_canceled(t *testing.T) {
	var out strings.Builder
	f := New(
		WithInput(strings.NewReader("1 2 + .\n")),
		WithOutput(&out),
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, context.Canceled, f.Interpret(ctx))
	assert.Equal(t, "", out.String(), "expected no lines to run")
}

func TestForth_Close(t *testing.T) {
	tl := &testLines{}
	f := New(WithLines(tl))
	require.NoError(t, f.Close())
	assert.True(t, tl.closed, "expected line reader to be closed")
}

func TestOptions(t *testing.T) {
	assert.Equal(t, options(nil), Options(), "expected no options")
	assert.Equal(t, withEcho(true), Options(nil, WithEcho(true)), "expected a single option")
	assert.Equal(t, options{withEcho(true), withEcho(false)},
		Options(Options(WithEcho(true), nil), WithEcho(false)),
		"expected nested options to flatten")
}
