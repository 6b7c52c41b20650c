package fileinput

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input implements sequential line reading through a Queue of one or more
// input streams, tracking the Location of the Last line read.
type Input struct {
	Queue []io.Reader
	Last  Location

	cur io.Reader
	sc  *bufio.Scanner
}

// ReadLine returns the next line, without its line ending, from the current
// input stream, moving on through the Queue as each stream is exhausted.
// Streams that implement io.Closer are closed once exhausted.
// Returns io.EOF after the last stream.
func (in *Input) ReadLine() (string, error) {
	for in.sc != nil || in.nextIn() {
		if in.sc.Scan() {
			in.Last.Line++
			return in.sc.Text(), nil
		}
		err := in.sc.Err()
		if cerr := in.closeCur(); err == nil {
			err = cerr
		}
		if err != nil {
			return "", err
		}
	}
	return "", io.EOF
}

// Close closes the current stream, and any still queued.
func (in *Input) Close() (err error) {
	err = in.closeCur()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.cur = r
	in.sc = bufio.NewScanner(r)
	in.Last = Location{Name: nameOf(r)}
	return true
}

func (in *Input) closeCur() (err error) {
	if cl, ok := in.cur.(io.Closer); ok {
		err = cl.Close()
	}
	in.cur, in.sc = nil, nil
	return err
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// Error annotates an error with the Location of the line that caused it.
type Error struct {
	Location
	Err error
}

func (err Error) Error() string { return fmt.Sprintf("%v: %v", err.Location, err.Err) }
func (err Error) Unwrap() error { return err.Err }

// Format passes any %+v through to the wrapped error, so that details like a
// panic stack survive the annotation.
func (err Error) Format(f fmt.State, c rune) {
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "%v: %+v", err.Location, err.Err)
	} else {
		io.WriteString(f, err.Error())
	}
}
